package server

import (
	"gochurch/internal/models"
	"gochurch/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SubmitVerificationRequest is the body of POST /verifications.
type SubmitVerificationRequest struct {
	UserID   uint   `json:"user_id" validate:"required"`
	PhotoURL string `json:"photo_url" validate:"required,max=500"`
	ChurchID *uint  `json:"church_id"`
}

// ReviewVerificationRequest is the body of PUT /verifications/:id/status.
type ReviewVerificationRequest struct {
	Status     string `json:"status" validate:"required,verification_status"`
	ReviewedBy uint   `json:"reviewed_by" validate:"required"`
}

// SubmitVerification handles POST /api/verifications
// @Summary Submit an identity verification
// @Tags verifications
// @Accept json
// @Produce json
// @Param request body SubmitVerificationRequest true "Verification"
// @Success 201 {object} models.IdentityVerification
// @Failure 400 {object} models.ErrorResponse
// @Router /verifications [post]
func (s *Server) SubmitVerification(c *fiber.Ctx) error {
	var req SubmitVerificationRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	v, err := s.verificationService.Submit(c.UserContext(), service.SubmitVerificationInput{
		UserID:   req.UserID,
		PhotoURL: req.PhotoURL,
		ChurchID: req.ChurchID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

// GetPendingVerifications handles GET /api/verifications/pending
// @Summary List pending verifications
// @Tags verifications
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} models.IdentityVerification
// @Router /verifications/pending [get]
func (s *Server) GetPendingVerifications(c *fiber.Ctx) error {
	return s.listVerifications(c, models.VerificationStatusPending)
}

// GetVerificationsByStatus handles GET /api/verifications/status/:status
// @Summary List verifications by status
// @Tags verifications
// @Produce json
// @Param status path string true "Status" Enums(pending, approved, rejected)
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} models.IdentityVerification
// @Failure 400 {object} models.ErrorResponse
// @Router /verifications/status/{status} [get]
func (s *Server) GetVerificationsByStatus(c *fiber.Ctx) error {
	status, err := models.ParseVerificationStatus(c.Params("status"))
	if err != nil {
		return respondError(c, err)
	}
	return s.listVerifications(c, status)
}

func (s *Server) listVerifications(c *fiber.Ctx, status models.VerificationStatus) error {
	page := parsePagination(c)
	list, err := s.verificationService.ListByStatus(c.UserContext(), status, page.Offset, page.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetUserVerifications handles GET /api/verifications/user/:userId
// @Summary List a user's verifications
// @Tags verifications
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.IdentityVerification
// @Router /verifications/user/{userId} [get]
func (s *Server) GetUserVerifications(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	list, err := s.verificationService.ListByUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetVerification handles GET /api/verifications/:id
// @Summary Get a verification
// @Tags verifications
// @Produce json
// @Param id path int true "Verification ID"
// @Success 200 {object} models.IdentityVerification
// @Failure 404 {object} models.ErrorResponse
// @Router /verifications/{id} [get]
func (s *Server) GetVerification(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	v, err := s.verificationService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(v)
}

// ReviewVerification handles PUT /api/verifications/:id/status
// @Summary Review a verification
// @Tags verifications
// @Accept json
// @Produce json
// @Param id path int true "Verification ID"
// @Param request body ReviewVerificationRequest true "Decision"
// @Success 200 {object} models.IdentityVerification
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /verifications/{id}/status [put]
func (s *Server) ReviewVerification(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req ReviewVerificationRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	v, err := s.verificationService.Review(c.UserContext(), id, service.ReviewVerificationInput{
		Status:     models.VerificationStatus(req.Status),
		ReviewedBy: req.ReviewedBy,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(v)
}
