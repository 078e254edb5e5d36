package server

import (
	"gochurch/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateChurchRequest is the body of POST /churches.
type CreateChurchRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
}

// UpdateChurchRequest is a partial church update.
type UpdateChurchRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
}

// CreateChurch handles POST /api/churches
// @Summary Register a church
// @Tags churches
// @Accept json
// @Produce json
// @Param request body CreateChurchRequest true "Church"
// @Success 201 {object} models.Church
// @Failure 400 {object} models.ErrorResponse
// @Router /churches [post]
func (s *Server) CreateChurch(c *fiber.Ctx) error {
	var req CreateChurchRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	church, err := s.churchService.CreateChurch(c.UserContext(), service.CreateChurchInput{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(church)
}

// GetChurches handles GET /api/churches
// @Summary List churches
// @Tags churches
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} models.Church
// @Router /churches [get]
func (s *Server) GetChurches(c *fiber.Ctx) error {
	page := parsePagination(c)
	churches, err := s.churchService.ListChurches(c.UserContext(), page.Offset, page.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(churches)
}

// GetChurch handles GET /api/churches/:id
// @Summary Get a church
// @Tags churches
// @Produce json
// @Param id path int true "Church ID"
// @Success 200 {object} models.Church
// @Failure 404 {object} models.ErrorResponse
// @Router /churches/{id} [get]
func (s *Server) GetChurch(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	church, err := s.churchService.GetChurch(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(church)
}

// UpdateChurch handles PUT /api/churches/:id
// @Summary Update a church
// @Tags churches
// @Accept json
// @Produce json
// @Param id path int true "Church ID"
// @Param request body UpdateChurchRequest true "Fields to change"
// @Success 200 {object} models.Church
// @Failure 404 {object} models.ErrorResponse
// @Router /churches/{id} [put]
func (s *Server) UpdateChurch(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req UpdateChurchRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	church, err := s.churchService.UpdateChurch(c.UserContext(), id, service.UpdateChurchInput{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(church)
}

// DeleteChurch handles DELETE /api/churches/:id
// @Summary Delete a church
// @Tags churches
// @Param id path int true "Church ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /churches/{id} [delete]
func (s *Server) DeleteChurch(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.churchService.DeleteChurch(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
