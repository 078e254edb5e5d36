package server

import (
	"gochurch/internal/models"
	"gochurch/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RecordActionRequest sets one action to an explicit state.
type RecordActionRequest struct {
	UserID     uint   `json:"user_id" validate:"required"`
	ActionType string `json:"action_type" validate:"required,action_type"`
	TargetType string `json:"target_type" validate:"required,target_type"`
	TargetID   uint   `json:"target_id" validate:"required"`
	IsOn       *bool  `json:"is_on"`
}

// ToggleActionQuery identifies the action to flip.
type ToggleActionQuery struct {
	UserID     uint   `query:"user_id" json:"user_id" validate:"required"`
	ActionType string `query:"action_type" json:"action_type" validate:"required,action_type"`
	TargetType string `query:"target_type" json:"target_type" validate:"required,target_type"`
	TargetID   uint   `query:"target_id" json:"target_id" validate:"required"`
}

// RecordAction handles POST /api/actions
// @Summary Record an action
// @Description Creates or updates the action log for (user, action type, target). is_on defaults to true.
// @Tags actions
// @Accept json
// @Produce json
// @Param request body RecordActionRequest true "Action"
// @Success 201 {object} models.ActionLog
// @Failure 400 {object} models.ErrorResponse
// @Router /actions [post]
func (s *Server) RecordAction(c *fiber.Ctx) error {
	var req RecordActionRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	isOn := true
	if req.IsOn != nil {
		isOn = *req.IsOn
	}

	log, err := s.actionService.RecordOrUpdate(c.UserContext(), service.RecordActionInput{
		UserID:     req.UserID,
		ActionType: models.ActionType(req.ActionType),
		TargetType: models.TargetType(req.TargetType),
		TargetID:   req.TargetID,
		IsOn:       isOn,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(log)
}

// ToggleAction handles POST /api/actions/toggle
// @Summary Toggle an action
// @Description Flips is_on for the action, creating it switched on when absent.
// @Tags actions
// @Produce json
// @Param user_id query int true "User ID"
// @Param action_type query string true "Action type" Enums(view, like, bookmark, report)
// @Param target_type query string true "Target type" Enums(post, comment)
// @Param target_id query int true "Target ID"
// @Success 201 {object} models.ActionLog
// @Failure 400 {object} models.ErrorResponse
// @Router /actions/toggle [post]
func (s *Server) ToggleAction(c *fiber.Ctx) error {
	var q ToggleActionQuery
	if err := parseQuery(c, &q); err != nil {
		return nil
	}

	log, err := s.actionService.Toggle(c.UserContext(), models.ActionKey{
		UserID:     q.UserID,
		ActionType: models.ActionType(q.ActionType),
		TargetType: models.TargetType(q.TargetType),
		TargetID:   q.TargetID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(log)
}

// GetUserActions handles GET /api/actions/user/:userId
// @Summary List a user's actions
// @Tags actions
// @Produce json
// @Param userId path int true "User ID"
// @Param action_type query string false "Action type filter"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} models.ActionLog
// @Failure 400 {object} models.ErrorResponse
// @Router /actions/user/{userId} [get]
func (s *Server) GetUserActions(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	actionType, err := parseActionType(c)
	if err != nil {
		return respondError(c, err)
	}
	page := parsePagination(c)

	logs, err := s.actionService.ListForUser(c.UserContext(), userID, actionType, page.Offset, page.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(logs)
}

// GetTargetActions handles GET /api/actions/target/:targetType/:targetId
// @Summary List actions on a target
// @Tags actions
// @Produce json
// @Param targetType path string true "Target type" Enums(post, comment)
// @Param targetId path int true "Target ID"
// @Param action_type query string false "Action type filter"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} models.ActionLog
// @Failure 400 {object} models.ErrorResponse
// @Router /actions/target/{targetType}/{targetId} [get]
func (s *Server) GetTargetActions(c *fiber.Ctx) error {
	targetType, err := models.ParseTargetType(c.Params("targetType"))
	if err != nil {
		return respondError(c, err)
	}
	targetID, err := s.parseID(c, "targetId")
	if err != nil {
		return nil
	}
	actionType, err := parseActionType(c)
	if err != nil {
		return respondError(c, err)
	}
	page := parsePagination(c)

	logs, err := s.actionService.ListForTarget(c.UserContext(), targetType, targetID, actionType, page.Offset, page.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(logs)
}

// GetActionCount handles GET /api/actions/count/:targetType/:targetId/:actionType
// @Summary Count active actions on a target
// @Tags actions
// @Produce json
// @Param targetType path string true "Target type" Enums(post, comment)
// @Param targetId path int true "Target ID"
// @Param actionType path string true "Action type" Enums(view, like, bookmark, report)
// @Success 200 {object} object{count=int}
// @Failure 400 {object} models.ErrorResponse
// @Router /actions/count/{targetType}/{targetId}/{actionType} [get]
func (s *Server) GetActionCount(c *fiber.Ctx) error {
	targetType, err := models.ParseTargetType(c.Params("targetType"))
	if err != nil {
		return respondError(c, err)
	}
	targetID, err := s.parseID(c, "targetId")
	if err != nil {
		return nil
	}
	actionType, err := models.ParseActionType(c.Params("actionType"))
	if err != nil {
		return respondError(c, err)
	}

	n, err := s.actionService.Count(c.UserContext(), targetType, targetID, actionType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": n})
}

// GetAction handles GET /api/actions/:id
// @Summary Get an action log
// @Tags actions
// @Produce json
// @Param id path int true "Action log ID"
// @Success 200 {object} models.ActionLog
// @Failure 404 {object} models.ErrorResponse
// @Router /actions/{id} [get]
func (s *Server) GetAction(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	log, err := s.actionService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(log)
}
