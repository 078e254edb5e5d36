package server

import (
	"gochurch/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserSettingsRequest is a partial update of the caller's settings.
type UserSettingsRequest struct {
	ProfileVisibility      *string `json:"profile_visibility"`
	EmailVisibility        *bool   `json:"email_visibility"`
	PhoneVisibility        *bool   `json:"phone_visibility"`
	EmailNotifications     *bool   `json:"email_notifications"`
	PushNotifications      *bool   `json:"push_notifications"`
	CommunityNotifications *bool   `json:"community_notifications"`
	CommentNotifications   *bool   `json:"comment_notifications"`
	MentionNotifications   *bool   `json:"mention_notifications"`
	Theme                  *string `json:"theme"`
	Language               *string `json:"language" validate:"omitempty,max=10"`
	Timezone               *string `json:"timezone" validate:"omitempty,max=50"`
	NSFWContent            *bool   `json:"nsfw_content"`
	AutoPlayMedia          *bool   `json:"auto_play_media"`
}

// CreateSystemSettingRequest is the body of POST /settings/system.
type CreateSystemSettingRequest struct {
	Key         string `json:"key" validate:"required,max=100"`
	Value       string `json:"value" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"omitempty,max=50"`
	IsPublic    bool   `json:"is_public"`
}

// UpdateSystemSettingRequest is a partial system setting update.
type UpdateSystemSettingRequest struct {
	Value       *string `json:"value"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,max=50"`
	IsPublic    *bool   `json:"is_public"`
}

// CreateNotificationSettingRequest is the body of POST /settings/notifications.
type CreateNotificationSettingRequest struct {
	NotificationType string `json:"notification_type" validate:"required,max=20"`
	Category         string `json:"category" validate:"required,max=50"`
	IsEnabled        *bool  `json:"is_enabled"`
	Frequency        string `json:"frequency"`
}

// UpdateNotificationSettingRequest is a partial notification setting update.
type UpdateNotificationSettingRequest struct {
	IsEnabled *bool   `json:"is_enabled"`
	Frequency *string `json:"frequency"`
}

// GetUserSettings handles GET /api/settings/user
// @Summary Get the caller's settings
// @Description Creates default settings on first access.
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserSettings
// @Failure 401 {object} models.ErrorResponse
// @Router /settings/user [get]
func (s *Server) GetUserSettings(c *fiber.Ctx) error {
	settings, err := s.settingsService.GetUserSettings(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

// UpdateUserSettings handles PUT /api/settings/user
// @Summary Update the caller's settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UserSettingsRequest true "Fields to change"
// @Success 200 {object} models.UserSettings
// @Failure 400 {object} models.ErrorResponse
// @Router /settings/user [put]
func (s *Server) UpdateUserSettings(c *fiber.Ctx) error {
	var req UserSettingsRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	settings, err := s.settingsService.UpdateUserSettings(c.UserContext(), currentUserID(c), service.UserSettingsUpdate{
		ProfileVisibility:      req.ProfileVisibility,
		EmailVisibility:        req.EmailVisibility,
		PhoneVisibility:        req.PhoneVisibility,
		EmailNotifications:     req.EmailNotifications,
		PushNotifications:      req.PushNotifications,
		CommunityNotifications: req.CommunityNotifications,
		CommentNotifications:   req.CommentNotifications,
		MentionNotifications:   req.MentionNotifications,
		Theme:                  req.Theme,
		Language:               req.Language,
		Timezone:               req.Timezone,
		NSFWContent:            req.NSFWContent,
		AutoPlayMedia:          req.AutoPlayMedia,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

// GetSystemSettings handles GET /api/settings/system
// @Summary List system settings
// @Tags settings
// @Produce json
// @Param category query string false "Category filter"
// @Param public_only query bool false "Only public settings (default true)"
// @Success 200 {array} models.SystemSetting
// @Router /settings/system [get]
func (s *Server) GetSystemSettings(c *fiber.Ctx) error {
	list, err := s.settingsService.ListSystemSettings(c.UserContext(), c.Query("category"), c.QueryBool("public_only", true))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetPublicSettings handles GET /api/settings/system/public
// @Summary Public settings as a key/value map
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]string
// @Router /settings/system/public [get]
func (s *Server) GetPublicSettings(c *fiber.Ctx) error {
	values, err := s.settingsService.PublicSettings(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(values)
}

// CreateSystemSetting handles POST /api/settings/system
// @Summary Create a system setting
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSystemSettingRequest true "Setting"
// @Success 201 {object} models.SystemSetting
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /settings/system [post]
func (s *Server) CreateSystemSetting(c *fiber.Ctx) error {
	var req CreateSystemSettingRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	setting, err := s.settingsService.CreateSystemSetting(c.UserContext(), service.CreateSystemSettingInput{
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
		Category:    req.Category,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(setting)
}

// UpdateSystemSetting handles PUT /api/settings/system/:key
// @Summary Update a system setting
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Param request body UpdateSystemSettingRequest true "Fields to change"
// @Success 200 {object} models.SystemSetting
// @Failure 404 {object} models.ErrorResponse
// @Router /settings/system/{key} [put]
func (s *Server) UpdateSystemSetting(c *fiber.Ctx) error {
	var req UpdateSystemSettingRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	setting, err := s.settingsService.UpdateSystemSetting(c.UserContext(), c.Params("key"), service.SystemSettingUpdate{
		Value:       req.Value,
		Description: req.Description,
		Category:    req.Category,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(setting)
}

// DeleteSystemSetting handles DELETE /api/settings/system/:key
// @Summary Delete a system setting
// @Tags settings
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /settings/system/{key} [delete]
func (s *Server) DeleteSystemSetting(c *fiber.Ctx) error {
	if err := s.settingsService.DeleteSystemSetting(c.UserContext(), c.Params("key")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetNotificationSettings handles GET /api/settings/notifications
// @Summary List the caller's notification settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.NotificationSetting
// @Router /settings/notifications [get]
func (s *Server) GetNotificationSettings(c *fiber.Ctx) error {
	list, err := s.settingsService.ListNotificationSettings(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateNotificationSetting handles POST /api/settings/notifications
// @Summary Create a notification setting
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateNotificationSettingRequest true "Setting"
// @Success 201 {object} models.NotificationSetting
// @Failure 409 {object} models.ErrorResponse
// @Router /settings/notifications [post]
func (s *Server) CreateNotificationSetting(c *fiber.Ctx) error {
	var req CreateNotificationSettingRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	enabled := true
	if req.IsEnabled != nil {
		enabled = *req.IsEnabled
	}
	setting, err := s.settingsService.CreateNotificationSetting(c.UserContext(), currentUserID(c), service.CreateNotificationSettingInput{
		NotificationType: req.NotificationType,
		Category:         req.Category,
		IsEnabled:        enabled,
		Frequency:        req.Frequency,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(setting)
}

// UpdateNotificationSetting handles PUT /api/settings/notifications/:type/:category
// @Summary Update a notification setting
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "Notification type"
// @Param category path string true "Category"
// @Param request body UpdateNotificationSettingRequest true "Fields to change"
// @Success 200 {object} models.NotificationSetting
// @Failure 404 {object} models.ErrorResponse
// @Router /settings/notifications/{type}/{category} [put]
func (s *Server) UpdateNotificationSetting(c *fiber.Ctx) error {
	var req UpdateNotificationSettingRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	setting, err := s.settingsService.UpdateNotificationSetting(c.UserContext(), currentUserID(c),
		c.Params("type"), c.Params("category"), service.NotificationSettingUpdate{
			IsEnabled: req.IsEnabled,
			Frequency: req.Frequency,
		})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(setting)
}

// CreateDefaultNotificationSettings handles POST /api/settings/notifications/defaults
// @Summary Create the default notification settings
// @Description Adds email and push rows for every category, skipping ones that exist.
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 201 {array} models.NotificationSetting
// @Router /settings/notifications/defaults [post]
func (s *Server) CreateDefaultNotificationSettings(c *fiber.Ctx) error {
	list, err := s.settingsService.CreateDefaultNotificationSettings(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(list)
}
