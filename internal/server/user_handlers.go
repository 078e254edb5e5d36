package server

import (
	"gochurch/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateUserRequest is the body of POST /users. Password is optional.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password"`
}

// UpdateUserRequest is a partial user update.
type UpdateUserRequest struct {
	Username  *string `json:"username" validate:"omitempty,username"`
	IsBlocked *bool   `json:"is_blocked"`
	IsAdmin   *bool   `json:"is_admin"`
}

// CreateProfileRequest is the body of POST /users/profiles.
type CreateProfileRequest struct {
	UserID    uint   `json:"user_id" validate:"required"`
	Nickname  string `json:"nickname" validate:"required,max=100"`
	Thumbnail string `json:"thumbnail" validate:"omitempty,max=500"`
	ChurchID  *uint  `json:"church_id"`
}

// UpdateProfileRequest is a partial profile update.
type UpdateProfileRequest struct {
	Nickname  *string `json:"nickname" validate:"omitempty,max=100"`
	Thumbnail *string `json:"thumbnail" validate:"omitempty,max=500"`
	ChurchID  *uint   `json:"church_id"`
}

// CreateUser handles POST /api/users
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /users [post]
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	user, err := s.userService.CreateUser(c.UserContext(), service.CreateUserInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUsers handles GET /api/users
// @Summary List users
// @Tags users
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} models.User
// @Router /users [get]
func (s *Server) GetUsers(c *fiber.Ctx) error {
	page := parsePagination(c)
	users, err := s.userService.ListUsers(c.UserContext(), page.Offset, page.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// GetUser handles GET /api/users/:id
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	user, err := s.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateUser handles PUT /api/users/:id
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [put]
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req UpdateUserRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	user, err := s.userService.UpdateUser(c.UserContext(), id, service.UpdateUserInput{
		Username:  req.Username,
		IsBlocked: req.IsBlocked,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// DeleteUser handles DELETE /api/users/:id
// @Summary Delete a user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [delete]
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.userService.DeleteUser(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateProfile handles POST /api/users/profiles
// @Summary Create a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body CreateProfileRequest true "Profile"
// @Success 201 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /users/profiles [post]
func (s *Server) CreateProfile(c *fiber.Ctx) error {
	var req CreateProfileRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	profile, err := s.userService.CreateProfile(c.UserContext(), service.CreateProfileInput{
		UserID:    req.UserID,
		Nickname:  req.Nickname,
		Thumbnail: req.Thumbnail,
		ChurchID:  req.ChurchID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// GetProfile handles GET /api/users/profiles/:id
// @Summary Get a profile
// @Tags profiles
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /users/profiles/{id} [get]
func (s *Server) GetProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	profile, err := s.userService.GetProfile(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetUserProfile handles GET /api/users/:id/profile
// @Summary Get a user's profile
// @Tags profiles
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/profile [get]
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	profile, err := s.userService.GetProfileByUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// UpdateProfile handles PUT /api/users/profiles/:id
// @Summary Update a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path int true "Profile ID"
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /users/profiles/{id} [put]
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req UpdateProfileRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	profile, err := s.userService.UpdateProfile(c.UserContext(), id, service.UpdateProfileInput{
		Nickname:  req.Nickname,
		Thumbnail: req.Thumbnail,
		ChurchID:  req.ChurchID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// DeleteProfile handles DELETE /api/users/profiles/:id
// @Summary Delete a profile
// @Tags profiles
// @Param id path int true "Profile ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /users/profiles/{id} [delete]
func (s *Server) DeleteProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.userService.DeleteProfile(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
