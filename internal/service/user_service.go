package service

import (
	"context"
	"strings"

	"gochurch/internal/models"
	"gochurch/internal/repository"
	"gochurch/internal/validation"

	"github.com/jinzhu/copier"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	churches repository.ChurchRepository
}

type CreateUserInput struct {
	Email    string
	Username string
	Password string
}

// UpdateUserInput carries a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	Username  *string
	IsBlocked *bool
	IsAdmin   *bool
}

type CreateProfileInput struct {
	UserID    uint
	Nickname  string
	Thumbnail string
	ChurchID  *uint
}

// UpdateProfileInput carries a partial update; nil fields are left unchanged.
type UpdateProfileInput struct {
	Nickname  *string
	Thumbnail *string
	ChurchID  *uint
}

func NewUserService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	churches repository.ChurchRepository,
) *UserService {
	return &UserService{users: users, profiles: profiles, churches: churches}
}

// CreateUser registers an account. The password is optional; when given it
// must satisfy the password policy and is stored as a bcrypt hash.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if strings.TrimSpace(in.Email) == "" {
		return nil, models.NewValidationError("Email is required")
	}
	if strings.TrimSpace(in.Username) == "" {
		return nil, models.NewValidationError("Username is required")
	}

	user := &models.User{Email: in.Email, Username: strings.TrimSpace(in.Username)}
	if in.Password != "" {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, conflictOr(err, "Email already registered")
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	return s.users.List(ctx, skip, limit)
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(user, &in, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.users.Delete(ctx, id)
}

// CreateProfile attaches a profile to an existing user. A user has at most
// one profile.
func (s *UserService) CreateProfile(ctx context.Context, in CreateProfileInput) (*models.Profile, error) {
	if strings.TrimSpace(in.Nickname) == "" {
		return nil, models.NewValidationError("Nickname is required")
	}
	if _, err := s.users.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}
	if err := s.checkChurch(ctx, in.ChurchID); err != nil {
		return nil, err
	}

	profile := &models.Profile{}
	if err := copier.Copy(profile, &in); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, conflictOr(err, "Profile already exists for this user")
	}
	return profile, nil
}

func (s *UserService) GetProfile(ctx context.Context, id uint) (*models.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

func (s *UserService) GetProfileByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, id uint, in UpdateProfileInput) (*models.Profile, error) {
	if in.Nickname != nil && strings.TrimSpace(*in.Nickname) == "" {
		return nil, models.NewValidationError("Nickname cannot be empty")
	}
	if err := s.checkChurch(ctx, in.ChurchID); err != nil {
		return nil, err
	}
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(profile, &in, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, models.NewInternalError(err)
	}
	if in.ChurchID != nil {
		profile.Church = nil
	}
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *UserService) DeleteProfile(ctx context.Context, id uint) error {
	return s.profiles.Delete(ctx, id)
}

func (s *UserService) checkChurch(ctx context.Context, churchID *uint) error {
	if churchID == nil {
		return nil
	}
	_, err := s.churches.GetByID(ctx, *churchID)
	return err
}

func hashPassword(password string) (string, error) {
	if err := validation.ValidatePassword(password); err != nil {
		return "", models.NewValidationError(err.Error())
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return string(hash), nil
}
