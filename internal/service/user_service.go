package service

import (
	"context"
	"errors"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/model"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserConflict means the username or email is already taken. The
	// pre-check is not a store constraint, so concurrent registrations
	// can still slip past it.
	ErrUserConflict = errors.New("Username or email already taken")

	// ErrInvalidCredentials is returned for unknown email and wrong
	// password alike, so callers cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// ErrUserNotFound means no user matched the given identifier.
	ErrUserNotFound = errors.New("User not found")
)

// UserService handles registration, login and profile management.
type UserService struct {
	users repository.UserRepo
	auth  *AuthService
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepo, auth *AuthService) *UserService {
	return &UserService{users: users, auth: auth}
}

// Register creates a new user with a hashed password and empty profile.
func (s *UserService) Register(ctx context.Context, username, password, email string) (*model.RegisterResponse, error) {
	taken, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUserConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Profile:  model.Profile{Bio: "", Avatar: ""},
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.RegisterResponse{ID: id, Username: username}, nil
}

// Login checks the password hash and issues a fresh token.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.auth.IssueToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: token}, nil
}

// GetProfileByID returns the profile for an authenticated user, keyed
// by the ID embedded in the token.
func (s *UserService) GetProfileByID(ctx context.Context, id string) (*model.ProfileResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return profileOf(user)
}

// GetProfileByEmail returns the profile for a plain email lookup with
// no authentication.
func (s *UserService) GetProfileByEmail(ctx context.Context, email string) (*model.ProfileResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return profileOf(user)
}

// UpdateProfileByID applies the provided fields to the authenticated
// user's profile. A new password is re-hashed before storage.
func (s *UserService) UpdateProfileByID(ctx context.Context, id string, req *model.UpdateProfileRequest) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	upd, err := buildProfileUpdate(req)
	if err != nil {
		return err
	}
	return s.users.UpdateProfileByID(ctx, id, upd)
}

// UpdateProfileByUsername is the unauthenticated variant, keyed by the
// username supplied in the request body. Kept as a distinct operation:
// it is an over-permissive surface the product inherited, flagged in
// the docs rather than silently removed.
func (s *UserService) UpdateProfileByUsername(ctx context.Context, req *model.UpdateProfileRequest) error {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	upd, err := buildProfileUpdate(req)
	if err != nil {
		return err
	}
	return s.users.UpdateProfileByUsername(ctx, req.Username, upd)
}

func profileOf(user *model.User) (*model.ProfileResponse, error) {
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &model.ProfileResponse{
		Username:       user.Username,
		ProfilePicture: user.Profile.Avatar,
		Email:          user.Email,
	}, nil
}

func buildProfileUpdate(req *model.UpdateProfileRequest) (repository.ProfileUpdate, error) {
	var upd repository.ProfileUpdate
	if req.ProfilePicture != "" {
		upd.Avatar = &req.ProfilePicture
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return upd, err
		}
		hashStr := string(hash)
		upd.PasswordHash = &hashStr
	}
	return upd, nil
}
