package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hirafic/config"
	artisanRepo "hirafic/database/repository/artisan"
	userRepo "hirafic/database/repository/user"
	"hirafic/models"
	"hirafic/services/geocode"
	"hirafic/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	Location    string `json:"location"`
	Role        string `json:"role"`

	// Artisan-only fields.
	Specialization string  `json:"specialization"`
	Skills         string  `json:"skills"`
	HourlyRate     float64 `json:"hourly_rate"`
}

// ProfileUpdateInput carries profile form fields; empty strings leave
// the current value untouched.
type ProfileUpdateInput struct {
	Username       string   `json:"username"`
	PhoneNumber    string   `json:"phone_number"`
	Location       string   `json:"location"`
	Specialization string   `json:"specialization"`
	Skills         string   `json:"skills"`
	HourlyRate     *float64 `json:"hourly_rate"`
	Active         *bool    `json:"active"`
}

// AuthResult is returned on successful login.
type AuthResult struct {
	AccessToken string       `json:"access_token"`
	Role        string       `json:"role"`
	User        *models.User `json:"user"`
}

// AccountService handles registration, credential authentication and
// profile management. Token issuance lives here; validation is the
// session gate's job.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	GetUserProfile(principal models.Principal) (*models.User, error)
	GetArtisanProfile(principal models.Principal) (*models.Artisan, error)
	UpdateProfile(ctx context.Context, principal models.Principal, input ProfileUpdateInput) (*models.User, error)
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Users    userRepo.UserRepository
	Artisans artisanRepo.ArtisanRepository
	Geocoder geocode.Geocoder
	Logger   *zap.Logger
}

func (s *DefaultAccountService) log() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

func validRole(role string) bool {
	return role == models.RoleClient || role == models.RoleArtisan
}

// Register creates the user account and, for artisans, the searchable
// provider record. Geocoding the location is best effort: a failure is
// logged, never a registration error.
func (s *DefaultAccountService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)

	switch {
	case input.Username == "":
		return nil, utils.NewInvalidArgument("username is required")
	case input.Email == "" || !strings.Contains(input.Email, "@"):
		return nil, utils.NewInvalidArgument("a valid email is required")
	case len(input.Password) < 6:
		return nil, utils.NewInvalidArgument("password must be at least 6 characters")
	case !validRole(input.Role):
		return nil, utils.NewInvalidArgument("role must be Client or Artisan")
	}

	if _, err := s.Users.GetByEmail(input.Email); err == nil {
		return nil, utils.NewConflict("email is already registered")
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if _, err := s.Users.GetByUsername(input.Username); err == nil {
		return nil, utils.NewConflict("username is already taken")
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username uniqueness: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	lat, lon := s.geocodeLocation(ctx, input.Location)

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		PhoneNumber:  input.PhoneNumber,
		Role:         input.Role,
		Location:     input.Location,
		Latitude:     lat,
		Longitude:    lon,
		CreatedAt:    now,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if user.Role == models.RoleArtisan {
		artisan := &models.Artisan{
			ID:             uuid.New().String(),
			UserID:         user.ID,
			Name:           user.Username,
			Email:          user.Email,
			PhoneNumber:    user.PhoneNumber,
			Location:       user.Location,
			Latitude:       lat,
			Longitude:      lon,
			Specialization: input.Specialization,
			Skills:         input.Skills,
			HourlyRate:     input.HourlyRate,
			Active:         true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.Artisans.Create(artisan); err != nil {
			return nil, fmt.Errorf("failed to create artisan record: %w", err)
		}
	}

	s.log().Info("account registered",
		zap.String("userId", user.ID),
		zap.String("role", user.Role),
	)
	return user, nil
}

// Authenticate verifies the credentials and issues a signed session
// token carrying identity, role and expiry.
func (s *DefaultAccountService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.NewUnauthenticated("Invalid email or password")
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewUnauthenticated("Invalid email or password")
	}

	ttl := time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token, err := utils.GenerateToken(user.ID, user.Role, user.Username, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{AccessToken: token, Role: user.Role, User: user}, nil
}

func (s *DefaultAccountService) GetUserProfile(principal models.Principal) (*models.User, error) {
	user, err := s.Users.GetByID(principal.ID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.NewNotFound("user not found")
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

func (s *DefaultAccountService) GetArtisanProfile(principal models.Principal) (*models.Artisan, error) {
	artisan, err := s.Artisans.GetByUserID(principal.ID)
	if err != nil {
		if errors.Is(err, artisanRepo.ErrNotFound) {
			return nil, utils.NewNotFound("artisan profile not found")
		}
		return nil, fmt.Errorf("failed to fetch artisan profile: %w", err)
	}
	return artisan, nil
}

// UpdateProfile applies profile changes for either role. A location
// change re-geocodes the address and, for artisans, keeps the provider
// record in sync with the account.
func (s *DefaultAccountService) UpdateProfile(ctx context.Context, principal models.Principal, input ProfileUpdateInput) (*models.User, error) {
	user, err := s.GetUserProfile(principal)
	if err != nil {
		return nil, err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Location != "" && input.Location != user.Location {
		user.Location = input.Location
		user.Latitude, user.Longitude = s.geocodeLocation(ctx, input.Location)
	}
	if err := s.Users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if user.Role == models.RoleArtisan {
		artisan, err := s.Artisans.GetByUserID(user.ID)
		if err != nil {
			if !errors.Is(err, artisanRepo.ErrNotFound) {
				return nil, fmt.Errorf("failed to fetch artisan record: %w", err)
			}
		} else {
			artisan.Name = user.Username
			artisan.PhoneNumber = user.PhoneNumber
			artisan.Location = user.Location
			artisan.Latitude = user.Latitude
			artisan.Longitude = user.Longitude
			if input.Specialization != "" {
				artisan.Specialization = input.Specialization
			}
			if input.Skills != "" {
				artisan.Skills = input.Skills
			}
			if input.HourlyRate != nil {
				artisan.HourlyRate = *input.HourlyRate
			}
			if input.Active != nil {
				artisan.Active = *input.Active
			}
			artisan.UpdatedAt = time.Now().UTC()
			if err := s.Artisans.Update(artisan); err != nil {
				return nil, fmt.Errorf("failed to update artisan record: %w", err)
			}
		}
	}

	return user, nil
}

func (s *DefaultAccountService) geocodeLocation(ctx context.Context, location string) (float64, float64) {
	if s.Geocoder == nil || strings.TrimSpace(location) == "" {
		return 0, 0
	}
	lat, lon, err := s.Geocoder.Geocode(ctx, location)
	if err != nil {
		s.log().Warn("geocoding failed", zap.String("location", location), zap.Error(err))
		return 0, 0
	}
	return lat, lon
}
