package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const DefaultAdminEmail = "admin@booking.com"

type Login struct {
	User      domain.SessionUser
	Token     string
	ExpiresAt time.Time
}

type AuthService struct {
	users   ports.UserRepo
	session ports.SessionRepo
	tokens  ports.TokenIssuer
	logger  logger.Logger
}

func NewAuthService(
	users ports.UserRepo,
	session ports.SessionRepo,
	tokens ports.TokenIssuer,
	logger logger.Logger,
) *AuthService {
	return &AuthService{
		users:   users,
		session: session,
		tokens:  tokens,
		logger:  logger,
	}
}

func (s *AuthService) Register(ctx context.Context, in domain.RegisterInput) (domain.SessionUser, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)

	var ve domain.ValidationErrors
	if !domain.MinLen(in.FirstName, 2) {
		ve.Add("firstName", "first name must be at least 2 characters")
	}
	if !domain.MinLen(in.LastName, 2) {
		ve.Add("lastName", "last name must be at least 2 characters")
	}
	if !domain.ValidEmail(in.Email) {
		ve.Add("email", "please enter a valid email address")
	}
	if len(in.Password) < 6 {
		ve.Add("password", "password must be at least 6 characters")
	}
	if in.Password != in.ConfirmPassword {
		ve.Add("confirmPassword", "passwords do not match")
	}
	if err := ve.Err(); err != nil {
		return domain.SessionUser{}, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return domain.SessionUser{}, err
	}

	u, err := s.users.AddUnique(ctx, domain.UserInput{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
	})
	if err != nil {
		return domain.SessionUser{}, err
	}

	s.logger.Info("user registered", logger.Int64("user_id", u.ID))
	return u.Sanitize(), nil
}

// Login checks credentials, makes the user the current session and issues a
// bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Login, error) {
	u, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	su := u.Sanitize()
	if err = s.session.Set(ctx, su); err != nil {
		return nil, err
	}

	token, exp, err := s.tokens.Issue(su)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in",
		logger.Int64("user_id", u.ID),
		logger.String("role", string(u.Role)),
	)

	return &Login{User: su, Token: token, ExpiresAt: exp}, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

func (s *AuthService) Session(ctx context.Context) (*domain.SessionUser, error) {
	return s.session.Get(ctx)
}

func (s *AuthService) Users(ctx context.Context) ([]domain.SessionUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.SessionUser, 0, len(users))
	for _, u := range users {
		res = append(res, u.Sanitize())
	}
	return res, nil
}

// SeedAdmin creates the default administrator unless some admin exists.
func (s *AuthService) SeedAdmin(ctx context.Context, password string) error {
	users, err := s.users.List(ctx)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	for _, u := range users {
		if u.Role == domain.RoleAdmin {
			return nil
		}
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	_, err = s.users.Add(ctx, domain.UserInput{
		FirstName:    "Admin",
		LastName:     "User",
		Email:        DefaultAdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	s.logger.Info("default admin seeded", logger.String("email", DefaultAdminEmail))
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
