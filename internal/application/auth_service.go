package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mitrabahan/backend/internal/domain/entity"
	repo "github.com/mitrabahan/backend/internal/domain/repository"
	"github.com/mitrabahan/backend/pkg/helpers"
	"github.com/mitrabahan/backend/pkg/mailer"
)

var (
	// ErrInvalidCredentials covers unknown email and wrong password alike,
	// so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrRoleNotAllowed     = errors.New("role not allowed")
	ErrAccountNotFound    = errors.New("account not found")
)

// AuthService owns registration, login, and token issuance.
type AuthService struct {
	Accounts    repo.AccountRepository
	JWT         *helpers.JWTManager
	Pub         *helpers.RabbitPublisher
	Logger      *logrus.Logger
	AppName     string
	MailEnabled bool
}

func NewAuthService(accounts repo.AccountRepository, jwt *helpers.JWTManager, pub *helpers.RabbitPublisher, logger *logrus.Logger, appName string, mailEnabled bool) *AuthService {
	return &AuthService{Accounts: accounts, JWT: jwt, Pub: pub, Logger: logger, AppName: appName, MailEnabled: mailEnabled}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Company  string
	Role     string
}

// NormalizeEmail lowercases and trims an address; all lookups and the
// unique constraint operate on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with the declared or default role and
// returns it with a freshly issued token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.Account, string, error) {
	role := in.Role
	if role == "" {
		role = entity.DefaultRole
	}
	// Admin accounts come from the seeder only.
	if role == entity.RoleAdmin || !entity.ValidRole(role) {
		return nil, "", ErrRoleNotAllowed
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	a := &entity.Account{
		Name:     strings.TrimSpace(in.Name),
		Email:    NormalizeEmail(in.Email),
		Password: hash,
		Company:  strings.TrimSpace(in.Company),
		Role:     role,
	}
	if err := s.Accounts.Create(ctx, a); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, _, err := s.JWT.Generate(a.ID, a.Email, a.Role)
	if err != nil {
		return nil, "", err
	}

	s.enqueueWelcome(ctx, a)
	return a, token, nil
}

// Login verifies credentials, updates last login, and issues a token.
// Unknown email and bad password return the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.Account, string, error) {
	a, err := s.Accounts.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil || a == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(a.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.Accounts.UpdateLastLogin(ctx, a.ID, now); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("account_id", a.ID).Warn("last login update failed")
	}
	a.LastLogin = &now

	token, _, err := s.JWT.Generate(a.ID, a.Email, a.Role)
	if err != nil {
		return nil, "", err
	}
	return a, token, nil
}

// GetProfile loads the caller's account.
func (s *AuthService) GetProfile(ctx context.Context, accountID string) (*entity.Account, error) {
	a, err := s.Accounts.GetByID(ctx, accountID)
	if err != nil || a == nil {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// SetWallet records the caller's external wallet address.
func (s *AuthService) SetWallet(ctx context.Context, accountID, address string) error {
	if err := s.Accounts.UpdateWallet(ctx, accountID, strings.TrimSpace(address)); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	return nil
}

func (s *AuthService) enqueueWelcome(ctx context.Context, a *entity.Account) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       a.Email,
		Template: mailer.TemplateWelcome,
		Data: map[string]any{
			"AppName": s.AppName,
			"Name":    a.Name,
			"Company": a.Company,
			"Role":    a.Role,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("to", a.Email).Warn("welcome mail enqueue failed")
	}
}
