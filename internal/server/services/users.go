// Package services holds the server's business operations. Handlers call
// into services; services call repositories and the auth primitives.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dmitrijs2005/testdash/internal/common"
	"github.com/dmitrijs2005/testdash/internal/logging"
	"github.com/dmitrijs2005/testdash/internal/server/auth"
	"github.com/dmitrijs2005/testdash/internal/server/models"
	"github.com/dmitrijs2005/testdash/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/testdash/internal/server/repositories/users"
)

// ErrMissingLoginFields is returned by Login when email or password is empty.
var ErrMissingLoginFields = common.NewValidationError(errors.New("email and password are required"))

// AuthResult is what a successful register or login hands back.
type AuthResult struct {
	Token string
	User  *models.User
}

// RegisterInput is the payload of a registration request.
type RegisterInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserService struct {
	repomanager       repomanager.RepositoryManager
	hasher            *auth.PasswordHasher
	tokens            *auth.TokenService
	passwordMinLength int
	now               func() time.Time
	logger            logging.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewUserService(m repomanager.RepositoryManager, hasher *auth.PasswordHasher, tokens *auth.TokenService, passwordMinLength int, logger logging.Logger) *UserService {
	return &UserService{
		repomanager:       m,
		hasher:            hasher,
		tokens:            tokens,
		passwordMinLength: passwordMinLength,
		now:               time.Now,
		logger:            logger.With("module", "users"),
	}
}

func (s *UserService) validateRegister(in RegisterInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.FullName, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&in.Password, validation.Required, validation.Length(s.passwordMinLength, 0)),
	)
}

func (s *UserService) validateUpdate(in models.ProfileUpdate) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.FullName, validation.Length(1, 200)),
		validation.Field(&in.Email, validation.Length(3, 254), is.Email),
		validation.Field(&in.Password, validation.Length(s.passwordMinLength, 0)),
	)
}

// Register creates a user and signs them in.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := s.validateRegister(in); err != nil {
		return nil, common.NewValidationError(err)
	}

	repo := s.repomanager.Users()

	if _, err := repo.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	user, err := repo.Create(ctx, &models.User{FullName: in.FullName, Email: in.Email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)

	return s.signIn(ctx, repo, user)
}

// Login checks credentials. An unknown email and a wrong password both yield
// common.ErrorInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingLoginFields
	}

	repo := s.repomanager.Users()

	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn a comparable amount of time so response latency does not
			// reveal whether the email is registered
			s.hasher.Verify(password, s.dummy())
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	return s.signIn(ctx, repo, user)
}

func (s *UserService) signIn(ctx context.Context, repo users.Repository, user *models.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	if err := repo.TouchLogin(ctx, user.ID, s.now()); err != nil {
		s.logger.Warn(ctx, "failed to record login", "user_id", user.ID, "error", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("testdash-timing-equalizer")
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}

// Authenticate resolves a session token to the user it was issued for. A
// token for a user that no longer exists is reported as invalid.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	return user, nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users().GetUserByID(ctx, userID)
}

// UpdateProfile overwrites only the non-empty fields of upd. The password is
// re-hashed only when a new one is supplied.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (*models.User, error) {
	if err := s.validateUpdate(upd); err != nil {
		return nil, common.NewValidationError(err)
	}

	var hash string
	if upd.Password != "" {
		h, err := s.hasher.Hash(upd.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
		}
		hash = h
	}

	var updated *models.User
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repo users.Repository) error {
		user, err := repo.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		if upd.FullName != "" {
			user.FullName = upd.FullName
		}
		if upd.Email != "" {
			user.Email = upd.Email
		}
		if hash != "" {
			user.PasswordHash = hash
		}

		updated, err = repo.Update(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "profile updated", "user_id", userID)
	return updated, nil
}

// DeleteProfile removes the account. Tokens already issued stay
// cryptographically valid but fail the gate's user lookup.
func (s *UserService) DeleteProfile(ctx context.Context, userID string) error {
	if err := s.repomanager.Users().Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info(ctx, "profile deleted", "user_id", userID)
	return nil
}
