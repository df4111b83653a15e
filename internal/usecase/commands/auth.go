package commands

import (
	"context"
	"log/slog"
	"strings"

	"hotel-booking/internal/domain/auth"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/password"
)

var (
	ErrUserExists      = errs.Mark(errs.New("User already exists"), errs.ErrConflict)
	ErrTokenGeneration = errs.New("token generation failed")
)

type AuthResult struct {
	Token   string
	UserID  string
	Role    user.Role
	Name    string
	Email   string
	Picture string
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthCommands interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GoogleLogin(ctx context.Context, idToken string) (*AuthResult, error)
}

type authCommandsImpl struct {
	users    UserRepository
	google   GoogleVerifier
	tokens   TokenIssuer
	clock    clock.Clock
	hashCost int
}

func NewAuthCommands(users UserRepository, google GoogleVerifier, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		users:    users,
		google:   google,
		tokens:   tokens,
		clock:    clk,
		hashCost: password.DefaultCost,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	reg, err := auth.NewRegistration(input.Name, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	existing, err := a.users.FindByEmail(ctx, reg.Email().Value())
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := password.HashPasswordWithCost(reg.Password().Value(), a.hashCost)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(reg.Name(), reg.Email(), hash, user.RoleUser, "", a.clock.Now())
	id, err := a.users.Create(ctx, u)
	if err != nil {
		// Lost a race against a concurrent registration; the unique index decided.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return a.issue(id, u)
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*AuthResult, error) {
	creds, err := auth.NewCredentials(email, pass)
	if err != nil {
		return nil, err
	}

	u, err := a.users.FindByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.HasPassword() {
		return nil, auth.ErrInvalidCredentials
	}
	if err := password.ComparePassword(u.PasswordHash(), creds.Password()); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return a.issue(u.ID(), u)
}

func (a *authCommandsImpl) GoogleLogin(ctx context.Context, idToken string) (*AuthResult, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, errs.Validation("token is required")
	}
	profile, err := a.google.Verify(ctx, idToken)
	if err != nil {
		if errs.Is(err, auth.ErrGoogleNotConfigured) {
			slog.Error("google sign-in requested without GOOGLE_CLIENT_ID")
			return nil, err
		}
		slog.Warn("google token rejected", "error", err.Error())
		return nil, auth.ErrInvalidGoogleToken
	}

	email, err := user.NewEmail(profile.Email)
	if err != nil {
		return nil, auth.ErrInvalidGoogleToken
	}

	now := a.clock.Now()
	u, err := a.users.FindByEmail(ctx, email.Value())
	switch {
	case err == nil:
		if u.BackfillPicture(profile.Picture, now) {
			if err := a.users.UpdatePicture(ctx, u.ID(), u.Picture(), now); err != nil {
				slog.Warn("failed to backfill picture", "user_id", u.ID(), "error", err.Error())
			}
		}
		return a.issue(u.ID(), u)
	case infra.IsKind(err, infra.KindNotFound):
	default:
		return nil, err
	}

	name, err := user.NewName(profile.Name)
	if err != nil {
		name, err = user.NewName(strings.Split(email.Value(), "@")[0])
		if err != nil {
			return nil, err
		}
	}
	u = user.NewUser(name, email, "", user.RoleUser, profile.Picture, now)
	id, err := a.users.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	return a.issue(id, u)
}

func (a *authCommandsImpl) issue(id string, u *user.User) (*AuthResult, error) {
	token, err := a.tokens.GenerateToken(id, u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{
		Token:   token,
		UserID:  id,
		Role:    u.Role(),
		Name:    u.Name().Value(),
		Email:   u.Email().Value(),
		Picture: u.Picture(),
	}, nil
}
