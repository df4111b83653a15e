//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/auth"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"
	commandsmock "hotel-booking/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func repoErr(kind infra.RepositoryErrorKind) error {
	return infra.RepositoryError{Kind: kind}
}

type AuthCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	users    *commandsmock.MockUserRepository
	google   *commandsmock.MockGoogleVerifier
	tokens   *commandsmock.MockTokenIssuer
	sut      commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.users = commandsmock.NewMockUserRepository(s.mockCtrl)
	s.google = commandsmock.NewMockGoogleVerifier(s.mockCtrl)
	s.tokens = commandsmock.NewMockTokenIssuer(s.mockCtrl)
	s.sut = commands.NewAuthCommands(s.users, s.google, s.tokens, clock.NewMockClock(fixedNow))
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestRegister() {
	input := builder.NewAuthBuilder().BuildRegisterInput()
	newID := builder.NewUserBuilder().ID

	s.Run("success: stores a hashed password and issues a token", func() {
		s.users.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(nil, repoErr(infra.KindNotFound))
		s.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) (string, error) {
			s.Equal(user.RoleUser, u.Role())
			s.NotEqual(input.Password, u.PasswordHash())
			s.NoError(password.ComparePassword(u.PasswordHash(), input.Password))
			s.Equal(fixedNow, u.CreatedAt())
			return newID, nil
		})
		s.tokens.EXPECT().GenerateToken(newID, user.RoleUser).Return("jwt-token", nil)

		res, err := s.sut.Register(s.ctx, input)

		s.Require().NoError(err)
		s.Equal(&commands.AuthResult{Token: "jwt-token", UserID: newID, Role: user.RoleUser, Name: input.Name, Email: input.Email}, res)
	})

	s.Run("error: existing email is a conflict", func() {
		s.users.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(builder.NewUserBuilder().BuildStored(), nil)

		_, err := s.sut.Register(s.ctx, input)

		s.ErrorIs(err, commands.ErrUserExists)
		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("error: duplicate key on insert is a conflict", func() {
		s.users.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(nil, repoErr(infra.KindNotFound))
		s.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", repoErr(infra.KindDuplicateKey))

		_, err := s.sut.Register(s.ctx, input)

		s.ErrorIs(err, commands.ErrUserExists)
	})

	s.Run("error: validation happens before any lookup", func() {
		cases := []struct {
			name  string
			in    commands.RegisterInput
			errIs error
		}{
			{name: "short password", in: commands.RegisterInput{Name: "A", Email: "a@example.com", Password: "12345"}, errIs: user.ErrPasswordTooWeak},
			{name: "bad email", in: commands.RegisterInput{Name: "A", Email: "nope", Password: "123456"}, errIs: user.ErrInvalidEmail},
			{name: "blank name", in: commands.RegisterInput{Name: " ", Email: "a@example.com", Password: "123456"}, errIs: user.ErrNameRequired},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				_, err := s.sut.Register(s.ctx, tc.in)
				s.ErrorIs(err, tc.errIs)
			})
		}
	})

	s.Run("error: lookup failure is passed through", func() {
		s.users.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(nil, repoErr(infra.KindDBFailure))

		_, err := s.sut.Register(s.ctx, input)

		s.True(infra.IsKind(err, infra.KindDBFailure))
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	hash, err := password.HashPasswordWithCost("password123", bcrypt.MinCost)
	s.Require().NoError(err)
	stored := builder.NewUserBuilder().WithPasswordHash(hash).BuildStored()

	s.Run("success", func() {
		s.users.EXPECT().FindByEmail(gomock.Any(), "guest@example.com").Return(stored, nil)
		s.tokens.EXPECT().GenerateToken(stored.ID(), user.RoleUser).Return("jwt-token", nil)

		res, err := s.sut.Login(s.ctx, " Guest@Example.com", "password123")

		s.Require().NoError(err)
		s.Equal(stored.ID(), res.UserID)
		s.Equal("jwt-token", res.Token)
	})

	s.Run("error: every mismatch is the same generic error", func() {
		cases := []struct {
			name   string
			stored func() (*user.User, error)
			pass   string
		}{
			{name: "unknown email", stored: func() (*user.User, error) { return nil, repoErr(infra.KindNotFound) }, pass: "password123"},
			{name: "wrong password", stored: func() (*user.User, error) { return stored, nil }, pass: "wrong-password"},
			{name: "google-only account", stored: func() (*user.User, error) {
				return builder.NewUserBuilder().AsGoogleAccount().BuildStored(), nil
			}, pass: "password123"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.users.EXPECT().FindByEmail(gomock.Any(), "guest@example.com").Return(tc.stored())

				_, err := s.sut.Login(s.ctx, "guest@example.com", tc.pass)

				s.ErrorIs(err, auth.ErrInvalidCredentials)
			})
		}
	})

	s.Run("error: token failure is marked", func() {
		s.users.EXPECT().FindByEmail(gomock.Any(), "guest@example.com").Return(stored, nil)
		s.tokens.EXPECT().GenerateToken(stored.ID(), user.RoleUser).Return("", errs.New("signing failed"))

		_, err := s.sut.Login(s.ctx, "guest@example.com", "password123")

		s.True(errs.Is(err, commands.ErrTokenGeneration))
	})
}

func (s *AuthCommandsTestSuite) TestGoogleLogin() {
	profile := &auth.GoogleProfile{Subject: "1234", Email: "guest@example.com", Name: "Google Guest", Picture: "https://lh3.example.com/me.png"}

	s.Run("success: existing user gets the picture backfilled", func() {
		existing := builder.NewUserBuilder().BuildStored()
		s.google.EXPECT().Verify(gomock.Any(), "id-token").Return(profile, nil)
		s.users.EXPECT().FindByEmail(gomock.Any(), "guest@example.com").Return(existing, nil)
		s.users.EXPECT().UpdatePicture(gomock.Any(), existing.ID(), profile.Picture, fixedNow).Return(nil)
		s.tokens.EXPECT().GenerateToken(existing.ID(), user.RoleUser).Return("jwt-token", nil)

		res, err := s.sut.GoogleLogin(s.ctx, "id-token")

		s.Require().NoError(err)
		s.Equal(existing.ID(), res.UserID)
		s.Equal(profile.Picture, res.Picture)
	})

	s.Run("success: existing picture is kept", func() {
		existing := builder.NewUserBuilder().WithPicture("https://img.example.com/old.png").BuildStored()
		s.google.EXPECT().Verify(gomock.Any(), "id-token").Return(profile, nil)
		s.users.EXPECT().FindByEmail(gomock.Any(), "guest@example.com").Return(existing, nil)
		s.tokens.EXPECT().GenerateToken(existing.ID(), user.RoleUser).Return("jwt-token", nil)

		res, err := s.sut.GoogleLogin(s.ctx, "id-token")

		s.Require().NoError(err)
		s.Equal("https://img.example.com/old.png", res.Picture)
	})

	s.Run("success: backfill failure does not fail the login", func() {
		existing := builder.NewUserBuilder().BuildStored()
		s.google.EXPECT().Verify(gomock.Any(), "id-token").Return(profile, nil)
		s.users.EXPECT().FindByEmail(gomock.Any(), "guest@example.com").Return(existing, nil)
		s.users.EXPECT().UpdatePicture(gomock.Any(), existing.ID(), profile.Picture, fixedNow).Return(repoErr(infra.KindDBFailure))
		s.tokens.EXPECT().GenerateToken(existing.ID(), user.RoleUser).Return("jwt-token", nil)

		_, err := s.sut.GoogleLogin(s.ctx, "id-token")

		s.NoError(err)
	})

	s.Run("success: first sign-in creates a passwordless user", func() {
		newID := builder.NewUserBuilder().ID
		s.google.EXPECT().Verify(gomock.Any(), "id-token").Return(profile, nil)
		s.users.EXPECT().FindByEmail(gomock.Any(), "guest@example.com").Return(nil, repoErr(infra.KindNotFound))
		s.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) (string, error) {
			s.False(u.HasPassword())
			s.Equal("Google Guest", u.Name().Value())
			s.Equal(profile.Picture, u.Picture())
			return newID, nil
		})
		s.tokens.EXPECT().GenerateToken(newID, user.RoleUser).Return("jwt-token", nil)

		res, err := s.sut.GoogleLogin(s.ctx, "id-token")

		s.Require().NoError(err)
		s.Equal(newID, res.UserID)
	})

	s.Run("success: missing name falls back to the email local part", func() {
		s.google.EXPECT().Verify(gomock.Any(), "id-token").Return(&auth.GoogleProfile{Email: "solo@example.com"}, nil)
		s.users.EXPECT().FindByEmail(gomock.Any(), "solo@example.com").Return(nil, repoErr(infra.KindNotFound))
		s.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) (string, error) {
			s.Equal("solo", u.Name().Value())
			return "65f1a0c2e4b0a1b2c3d4e5f6", nil
		})
		s.tokens.EXPECT().GenerateToken(gomock.Any(), user.RoleUser).Return("jwt-token", nil)

		_, err := s.sut.GoogleLogin(s.ctx, "id-token")

		s.NoError(err)
	})

	s.Run("error: rejected token", func() {
		s.google.EXPECT().Verify(gomock.Any(), "bad-token").Return(nil, errs.New("audience mismatch"))

		_, err := s.sut.GoogleLogin(s.ctx, "bad-token")

		s.ErrorIs(err, auth.ErrInvalidGoogleToken)
		s.True(errs.Is(err, errs.ErrUnauthorized))
	})

	s.Run("error: missing client id is a server error", func() {
		s.google.EXPECT().Verify(gomock.Any(), "id-token").Return(nil, auth.ErrGoogleNotConfigured)

		_, err := s.sut.GoogleLogin(s.ctx, "id-token")

		s.ErrorIs(err, auth.ErrGoogleNotConfigured)
		s.False(errs.Is(err, errs.ErrUnauthorized))
	})

	s.Run("error: blank token is a validation error", func() {
		_, err := s.sut.GoogleLogin(s.ctx, "  ")

		s.True(errs.Is(err, errs.ErrValidation))
	})
}
