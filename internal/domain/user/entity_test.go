//go:build unit

package user_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/user"
	"hotel-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.Name{}, user.Email{}),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		name, _ := user.NewName("Test Guest")
		email, _ := user.NewEmail("guest@example.com")
		createdAt := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
		expected := user.NewUser(name, email, "hashed_password", user.RoleUser, "", createdAt)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.Empty(t, actual.ID(), "id is assigned by the repository")
		assert.True(t, actual.HasPassword())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "前後の空白と大文字OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  Guest@Example.COM ") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("名前検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空の名前NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("") },
				errIs:  user.ErrNameRequired,
			},
			{
				name:   "空白のみNG",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrNameRequired,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "user ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("user") },
			},
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.AsAdmin() },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestEmailNormalization(t *testing.T) {
	email, err := user.NewEmail("  Guest@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", email.Value())
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("12345")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("123456")
	require.NoError(t, err)
	assert.Equal(t, "123456", p.Value())
}

func TestBackfillPicture(t *testing.T) {
	later := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("未設定なら設定される", func(t *testing.T) {
		u := builder.NewUserBuilder().AsGoogleAccount().BuildStored()

		changed := u.BackfillPicture("https://lh3.example.com/me.png", later)

		assert.True(t, changed)
		assert.Equal(t, "https://lh3.example.com/me.png", u.Picture())
		assert.Equal(t, later, u.UpdatedAt())
	})

	t.Run("設定済みなら上書きしない", func(t *testing.T) {
		u := builder.NewUserBuilder().WithPicture("https://img.example.com/old.png").BuildStored()
		before := u.UpdatedAt()

		changed := u.BackfillPicture("https://lh3.example.com/new.png", later)

		assert.False(t, changed)
		assert.Equal(t, "https://img.example.com/old.png", u.Picture())
		assert.Equal(t, before, u.UpdatedAt())
	})

	t.Run("空の画像は無視", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildStored()

		assert.False(t, u.BackfillPicture("", later))
		assert.Empty(t, u.Picture())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
