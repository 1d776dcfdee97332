//go:build unit

package user_test

import (
	"testing"

	"residence-api/internal/domain/user"
	"residence-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "tenant@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleTenant, actual.Role())
		assert.NotNil(t, actual.ApartmentID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email with plus tag",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("tenant+gym@example.com") },
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("tenant.example.com") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("tenant@") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "tenant role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("tenant") },
			},
			{
				name:   "owner role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("owner") },
			},
			{
				name:   "admin role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("superuser") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("admin without apartment", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().
			WithRole("admin").
			WithoutApartment().
			BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, actual.ApartmentID())
	})
}

func TestCredentials(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		creds, err := user.NewCredentials("tenant@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "tenant@example.com", creds.Email().Value())
		assert.Equal(t, "password123", creds.Password().Value())
	})

	t.Run("short password", func(t *testing.T) {
		_, err := user.NewCredentials("tenant@example.com", "short")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("minimum length password", func(t *testing.T) {
		_, err := user.NewCredentials("tenant@example.com", "12345678")
		require.NoError(t, err)
	})

	t.Run("invalid email wins over password check", func(t *testing.T) {
		_, err := user.NewCredentials("not-an-email", "short")
		require.ErrorIs(t, err, user.ErrInvalidEmail)
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
