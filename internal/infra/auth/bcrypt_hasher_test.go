package auth

import (
	"testing"

	"launchpad/config"
	domainerrors "launchpad/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(policy *config.PasswordStrengthConfig) *bcryptHasher {
	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: policy,
	}
	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	t.Parallel()
	hasher := newTestHasher(nil)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", hash)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("WrongPass123!", hash))
	assert.False(t, hasher.Check("StrongPass123!", ""), "accounts without a password never match")

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_IgnoresOutOfRangeCost(t *testing.T) {
	t.Parallel()
	h := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	t.Parallel()
	hasher := newTestHasher(&config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        32,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	})

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "strong", password: "StrongPass123!", wantErr: false},
		{name: "too short", password: "Ab1!", wantErr: true},
		{name: "too long", password: "Aa1!aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", wantErr: true},
		{name: "no uppercase", password: "password123!", wantErr: true},
		{name: "no lowercase", password: "PASSWORD123!", wantErr: true},
		{name: "no number", password: "PasswordABC!", wantErr: true},
		{name: "no special", password: "Password123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.NotEmpty(t, appErr.Details())
		})
	}
}

func TestBcryptHasher_DefaultPolicyOnlyChecksLength(t *testing.T) {
	t.Parallel()
	hasher := newTestHasher(nil)

	assert.NoError(t, hasher.ValidatePasswordStrength("longenough"))
	assert.Error(t, hasher.ValidatePasswordStrength("short"))
}
