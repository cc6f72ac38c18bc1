package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name       string
		bcryptCost string
		pepper     string
		wantCost   int
		wantErr    bool
	}{
		{name: "default cost", wantCost: 12},
		{name: "valid cost", bcryptCost: "10", wantCost: 10},
		{name: "cost too low", bcryptCost: "9", wantErr: true},
		{name: "cost too high", bcryptCost: "15", wantErr: true},
		{name: "invalid cost", bcryptCost: "invalid", wantErr: true},
		{name: "with pepper", bcryptCost: "12", pepper: "test-pepper", wantCost: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.bcryptCost)
			t.Setenv("PASSWORD_PEPPER", tt.pepper)

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
			assert.Equal(t, tt.pepper, cfg.Pepper)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, cfg.VerifyPassword("correct horse", hash))
	assert.False(t, cfg.VerifyPassword("wrong horse", hash))
	assert.False(t, cfg.VerifyPassword("correct horse", "not-a-hash"))
}

func TestPasswordConfig_Pepper(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "pepper-one"}
	hash, err := peppered.HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("s3cret", hash))

	rotated := &PasswordConfig{BcryptCost: 10, Pepper: "pepper-two"}
	assert.False(t, rotated.VerifyPassword("s3cret", hash))

	plain := &PasswordConfig{BcryptCost: 10}
	assert.False(t, plain.VerifyPassword("s3cret", hash))
}

func TestPasswordConfig_SaltUniqueness(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}
	first, err := cfg.HashPassword("same")
	require.NoError(t, err)
	second, err := cfg.HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestPasswordConfig_PasswordExceeding72Bytes(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	// bcrypt rejects inputs longer than 72 bytes instead of truncating.
	hash, err := cfg.HashPassword(strings.Repeat("a", 100))
	assert.Error(t, err)
	assert.Empty(t, hash)
}
