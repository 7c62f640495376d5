package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/config"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

func newTestService(t *testing.T, secret string, now func() time.Time) TokenService {
	t.Helper()
	svc, err := NewTokenServiceWithClock(config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: 60,
	}, now)
	require.NoError(t, err)
	return svc
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()
		_, err := NewTokenService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("rejects non-positive lifetime", func(t *testing.T) {
		t.Parallel()
		_, err := NewTokenService(config.AuthConfig{JWTSecret: testSecret})
		require.Error(t, err)
	})

	t.Run("accepts valid config", func(t *testing.T) {
		t.Parallel()
		svc, err := NewTokenService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 15})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	identity := Identity{UserID: uuid.New(), Email: "ada@example.com", Name: "Ada Lovelace"}
	svc := newTestService(t, testSecret, fixedClock(fixedTime))

	t.Run("round trips identity", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(context.Background(), identity)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Len(t, strings.Split(token, "."), 3)

		claims, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)

		assert.Equal(t, identity.UserID.String(), claims.Subject)
		assert.Equal(t, identity.Email, claims.Email)
		assert.Equal(t, identity.Name, claims.Name)
		assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
		assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
		assert.NotEmpty(t, claims.ID)

		userID, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, identity.UserID, userID)
	})

	t.Run("unique token ids", func(t *testing.T) {
		t.Parallel()
		first, err := svc.GenerateToken(context.Background(), identity)
		require.NoError(t, err)
		second, err := svc.GenerateToken(context.Background(), identity)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("rejects nil user id", func(t *testing.T) {
		t.Parallel()
		_, err := svc.GenerateToken(context.Background(), Identity{Email: "ada@example.com"})
		require.Error(t, err)
	})
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	identity := Identity{UserID: uuid.New(), Email: "ada@example.com", Name: "Ada"}

	issue := func(t *testing.T, secret string, at time.Time) string {
		t.Helper()
		token, err := newTestService(t, secret, fixedClock(at)).GenerateToken(context.Background(), identity)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		now     time.Time
		wantErr error
	}{
		{
			name:  "valid token",
			token: func(t *testing.T) string { return issue(t, testSecret, fixedTime) },
			now:   fixedTime.Add(30 * time.Minute),
		},
		{
			name:  "expired within leeway",
			token: func(t *testing.T) string { return issue(t, testSecret, fixedTime) },
			now:   fixedTime.Add(61 * time.Minute),
		},
		{
			name:    "expired token",
			token:   func(t *testing.T) string { return issue(t, testSecret, fixedTime) },
			now:     fixedTime.Add(2 * time.Hour),
			wantErr: ErrExpiredToken,
		},
		{
			name:    "wrong secret",
			token:   func(t *testing.T) string { return issue(t, wrongSecret, fixedTime) },
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "malformed token",
			token:   func(t *testing.T) string { return "not.a.token" },
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "empty token",
			token:   func(t *testing.T) string { return "" },
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name: "tampered payload",
			token: func(t *testing.T) string {
				parts := strings.Split(issue(t, testSecret, fixedTime), ".")
				other := strings.Split(issue(t, testSecret, fixedTime.Add(time.Minute)), ".")
				return parts[0] + "." + other[1] + "." + parts[2]
			},
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name: "unexpected signing method",
			token: func(t *testing.T) string {
				claims := jwt.RegisteredClaims{
					Subject:   identity.UserID.String(),
					IssuedAt:  jwt.NewNumericDate(fixedTime),
					ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
				require.NoError(t, err)
				return token
			},
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name: "subject is not a user id",
			token: func(t *testing.T) string {
				claims := jwt.RegisteredClaims{
					Subject:   "42",
					IssuedAt:  jwt.NewNumericDate(fixedTime),
					ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
				require.NoError(t, err)
				return token
			},
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				claims := jwt.RegisteredClaims{
					Subject:  identity.UserID.String(),
					IssuedAt: jwt.NewNumericDate(fixedTime),
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
				require.NoError(t, err)
				return token
			},
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestService(t, testSecret, fixedClock(tt.now))

			claims, err := svc.ValidateToken(context.Background(), tt.token(t))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrUnauthenticated)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, identity.UserID.String(), claims.Subject)
		})
	}
}
