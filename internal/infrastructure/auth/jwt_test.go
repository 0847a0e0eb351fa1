package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/infrastructure/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "storefront-backend-test",
	})
}

func TestGenerateToken_Validate_RoundTrip(t *testing.T) {
	svc := newTestJWTService()
	outletID := uuid.New()

	token, err := svc.GenerateToken(GenerateTokenInput{
		UserID:   "user-1",
		Role:     "outlet_admin",
		OutletID: &outletID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "outlet_admin", claims.Role)
	assert.Equal(t, outletID.String(), claims.OutletID)
	assert.Equal(t, "storefront-backend-test", claims.Issuer)
}

func TestGenerateToken_NoOutlet(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateToken(GenerateTokenInput{
		UserID: "user-2",
		Role:   "super_admin",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Empty(t, claims.OutletID)
}

func TestValidateToken_Malformed(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(config.JWTConfig{
		Secret:                "a-completely-different-secret-key",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "storefront-backend-test",
	})

	token, err := other.GenerateToken(GenerateTokenInput{UserID: "user-1", Role: "super_admin"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration: -1 * time.Minute,
		Issuer:                "storefront-backend-test",
	})

	token, err := svc.GenerateToken(GenerateTokenInput{UserID: "user-1", Role: "super_admin"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	svc := newTestJWTService()

	// Unsigned token must be rejected regardless of claims
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_MissingUserID(t *testing.T) {
	svc := newTestJWTService()

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: "super_admin",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-key-for-unit-tests-only"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestResolveSession(t *testing.T) {
	svc := newTestJWTService()
	outletID := uuid.New()

	tests := []struct {
		name         string
		input        GenerateTokenInput
		wantRole     identity.Role
		wantOutletID *uuid.UUID
	}{
		{
			name:         "outlet admin with outlet",
			input:        GenerateTokenInput{UserID: "u1", Role: "outlet_admin", OutletID: &outletID},
			wantRole:     identity.RoleOutletAdmin,
			wantOutletID: &outletID,
		},
		{
			name:     "super admin without outlet",
			input:    GenerateTokenInput{UserID: "u2", Role: "super_admin"},
			wantRole: identity.RoleSuperAdmin,
		},
		{
			name:     "unknown role falls back to customer",
			input:    GenerateTokenInput{UserID: "u3", Role: "auditor"},
			wantRole: identity.RoleCustomer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.GenerateToken(tt.input)
			require.NoError(t, err)

			session, err := svc.ResolveSession(token)
			require.NoError(t, err)

			assert.Equal(t, tt.input.UserID, session.UserID)
			assert.Equal(t, tt.wantRole, session.Role)
			if tt.wantOutletID != nil {
				require.NotNil(t, session.OutletID)
				assert.Equal(t, *tt.wantOutletID, *session.OutletID)
			} else {
				assert.Nil(t, session.OutletID)
			}
		})
	}
}

func TestResolveSession_MalformedOutletClaim(t *testing.T) {
	svc := newTestJWTService()

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   "u1",
		Role:     "outlet_admin",
		OutletID: "not-a-uuid",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-key-for-unit-tests-only"))
	require.NoError(t, err)

	_, err = svc.ResolveSession(signed)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}
