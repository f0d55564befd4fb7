package auth

import (
	"testing"
	"time"

	"roster/config"
	domainerrors "roster/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"), nil)

	userID := uuid.New()
	orgIDs := []uuid.UUID{uuid.New(), uuid.New()}

	token, err := svc.Generate(userID, orgIDs)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, orgIDs, claims.OrgIDs)
}

func TestJWTService_TokenExpiresInTenMinutes(t *testing.T) {
	svc := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"), nil)

	token, err := svc.Generate(uuid.New(), nil)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	expiresIn := time.Until(claims.ExpiresAt)
	assert.LessOrEqual(t, expiresIn, 10*time.Minute)
	assert.Greater(t, expiresIn, 9*time.Minute+50*time.Second)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	const secret = "test_access_secret_key_very_long_for_testing"
	svc := NewJWTService(testConfig(secret), nil)

	// Sign a token with the service's own key whose embedded expiry has
	// already passed; the signature is valid, the token is not.
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": uuid.New().String(),
		"orgIds": []string{},
		"iat":    now.Add(-20 * time.Minute).Unix(),
		"exp":    now.Add(-10 * time.Minute).Unix(),
	})
	token, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"), nil)

	claims, err := svc.Validate("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_WrongSigningKey(t *testing.T) {
	issuer := NewJWTService(testConfig("first_secret_key_very_long_for_testing"), nil)
	verifier := NewJWTService(testConfig("second_secret_key_very_long_for_testing"), nil)

	token, err := issuer.Generate(uuid.New(), nil)
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_RejectsNonHMACSigningMethod(t *testing.T) {
	svc := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"), nil)

	// alg=none tokens must never verify.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"userId": uuid.New().String(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_FallsBackToDevelopmentSecret(t *testing.T) {
	svc := NewJWTService(testConfig(""), nil)

	token, err := svc.Generate(uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.NoError(t, err)
}
