package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"roster/config"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/service"
)

// insecureDevSecret signs tokens when no key is configured. It exists so the
// service can run locally without secrets and MUST NOT be used in production.
const insecureDevSecret = "test_secret"

// defaultAccessTokenTTL is the canonical token lifetime. The token is
// stateless, so the short TTL is the only invalidation mechanism.
const defaultAccessTokenTTL = 10 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte
	accessTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config, logger *slog.Logger) service.TokenService {
	secret := cfg.SecretKey.Access
	if secret == "" {
		secret = insecureDevSecret
		if logger != nil {
			logger.Warn("No signing key configured, using insecure development fallback")
		}
	}

	ttl := defaultAccessTokenTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret:    []byte(secret),
		accessTTL: ttl,
	}
}

// Generate creates a signed access token carrying the subject's identity and
// organisation memberships.
func (s *jwtService) Generate(userID uuid.UUID, orgIDs []uuid.UUID) (string, error) {
	now := time.Now()

	ids := make([]string, 0, len(orgIDs))
	for _, id := range orgIDs {
		ids = append(ids, id.String())
	}

	claims := jwt.MapClaims{
		"userId": userID.String(),
		"orgIds": ids,
		"iat":    now.Unix(),
		"exp":    now.Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Validate checks signature integrity and expiry. A token has exactly two
// states: valid (signature ok and not expired) and invalid (everything
// else). All invalid cases return the same unauthorized error so the caller
// cannot tell clients why verification failed.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token verification failed")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("unexpected claims format")
	}

	return parseClaims(mapClaims)
}

// AccessTokenTTL returns the configured token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

func parseClaims(mapClaims jwt.MapClaims) (*service.Claims, error) {
	subject, ok := mapClaims["userId"].(string)
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("subject missing from token")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("malformed subject in token")
	}

	var orgIDs []uuid.UUID
	if rawOrgIDs, ok := mapClaims["orgIds"].([]any); ok {
		for _, raw := range rawOrgIDs {
			str, ok := raw.(string)
			if !ok {
				continue
			}
			orgID, err := uuid.Parse(str)
			if err != nil {
				continue
			}
			orgIDs = append(orgIDs, orgID)
		}
	}

	claims := &service.Claims{
		UserID: userID,
		OrgIDs: orgIDs,
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
