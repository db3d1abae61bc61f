package auth

import (
	"testing"
	"time"

	"edusync/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey: secret,
			Issuer:    "edusync-api",
			Audience:  "edusync-clients",
			TTL:       7 * 24 * time.Hour,
		},
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := svc.IssueToken("x@y.com", "Instructor")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "x@y.com", claims.Subject)
	assert.Equal(t, "x@y.com", claims.Email)
	assert.Equal(t, "x@y.com", claims.Name)
	assert.Equal(t, "Instructor", claims.Role)
	assert.Equal(t, "edusync-api", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"edusync-clients"}, claims.Audience)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_IssueRequiresEmailAndRole(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	_, err = svc.IssueToken("", "Student")
	assert.ErrorIs(t, err, ErrInvalidTokenArgument)

	_, err = svc.IssueToken("a@b.com", "")
	assert.ErrorIs(t, err, ErrInvalidTokenArgument)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := newTestJWTConfig("secret")
	issuer := &jwtService{
		secret:   []byte(cfg.JWT.SecretKey),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
		ttl:      cfg.JWT.TTL,
		now:      func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) },
	}

	token, err := issuer.IssueToken("x@y.com", "Instructor")
	require.NoError(t, err)

	verifier, err := NewJWTService(cfg)
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestJWTService_RejectsWrongSigningKey(t *testing.T) {
	signer, err := NewJWTService(newTestJWTConfig("first-secret"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("second-secret"))
	require.NoError(t, err)

	token, err := signer.IssueToken("x@y.com", "Student")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
}

func TestJWTService_RejectsForeignIssuerAndAudience(t *testing.T) {
	signerCfg := newTestJWTConfig("secret")
	signerCfg.JWT.Issuer = "someone-else"
	signer, err := NewJWTService(signerCfg)
	require.NoError(t, err)

	verifier, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	token, err := signer.IssueToken("x@y.com", "Student")
	require.NoError(t, err)
	_, err = verifier.ValidateToken(token)
	assert.True(t, errors.Is(err, jwt.ErrTokenInvalidIssuer))

	signerCfg = newTestJWTConfig("secret")
	signerCfg.JWT.Audience = "other-clients"
	signer, err = NewJWTService(signerCfg)
	require.NoError(t, err)

	token, err = signer.IssueToken("x@y.com", "Student")
	require.NoError(t, err)
	_, err = verifier.ValidateToken(token)
	assert.True(t, errors.Is(err, jwt.ErrTokenInvalidAudience))
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, jwt.ErrTokenMalformed))
}
