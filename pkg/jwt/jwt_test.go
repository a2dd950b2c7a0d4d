package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/multistore-api/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "ops", "multistore-api", 5)
	require.NoError(t, err)

	sub, err := pkgjwt.Parse(secret, "multistore-api", tok)
	require.NoError(t, err)
	assert.Equal(t, "ops", sub)
}

func TestParse_Rechazos(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "ops", "multistore-api", 5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", "multistore-api", tok)
	assert.Error(t, err, "firma incorrecta")

	_, err = pkgjwt.Parse(secret, "otro-emisor", tok)
	assert.Error(t, err, "emisor distinto")

	_, err = pkgjwt.Parse("", "", tok)
	assert.Error(t, err, "secret vacío")
}

func TestParse_Expirado(t *testing.T) {
	claims := gojwt.RegisteredClaims{
		Subject:   "ops",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(secret, "", tok)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestParse_SinExpiracion(t *testing.T) {
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{Subject: "ops"}).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(secret, "", tok)
	assert.Error(t, err, "un token sin exp no debe aceptarse")
}
