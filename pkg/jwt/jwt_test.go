package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/punto-venta/pkg/jwt"
)

const (
	testSecret = "secreto-de-pruebas-unitarias"
	testIssuer = "punto-venta-test"
)

var testActor = pkgjwt.Actor{
	UserID: 7,
	Email:  "cajero@tienda.co",
	Role:   "CASHIER",
	Name:   "cajero",
}

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, testActor, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	actor, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, testActor, actor, "los claims deben sobrevivir el viaje completo")
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, testActor, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secreto", token)
	assert.Error(t, err, "un token firmado con otro secreto debe rechazarse")
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración negativa: el token nace vencido.
	token, err := pkgjwt.Generate(testSecret, testActor, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, token)
	assert.Error(t, err, "un token vencido debe rechazarse")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testActor, testIssuer, 60)
	assert.Error(t, err)
}

func TestParse_Basura(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "no.es.jwt")
	assert.Error(t, err)
}
