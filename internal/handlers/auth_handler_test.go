package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowhub/salon-scheduler/internal/config"
)

// O cadastro valida tudo antes de gravar qualquer coisa. O handler recebe um
// banco nulo de propósito: se alguma escrita acontecer antes da validação do
// e-mail, o teste estoura em vez de deixar um tenant órfão passar despercebido.
func TestRegister_RejectsInvalidEmailBeforeAnyWrite(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(nil, &config.Config{JWTSecret: "test"})

	r := gin.New()
	r.POST("/api/auth/register", h.Register)

	// .invalid é um TLD reservado que nunca resolve
	body := `{
		"tenant_name": "Salão Teste",
		"tenant_slug": "salao-teste",
		"name": "Dona",
		"email": "dona@salao.invalid",
		"password": "segredo1"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	require.NotPanics(t, func() { r.ServeHTTP(w, req) })

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_email_domain")
}
