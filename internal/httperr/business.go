package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// statusFor mapeia os códigos de negócio para HTTP: 400 validação, 401 auth,
// 403 sem permissão, 404 não encontrado (inclusive registros de outro
// tenant), 422 conflito ou estado inválido.
func statusFor(code string) int {
	switch {
	case code == "unauthenticated":
		return http.StatusUnauthorized
	case code == "forbidden":
		return http.StatusForbidden
	case strings.HasSuffix(code, "_not_found"):
		return http.StatusNotFound
	case code == "time_conflict",
		code == "no_professional_available",
		code == "invalid_state":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

var messages = map[string]string{
	"time_conflict":             "Conflito de horário: o profissional já possui um atendimento neste período.",
	"no_professional_available": "Nenhum profissional disponível neste horário.",
	"invalid_state":             "O agendamento não está em um estado que permita esta operação.",
	"appointment_not_found":     "Agendamento não encontrado.",
	"service_not_found":         "Serviço não encontrado.",
	"tenant_not_found":          "Estabelecimento não encontrado.",
	"professional_not_found":    "Profissional não encontrado.",
	"customer_not_found":        "Cliente não encontrado.",
	"forbidden":                 "Sem permissão para esta operação.",
	"unauthenticated":           "Sessão inválida.",
	"too_soon":                  "Horário muito em cima da hora.",
	"invalid_time_range":        "Intervalo de horário inválido.",
	"invalid_date_or_time":      "Data ou hora inválida.",
	"public_booking_disabled":   "Agendamento online desabilitado para este estabelecimento.",
}

// WriteBusiness escreve o erro de negócio com o status adequado e devolve true;
// devolve false quando err não é um BusinessError (o handler trata como 500).
func WriteBusiness(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	msg := be.Message
	if msg == "" {
		msg = messages[be.Code]
	}

	Write(c, statusFor(be.Code), be.Code, msg)
	return true
}
