package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Wire shape for every error response.
func Write(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Write(c, http.StatusConflict, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

// One table for the whole business-error taxonomy: code -> status + message.
var business = map[string]struct {
	status  int
	message string
}{
	"invalid_service":       {http.StatusBadRequest, "Serviço inválido."},
	"invalid_professional":  {http.StatusBadRequest, "Profissional inválido."},
	"service_not_offered":   {http.StatusBadRequest, "O profissional não executa o serviço informado."},
	"invalid_window":        {http.StatusBadRequest, "Intervalo de tempo inválido."},
	"invalid_state":         {http.StatusBadRequest, "Agendamento não pode ser editado no status atual."},
	"invalid_transition":    {http.StatusBadRequest, "Transição de status inválida."},
	"time_conflict":         {http.StatusConflict, "Conflito de horário para o profissional."},
	"resource_in_use":       {http.StatusConflict, "Registro possui agendamentos ativos."},
	"appointment_not_found": {http.StatusNotFound, "Agendamento não encontrado."},
	"forbidden":             {http.StatusForbidden, "Acesso negado."},
}

// Handle writes the mapped response for a BusinessError and reports
// whether err was one. Unknown codes fall through to 400.
func Handle(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	if m, ok := business[be.Code]; ok {
		Write(c, m.status, m.message)
		return true
	}

	Write(c, http.StatusBadRequest, be.Code)
	return true
}

// StatusFor exposes the mapped status for a business code, 500 otherwise.
func StatusFor(err error) int {
	var be BusinessError
	if errors.As(err, &be) {
		if m, ok := business[be.Code]; ok {
			return m.status
		}
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
