package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// mensagens exibidas direto na UI
var businessMessages = map[string]string{
	"invalid_date":                   "Data inválida. Use o formato AAAA-MM-DD.",
	"invalid_time":                   "Horário fora do catálogo da clínica.",
	"invalid_date_range":             "A data inicial não pode ser posterior à final.",
	"invalid_leave_type":             "Tipo de folga desconhecido.",
	"invalid_state":                  "A consulta não está mais em estado agendado.",
	"leave_too_soon":                 "Folga sob demanda exige pelo menos 2 dias de antecedência.",
	"missing_document":               "Licença médica exige documento anexado.",
	"invalid_document_type":          "Anexo deve ser PDF, JPG ou PNG.",
	"invalid_document":               "Não foi possível ler o arquivo anexado.",
	"doctor_specialization_mismatch": "O médico escolhido não atende essa especialização.",
	"too_late_to_cancel":             "Não é possível alterar com menos de 24 horas de antecedência.",
	"doctor_time_conflict":           "O médico já tem consulta a menos de 30 minutos desse horário.",
	"patient_time_conflict":          "Você já tem uma consulta nesse horário.",
	"summary_already_exists":         "Essa consulta já possui resumo de atendimento.",
	"appointment_not_found":          "Consulta não encontrada.",
	"doctor_not_found":               "Médico não encontrado.",
	"patient_not_found":              "Paciente não encontrado.",
	"leave_not_found":                "Pedido de folga não encontrado.",
}

// writeBusinessError traduz o código de negócio em status + mensagem.
func writeBusinessError(c *gin.Context, err error) {
	be, ok := httperr.AsBusiness(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		return
	}

	msg := businessMessages[be.Code]
	if msg == "" {
		msg = be.Code
	}

	switch be.Code {
	case "appointment_not_found", "doctor_not_found", "patient_not_found", "leave_not_found":
		httperr.NotFound(c, be.Code, msg)

	case "doctor_time_conflict", "patient_time_conflict", "summary_already_exists":
		httperr.Conflict(c, be.Code, msg)

	default:
		httperr.BadRequest(c, be.Code, msg)
	}
}
