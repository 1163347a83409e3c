package leave

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ===============================
// Leave Request Rules
// ===============================

type Type string

const (
	TypeOnDemand  Type = "on_demand"
	TypeSickLeave Type = "sick_leave"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// MinOnDemandLeadDays: folga sob demanda exige 48h de antecedência.
const MinOnDemandLeadDays = 2

// Validate aplica as regras do pedido de folga, sem olhar a agenda de
// consultas. Só depende do "hoje" recebido.
//
//   - on_demand: start_date − hoje ≥ 2 dias
//   - sick_leave: documento anexado obrigatório
//   - sempre: start_date ≤ end_date
func Validate(lr *models.LeaveRequest, today time.Time) error {
	switch Type(lr.LeaveType) {
	case TypeOnDemand:
		if daysBetween(today, lr.StartDate) < MinOnDemandLeadDays {
			return httperr.ErrBusiness("leave_too_soon")
		}
	case TypeSickLeave:
		if lr.DocumentURL == "" {
			return httperr.ErrBusiness("missing_document")
		}
	default:
		return httperr.ErrBusiness("invalid_leave_type")
	}

	if lr.StartDate.After(lr.EndDate) {
		return httperr.ErrBusiness("invalid_date_range")
	}

	return nil
}

// CanDecide: só pedido pendente aceita approve/reject.
func CanDecide(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusPending
}

// daysBetween conta dias de calendário entre duas datas, ignorando a
// hora do dia.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
