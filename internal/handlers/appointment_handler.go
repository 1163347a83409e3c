package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	usecase "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC       *usecase.CreateAppointment
	cancelUC       *usecase.CancelAppointment
	completeUC     *usecase.CompleteAppointment
	availabilityUC *usecase.GetAvailability
	listUC         *usecase.ListAppointments
	adminEditUC    *usecase.AdminEditAppointment
	adminCancelUC  *usecase.AdminCancelAppointment
	adminDeleteUC  *usecase.AdminDeleteAppointment
}

func NewAppointmentHandler(
	createUC *usecase.CreateAppointment,
	cancelUC *usecase.CancelAppointment,
	completeUC *usecase.CompleteAppointment,
	availabilityUC *usecase.GetAvailability,
	listUC *usecase.ListAppointments,
	adminEditUC *usecase.AdminEditAppointment,
	adminCancelUC *usecase.AdminCancelAppointment,
	adminDeleteUC *usecase.AdminDeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		cancelUC:       cancelUC,
		completeUC:     completeUC,
		availabilityUC: availabilityUC,
		listUC:         listUC,
		adminEditUC:    adminEditUC,
		adminCancelUC:  adminCancelUC,
		adminDeleteUC:  adminDeleteUC,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	DoctorID         *uint  `json:"doctor_id"`
	SpecializationID uint   `json:"specialization_id" binding:"required"`
	TypeID           uint   `json:"type_id" binding:"required"`
	Date             string `json:"date" binding:"required"`
	Time             string `json:"time" binding:"required"`
	Notes            string `json:"notes"`
}

type AdminCreateAppointmentRequest struct {
	PatientID uint `json:"patient_id" binding:"required"`
	CreateAppointmentRequest
}

type CompleteAppointmentRequest struct {
	Prescription    string `json:"prescription"`
	Recommendations string `json:"recommendations" binding:"required"`
}

type AdminEditAppointmentRequest struct {
	PatientID        uint   `json:"patient_id" binding:"required"`
	DoctorID         *uint  `json:"doctor_id"`
	SpecializationID uint   `json:"specialization_id" binding:"required"`
	TypeID           uint   `json:"type_id" binding:"required"`
	Date             string `json:"date" binding:"required"`
	Time             string `json:"time" binding:"required"`
	Notes            string `json:"notes"`
}

// --------- Handlers ---------

// GetAvailability é público: alimenta o seletor de horários do
// formulário de agendamento.
//
// GET /api/appointments/availability?doctor=3&date=2026-09-14
func (h *AppointmentHandler) GetAvailability(c *gin.Context) {
	doctorID, _ := strconv.ParseUint(c.Query("doctor"), 10, 64)
	dateStr := c.Query("date")

	slots, err := h.availabilityUC.Execute(c.Request.Context(), uint(doctorID), dateStr)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// Create agenda para o próprio paciente logado.
//
// POST /api/appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	patientID := c.GetUint(middleware.ContextProfileID)
	userID := c.GetUint(middleware.ContextUserID)

	ap, err := h.createUC.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		ActorUserID:      userID,
		PatientID:        patientID,
		DoctorID:         req.DoctorID,
		SpecializationID: req.SpecializationID,
		TypeID:           req.TypeID,
		Date:             req.Date,
		Time:             req.Time,
		Notes:            req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// AdminCreate agenda em nome de qualquer paciente.
//
// POST /api/admin/appointments
func (h *AppointmentHandler) AdminCreate(c *gin.Context) {
	var req AdminCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID := c.GetUint(middleware.ContextUserID)

	ap, err := h.createUC.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		ActorUserID:      userID,
		PatientID:        req.PatientID,
		DoctorID:         req.DoctorID,
		SpecializationID: req.SpecializationID,
		TypeID:           req.TypeID,
		Date:             req.Date,
		Time:             req.Time,
		Notes:            req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// List devolve a agenda conforme o papel: paciente vê as suas, médico
// as dele, admin vê tudo.
//
// GET /api/appointments?status=scheduled&upcoming=true
func (h *AppointmentHandler) List(c *gin.Context) {
	in := usecase.ListAppointmentsInput{
		Status:       c.Query("status"),
		UpcomingOnly: c.Query("upcoming") == "true",
	}

	profileID := c.GetUint(middleware.ContextProfileID)

	switch c.GetString(middleware.ContextAccountType) {
	case models.AccountPatient:
		in.PatientID = &profileID
	case models.AccountDoctor:
		in.DoctorID = &profileID
	}

	appointments, err := h.listUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, appointments)
}

// Cancel cancela a consulta do paciente logado.
//
// PATCH /api/appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	patientID := c.GetUint(middleware.ContextProfileID)
	userID := c.GetUint(middleware.ContextUserID)

	ap, err := h.cancelUC.Execute(c.Request.Context(), uint(id), patientID, userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// Complete registra o resumo do atendimento e fecha a consulta.
//
// POST /api/appointments/:id/summary
func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), usecase.CompleteAppointmentInput{
		ActorUserID:     c.GetUint(middleware.ContextUserID),
		AppointmentID:   uint(id),
		DoctorID:        c.GetUint(middleware.ContextProfileID),
		Prescription:    req.Prescription,
		Recommendations: req.Recommendations,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// AdminEdit remarca/realoca uma consulta sem o lock de 24h.
//
// PUT /api/admin/appointments/:id
func (h *AppointmentHandler) AdminEdit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req AdminEditAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.adminEditUC.Execute(c.Request.Context(), usecase.AdminEditAppointmentInput{
		ActorUserID:      c.GetUint(middleware.ContextUserID),
		AppointmentID:    uint(id),
		PatientID:        req.PatientID,
		DoctorID:         req.DoctorID,
		SpecializationID: req.SpecializationID,
		TypeID:           req.TypeID,
		Date:             req.Date,
		Time:             req.Time,
		Notes:            req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// AdminCancel cancela qualquer consulta agendada, sem o lock de 24h.
//
// PATCH /api/admin/appointments/:id/cancel
func (h *AppointmentHandler) AdminCancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.adminCancelUC.Execute(
		c.Request.Context(),
		uint(id),
		c.GetUint(middleware.ContextUserID),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// AdminDelete remove a consulta e o resumo associado.
//
// DELETE /api/admin/appointments/:id
func (h *AppointmentHandler) AdminDelete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	if err := h.adminDeleteUC.Execute(
		c.Request.Context(),
		uint(id),
		c.GetUint(middleware.ContextUserID),
	); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
