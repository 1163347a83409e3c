package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ModificationLock é a antecedência mínima para o paciente cancelar.
const ModificationLock = 24 * time.Hour

// StartsAt combina data + horário da consulta no fuso informado.
func StartsAt(ap *models.Appointment, loc *time.Location) time.Time {
	minutes, err := parseLabel(ap.Time)
	if err != nil {
		minutes = 0
	}
	return time.Date(
		ap.Date.Year(), ap.Date.Month(), ap.Date.Day(),
		minutes/60, minutes%60, 0, 0,
		loc,
	)
}

// CanModify: o paciente só mexe na consulta com 24h ou mais de folga.
func CanModify(ap *models.Appointment, now time.Time) bool {
	return StartsAt(ap, now.Location()).Sub(now) >= ModificationLock
}

// CancelByPatient respeita o modification lock de 24h.
func CancelByPatient(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	if !CanModify(ap, now) {
		return httperr.ErrBusiness("too_late_to_cancel")
	}

	ap.Status = string(StatusCanceled)
	ap.CanceledAt = &now
	return nil
}

// CancelByAdmin ignora o lock de 24h.
func CancelByAdmin(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCanceled)
	ap.CanceledAt = &now
	return nil
}

// Complete só acontece via criação do resumo da consulta.
func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
