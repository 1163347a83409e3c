package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/leave"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type LeaveGormRepository struct {
	db *gorm.DB
}

func NewLeaveGormRepository(db *gorm.DB) *LeaveGormRepository {
	return &LeaveGormRepository{db: db}
}

func (r *LeaveGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doc models.Doctor
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *LeaveGormRepository) CreateLeaveRequest(
	ctx context.Context,
	lr *models.LeaveRequest,
) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *LeaveGormRepository) GetLeaveRequestByID(
	ctx context.Context,
	id uint,
) (*models.LeaveRequest, error) {

	var lr models.LeaveRequest
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		First(&lr, id).Error; err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *LeaveGormRepository) UpdateLeaveStatus(
	ctx context.Context,
	id uint,
	status string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.LeaveRequest{}).
		Where("id = ?", id).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LeaveGormRepository) ListForDoctor(
	ctx context.Context,
	doctorID uint,
) ([]models.LeaveRequest, error) {

	var lrs []models.LeaveRequest
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&lrs).Error; err != nil {
		return nil, err
	}
	return lrs, nil
}

func (r *LeaveGormRepository) ListAll(
	ctx context.Context,
) ([]models.LeaveRequest, error) {

	var lrs []models.LeaveRequest
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Order("created_at DESC").
		Find(&lrs).Error; err != nil {
		return nil, err
	}
	return lrs, nil
}

// Compile-time check
var _ domain.Repository = (*LeaveGormRepository)(nil)
