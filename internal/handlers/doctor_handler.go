package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"gorm.io/gorm"
)

type DoctorHandler struct {
	db    *gorm.DB
	repo  domain.Repository
	cache *cache.DoctorCache
}

func NewDoctorHandler(
	db *gorm.DB,
	repo domain.Repository,
	doctorCache *cache.DoctorCache,
) *DoctorHandler {
	return &DoctorHandler{
		db:    db,
		repo:  repo,
		cache: doctorCache,
	}
}

// ListBySpecialization alimenta o seletor de médicos do formulário de
// agendamento. Sem especialização escolhida, lista vazia: o formulário
// exige a especialização primeiro.
//
// GET /api/doctors?specialization=2
func (h *DoctorHandler) ListBySpecialization(c *gin.Context) {
	specID, err := strconv.ParseUint(c.Query("specialization"), 10, 64)
	if err != nil || specID == 0 {
		httpresp.List(c, []dto.DoctorOptionDTO{})
		return
	}

	ctx := c.Request.Context()

	if opts, ok := h.cache.Get(ctx, uint(specID)); ok {
		httpresp.List(c, opts)
		return
	}

	doctors, err := h.repo.ListDoctorsBySpecialization(ctx, uint(specID))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	opts := make([]dto.DoctorOptionDTO, 0, len(doctors))
	for _, d := range doctors {
		opts = append(opts, dto.DoctorOptionDTO{
			ID:   d.ID,
			Name: d.DisplayName(),
		})
	}

	h.cache.Set(ctx, uint(specID), opts)

	httpresp.List(c, opts)
}

// ListSpecializations lista o catálogo de especializações da clínica.
//
// GET /api/specializations
func (h *DoctorHandler) ListSpecializations(c *gin.Context) {
	var specs []models.Specialization
	if err := h.db.Order("name").Find(&specs).Error; err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.List(c, specs)
}

// ListAppointmentTypes lista os tipos de consulta disponíveis.
//
// GET /api/appointment-types
func (h *DoctorHandler) ListAppointmentTypes(c *gin.Context) {
	var types []models.AppointmentType
	if err := h.db.Order("name").Find(&types).Error; err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.List(c, types)
}
