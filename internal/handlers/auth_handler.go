package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

type AuthHandler struct {
	db          *gorm.DB
	config      *config.Config
	doctorCache *cache.DoctorCache
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	doctorCache *cache.DoctorCache,
) *AuthHandler {
	return &AuthHandler{
		db:          db,
		config:      cfg,
		doctorCache: doctorCache,
	}
}

// --------- Requests ---------

type RegisterPatientRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	Pesel     string `json:"pesel" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type RegisterDoctorRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	Pesel            string `json:"pesel" binding:"required"`
	FirstName        string `json:"first_name" binding:"required"`
	LastName         string `json:"last_name" binding:"required"`
	Phone            string `json:"phone"`
	SpecializationID uint   `json:"specialization_id" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	var req RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsPeselValid(req.Pesel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_pesel"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username_already_exists"})
		return
	}

	h.db.Model(&models.Patient{}).Where("pesel = ?", req.Pesel).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pesel_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	var birthDate *time.Time
	if req.BirthDate != "" {
		if d, err := time.Parse("2006-01-02", req.BirthDate); err == nil {
			birthDate = &d
		}
	}

	user := models.User{
		Username:     req.Username,
		Email:        email,
		PasswordHash: string(hashed),
		AccountType:  models.AccountPatient,
	}

	var patient models.Patient

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		patient = models.Patient{
			UserID:    user.ID,
			Pesel:     req.Pesel,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			BirthDate: birthDate,
			Phone:     req.Phone,
			Address:   req.Address,
		}
		return tx.Create(&patient).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	token, err := h.generateToken(&user, patient.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"email":        user.Email,
			"account_type": user.AccountType,
			"profile_id":   patient.ID,
		},
		"token": token,
	})
}

func (h *AuthHandler) RegisterDoctor(c *gin.Context) {
	var req RegisterDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsPeselValid(req.Pesel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_pesel"})
		return
	}

	var spec models.Specialization
	if err := h.db.First(&spec, req.SpecializationID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "specialization_not_found"})
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username_already_exists"})
		return
	}

	h.db.Model(&models.Doctor{}).Where("pesel = ?", req.Pesel).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pesel_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		AccountType:  models.AccountDoctor,
	}

	var doctor models.Doctor

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		doctor = models.Doctor{
			UserID:           user.ID,
			Pesel:            req.Pesel,
			FirstName:        req.FirstName,
			LastName:         req.LastName,
			Phone:            req.Phone,
			SpecializationID: spec.ID,
		}
		return tx.Create(&doctor).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	// roster da especialização mudou
	h.doctorCache.Invalidate(c.Request.Context(), spec.ID)

	token, err := h.generateToken(&user, doctor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"email":        user.Email,
			"account_type": user.AccountType,
			"profile_id":   doctor.ID,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var user models.User
	if err := h.db.
		Where("username = ?", req.Username).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	profileID, err := h.profileIDFor(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	token, err := h.generateToken(&user, profileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"email":        user.Email,
			"account_type": user.AccountType,
			"profile_id":   profileID,
		},
		"token": token,
	})
}

// --------- Helpers ---------

// profileIDFor resolve o perfil (Patient/Doctor) do usuário; admin não
// tem perfil e fica com zero.
func (h *AuthHandler) profileIDFor(user *models.User) (uint, error) {
	switch user.AccountType {
	case models.AccountPatient:
		var p models.Patient
		if err := h.db.Where("user_id = ?", user.ID).First(&p).Error; err != nil {
			return 0, err
		}
		return p.ID, nil

	case models.AccountDoctor:
		var d models.Doctor
		if err := h.db.Where("user_id = ?", user.ID).First(&d).Error; err != nil {
			return 0, err
		}
		return d.ID, nil
	}

	return 0, nil
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User, profileID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub":         user.ID,
		"accountType": user.AccountType,
		"profileId":   profileID,
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
		"iat":         time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
