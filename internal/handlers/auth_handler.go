package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/healthcare-scheduler/internal/cache"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/config"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/httperr"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/messages"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/middleware"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/models"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	denylist *cache.TokenDenylist
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, denylist *cache.TokenDenylist) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, denylist: denylist}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required,oneof=patient professional"`
	SpecialtyID uint   `json:"specialty_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

var registerMessages = map[string]string{
	"Name.required":     "The name field is required.",
	"Email.required":    "The email field is required.",
	"Email.email":       "The email must be a valid email address.",
	"Password.required": "The password field is required.",
	"Password.min":      "The password must be at least 8 characters.",
	"Role.required":     "The role field is required.",
	"Role.oneof":        "The selected role is invalid.",
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.ValidationFailed(c, validators.Format(err, registerMessages))
		return
	}

	if req.Role == models.RoleProfessional && req.SpecialtyID == 0 {
		httperr.ValidationFailed(c, map[string]string{
			"SpecialtyID": "The specialty_id field is required for professionals.",
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.ValidationFailed(c, map[string]string{
			"Email": "The email must be a valid email address.",
		})
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.ValidationFailed(c, map[string]string{
			"Email": "The email has already been taken.",
		})
		return
	}

	if req.Role == models.RoleProfessional {
		var specialtyCount int64
		h.db.Model(&models.Specialty{}).Where("id = ?", req.SpecialtyID).Count(&specialtyCount)
		if specialtyCount == 0 {
			httperr.ValidationFailed(c, map[string]string{
				"SpecialtyID": "The selected specialty is invalid.",
			})
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, messages.SomethingWentWrong)
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:         req.Name,
			Email:        email,
			PasswordHash: string(hashed),
			Role:         req.Role,
		}

		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		if req.Role == models.RoleProfessional {
			pro := models.HealthcareProfessional{
				UserID:      user.ID,
				SpecialtyID: req.SpecialtyID,
				Name:        req.Name,
			}
			if err := tx.Create(&pro).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, messages.SomethingWentWrong)
		return
	}

	httpresp.Created(c, messages.UserRegistered, gin.H{})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.ValidationFailed(c, validators.Format(err, registerMessages))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, messages.CredentialsNotMatch)
			return
		}
		httperr.Internal(c, messages.SomethingWentWrong)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, messages.CredentialsNotMatch)
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, messages.SomethingWentWrong)
		return
	}

	httpresp.OK(c, messages.LoginSuccess, gin.H{
		"id":    user.ID,
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString(middleware.ContextTokenJTI)
	exp, _ := c.MustGet(middleware.ContextTokenExp).(time.Time)

	if jti != "" {
		if err := h.denylist.Revoke(c.Request.Context(), jti, exp); err != nil {
			httperr.Internal(c, messages.SomethingWentWrong)
			return
		}
	}

	httpresp.OK(c, messages.LogoutSuccess, gin.H{})
}

// Category lists the specialty directory. Public.
func (h *AuthHandler) Category(c *gin.Context) {
	var specialties []models.Specialty
	if err := h.db.Select("id", "name").Find(&specialties).Error; err != nil {
		httperr.Internal(c, messages.SomethingWentWrong)
		return
	}

	c.JSON(http.StatusOK, specialties)
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
