package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/GabrielAraujo027/Kalenner/internal/config"
	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
	"github.com/GabrielAraujo027/Kalenner/internal/httpresp"
	"github.com/GabrielAraujo027/Kalenner/internal/models"
	"github.com/GabrielAraujo027/Kalenner/internal/timezone"
	"github.com/GabrielAraujo027/Kalenner/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type SignupRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	CompanySlug string `json:"company_slug" binding:"required"`
	Timezone    string `json:"timezone"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`

	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	CompanyID uint   `json:"companyId" binding:"required"`
}

type LoginRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	CompanyID uint   `json:"companyId" binding:"required"`
}

// --------- Handlers ---------

// Signup creates a company and its first admin user in one step.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.CompanySlug))

	var count int64
	h.db.Model(&models.Company{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Já existe uma empresa com este endereço.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "O domínio do e-mail informado não parece ser válido.")
		return
	}

	tz := req.Timezone
	if !timezone.IsValid(tz) {
		tz = timezone.DefaultTimezone
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Erro ao processar a senha.")
		return
	}

	company := models.Company{
		Name:     req.CompanyName,
		Slug:     slug,
		Timezone: tz,
		Phone:    req.Phone,
		Address:  req.Address,
	}
	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleEmpresa,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&company).Error; err != nil {
			return err
		}
		user.CompanyID = company.ID
		return tx.Create(&user).Error
	})
	if err != nil {
		httperr.Internal(c, "Erro ao criar a empresa.")
		return
	}

	token, expiresAt, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Erro ao gerar o token.")
		return
	}

	c.Header("X-Auth-Token", token)
	httpresp.Created(c, gin.H{
		"company": company,
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"role":       user.Role,
			"company_id": user.CompanyID,
		},
		"token":      token,
		"expires_at": expiresAt,
	})
}

// Register creates a customer (Cliente) user for an existing company.
func (h *AuthHandler) Register(c *gin.Context) {
	h.register(c, models.RoleCliente)
}

// RegisterUserCompany creates an admin (Empresa) user for an existing
// company.
func (h *AuthHandler) RegisterUserCompany(c *gin.Context) {
	h.register(c, models.RoleEmpresa)
}

func (h *AuthHandler) register(c *gin.Context, role string) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var company models.Company
	if err := h.db.First(&company, req.CompanyID).Error; err != nil {
		httperr.BadRequest(c, "Empresa inválida.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).
		Where("email = ? AND company_id = ?", email, company.ID).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Já existe um usuário com este email para a empresa informada.")
		return
	}

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "O domínio do e-mail informado não parece ser válido.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Erro ao processar a senha.")
		return
	}

	user := models.User{
		CompanyID:    company.ID,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "Erro ao criar o usuário.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Usuário registrado com sucesso."})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.
		Where("email = ? AND company_id = ?", email, req.CompanyID).
		First(&user).Error; err != nil {
		httperr.Unauthorized(c, "Credenciais inválidas.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Credenciais inválidas.")
		return
	}

	token, expiresAt, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Erro ao gerar o token.")
		return
	}

	c.Header("X-Auth-Token", token)
	httpresp.OK(c, gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"email":      user.Email,
		"roles":      []string{user.Role},
		"companyId":  user.CompanyID,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, time.Time, error) {
	expiresAt := time.Now().UTC().Add(time.Duration(h.config.JWTExpiresMinutes) * time.Minute)

	claims := jwt.MapClaims{
		"sub":       user.ID,
		"email":     user.Email,
		"companyId": user.CompanyID,
		"role":      user.Role,
		"jti":       uuid.NewString(),
		"exp":       expiresAt.Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	return signed, expiresAt, err
}
