package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
	"github.com/GabrielAraujo027/Kalenner/internal/httpresp"
	"github.com/GabrielAraujo027/Kalenner/internal/middleware"
	"github.com/GabrielAraujo027/Kalenner/internal/models"
)

// ProfessionalServiceHandler manages the professional<->service links
// and their per-link duration/price overrides.
type ProfessionalServiceHandler struct {
	db *gorm.DB
}

func NewProfessionalServiceHandler(db *gorm.DB) *ProfessionalServiceHandler {
	return &ProfessionalServiceHandler{db: db}
}

// --------- Requests ---------

type LinkServiceItem struct {
	ServiceID               uint     `json:"service_id" binding:"required"`
	DurationMinutesOverride *int     `json:"duration_minutes_override"`
	PriceOverride           *float64 `json:"price_override"`
}

type LinkServicesToProfessionalRequest struct {
	ProfessionalID uint              `json:"professional_id" binding:"required"`
	Items          []LinkServiceItem `json:"items" binding:"required,min=1"`
}

type LinkProfessionalItem struct {
	ProfessionalID          uint     `json:"professional_id" binding:"required"`
	DurationMinutesOverride *int     `json:"duration_minutes_override"`
	PriceOverride           *float64 `json:"price_override"`
}

type LinkProfessionalsToServiceRequest struct {
	ServiceID uint                   `json:"service_id" binding:"required"`
	Items     []LinkProfessionalItem `json:"items" binding:"required,min=1"`
}

// --------- Responses ---------

type professionalLinkView struct {
	ID                      uint     `json:"id"`
	ServiceID               uint     `json:"service_id"`
	ServiceName             string   `json:"service_name"`
	DurationMinutesOverride *int     `json:"duration_minutes_override"`
	PriceOverride           *float64 `json:"price_override"`
}

type serviceLinkView struct {
	ID                      uint     `json:"id"`
	ProfessionalID          uint     `json:"professional_id"`
	ProfessionalName        string   `json:"professional_name"`
	DurationMinutesOverride *int     `json:"duration_minutes_override"`
	PriceOverride           *float64 `json:"price_override"`
}

// --------- Handlers ---------

func (h *ProfessionalServiceHandler) ListByProfessional(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	professionalID := c.Param("professionalId")

	var count int64
	h.db.Model(&models.Professional{}).
		Where("id = ? AND company_id = ?", professionalID, actor.CompanyID).
		Count(&count)
	if count == 0 {
		httperr.NotFound(c, "Profissional não encontrado.")
		return
	}

	var views []professionalLinkView
	if err := h.db.Model(&models.ProfessionalService{}).
		Select("professional_services.id, professional_services.service_id, services.name AS service_name, professional_services.duration_minutes_override, professional_services.price_override").
		Joins("JOIN services ON services.id = professional_services.service_id").
		Where("professional_services.professional_id = ?", professionalID).
		Order("services.name ASC").
		Scan(&views).Error; err != nil {
		httperr.Internal(c, "Erro ao listar os vínculos.")
		return
	}

	httpresp.OK(c, views)
}

func (h *ProfessionalServiceHandler) ListByService(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	serviceID := c.Param("serviceId")

	var count int64
	h.db.Model(&models.Service{}).
		Where("id = ? AND company_id = ?", serviceID, actor.CompanyID).
		Count(&count)
	if count == 0 {
		httperr.NotFound(c, "Serviço não encontrado.")
		return
	}

	var views []serviceLinkView
	if err := h.db.Model(&models.ProfessionalService{}).
		Select("professional_services.id, professional_services.professional_id, professionals.name AS professional_name, professional_services.duration_minutes_override, professional_services.price_override").
		Joins("JOIN professionals ON professionals.id = professional_services.professional_id").
		Where("professional_services.service_id = ?", serviceID).
		Order("professionals.name ASC").
		Scan(&views).Error; err != nil {
		httperr.Internal(c, "Erro ao listar os vínculos.")
		return
	}

	httpresp.OK(c, views)
}

// LinkServicesToProfessional batch-upserts links from one professional
// to many services. Override updates reuse the existing row.
func (h *ProfessionalServiceHandler) LinkServicesToProfessional(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var req LinkServicesToProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	var prof models.Professional
	if err := h.db.
		Where("id = ? AND company_id = ?", req.ProfessionalID, actor.CompanyID).
		First(&prof).Error; err != nil {
		httperr.NotFound(c, "Profissional não encontrado.")
		return
	}

	serviceIDs := make([]uint, 0, len(req.Items))
	for _, item := range req.Items {
		if item.DurationMinutesOverride != nil && *item.DurationMinutesOverride <= 0 {
			httperr.BadRequest(c, "Duração deve ser maior que zero.")
			return
		}
		serviceIDs = append(serviceIDs, item.ServiceID)
	}

	var owned int64
	h.db.Model(&models.Service{}).
		Where("id IN ? AND company_id = ?", serviceIDs, actor.CompanyID).
		Distinct("id").
		Count(&owned)
	if owned != int64(len(uniqueIDs(serviceIDs))) {
		httperr.BadRequest(c, "Um ou mais serviços não pertencem à empresa do usuário.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			if err := upsertLink(tx, req.ProfessionalID, item.ServiceID,
				item.DurationMinutesOverride, item.PriceOverride); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "Erro ao vincular os serviços.")
		return
	}

	httpresp.NoContent(c)
}

// LinkProfessionalsToService is the mirror operation.
func (h *ProfessionalServiceHandler) LinkProfessionalsToService(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var req LinkProfessionalsToServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	var svc models.Service
	if err := h.db.
		Where("id = ? AND company_id = ?", req.ServiceID, actor.CompanyID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "Serviço não encontrado.")
		return
	}

	professionalIDs := make([]uint, 0, len(req.Items))
	for _, item := range req.Items {
		if item.DurationMinutesOverride != nil && *item.DurationMinutesOverride <= 0 {
			httperr.BadRequest(c, "Duração deve ser maior que zero.")
			return
		}
		professionalIDs = append(professionalIDs, item.ProfessionalID)
	}

	var owned int64
	h.db.Model(&models.Professional{}).
		Where("id IN ? AND company_id = ?", professionalIDs, actor.CompanyID).
		Distinct("id").
		Count(&owned)
	if owned != int64(len(uniqueIDs(professionalIDs))) {
		httperr.BadRequest(c, "Um ou mais profissionais não pertencem à empresa do usuário.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			if err := upsertLink(tx, item.ProfessionalID, req.ServiceID,
				item.DurationMinutesOverride, item.PriceOverride); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "Erro ao vincular os profissionais.")
		return
	}

	httpresp.NoContent(c)
}

func (h *ProfessionalServiceHandler) DeleteLink(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	id := c.Param("id")

	var link models.ProfessionalService
	if err := h.db.
		Joins("JOIN professionals ON professionals.id = professional_services.professional_id").
		Joins("JOIN services ON services.id = professional_services.service_id").
		Where(
			"professional_services.id = ? AND professionals.company_id = ? AND services.company_id = ?",
			id, actor.CompanyID, actor.CompanyID,
		).
		First(&link).Error; err != nil {
		httperr.NotFound(c, "Vínculo não encontrado.")
		return
	}

	if err := h.db.Delete(&link).Error; err != nil {
		httperr.Internal(c, "Erro ao remover o vínculo.")
		return
	}

	httpresp.NoContent(c)
}

// --------- Helpers ---------

func upsertLink(tx *gorm.DB, professionalID, serviceID uint, duration *int, price *float64) error {
	var link models.ProfessionalService
	err := tx.
		Where("professional_id = ? AND service_id = ?", professionalID, serviceID).
		First(&link).Error

	if err == gorm.ErrRecordNotFound {
		return tx.Create(&models.ProfessionalService{
			ProfessionalID:          professionalID,
			ServiceID:               serviceID,
			DurationMinutesOverride: duration,
			PriceOverride:           price,
		}).Error
	}
	if err != nil {
		return err
	}

	link.DurationMinutesOverride = duration
	link.PriceOverride = price
	return tx.Save(&link).Error
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
