package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GabrielAraujo027/Kalenner/internal/domain/scheduling"
	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
	"github.com/GabrielAraujo027/Kalenner/internal/httpresp"
	"github.com/GabrielAraujo027/Kalenner/internal/middleware"
	"github.com/GabrielAraujo027/Kalenner/internal/usecase/appointment"
)

// AppointmentHandler is a thin HTTP boundary: it parses, calls the use
// case, and maps business errors. All scheduling rules live below it.
type AppointmentHandler struct {
	create      *appointment.Create
	update      *appointment.Update
	patchStatus *appointment.PatchStatus
	list        *appointment.List
	get         *appointment.Get
	delete      *appointment.Delete
}

func NewAppointmentHandler(
	create *appointment.Create,
	update *appointment.Update,
	patchStatus *appointment.PatchStatus,
	list *appointment.List,
	get *appointment.Get,
	delete_ *appointment.Delete,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:      create,
		update:      update,
		patchStatus: patchStatus,
		list:        list,
		get:         get,
		delete:      delete_,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ServiceID      uint      `json:"service_id" binding:"required"`
	ProfessionalID *uint     `json:"professional_id"`
	Start          time.Time `json:"start" binding:"required"`
	Notes          string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Start          *time.Time `json:"start"`
	ProfessionalID *uint      `json:"professional_id"`
	Notes          *string    `json:"notes"`
	Status         *int       `json:"status"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	filter, ok := parseListFilter(c)
	if !ok {
		return
	}

	items, err := h.list.Execute(c.Request.Context(), actor, filter)
	if err != nil {
		if !httperr.Handle(c, err) {
			httperr.Internal(c, "Erro ao listar os agendamentos.")
		}
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), actor, id)
	if err != nil {
		if !httperr.Handle(c, err) {
			httperr.Internal(c, "Erro ao buscar o agendamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	in := appointment.CreateInput{
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		Start:          req.Start,
		Notes:          req.Notes,
	}

	// Admins may book on a customer's behalf.
	if clientID := c.Query("clientId"); clientID != "" {
		in.TargetClientID = &clientID
	}

	ap, err := h.create.Execute(c.Request.Context(), actor, in)
	if err != nil {
		if !httperr.Handle(c, err) {
			httperr.Internal(c, "Erro ao criar o agendamento.")
		}
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	in := appointment.UpdateInput{
		Start:          req.Start,
		ProfessionalID: req.ProfessionalID,
		Notes:          req.Notes,
	}
	if req.Status != nil {
		st := scheduling.Status(*req.Status)
		if !st.Valid() {
			httperr.BadRequest(c, "Status inválido.")
			return
		}
		in.Status = &st
	}

	ap, err := h.update.Execute(c.Request.Context(), actor, id, in)
	if err != nil {
		if !httperr.Handle(c, err) {
			httperr.Internal(c, "Erro ao atualizar o agendamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// PatchStatus accepts the bare status integer as the request body,
// mirroring PATCH /appointments/:id/status with payload `2`.
func (h *AppointmentHandler) PatchStatus(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var raw int
	if err := c.ShouldBindJSON(&raw); err != nil {
		httperr.BadRequest(c, "Status inválido.")
		return
	}

	next := scheduling.Status(raw)
	if !next.Valid() {
		httperr.BadRequest(c, "Status inválido.")
		return
	}

	if err := h.patchStatus.Execute(c.Request.Context(), actor, id, next); err != nil {
		if !httperr.Handle(c, err) {
			httperr.Internal(c, "Erro ao atualizar o status.")
		}
		return
	}

	httpresp.NoContent(c)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), actor, id); err != nil {
		if !httperr.Handle(c, err) {
			httperr.Internal(c, "Erro ao excluir o agendamento.")
		}
		return
	}

	httpresp.NoContent(c)
}

// --------- Parsing ---------

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func parseListFilter(c *gin.Context) (scheduling.ListFilter, bool) {
	var filter scheduling.ListFilter

	if v := c.Query("startFrom"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			httperr.BadRequest(c, "Parâmetro startFrom inválido.")
			return filter, false
		}
		t = t.UTC()
		filter.StartFrom = &t
	}
	if v := c.Query("startTo"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			httperr.BadRequest(c, "Parâmetro startTo inválido.")
			return filter, false
		}
		t = t.UTC()
		filter.StartTo = &t
	}
	if v := c.Query("professionalId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "Parâmetro professionalId inválido.")
			return filter, false
		}
		u := uint(id)
		filter.ProfessionalID = &u
	}
	if v := c.Query("serviceId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "Parâmetro serviceId inválido.")
			return filter, false
		}
		u := uint(id)
		filter.ServiceID = &u
	}
	if v := c.Query("status"); v != "" {
		raw, err := strconv.Atoi(v)
		if err != nil || !scheduling.Status(raw).Valid() {
			httperr.BadRequest(c, "Parâmetro status inválido.")
			return filter, false
		}
		st := scheduling.Status(raw)
		filter.Status = &st
	}

	return filter, true
}
