package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-crm/internal/httperr"
	"github.com/BruksfildServices01/barber-crm/internal/httpresp"
	"github.com/BruksfildServices01/barber-crm/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-crm/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC   *ucAppointment.CreateAppointment
	updateUC   *ucAppointment.UpdateAppointment
	deleteUC   *ucAppointment.DeleteAppointment
	getUC      *ucAppointment.GetAppointment
	byDateUC   *ucAppointment.ListAppointmentsByDate
	upcomingUC *ucAppointment.ListUpcomingAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	getUC *ucAppointment.GetAppointment,
	byDateUC *ucAppointment.ListAppointmentsByDate,
	upcomingUC *ucAppointment.ListUpcomingAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		getUC:      getUC,
		byDateUC:   byDateUC,
		upcomingUC: upcomingUC,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Service  string `json:"service" binding:"required"`
	Notes    string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	ClientID *string `json:"client_id"`
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Service  *string `json:"service"`
	Notes    *string `json:"notes"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ownerID, ucAppointment.CreateAppointmentInput{
		ClientID: req.ClientID,
		Date:     req.Date,
		Time:     req.Time,
		Service:  req.Service,
		Notes:    req.Notes,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)
	appointmentID := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ownerID, appointmentID, ucAppointment.UpdateAppointmentInput{
		ClientID: req.ClientID,
		Date:     req.Date,
		Time:     req.Time,
		Service:  req.Service,
		Notes:    req.Notes,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)
	appointmentID := c.Param("id")

	if err := h.deleteUC.Execute(c.Request.Context(), ownerID, appointmentID); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)
	appointmentID := c.Param("id")

	ap, err := h.getUC.Execute(c.Request.Context(), ownerID, appointmentID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "date_required", "query param date is required (2006-01-02)")
		return
	}

	aps, err := h.byDateUC.Execute(c.Request.Context(), ownerID, date)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListUpcoming(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)

	aps, err := h.upcomingUC.Execute(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.List(c, aps)
}
