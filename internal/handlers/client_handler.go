package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-crm/internal/httperr"
	"github.com/BruksfildServices01/barber-crm/internal/httpresp"
	"github.com/BruksfildServices01/barber-crm/internal/middleware"
	ucClient "github.com/BruksfildServices01/barber-crm/internal/usecase/client"
)

type ClientHandler struct {
	createUC *ucClient.CreateClient
	updateUC *ucClient.UpdateClient
	deleteUC *ucClient.DeleteClient
	searchUC *ucClient.SearchClients
	recentUC *ucClient.RecentClients
}

func NewClientHandler(
	createUC *ucClient.CreateClient,
	updateUC *ucClient.UpdateClient,
	deleteUC *ucClient.DeleteClient,
	searchUC *ucClient.SearchClients,
	recentUC *ucClient.RecentClients,
) *ClientHandler {
	return &ClientHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		searchUC: searchUC,
		recentUC: recentUC,
	}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
	Notes string `json:"notes"`
}

type UpdateClientRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	Notes *string `json:"notes"`
}

// --------- Handlers ---------

func (h *ClientHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	client, err := h.createUC.Execute(c.Request.Context(), ownerID, ucClient.CreateClientInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)
	clientID := c.Param("id")

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	client, err := h.updateUC.Execute(c.Request.Context(), ownerID, clientID, ucClient.UpdateClientInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)
	clientID := c.Param("id")

	if err := h.deleteUC.Execute(c.Request.Context(), ownerID, clientID); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *ClientHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)

	clients, err := h.searchUC.Execute(c.Request.Context(), ownerID, c.Query("query"))
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Recent(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)

	limit, _ := strconv.Atoi(c.Query("limit"))

	clients, err := h.recentUC.Execute(c.Request.Context(), ownerID, limit)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.List(c, clients)
}
