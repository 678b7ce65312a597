package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/httpresp"
	ucClient "github.com/BruksfildServices01/barbearia/internal/usecase/client"
	ucMessaging "github.com/BruksfildServices01/barbearia/internal/usecase/messaging"
)

type ClientHandler struct {
	create   *ucClient.CreateClient
	get      *ucClient.GetClient
	update   *ucClient.UpdateClient
	remove   *ucClient.RemoveClient
	list     *ucClient.ListClients
	inactive *ucClient.ListInactiveClients
	winBack  *ucMessaging.SendWinBack
}

func NewClientHandler(
	create *ucClient.CreateClient,
	get *ucClient.GetClient,
	update *ucClient.UpdateClient,
	remove *ucClient.RemoveClient,
	list *ucClient.ListClients,
	inactive *ucClient.ListInactiveClients,
	winBack *ucMessaging.SendWinBack,
) *ClientHandler {
	return &ClientHandler{
		create:   create,
		get:      get,
		update:   update,
		remove:   remove,
		list:     list,
		inactive: inactive,
		winBack:  winBack,
	}
}

type ClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	client, err := h.create.Execute(c.Request.Context(), ucClient.CreateClientInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, client)
}

// ======================================================
// LIST (?query= &status=active|inactive)
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	filter, err := ucClient.ParseFilter(c.Query("status"))
	if err != nil {
		httperr.BadRequest(c, "invalid_filter", "Filtro inválido.")
		return
	}

	httpresp.List(c, h.list.Execute(c.Request.Context(), ucClient.ListClientsInput{
		Search: c.Query("query"),
		Filter: filter,
	}))
}

func (h *ClientHandler) Inactive(c *gin.Context) {
	httpresp.List(c, h.inactive.Execute(c.Request.Context()))
}

// ======================================================
// GET / UPDATE / DELETE
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	client, err := h.update.Execute(c.Request.Context(), ucClient.UpdateClientInput{
		ID:    c.Param("id"),
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// WIN-BACK
// ======================================================

func (h *ClientHandler) SendWinBack(c *gin.Context) {
	link, err := h.winBack.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"link": link})
}
