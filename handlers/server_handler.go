package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gpu-reserve-go/dto"
	"github.com/linskybing/gpu-reserve-go/response"
	"github.com/linskybing/gpu-reserve-go/services"
	"github.com/linskybing/gpu-reserve-go/utils"
)

type ServerHandler struct {
	service *services.ServerService
}

func NewServerHandler(service *services.ServerService) *ServerHandler {
	return &ServerHandler{service: service}
}

// ListServers godoc
// @Summary Active GPU server catalog
// @Tags servers
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /servers [get]
func (h *ServerHandler) ListServers(c *gin.Context) {
	servers, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: servers})
}

// GetServer godoc
// @Summary Fetch one server
// @Tags servers
// @Produce json
// @Param id path int true "Server ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /servers/{id} [get]
func (h *ServerHandler) GetServer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	server, err := h.service.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: server})
}

// CreateServer godoc
// @Summary Register a GPU server (admin)
// @Tags servers
// @Accept json
// @Produce json
// @Param input body dto.CreateServerDTO true "Server info"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "Duplicate name"
// @Router /servers [post]
func (h *ServerHandler) CreateServer(c *gin.Context) {
	var input dto.CreateServerDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	server, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: server})
}

// UpdateServer godoc
// @Summary Update a GPU server (admin)
// @Tags servers
// @Accept json
// @Produce json
// @Param id path int true "Server ID"
// @Param input body dto.UpdateServerDTO true "Fields to update"
// @Success 200 {object} response.SuccessResponse
// @Router /servers/{id} [put]
func (h *ServerHandler) UpdateServer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.UpdateServerDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	server, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: server})
}

// DeactivateServer godoc
// @Summary Deactivate a GPU server (admin)
// @Tags servers
// @Produce json
// @Param id path int true "Server ID"
// @Success 200 {object} response.MessageResponse
// @Router /servers/{id} [delete]
func (h *ServerHandler) DeactivateServer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Server deactivated"})
}
