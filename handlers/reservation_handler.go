package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gpu-reserve-go/dto"
	"github.com/linskybing/gpu-reserve-go/response"
	"github.com/linskybing/gpu-reserve-go/services"
	"github.com/linskybing/gpu-reserve-go/utils"
)

type ReservationHandler struct {
	service *services.ReservationService
}

func NewReservationHandler(service *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// CreateReservation godoc
// @Summary Create a reservation from a natural-language request
// @Tags reservations
// @Accept json
// @Produce json
// @Param input body dto.CreateReservationDTO true "Reservation request"
// @Success 201 {object} response.SuccessResponse "Created reservation, status reflects the conflict-resolution outcome"
// @Failure 400 {object} response.ErrorResponse "Validation or interpretation failure"
// @Failure 409 {object} response.ErrorResponse "Concurrent conflict after retry"
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var input dto.CreateReservationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	res, err := h.service.CreateReservation(c.Request.Context(), userID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: res})
}

// ListReservations godoc
// @Summary List the caller's reservations
// @Tags reservations
// @Produce json
// @Param pending_rejection query bool false "Only reservations awaiting confirm-or-contest"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.SuccessResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	var query dto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	reservations, err := h.service.ListReservations(userID, utils.IsAdminFromContext(c), query)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: reservations})
}

// GetReservation godoc
// @Summary Fetch one reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse "Not found or not owned"
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	res, err := h.service.GetReservation(id, userID, utils.IsAdminFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: res})
}

// CancelReservation godoc
// @Summary Cancel an own reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.ReservationResponse
// @Failure 404 {object} response.ErrorResponse "Not found or not owned"
// @Failure 409 {object} response.ErrorResponse "Already terminal or elapsed"
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	res, err := h.service.CancelReservation(c.Request.Context(), id, userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ReservationResponse{
		Message:     "Reservation cancelled",
		Reservation: res,
	})
}

// ConfirmRejection godoc
// @Summary Confirm or contest a pending rejection
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param input body dto.ConfirmRejectionDTO true "confirm=true acknowledges the cancellation, confirm=false contests it"
// @Success 200 {object} response.SuccessResponse "Updated reservation"
// @Failure 409 {object} response.ErrorResponse "Not currently pending_rejection"
// @Router /reservations/{id}/confirm-rejection [post]
func (h *ReservationHandler) ConfirmRejection(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.ConfirmRejectionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	res, err := h.service.ConfirmRejection(c.Request.Context(), id, userID, *input.Confirm, input.Reason)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: res})
}
