package response

import "github.com/linskybing/gpu-reserve-go/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Data interface{} `json:"data"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type ReservationResponse struct {
	Message     string             `json:"message"`
	Reservation models.Reservation `json:"reservation"`
}
