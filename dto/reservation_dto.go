package dto

type CreateReservationDTO struct {
	NaturalLanguageRequest string `json:"natural_language_request" binding:"required"`
}

type ConfirmRejectionDTO struct {
	Confirm *bool   `json:"confirm" binding:"required"`
	Reason  *string `json:"reason,omitempty"`
}

type ListReservationsQuery struct {
	Status           *string `form:"status"`
	PendingRejection bool    `form:"pending_rejection"`
	Skip             int     `form:"skip"`
	Limit            int     `form:"limit"`
}
