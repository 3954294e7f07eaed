package handlers

import (
	"github.com/linskybing/gpu-reserve-go/notify"
	"github.com/linskybing/gpu-reserve-go/services"
)

type Handlers struct {
	Auth        *AuthHandler
	Reservation *ReservationHandler
	Server      *ServerHandler
	WS          *WSHandler
}

func New(svc *services.Services, hub *notify.Hub) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(svc.User),
		Reservation: NewReservationHandler(svc.Reservation),
		Server:      NewServerHandler(svc.Server),
		WS:          NewWSHandler(hub),
	}
}
