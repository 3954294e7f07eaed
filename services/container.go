package services

import (
	"time"

	"github.com/linskybing/gpu-reserve-go/aiclient"
	"github.com/linskybing/gpu-reserve-go/minio"
	"github.com/linskybing/gpu-reserve-go/notify"
	"github.com/linskybing/gpu-reserve-go/queue"
	"github.com/linskybing/gpu-reserve-go/repositories"
	"github.com/redis/go-redis/v9"
)

type Services struct {
	Reservation *ReservationService
	Server      *ServerService
	User        *UserService
}

type Deps struct {
	Interpreter aiclient.Interpreter
	Publisher   queue.Publisher
	Notifier    notify.Notifier
	Archiver    minio.Archiver
	Cache       *redis.Client
	CacheTTL    time.Duration
}

func New(repos *repositories.Repos, deps Deps) *Services {
	return &Services{
		Reservation: NewReservationService(repos, deps.Interpreter, deps.Publisher, deps.Notifier, deps.Archiver),
		Server:      NewServerService(repos, deps.Cache, deps.CacheTTL),
		User:        NewUserService(repos),
	}
}
