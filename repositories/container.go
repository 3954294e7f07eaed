package repositories

type Repos struct {
	User        UserRepo
	Server      ServerRepo
	Reservation ReservationRepo
	Conflict    ConflictRepo
}

func New() *Repos {
	return &Repos{
		User:        &DBUserRepo{},
		Server:      &DBServerRepo{},
		Reservation: &DBReservationRepo{},
		Conflict:    &DBConflictRepo{},
	}
}
