package repositories

import (
	"time"

	"github.com/linskybing/gpu-reserve-go/db"
	"github.com/linskybing/gpu-reserve-go/models"
	"gorm.io/gorm"
)

// ReservationFilter narrows ListByUser / ListAll results.
type ReservationFilter struct {
	Status           *models.ReservationStatus
	PendingRejection bool
	Offset           int
	Limit            int
}

type ReservationRepo interface {
	Create(tx *gorm.DB, r *models.Reservation) error
	Update(tx *gorm.DB, r *models.Reservation) error
	GetByID(id uint) (models.Reservation, error)
	LockByID(tx *gorm.DB, id uint) (models.Reservation, error)
	ListByUser(userID uint, filter ReservationFilter) ([]models.Reservation, error)
	ListAll(filter ReservationFilter) ([]models.Reservation, error)
	// FindOverlapping returns reservations on serverID in status confirmed or
	// pending_rejection whose half-open windows intersect [start, end),
	// ordered by id so tie-breaks are deterministic.
	FindOverlapping(tx *gorm.DB, serverID uint, start, end time.Time, excludeID uint) ([]models.Reservation, error)
}

type DBReservationRepo struct{}

func (r *DBReservationRepo) Create(tx *gorm.DB, res *models.Reservation) error {
	return tx.Create(res).Error
}

func (r *DBReservationRepo) Update(tx *gorm.DB, res *models.Reservation) error {
	return tx.Save(res).Error
}

func (r *DBReservationRepo) GetByID(id uint) (models.Reservation, error) {
	var res models.Reservation
	err := db.DB.First(&res, id).Error
	return res, err
}

func (r *DBReservationRepo) LockByID(tx *gorm.DB, id uint) (models.Reservation, error) {
	var res models.Reservation
	err := withRowLock(tx).First(&res, id).Error
	return res, err
}

func applyFilter(q *gorm.DB, filter ReservationFilter) *gorm.DB {
	if filter.PendingRejection {
		q = q.Where("status = ?", models.ReservationStatusPendingRejection)
	} else if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	return q.Order("r_id")
}

func (r *DBReservationRepo) ListByUser(userID uint, filter ReservationFilter) ([]models.Reservation, error) {
	var out []models.Reservation
	q := db.DB.Where("u_id = ?", userID)
	err := applyFilter(q, filter).Find(&out).Error
	return out, err
}

func (r *DBReservationRepo) ListAll(filter ReservationFilter) ([]models.Reservation, error) {
	var out []models.Reservation
	err := applyFilter(db.DB, filter).Find(&out).Error
	return out, err
}

func (r *DBReservationRepo) FindOverlapping(tx *gorm.DB, serverID uint, start, end time.Time, excludeID uint) ([]models.Reservation, error) {
	var out []models.Reservation
	q := tx.
		Where("s_id = ?", serverID).
		Where("status IN ?", []models.ReservationStatus{
			models.ReservationStatusConfirmed,
			models.ReservationStatusPendingRejection,
		}).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != 0 {
		q = q.Where("r_id <> ?", excludeID)
	}
	err := q.Order("r_id").Find(&out).Error
	return out, err
}
