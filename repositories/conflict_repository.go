package repositories

import (
	"github.com/linskybing/gpu-reserve-go/models"
	"gorm.io/gorm"
)

type ConflictRepo interface {
	Create(tx *gorm.DB, c *models.ReservationConflict) error
	// ListOpenByConflicting returns unresolved conflict records whose
	// displaced side is reservationID.
	ListOpenByConflicting(tx *gorm.DB, reservationID uint) ([]models.ReservationConflict, error)
	Resolve(tx *gorm.DB, c *models.ReservationConflict, method string) error
}

type DBConflictRepo struct{}

func (r *DBConflictRepo) Create(tx *gorm.DB, c *models.ReservationConflict) error {
	return tx.Create(c).Error
}

func (r *DBConflictRepo) ListOpenByConflicting(tx *gorm.DB, reservationID uint) ([]models.ReservationConflict, error) {
	var out []models.ReservationConflict
	err := tx.
		Where("conflicting_reservation_id = ? AND resolved = ?", reservationID, false).
		Find(&out).Error
	return out, err
}

func (r *DBConflictRepo) Resolve(tx *gorm.DB, c *models.ReservationConflict, method string) error {
	c.Resolved = true
	c.ResolutionMethod = method
	return tx.Save(c).Error
}
