package repositories

import (
	"github.com/linskybing/gpu-reserve-go/db"
	"github.com/linskybing/gpu-reserve-go/models"
)

type UserRepo interface {
	Create(user *models.User) error
	GetByID(id uint) (models.User, error)
	GetByUsername(username string) (models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) Create(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) GetByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) GetByUsername(username string) (models.User, error) {
	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	return user, err
}
