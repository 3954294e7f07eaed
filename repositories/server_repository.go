package repositories

import (
	"github.com/linskybing/gpu-reserve-go/db"
	"github.com/linskybing/gpu-reserve-go/models"
	"gorm.io/gorm"
)

type ServerRepo interface {
	Create(server *models.GPUServer) error
	Update(server *models.GPUServer) error
	GetByID(id uint) (models.GPUServer, error)
	GetByName(name string) (models.GPUServer, error)
	List() ([]models.GPUServer, error)
	ListActive() ([]models.GPUServer, error)
	Deactivate(id uint) error
	// LockByID takes a row lock on the server inside tx. Every conflict
	// evaluation for the same server serializes on this lock.
	LockByID(tx *gorm.DB, id uint) (models.GPUServer, error)
}

type DBServerRepo struct{}

func (r *DBServerRepo) Create(server *models.GPUServer) error {
	return db.DB.Create(server).Error
}

func (r *DBServerRepo) Update(server *models.GPUServer) error {
	return db.DB.Save(server).Error
}

func (r *DBServerRepo) GetByID(id uint) (models.GPUServer, error) {
	var server models.GPUServer
	err := db.DB.First(&server, id).Error
	return server, err
}

func (r *DBServerRepo) GetByName(name string) (models.GPUServer, error) {
	var server models.GPUServer
	err := db.DB.Where("name = ?", name).First(&server).Error
	return server, err
}

func (r *DBServerRepo) List() ([]models.GPUServer, error) {
	var servers []models.GPUServer
	err := db.DB.Order("s_id").Find(&servers).Error
	return servers, err
}

func (r *DBServerRepo) ListActive() ([]models.GPUServer, error) {
	var servers []models.GPUServer
	err := db.DB.Where("is_active = ?", true).Order("s_id").Find(&servers).Error
	return servers, err
}

func (r *DBServerRepo) Deactivate(id uint) error {
	return db.DB.Model(&models.GPUServer{}).Where("s_id = ?", id).Update("is_active", false).Error
}

func (r *DBServerRepo) LockByID(tx *gorm.DB, id uint) (models.GPUServer, error) {
	var server models.GPUServer
	err := withRowLock(tx).First(&server, id).Error
	return server, err
}
