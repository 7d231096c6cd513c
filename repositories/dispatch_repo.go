// Dispatch journal data-access layer. Only talks to the database (via GORM), no HTTP/JSON.
package repositories

import (
	"errors"

	"github.com/dmleach/frock/models"

	"gorm.io/gorm"
)

// DispatchRepository defines the journal operations the service layer expects.
type DispatchRepository interface {
	Create(d *models.Dispatch) error
	FindByID(id uint) (*models.Dispatch, error)
	List(offset, limit int) ([]models.Dispatch, int64, error) // newest first + total count
}

// dispatchRepo holds a *gorm.DB that can talk to any dialect (mysql/postgres/sqlite/sqlserver).
type dispatchRepo struct{ db *gorm.DB }

// NewDispatchRepository injects *gorm.DB and returns the interface.
func NewDispatchRepository(db *gorm.DB) DispatchRepository {
	return &dispatchRepo{db: db}
}

// Create inserts one journal row; GORM sets d.ID on success.
func (r *dispatchRepo) Create(d *models.Dispatch) error {
	return r.db.Create(d).Error
}

func (r *dispatchRepo) FindByID(id uint) (*models.Dispatch, error) {
	var d models.Dispatch
	if err := r.db.First(&d, id).Error; err != nil { // primary key lookup
		return nil, err
	}
	return &d, nil
}

// List returns a page of journal rows, newest first, and the total count.
func (r *dispatchRepo) List(offset, limit int) ([]models.Dispatch, int64, error) {
	var (
		items []models.Dispatch
		total int64
	)
	if err := r.db.Model(&models.Dispatch{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.
		Limit(limit).
		Offset(offset).
		Order("id DESC"). // newest first
		Find(&items).
		Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// IsNotFound checks GORM's "record not found" sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
