package mocks

import (
	"github.com/dmleach/frock/models"

	"github.com/stretchr/testify/mock"
)

// DispatchRepositoryMock is a testify/mock for repositories.DispatchRepository.
type DispatchRepositoryMock struct{ mock.Mock }

func (m *DispatchRepositoryMock) Create(d *models.Dispatch) error {
	return m.Called(d).Error(0)
}

func (m *DispatchRepositoryMock) FindByID(id uint) (*models.Dispatch, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Dispatch), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DispatchRepositoryMock) List(offset, limit int) ([]models.Dispatch, int64, error) {
	args := m.Called(offset, limit)
	var items []models.Dispatch
	if v := args.Get(0); v != nil {
		items = v.([]models.Dispatch)
	}
	var total int64
	if v := args.Get(1); v != nil {
		total = v.(int64)
	}
	return items, total, args.Error(2)
}
