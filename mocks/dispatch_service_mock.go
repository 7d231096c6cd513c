package mocks

import (
	"github.com/dmleach/frock/models"
	"github.com/dmleach/frock/services"
	"github.com/dmleach/frock/utils/redislog"

	"github.com/stretchr/testify/mock"
)

// DispatchServiceMock is a testify/mock for services.DispatchService.
// We use it to test the HTTP handlers without a registry or journal.
type DispatchServiceMock struct{ mock.Mock }

func (m *DispatchServiceMock) Dispatch(role models.Role, request any, bind func(services.Class)) (*models.Dispatch, error) {
	args := m.Called(role, request, bind)
	if v := args.Get(0); v != nil {
		return v.(*models.Dispatch), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DispatchServiceMock) Resolve(role models.Role, path string) (*models.ResolveResponse, error) {
	args := m.Called(role, path)
	if v := args.Get(0); v != nil {
		return v.(*models.ResolveResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DispatchServiceMock) Classes() []string {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]string)
	}
	return nil
}

func (m *DispatchServiceMock) GetDispatch(id uint) (*models.Dispatch, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Dispatch), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DispatchServiceMock) ListDispatches(page, limit int) (*models.PagedDispatches, error) {
	args := m.Called(page, limit)
	if v := args.Get(0); v != nil {
		return v.(*models.PagedDispatches), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DispatchServiceMock) DebugLog(limit int64) ([]redislog.Entry, error) {
	args := m.Called(limit)
	if v := args.Get(0); v != nil {
		return v.([]redislog.Entry), args.Error(1)
	}
	return nil, args.Error(1)
}
