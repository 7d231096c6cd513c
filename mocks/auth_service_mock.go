package mocks

import (
	"time"

	"github.com/dmleach/frock/models"

	"github.com/stretchr/testify/mock"
)

// AuthServiceMock is a testify/mock for services.AuthService.
type AuthServiceMock struct{ mock.Mock }

func (m *AuthServiceMock) Login(req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error) {
	args := m.Called(req, jwtSecret, exp)
	return args.String(0), args.Error(1)
}
