package services

import (
	"time"

	"github.com/dmleach/frock/models"
	"github.com/dmleach/frock/utils"
	"github.com/dmleach/frock/utils/redislog"

	"github.com/golang-jwt/jwt/v5" // JWT token creation/signing.
)

// AuthService issues admin API tokens for the configured operator.
type AuthService interface {
	Login(req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error)
}

type authService struct {
	user string // operator name from config
	hash string // bcrypt hash of the operator password
	log  *redislog.Logger
}

// NewAuthService constructs the operator login service. An empty user or hash disables login.
func NewAuthService(user, passwordHash string, rlog *redislog.Logger) AuthService {
	return &authService{user: user, hash: passwordHash, log: rlog}
}

// Login validates operator credentials and issues a signed JWT.
func (s *authService) Login(req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error) {
	if s.user == "" || s.hash == "" {
		s.log.Warn("login with admin disabled", map[string]string{"user": req.Username})
		return "", ErrInvalidCredentials
	}
	// same error for both mismatches; don't leak which one failed
	if req.Username != s.user || !utils.CheckPassword(s.hash, req.Password) {
		s.log.Warn("login rejected", map[string]string{"user": req.Username})
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": s.user,
		"exp": now.Add(exp).Unix(),
		"iat": now.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	if err != nil {
		s.log.Error("login token sign error", map[string]string{"user": s.user, "err": err.Error()})
		return "", err
	}

	s.log.Info("login success", map[string]string{"user": s.user})
	return signed, nil
}
