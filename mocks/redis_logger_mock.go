package mocks

import (
	"time"

	"github.com/dmleach/frock/utils/redislog"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
)

// LogKey is the list key used by loggers built with NewRedisLoggerWithMock.
const LogKey = "logs:frock"

// NewRedisLoggerWithMock constructs a real redislog.Logger over a mocked redis client
// without trimming or expiry, so tests only need to expect LPUSH (or LRANGE for reads).
func NewRedisLoggerWithMock() (*redislog.Logger, *redis.Client, redismock.ClientMock) {
	rc, mock := redismock.NewClientMock()
	logger := redislog.New(rc, LogKey, 0, time.Duration(0))
	return logger, rc, mock
}
