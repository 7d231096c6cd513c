package mocks

import (
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
)

// NewRedisMock returns a real *redis.Client + redismock controller
// for the journal cache tests (ExpectGet/ExpectSet).
func NewRedisMock() (*redis.Client, redismock.ClientMock) {
	return redismock.NewClientMock()
}
