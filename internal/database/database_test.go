package database

import (
	"testing"

	"go-gin-event-wizard/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := config.LoadTestConfig()

	assert.Equal(t,
		"host=localhost port=5433 user=postgres password=postgres dbname=test_db sslmode=disable timezone=UTC",
		DSN(&cfg.Database),
	)
}
