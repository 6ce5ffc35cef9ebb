package health

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const pingTimeout = 3 * time.Second

type HealthService struct {
	DB *gorm.DB
	// AIProvider names the text-generation backend in the report.
	AIProvider string
}

// Ping runs a trivial query against the pool.
func (hs *HealthService) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return hs.DB.WithContext(ctx).Exec("SELECT 1").Error
}
