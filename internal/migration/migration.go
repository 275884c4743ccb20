package migration

import (
	"context"
	"errors"
	"fmt"
	"time"

	catalogdomain "github.com/railzwaylabs/envelope/internal/catalog/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every table owned by the service, in creation order.
func Models() []any {
	return []any{
		&catalogdomain.Item{},
	}
}

// RunMigrations brings the schema up to date with the registered models.
func RunMigrations(ctx context.Context, conn *gorm.DB, log *zap.Logger) error {
	if conn == nil {
		return errors.New("migration database handle is required")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	started := time.Now()
	if err := conn.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	log.Info("migrations applied",
		zap.Int("models", len(Models())),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}
