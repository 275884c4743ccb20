package migration

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestRunMigrations(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, RunMigrations(context.Background(), db, zap.NewNop()))
	require.True(t, db.Migrator().HasTable("items"))
	require.True(t, db.Migrator().HasIndex("items", "idx_items_slug"))

	// second run is a no-op
	require.NoError(t, RunMigrations(context.Background(), db, zap.NewNop()))
}

func TestRunMigrationsRequiresHandle(t *testing.T) {
	require.Error(t, RunMigrations(context.Background(), nil, zap.NewNop()))
}
