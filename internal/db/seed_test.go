package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"github.com/BruksfildServices01/salonq/internal/models"
)

func TestSeed_Idempotent(t *testing.T) {
	db, err := Open(sqlite.Open("file:seed_test?mode=memory&cache=shared"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, Seed(ctx, db))
	require.NoError(t, Seed(ctx, db))

	var salons, services, employees int64
	db.Model(&models.Salon{}).Count(&salons)
	db.Model(&models.Service{}).Count(&services)
	db.Model(&models.Employee{}).Count(&employees)

	assert.EqualValues(t, 1, salons)
	assert.EqualValues(t, 3, services)
	assert.EqualValues(t, 1, employees)
}
