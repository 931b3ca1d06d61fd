package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/salonq/internal/db"
	"github.com/BruksfildServices01/salonq/internal/domain/salon"
	"github.com/BruksfildServices01/salonq/internal/domain/user"
	"github.com/BruksfildServices01/salonq/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := dbpkg.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dbpkg.Seed(context.Background(), db))
	return db
}

func TestCatalog_GetSalon(t *testing.T) {
	repo := NewCatalogGormRepository(newTestDB(t))
	ctx := context.Background()

	s, err := repo.GetSalon(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "The Sharp Side", s.Name)
	require.Len(t, s.Employees, 1)
	assert.Equal(t, "Nate Black", s.Employees[0].Name)
	assert.Len(t, s.Services, 3)

	svc, ok := s.FindService("service2")
	require.True(t, ok)
	assert.InDelta(t, 40, svc.Price, 1e-9)

	_, err = repo.GetSalon(ctx, "404")
	assert.ErrorIs(t, err, salon.ErrNotFound)
}

func TestCatalog_UpdateSalonAndPhotos(t *testing.T) {
	repo := NewCatalogGormRepository(newTestDB(t))
	ctx := context.Background()

	s, err := repo.GetSalon(ctx, "1")
	require.NoError(t, err)
	s.Name = "The Sharper Side"
	s.ClosingTime = "21:00"
	require.NoError(t, repo.UpdateSalon(ctx, s))

	require.NoError(t, repo.AddPhoto(ctx, "1", "https://cdn.example.com/a.jpg"))
	require.NoError(t, repo.AddPhoto(ctx, "1", "https://cdn.example.com/b.jpg"))

	got, err := repo.GetSalon(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "The Sharper Side", got.Name)
	assert.Equal(t, "21:00", got.ClosingTime)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, got.Photos)

	assert.ErrorIs(t, repo.UpdateSalon(ctx, &models.Salon{ID: "404"}), salon.ErrNotFound)
	assert.ErrorIs(t, repo.AddPhoto(ctx, "404", "x"), salon.ErrNotFound)
}

func TestCatalog_Employees(t *testing.T) {
	repo := NewCatalogGormRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.AddEmployee(ctx, &models.Employee{ID: "emp2", Name: "Ava Stone", SalonID: "1"}))

	e, err := repo.GetEmployee(ctx, "emp2")
	require.NoError(t, err)
	assert.Equal(t, "1", e.SalonID)

	assert.ErrorIs(t, repo.RemoveEmployee(ctx, "other", "emp2"), salon.ErrEmployeeNotFound)
	require.NoError(t, repo.RemoveEmployee(ctx, "1", "emp2"))

	_, err = repo.GetEmployee(ctx, "emp2")
	assert.ErrorIs(t, err, salon.ErrEmployeeNotFound)
}

func TestUser_CreateAndFind(t *testing.T) {
	repo := NewUserGormRepository(newTestDB(t))
	ctx := context.Background()

	u := &models.User{ID: "u1", Name: "Jo", MobileNumber: "4045551234", UserType: models.UserTypeCustomer, IsVerified: true}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.FindByMobile(ctx, "4045551234")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	got, err = repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Jo", got.Name)

	dup := &models.User{ID: "u2", Name: "Other", MobileNumber: "4045551234"}
	assert.ErrorIs(t, repo.Create(ctx, dup), user.ErrMobileTaken)

	_, err = repo.FindByMobile(ctx, "0000000000")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestUser_CreateOwnerWithSalon(t *testing.T) {
	db := newTestDB(t)
	users := NewUserGormRepository(db)
	catalog := NewCatalogGormRepository(db)
	ctx := context.Background()

	owner := &models.User{ID: "o2", Name: "Rae", MobileNumber: "4045550000", UserType: models.UserTypeOwner, SalonID: "s2"}
	shop := &models.Salon{
		ID:      "s2",
		Name:    "Fade Lab",
		OwnerID: "o2",
		Photos:  []string{},
		Employees: []models.Employee{
			{ID: "e21", Name: "Kim", MobileNumber: "4045550001", SalonID: "s2"},
		},
	}
	require.NoError(t, users.CreateOwner(ctx, owner, shop))

	got, err := catalog.GetSalon(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, "o2", got.OwnerID)
	assert.Len(t, got.Employees, 1)

	again := &models.Salon{ID: "s3", Name: "Nope", OwnerID: "o3"}
	err = users.CreateOwner(ctx, &models.User{ID: "o3", Name: "X", MobileNumber: "4045550000"}, again)
	require.ErrorIs(t, err, user.ErrMobileTaken)

	_, err = catalog.GetSalon(ctx, "s3")
	assert.ErrorIs(t, err, salon.ErrNotFound)
}

func TestUser_Update(t *testing.T) {
	repo := NewUserGormRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{ID: "u1", Name: "Jo", MobileNumber: "4045551234"}))
	require.NoError(t, repo.Create(ctx, &models.User{ID: "u2", Name: "Al", MobileNumber: "4045559999"}))

	require.NoError(t, repo.Update(ctx, &models.User{ID: "u1", Name: "Joanna", MobileNumber: "4045551111", Gender: "female"}))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Joanna", got.Name)
	assert.Equal(t, "4045551111", got.MobileNumber)
	assert.Equal(t, "female", got.Gender)

	// Keeping your own number is fine; taking someone else's is not.
	require.NoError(t, repo.Update(ctx, &models.User{ID: "u1", Name: "Jo", MobileNumber: "4045551111"}))
	assert.ErrorIs(t, repo.Update(ctx, &models.User{ID: "u1", Name: "Jo", MobileNumber: "4045559999"}), user.ErrMobileTaken)

	assert.ErrorIs(t, repo.Update(ctx, &models.User{ID: "ghost", Name: "No", MobileNumber: "4045550000"}), user.ErrNotFound)
}

func TestCatalog_ListSalons(t *testing.T) {
	repo := NewCatalogGormRepository(newTestDB(t))

	salons, err := repo.ListSalons(context.Background())
	require.NoError(t, err)
	require.Len(t, salons, 1)
	assert.Len(t, salons[0].Services, 3)
}
