package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/shared"
)

// newMockOutletRepository creates a GormOutletRepository with a mocked SQL connection
func newMockOutletRepository(t *testing.T) (*GormOutletRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormOutletRepository(gormDB), mock, mockDB
}

func TestGormOutletRepository_FindByID(t *testing.T) {
	t.Run("finds existing outlet", func(t *testing.T) {
		repo, mock, mockDB := newMockOutletRepository(t)
		defer mockDB.Close()

		outletID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "name", "address", "pincode", "created_at", "updated_at"}).
			AddRow(outletID, "Indiranagar Kitchen", "12th Main Rd", "560038", now, now)

		mock.ExpectQuery(`SELECT \* FROM "outlets" WHERE id = \$1`).
			WithArgs(outletID, 1).
			WillReturnRows(rows)

		outlet, err := repo.FindByID(context.Background(), outletID)

		assert.NoError(t, err)
		require.NotNil(t, outlet)
		assert.Equal(t, outletID, outlet.ID)
		assert.Equal(t, "Indiranagar Kitchen", outlet.Name)
		assert.Equal(t, "560038", outlet.Pincode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing outlet", func(t *testing.T) {
		repo, mock, mockDB := newMockOutletRepository(t)
		defer mockDB.Close()

		outletID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "outlets" WHERE id = \$1`).
			WithArgs(outletID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		outlet, err := repo.FindByID(context.Background(), outletID)

		assert.Nil(t, outlet)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOutletRepository_FindByPincode(t *testing.T) {
	t.Run("returns outlets newest first", func(t *testing.T) {
		repo, mock, mockDB := newMockOutletRepository(t)
		defer mockDB.Close()

		newer := uuid.New()
		older := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "name", "address", "pincode", "created_at", "updated_at"}).
			AddRow(newer, "New Branch", nil, "560001", now, now).
			AddRow(older, "Old Branch", nil, "560001", now.Add(-time.Hour), now.Add(-time.Hour))

		mock.ExpectQuery(`SELECT \* FROM "outlets" WHERE pincode = \$1 ORDER BY created_at DESC`).
			WithArgs("560001").
			WillReturnRows(rows)

		outlets, err := repo.FindByPincode(context.Background(), "560001")

		assert.NoError(t, err)
		require.Len(t, outlets, 2)
		assert.Equal(t, newer, outlets[0].ID)
		assert.Equal(t, older, outlets[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice when no outlets match", func(t *testing.T) {
		repo, mock, mockDB := newMockOutletRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "address", "pincode", "created_at", "updated_at"})

		mock.ExpectQuery(`SELECT \* FROM "outlets" WHERE pincode = \$1 ORDER BY created_at DESC`).
			WithArgs("999999").
			WillReturnRows(rows)

		outlets, err := repo.FindByPincode(context.Background(), "999999")

		assert.NoError(t, err)
		assert.Empty(t, outlets)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
