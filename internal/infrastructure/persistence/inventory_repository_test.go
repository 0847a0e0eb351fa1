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

// newMockInventoryRepository creates a GormInventoryRepository with a mocked SQL connection
func newMockInventoryRepository(t *testing.T) (*GormInventoryRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormInventoryRepository(gormDB), mock, mockDB
}

func TestGormInventoryRepository_FindByMenuItem(t *testing.T) {
	t.Run("finds inventory row for menu item", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryRepository(t)
		defer mockDB.Close()

		rowID := uuid.New()
		menuItemID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "menu_item_id", "quantity", "updated_at"}).
			AddRow(rowID, menuItemID, 25, time.Now())

		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE menu_item_id = \$1`).
			WithArgs(menuItemID, 1).
			WillReturnRows(rows)

		item, err := repo.FindByMenuItem(context.Background(), menuItemID)

		assert.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, menuItemID, item.MenuItemID)
		assert.Equal(t, 25, item.Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when no row exists", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryRepository(t)
		defer mockDB.Close()

		menuItemID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE menu_item_id = \$1`).
			WithArgs(menuItemID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		item, err := repo.FindByMenuItem(context.Background(), menuItemID)

		assert.Nil(t, item)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryRepository_Upsert(t *testing.T) {
	t.Run("writes through a single conflict-resolving insert", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryRepository(t)
		defer mockDB.Close()

		menuItemID := uuid.New()

		mock.ExpectExec(`INSERT INTO "inventory_items" .* ON CONFLICT \("menu_item_id"\) DO UPDATE SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		rows := sqlmock.NewRows([]string{"id", "menu_item_id", "quantity", "updated_at"}).
			AddRow(uuid.New(), menuItemID, 40, time.Now())
		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE menu_item_id = \$1`).
			WithArgs(menuItemID, 1).
			WillReturnRows(rows)

		item, err := repo.Upsert(context.Background(), menuItemID, 40)

		assert.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, 40, item.Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects negative quantity before touching the store", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryRepository(t)
		defer mockDB.Close()

		item, err := repo.Upsert(context.Background(), uuid.New(), -1)

		assert.Nil(t, item)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects nil menu item id", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryRepository(t)
		defer mockDB.Close()

		item, err := repo.Upsert(context.Background(), uuid.Nil, 5)

		assert.Nil(t, item)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
