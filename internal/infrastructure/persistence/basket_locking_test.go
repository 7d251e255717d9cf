package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/retailnet/backend/internal/domain/order"
)

// newMockOrderRepository creates a GormOrderRepository on a mocked connection.
// The row-locking path needs the postgres dialect, which the sqlite-backed
// tests cannot produce.
func newMockOrderRepository(t *testing.T) (*GormOrderRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormOrderRepository(gormDB), mock, mockDB
}

func TestGetOrCreateBasket_LocksExistingRow(t *testing.T) {
	repo, mock, mockDB := newMockOrderRepository(t)
	defer mockDB.Close()

	userID := uuid.New()
	basketID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "version", "user_id", "state", "contact_id"}).
		AddRow(basketID, now, now, 1, userID, "basket", nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE user_id = \$1 AND state = \$2 .* FOR UPDATE`).
		WithArgs(userID, order.StateBasket, 1).
		WillReturnRows(rows)
	mock.ExpectCommit()

	basket, err := repo.GetOrCreateBasket(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, basketID, basket.ID)
	assert.Equal(t, order.StateBasket, basket.State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrCreateBasket_PropagatesQueryErrors(t *testing.T) {
	repo, mock, mockDB := newMockOrderRepository(t)
	defer mockDB.Close()

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "orders"`).
		WithArgs(userID, order.StateBasket, 1).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := repo.GetOrCreateBasket(context.Background(), userID)

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
