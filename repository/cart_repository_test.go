package repository_test

import (
	"context"
	"regexp"
	"testing"

	"store-api/models"
	"store-api/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestInsertIgnore_Inserted(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCartRepository(gormDB)

	line := &models.CartLine{ProductID: 1, UserID: 2, Amount: 2, TotalAmount: 39.98}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "cart_lines"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, err := repo.InsertIgnore(context.Background(), line)
	assert.NoError(t, err)
	assert.Equal(t, repository.Inserted, outcome)
}

func TestInsertIgnore_DuplicateIsDropped(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCartRepository(gormDB)

	line := &models.CartLine{ProductID: 1, UserID: 2, Amount: 5, TotalAmount: 99.95}

	// ON CONFLICT DO NOTHING: zero rows affected, no error.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "cart_lines"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	outcome, err := repo.InsertIgnore(context.Background(), line)
	assert.NoError(t, err)
	assert.Equal(t, repository.AlreadyExists, outcome)
}

func TestUpdateAmount_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCartRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cart_lines"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateAmount(context.Background(), 99, 1, 3, 59.97)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateAmount_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCartRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cart_lines"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateAmount(context.Background(), 1, 1, 3, 59.97)
	assert.NoError(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCartRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "cart_lines"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 42, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteAllForUser_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCartRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "cart_lines"`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := repo.DeleteAllForUser(context.Background(), 7)
	assert.NoError(t, err)
}

func TestFindJoined_ReturnsJoinedRows(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCartRepository(gormDB)

	rows := sqlmock.NewRows([]string{"user_id", "product_id", "name", "description", "price", "amount", "total_amount"}).
		AddRow(2, 1, "Amber Necklace", "Hand-polished Caspian amber", 19.99, 2, 39.98)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT cart_lines.user_id, cart_lines.product_id, products.name, products.description, products.price, cart_lines.amount, cart_lines.total_amount FROM "cart_lines"`)).
		WillReturnRows(rows)

	got, err := repo.FindJoined(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].UserID)
	assert.Equal(t, uint(1), got[0].ProductID)
	assert.Equal(t, "Amber Necklace", got[0].Name)
	assert.Equal(t, 2, got[0].Amount)
	assert.Equal(t, 39.98, got[0].TotalAmount)
}

func TestFindJoined_EmptyCart(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCartRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT cart_lines.user_id`)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "product_id", "name", "description", "price", "amount", "total_amount"}))

	got, err := repo.FindJoined(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
