package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/venturearena/backend/internal/repository"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	return db, mock
}

func TestTeam_DebitBalance(t *testing.T) {
	t.Run("debits when the balance covers the amount", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewTeamRepository(db)

		mock.ExpectExec("UPDATE `teams`").
			WithArgs(int64(500), sqlmock.AnyArg(), int64(1), int64(500)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DebitBalance(context.Background(), 1, 500)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports no rows when the balance is too low", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewTeamRepository(db)

		mock.ExpectExec("UPDATE `teams`").
			WithArgs(int64(500), sqlmock.AnyArg(), int64(1), int64(500)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DebitBalance(context.Background(), 1, 500)

		assert.ErrorIs(t, err, repository.ErrNoRowsAffected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTeam_CreditBalance(t *testing.T) {
	t.Run("credits the team", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewTeamRepository(db)

		mock.ExpectExec("UPDATE `teams`").
			WithArgs(int64(200), sqlmock.AnyArg(), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.CreditBalance(context.Background(), 1, 200)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports no rows for a missing team", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewTeamRepository(db)

		mock.ExpectExec("UPDATE `teams`").
			WithArgs(int64(200), sqlmock.AnyArg(), int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.CreditBalance(context.Background(), 99, 200)

		assert.ErrorIs(t, err, repository.ErrNoRowsAffected)
	})
}

func TestTeam_ListByBalanceDesc(t *testing.T) {
	t.Run("scans standings in balance order", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewTeamRepository(db)

		rows := sqlmock.NewRows([]string{"id", "name", "balance", "member_count", "investment_count"}).
			AddRow(2, "Bravo", 2_000_000, 3, 5).
			AddRow(1, "Alpha", 900_000, 2, 1)

		mock.ExpectQuery("ORDER BY t.balance DESC").WillReturnRows(rows)

		standings, err := repo.ListByBalanceDesc(context.Background())

		assert.NoError(t, err)
		assert.Len(t, standings, 2)
		assert.Equal(t, "Bravo", standings[0].Name)
		assert.Equal(t, int64(2_000_000), standings[0].Balance)
		assert.Equal(t, 5, standings[0].InvestmentCount)
	})
}
