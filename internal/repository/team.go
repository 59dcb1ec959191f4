package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/venturearena/backend/internal/model"
	"gorm.io/gorm"
)

var ErrTeamNotFound = errors.New("TEAM_NOT_FOUND")
var ErrTeamDuplicate = errors.New("TEAM_DUPLICATE")
var ErrNoRowsAffected = errors.New("NO_ROWS_AFFECTED")

// TeamStanding is one leaderboard row: a team annotated with its member and
// investment counts, produced by ListByBalanceDesc.
type TeamStanding struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Balance         int64  `json:"balance"`
	MemberCount     int    `json:"member_count"`
	InvestmentCount int    `json:"investment_count"`
}

type TeamRepository interface {
	Create(ctx context.Context, team *model.Team) error
	GetByID(ctx context.Context, id int64) (*model.Team, error)
	DebitBalance(ctx context.Context, teamID, amount int64) error
	CreditBalance(ctx context.Context, teamID, amount int64) error
	ListByBalanceDesc(ctx context.Context) ([]TeamStanding, error)
	ListWithRelations(ctx context.Context) ([]model.Team, error)
}

type Team struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &Team{db: db}
}

func (t *Team) Create(ctx context.Context, team *model.Team) error {
	db := GetTx(ctx, t.db)
	err := db.Create(team).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrTeamDuplicate
	}

	return err
}

func (t *Team) GetByID(ctx context.Context, id int64) (*model.Team, error) {
	var team model.Team

	err := GetTx(ctx, t.db).Where("id = ?", id).First(&team).Error
	if err == nil {
		return &team, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTeamNotFound
	}

	return nil, err
}

// DebitBalance is a compare-and-decrement: the balance check and the debit
// are one conditional UPDATE, so two concurrent debits can never both pass a
// stale balance check. Zero rows affected means the team is missing or the
// balance is too low; callers disambiguate with GetByID.
func (t *Team) DebitBalance(ctx context.Context, teamID, amount int64) error {
	db := GetTx(ctx, t.db)

	result := db.Model(&model.Team{}).
		Where("id = ? AND balance >= ?", teamID, amount).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (t *Team) CreditBalance(ctx context.Context, teamID, amount int64) error {
	db := GetTx(ctx, t.db)

	result := db.Model(&model.Team{}).
		Where("id = ?", teamID).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (t *Team) ListByBalanceDesc(ctx context.Context) ([]TeamStanding, error) {
	var standings []TeamStanding

	err := GetTx(ctx, t.db).Raw(`
		SELECT t.id, t.name, t.balance,
		       (SELECT COUNT(*) FROM users u WHERE u.team_id = t.id) AS member_count,
		       (SELECT COUNT(*) FROM investments i WHERE i.team_id = t.id) AS investment_count
		FROM teams t
		ORDER BY t.balance DESC, t.id ASC
	`).Scan(&standings).Error
	if err != nil {
		return nil, err
	}

	return standings, nil
}

func (t *Team) ListWithRelations(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team

	err := GetTx(ctx, t.db).
		Preload("Users").
		Preload("Investments").
		Preload("Investments.Startup").
		Order("id ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}

	return teams, nil
}
