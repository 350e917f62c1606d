package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/database"
)

type rewardPenaltyRepositoryImpl struct {
	db *database.DB
}

func NewRewardPenaltyRepository(db *database.DB) payroll.RewardPenaltyRepository {
	return &rewardPenaltyRepositoryImpl{db: db}
}

// Create implements payroll.RewardPenaltyRepository.
func (r *rewardPenaltyRepositoryImpl) Create(ctx context.Context, rp payroll.RewardPenalty) (payroll.RewardPenalty, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reward_penalties (
			id, user_id, type, amount, reason, created_by, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, NOW()
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		rp.UserID, rp.Type, rp.Amount, rp.Reason, rp.CreatedBy,
	).Scan(&rp.ID, &rp.CreatedAt)
	if err != nil {
		return payroll.RewardPenalty{}, err
	}

	return rp, nil
}

// GetByID implements payroll.RewardPenaltyRepository.
func (r *rewardPenaltyRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.RewardPenalty, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, type, amount, reason, created_by, created_at
		FROM reward_penalties
		WHERE id = $1
	`

	var rp payroll.RewardPenalty
	err := q.QueryRow(ctx, query, id).Scan(
		&rp.ID, &rp.UserID, &rp.Type, &rp.Amount, &rp.Reason, &rp.CreatedBy, &rp.CreatedAt,
	)
	if err != nil {
		return payroll.RewardPenalty{}, err
	}

	return rp, nil
}

// Delete implements payroll.RewardPenaltyRepository.
func (r *rewardPenaltyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM reward_penalties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return payroll.ErrRewardPenaltyNotFound
	}

	return nil
}

// ListByUser implements payroll.RewardPenaltyRepository.
func (r *rewardPenaltyRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]payroll.RewardPenalty, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, type, amount, reason, created_by, created_at
		FROM reward_penalties
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	return r.queryRewardPenalties(ctx, q, query, userID)
}

// ListByUserInRange implements payroll.RewardPenaltyRepository.
func (r *rewardPenaltyRepositoryImpl) ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]payroll.RewardPenalty, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, type, amount, reason, created_by, created_at
		FROM reward_penalties
		WHERE user_id = $1
		  AND created_at >= $2
		  AND created_at < $3
		ORDER BY created_at ASC
	`

	return r.queryRewardPenalties(ctx, q, query, userID, from, to)
}

func (r *rewardPenaltyRepositoryImpl) queryRewardPenalties(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]payroll.RewardPenalty, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reward penalties: %w", err)
	}
	defer rows.Close()

	var records []payroll.RewardPenalty
	for rows.Next() {
		var rp payroll.RewardPenalty
		if err := rows.Scan(
			&rp.ID, &rp.UserID, &rp.Type, &rp.Amount, &rp.Reason, &rp.CreatedBy, &rp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reward penalty: %w", err)
		}
		records = append(records, rp)
	}

	return records, rows.Err()
}
