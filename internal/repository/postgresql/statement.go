package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/database"
)

type statementRepositoryImpl struct {
	db *database.DB
}

func NewStatementRepository(db *database.DB) payroll.StatementRepository {
	return &statementRepositoryImpl{db: db}
}

const statementSelect = `
	SELECT
		ps.id, ps.user_id, ps.month, ps.year,
		ps.total_hours, ps.base_salary, ps.bonuses, ps.penalties, ps.net_salary,
		ps.created_at, ps.updated_at,
		u.name AS user_name
	FROM payroll_statements ps
	JOIN users u ON u.id = ps.user_id
`

func scanStatement(row interface {
	Scan(dest ...interface{}) error
}) (payroll.Statement, error) {
	var s payroll.Statement
	err := row.Scan(
		&s.ID, &s.UserID, &s.Month, &s.Year,
		&s.TotalHours, &s.BaseSalary, &s.Bonuses, &s.Penalties, &s.NetSalary,
		&s.CreatedAt, &s.UpdatedAt,
		&s.UserName,
	)
	return s, err
}

// CreateWithDetails implements payroll.StatementRepository.
// Callers run this inside a transaction so the statement and its detail rows
// land together.
func (r *statementRepositoryImpl) CreateWithDetails(ctx context.Context, s payroll.Statement) (payroll.Statement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_statements (
			id, user_id, month, year, total_hours, base_salary, bonuses, penalties, net_salary, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.UserID, s.Month, s.Year, s.TotalHours, s.BaseSalary, s.Bonuses, s.Penalties, s.NetSalary,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return payroll.Statement{}, err
	}

	detailQuery := `
		INSERT INTO salary_details (id, statement_id, description, amount)
		VALUES (uuidv7(), $1, $2, $3)
		RETURNING id
	`
	for i := range s.Details {
		s.Details[i].StatementID = s.ID
		err := q.QueryRow(ctx, detailQuery, s.ID, s.Details[i].Description, s.Details[i].Amount).
			Scan(&s.Details[i].ID)
		if err != nil {
			return payroll.Statement{}, fmt.Errorf("failed to insert salary detail: %w", err)
		}
	}

	return s, nil
}

// GetByID implements payroll.StatementRepository.
func (r *statementRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Statement, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanStatement(q.QueryRow(ctx, statementSelect+` WHERE ps.id = $1`, id))
	if err != nil {
		return payroll.Statement{}, err
	}

	s.Details, err = r.listDetails(ctx, q, s.ID)
	if err != nil {
		return payroll.Statement{}, err
	}

	return s, nil
}

// GetByUserPeriod implements payroll.StatementRepository.
func (r *statementRepositoryImpl) GetByUserPeriod(ctx context.Context, userID string, month, year int) (payroll.Statement, error) {
	q := GetQuerier(ctx, r.db)

	query := statementSelect + ` WHERE ps.user_id = $1 AND ps.month = $2 AND ps.year = $3`

	s, err := scanStatement(q.QueryRow(ctx, query, userID, month, year))
	if err != nil {
		return payroll.Statement{}, err
	}

	s.Details, err = r.listDetails(ctx, q, s.ID)
	if err != nil {
		return payroll.Statement{}, err
	}

	return s, nil
}

// ListByPeriod implements payroll.StatementRepository.
// Detail rows are not loaded for list views.
func (r *statementRepositoryImpl) ListByPeriod(ctx context.Context, month, year int) ([]payroll.Statement, error) {
	q := GetQuerier(ctx, r.db)

	query := statementSelect + `
		WHERE ps.month = $1 AND ps.year = $2
		ORDER BY u.name ASC
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}
	defer rows.Close()

	var statements []payroll.Statement
	for rows.Next() {
		s, err := scanStatement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan statement: %w", err)
		}
		statements = append(statements, s)
	}

	return statements, rows.Err()
}

// UpdateAdjustments implements payroll.StatementRepository.
func (r *statementRepositoryImpl) UpdateAdjustments(ctx context.Context, s payroll.Statement) (payroll.Statement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_statements
		SET bonuses = $2, penalties = $3, net_salary = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.Bonuses, s.Penalties, s.NetSalary).Scan(&s.UpdatedAt)
	if err != nil {
		return payroll.Statement{}, err
	}

	return s, nil
}

// GetMonthlySummary implements payroll.StatementRepository.
func (r *statementRepositoryImpl) GetMonthlySummary(ctx context.Context, month, year int) (payroll.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total_hours), 0),
			COALESCE(SUM(base_salary), 0),
			COALESCE(SUM(bonuses), 0),
			COALESCE(SUM(penalties), 0),
			COALESCE(SUM(net_salary), 0)
		FROM payroll_statements
		WHERE month = $1 AND year = $2
	`

	summary := payroll.MonthlySummary{Month: month, Year: year}
	err := q.QueryRow(ctx, query, month, year).Scan(
		&summary.StatementCount,
		&summary.TotalHours,
		&summary.TotalBase,
		&summary.TotalBonuses,
		&summary.TotalPenalties,
		&summary.TotalNet,
	)
	if err != nil {
		return payroll.MonthlySummary{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	return summary, nil
}

func (r *statementRepositoryImpl) listDetails(ctx context.Context, q database.Querier, statementID string) ([]payroll.SalaryDetail, error) {
	query := `
		SELECT id, statement_id, description, amount
		FROM salary_details
		WHERE statement_id = $1
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query, statementID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary details: %w", err)
	}
	defer rows.Close()

	var details []payroll.SalaryDetail
	for rows.Next() {
		var d payroll.SalaryDetail
		if err := rows.Scan(&d.ID, &d.StatementID, &d.Description, &d.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan salary detail: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}
