package postgres

import (
	"context"
	"errors"
	"fmt"

	"cash-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DirectoryRepo reads the tables owned by the HR, files and operations subsystems.
// It implements ports.EmploymentDirectory, ports.FileStore, ports.CompanyDirectory
// and ports.OperationsAggregate.
type DirectoryRepo struct {
	pool Pool
}

// NewDirectoryRepo creates a new DirectoryRepo.
func NewDirectoryRepo(pool Pool) *DirectoryRepo {
	return &DirectoryRepo{pool: pool}
}

// GetActive returns the employment record, or nil when absent or inactive.
func (r *DirectoryRepo) GetActive(ctx context.Context, companyID, employmentID uuid.UUID) (*domain.Employment, error) {
	query := `SELECT id, company_id, user_id, full_name, active
		FROM employment_records WHERE company_id = $1 AND id = $2 AND active`

	e := &domain.Employment{}
	err := r.pool.QueryRow(ctx, query, companyID, employmentID).
		Scan(&e.ID, &e.CompanyID, &e.UserID, &e.Name, &e.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employment: %w", err)
	}
	return e, nil
}

// ListActive returns every active employment of the company, ordered by name.
func (r *DirectoryRepo) ListActive(ctx context.Context, companyID uuid.UUID) ([]domain.Employment, error) {
	query := `SELECT id, company_id, user_id, full_name, active
		FROM employment_records WHERE company_id = $1 AND active
		ORDER BY full_name, id`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list employments: %w", err)
	}
	defer rows.Close()

	employments := []domain.Employment{}
	for rows.Next() {
		var e domain.Employment
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.UserID, &e.Name, &e.Active); err != nil {
			return nil, fmt.Errorf("scan employment: %w", err)
		}
		employments = append(employments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employments: %w", err)
	}
	return employments, nil
}

// Verify returns the stored ref, or "" when the company has no such file.
func (r *DirectoryRepo) Verify(ctx context.Context, companyID uuid.UUID, fileRef string) (string, error) {
	query := `SELECT ref FROM files WHERE company_id = $1 AND ref = $2`

	var ref string
	if err := r.pool.QueryRow(ctx, query, companyID, fileRef).Scan(&ref); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("verify file: %w", err)
	}
	return ref, nil
}

// Profile loads the company slug and timezone.
func (r *DirectoryRepo) Profile(ctx context.Context, companyID uuid.UUID) (*domain.CompanyProfile, error) {
	query := `SELECT id, slug, timezone FROM companies WHERE id = $1`

	p := &domain.CompanyProfile{}
	if err := r.pool.QueryRow(ctx, query, companyID).Scan(&p.ID, &p.Slug, &p.Timezone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company profile: %w", err)
	}
	return p, nil
}

// Sums totals daily operations in range, optionally for a single employee.
func (r *DirectoryRepo) Sums(ctx context.Context, companyID uuid.UUID, employmentID *uuid.UUID, rng domain.DateRange) (domain.OperationsSums, error) {
	query := `SELECT
		COALESCE(SUM(cash_collected), 0)::text,
		COALESCE(SUM(deduction_amount), 0)::text,
		COALESCE(SUM(total_revenue), 0)::text,
		COALESCE(SUM(orders_count), 0)::bigint
		FROM daily_operations
		WHERE company_id = $1 AND date >= $2 AND date <= $3`
	args := []any{companyID, rng.From, rng.To}
	if employmentID != nil {
		query += ` AND employment_record_id = $4`
		args = append(args, *employmentID)
	}

	var cash, deductions, revenue string
	var orders int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&cash, &deductions, &revenue, &orders); err != nil {
		return domain.OperationsSums{}, fmt.Errorf("sum operations: %w", err)
	}
	return operationsSums(cash, deductions, revenue, orders)
}

// SumsByEmployee is Sums grouped by employment record.
func (r *DirectoryRepo) SumsByEmployee(ctx context.Context, companyID uuid.UUID, rng domain.DateRange) (map[uuid.UUID]domain.OperationsSums, error) {
	query := `SELECT employment_record_id,
		COALESCE(SUM(cash_collected), 0)::text,
		COALESCE(SUM(deduction_amount), 0)::text,
		COALESCE(SUM(total_revenue), 0)::text,
		COALESCE(SUM(orders_count), 0)::bigint
		FROM daily_operations
		WHERE company_id = $1 AND date >= $2 AND date <= $3
		GROUP BY employment_record_id`

	rows, err := r.pool.Query(ctx, query, companyID, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("sum operations by employee: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]domain.OperationsSums)
	for rows.Next() {
		var id uuid.UUID
		var cash, deductions, revenue string
		var orders int64
		if err := rows.Scan(&id, &cash, &deductions, &revenue, &orders); err != nil {
			return nil, fmt.Errorf("scan operations sums: %w", err)
		}
		sums, err := operationsSums(cash, deductions, revenue, orders)
		if err != nil {
			return nil, err
		}
		result[id] = sums
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations sums: %w", err)
	}
	return result, nil
}

func operationsSums(cash, deductions, revenue string, orders int64) (domain.OperationsSums, error) {
	s := domain.OperationsSums{OrdersCount: orders}
	var err error
	if s.CashCollected, err = parseAmount(cash); err != nil {
		return s, err
	}
	if s.DeductionAmount, err = parseAmount(deductions); err != nil {
		return s, err
	}
	if s.TotalRevenue, err = parseAmount(revenue); err != nil {
		return s, err
	}
	return s, nil
}
