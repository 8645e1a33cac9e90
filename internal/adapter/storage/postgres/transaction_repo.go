package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const cashTransactionColumns = `id, company_id, employment_record_id, supervisor_user_id, override_user_id,
		type, status, amount::text, date, receipt_no, balance_after::text, batch_id,
		description, attachment_ref, created_at, approved_at`

// TransactionRepo implements ports.CashTransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts a new ledger row within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.CashTransaction) error {
	query := `INSERT INTO cash_transactions (id, company_id, employment_record_id, supervisor_user_id, override_user_id,
		type, status, amount, date, receipt_no, balance_after, batch_id, description, attachment_ref, created_at, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.CompanyID, t.EmploymentID, t.SupervisorUserID, t.OverrideUserID,
		string(t.Type), string(t.Status), t.Amount.String(), t.Date, t.ReceiptNo,
		optionalAmountArg(t.BalanceAfter), t.BatchID, t.Description, t.AttachmentRef,
		t.CreatedAt, t.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cash transaction: %w", err)
	}
	return nil
}

// GetByID fetches a ledger row scoped to the company.
func (r *TransactionRepo) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.CashTransaction, error) {
	query := `SELECT ` + cashTransactionColumns + `
		FROM cash_transactions WHERE company_id = $1 AND id = $2`

	t, err := scanCashTransaction(r.pool.QueryRow(ctx, query, companyID, id))
	if err != nil {
		return nil, fmt.Errorf("get cash transaction: %w", err)
	}
	return t, nil
}

// GetByIDForUpdate fetches a ledger row with pessimistic locking.
// This MUST be called within a transaction.
func (r *TransactionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) (*domain.CashTransaction, error) {
	query := `SELECT ` + cashTransactionColumns + `
		FROM cash_transactions WHERE company_id = $1 AND id = $2 FOR UPDATE`

	t, err := scanCashTransaction(tx.QueryRow(ctx, query, companyID, id))
	if err != nil {
		return nil, fmt.Errorf("get cash transaction for update: %w", err)
	}
	return t, nil
}

// UpdateAttachment replaces the attachment of a draft.
func (r *TransactionRepo) UpdateAttachment(ctx context.Context, tx pgx.Tx, id uuid.UUID, attachmentRef *string) error {
	query := `UPDATE cash_transactions SET attachment_ref = $1 WHERE id = $2 AND status = 'DRAFT'`

	tag, err := tx.Exec(ctx, query, attachmentRef, id)
	if err != nil {
		return fmt.Errorf("update attachment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("draft transaction not found: %s", id)
	}
	return nil
}

// MarkApproved records the approval outcome. Rows already approved are never touched.
func (r *TransactionRepo) MarkApproved(ctx context.Context, tx pgx.Tx, id uuid.UUID, receiptNo string, balanceAfter decimal.Decimal, approvedAt time.Time) error {
	query := `UPDATE cash_transactions
		SET status = 'APPROVED', receipt_no = $1, balance_after = $2, approved_at = $3
		WHERE id = $4 AND status = 'DRAFT'`

	tag, err := tx.Exec(ctx, query, receiptNo, balanceAfter.String(), approvedAt, id)
	if err != nil {
		return fmt.Errorf("approve cash transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("draft transaction not found: %s", id)
	}
	return nil
}

// List returns one page of ledger rows matching the filter, newest first.
func (r *TransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.CashTransaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("company_id = $%d", argIdx))
	args = append(args, params.CompanyID)
	argIdx++

	if params.EmploymentID != nil {
		conditions = append(conditions, fmt.Sprintf("employment_record_id = $%d", argIdx))
		args = append(args, *params.EmploymentID)
		argIdx++
	}
	if params.BatchID != nil {
		conditions = append(conditions, fmt.Sprintf("batch_id = $%d", argIdx))
		args = append(args, *params.BatchID)
		argIdx++
	}
	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, string(*params.Status))
		argIdx++
	}
	if params.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, string(*params.Type))
		argIdx++
	}
	if params.Range != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d AND date <= $%d", argIdx, argIdx+1))
		args = append(args, params.Range.From, params.Range.To)
		argIdx += 2
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM cash_transactions %s", where)
	var total int64
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count cash transactions: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s
		FROM cash_transactions %s ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		cashTransactionColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list cash transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.CashTransaction{}
	for rows.Next() {
		t, err := scanCashTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan cash transaction: %w", err)
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate cash transactions: %w", err)
	}

	return txns, total, nil
}

// SumApproved totals approved receipts, deductions and loans in range,
// optionally for a single employee.
func (r *TransactionRepo) SumApproved(ctx context.Context, companyID uuid.UUID, employmentID *uuid.UUID, rng domain.DateRange) (domain.LedgerSums, error) {
	query := `SELECT
		COALESCE(SUM(amount) FILTER (WHERE type = 'RECEIPT'), 0)::text,
		COALESCE(SUM(amount) FILTER (WHERE type = 'DEDUCTION'), 0)::text,
		COALESCE(SUM(amount) FILTER (WHERE type = 'LOAN'), 0)::text
		FROM cash_transactions
		WHERE company_id = $1 AND status = 'APPROVED' AND date >= $2 AND date <= $3`
	args := []any{companyID, rng.From, rng.To}
	if employmentID != nil {
		query += ` AND employment_record_id = $4`
		args = append(args, *employmentID)
	}

	var receipts, deductions, loans string
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&receipts, &deductions, &loans); err != nil {
		return domain.LedgerSums{}, fmt.Errorf("sum approved transactions: %w", err)
	}
	return ledgerSums(receipts, deductions, loans)
}

// SumApprovedByEmployee is SumApproved grouped by employment record.
func (r *TransactionRepo) SumApprovedByEmployee(ctx context.Context, companyID uuid.UUID, rng domain.DateRange) (map[uuid.UUID]domain.LedgerSums, error) {
	query := `SELECT employment_record_id,
		COALESCE(SUM(amount) FILTER (WHERE type = 'RECEIPT'), 0)::text,
		COALESCE(SUM(amount) FILTER (WHERE type = 'DEDUCTION'), 0)::text,
		COALESCE(SUM(amount) FILTER (WHERE type = 'LOAN'), 0)::text
		FROM cash_transactions
		WHERE company_id = $1 AND status = 'APPROVED' AND date >= $2 AND date <= $3
			AND employment_record_id IS NOT NULL
		GROUP BY employment_record_id`

	rows, err := r.pool.Query(ctx, query, companyID, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("sum approved by employee: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]domain.LedgerSums)
	for rows.Next() {
		var id uuid.UUID
		var receipts, deductions, loans string
		if err := rows.Scan(&id, &receipts, &deductions, &loans); err != nil {
			return nil, fmt.Errorf("scan employee sums: %w", err)
		}
		sums, err := ledgerSums(receipts, deductions, loans)
		if err != nil {
			return nil, err
		}
		result[id] = sums
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employee sums: %w", err)
	}
	return result, nil
}

func ledgerSums(receipts, deductions, loans string) (domain.LedgerSums, error) {
	var s domain.LedgerSums
	var err error
	if s.Receipts, err = parseAmount(receipts); err != nil {
		return s, err
	}
	if s.Deductions, err = parseAmount(deductions); err != nil {
		return s, err
	}
	if s.Loans, err = parseAmount(loans); err != nil {
		return s, err
	}
	return s, nil
}

func scanCashTransaction(row pgx.Row) (*domain.CashTransaction, error) {
	t := &domain.CashTransaction{}
	var amount string
	var balanceAfter *string
	err := row.Scan(
		&t.ID, &t.CompanyID, &t.EmploymentID, &t.SupervisorUserID, &t.OverrideUserID,
		&t.Type, &t.Status, &amount, &t.Date, &t.ReceiptNo, &balanceAfter, &t.BatchID,
		&t.Description, &t.AttachmentRef, &t.CreatedAt, &t.ApprovedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if t.Amount, err = parseAmount(amount); err != nil {
		return nil, err
	}
	if t.BalanceAfter, err = parseOptionalAmount(balanceAfter); err != nil {
		return nil, err
	}
	return t, nil
}
