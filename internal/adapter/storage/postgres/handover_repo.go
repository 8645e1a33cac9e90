package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cash-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const handoverBatchColumns = `id, company_id, supervisor_user_id, status, date,
		expenses_total::text, handed_over_amount::text, wallet_balance_snapshot::text, created_at, approved_at`

// HandoverRepo implements ports.HandoverRepository.
type HandoverRepo struct {
	pool Pool
}

// NewHandoverRepo creates a new HandoverRepo.
func NewHandoverRepo(pool Pool) *HandoverRepo {
	return &HandoverRepo{pool: pool}
}

// Create inserts the batch and its expense lines within a transaction.
func (r *HandoverRepo) Create(ctx context.Context, tx pgx.Tx, b *domain.HandoverBatch) error {
	query := `INSERT INTO handover_batches (id, company_id, supervisor_user_id, status, date,
		expenses_total, handed_over_amount, wallet_balance_snapshot, created_at, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		b.ID, b.CompanyID, b.SupervisorUserID, string(b.Status), b.Date,
		b.ExpensesTotal.String(), b.HandedOverAmount.String(), b.WalletBalanceSnapshot.String(),
		b.CreatedAt, b.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("insert handover batch: %w", err)
	}

	lineQuery := `INSERT INTO handover_expense_lines (id, batch_id, position, statement, amount, receipt_ref)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i, l := range b.Lines {
		if _, err := tx.Exec(ctx, lineQuery, l.ID, b.ID, i, l.Statement, l.Amount.String(), l.ReceiptRef); err != nil {
			return fmt.Errorf("insert handover line %d: %w", i, err)
		}
	}
	return nil
}

// GetByID fetches a batch and its lines.
func (r *HandoverRepo) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.HandoverBatch, error) {
	query := `SELECT ` + handoverBatchColumns + `
		FROM handover_batches WHERE company_id = $1 AND id = $2`

	b, err := scanHandoverBatch(r.pool.QueryRow(ctx, query, companyID, id))
	if err != nil {
		return nil, fmt.Errorf("get handover batch: %w", err)
	}
	if b == nil {
		return nil, nil
	}
	if b.Lines, err = r.lines(ctx, r.pool, id); err != nil {
		return nil, err
	}
	return b, nil
}

// GetByIDForUpdate fetches a batch with pessimistic locking.
// This MUST be called within a transaction.
func (r *HandoverRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) (*domain.HandoverBatch, error) {
	query := `SELECT ` + handoverBatchColumns + `
		FROM handover_batches WHERE company_id = $1 AND id = $2 FOR UPDATE`

	b, err := scanHandoverBatch(tx.QueryRow(ctx, query, companyID, id))
	if err != nil {
		return nil, fmt.Errorf("get handover batch for update: %w", err)
	}
	if b == nil {
		return nil, nil
	}
	if b.Lines, err = r.lines(ctx, tx, id); err != nil {
		return nil, err
	}
	return b, nil
}

// MarkApproved flips a draft batch to APPROVED.
func (r *HandoverRepo) MarkApproved(ctx context.Context, tx pgx.Tx, id uuid.UUID, approvedAt time.Time) error {
	query := `UPDATE handover_batches SET status = 'APPROVED', approved_at = $1 WHERE id = $2 AND status = 'DRAFT'`

	tag, err := tx.Exec(ctx, query, approvedAt, id)
	if err != nil {
		return fmt.Errorf("approve handover batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("draft handover batch not found: %s", id)
	}
	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *HandoverRepo) lines(ctx context.Context, q querier, batchID uuid.UUID) ([]domain.HandoverExpenseLine, error) {
	query := `SELECT id, batch_id, statement, amount::text, receipt_ref
		FROM handover_expense_lines WHERE batch_id = $1 ORDER BY position`

	rows, err := q.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("list handover lines: %w", err)
	}
	defer rows.Close()

	lines := []domain.HandoverExpenseLine{}
	for rows.Next() {
		var l domain.HandoverExpenseLine
		var amount string
		if err := rows.Scan(&l.ID, &l.BatchID, &l.Statement, &amount, &l.ReceiptRef); err != nil {
			return nil, fmt.Errorf("scan handover line: %w", err)
		}
		if l.Amount, err = parseAmount(amount); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate handover lines: %w", err)
	}
	return lines, nil
}

func scanHandoverBatch(row pgx.Row) (*domain.HandoverBatch, error) {
	b := &domain.HandoverBatch{}
	var expenses, handed, snapshot string
	err := row.Scan(&b.ID, &b.CompanyID, &b.SupervisorUserID, &b.Status, &b.Date,
		&expenses, &handed, &snapshot, &b.CreatedAt, &b.ApprovedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if b.ExpensesTotal, err = parseAmount(expenses); err != nil {
		return nil, err
	}
	if b.HandedOverAmount, err = parseAmount(handed); err != nil {
		return nil, err
	}
	if b.WalletBalanceSnapshot, err = parseAmount(snapshot); err != nil {
		return nil, err
	}
	return b, nil
}
