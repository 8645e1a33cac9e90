package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"
	"cash-wallet-ledger/pkg/apperror"
	"cash-wallet-ledger/pkg/metrics"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// HandoverDeps groups the collaborators of HandoverServiceImpl.
type HandoverDeps struct {
	Handovers       ports.HandoverRepository
	Transactions    ports.CashTransactionRepository
	Wallets         *WalletStore
	Sequences       *SequenceAllocator
	Files           ports.FileStore
	Companies       ports.CompanyDirectory
	Transactor      ports.DBTransactor
	Audit           ports.AuditSink
	Metrics         *metrics.Metrics
	DefaultLocation *time.Location
	Log             zerolog.Logger
}

// HandoverServiceImpl implements ports.HandoverService.
type HandoverServiceImpl struct {
	handovers  ports.HandoverRepository
	txRepo     ports.CashTransactionRepository
	wallets    *WalletStore
	sequences  *SequenceAllocator
	files      ports.FileStore
	clock      *companyClock
	transactor ports.DBTransactor
	audit      ports.AuditSink
	instr      instrumentation
	log        zerolog.Logger
}

// NewHandoverService creates a new HandoverServiceImpl.
func NewHandoverService(d HandoverDeps) *HandoverServiceImpl {
	return &HandoverServiceImpl{
		handovers:  d.Handovers,
		txRepo:     d.Transactions,
		wallets:    d.Wallets,
		sequences:  d.Sequences,
		files:      d.Files,
		clock:      newCompanyClock(d.Companies, d.DefaultLocation),
		transactor: d.Transactor,
		audit:      d.Audit,
		instr:      instrumentation{metrics: d.Metrics},
		log:        d.Log,
	}
}

// Handover splits the supervisor's custody into expenses and cash handed over.
func (s *HandoverServiceImpl) Handover(ctx context.Context, req ports.HandoverRequest) (batch *domain.HandoverBatch, err error) {
	ctx, finish := s.instr.start(ctx, "handover.create",
		companyAttr(req.CompanyID), attribute.Int("lines", len(req.Lines)))
	defer func() { finish(err) }()

	if _, ok := domain.ParseSubmitAction(string(req.Action)); !ok {
		return nil, apperror.Validation("submit action must be draft or approve")
	}

	batchID := uuid.New()
	lines, err := s.buildLines(ctx, req.CompanyID, batchID, req.Lines)
	if err != nil {
		return nil, err
	}

	profile, _, err := s.clock.resolve(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.wallets.Balance(ctx, req.CompanyID, req.SupervisorUserID)
	if err != nil {
		return nil, err
	}
	expenses, handed, err := domain.PlanHandover(snapshot, lines)
	if err != nil {
		return nil, planError(err)
	}

	now := s.clock.now()
	batch = &domain.HandoverBatch{
		ID:                    batchID,
		CompanyID:             req.CompanyID,
		SupervisorUserID:      req.SupervisorUserID,
		Status:                domain.TransactionStatusDraft,
		Date:                  req.Date,
		ExpensesTotal:         expenses,
		HandedOverAmount:      handed,
		WalletBalanceSnapshot: snapshot,
		Lines:                 lines,
		CreatedAt:             now.UTC(),
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	var rows []domain.CashTransaction
	if req.Action == domain.SubmitActionApprove {
		if rows, err = s.settle(ctx, dbTx, batch, profile.Slug, now); err != nil {
			return nil, err
		}
	}
	if err := s.handovers.Create(ctx, dbTx, batch); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create handover batch: %w", err))
	}
	if err := s.createRows(ctx, dbTx, rows); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	actions := []domain.AuditAction{domain.AuditActionHandoverCreated}
	if batch.Status == domain.TransactionStatusApproved {
		actions = append(actions, domain.AuditActionHandoverApproved)
	}
	s.recordHandover(ctx, batch, rows, req.SupervisorUserID, actions...)
	return batch, nil
}

// ApproveHandover settles a draft batch against its stored snapshot.
func (s *HandoverServiceImpl) ApproveHandover(ctx context.Context, companyID, actorUserID, batchID uuid.UUID) (batch *domain.HandoverBatch, err error) {
	ctx, finish := s.instr.start(ctx, "handover.approve",
		companyAttr(companyID), attribute.String("batch_id", batchID.String()))
	defer func() { finish(err) }()

	profile, _, err := s.clock.resolve(ctx, companyID)
	if err != nil {
		return nil, err
	}
	now := s.clock.now()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	batch, err = s.handovers.GetByIDForUpdate(ctx, dbTx, companyID, batchID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock handover batch: %w", err))
	}
	if batch == nil {
		return nil, apperror.ErrNotFound("handover batch")
	}
	if batch.Status != domain.TransactionStatusDraft {
		return nil, apperror.ErrNotDraft()
	}

	rows, err := s.settle(ctx, dbTx, batch, profile.Slug, now)
	if err != nil {
		return nil, err
	}
	if err := s.handovers.MarkApproved(ctx, dbTx, batch.ID, *batch.ApprovedAt); err != nil {
		return nil, apperror.InternalError(err)
	}
	if err := s.createRows(ctx, dbTx, rows); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.recordHandover(ctx, batch, rows, actorUserID, domain.AuditActionHandoverApproved)
	return batch, nil
}

// GetHandover returns a batch with its expense lines.
func (s *HandoverServiceImpl) GetHandover(ctx context.Context, companyID, batchID uuid.UUID) (*domain.HandoverBatch, error) {
	batch, err := s.handovers.GetByID(ctx, companyID, batchID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if batch == nil {
		return nil, apperror.ErrNotFound("handover batch")
	}
	return batch, nil
}

// settle locks the wallet, checks it still holds the snapshot, and debits
// expenses then handed-over cash. It returns the ledger rows to persist once
// the batch row exists.
func (s *HandoverServiceImpl) settle(ctx context.Context, tx pgx.Tx, batch *domain.HandoverBatch, slug string, now time.Time) ([]domain.CashTransaction, error) {
	wallet, err := s.wallets.Lock(ctx, tx, batch.CompanyID, batch.SupervisorUserID)
	if err != nil {
		return nil, err
	}
	if !wallet.Balance.Equal(batch.WalletBalanceSnapshot) || !batch.IsBalanced() {
		s.log.Warn().
			Str("batch_id", batch.ID.String()).
			Str("snapshot", batch.WalletBalanceSnapshot.String()).
			Str("balance", wallet.Balance.String()).
			Msg("handover snapshot no longer matches wallet")
		return nil, apperror.ErrHandoverMismatch()
	}

	rows := make([]domain.CashTransaction, 0, 2)
	debit := func(txType domain.TransactionType, amount decimal.Decimal, description string) error {
		rule, _ := domain.RuleFor(txType)
		updated, err := s.wallets.ApplyDelta(ctx, tx, batch.CompanyID, batch.SupervisorUserID, rule.Delta(amount))
		if err != nil {
			return err
		}
		receiptNo, err := s.sequences.NextNumber(ctx, tx, batch.CompanyID, slug, rule.Series)
		if err != nil {
			return apperror.InternalError(err)
		}
		batchID := batch.ID
		row := domain.CashTransaction{
			ID:               uuid.New(),
			CompanyID:        batch.CompanyID,
			SupervisorUserID: batch.SupervisorUserID,
			Type:             txType,
			Status:           domain.TransactionStatusDraft,
			Amount:           amount,
			Date:             batch.Date,
			BatchID:          &batchID,
			Description:      &description,
			CreatedAt:        now.UTC(),
		}
		row.MarkApproved(receiptNo, updated.Balance, now.UTC())
		rows = append(rows, row)
		return nil
	}

	if err := debit(domain.TransactionTypeHandoverExpense, batch.ExpensesTotal, "handover expenses"); err != nil {
		return nil, err
	}
	if batch.HandedOverAmount.IsPositive() {
		if err := debit(domain.TransactionTypeHandoverSettlement, batch.HandedOverAmount, "handover settlement"); err != nil {
			return nil, err
		}
	}

	approvedAt := now.UTC()
	batch.Status = domain.TransactionStatusApproved
	batch.ApprovedAt = &approvedAt
	return rows, nil
}

func (s *HandoverServiceImpl) createRows(ctx context.Context, tx pgx.Tx, rows []domain.CashTransaction) error {
	for i := range rows {
		if err := s.txRepo.Create(ctx, tx, &rows[i]); err != nil {
			return apperror.InternalError(fmt.Errorf("create handover row: %w", err))
		}
	}
	return nil
}

func (s *HandoverServiceImpl) buildLines(ctx context.Context, companyID, batchID uuid.UUID, inputs []ports.ExpenseLineInput) ([]domain.HandoverExpenseLine, error) {
	if len(inputs) == 0 {
		return nil, apperror.Validation(domain.ErrNoExpenseLines.Error())
	}
	lines := make([]domain.HandoverExpenseLine, 0, len(inputs))
	for _, in := range inputs {
		line := domain.HandoverExpenseLine{
			ID:        uuid.New(),
			BatchID:   batchID,
			Statement: strings.TrimSpace(in.Statement),
			Amount:    in.Amount,
		}
		if err := domain.ValidateExpenseLine(line); err != nil {
			return nil, planError(err)
		}
		if ref := normalizeRef(in.ReceiptRef); ref != nil {
			canonical, err := verifyFileRef(ctx, s.files, companyID, *ref)
			if err != nil {
				return nil, err
			}
			line.ReceiptRef = canonical
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *HandoverServiceImpl) recordHandover(ctx context.Context, batch *domain.HandoverBatch, rows []domain.CashTransaction, actor uuid.UUID, actions ...domain.AuditAction) {
	for _, row := range rows {
		s.instr.metrics.IncrementMovement(string(row.Type), string(row.Status))
		s.instr.metrics.AddApprovedAmount(string(row.Type), row.Amount.InexactFloat64())
	}

	for _, action := range actions {
		event := domain.NewAuditEvent(batch.CompanyID, actor, action, "handover_batch", batch.ID.String(), s.clock.now().UTC())
		event.Details = auditDetails(map[string]any{
			"status":             batch.Status,
			"expenses_total":     batch.ExpensesTotal.String(),
			"handed_over_amount": batch.HandedOverAmount.String(),
			"snapshot":           batch.WalletBalanceSnapshot.String(),
			"lines":              len(batch.Lines),
		})
		recordAudit(ctx, s.audit, event)
	}

	s.log.Info().
		Str("batch_id", batch.ID.String()).
		Str("company_id", batch.CompanyID.String()).
		Str("status", string(batch.Status)).
		Str("expenses_total", batch.ExpensesTotal.String()).
		Str("handed_over_amount", batch.HandedOverAmount.String()).
		Msg("handover saved")
}

// planError maps handover planning failures to their error codes.
func planError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNonPositiveAmount):
		return apperror.ErrInvalidAmount()
	case errors.Is(err, domain.ErrStatementTooShort):
		return apperror.ErrStatementTooShort()
	case errors.Is(err, domain.ErrExpensesExceedFunds):
		return apperror.ErrInsufficientBalance()
	case errors.Is(err, domain.ErrNoExpenseLines):
		return apperror.Validation(err.Error())
	}
	return apperror.InternalError(err)
}
