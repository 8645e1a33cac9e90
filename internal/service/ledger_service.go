package service

import (
	"context"
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

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// LedgerDeps groups the collaborators of LedgerServiceImpl.
type LedgerDeps struct {
	Transactions    ports.CashTransactionRepository
	Wallets         *WalletStore
	Sequences       *SequenceAllocator
	Locker          ports.RowLocker
	Exposure        ports.ExposureService
	Employments     ports.EmploymentDirectory
	Files           ports.FileStore
	Companies       ports.CompanyDirectory
	Transactor      ports.DBTransactor
	Audit           ports.AuditSink
	Metrics         *metrics.Metrics
	DefaultLocation *time.Location
	Log             zerolog.Logger
}

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	txRepo      ports.CashTransactionRepository
	wallets     *WalletStore
	sequences   *SequenceAllocator
	locker      ports.RowLocker
	exposure    ports.ExposureService
	employments ports.EmploymentDirectory
	files       ports.FileStore
	clock       *companyClock
	transactor  ports.DBTransactor
	audit       ports.AuditSink
	instr       instrumentation
	log         zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(d LedgerDeps) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		txRepo:      d.Transactions,
		wallets:     d.Wallets,
		sequences:   d.Sequences,
		locker:      d.Locker,
		exposure:    d.Exposure,
		employments: d.Employments,
		files:       d.Files,
		clock:       newCompanyClock(d.Companies, d.DefaultLocation),
		transactor:  d.Transactor,
		audit:       d.Audit,
		instr:       instrumentation{metrics: d.Metrics},
		log:         d.Log,
	}
}

// movement is the common shape of the three create operations.
type movement struct {
	companyID     uuid.UUID
	actorUserID   uuid.UUID
	employmentID  uuid.UUID
	txType        domain.TransactionType
	amount        decimal.Decimal
	date          time.Time
	attachmentRef *string
	description   *string
	override      *uuid.UUID
	action        domain.SubmitAction
}

// CreateReceipt records cash an employee handed to the supervisor.
func (s *LedgerServiceImpl) CreateReceipt(ctx context.Context, req ports.CreateReceiptRequest) (txn *domain.CashTransaction, err error) {
	ctx, finish := s.instr.start(ctx, "ledger.create_receipt", companyAttr(req.CompanyID))
	defer func() { finish(err) }()

	return s.create(ctx, movement{
		companyID:     req.CompanyID,
		actorUserID:   req.ActorUserID,
		employmentID:  req.EmploymentID,
		txType:        domain.TransactionTypeReceipt,
		amount:        req.Amount,
		date:          req.Date,
		attachmentRef: req.AttachmentRef,
		description:   req.Description,
		action:        req.Action,
	})
}

// CreateLoan records cash paid to an employee out of a supervisor's custody.
func (s *LedgerServiceImpl) CreateLoan(ctx context.Context, req ports.CreateLoanRequest) (txn *domain.CashTransaction, err error) {
	ctx, finish := s.instr.start(ctx, "ledger.create_loan", companyAttr(req.CompanyID))
	defer func() { finish(err) }()

	override := req.SupervisorOverride
	if override != nil && *override == req.ActorUserID {
		override = nil
	}
	return s.create(ctx, movement{
		companyID:    req.CompanyID,
		actorUserID:  req.ActorUserID,
		employmentID: req.EmploymentID,
		txType:       domain.TransactionTypeLoan,
		amount:       req.Amount,
		date:         req.Date,
		description:  req.Reason,
		override:     override,
		action:       req.Action,
	})
}

// CreateDeduction records a deduction credited to the supervisor's custody.
func (s *LedgerServiceImpl) CreateDeduction(ctx context.Context, req ports.CreateDeductionRequest) (txn *domain.CashTransaction, err error) {
	ctx, finish := s.instr.start(ctx, "ledger.create_deduction", companyAttr(req.CompanyID))
	defer func() { finish(err) }()

	return s.create(ctx, movement{
		companyID:    req.CompanyID,
		actorUserID:  req.ActorUserID,
		employmentID: req.EmploymentID,
		txType:       domain.TransactionTypeDeduction,
		amount:       req.Amount,
		date:         req.Date,
		description:  req.Reason,
		action:       req.Action,
	})
}

func (s *LedgerServiceImpl) create(ctx context.Context, m movement) (*domain.CashTransaction, error) {
	if _, ok := domain.ParseSubmitAction(string(m.action)); !ok {
		return nil, apperror.Validation("submit action must be draft or approve")
	}
	if !m.amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	profile, loc, err := s.clock.resolve(ctx, m.companyID)
	if err != nil {
		return nil, err
	}
	now := s.clock.now()
	if !domain.InCurrentMonth(m.date, now, loc) {
		return nil, apperror.ErrDateOutsideMonth()
	}

	if err := s.requireActiveEmployment(ctx, m.companyID, m.employmentID); err != nil {
		return nil, err
	}

	approving := m.action == domain.SubmitActionApprove
	attachment := normalizeRef(m.attachmentRef)
	if approving && m.txType == domain.TransactionTypeReceipt && attachment == nil {
		return nil, apperror.ErrAttachmentRequired()
	}
	if attachment != nil {
		if attachment, err = s.verifyFile(ctx, m.companyID, *attachment); err != nil {
			return nil, err
		}
	}

	employmentID := m.employmentID
	txn := &domain.CashTransaction{
		ID:               uuid.New(),
		CompanyID:        m.companyID,
		EmploymentID:     &employmentID,
		SupervisorUserID: m.actorUserID,
		OverrideUserID:   m.override,
		Type:             m.txType,
		Status:           domain.TransactionStatusDraft,
		Amount:           m.amount,
		Date:             m.date,
		Description:      m.description,
		AttachmentRef:    attachment,
		CreatedAt:        now.UTC(),
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if approving {
		if err := s.approve(ctx, dbTx, txn, profile, loc, now); err != nil {
			return nil, err
		}
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create cash transaction: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	actions := []domain.AuditAction{domain.AuditActionTransactionCreated}
	if approving {
		actions = append(actions, domain.AuditActionTransactionApproved)
	}
	s.recordMovement(ctx, txn, m.actorUserID, actions...)
	return txn, nil
}

// UpdateTransactionStatus re-saves a draft or approves it.
func (s *LedgerServiceImpl) UpdateTransactionStatus(ctx context.Context, req ports.UpdateStatusRequest) (txn *domain.CashTransaction, err error) {
	ctx, finish := s.instr.start(ctx, "ledger.update_status",
		companyAttr(req.CompanyID), attribute.String("transaction_id", req.TransactionID.String()))
	defer func() { finish(err) }()

	if _, ok := domain.ParseSubmitAction(string(req.Action)); !ok {
		return nil, apperror.Validation("submit action must be draft or approve")
	}

	profile, loc, err := s.clock.resolve(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	now := s.clock.now()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	txn, err = s.txRepo.GetByIDForUpdate(ctx, dbTx, req.CompanyID, req.TransactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock cash transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("transaction")
	}
	if !txn.IsDraft() {
		return nil, apperror.ErrNotDraft()
	}

	replaced := false
	if ref := normalizeRef(req.AttachmentRef); ref != nil {
		canonical, err := s.verifyFile(ctx, req.CompanyID, *ref)
		if err != nil {
			return nil, err
		}
		if err := s.txRepo.UpdateAttachment(ctx, dbTx, txn.ID, canonical); err != nil {
			return nil, apperror.InternalError(err)
		}
		txn.AttachmentRef = canonical
		replaced = true
	}

	action := domain.AuditActionTransactionUpdated
	if req.Action == domain.SubmitActionApprove {
		if txn.EmploymentID != nil {
			if err := s.requireActiveEmployment(ctx, req.CompanyID, *txn.EmploymentID); err != nil {
				return nil, err
			}
		}
		if txn.Type == domain.TransactionTypeReceipt {
			if normalizeRef(txn.AttachmentRef) == nil {
				return nil, apperror.ErrAttachmentRequired()
			}
			if !replaced {
				if _, err := s.verifyFile(ctx, req.CompanyID, *txn.AttachmentRef); err != nil {
					return nil, err
				}
			}
		}

		if err := s.approve(ctx, dbTx, txn, profile, loc, now); err != nil {
			return nil, err
		}
		if err := s.txRepo.MarkApproved(ctx, dbTx, txn.ID, *txn.ReceiptNo, *txn.BalanceAfter, *txn.ApprovedAt); err != nil {
			return nil, apperror.InternalError(err)
		}
		action = domain.AuditActionTransactionApproved
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.recordMovement(ctx, txn, req.ActorUserID, action)
	return txn, nil
}

// approve applies the row's wallet effect and stamps number and balance_after.
// Locks are taken employment first, then wallet, then the sequence counter.
func (s *LedgerServiceImpl) approve(ctx context.Context, tx pgx.Tx, txn *domain.CashTransaction, profile *domain.CompanyProfile, loc *time.Location, now time.Time) error {
	rule, ok := domain.RuleFor(txn.Type)
	if !ok {
		return apperror.InternalError(fmt.Errorf("no approval rule for %s", txn.Type))
	}

	if txn.Type == domain.TransactionTypeReceipt && txn.EmploymentID != nil {
		if err := s.locker.LockEmployment(ctx, tx, *txn.EmploymentID); err != nil {
			return apperror.InternalError(err)
		}
		due, err := s.exposure.DueForEmployee(ctx, txn.CompanyID, *txn.EmploymentID, domain.MonthToDate(now, loc))
		if err != nil {
			return asAppError(err, "due for employee")
		}
		if txn.Amount.GreaterThan(due) {
			return apperror.ErrExceedsOutstandingDue()
		}
	}

	wallet, err := s.wallets.ApplyDelta(ctx, tx, txn.CompanyID, txn.WalletOwner(), rule.Delta(txn.Amount))
	if err != nil {
		return err
	}

	var receiptNo string
	if txn.ReceiptNo != nil && *txn.ReceiptNo != "" {
		receiptNo = *txn.ReceiptNo
	} else {
		receiptNo, err = s.sequences.NextNumber(ctx, tx, txn.CompanyID, profile.Slug, rule.Series)
		if err != nil {
			return apperror.InternalError(err)
		}
	}

	txn.MarkApproved(receiptNo, wallet.Balance, now.UTC())
	return nil
}

// GetTransaction returns a single ledger row.
func (s *LedgerServiceImpl) GetTransaction(ctx context.Context, companyID, id uuid.UUID) (*domain.CashTransaction, error) {
	txn, err := s.txRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("transaction")
	}
	return txn, nil
}

// ListTransactions returns one page of ledger rows, newest first.
func (s *LedgerServiceImpl) ListTransactions(ctx context.Context, params ports.TransactionListParams) ([]domain.CashTransaction, int64, error) {
	if params.Range != nil {
		if err := validateRange(*params.Range); err != nil {
			return nil, 0, err
		}
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	txns, total, err := s.txRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return txns, total, nil
}

func (s *LedgerServiceImpl) requireActiveEmployment(ctx context.Context, companyID, employmentID uuid.UUID) error {
	employment, err := s.employments.GetActive(ctx, companyID, employmentID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get employment: %w", err))
	}
	if employment == nil {
		return apperror.ErrNotFound("employment")
	}
	return nil
}

func (s *LedgerServiceImpl) verifyFile(ctx context.Context, companyID uuid.UUID, ref string) (*string, error) {
	return verifyFileRef(ctx, s.files, companyID, ref)
}

func (s *LedgerServiceImpl) recordMovement(ctx context.Context, txn *domain.CashTransaction, actor uuid.UUID, actions ...domain.AuditAction) {
	s.instr.metrics.IncrementMovement(string(txn.Type), string(txn.Status))
	if txn.Status == domain.TransactionStatusApproved {
		s.instr.metrics.AddApprovedAmount(string(txn.Type), txn.Amount.InexactFloat64())
	}

	for _, action := range actions {
		event := domain.NewAuditEvent(txn.CompanyID, actor, action, "cash_transaction", txn.ID.String(), s.clock.now().UTC())
		event.Details = auditDetails(map[string]any{
			"type":       txn.Type,
			"status":     txn.Status,
			"amount":     txn.Amount.String(),
			"receipt_no": txn.ReceiptNo,
		})
		recordAudit(ctx, s.audit, event)
	}

	s.log.Info().
		Str("transaction_id", txn.ID.String()).
		Str("company_id", txn.CompanyID.String()).
		Str("type", string(txn.Type)).
		Str("status", string(txn.Status)).
		Str("amount", txn.Amount.String()).
		Msg("cash transaction saved")
}

// verifyFileRef resolves ref through the file store, returning NF_001 when it is missing.
func verifyFileRef(ctx context.Context, files ports.FileStore, companyID uuid.UUID, ref string) (*string, error) {
	canonical, err := files.Verify(ctx, companyID, ref)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("verify file: %w", err))
	}
	if canonical == "" {
		return nil, apperror.ErrNotFound("file")
	}
	return &canonical, nil
}

func normalizeRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*ref)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
