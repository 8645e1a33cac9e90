package service

import (
	"context"
	"io"
	"testing"
	"time"

	"cash-wallet-ledger/internal/adapter/storage/memory"
	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"
	"cash-wallet-ledger/pkg/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string {
	return &s
}

// ledgerEnv wires every component on top of the memory storage driver with a fixed clock.
type ledgerEnv struct {
	store     *memory.Store
	dir       *memory.Directory
	txRepo    *memory.TransactionRepo
	batches   *memory.HandoverRepo
	auditRepo *memory.AuditRepo

	wallets  *WalletStore
	exposure *ExposureServiceImpl
	ledger   *LedgerServiceImpl
	handover *HandoverServiceImpl
	audit    *AuditService

	companyID    uuid.UUID
	supervisorID uuid.UUID
	employmentID uuid.UUID
	now          time.Time
}

func newLedgerEnv(t *testing.T, now time.Time) *ledgerEnv {
	t.Helper()

	store := memory.NewStore()
	dir := memory.NewDirectory(store)
	txRepo := memory.NewTransactionRepo(store)
	batches := memory.NewHandoverRepo(store)
	auditRepo := memory.NewAuditRepo(store)
	m := metrics.New(prometheus.NewRegistry())
	log := newTestLogger()

	env := &ledgerEnv{
		store:        store,
		dir:          dir,
		txRepo:       txRepo,
		batches:      batches,
		auditRepo:    auditRepo,
		companyID:    uuid.New(),
		supervisorID: uuid.New(),
		employmentID: uuid.New(),
		now:          now,
	}
	clock := func() time.Time { return env.now }

	dir.AddCompany(domain.CompanyProfile{ID: env.companyID, Slug: "acme", Timezone: "UTC"})
	dir.AddEmployment(domain.Employment{
		ID: env.employmentID, CompanyID: env.companyID, UserID: uuid.New(), Name: "Alice", Active: true,
	})
	dir.AddFile(env.companyID, "receipts/1.jpg")

	env.wallets = NewWalletStore(memory.NewWalletRepo(store), store)
	env.wallets.now = clock
	env.audit = NewAuditService(auditRepo, nil, log)

	env.exposure = NewExposureService(dir, txRepo, dir, env.wallets, dir, time.UTC, m, log)
	env.exposure.clock.now = clock

	sequences := NewSequenceAllocator(memory.NewSequenceRepo(store))
	env.ledger = NewLedgerService(LedgerDeps{
		Transactions:    txRepo,
		Wallets:         env.wallets,
		Sequences:       sequences,
		Locker:          memory.NewLocker(),
		Exposure:        env.exposure,
		Employments:     dir,
		Files:           dir,
		Companies:       dir,
		Transactor:      store,
		Audit:           env.audit,
		Metrics:         m,
		DefaultLocation: time.UTC,
		Log:             log,
	})
	env.ledger.clock.now = clock

	env.handover = NewHandoverService(HandoverDeps{
		Handovers:       batches,
		Transactions:    txRepo,
		Wallets:         env.wallets,
		Sequences:       sequences,
		Files:           dir,
		Companies:       dir,
		Transactor:      store,
		Audit:           env.audit,
		Metrics:         m,
		DefaultLocation: time.UTC,
		Log:             log,
	})
	env.handover.clock.now = clock

	return env
}

// collect records cash the employee collected on day.
func (e *ledgerEnv) collect(employmentID uuid.UUID, day time.Time, cash, deductions string) {
	e.dir.AddOperation(domain.DailyOperation{
		ID:              uuid.New(),
		CompanyID:       e.companyID,
		EmploymentID:    employmentID,
		Date:            day,
		CashCollected:   dec(cash),
		DeductionAmount: dec(deductions),
		TotalRevenue:    dec(cash),
		OrdersCount:     1,
	})
}

func (e *ledgerEnv) receipt(amount string, action domain.SubmitAction) (*domain.CashTransaction, error) {
	return e.ledger.CreateReceipt(context.Background(), e.receiptRequest(amount, action))
}

func (e *ledgerEnv) receiptRequest(amount string, action domain.SubmitAction) ports.CreateReceiptRequest {
	return ports.CreateReceiptRequest{
		CompanyID:     e.companyID,
		ActorUserID:   e.supervisorID,
		EmploymentID:  e.employmentID,
		Amount:        dec(amount),
		Date:          e.now,
		AttachmentRef: strPtr("receipts/1.jpg"),
		Action:        action,
	}
}

// fundWallet credits the supervisor through an approved receipt backed by collected cash.
func (e *ledgerEnv) fundWallet(t *testing.T, amount string) {
	t.Helper()
	e.collect(e.employmentID, e.now, amount, "0")
	_, err := e.receipt(amount, domain.SubmitActionApprove)
	require.NoError(t, err)
}

func (e *ledgerEnv) balance(t *testing.T) decimal.Decimal {
	t.Helper()
	b, err := e.wallets.Balance(context.Background(), e.companyID, e.supervisorID)
	require.NoError(t, err)
	return b
}

func (e *ledgerEnv) month() domain.DateRange {
	return domain.CurrentMonth(e.now, time.UTC)
}
