// Package memory is a process-local storage driver. It honours the same
// locking contract as the PostgreSQL driver: row locks taken inside a Tx are
// held until Commit or Rollback, and Rollback undoes every write made through
// the Tx. Reads outside a Tx see uncommitted writes.
package memory

import (
	"context"
	"errors"
	"sync"

	"cash-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrForeignTx is returned when a repository receives a pgx.Tx it did not create.
var ErrForeignTx = errors.New("memory: transaction was not started by this store")

type walletKey struct {
	companyID uuid.UUID
	userID    uuid.UUID
}

type counterKey struct {
	companyID uuid.UUID
	series    domain.SeriesCode
}

type fileKey struct {
	companyID uuid.UUID
	ref       string
}

// Store holds every table of the memory driver.
type Store struct {
	mu    sync.Mutex
	locks *lockTable

	wallets      map[walletKey]*domain.Wallet
	counters     map[counterKey]int64
	transactions map[uuid.UUID]*domain.CashTransaction
	batches      map[uuid.UUID]*domain.HandoverBatch
	audit        []domain.AuditEvent

	companies   map[uuid.UUID]domain.CompanyProfile
	employments map[uuid.UUID]domain.Employment
	files       map[fileKey]struct{}
	operations  []domain.DailyOperation
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		locks:        newLockTable(),
		wallets:      make(map[walletKey]*domain.Wallet),
		counters:     make(map[counterKey]int64),
		transactions: make(map[uuid.UUID]*domain.CashTransaction),
		batches:      make(map[uuid.UUID]*domain.HandoverBatch),
		companies:    make(map[uuid.UUID]domain.CompanyProfile),
		employments:  make(map[uuid.UUID]domain.Employment),
		files:        make(map[fileKey]struct{}),
	}
}

// Begin implements ports.DBTransactor.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Tx{store: s, held: make(map[string]struct{})}, nil
}

// Tx is the memory driver's transaction. Only Commit and Rollback are
// meaningful; the embedded pgx.Tx is nil and SQL methods must not be called.
// Like pgx.Tx it is not safe for concurrent use.
type Tx struct {
	pgx.Tx

	store *Store
	held  map[string]struct{}
	order []string
	undo  []func()
	done  bool
}

// Commit keeps every write and releases held locks.
func (t *Tx) Commit(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.undo = nil
	t.releaseAll()
	return nil
}

// Rollback reverts every write in reverse order and releases held locks.
func (t *Tx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true

	t.store.mu.Lock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.store.mu.Unlock()
	t.undo = nil
	t.releaseAll()
	return nil
}

// lock acquires key for the remainder of the transaction. Re-entrant.
func (t *Tx) lock(ctx context.Context, key string) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	if _, ok := t.held[key]; ok {
		return nil
	}
	if err := t.store.locks.acquire(ctx, key); err != nil {
		return err
	}
	t.held[key] = struct{}{}
	t.order = append(t.order, key)
	return nil
}

// record registers an undo step. Callers hold store.mu.
func (t *Tx) record(fn func()) {
	t.undo = append(t.undo, fn)
}

func (t *Tx) releaseAll() {
	for i := len(t.order) - 1; i >= 0; i-- {
		t.store.locks.release(t.order[i])
	}
	t.held = map[string]struct{}{}
	t.order = nil
}

func asTx(tx pgx.Tx) (*Tx, error) {
	mt, ok := tx.(*Tx)
	if !ok || mt == nil {
		return nil, ErrForeignTx
	}
	return mt, nil
}

// lockTable hands out one mutex per key. Waiters honour context cancellation.
type lockTable struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func newLockTable() *lockTable {
	return &lockTable{slots: make(map[string]chan struct{})}
}

func (l *lockTable) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[key] = ch
	}
	return ch
}

func (l *lockTable) acquire(ctx context.Context, key string) error {
	select {
	case l.slot(key) <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *lockTable) release(key string) {
	<-l.slot(key)
}

func walletLockKey(companyID, userID uuid.UUID) string {
	return "wallet:" + companyID.String() + ":" + userID.String()
}

func counterLockKey(companyID uuid.UUID, series domain.SeriesCode) string {
	return "counter:" + companyID.String() + ":" + string(series)
}

func rowLockKey(table string, id uuid.UUID) string {
	return table + ":" + id.String()
}
