package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"
	"cash-wallet-ledger/pkg/apperror"
	"cash-wallet-ledger/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// detailPageSize bounds the ledger rows returned with an employee breakdown.
const detailPageSize = 1000

// ExposureServiceImpl implements ports.ExposureService.
// It reads operations and the approved ledger side by side and takes no locks.
type ExposureServiceImpl struct {
	operations  ports.OperationsAggregate
	txRepo      ports.CashTransactionRepository
	employments ports.EmploymentDirectory
	wallets     ports.WalletService
	clock       *companyClock
	instr       instrumentation
	log         zerolog.Logger
}

// NewExposureService creates a new ExposureServiceImpl.
func NewExposureService(
	operations ports.OperationsAggregate,
	txRepo ports.CashTransactionRepository,
	employments ports.EmploymentDirectory,
	wallets ports.WalletService,
	companies ports.CompanyDirectory,
	defaultLocation *time.Location,
	m *metrics.Metrics,
	log zerolog.Logger,
) *ExposureServiceImpl {
	return &ExposureServiceImpl{
		operations:  operations,
		txRepo:      txRepo,
		employments: employments,
		wallets:     wallets,
		clock:       newCompanyClock(companies, defaultLocation),
		instr:       instrumentation{metrics: m},
		log:         log,
	}
}

// DueForEmployee is what one employee still owes over r. It may be negative.
func (s *ExposureServiceImpl) DueForEmployee(ctx context.Context, companyID, employmentID uuid.UUID, r domain.DateRange) (due decimal.Decimal, err error) {
	ctx, finish := s.instr.start(ctx, "exposure.due_for_employee",
		companyAttr(companyID), attribute.String("employment_id", employmentID.String()))
	defer func() { finish(err) }()

	if err := validateRange(r); err != nil {
		return decimal.Zero, err
	}
	exposure, err := s.employeeSums(ctx, companyID, employmentID, r)
	if err != nil {
		return decimal.Zero, err
	}
	return exposure.Remaining(), nil
}

// NotCollectedTotal sums every employee's remainder after flooring each at zero.
func (s *ExposureServiceImpl) NotCollectedTotal(ctx context.Context, companyID uuid.UUID, r domain.DateRange) (total decimal.Decimal, err error) {
	ctx, finish := s.instr.start(ctx, "exposure.not_collected_total", companyAttr(companyID))
	defer func() { finish(err) }()

	if err := validateRange(r); err != nil {
		return decimal.Zero, err
	}
	ops, ledger, err := s.companySums(ctx, companyID, r)
	if err != nil {
		return decimal.Zero, err
	}
	return notCollected(ops, ledger), nil
}

// ListEmployees returns the settlement listing: every active employee plus
// anyone with activity in r, sorted by name.
func (s *ExposureServiceImpl) ListEmployees(ctx context.Context, companyID uuid.UUID, r domain.DateRange, filter domain.StatusFilter) (list []domain.EmployeeExposure, err error) {
	ctx, finish := s.instr.start(ctx, "exposure.list_employees", companyAttr(companyID))
	defer func() { finish(err) }()

	if err := validateRange(r); err != nil {
		return nil, err
	}

	var (
		active []domain.Employment
		ops    map[uuid.UUID]domain.OperationsSums
		ledger map[uuid.UUID]domain.LedgerSums
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		active, err = s.employments.ListActive(gctx, companyID)
		if err != nil {
			return fmt.Errorf("list active employments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ops, err = s.operations.SumsByEmployee(gctx, companyID, r)
		if err != nil {
			return fmt.Errorf("operations sums: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ledger, err = s.txRepo.SumApprovedByEmployee(gctx, companyID, r)
		if err != nil {
			return fmt.Errorf("ledger sums: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, apperror.InternalError(err)
	}

	byID := make(map[uuid.UUID]*domain.EmployeeExposure, len(active))
	for _, e := range active {
		userID := e.UserID
		byID[e.ID] = &domain.EmployeeExposure{EmploymentID: e.ID, UserID: &userID, Name: e.Name}
	}
	for id, sums := range ops {
		entry(byID, id).Operations = sums
	}
	for id, sums := range ledger {
		entry(byID, id).Ledger = sums
	}

	list = make([]domain.EmployeeExposure, 0, len(byID))
	for _, e := range byID {
		if filter.Match(e.Status()) {
			list = append(list, *e)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Name != b.Name {
			// Activity-only rows carry no name and go last.
			if a.Name == "" || b.Name == "" {
				return b.Name == ""
			}
			return a.Name < b.Name
		}
		return a.EmploymentID.String() < b.EmploymentID.String()
	})
	return list, nil
}

// EmployeeDetail returns one employee's breakdown with their ledger rows in r.
func (s *ExposureServiceImpl) EmployeeDetail(ctx context.Context, companyID, employmentID uuid.UUID, r domain.DateRange) (detail *ports.EmployeeDetail, err error) {
	ctx, finish := s.instr.start(ctx, "exposure.employee_detail",
		companyAttr(companyID), attribute.String("employment_id", employmentID.String()))
	defer func() { finish(err) }()

	if err := validateRange(r); err != nil {
		return nil, err
	}

	var (
		employment *domain.Employment
		exposure   domain.EmployeeExposure
		txns       []domain.CashTransaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employment, err = s.employments.GetActive(gctx, companyID, employmentID)
		if err != nil {
			return fmt.Errorf("get employment: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		exposure, err = s.employeeSums(gctx, companyID, employmentID, r)
		return err
	})
	g.Go(func() error {
		var err error
		txns, _, err = s.txRepo.List(gctx, ports.TransactionListParams{
			CompanyID:    companyID,
			EmploymentID: &employmentID,
			Range:        &r,
			Page:         1,
			PageSize:     detailPageSize,
		})
		if err != nil {
			return fmt.Errorf("list employee transactions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, asAppError(err, "employee detail")
	}

	if employment != nil {
		userID := employment.UserID
		exposure.UserID = &userID
		exposure.Name = employment.Name
	} else if len(txns) == 0 && exposure.Operations.OrdersCount == 0 && exposure.Operations.CashCollected.IsZero() {
		return nil, apperror.ErrNotFound("employment")
	}

	return &ports.EmployeeDetail{Exposure: exposure, Transactions: txns}, nil
}

// StatsForSupervisor is the dashboard summary. The range end never runs past
// the current month in the company timezone.
func (s *ExposureServiceImpl) StatsForSupervisor(ctx context.Context, companyID, supervisorUserID uuid.UUID, r domain.DateRange) (stats *domain.SupervisorStats, err error) {
	ctx, finish := s.instr.start(ctx, "exposure.stats_for_supervisor", companyAttr(companyID))
	defer func() { finish(err) }()

	_, loc, err := s.clock.resolve(ctx, companyID)
	if err != nil {
		return nil, err
	}
	r = domain.ClampToMonthEnd(r, s.clock.now(), loc)
	if err := validateRange(r); err != nil {
		return nil, err
	}

	stats = &domain.SupervisorStats{Range: r}
	var (
		ops    map[uuid.UUID]domain.OperationsSums
		ledger map[uuid.UUID]domain.LedgerSums
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.MyWallet, err = s.wallets.Balance(gctx, companyID, supervisorUserID)
		return err
	})
	g.Go(func() error {
		var err error
		ops, err = s.operations.SumsByEmployee(gctx, companyID, r)
		if err != nil {
			return fmt.Errorf("operations sums: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ledger, err = s.txRepo.SumApprovedByEmployee(gctx, companyID, r)
		if err != nil {
			return fmt.Errorf("ledger sums: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, asAppError(err, "supervisor stats")
	}

	stats.CashNotCollected = notCollected(ops, ledger)
	stats.TotalLoans = decimal.Zero
	stats.CashCollected = decimal.Zero
	for _, sums := range ledger {
		stats.TotalLoans = stats.TotalLoans.Add(sums.Loans)
		stats.CashCollected = stats.CashCollected.Add(sums.Receipts)
	}
	return stats, nil
}

func (s *ExposureServiceImpl) employeeSums(ctx context.Context, companyID, employmentID uuid.UUID, r domain.DateRange) (domain.EmployeeExposure, error) {
	exposure := domain.EmployeeExposure{EmploymentID: employmentID}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		exposure.Operations, err = s.operations.Sums(gctx, companyID, &employmentID, r)
		if err != nil {
			return fmt.Errorf("operations sums: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		exposure.Ledger, err = s.txRepo.SumApproved(gctx, companyID, &employmentID, r)
		if err != nil {
			return fmt.Errorf("ledger sums: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return exposure, apperror.InternalError(err)
	}
	return exposure, nil
}

func (s *ExposureServiceImpl) companySums(ctx context.Context, companyID uuid.UUID, r domain.DateRange) (map[uuid.UUID]domain.OperationsSums, map[uuid.UUID]domain.LedgerSums, error) {
	var (
		ops    map[uuid.UUID]domain.OperationsSums
		ledger map[uuid.UUID]domain.LedgerSums
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ops, err = s.operations.SumsByEmployee(gctx, companyID, r)
		if err != nil {
			return fmt.Errorf("operations sums: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ledger, err = s.txRepo.SumApprovedByEmployee(gctx, companyID, r)
		if err != nil {
			return fmt.Errorf("ledger sums: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, apperror.InternalError(err)
	}
	return ops, ledger, nil
}

// notCollected floors each employee present in either source before summing.
func notCollected(ops map[uuid.UUID]domain.OperationsSums, ledger map[uuid.UUID]domain.LedgerSums) decimal.Decimal {
	byID := make(map[uuid.UUID]*domain.EmployeeExposure, len(ops))
	for id, sums := range ops {
		entry(byID, id).Operations = sums
	}
	for id, sums := range ledger {
		entry(byID, id).Ledger = sums
	}
	remainders := make([]decimal.Decimal, 0, len(byID))
	for _, e := range byID {
		remainders = append(remainders, e.Remaining())
	}
	return domain.NotCollectedTotal(remainders)
}

func entry(byID map[uuid.UUID]*domain.EmployeeExposure, id uuid.UUID) *domain.EmployeeExposure {
	e, ok := byID[id]
	if !ok {
		e = &domain.EmployeeExposure{EmploymentID: id}
		byID[id] = e
	}
	return e
}
