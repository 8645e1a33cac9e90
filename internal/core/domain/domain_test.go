package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTransactionType_IsValid(t *testing.T) {
	tests := []struct {
		name string
		typ  TransactionType
		want bool
	}{
		{"receipt", TransactionTypeReceipt, true},
		{"loan", TransactionTypeLoan, true},
		{"deduction", TransactionTypeDeduction, true},
		{"handover expense", TransactionTypeHandoverExpense, true},
		{"handover settlement", TransactionTypeHandoverSettlement, true},
		{"unknown", TransactionType("REFUND"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.IsValid())
		})
	}
}

func TestParseSubmitAction(t *testing.T) {
	tests := []struct {
		in     string
		want   SubmitAction
		ok     bool
		status TransactionStatus
	}{
		{"draft", SubmitActionDraft, true, TransactionStatusDraft},
		{"approve", SubmitActionApprove, true, TransactionStatusApproved},
		{"APPROVE", "", false, ""},
		{"", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSubmitAction(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.Equal(t, tt.status, got.TargetStatus())
			}
		})
	}
}

func TestRuleFor(t *testing.T) {
	tests := []struct {
		name   string
		typ    TransactionType
		series SeriesCode
		delta  string
	}{
		{"receipt credits", TransactionTypeReceipt, SeriesReceipt, "100"},
		{"deduction credits", TransactionTypeDeduction, SeriesDeduction, "100"},
		{"loan debits", TransactionTypeLoan, SeriesLoan, "-100"},
		{"handover expense debits", TransactionTypeHandoverExpense, SeriesHandover, "-100"},
		{"handover settlement debits", TransactionTypeHandoverSettlement, SeriesHandover, "-100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := RuleFor(tt.typ)
			require.True(t, ok)
			assert.Equal(t, tt.series, rule.Series)
			assert.True(t, d(tt.delta).Equal(rule.Delta(d("100"))))
		})
	}

	_, ok := RuleFor(TransactionType("REFUND"))
	assert.False(t, ok)
}

func TestCashTransaction_WalletOwner(t *testing.T) {
	actor := uuid.New()
	override := uuid.New()

	tx := &CashTransaction{SupervisorUserID: actor}
	assert.Equal(t, actor, tx.WalletOwner())

	tx.OverrideUserID = &override
	assert.Equal(t, override, tx.WalletOwner())
}

func TestCashTransaction_MarkApproved(t *testing.T) {
	tx := &CashTransaction{Status: TransactionStatusDraft}
	assert.True(t, tx.IsDraft())

	now := time.Now()
	tx.MarkApproved("ACME-RCPT-000001", d("100"), now)

	assert.False(t, tx.IsDraft())
	assert.Equal(t, TransactionStatusApproved, tx.Status)
	require.NotNil(t, tx.ReceiptNo)
	assert.Equal(t, "ACME-RCPT-000001", *tx.ReceiptNo)
	require.NotNil(t, tx.BalanceAfter)
	assert.True(t, d("100").Equal(*tx.BalanceAfter))
	assert.Equal(t, now, *tx.ApprovedAt)
}

func TestFormatDocumentNumber(t *testing.T) {
	tests := []struct {
		slug   string
		series SeriesCode
		n      int64
		want   string
	}{
		{"acme", SeriesReceipt, 42, "ACME-RCPT-000042"},
		{"Delta-Co", SeriesLoan, 1, "DELTA-CO-LOAN-000001"},
		{" x ", SeriesDeduction, 999999, "X-DED-999999"},
		{"big", SeriesHandover, 1234567, "BIG-HND-1234567"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDocumentNumber(tt.slug, tt.series, tt.n))
		})
	}
}

func TestWallet_Project(t *testing.T) {
	w := NewWallet(uuid.New(), uuid.New(), time.Now())
	w.Balance = d("100")

	next, ok := w.Project(d("-100"))
	assert.True(t, ok)
	assert.True(t, next.IsZero())

	next, ok = w.Project(d("-100.01"))
	assert.False(t, ok)
	assert.True(t, d("-0.01").Equal(next))
}

func TestPlanHandover(t *testing.T) {
	line := func(statement, amount string) HandoverExpenseLine {
		return HandoverExpenseLine{Statement: statement, Amount: d(amount)}
	}

	tests := []struct {
		name       string
		snapshot   string
		lines      []HandoverExpenseLine
		expenses   string
		handedOver string
		err        error
	}{
		{"splits balance", "100", []HandoverExpenseLine{line("fuel", "30"), line("meals", "20")}, "50", "50", nil},
		{"exact spend", "50", []HandoverExpenseLine{line("fuel", "50")}, "50", "0", nil},
		{"no lines", "100", nil, "0", "0", ErrNoExpenseLines},
		{"zero amount", "100", []HandoverExpenseLine{line("fuel", "0")}, "0", "0", ErrNonPositiveAmount},
		{"short statement", "100", []HandoverExpenseLine{line(" a ", "10")}, "0", "0", ErrStatementTooShort},
		{"overspent", "10", []HandoverExpenseLine{line("fuel", "30")}, "30", "-20", ErrExpensesExceedFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expenses, handed, err := PlanHandover(d(tt.snapshot), tt.lines)
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, d(tt.expenses).Equal(expenses), "expenses %s", expenses)
			assert.True(t, d(tt.handedOver).Equal(handed), "handed over %s", handed)
		})
	}
}

func TestValidateExpenseLine_MultibyteStatement(t *testing.T) {
	err := ValidateExpenseLine(HandoverExpenseLine{Statement: "وق", Amount: d("1")})
	assert.NoError(t, err)
}

func TestHandoverBatch_IsBalanced(t *testing.T) {
	b := &HandoverBatch{ExpensesTotal: d("50"), HandedOverAmount: d("50"), WalletBalanceSnapshot: d("100")}
	assert.True(t, b.IsBalanced())

	b.HandedOverAmount = d("49.99")
	assert.False(t, b.IsBalanced())
}

func TestRemainingAndStatus(t *testing.T) {
	tests := []struct {
		name         string
		ops          OperationsSums
		ledger       LedgerSums
		remaining    string
		notCollected string
		status       SettlementStatus
	}{
		{
			name:         "owes cash",
			ops:          OperationsSums{CashCollected: d("500"), DeductionAmount: d("0")},
			ledger:       LedgerSums{Receipts: d("200"), Deductions: d("0")},
			remaining:    "300",
			notCollected: "300",
			status:       SettlementUnbalanced,
		},
		{
			name:         "settled exactly",
			ops:          OperationsSums{CashCollected: d("500"), DeductionAmount: d("100")},
			ledger:       LedgerSums{Receipts: d("350"), Deductions: d("50")},
			remaining:    "0",
			notCollected: "0",
			status:       SettlementBalanced,
		},
		{
			name:         "over collected",
			ops:          OperationsSums{CashCollected: d("100")},
			ledger:       LedgerSums{Receipts: d("120")},
			remaining:    "-20",
			notCollected: "0",
			status:       SettlementBalanced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := EmployeeExposure{Operations: tt.ops, Ledger: tt.ledger}
			assert.True(t, d(tt.remaining).Equal(e.Remaining()), "remaining %s", e.Remaining())
			assert.True(t, d(tt.notCollected).Equal(e.NotCollected()))
			assert.Equal(t, tt.status, e.Status())
		})
	}
}

func TestNotCollectedTotal_FloorsEachEmployee(t *testing.T) {
	total := NotCollectedTotal([]decimal.Decimal{d("-20"), d("50")})
	assert.True(t, d("50").Equal(total), "got %s", total)
}

func TestLedgerSums_Include(t *testing.T) {
	var s LedgerSums
	s = s.Include(TransactionTypeReceipt, d("10"))
	s = s.Include(TransactionTypeDeduction, d("2"))
	s = s.Include(TransactionTypeLoan, d("3"))
	s = s.Include(TransactionTypeHandoverExpense, d("99"))

	assert.True(t, d("10").Equal(s.Receipts))
	assert.True(t, d("2").Equal(s.Deductions))
	assert.True(t, d("3").Equal(s.Loans))
}

func TestStatusFilter(t *testing.T) {
	f, ok := ParseStatusFilter("")
	require.True(t, ok)
	assert.Equal(t, StatusFilterAll, f)
	assert.True(t, f.Match(SettlementBalanced))
	assert.True(t, f.Match(SettlementUnbalanced))

	f, ok = ParseStatusFilter("balanced")
	require.True(t, ok)
	assert.True(t, f.Match(SettlementBalanced))
	assert.False(t, f.Match(SettlementUnbalanced))

	f, ok = ParseStatusFilter("unbalanced")
	require.True(t, ok)
	assert.False(t, f.Match(SettlementBalanced))

	_, ok = ParseStatusFilter("pending")
	assert.False(t, ok)
}

func TestDateRange(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	r := DateRange{From: from, To: to}

	require.NoError(t, r.Validate())
	assert.True(t, r.Contains(from))
	assert.True(t, r.Contains(to))
	assert.False(t, r.Contains(to.Add(time.Second)))

	assert.ErrorIs(t, DateRange{From: to, To: from}.Validate(), ErrInvalidRange)
}

func TestInCurrentMonth(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Riyadh") // UTC+3
	require.NoError(t, err)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, loc)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"first instant", time.Date(2026, 3, 1, 0, 0, 0, 0, loc), true},
		{"last second", time.Date(2026, 3, 31, 23, 59, 59, 0, loc), true},
		{"first second of next month", time.Date(2026, 4, 1, 0, 0, 0, 0, loc), false},
		{"past month", time.Date(2026, 2, 28, 12, 0, 0, 0, loc), false},
		{"utc instant already next month locally", time.Date(2026, 3, 31, 21, 0, 0, 0, time.UTC), false},
		{"utc instant still this month locally", time.Date(2026, 2, 28, 21, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InCurrentMonth(tt.date, now, loc))
		})
	}
}

func TestMonthToDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Riyadh")
	require.NoError(t, err)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, loc)

	r := MonthToDate(now, loc)
	assert.True(t, r.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, loc)))
	assert.True(t, r.To.Equal(now))
	assert.True(t, r.Contains(now))
	assert.False(t, r.Contains(now.Add(time.Second)))
}

func TestClampToMonthEnd(t *testing.T) {
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	r := DateRange{
		From: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	clamped := ClampToMonthEnd(r, now, time.UTC)
	assert.Equal(t, r.From, clamped.From)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), clamped.To)

	inside := DateRange{From: r.From, To: time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, inside, ClampToMonthEnd(inside, now, time.UTC))
}

func TestCompanyProfile_Location(t *testing.T) {
	fallback := time.UTC

	assert.Equal(t, fallback, CompanyProfile{}.Location(fallback))
	assert.Equal(t, fallback, CompanyProfile{Timezone: "Nowhere/Else"}.Location(fallback))
	assert.Equal(t, "Europe/Berlin", CompanyProfile{Timezone: "Europe/Berlin"}.Location(fallback).String())
}

func TestBuildIdempotencyKey(t *testing.T) {
	company := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	actor := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	key := BuildIdempotencyKey(company, actor, "/receipts", "abc")
	assert.Equal(t, "11111111-1111-1111-1111-111111111111:22222222-2222-2222-2222-222222222222:/receipts:abc", key)
}
