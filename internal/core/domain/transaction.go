package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of cash movement.
type TransactionType string

const (
	TransactionTypeReceipt            TransactionType = "RECEIPT"
	TransactionTypeLoan               TransactionType = "LOAN"
	TransactionTypeDeduction          TransactionType = "DEDUCTION"
	TransactionTypeHandoverExpense    TransactionType = "HANDOVER_EXPENSE"
	TransactionTypeHandoverSettlement TransactionType = "HANDOVER_SETTLEMENT"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeReceipt, TransactionTypeLoan, TransactionTypeDeduction,
		TransactionTypeHandoverExpense, TransactionTypeHandoverSettlement:
		return true
	}
	return false
}

// TransactionStatus represents the lifecycle state of a ledger row.
type TransactionStatus string

const (
	TransactionStatusDraft    TransactionStatus = "DRAFT"
	TransactionStatusApproved TransactionStatus = "APPROVED"
)

// SubmitAction is what the caller asks the ledger to do with a record.
type SubmitAction string

const (
	SubmitActionDraft   SubmitAction = "draft"
	SubmitActionApprove SubmitAction = "approve"
)

// ParseSubmitAction validates a caller-supplied action.
func ParseSubmitAction(s string) (SubmitAction, bool) {
	switch SubmitAction(s) {
	case SubmitActionDraft:
		return SubmitActionDraft, true
	case SubmitActionApprove:
		return SubmitActionApprove, true
	}
	return "", false
}

// TargetStatus is the status a record ends up in after the action.
func (a SubmitAction) TargetStatus() TransactionStatus {
	if a == SubmitActionApprove {
		return TransactionStatusApproved
	}
	return TransactionStatusDraft
}

// CashTransaction is a single cash movement. Once APPROVED it never changes.
type CashTransaction struct {
	ID               uuid.UUID         `json:"id"`
	CompanyID        uuid.UUID         `json:"company_id"`
	EmploymentID     *uuid.UUID        `json:"employment_record_id,omitempty"`
	SupervisorUserID uuid.UUID         `json:"supervisor_user_id"`
	OverrideUserID   *uuid.UUID        `json:"override_user_id,omitempty"` // disbursing supervisor when not the actor
	Type             TransactionType   `json:"type"`
	Status           TransactionStatus `json:"status"`
	Amount           decimal.Decimal   `json:"amount"`
	Date             time.Time         `json:"date"`
	ReceiptNo        *string           `json:"receipt_no,omitempty"`
	BalanceAfter     *decimal.Decimal  `json:"balance_after,omitempty"`
	BatchID          *uuid.UUID        `json:"batch_id,omitempty"`
	Description      *string           `json:"description,omitempty"`
	AttachmentRef    *string           `json:"attachment_ref,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	ApprovedAt       *time.Time        `json:"approved_at,omitempty"`
}

// IsDraft reports whether the row can still transition.
func (t *CashTransaction) IsDraft() bool {
	return t.Status == TransactionStatusDraft
}

// WalletOwner is the supervisor whose custody the row moves.
func (t *CashTransaction) WalletOwner() uuid.UUID {
	if t.OverrideUserID != nil {
		return *t.OverrideUserID
	}
	return t.SupervisorUserID
}

// MarkApproved stamps the approval outcome onto a draft.
func (t *CashTransaction) MarkApproved(receiptNo string, balanceAfter decimal.Decimal, at time.Time) {
	t.Status = TransactionStatusApproved
	t.ReceiptNo = &receiptNo
	t.BalanceAfter = &balanceAfter
	t.ApprovedAt = &at
}

// ApprovalRule is what approving a row of a given type does to custody.
type ApprovalRule struct {
	Series SeriesCode
	Credit bool // true adds the amount to the wallet, false removes it
}

// Delta is the signed wallet change for amount under this rule.
func (r ApprovalRule) Delta(amount decimal.Decimal) decimal.Decimal {
	if r.Credit {
		return amount
	}
	return amount.Neg()
}

var approvalRules = map[TransactionType]ApprovalRule{
	TransactionTypeReceipt:            {Series: SeriesReceipt, Credit: true},
	TransactionTypeDeduction:          {Series: SeriesDeduction, Credit: true},
	TransactionTypeLoan:               {Series: SeriesLoan, Credit: false},
	TransactionTypeHandoverExpense:    {Series: SeriesHandover, Credit: false},
	TransactionTypeHandoverSettlement: {Series: SeriesHandover, Credit: false},
}

// RuleFor returns the approval rule for a transaction type.
func RuleFor(t TransactionType) (ApprovalRule, bool) {
	r, ok := approvalRules[t]
	return r, ok
}
