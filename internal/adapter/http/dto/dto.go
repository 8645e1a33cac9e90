package dto

import "time"

// CreateReceiptRequest is the request body for a cash receipt from an employee.
type CreateReceiptRequest struct {
	EmploymentID  string    `json:"employment_record_id" binding:"required,uuid"`
	Amount        string    `json:"amount" binding:"required,money"`
	Date          time.Time `json:"date" binding:"required"`
	AttachmentRef *string   `json:"attachment_ref,omitempty" binding:"omitempty,file_ref"`
	Description   *string   `json:"description,omitempty" binding:"omitempty,max=500"`
	Action        string    `json:"action" binding:"required,oneof=draft approve"`
}

// CreateLoanRequest is the request body for a loan paid out of custody.
type CreateLoanRequest struct {
	EmploymentID     string    `json:"employment_record_id" binding:"required,uuid"`
	Amount           string    `json:"amount" binding:"required,money"`
	Date             time.Time `json:"date" binding:"required"`
	Reason           *string   `json:"reason,omitempty" binding:"omitempty,max=500"`
	SupervisorUserID *string   `json:"supervisor_user_id,omitempty" binding:"omitempty,uuid"`
	Action           string    `json:"action" binding:"required,oneof=draft approve"`
}

// CreateDeductionRequest is the request body for a deduction credited to custody.
type CreateDeductionRequest struct {
	EmploymentID string    `json:"employment_record_id" binding:"required,uuid"`
	Amount       string    `json:"amount" binding:"required,money"`
	Date         time.Time `json:"date" binding:"required"`
	Reason       *string   `json:"reason,omitempty" binding:"omitempty,max=500"`
	Action       string    `json:"action" binding:"required,oneof=draft approve"`
}

// UpdateStatusRequest is the request body for moving a draft forward.
type UpdateStatusRequest struct {
	Action        string  `json:"action" binding:"required,oneof=draft approve"`
	AttachmentRef *string `json:"attachment_ref,omitempty" binding:"omitempty,file_ref"`
}

// ExpenseLineRequest is one expense in a handover.
type ExpenseLineRequest struct {
	Statement  string  `json:"statement" binding:"required,max=255"`
	Amount     string  `json:"amount" binding:"required,money"`
	ReceiptRef *string `json:"receipt_ref,omitempty" binding:"omitempty,file_ref"`
}

// HandoverRequest is the request body for closing out the caller's wallet.
type HandoverRequest struct {
	Date   time.Time            `json:"date" binding:"required"`
	Lines  []ExpenseLineRequest `json:"lines" binding:"dive"`
	Action string               `json:"action" binding:"required,oneof=draft approve"`
}

// TransactionResponse is the response body for a ledger row.
type TransactionResponse struct {
	ID               string  `json:"id"`
	Type             string  `json:"type"`
	Status           string  `json:"status"`
	EmploymentID     *string `json:"employment_record_id,omitempty"`
	SupervisorUserID string  `json:"supervisor_user_id"`
	OverrideUserID   *string `json:"override_user_id,omitempty"`
	Amount           string  `json:"amount"`
	Date             string  `json:"date"`
	ReceiptNo        *string `json:"receipt_no,omitempty"`
	BalanceAfter     *string `json:"balance_after,omitempty"`
	BatchID          *string `json:"batch_id,omitempty"`
	Description      *string `json:"description,omitempty"`
	AttachmentRef    *string `json:"attachment_ref,omitempty"`
	CreatedAt        string  `json:"created_at"`
	ApprovedAt       *string `json:"approved_at,omitempty"`
}

// ExpenseLineResponse is one stored handover expense.
type ExpenseLineResponse struct {
	ID         string  `json:"id"`
	Statement  string  `json:"statement"`
	Amount     string  `json:"amount"`
	ReceiptRef *string `json:"receipt_ref,omitempty"`
}

// HandoverResponse is the response body for a handover batch.
type HandoverResponse struct {
	ID                    string                `json:"id"`
	SupervisorUserID      string                `json:"supervisor_user_id"`
	Status                string                `json:"status"`
	Date                  string                `json:"date"`
	ExpensesTotal         string                `json:"expenses_total"`
	HandedOverAmount      string                `json:"handed_over_amount"`
	WalletBalanceSnapshot string                `json:"wallet_balance_snapshot"`
	Lines                 []ExpenseLineResponse `json:"lines"`
	CreatedAt             string                `json:"created_at"`
	ApprovedAt            *string               `json:"approved_at,omitempty"`
}

// EmployeeResponse is one line of the settlement listing.
type EmployeeResponse struct {
	EmploymentID    string  `json:"employment_record_id"`
	UserID          *string `json:"user_id,omitempty"`
	Name            string  `json:"name"`
	OrdersCount     int64   `json:"orders_count"`
	TotalRevenue    string  `json:"total_revenue"`
	CashCollected   string  `json:"cash_collected"`
	Receipts        string  `json:"receipts"`
	Loans           string  `json:"loans"`
	TotalDeductions string  `json:"total_deductions"`
	Remaining       string  `json:"remaining"`
	NotCollected    string  `json:"not_collected"`
	Status          string  `json:"status"`
}

// EmployeeDetailResponse is one employee's breakdown with ledger rows.
type EmployeeDetailResponse struct {
	Employee     EmployeeResponse      `json:"employee"`
	Transactions []TransactionResponse `json:"transactions"`
}

// StatsResponse is the supervisor dashboard summary.
type StatsResponse struct {
	MyWallet         string `json:"my_wallet"`
	CashNotCollected string `json:"cash_not_collected"`
	TotalLoans       string `json:"total_loans"`
	CashCollected    string `json:"cash_collected"`
	From             string `json:"from"`
	To               string `json:"to"`
}

// WalletBalanceResponse is the response for the caller's custody balance.
type WalletBalanceResponse struct {
	Balance string `json:"balance"`
}
