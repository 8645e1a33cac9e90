package handler

import (
	"time"

	"cash-wallet-ledger/internal/adapter/http/dto"
	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"
	"cash-wallet-ledger/pkg/apperror"
	"cash-wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerHandler handles receipts, loans, deductions and ledger queries.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// CreateReceipt handles POST /api/v1/cash/receipts.
func (h *LedgerHandler) CreateReceipt(c *gin.Context) {
	companyID, userID, ok := actor(c)
	if !ok {
		return
	}

	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	employmentID, amount, action, err := parseMovement(req.EmploymentID, req.Amount, req.Action)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.ledgerSvc.CreateReceipt(c.Request.Context(), ports.CreateReceiptRequest{
		CompanyID:     companyID,
		ActorUserID:   userID,
		EmploymentID:  employmentID,
		Amount:        amount,
		Date:          req.Date,
		AttachmentRef: req.AttachmentRef,
		Description:   req.Description,
		Action:        action,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(result))
}

// CreateLoan handles POST /api/v1/cash/loans.
func (h *LedgerHandler) CreateLoan(c *gin.Context) {
	companyID, userID, ok := actor(c)
	if !ok {
		return
	}

	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	employmentID, amount, action, err := parseMovement(req.EmploymentID, req.Amount, req.Action)
	if err != nil {
		response.Error(c, err)
		return
	}
	var override *uuid.UUID
	if req.SupervisorUserID != nil {
		id, err := uuid.Parse(*req.SupervisorUserID)
		if err != nil {
			response.Error(c, apperror.Validation("invalid supervisor_user_id"))
			return
		}
		override = &id
	}

	result, err := h.ledgerSvc.CreateLoan(c.Request.Context(), ports.CreateLoanRequest{
		CompanyID:          companyID,
		ActorUserID:        userID,
		EmploymentID:       employmentID,
		Amount:             amount,
		Date:               req.Date,
		Reason:             req.Reason,
		SupervisorOverride: override,
		Action:             action,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(result))
}

// CreateDeduction handles POST /api/v1/cash/deductions.
func (h *LedgerHandler) CreateDeduction(c *gin.Context) {
	companyID, userID, ok := actor(c)
	if !ok {
		return
	}

	var req dto.CreateDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	employmentID, amount, action, err := parseMovement(req.EmploymentID, req.Amount, req.Action)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.ledgerSvc.CreateDeduction(c.Request.Context(), ports.CreateDeductionRequest{
		CompanyID:    companyID,
		ActorUserID:  userID,
		EmploymentID: employmentID,
		Amount:       amount,
		Date:         req.Date,
		Reason:       req.Reason,
		Action:       action,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(result))
}

// UpdateStatus handles PATCH /api/v1/cash/transactions/:id/status.
func (h *LedgerHandler) UpdateStatus(c *gin.Context) {
	companyID, userID, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	action, err := parseAction(req.Action)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.ledgerSvc.UpdateTransactionStatus(c.Request.Context(), ports.UpdateStatusRequest{
		CompanyID:     companyID,
		ActorUserID:   userID,
		TransactionID: id,
		Action:        action,
		AttachmentRef: req.AttachmentRef,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTransactionResponse(result))
}

// GetTransaction handles GET /api/v1/cash/transactions/:id.
func (h *LedgerHandler) GetTransaction(c *gin.Context) {
	companyID, _, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	result, err := h.ledgerSvc.GetTransaction(c.Request.Context(), companyID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTransactionResponse(result))
}

// ListTransactions handles GET /api/v1/cash/transactions.
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	companyID, _, ok := actor(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	params := ports.TransactionListParams{
		CompanyID: companyID,
		Page:      page,
		PageSize:  pageSize,
	}

	if s := c.Query("status"); s != "" {
		status := domain.TransactionStatus(s)
		if status != domain.TransactionStatusDraft && status != domain.TransactionStatusApproved {
			response.Error(c, apperror.Validation("invalid status"))
			return
		}
		params.Status = &status
	}
	if t := c.Query("type"); t != "" {
		txType := domain.TransactionType(t)
		if !txType.IsValid() {
			response.Error(c, apperror.Validation("invalid type"))
			return
		}
		params.Type = &txType
	}
	if v := c.Query("employment_record_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.Error(c, apperror.Validation("invalid employment_record_id"))
			return
		}
		params.EmploymentID = &id
	}
	if v := c.Query("batch_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.Error(c, apperror.Validation("invalid batch_id"))
			return
		}
		params.BatchID = &id
	}
	if c.Query("from") != "" || c.Query("to") != "" {
		r, err := parseRange(c)
		if err != nil {
			response.Error(c, err)
			return
		}
		params.Range = &r
	}

	txns, total, err := h.ledgerSvc.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, toTransactionResponse(&txns[i]))
	}
	response.Page(c, items, page, pageSize, total)
}

func parseMovement(employmentRef, amountStr, actionStr string) (employmentID uuid.UUID, amount decimal.Decimal, action domain.SubmitAction, err error) {
	employmentID, err = uuid.Parse(employmentRef)
	if err != nil {
		return uuid.Nil, decimal.Zero, "", apperror.Validation("invalid employment_record_id")
	}
	if amount, err = parseMoney(amountStr); err != nil {
		return uuid.Nil, decimal.Zero, "", err
	}
	if action, err = parseAction(actionStr); err != nil {
		return uuid.Nil, decimal.Zero, "", err
	}
	return employmentID, amount, action, nil
}

// toTransactionResponse converts domain.CashTransaction to DTO.
func toTransactionResponse(tx *domain.CashTransaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:               tx.ID.String(),
		Type:             string(tx.Type),
		Status:           string(tx.Status),
		SupervisorUserID: tx.SupervisorUserID.String(),
		Amount:           tx.Amount.String(),
		Date:             tx.Date.Format(time.RFC3339),
		ReceiptNo:        tx.ReceiptNo,
		Description:      tx.Description,
		AttachmentRef:    tx.AttachmentRef,
		CreatedAt:        tx.CreatedAt.Format(time.RFC3339),
	}
	resp.EmploymentID = optionalID(tx.EmploymentID)
	resp.OverrideUserID = optionalID(tx.OverrideUserID)
	resp.BatchID = optionalID(tx.BatchID)
	if tx.BalanceAfter != nil {
		s := tx.BalanceAfter.String()
		resp.BalanceAfter = &s
	}
	if tx.ApprovedAt != nil {
		s := tx.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &s
	}
	return resp
}

func optionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
