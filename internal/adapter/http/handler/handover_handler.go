package handler

import (
	"time"

	"cash-wallet-ledger/internal/adapter/http/dto"
	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"
	"cash-wallet-ledger/pkg/apperror"
	"cash-wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// HandoverHandler handles wallet handover endpoints.
type HandoverHandler struct {
	handoverSvc ports.HandoverService
}

// NewHandoverHandler creates a new HandoverHandler.
func NewHandoverHandler(handoverSvc ports.HandoverService) *HandoverHandler {
	return &HandoverHandler{handoverSvc: handoverSvc}
}

// Create handles POST /api/v1/cash/handovers. The caller hands over their own wallet.
func (h *HandoverHandler) Create(c *gin.Context) {
	companyID, userID, ok := actor(c)
	if !ok {
		return
	}

	var req dto.HandoverRequest
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
	lines := make([]ports.ExpenseLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		amount, err := parseMoney(l.Amount)
		if err != nil {
			response.Error(c, err)
			return
		}
		lines = append(lines, ports.ExpenseLineInput{
			Statement:  l.Statement,
			Amount:     amount,
			ReceiptRef: l.ReceiptRef,
		})
	}

	batch, err := h.handoverSvc.Handover(c.Request.Context(), ports.HandoverRequest{
		CompanyID:        companyID,
		SupervisorUserID: userID,
		Date:             req.Date,
		Lines:            lines,
		Action:           action,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toHandoverResponse(batch))
}

// Approve handles POST /api/v1/cash/handovers/:id/approve.
func (h *HandoverHandler) Approve(c *gin.Context) {
	companyID, userID, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	batch, err := h.handoverSvc.ApproveHandover(c.Request.Context(), companyID, userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toHandoverResponse(batch))
}

// Get handles GET /api/v1/cash/handovers/:id.
func (h *HandoverHandler) Get(c *gin.Context) {
	companyID, _, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	batch, err := h.handoverSvc.GetHandover(c.Request.Context(), companyID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toHandoverResponse(batch))
}

func toHandoverResponse(b *domain.HandoverBatch) dto.HandoverResponse {
	resp := dto.HandoverResponse{
		ID:                    b.ID.String(),
		SupervisorUserID:      b.SupervisorUserID.String(),
		Status:                string(b.Status),
		Date:                  b.Date.Format(time.RFC3339),
		ExpensesTotal:         b.ExpensesTotal.String(),
		HandedOverAmount:      b.HandedOverAmount.String(),
		WalletBalanceSnapshot: b.WalletBalanceSnapshot.String(),
		Lines:                 make([]dto.ExpenseLineResponse, 0, len(b.Lines)),
		CreatedAt:             b.CreatedAt.Format(time.RFC3339),
	}
	for _, l := range b.Lines {
		resp.Lines = append(resp.Lines, dto.ExpenseLineResponse{
			ID:         l.ID.String(),
			Statement:  l.Statement,
			Amount:     l.Amount.String(),
			ReceiptRef: l.ReceiptRef,
		})
	}
	if b.ApprovedAt != nil {
		s := b.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &s
	}
	return resp
}
