package handler

import (
	"cash-wallet-ledger/internal/adapter/http/dto"
	"cash-wallet-ledger/internal/core/ports"
	"cash-wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles custody balance queries.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetBalance handles GET /api/v1/cash/wallet.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	companyID, userID, ok := actor(c)
	if !ok {
		return
	}

	balance, err := h.walletSvc.Balance(c.Request.Context(), companyID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletBalanceResponse{Balance: balance.String()})
}
