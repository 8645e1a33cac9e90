package handler

import (
	"fmt"
	"time"

	"cash-wallet-ledger/internal/adapter/http/dto"
	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"
	"cash-wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EmployeeHandler handles the settlement listing, employee breakdown and dashboard stats.
type EmployeeHandler struct {
	exposureSvc ports.ExposureService
	exportSvc   ports.ExportService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(exposureSvc ports.ExposureService, exportSvc ports.ExportService) *EmployeeHandler {
	return &EmployeeHandler{exposureSvc: exposureSvc, exportSvc: exportSvc}
}

// List handles GET /api/v1/cash/employees.
func (h *EmployeeHandler) List(c *gin.Context) {
	companyID, _, ok := actor(c)
	if !ok {
		return
	}

	r, err := parseRange(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	filter, err := parseStatusFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	list, err := h.exposureSvc.ListEmployees(c.Request.Context(), companyID, r, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, toEmployeeResponse(e))
	}
	response.OK(c, items)
}

// Export handles GET /api/v1/cash/employees/export.
func (h *EmployeeHandler) Export(c *gin.Context) {
	companyID, _, ok := actor(c)
	if !ok {
		return
	}

	r, err := parseRange(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	filter, err := parseStatusFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	body, err := h.exportSvc.EmployeesWorkbook(c.Request.Context(), companyID, r, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("employees-%s.xlsx", time.Now().UTC().Format("20060102"))
	response.Attachment(c, filename, xlsxContentType, body)
}

// Detail handles GET /api/v1/cash/employees/:id.
func (h *EmployeeHandler) Detail(c *gin.Context) {
	companyID, _, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	r, err := parseRange(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	detail, err := h.exposureSvc.EmployeeDetail(c.Request.Context(), companyID, id, r)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.EmployeeDetailResponse{
		Employee:     toEmployeeResponse(detail.Exposure),
		Transactions: make([]dto.TransactionResponse, 0, len(detail.Transactions)),
	}
	for i := range detail.Transactions {
		resp.Transactions = append(resp.Transactions, toTransactionResponse(&detail.Transactions[i]))
	}
	response.OK(c, resp)
}

// Stats handles GET /api/v1/cash/stats.
func (h *EmployeeHandler) Stats(c *gin.Context) {
	companyID, userID, ok := actor(c)
	if !ok {
		return
	}

	r, err := parseRange(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	stats, err := h.exposureSvc.StatsForSupervisor(c.Request.Context(), companyID, userID, r)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StatsResponse{
		MyWallet:         stats.MyWallet.String(),
		CashNotCollected: stats.CashNotCollected.String(),
		TotalLoans:       stats.TotalLoans.String(),
		CashCollected:    stats.CashCollected.String(),
		From:             stats.Range.From.Format(time.RFC3339),
		To:               stats.Range.To.Format(time.RFC3339),
	})
}

func toEmployeeResponse(e domain.EmployeeExposure) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		EmploymentID:    e.EmploymentID.String(),
		UserID:          optionalID(e.UserID),
		Name:            e.Name,
		OrdersCount:     e.Operations.OrdersCount,
		TotalRevenue:    e.Operations.TotalRevenue.String(),
		CashCollected:   e.Operations.CashCollected.String(),
		Receipts:        e.Ledger.Receipts.String(),
		Loans:           e.Ledger.Loans.String(),
		TotalDeductions: e.TotalDeductions().String(),
		Remaining:       e.Remaining().String(),
		NotCollected:    e.NotCollected().String(),
		Status:          string(e.Status()),
	}
}
