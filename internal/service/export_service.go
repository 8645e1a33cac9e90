package service

import (
	"context"
	"fmt"

	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"
	"cash-wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const employeesSheet = "Employees"

var employeesHeader = []any{
	"Employee", "Employment ID", "Total Revenue", "Cash Collected",
	"Cash Not Collected", "Total Loans", "Total Deductions", "Status",
}

// ExportServiceImpl implements ports.ExportService.
type ExportServiceImpl struct {
	exposure ports.ExposureService
	log      zerolog.Logger
}

// NewExportService creates a new ExportServiceImpl.
func NewExportService(exposure ports.ExposureService, log zerolog.Logger) *ExportServiceImpl {
	return &ExportServiceImpl{exposure: exposure, log: log}
}

// EmployeesWorkbook renders the settlement listing as an XLSX workbook.
// Amounts are written as decimal strings so no precision is lost.
func (s *ExportServiceImpl) EmployeesWorkbook(ctx context.Context, companyID uuid.UUID, r domain.DateRange, filter domain.StatusFilter) ([]byte, error) {
	list, err := s.exposure.ListEmployees(ctx, companyID, r, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", employeesSheet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("rename sheet: %w", err))
	}
	if err := f.SetSheetRow(employeesSheet, "A1", &employeesHeader); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("write header: %w", err))
	}

	for i, e := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		row := []any{
			e.Name,
			e.EmploymentID.String(),
			e.Operations.TotalRevenue.String(),
			e.Operations.CashCollected.String(),
			e.NotCollected().String(),
			e.Ledger.Loans.String(),
			e.TotalDeductions().String(),
			string(e.Status()),
		}
		if err := f.SetSheetRow(employeesSheet, cell, &row); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("write row %d: %w", i+2, err))
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("render workbook: %w", err))
	}

	s.log.Debug().
		Str("company_id", companyID.String()).
		Int("rows", len(list)).
		Msg("employees workbook rendered")
	return buf.Bytes(), nil
}
