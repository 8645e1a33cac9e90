package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func TestExportService_EmployeesWorkbook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExposure := mocks.NewMockExposureService(ctrl)
	svc := NewExportService(mockExposure, newTestLogger())

	companyID := uuid.New()
	r := domain.CurrentMonth(ledgerNow, ledgerNow.Location())
	alice := domain.EmployeeExposure{
		EmploymentID: uuid.New(),
		Name:         "Alice",
		Operations:   domain.OperationsSums{CashCollected: dec("120.50"), TotalRevenue: dec("300"), DeductionAmount: dec("5")},
		Ledger:       domain.LedgerSums{Receipts: dec("100"), Loans: dec("40"), Deductions: dec("2")},
	}
	mockExposure.EXPECT().ListEmployees(gomock.Any(), companyID, r, domain.StatusFilterAll).
		Return([]domain.EmployeeExposure{alice}, nil)

	data, err := svc.EmployeesWorkbook(context.Background(), companyID, r, domain.StatusFilterAll)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(employeesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Employee", rows[0][0])
	assert.Equal(t, []string{
		"Alice", alice.EmploymentID.String(), "300", "120.5", "13.5", "40", "7", "UNBALANCED",
	}, rows[1])
}

func TestExportService_PropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExposure := mocks.NewMockExposureService(ctrl)
	svc := NewExportService(mockExposure, newTestLogger())

	mockExposure.EXPECT().ListEmployees(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom"))

	_, err := svc.EmployeesWorkbook(context.Background(), uuid.New(), domain.DateRange{}, domain.StatusFilterAll)
	assert.Error(t, err)
}
