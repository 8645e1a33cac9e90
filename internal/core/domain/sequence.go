package domain

import (
	"fmt"
	"strings"
)

// SeriesCode identifies an independent document-number counter within a company.
type SeriesCode string

const (
	SeriesReceipt   SeriesCode = "RCPT"
	SeriesLoan      SeriesCode = "LOAN"
	SeriesDeduction SeriesCode = "DED"
	SeriesHandover  SeriesCode = "HND"
)

// DocumentNumberWidth is the zero-padded width of the numeric part.
const DocumentNumberWidth = 6

// FormatDocumentNumber renders "{SLUG_UPPER}-{SERIES}-{n:06}", e.g. ACME-RCPT-000042.
func FormatDocumentNumber(companySlug string, series SeriesCode, n int64) string {
	return fmt.Sprintf("%s-%s-%0*d", strings.ToUpper(strings.TrimSpace(companySlug)), series, DocumentNumberWidth, n)
}
