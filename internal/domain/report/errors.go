package report

import "errors"

var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrExportFailed     = errors.New("failed to build report workbook")
)
