package report

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrReportExists   = errors.New("report for today already exists")
	ErrReportNotFound = errors.New("report not found")
)
