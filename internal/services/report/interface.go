package report

import (
	"context"
	"io"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/clockin/internal/services/report Service

// Service defines the interface for reporting operations
type Service interface {
	// BuildReport aggregates session history into a report
	BuildReport(ctx context.Context, input *BuildReportInput) (*BuildReportOutput, error)

	// Today builds a report for the current UTC day
	Today(ctx context.Context, input *TodayInput) (*TodayOutput, error)

	// WriteCSV renders a report as CSV
	WriteCSV(w io.Writer, report *Report) error
}
