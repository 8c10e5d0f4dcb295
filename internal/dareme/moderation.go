package dareme

import (
	"fmt"
	"slices"
	"strings"

	"dareme/internal/database/sqlc"
)

// Report statuses. Reports start pending and move to exactly one of the
// terminal states.
const (
	ReportPending   = "pending"
	ReportResolved  = "resolved"
	ReportDismissed = "dismissed"
)

// ReportableTypes are the content types a report can point at.
var ReportableTypes = []string{"post", "comment", "user", "story", "message", "submission"}

// Report files a pending moderation report.
func (s *Service) Report(reporterID int64, contentType string, contentID int64, reason string) (int64, error) {
	if !slices.Contains(ReportableTypes, contentType) {
		return 0, fmt.Errorf("%w: cannot report content type %q", ErrInvalidArgument, contentType)
	}
	if strings.TrimSpace(reason) == "" {
		return 0, fmt.Errorf("%w: report reason is required", ErrInvalidArgument)
	}

	report, err := s.database.CreateReport(sqlc.InsertReportParams{
		ReporterID:  reporterID,
		ContentType: contentType,
		ContentID:   contentID,
		Reason:      reason,
		Status:      ReportPending,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("filing report: %w", err)
	}

	s.logger.Info("report filed", "report_id", report.ID, "content_type", contentType, "content_id", contentID)
	return report.ID, nil
}

// ResolveReport closes a pending report as resolved or dismissed.
func (s *Service) ResolveReport(reportID int64, status string) error {
	if status != ReportResolved && status != ReportDismissed {
		return fmt.Errorf("%w: report status %q", ErrInvalidArgument, status)
	}

	if err := s.database.ResolveReport(reportID, status, s.now()); err != nil {
		return fmt.Errorf("resolving report %d: %w", reportID, err)
	}

	s.logger.Info("report closed", "report_id", reportID, "status", status)
	return nil
}

// ListReports returns reports in the given status, oldest first.
func (s *Service) ListReports(status string) ([]*sqlc.Report, error) {
	reports, err := s.database.ListReportsByStatus(status)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	return reports, nil
}
