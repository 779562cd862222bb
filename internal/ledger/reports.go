package ledger

import (
	"context"
	"fmt"
	"strings"

	"bomul-market/internal/events"
	"bomul-market/internal/marketerrors"
	"bomul-market/internal/models"
	"bomul-market/utils"
)

// AddReport files a PENDING report against a product or user
func (l *Ledger) AddReport(ctx context.Context, report models.Report) (models.Report, error) {
	if report.TargetType != models.ReportTargetProduct && report.TargetType != models.ReportTargetUser {
		return models.Report{}, fmt.Errorf("ledger: %w - unknown target type %q", marketerrors.ErrInvalidReport, report.TargetType)
	}
	if report.TargetID == "" || report.ReporterID == "" {
		return models.Report{}, fmt.Errorf("ledger: %w - target and reporter are required", marketerrors.ErrInvalidReport)
	}
	if strings.TrimSpace(report.Reason) == "" {
		return models.Report{}, fmt.Errorf("ledger: %w - reason is required", marketerrors.ErrInvalidReport)
	}

	if report.ID == "" {
		report.ID = utils.GenerateID()
	}
	report.Status = models.ReportStatusPending
	report.Timestamp = l.now().UTC()

	if err := l.repo.InsertReport(report); err != nil {
		return models.Report{}, fmt.Errorf("ledger: add report: %w", err)
	}
	utils.Info("ledger: report filed", map[string]any{"report_id": report.ID, "target_id": report.TargetID, "target_type": report.TargetType})

	l.Publish(ctx, events.ReportsChanged())
	return report, nil
}

// UpdateReportStatus records an administrative decision on a report
func (l *Ledger) UpdateReportStatus(ctx context.Context, id string, status models.ReportStatus) (models.Report, error) {
	switch status {
	case models.ReportStatusPending, models.ReportStatusResolved, models.ReportStatusDismissed:
	default:
		return models.Report{}, fmt.Errorf("ledger: %w - unknown status %q", marketerrors.ErrInvalidReport, status)
	}

	report, err := l.repo.UpdateReport(id, func(r *models.Report) error {
		r.Status = status
		return nil
	})
	if err != nil {
		return models.Report{}, fmt.Errorf("ledger: %w", err)
	}

	l.Publish(ctx, events.ReportsChanged())
	return report, nil
}

func (l *Ledger) GetReports() []models.Report {
	return l.repo.ListReports()
}

// OrphanedReports returns product reports whose target listing was deleted
func (l *Ledger) OrphanedReports() []models.Report {
	orphaned := []models.Report{}
	for _, r := range l.repo.ListReports() {
		if r.TargetType != models.ReportTargetProduct {
			continue
		}
		if _, err := l.repo.GetProduct(r.TargetID); err != nil {
			orphaned = append(orphaned, r)
		}
	}
	return orphaned
}
