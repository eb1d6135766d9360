package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"disasterresponse-backend-go/internal/models"
	"disasterresponse-backend-go/internal/store"
)

const reportColumns = `"reportID", "disasterType", location, severity, description, status, "timeStamp"`

func (s *Store) AddDisasterReport(ctx context.Context, report models.DisasterReport) bool {
	return s.exec(ctx, "add disaster report", `
INSERT INTO disaster_reports ("disasterType", location, severity, description, "timeStamp")
VALUES (?, ?, ?, ?, ?)
`, report.DisasterType, report.Location, report.Severity, report.Description, report.TimeStamp)
}

func (s *Store) GetDisasterReportByID(ctx context.Context, reportID int) *models.DisasterReport {
	var report models.DisasterReport
	err := s.db.GetContext(ctx, &report, s.db.Rebind(`
SELECT `+reportColumns+` FROM disaster_reports WHERE "reportID" = ?
`), reportID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("get disaster report by id: %v", err)
		}
		return nil
	}
	return &report
}

func (s *Store) GetDisasterIDByType(ctx context.Context, disasterType string) int {
	var reportID int
	err := s.db.GetContext(ctx, &reportID, s.db.Rebind(`
SELECT "reportID" FROM disaster_reports WHERE "disasterType" = ? LIMIT 1
`), disasterType)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("get disaster id by type: %v", err)
		}
		return store.DisasterNotFound
	}
	return reportID
}

func (s *Store) GetAllDisasterReports(ctx context.Context) []models.DisasterReport {
	reports := []models.DisasterReport{}
	if err := s.db.SelectContext(ctx, &reports, `SELECT `+reportColumns+` FROM disaster_reports`); err != nil {
		log.Printf("get all disaster reports: %v", err)
		return []models.DisasterReport{}
	}
	return reports
}

func (s *Store) GetActiveDisasterReports(ctx context.Context) []models.DisasterReport {
	reports := []models.DisasterReport{}
	err := s.db.SelectContext(ctx, &reports, s.db.Rebind(`
SELECT `+reportColumns+` FROM disaster_reports WHERE status = ?
`), models.DisasterActive)
	if err != nil {
		log.Printf("get active disaster reports: %v", err)
		return []models.DisasterReport{}
	}
	return reports
}

// UpdateDisasterReport rewrites the descriptive fields only. Status is not
// part of the update set; the sole transition goes through
// ResolveDisasterReport.
func (s *Store) UpdateDisasterReport(ctx context.Context, report models.DisasterReport) bool {
	return s.exec(ctx, "update disaster report", `
UPDATE disaster_reports
SET "disasterType" = ?, location = ?, severity = ?, description = ?, "timeStamp" = ?
WHERE "reportID" = ?
`, report.DisasterType, report.Location, report.Severity, report.Description,
		report.TimeStamp, report.ReportID)
}

func (s *Store) ResolveDisasterReport(ctx context.Context, reportID int) bool {
	return s.exec(ctx, "resolve disaster report", `
UPDATE disaster_reports SET status = ? WHERE "reportID" = ? AND status = ?
`, models.DisasterResolved, reportID, models.DisasterActive)
}

func (s *Store) DeleteDisasterReport(ctx context.Context, reportID int) bool {
	return s.exec(ctx, "delete disaster report", `
DELETE FROM disaster_reports WHERE "reportID" = ?
`, reportID)
}
