package services

import (
	"context"
	"log"

	"disasterresponse-backend-go/internal/models"
	"disasterresponse-backend-go/internal/store"
)

// AllocateResourceToDisaster records a quantity of a resource committed to a
// disaster. The allocation is a ledger entry: the catalog quantity on the
// resource row is never decremented here. Remaining stock is derived, see
// RemainingQuantity.
func AllocateResourceToDisaster(ctx context.Context, st store.Store, resourceID, disasterID, quantity int) bool {
	if quantity <= 0 {
		log.Printf("allocate: rejected non-positive quantity %d", quantity)
		return false
	}
	if st.GetResourceByID(ctx, resourceID) == nil {
		log.Printf("allocate: unknown resource %d", resourceID)
		return false
	}
	if st.GetDisasterReportByID(ctx, disasterID) == nil {
		log.Printf("allocate: unknown disaster %d", disasterID)
		return false
	}
	return st.AllocateResourceToDisaster(ctx, resourceID, disasterID, quantity)
}

// AssignAgencyToDisaster appends an assignment event. There is no
// duplicate check: assigning the same agency to the same disaster twice
// yields two independent rows.
func AssignAgencyToDisaster(ctx context.Context, st store.Store, agencyID, disasterID int) bool {
	if !agencyExists(ctx, st, agencyID) {
		log.Printf("assign: unknown agency %d", agencyID)
		return false
	}
	if st.GetDisasterReportByID(ctx, disasterID) == nil {
		log.Printf("assign: unknown disaster %d", disasterID)
		return false
	}
	return st.AssignAgencyToDisaster(ctx, agencyID, disasterID)
}

func agencyExists(ctx context.Context, st store.Store, agencyID int) bool {
	for _, agency := range st.GetAllAgencies(ctx) {
		if agency.ID == agencyID {
			return true
		}
	}
	return false
}

// RemainingQuantity computes the derived on-hand figure for a resource:
// catalog quantity minus everything allocated so far. Returns 0 for an
// unknown resource.
func RemainingQuantity(ctx context.Context, st store.Store, resourceID int) int {
	resource := st.GetResourceByID(ctx, resourceID)
	if resource == nil {
		return 0
	}
	remaining := resource.Quantity
	for _, report := range st.GetAllDisasterReports(ctx) {
		for _, allocated := range st.GetResourcesAllocatedToDisaster(ctx, report.ReportID) {
			if allocated.ResourceID == resourceID {
				remaining -= allocated.Quantity
			}
		}
	}
	return remaining
}

// ResolveDisasterReport closes out an active disaster. Resolved reports stay
// resolved; the store refuses any other transition.
func ResolveDisasterReport(ctx context.Context, st store.Store, reportID int) bool {
	return st.ResolveDisasterReport(ctx, reportID)
}

// ReportDisaster validates and files a new disaster report. Severity runs on
// the 1..5 reporting scale; the report is stamped with the current time and
// starts out Active.
func ReportDisaster(ctx context.Context, st store.Store, report models.DisasterReport) bool {
	if report.DisasterType == "" || report.Location == "" {
		log.Printf("report disaster: missing type or location")
		return false
	}
	if report.Severity < 1 || report.Severity > 5 {
		log.Printf("report disaster: severity %d out of range", report.Severity)
		return false
	}
	if report.TimeStamp.IsZero() {
		report.TimeStamp = nowUTC()
	}
	report.Status = models.DisasterActive
	return st.AddDisasterReport(ctx, report)
}
