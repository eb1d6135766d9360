// Package store defines the capability contract for the coordination data
// layer. Callers only ever see this interface; backends live in sqlstore
// (Postgres or sqlite through sqlx) and memstore (in-memory fake for tests).
package store

import (
	"context"

	"disasterresponse-backend-go/internal/models"
)

// DisasterNotFound is returned by GetDisasterIDByType when no report of the
// requested type exists.
const DisasterNotFound = -1

// Store is the full operation set against the coordination database.
//
// Error contract, preserved from the deployed system:
//   - boolean operations return true iff at least one row was written; any
//     failure (constraint violation, lost connectivity) is logged by the
//     backend and reported as false, never as an error value;
//   - point lookups return nil when the row is absent;
//   - list operations return an empty, non-nil slice when nothing matches or
//     the query fails.
type Store interface {
	// Users.
	AddUser(ctx context.Context, user models.User) bool
	GetUserByID(ctx context.Context, userID int) *models.User
	GetUserByUsername(ctx context.Context, username string) *models.User
	GetAllUsers(ctx context.Context) []models.User
	GetAllRoles(ctx context.Context) []string
	UpdateUser(ctx context.Context, user models.User) bool
	// DeleteUser is a documented no-op kept from the deployed system: it
	// returns true without removing anything.
	DeleteUser(ctx context.Context, userID int) bool

	// Resources.
	AddResource(ctx context.Context, resource models.Resource) bool
	GetResourceByID(ctx context.Context, resourceID int) *models.Resource
	GetAllResources(ctx context.Context) []models.Resource
	GetResourcesByType(ctx context.Context, resourceType string) []models.Resource
	UpdateResource(ctx context.Context, resource models.Resource) bool
	// DeleteResource is a documented no-op, like DeleteUser.
	DeleteResource(ctx context.Context, resourceID int) bool

	// Disaster reports.
	AddDisasterReport(ctx context.Context, report models.DisasterReport) bool
	GetDisasterReportByID(ctx context.Context, reportID int) *models.DisasterReport
	GetDisasterIDByType(ctx context.Context, disasterType string) int
	GetAllDisasterReports(ctx context.Context) []models.DisasterReport
	GetActiveDisasterReports(ctx context.Context) []models.DisasterReport
	UpdateDisasterReport(ctx context.Context, report models.DisasterReport) bool
	// ResolveDisasterReport moves a report Active -> Resolved. It is the only
	// status transition; resolved reports never reactivate.
	ResolveDisasterReport(ctx context.Context, reportID int) bool
	DeleteDisasterReport(ctx context.Context, reportID int) bool

	// Agencies.
	AddAgency(ctx context.Context, agency models.Agency) bool
	GetAllAgencies(ctx context.Context) []models.Agency

	// Resource allocation ledger. Allocations never touch the catalog
	// quantity of the referenced resource.
	AllocateResourceToDisaster(ctx context.Context, resourceID, disasterID, quantity int) bool
	GetResourcesAllocatedToDisaster(ctx context.Context, disasterID int) []models.Resource

	// Agency assignments, append-only.
	AssignAgencyToDisaster(ctx context.Context, agencyID, disasterID int) bool
	GetAgenciesAssignedToDisaster(ctx context.Context, disasterID int) []models.AgencyAssignment
	GetAllAgencyAssignments(ctx context.Context) []models.AgencyAssignment

	Close() error
}
