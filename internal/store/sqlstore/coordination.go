package sqlstore

import (
	"context"
	"log"

	"disasterresponse-backend-go/internal/models"
)

func (s *Store) AddAgency(ctx context.Context, agency models.Agency) bool {
	return s.exec(ctx, "add agency", `
INSERT INTO agencies (name, type) VALUES (?, ?)
`, agency.Name, agency.Type)
}

func (s *Store) GetAllAgencies(ctx context.Context) []models.Agency {
	agencies := []models.Agency{}
	if err := s.db.SelectContext(ctx, &agencies, `SELECT id, name, type FROM agencies`); err != nil {
		log.Printf("get all agencies: %v", err)
		return []models.Agency{}
	}
	return agencies
}

// AllocateResourceToDisaster appends a ledger row. The catalog quantity on
// the resource row is left untouched; remaining stock is a derived figure.
func (s *Store) AllocateResourceToDisaster(ctx context.Context, resourceID, disasterID, quantity int) bool {
	return s.exec(ctx, "allocate resource to disaster", `
INSERT INTO resource_allocations ("resourceID", "disasterID", quantity) VALUES (?, ?, ?)
`, resourceID, disasterID, quantity)
}

// GetResourcesAllocatedToDisaster returns one Resource view per allocation
// row; the quantity on each view is the allocated quantity, not the catalog
// quantity.
func (s *Store) GetResourcesAllocatedToDisaster(ctx context.Context, disasterID int) []models.Resource {
	resources := []models.Resource{}
	err := s.db.SelectContext(ctx, &resources, s.db.Rebind(`
SELECT r."resourceID", r.type, ra.quantity, r.status
FROM resources r
JOIN resource_allocations ra ON r."resourceID" = ra."resourceID"
WHERE ra."disasterID" = ?
`), disasterID)
	if err != nil {
		log.Printf("get resources allocated to disaster: %v", err)
		return []models.Resource{}
	}
	return resources
}

// AssignAgencyToDisaster appends an assignment row; assignmentDate and
// status come from the column defaults. Assigning the same agency twice to
// the same disaster produces two independent rows.
func (s *Store) AssignAgencyToDisaster(ctx context.Context, agencyID, disasterID int) bool {
	return s.exec(ctx, "assign agency to disaster", `
INSERT INTO agency_assignments ("agencyID", "disasterID") VALUES (?, ?)
`, agencyID, disasterID)
}

const assignmentColumns = `
aa."assignmentID", aa."agencyID", a.name AS "agencyName", aa."disasterID",
aa."assignmentDate", aa.status, dr."disasterType"`

func (s *Store) GetAgenciesAssignedToDisaster(ctx context.Context, disasterID int) []models.AgencyAssignment {
	assignments := []models.AgencyAssignment{}
	err := s.db.SelectContext(ctx, &assignments, s.db.Rebind(`
SELECT `+assignmentColumns+`
FROM agency_assignments aa
JOIN agencies a ON aa."agencyID" = a.id
JOIN disaster_reports dr ON aa."disasterID" = dr."reportID"
WHERE aa."disasterID" = ?
`), disasterID)
	if err != nil {
		log.Printf("get agencies assigned to disaster: %v", err)
		return []models.AgencyAssignment{}
	}
	return assignments
}

func (s *Store) GetAllAgencyAssignments(ctx context.Context) []models.AgencyAssignment {
	assignments := []models.AgencyAssignment{}
	err := s.db.SelectContext(ctx, &assignments, `
SELECT `+assignmentColumns+`
FROM agency_assignments aa
JOIN agencies a ON aa."agencyID" = a.id
JOIN disaster_reports dr ON aa."disasterID" = dr."reportID"
`)
	if err != nil {
		log.Printf("get all agency assignments: %v", err)
		return []models.AgencyAssignment{}
	}
	return assignments
}
