package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"disasterresponse-backend-go/internal/models"
)

const resourceColumns = `"resourceID", type, quantity, status`

func (s *Store) AddResource(ctx context.Context, resource models.Resource) bool {
	return s.exec(ctx, "add resource", `
INSERT INTO resources (type, quantity, status) VALUES (?, ?, ?)
`, resource.Type, resource.Quantity, resource.Status)
}

func (s *Store) GetResourceByID(ctx context.Context, resourceID int) *models.Resource {
	var resource models.Resource
	err := s.db.GetContext(ctx, &resource, s.db.Rebind(`
SELECT `+resourceColumns+` FROM resources WHERE "resourceID" = ?
`), resourceID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("get resource by id: %v", err)
		}
		return nil
	}
	return &resource
}

func (s *Store) GetAllResources(ctx context.Context) []models.Resource {
	resources := []models.Resource{}
	if err := s.db.SelectContext(ctx, &resources, `SELECT `+resourceColumns+` FROM resources`); err != nil {
		log.Printf("get all resources: %v", err)
		return []models.Resource{}
	}
	return resources
}

func (s *Store) GetResourcesByType(ctx context.Context, resourceType string) []models.Resource {
	resources := []models.Resource{}
	err := s.db.SelectContext(ctx, &resources, s.db.Rebind(`
SELECT `+resourceColumns+` FROM resources WHERE type = ?
`), resourceType)
	if err != nil {
		log.Printf("get resources by type: %v", err)
		return []models.Resource{}
	}
	return resources
}

func (s *Store) UpdateResource(ctx context.Context, resource models.Resource) bool {
	return s.exec(ctx, "update resource", `
UPDATE resources SET type = ?, quantity = ?, status = ? WHERE "resourceID" = ?
`, resource.Type, resource.Quantity, resource.Status, resource.ResourceID)
}

// DeleteResource is the same documented stub as DeleteUser.
func (s *Store) DeleteResource(ctx context.Context, resourceID int) bool {
	return true
}
