package services

import (
	"context"
	"fmt"

	"disasterresponse-backend-go/internal/models"
	"disasterresponse-backend-go/internal/store"
)

// defaultAgencies are seeded into an empty agencies table on startup.
var defaultAgencies = []models.Agency{
	{Name: "Fire Department", Type: "Emergency"},
	{Name: "Police", Type: "Law Enforcement"},
	{Name: "Medical Services", Type: "Healthcare"},
	{Name: "Red Cross", Type: "Humanitarian"},
}

// EnsureDefaultAgencies seeds the default agency list iff no agencies exist
// yet. Safe to run on every startup; a non-empty table is left alone.
func EnsureDefaultAgencies(ctx context.Context, st store.Store) error {
	if len(st.GetAllAgencies(ctx)) > 0 {
		return nil
	}
	for _, agency := range defaultAgencies {
		if !st.AddAgency(ctx, agency) {
			return fmt.Errorf("seed agency %s", agency.Name)
		}
	}
	return nil
}
