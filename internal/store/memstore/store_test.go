package memstore

import (
	"context"
	"testing"
	"time"

	"disasterresponse-backend-go/internal/models"
	"disasterresponse-backend-go/internal/store"
)

func testUser(username string) models.User {
	return models.User{
		Username:    username,
		Password:    "pass123",
		Role:        "Red Cross",
		FullName:    "Test Responder",
		Gender:      models.GenderFemale,
		DateOfBirth: time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC),
		PhoneNumber: "0400000000",
		Address:     "1 Relief St",
		Email:       "responder@example.com",
	}
}

func TestContractAssertions(t *testing.T) {
	var _ store.Store = New()
}

func TestUserRoundTrip(t *testing.T) {
	st := New()
	ctx := context.Background()
	want := testUser("alice")
	if !st.AddUser(ctx, want) {
		t.Fatal("add user failed")
	}
	got := st.GetUserByUsername(ctx, "alice")
	if got == nil {
		t.Fatal("user absent after add")
	}
	want.UserID = got.UserID
	if *got != want {
		t.Errorf("round-trip mismatch: got %+v want %+v", *got, want)
	}
}

func TestDuplicateUsernameRejected(t *testing.T) {
	st := New()
	ctx := context.Background()
	if !st.AddUser(ctx, testUser("alice")) {
		t.Fatal("first add failed")
	}
	dup := testUser("alice")
	dup.FullName = "Impostor"
	if st.AddUser(ctx, dup) {
		t.Fatal("duplicate username accepted")
	}
	if got := st.GetUserByUsername(ctx, "alice"); got.FullName != "Test Responder" {
		t.Errorf("existing row changed: %+v", got)
	}
}

func TestDeleteStubs(t *testing.T) {
	st := New()
	ctx := context.Background()
	if !st.AddUser(ctx, testUser("alice")) {
		t.Fatal("add user")
	}
	if !st.DeleteUser(ctx, 1) || !st.DeleteUser(ctx, 999) {
		t.Error("DeleteUser must always report success")
	}
	if st.GetUserByID(ctx, 1) == nil {
		t.Error("DeleteUser removed the row")
	}
	if !st.AddResource(ctx, models.Resource{Type: "Water", Quantity: 5, Status: models.ResourceAvailable}) {
		t.Fatal("add resource")
	}
	if !st.DeleteResource(ctx, 1) {
		t.Error("DeleteResource must report success")
	}
	if st.GetResourceByID(ctx, 1) == nil {
		t.Error("DeleteResource removed the row")
	}
}

func TestActiveReportsAndSentinel(t *testing.T) {
	st := New()
	ctx := context.Background()
	stamp := time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC)
	st.AddDisasterReport(ctx, models.DisasterReport{DisasterType: "Flood", Location: "Brisbane", Severity: 4, TimeStamp: stamp})
	st.AddDisasterReport(ctx, models.DisasterReport{DisasterType: "Fire", Location: "Sydney", Severity: 2, TimeStamp: stamp})

	fireID := st.GetDisasterIDByType(ctx, "Fire")
	if fireID == store.DisasterNotFound {
		t.Fatal("fire report missing")
	}
	if !st.ResolveDisasterReport(ctx, fireID) {
		t.Fatal("resolve failed")
	}
	active := st.GetActiveDisasterReports(ctx)
	if len(active) != 1 || active[0].DisasterType != "Flood" {
		t.Errorf("active set wrong: %+v", active)
	}
	if id := st.GetDisasterIDByType(ctx, "Nonexistent"); id != store.DisasterNotFound {
		t.Errorf("sentinel: got %d", id)
	}
	// Resolved reports never reactivate.
	if st.ResolveDisasterReport(ctx, fireID) {
		t.Error("second resolve succeeded")
	}
	report := st.GetDisasterReportByID(ctx, fireID)
	report.Severity = 5
	if !st.UpdateDisasterReport(ctx, *report) {
		t.Fatal("update failed")
	}
	if got := st.GetDisasterReportByID(ctx, fireID); got.Status != models.DisasterResolved {
		t.Errorf("update changed status: %+v", got)
	}
}

func TestAllocationLedger(t *testing.T) {
	st := New()
	ctx := context.Background()
	st.AddResource(ctx, models.Resource{Type: "Water", Quantity: 50, Status: models.ResourceAvailable})
	st.AddDisasterReport(ctx, models.DisasterReport{DisasterType: "Flood", Location: "Brisbane", Severity: 4, TimeStamp: time.Now()})

	if st.AllocateResourceToDisaster(ctx, 9, 1, 10) {
		t.Error("allocation with unknown resource succeeded")
	}
	if st.AllocateResourceToDisaster(ctx, 1, 9, 10) {
		t.Error("allocation with unknown disaster succeeded")
	}
	if !st.AllocateResourceToDisaster(ctx, 1, 1, 10) {
		t.Fatal("allocation failed")
	}
	allocated := st.GetResourcesAllocatedToDisaster(ctx, 1)
	if len(allocated) != 1 || allocated[0].Quantity != 10 {
		t.Errorf("allocation view wrong: %+v", allocated)
	}
	if catalog := st.GetResourceByID(ctx, 1); catalog.Quantity != 50 {
		t.Errorf("catalog quantity changed: %d", catalog.Quantity)
	}
}

func TestAssignmentAppendOnly(t *testing.T) {
	st := New()
	ctx := context.Background()
	fixed := time.Date(2026, time.August, 2, 12, 0, 0, 0, time.UTC)
	st.SetClock(func() time.Time { return fixed })
	st.AddAgency(ctx, models.Agency{Name: "Police", Type: "Law Enforcement"})
	st.AddDisasterReport(ctx, models.DisasterReport{DisasterType: "Fire", Location: "Sydney", Severity: 3, TimeStamp: fixed})

	if !st.AssignAgencyToDisaster(ctx, 1, 1) || !st.AssignAgencyToDisaster(ctx, 1, 1) {
		t.Fatal("assignments failed")
	}
	assignments := st.GetAllAgencyAssignments(ctx)
	if len(assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(assignments))
	}
	if assignments[0].AssignmentID == assignments[1].AssignmentID {
		t.Error("assignment ids not distinct")
	}
	for _, a := range assignments {
		if a.AgencyName != "Police" || a.DisasterType != "Fire" {
			t.Errorf("denormalized view wrong: %+v", a)
		}
		if !a.AssignmentDate.Equal(fixed) || a.Status != models.AssignmentAssigned {
			t.Errorf("defaults wrong: %+v", a)
		}
	}
}

func TestDeleteDisasterReportGuards(t *testing.T) {
	st := New()
	ctx := context.Background()
	st.AddResource(ctx, models.Resource{Type: "Water", Quantity: 5, Status: models.ResourceAvailable})
	st.AddDisasterReport(ctx, models.DisasterReport{DisasterType: "Flood", Location: "Brisbane", Severity: 1, TimeStamp: time.Now()})
	st.AddDisasterReport(ctx, models.DisasterReport{DisasterType: "Fire", Location: "Sydney", Severity: 1, TimeStamp: time.Now()})
	st.AllocateResourceToDisaster(ctx, 1, 1, 2)

	if st.DeleteDisasterReport(ctx, 1) {
		t.Error("delete succeeded with live allocation reference")
	}
	if !st.DeleteDisasterReport(ctx, 2) {
		t.Error("delete of unreferenced report failed")
	}
	if st.DeleteDisasterReport(ctx, 2) {
		t.Error("second delete reported success")
	}
}

func TestRolesAndResourceFinders(t *testing.T) {
	st := New()
	ctx := context.Background()
	for _, u := range []struct{ name, role string }{{"a", "Police"}, {"b", "Police"}, {"c", "Red Cross"}} {
		user := testUser(u.name)
		user.Role = u.role
		if !st.AddUser(ctx, user) {
			t.Fatalf("add %s", u.name)
		}
	}
	if roles := st.GetAllRoles(ctx); len(roles) != 2 {
		t.Errorf("distinct roles: %v", roles)
	}
	st.AddResource(ctx, models.Resource{Type: "Water", Quantity: 1, Status: models.ResourceAvailable})
	st.AddResource(ctx, models.Resource{Type: "Tents", Quantity: 1, Status: models.ResourceAvailable})
	if got := st.GetResourcesByType(ctx, "Water"); len(got) != 1 {
		t.Errorf("by type: %+v", got)
	}
	if got := st.GetResourcesByType(ctx, "Fuel"); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}
