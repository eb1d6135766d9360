// Package memstore provides an in-memory implementation of store.Store for
// tests and ephemeral environments. It mirrors the observable contract of the
// SQL backend: boolean writes, nil on absent lookups, empty slices, unique
// usernames and agency names, and foreign-key checks on ledger writes.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"disasterresponse-backend-go/internal/models"
	"disasterresponse-backend-go/internal/store"
)

type Store struct {
	mu sync.Mutex

	users       map[int]models.User
	resources   map[int]models.Resource
	reports     map[int]models.DisasterReport
	agencies    map[int]models.Agency
	allocations map[int]models.ResourceAllocation
	assignments map[int]models.AgencyAssignment

	nextUserID       int
	nextResourceID   int
	nextReportID     int
	nextAgencyID     int
	nextAllocationID int
	nextAssignmentID int

	now func() time.Time
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		users:            map[int]models.User{},
		resources:        map[int]models.Resource{},
		reports:          map[int]models.DisasterReport{},
		agencies:         map[int]models.Agency{},
		allocations:      map[int]models.ResourceAllocation{},
		assignments:      map[int]models.AgencyAssignment{},
		nextUserID:       1,
		nextResourceID:   1,
		nextReportID:     1,
		nextAgencyID:     1,
		nextAllocationID: 1,
		nextAssignmentID: 1,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the assignment timestamp source. Test hook.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Close() error {
	return nil
}

func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Users.

func (s *Store) AddUser(ctx context.Context, user models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return false
		}
	}
	user.UserID = s.nextUserID
	s.nextUserID++
	s.users[user.UserID] = user
	return true
}

func (s *Store) GetUserByID(ctx context.Context, userID int) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[userID]; ok {
		return &user
	}
	return nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range sortedIDs(s.users) {
		if s.users[id].Username == username {
			user := s.users[id]
			return &user
		}
	}
	return nil
}

func (s *Store) GetAllUsers(ctx context.Context) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := []models.User{}
	for _, id := range sortedIDs(s.users) {
		users = append(users, s.users[id])
	}
	return users
}

func (s *Store) GetAllRoles(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	roles := []string{}
	for _, id := range sortedIDs(s.users) {
		role := s.users[id].Role
		if !seen[role] {
			seen[role] = true
			roles = append(roles, role)
		}
	}
	return roles
}

func (s *Store) UpdateUser(ctx context.Context, user models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.UserID]; !ok {
		return false
	}
	for id, existing := range s.users {
		if id != user.UserID && existing.Username == user.Username {
			return false
		}
	}
	s.users[user.UserID] = user
	return true
}

// DeleteUser reproduces the deployed stub: success without deletion.
func (s *Store) DeleteUser(ctx context.Context, userID int) bool {
	return true
}

// Resources.

func (s *Store) AddResource(ctx context.Context, resource models.Resource) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	resource.ResourceID = s.nextResourceID
	s.nextResourceID++
	s.resources[resource.ResourceID] = resource
	return true
}

func (s *Store) GetResourceByID(ctx context.Context, resourceID int) *models.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	if resource, ok := s.resources[resourceID]; ok {
		return &resource
	}
	return nil
}

func (s *Store) GetAllResources(ctx context.Context) []models.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	resources := []models.Resource{}
	for _, id := range sortedIDs(s.resources) {
		resources = append(resources, s.resources[id])
	}
	return resources
}

func (s *Store) GetResourcesByType(ctx context.Context, resourceType string) []models.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	resources := []models.Resource{}
	for _, id := range sortedIDs(s.resources) {
		if s.resources[id].Type == resourceType {
			resources = append(resources, s.resources[id])
		}
	}
	return resources
}

func (s *Store) UpdateResource(ctx context.Context, resource models.Resource) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.resources[resource.ResourceID]; !ok {
		return false
	}
	s.resources[resource.ResourceID] = resource
	return true
}

// DeleteResource reproduces the deployed stub: success without deletion.
func (s *Store) DeleteResource(ctx context.Context, resourceID int) bool {
	return true
}

// Disaster reports.

func (s *Store) AddDisasterReport(ctx context.Context, report models.DisasterReport) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	report.ReportID = s.nextReportID
	s.nextReportID++
	if report.Status == "" {
		report.Status = models.DisasterActive
	}
	s.reports[report.ReportID] = report
	return true
}

func (s *Store) GetDisasterReportByID(ctx context.Context, reportID int) *models.DisasterReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	if report, ok := s.reports[reportID]; ok {
		return &report
	}
	return nil
}

func (s *Store) GetDisasterIDByType(ctx context.Context, disasterType string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range sortedIDs(s.reports) {
		if s.reports[id].DisasterType == disasterType {
			return id
		}
	}
	return store.DisasterNotFound
}

func (s *Store) GetAllDisasterReports(ctx context.Context) []models.DisasterReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports := []models.DisasterReport{}
	for _, id := range sortedIDs(s.reports) {
		reports = append(reports, s.reports[id])
	}
	return reports
}

func (s *Store) GetActiveDisasterReports(ctx context.Context) []models.DisasterReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports := []models.DisasterReport{}
	for _, id := range sortedIDs(s.reports) {
		if s.reports[id].Status == models.DisasterActive {
			reports = append(reports, s.reports[id])
		}
	}
	return reports
}

// UpdateDisasterReport rewrites the descriptive fields; status is preserved,
// matching the SQL backend's update column set.
func (s *Store) UpdateDisasterReport(ctx context.Context, report models.DisasterReport) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.reports[report.ReportID]
	if !ok {
		return false
	}
	existing.DisasterType = report.DisasterType
	existing.Location = report.Location
	existing.Severity = report.Severity
	existing.Description = report.Description
	existing.TimeStamp = report.TimeStamp
	s.reports[report.ReportID] = existing
	return true
}

func (s *Store) ResolveDisasterReport(ctx context.Context, reportID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	report, ok := s.reports[reportID]
	if !ok || report.Status != models.DisasterActive {
		return false
	}
	report.Status = models.DisasterResolved
	s.reports[reportID] = report
	return true
}

// DeleteDisasterReport refuses to remove a report that allocations or
// assignments still reference, matching the SQL foreign-key behavior.
func (s *Store) DeleteDisasterReport(ctx context.Context, reportID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[reportID]; !ok {
		return false
	}
	for _, allocation := range s.allocations {
		if allocation.DisasterID == reportID {
			return false
		}
	}
	for _, assignment := range s.assignments {
		if assignment.DisasterID == reportID {
			return false
		}
	}
	delete(s.reports, reportID)
	return true
}

// Agencies.

func (s *Store) AddAgency(ctx context.Context, agency models.Agency) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.agencies {
		if strings.EqualFold(existing.Name, agency.Name) {
			return false
		}
	}
	agency.ID = s.nextAgencyID
	s.nextAgencyID++
	s.agencies[agency.ID] = agency
	return true
}

func (s *Store) GetAllAgencies(ctx context.Context) []models.Agency {
	s.mu.Lock()
	defer s.mu.Unlock()
	agencies := []models.Agency{}
	for _, id := range sortedIDs(s.agencies) {
		agencies = append(agencies, s.agencies[id])
	}
	return agencies
}

// Coordination.

func (s *Store) AllocateResourceToDisaster(ctx context.Context, resourceID, disasterID, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.resources[resourceID]; !ok {
		return false
	}
	if _, ok := s.reports[disasterID]; !ok {
		return false
	}
	allocation := models.ResourceAllocation{
		AllocationID: s.nextAllocationID,
		ResourceID:   resourceID,
		DisasterID:   disasterID,
		Quantity:     quantity,
	}
	s.nextAllocationID++
	s.allocations[allocation.AllocationID] = allocation
	return true
}

func (s *Store) GetResourcesAllocatedToDisaster(ctx context.Context, disasterID int) []models.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	resources := []models.Resource{}
	for _, id := range sortedIDs(s.allocations) {
		allocation := s.allocations[id]
		if allocation.DisasterID != disasterID {
			continue
		}
		resource, ok := s.resources[allocation.ResourceID]
		if !ok {
			continue
		}
		resource.Quantity = allocation.Quantity
		resources = append(resources, resource)
	}
	return resources
}

func (s *Store) AssignAgencyToDisaster(ctx context.Context, agencyID, disasterID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.agencies[agencyID]; !ok {
		return false
	}
	if _, ok := s.reports[disasterID]; !ok {
		return false
	}
	assignment := models.AgencyAssignment{
		AssignmentID:   s.nextAssignmentID,
		AgencyID:       agencyID,
		DisasterID:     disasterID,
		AssignmentDate: s.now(),
		Status:         models.AssignmentAssigned,
	}
	s.nextAssignmentID++
	s.assignments[assignment.AssignmentID] = assignment
	return true
}

func (s *Store) GetAgenciesAssignedToDisaster(ctx context.Context, disasterID int) []models.AgencyAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	assignments := []models.AgencyAssignment{}
	for _, id := range sortedIDs(s.assignments) {
		if s.assignments[id].DisasterID == disasterID {
			assignments = append(assignments, s.denormalize(s.assignments[id]))
		}
	}
	return assignments
}

func (s *Store) GetAllAgencyAssignments(ctx context.Context) []models.AgencyAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	assignments := []models.AgencyAssignment{}
	for _, id := range sortedIDs(s.assignments) {
		assignments = append(assignments, s.denormalize(s.assignments[id]))
	}
	return assignments
}

// denormalize fills the joined agency name and disaster type, as the SQL
// backend's assignment queries do. Caller holds the lock.
func (s *Store) denormalize(assignment models.AgencyAssignment) models.AgencyAssignment {
	if agency, ok := s.agencies[assignment.AgencyID]; ok {
		assignment.AgencyName = agency.Name
	}
	if report, ok := s.reports[assignment.DisasterID]; ok {
		assignment.DisasterType = report.DisasterType
	}
	return assignment
}
