package models

import "time"

// Gender values stored in users.gender.
const (
	GenderUnspecified = 0
	GenderMale        = 1
	GenderFemale      = 2
	GenderOther       = 3
)

// Resource statuses.
const (
	ResourceAvailable = "Available"
	ResourceInUse     = "In Use"
	ResourceDepleted  = "Depleted"
)

// Disaster report statuses. Reports only ever move Active -> Resolved.
const (
	DisasterActive   = "Active"
	DisasterResolved = "Resolved"
)

// AssignmentAssigned is the default agency assignment status.
const AssignmentAssigned = "Assigned"

type User struct {
	UserID      int       `db:"userID"`
	Username    string    `db:"username"`
	Password    string    `db:"password"`
	Role        string    `db:"role"`
	FullName    string    `db:"fullName"`
	Gender      int       `db:"gender"`
	DateOfBirth time.Time `db:"dateOfBirth"`
	PhoneNumber string    `db:"phoneNumber"`
	Address     string    `db:"address"`
	Email       string    `db:"email"`
}

type Resource struct {
	ResourceID int    `db:"resourceID"`
	Type       string `db:"type"`
	Quantity   int    `db:"quantity"`
	Status     string `db:"status"`
}

type DisasterReport struct {
	ReportID     int       `db:"reportID"`
	DisasterType string    `db:"disasterType"`
	Location     string    `db:"location"`
	Severity     int       `db:"severity"`
	Description  string    `db:"description"`
	Status       string    `db:"status"`
	TimeStamp    time.Time `db:"timeStamp"`
}

type Agency struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
	Type string `db:"type"`
}

// ResourceAllocation is an append-only ledger row; it never mutates the
// catalog quantity on the Resource it references.
type ResourceAllocation struct {
	AllocationID int `db:"allocationID"`
	ResourceID   int `db:"resourceID"`
	DisasterID   int `db:"disasterID"`
	Quantity     int `db:"quantity"`
}

// AgencyAssignment is the denormalized assignment view: AgencyName and
// DisasterType are joined in from agencies and disaster_reports.
type AgencyAssignment struct {
	AssignmentID   int       `db:"assignmentID"`
	AgencyID       int       `db:"agencyID"`
	AgencyName     string    `db:"agencyName"`
	DisasterID     int       `db:"disasterID"`
	AssignmentDate time.Time `db:"assignmentDate"`
	Status         string    `db:"status"`
	DisasterType   string    `db:"disasterType"`
}
