package services

import (
	"context"
	"testing"
	"time"

	"disasterresponse-backend-go/internal/models"
	"disasterresponse-backend-go/internal/store/memstore"
)

func registeredUser() models.User {
	return models.User{
		Username:    "coordinator1",
		Password:    "s3cret",
		Role:        "Red Cross",
		FullName:    "Pat Doe",
		Gender:      models.GenderOther,
		DateOfBirth: time.Date(1988, time.January, 20, 0, 0, 0, 0, time.UTC),
		PhoneNumber: "0400000000",
		Address:     "1 Relief St",
		Email:       "pat@example.com",
	}
}

func TestRegisterUser(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	if err := EnsureDefaultAgencies(ctx, st); err != nil {
		t.Fatalf("seed agencies: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*models.User)
		want   bool
	}{
		{"valid", func(u *models.User) {}, true},
		{"duplicate username", func(u *models.User) {}, false},
		{"missing username", func(u *models.User) { u.Username = " " }, false},
		{"missing password", func(u *models.User) { u.Username = "u2"; u.Password = "" }, false},
		{"missing full name", func(u *models.User) { u.Username = "u3"; u.FullName = "" }, false},
		{"invalid gender", func(u *models.User) { u.Username = "u4"; u.Gender = 7 }, false},
		{"unknown role", func(u *models.User) { u.Username = "u5"; u.Role = "Navy" }, false},
		{"empty role allowed", func(u *models.User) { u.Username = "u6"; u.Role = "" }, true},
		{"role matched case-insensitively", func(u *models.User) { u.Username = "u7"; u.Role = "red cross" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := registeredUser()
			tt.mutate(&user)
			if got := RegisterUser(ctx, st, user); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckCredentials(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	if err := EnsureDefaultAgencies(ctx, st); err != nil {
		t.Fatalf("seed agencies: %v", err)
	}
	if !RegisterUser(ctx, st, registeredUser()) {
		t.Fatal("register")
	}

	tests := []struct {
		name                     string
		username, password, role string
		want                     bool
	}{
		{"valid", "coordinator1", "s3cret", "Red Cross", true},
		{"role case-insensitive", "coordinator1", "s3cret", "RED CROSS", true},
		{"wrong password", "coordinator1", "S3CRET", "Red Cross", false},
		{"wrong role", "coordinator1", "s3cret", "Police", false},
		{"unknown user", "ghost", "s3cret", "Red Cross", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckCredentials(ctx, st, tt.username, tt.password, tt.role); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnsureDefaultAgencies(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := EnsureDefaultAgencies(ctx, st); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	agencies := st.GetAllAgencies(ctx)
	if len(agencies) != 4 {
		t.Fatalf("expected 4 seeded agencies, got %d", len(agencies))
	}
	want := map[string]string{
		"Fire Department":  "Emergency",
		"Police":           "Law Enforcement",
		"Medical Services": "Healthcare",
		"Red Cross":        "Humanitarian",
	}
	for _, agency := range agencies {
		if want[agency.Name] != agency.Type {
			t.Errorf("unexpected agency %+v", agency)
		}
		delete(want, agency.Name)
	}
	if len(want) != 0 {
		t.Errorf("missing agencies: %v", want)
	}

	// A non-empty table is never re-seeded.
	if !st.AddAgency(ctx, models.Agency{Name: "SES", Type: "Emergency"}) {
		t.Fatal("add agency")
	}
	if err := EnsureDefaultAgencies(ctx, st); err != nil {
		t.Fatalf("ensure after add: %v", err)
	}
	if got := len(st.GetAllAgencies(ctx)); got != 5 {
		t.Errorf("agency count changed to %d", got)
	}
}
