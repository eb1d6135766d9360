package services

import (
	"context"
	"log"
	"strings"
	"time"

	"disasterresponse-backend-go/internal/models"
	"disasterresponse-backend-go/internal/store"
)

func nowUTC() time.Time {
	return time.Now().UTC()
}

// CheckCredentials is the boolean login check: the user must exist, the
// password must match exactly, and the selected role must match the stored
// role ignoring case. Passwords are compared as stored.
func CheckCredentials(ctx context.Context, st store.Store, username, password, role string) bool {
	user := st.GetUserByUsername(ctx, username)
	if user == nil {
		return false
	}
	return user.Password == password && strings.EqualFold(user.Role, role)
}

// RegisterUser validates a registration and stores the user. The role must
// name a known agency or be empty, mirroring the registration form that only
// offers agency names.
func RegisterUser(ctx context.Context, st store.Store, user models.User) bool {
	if strings.TrimSpace(user.Username) == "" || user.Password == "" || strings.TrimSpace(user.FullName) == "" {
		log.Printf("register user: missing required fields")
		return false
	}
	if user.Gender < models.GenderUnspecified || user.Gender > models.GenderOther {
		log.Printf("register user: invalid gender %d", user.Gender)
		return false
	}
	if !validRole(ctx, st, user.Role) {
		log.Printf("register user: role %q does not name a known agency", user.Role)
		return false
	}
	return st.AddUser(ctx, user)
}

func validRole(ctx context.Context, st store.Store, role string) bool {
	if role == "" {
		return true
	}
	for _, agency := range st.GetAllAgencies(ctx) {
		if strings.EqualFold(agency.Name, role) {
			return true
		}
	}
	return false
}
