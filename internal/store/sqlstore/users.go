package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"disasterresponse-backend-go/internal/models"
)

const userColumns = `"userID", username, password, role, "fullName", gender, "dateOfBirth", "phoneNumber", address, email`

func (s *Store) AddUser(ctx context.Context, user models.User) bool {
	return s.exec(ctx, "add user", `
INSERT INTO users (username, password, role, "fullName", gender, "dateOfBirth", "phoneNumber", address, email)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, user.Username, user.Password, user.Role, user.FullName, user.Gender,
		user.DateOfBirth, user.PhoneNumber, user.Address, user.Email)
}

func (s *Store) GetUserByID(ctx context.Context, userID int) *models.User {
	var user models.User
	err := s.db.GetContext(ctx, &user, s.db.Rebind(`
SELECT `+userColumns+` FROM users WHERE "userID" = ?
`), userID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("get user by id: %v", err)
		}
		return nil
	}
	return &user
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) *models.User {
	var user models.User
	err := s.db.GetContext(ctx, &user, s.db.Rebind(`
SELECT `+userColumns+` FROM users WHERE username = ?
`), username)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("get user by username: %v", err)
		}
		return nil
	}
	return &user
}

func (s *Store) GetAllUsers(ctx context.Context) []models.User {
	users := []models.User{}
	if err := s.db.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users`); err != nil {
		log.Printf("get all users: %v", err)
		return []models.User{}
	}
	return users
}

func (s *Store) GetAllRoles(ctx context.Context) []string {
	roles := []string{}
	if err := s.db.SelectContext(ctx, &roles, `SELECT DISTINCT role FROM users`); err != nil {
		log.Printf("get all roles: %v", err)
		return []string{}
	}
	return roles
}

func (s *Store) UpdateUser(ctx context.Context, user models.User) bool {
	return s.exec(ctx, "update user", `
UPDATE users
SET username = ?, password = ?, role = ?, "fullName" = ?, gender = ?,
    "dateOfBirth" = ?, "phoneNumber" = ?, address = ?, email = ?
WHERE "userID" = ?
`, user.Username, user.Password, user.Role, user.FullName, user.Gender,
		user.DateOfBirth, user.PhoneNumber, user.Address, user.Email, user.UserID)
}

// DeleteUser never removes anything; the deployed system shipped user
// deletion as a stub that reports success, and callers depend on that.
func (s *Store) DeleteUser(ctx context.Context, userID int) bool {
	return true
}
