package schema

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Ensure creates the coordination tables if they do not exist yet. It is safe
// to run on every startup. Column names are kept exactly as the deployed
// store uses them (camel case, quoted so Postgres does not fold them), so the
// schema stays compatible with existing data.
func Ensure(db *sqlx.DB) error {
	for _, stmt := range statements(db.DriverName()) {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func statements(driver string) []string {
	if driver == "pgx" || driver == "postgres" {
		return postgresStatements
	}
	return sqliteStatements
}

var postgresStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
  "userID" SERIAL PRIMARY KEY,
  username VARCHAR(50) UNIQUE NOT NULL,
  password VARCHAR(50) NOT NULL,
  role VARCHAR(20) NOT NULL,
  "fullName" VARCHAR(100) NOT NULL,
  gender INT,
  "dateOfBirth" DATE,
  "phoneNumber" VARCHAR(20),
  address VARCHAR(200),
  email VARCHAR(100)
)`,
	`CREATE TABLE IF NOT EXISTS resources (
  "resourceID" SERIAL PRIMARY KEY,
  type VARCHAR(50) NOT NULL,
  quantity INT NOT NULL,
  status VARCHAR(20) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS disaster_reports (
  "reportID" SERIAL PRIMARY KEY,
  "disasterType" VARCHAR(50) NOT NULL,
  location VARCHAR(100) NOT NULL,
  severity INT NOT NULL,
  description TEXT,
  "timeStamp" TIMESTAMP NOT NULL,
  status VARCHAR(20) DEFAULT 'Active'
)`,
	`CREATE TABLE IF NOT EXISTS resource_allocations (
  "allocationID" SERIAL PRIMARY KEY,
  "resourceID" INT REFERENCES resources("resourceID"),
  "disasterID" INT REFERENCES disaster_reports("reportID"),
  quantity INT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS agencies (
  id SERIAL PRIMARY KEY,
  name VARCHAR(100) UNIQUE NOT NULL,
  type VARCHAR(50) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS agency_assignments (
  "assignmentID" SERIAL PRIMARY KEY,
  "agencyID" INT REFERENCES agencies(id),
  "disasterID" INT REFERENCES disaster_reports("reportID"),
  "assignmentDate" TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
  status VARCHAR(20) DEFAULT 'Assigned'
)`,
	`CREATE TABLE IF NOT EXISTS server_metric_samples (
  id VARCHAR(36) PRIMARY KEY,
  captured_at TIMESTAMP NOT NULL,
  system_memory_total_bytes BIGINT NOT NULL,
  system_memory_used_bytes BIGINT NOT NULL,
  process_rss_bytes BIGINT NOT NULL,
  disk_total_bytes BIGINT NOT NULL,
  disk_used_bytes BIGINT NOT NULL,
  process_cpu_load DOUBLE PRECISION NOT NULL,
  system_cpu_load DOUBLE PRECISION NOT NULL
)`,
}

var sqliteStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
  "userID" INTEGER PRIMARY KEY AUTOINCREMENT,
  username VARCHAR(50) UNIQUE NOT NULL,
  password VARCHAR(50) NOT NULL,
  role VARCHAR(20) NOT NULL,
  "fullName" VARCHAR(100) NOT NULL,
  gender INT,
  "dateOfBirth" DATE,
  "phoneNumber" VARCHAR(20),
  address VARCHAR(200),
  email VARCHAR(100)
)`,
	`CREATE TABLE IF NOT EXISTS resources (
  "resourceID" INTEGER PRIMARY KEY AUTOINCREMENT,
  type VARCHAR(50) NOT NULL,
  quantity INT NOT NULL,
  status VARCHAR(20) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS disaster_reports (
  "reportID" INTEGER PRIMARY KEY AUTOINCREMENT,
  "disasterType" VARCHAR(50) NOT NULL,
  location VARCHAR(100) NOT NULL,
  severity INT NOT NULL,
  description TEXT,
  "timeStamp" TIMESTAMP NOT NULL,
  status VARCHAR(20) DEFAULT 'Active'
)`,
	`CREATE TABLE IF NOT EXISTS resource_allocations (
  "allocationID" INTEGER PRIMARY KEY AUTOINCREMENT,
  "resourceID" INT REFERENCES resources("resourceID"),
  "disasterID" INT REFERENCES disaster_reports("reportID"),
  quantity INT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS agencies (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name VARCHAR(100) UNIQUE NOT NULL,
  type VARCHAR(50) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS agency_assignments (
  "assignmentID" INTEGER PRIMARY KEY AUTOINCREMENT,
  "agencyID" INT REFERENCES agencies(id),
  "disasterID" INT REFERENCES disaster_reports("reportID"),
  "assignmentDate" TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
  status VARCHAR(20) DEFAULT 'Assigned'
)`,
	`CREATE TABLE IF NOT EXISTS server_metric_samples (
  id VARCHAR(36) PRIMARY KEY,
  captured_at TIMESTAMP NOT NULL,
  system_memory_total_bytes BIGINT NOT NULL,
  system_memory_used_bytes BIGINT NOT NULL,
  process_rss_bytes BIGINT NOT NULL,
  disk_total_bytes BIGINT NOT NULL,
  disk_used_bytes BIGINT NOT NULL,
  process_cpu_load DOUBLE PRECISION NOT NULL,
  system_cpu_load DOUBLE PRECISION NOT NULL
)`,
}
