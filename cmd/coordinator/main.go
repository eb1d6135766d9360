package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"disasterresponse-backend-go/internal/config"
	"disasterresponse-backend-go/internal/db"
	"disasterresponse-backend-go/internal/schema"
	"disasterresponse-backend-go/internal/services"
	"disasterresponse-backend-go/internal/store/sqlstore"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	cleanupLogs, err := setupLogger(cfg)
	if err != nil {
		log.Printf("logger setup failed: %v", err)
	} else {
		defer cleanupLogs()
	}

	if err := db.EnsureDatabase(cfg.AdminDatabaseURL, cfg.DatabaseName); err != nil {
		log.Fatalf("ensure database: %v", err)
	}
	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := schema.Ensure(database); err != nil {
		log.Fatalf("schema: %v", err)
	}

	coordStore := sqlstore.New(database)
	defer func() {
		if err := coordStore.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := services.EnsureDefaultAgencies(ctx, coordStore); err != nil {
		log.Fatalf("default agencies: %v", err)
	}

	hub := services.NewMetricsHub()
	go hub.Run(ctx)
	go metricsLoop(ctx, database, hub, cfg)

	activeDisasters := len(coordStore.GetActiveDisasterReports(ctx))
	opsHub := services.NewHub()
	opsHub.SendNotification("All Agencies", "Coordinator online",
		fmt.Sprintf("%d active disasters at startup", activeDisasters))

	log.Printf("coordination store ready (%d active disasters)", activeDisasters)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	cancel()
	log.Printf("shutdown complete")
}

func metricsLoop(ctx context.Context, database *sqlx.DB, hub *services.MetricsHub, cfg config.Config) {
	ticker := time.NewTicker(time.Duration(cfg.MetricsSampleSeconds) * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			sample, err := services.CaptureMetrics(ctx, database, cfg.MetricsDiskPath)
			if err != nil {
				log.Printf("metrics capture: %v", err)
				continue
			}
			hub.Broadcast(sample)
		case <-ctx.Done():
			return
		}
	}
}

func setupLogger(cfg config.Config) (func(), error) {
	logDir := cfg.LogDir
	retentionDays := cfg.LogRetentionDays
	if retentionDays < 1 {
		retentionDays = 1
	}
	if retentionDays > 7 {
		retentionDays = 7
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	currentDate := time.Now().Format("2006-01-02")
	file, err := openLogFile(logDir, currentDate)
	if err != nil {
		return nil, err
	}
	log.SetOutput(io.MultiWriter(os.Stdout, file))
	cleanupOldLogs(logDir, retentionDays)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				date := time.Now().Format("2006-01-02")
				mu.Lock()
				if date != currentDate {
					newFile, err := openLogFile(logDir, date)
					if err == nil {
						log.SetOutput(io.MultiWriter(os.Stdout, newFile))
						_ = file.Close()
						file = newFile
						currentDate = date
						cleanupOldLogs(logDir, retentionDays)
					}
				}
				mu.Unlock()
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		cancel()
		mu.Lock()
		_ = file.Close()
		mu.Unlock()
	}, nil
}

func openLogFile(logDir, date string) (*os.File, error) {
	filename := filepath.Join(logDir, fmt.Sprintf("app-%s.log", date))
	return os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

func cleanupOldLogs(logDir string, retentionDays int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -(retentionDays - 1))
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.HasPrefix(name, "app-") || !strings.HasSuffix(name, ".log") {
			continue
		}
		datePart := strings.TrimSuffix(strings.TrimPrefix(name, "app-"), ".log")
		logDate, err := time.Parse("2006-01-02", datePart)
		if err != nil {
			continue
		}
		if logDate.Before(cutoff) {
			_ = os.Remove(filepath.Join(logDir, name))
		}
	}
}
