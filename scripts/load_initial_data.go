package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"workforce-scheduler-backend/internal/config"
	"workforce-scheduler-backend/internal/database"
	"workforce-scheduler-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// EventData matches the seed file schema
type EventData struct {
	Title           string `yaml:"title"`
	StartTime       string `yaml:"start_time"`
	DurationMinutes int    `yaml:"duration_minutes"`
	RecurrenceKind  string `yaml:"recurrence_kind"`
	RecurrenceDays  []int  `yaml:"recurrence_days,omitempty"`
	WindowStart     string `yaml:"window_start"`          // YYYY-MM-DD
	WindowEnd       string `yaml:"window_end,omitempty"`  // YYYY-MM-DD, empty means open-ended
	PackageCount    int    `yaml:"package_count"`
	TeamSize        int    `yaml:"team_size"`
	SectionLabel    string `yaml:"section_label,omitempty"`
	ManagerInitials string `yaml:"manager_initials,omitempty"`
	ConditionFlag   bool   `yaml:"condition_flag"`
	ManagerID       string `yaml:"manager_id"`
	StoreID         string `yaml:"store_id"`
}

// SeedFile is the top-level seed document
type SeedFile struct {
	Events []EventData `yaml:"events"`
}

func main() {
	dataFile := "scripts/data/events.yaml"
	if len(os.Args) > 1 {
		dataFile = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: logger.Warn})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	raw, err := os.ReadFile(dataFile)
	if err != nil {
		log.Fatalf("Failed to read seed file %s: %v", dataFile, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	created, skipped := 0, 0
	for _, data := range seed.Events {
		event, err := buildEvent(data)
		if err != nil {
			log.Fatalf("Invalid seed entry %q: %v", data.Title, err)
		}

		// Seeding is idempotent on (store, title, window start)
		var existing models.EventDefinition
		err = db.Where("store_id = ? AND title = ? AND window_start = ?",
			event.StoreID, event.Title, event.WindowStart).First(&existing).Error
		if err == nil {
			skipped++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Lookup failed for %q: %v", data.Title, err)
		}

		if err := db.Create(event).Error; err != nil {
			log.Fatalf("Failed to create event %q: %v", data.Title, err)
		}
		created++
	}

	fmt.Printf("Seed complete: %d created, %d already present\n", created, skipped)
}

func buildEvent(data EventData) (*models.EventDefinition, error) {
	kind := models.RecurrenceKind(data.RecurrenceKind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown recurrence kind %q", data.RecurrenceKind)
	}

	windowStart, err := time.Parse("2006-01-02", data.WindowStart)
	if err != nil {
		return nil, fmt.Errorf("invalid window_start: %w", err)
	}

	var windowEnd *time.Time
	if data.WindowEnd != "" {
		end, err := time.Parse("2006-01-02", data.WindowEnd)
		if err != nil {
			return nil, fmt.Errorf("invalid window_end: %w", err)
		}
		windowEnd = &end
	}

	if _, err := time.Parse("15:04", data.StartTime); err != nil {
		return nil, fmt.Errorf("invalid start_time: %w", err)
	}

	return &models.EventDefinition{
		StartTime:       data.StartTime,
		DurationMinutes: data.DurationMinutes,
		RecurrenceKind:  kind,
		RecurrenceDays:  models.IntList(data.RecurrenceDays),
		WindowStart:     windowStart,
		WindowEnd:       windowEnd,
		Title:           data.Title,
		PackageCount:    data.PackageCount,
		TeamSize:        data.TeamSize,
		SectionLabel:    data.SectionLabel,
		ManagerInitials: data.ManagerInitials,
		ConditionFlag:   data.ConditionFlag,
		ManagerID:       data.ManagerID,
		StoreID:         data.StoreID,
		IsActive:        true,
	}, nil
}
