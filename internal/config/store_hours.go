package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "workforce-scheduler-backend/internal/errors"

	"gopkg.in/yaml.v3"
)

// DayHours describes the opening window for a single weekday, store-local.
type DayHours struct {
	Open   string `yaml:"open"`   // "HH:MM"
	Close  string `yaml:"close"`  // "HH:MM"
	Closed bool   `yaml:"closed"` // overrides open/close
}

// StoreHours maps lowercase weekday names ("monday"...) to opening windows.
// Days missing from the file are treated as open all day, so an absent or
// empty file means the delay evaluator never sleeps.
type StoreHours struct {
	Days map[string]DayHours `yaml:"days"`
}

// LoadStoreHours reads store opening hours from a YAML file. A missing file
// is not an error: the returned schedule is open around the clock.
func LoadStoreHours(path string) (*StoreHours, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &StoreHours{}, nil
		}
		return nil, fmt.Errorf("read store hours file: %w", err)
	}

	var hours StoreHours
	if err := yaml.Unmarshal(data, &hours); err != nil {
		return nil, fmt.Errorf("parse store hours file: %w", err)
	}

	for day, h := range hours.Days {
		if h.Closed {
			continue
		}
		if _, err := time.Parse("15:04", h.Open); err != nil {
			return nil, apperrors.NewConfigurationError(fmt.Sprintf("store hours %s: invalid open time %q", day, h.Open))
		}
		if _, err := time.Parse("15:04", h.Close); err != nil {
			return nil, apperrors.NewConfigurationError(fmt.Sprintf("store hours %s: invalid close time %q", day, h.Close))
		}
		if h.Open == h.Close {
			return nil, apperrors.NewConfigurationError(fmt.Sprintf("store hours %s: open and close must differ", day))
		}
	}

	return &hours, nil
}

// IsOpenAt reports whether the store is open at the given store-local time.
// A close before the open describes an overnight window that wraps past
// midnight, e.g. 22:00-06:00.
func (s *StoreHours) IsOpenAt(t time.Time) bool {
	if s == nil || len(s.Days) == 0 {
		return true
	}

	day := strings.ToLower(t.Weekday().String())
	h, ok := s.Days[day]
	if !ok {
		return true
	}
	if h.Closed {
		return false
	}

	open, _ := time.Parse("15:04", h.Open)
	close, _ := time.Parse("15:04", h.Close)
	minutes := t.Hour()*60 + t.Minute()
	openMin := open.Hour()*60 + open.Minute()
	closeMin := close.Hour()*60 + close.Minute()

	if closeMin < openMin {
		return minutes >= openMin || minutes < closeMin
	}
	return minutes >= openMin && minutes < closeMin
}
