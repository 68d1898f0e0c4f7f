package report

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds configuration for report rendering.
type Config struct {
	// Timezone is the IANA zone used for the report timestamp (e.g. Asia/Tokyo).
	Timezone string `mapstructure:"timezone" default:"Local"`
	// Format is the output format: text or json.
	Format string `mapstructure:"format" default:"text"`
}

// Location resolves Timezone. Empty and "Local" mean the process zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid report timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// IsValidFormat checks if the configured format is known.
func (c Config) IsValidFormat() bool {
	switch c.Format {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}
