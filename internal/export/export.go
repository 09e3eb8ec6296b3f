// Package export writes the compiled-in schedule as JSON or YAML.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/schedule"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is the exported shape. Lists keep authored order.
type Document struct {
	Weeks    []models.TrainingWeek `json:"weeks" yaml:"weeks"`
	Workouts []models.Workout      `json:"workouts" yaml:"workouts"`
}

func NewDocument(sched *schedule.Schedule) Document {
	return Document{
		Weeks:    sched.Weeks(),
		Workouts: sched.Workouts(),
	}
}

func Write(w io.Writer, sched *schedule.Schedule, format string) error {
	doc := NewDocument(sched)

	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(doc)
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format %q (want %s or %s)", format, FormatJSON, FormatYAML)
	}
}

// Read parses a previously exported document back into a schedule.
func Read(r io.Reader, format string) (*schedule.Schedule, error) {
	var doc Document
	switch strings.ToLower(format) {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode JSON schedule: %w", err)
		}
	case FormatYAML, "yml":
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode YAML schedule: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported export format %q (want %s or %s)", format, FormatJSON, FormatYAML)
	}
	return schedule.New(doc.Weeks, doc.Workouts), nil
}
