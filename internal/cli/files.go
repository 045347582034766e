package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v2"

	"mastikon/internal/newsroom"
)

// LoadIntake reads a YAML intake file. Interviewees without an id get one.
func LoadIntake(path string) (newsroom.NewsIntake, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return newsroom.NewsIntake{}, fmt.Errorf("failed to read intake: %w", err)
	}
	return ParseIntake(data)
}

func ParseIntake(data []byte) (newsroom.NewsIntake, error) {
	var intake newsroom.NewsIntake
	if err := yaml.Unmarshal(data, &intake); err != nil {
		return newsroom.NewsIntake{}, fmt.Errorf("failed to parse intake YAML: %w", err)
	}

	seen := make(map[string]bool, len(intake.Interviewees))
	for i := range intake.Interviewees {
		id := intake.Interviewees[i].ID
		if id == "" || seen[id] {
			id = uuid.NewString()
			intake.Interviewees[i].ID = id
		}
		seen[id] = true
	}
	return intake, nil
}

// WriteIntake encodes an intake as YAML.
func WriteIntake(w io.Writer, intake newsroom.NewsIntake) error {
	data, err := yaml.Marshal(intake)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// SaveJSON saves data as indented JSON to a file
func SaveJSON(data interface{}, path string) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// LoadJSON loads JSON data from a file
func LoadJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return nil
}
