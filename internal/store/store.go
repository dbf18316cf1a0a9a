// Package store round-trips the restaurant directory and the availability
// mapping through indented JSON files.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dinesim/dinesim/internal/logger"
	"github.com/dinesim/dinesim/internal/models"
	"go.uber.org/zap"
)

// LoadRestaurants reads a restaurant list from a JSON file.
func LoadRestaurants(path string) ([]models.Restaurant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Get().Error("failed to read restaurants file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("reading restaurants from %s: %w", path, err)
	}

	var restaurants []models.Restaurant
	if err := json.Unmarshal(data, &restaurants); err != nil {
		logger.Get().Error("failed to parse restaurants file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("parsing restaurants from %s: %w", path, err)
	}
	return restaurants, nil
}

// SaveRestaurants writes the restaurant list as indented JSON.
func SaveRestaurants(path string, restaurants []models.Restaurant) error {
	return writeJSON(path, restaurants)
}

// LoadAvailability reads the availability mapping from a JSON file.
func LoadAvailability(path string) (models.Availability, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Get().Error("failed to read availability file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("reading availability from %s: %w", path, err)
	}

	var availability models.Availability
	if err := json.Unmarshal(data, &availability); err != nil {
		logger.Get().Error("failed to parse availability file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("parsing availability from %s: %w", path, err)
	}
	return availability, nil
}

// SaveAvailability writes the availability mapping as indented JSON.
// Consumers sort dates themselves rather than relying on file order.
func SaveAvailability(path string, availability models.Availability) error {
	return writeJSON(path, availability)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Get().Error("failed to write file", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
