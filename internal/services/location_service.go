package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aumtheo/Energie-Berechner/internal/models"

	"gorm.io/gorm"
)

var ErrLocationNotFound = errors.New("location not found")

type LocationService struct {
	db *gorm.DB
}

func NewLocationService(db *gorm.DB) (*LocationService, error) {
	if db == nil {
		return nil, errors.New("db is nil")
	}

	return &LocationService{db: db}, nil
}

func (s *LocationService) GetLocations(ctx context.Context) ([]models.Location, error) {
	if s == nil {
		return nil, errors.New("location service is nil")
	}
	if s.db == nil {
		return nil, errors.New("db is nil")
	}

	var locations []models.Location
	if err := s.db.WithContext(ctx).Order("name").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("get locations: %w", err)
	}

	return locations, nil
}

func (s *LocationService) GetLocationByName(ctx context.Context, name string) (models.Location, error) {
	if s == nil {
		return models.Location{}, errors.New("location service is nil")
	}
	if s.db == nil {
		return models.Location{}, errors.New("db is nil")
	}
	if name == "" {
		return models.Location{}, errors.New("location name is empty")
	}

	var location models.Location
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&location).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Location{}, ErrLocationNotFound
	}
	if err != nil {
		return models.Location{}, fmt.Errorf("get location %q: %w", name, err)
	}

	return location, nil
}

// ClimateForName resolves a named location into the calculation climate,
// falling back to the Munich default profile when the name is empty or
// unknown.
func (s *LocationService) ClimateForName(ctx context.Context, name string) (Climate, error) {
	if s == nil {
		return Climate{}, errors.New("location service is nil")
	}
	if name == "" {
		return DefaultClimate(), nil
	}

	location, err := s.GetLocationByName(ctx, name)
	if errors.Is(err, ErrLocationNotFound) {
		return DefaultClimate(), nil
	}
	if err != nil {
		return Climate{}, err
	}

	return ClimateFromLocation(location), nil
}
