package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/dkachur/poker-nights/internal/domain/location"
	"github.com/dkachur/poker-nights/internal/platform/logging"
)

type LocationService struct {
	locationRepo location.Repository
	logger       *logging.Logger
}

func NewLocationService(locationRepo location.Repository, logger *logging.Logger) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

func (s *LocationService) List(ctx context.Context) ([]location.Location, error) {
	items, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	return items, nil
}

func (s *LocationService) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: location name is required", ErrInvalidInput)
	}

	if err := s.locationRepo.Create(ctx, name); err != nil {
		return fmt.Errorf("create location: %w", err)
	}
	s.logger.Info("location added", "name", name)

	return nil
}
