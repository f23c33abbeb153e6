package usecases

import (
	"context"

	"demandsurvey/internal/application/location/dto"
	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/shared/constants"
	"demandsurvey/internal/shared/errors"
	"demandsurvey/internal/shared/logger"
)

// ListLocationsUseCase returns the catalog sorted by name. It is public.
type ListLocationsUseCase struct {
	repo   location.Repository
	logger logger.Interface
}

// NewListLocationsUseCase creates a new ListLocationsUseCase
func NewListLocationsUseCase(repo location.Repository, logger logger.Interface) *ListLocationsUseCase {
	return &ListLocationsUseCase{repo: repo, logger: logger}
}

// Execute lists every location
func (uc *ListLocationsUseCase) Execute(ctx context.Context) ([]*dto.LocationDTO, error) {
	locations, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list locations", "error", err)
		return nil, errors.NewFetchError(constants.ErrMsgLoadFailed, err, "locations")
	}

	return dto.ToLocationDTOs(location.NewDirectory(locations).List()), nil
}
