package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"demandsurvey/internal/application/location/dto"
	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/shared/authorization"
	"demandsurvey/internal/shared/errors"
	"demandsurvey/internal/shared/logger"
)

type CreateLocationCommand struct {
	Caller         authorization.Capability
	Name           string
	SubRegionCount int
}

// CreateLocationUseCase adds a catalog entry
type CreateLocationUseCase struct {
	repo   location.Repository
	logger logger.Interface
}

// NewCreateLocationUseCase creates a new CreateLocationUseCase
func NewCreateLocationUseCase(repo location.Repository, logger logger.Interface) *CreateLocationUseCase {
	return &CreateLocationUseCase{repo: repo, logger: logger}
}

// Execute creates a location. A name already in the catalog (exact match)
// fails with a conflict and leaves the catalog unchanged.
func (uc *CreateLocationUseCase) Execute(ctx context.Context, cmd CreateLocationCommand) (*dto.LocationDTO, error) {
	if err := cmd.Caller.RequireAdmin(); err != nil {
		uc.logger.Warnw("create location denied", "subject", cmd.Caller.Subject())
		return nil, err
	}

	loc, err := location.NewLocation(cmd.Name, cmd.SubRegionCount)
	if err != nil {
		return nil, translateDomainError(err)
	}

	exists, err := uc.repo.ExistsByName(ctx, loc.Name())
	if err != nil {
		uc.logger.Errorw("failed to check location name existence", "error", err, "name", loc.Name())
		return nil, fmt.Errorf("failed to check name existence: %w", err)
	}
	if exists {
		return nil, translateDomainError(location.ErrDuplicateName)
	}

	if err := uc.repo.Create(ctx, loc); err != nil {
		if stderrors.Is(err, location.ErrDuplicateName) {
			return nil, translateDomainError(err)
		}
		uc.logger.Errorw("failed to save location", "error", err, "name", loc.Name())
		return nil, fmt.Errorf("failed to save location: %w", err)
	}

	uc.logger.Infow("location created successfully",
		"id", loc.ID(),
		"name", loc.Name(),
		"sub_region_count", loc.SubRegionCount(),
	)

	return dto.ToLocationDTO(loc), nil
}

func translateDomainError(err error) error {
	switch {
	case stderrors.Is(err, location.ErrDuplicateName):
		return errors.NewConflictError("Location already exists")
	case stderrors.Is(err, location.ErrNotFound):
		return errors.NewNotFoundError("Location not found")
	case stderrors.Is(err, location.ErrInvalidSubRegionCount):
		return errors.NewFieldValidationError("Validation failed", map[string]string{
			"sub_region_count": "Sub-region count must be at least 1",
		})
	case stderrors.Is(err, location.ErrNameRequired):
		return errors.NewFieldValidationError("Validation failed", map[string]string{
			"name": "Location name is required",
		})
	}
	return err
}
