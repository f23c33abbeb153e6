package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"demandsurvey/internal/application/location/dto"
	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/shared/authorization"
	"demandsurvey/internal/shared/logger"
)

type UpdateLocationCommand struct {
	Caller         authorization.Capability
	ID             uint
	Name           string
	SubRegionCount int
}

// UpdateLocationUseCase replaces a catalog entry. Stored responses keep the
// values they were submitted with.
type UpdateLocationUseCase struct {
	repo   location.Repository
	logger logger.Interface
}

// NewUpdateLocationUseCase creates a new UpdateLocationUseCase
func NewUpdateLocationUseCase(repo location.Repository, logger logger.Interface) *UpdateLocationUseCase {
	return &UpdateLocationUseCase{repo: repo, logger: logger}
}

// Execute updates name and sub-region count of a location
func (uc *UpdateLocationUseCase) Execute(ctx context.Context, cmd UpdateLocationCommand) (*dto.LocationDTO, error) {
	if err := cmd.Caller.RequireAdmin(); err != nil {
		uc.logger.Warnw("update location denied", "subject", cmd.Caller.Subject(), "id", cmd.ID)
		return nil, err
	}

	loc, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		if stderrors.Is(err, location.ErrNotFound) {
			return nil, translateDomainError(err)
		}
		uc.logger.Errorw("failed to get location", "error", err, "id", cmd.ID)
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	oldName := loc.Name()
	if err := loc.Replace(cmd.Name, cmd.SubRegionCount); err != nil {
		return nil, translateDomainError(err)
	}

	if loc.Name() != oldName {
		exists, err := uc.repo.ExistsByName(ctx, loc.Name())
		if err != nil {
			uc.logger.Errorw("failed to check location name existence", "error", err, "name", loc.Name())
			return nil, fmt.Errorf("failed to check name existence: %w", err)
		}
		if exists {
			return nil, translateDomainError(location.ErrDuplicateName)
		}
	}

	if err := uc.repo.Update(ctx, loc); err != nil {
		if stderrors.Is(err, location.ErrDuplicateName) || stderrors.Is(err, location.ErrNotFound) {
			return nil, translateDomainError(err)
		}
		uc.logger.Errorw("failed to update location", "error", err, "id", cmd.ID)
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	uc.logger.Infow("location updated successfully", "id", loc.ID(), "name", loc.Name())
	return dto.ToLocationDTO(loc), nil
}
