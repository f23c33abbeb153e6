package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/shared/authorization"
	"demandsurvey/internal/shared/logger"
)

type DeleteLocationCommand struct {
	Caller authorization.Capability
	ID     uint
}

// DeleteLocationUseCase removes a catalog entry. Responses referencing the
// name are kept.
type DeleteLocationUseCase struct {
	repo   location.Repository
	logger logger.Interface
}

// NewDeleteLocationUseCase creates a new DeleteLocationUseCase
func NewDeleteLocationUseCase(repo location.Repository, logger logger.Interface) *DeleteLocationUseCase {
	return &DeleteLocationUseCase{repo: repo, logger: logger}
}

// Execute deletes a location by ID
func (uc *DeleteLocationUseCase) Execute(ctx context.Context, cmd DeleteLocationCommand) error {
	if err := cmd.Caller.RequireAdmin(); err != nil {
		uc.logger.Warnw("delete location denied", "subject", cmd.Caller.Subject(), "id", cmd.ID)
		return err
	}

	if err := uc.repo.Delete(ctx, cmd.ID); err != nil {
		if stderrors.Is(err, location.ErrNotFound) {
			return translateDomainError(err)
		}
		uc.logger.Errorw("failed to delete location", "error", err, "id", cmd.ID)
		return fmt.Errorf("failed to delete location: %w", err)
	}

	uc.logger.Infow("location deleted successfully", "id", cmd.ID)
	return nil
}
