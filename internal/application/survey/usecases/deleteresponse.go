package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"demandsurvey/internal/domain/survey"
	"demandsurvey/internal/shared/authorization"
	"demandsurvey/internal/shared/errors"
	"demandsurvey/internal/shared/logger"
)

type DeleteResponseCommand struct {
	Caller authorization.Capability
	ID     uint
}

// DeleteResponseUseCase removes a response and its item mentions
type DeleteResponseUseCase struct {
	responseRepo survey.ResponseRepository
	txMgr        TransactionRunner
	logger       logger.Interface
}

// NewDeleteResponseUseCase creates a new DeleteResponseUseCase
func NewDeleteResponseUseCase(responseRepo survey.ResponseRepository, txMgr TransactionRunner, logger logger.Interface) *DeleteResponseUseCase {
	return &DeleteResponseUseCase{
		responseRepo: responseRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

// Execute deletes the response by ID
func (uc *DeleteResponseUseCase) Execute(ctx context.Context, cmd DeleteResponseCommand) error {
	if err := cmd.Caller.RequireAdmin(); err != nil {
		uc.logger.Warnw("delete response denied", "subject", cmd.Caller.Subject(), "id", cmd.ID)
		return err
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.responseRepo.GetByID(txCtx, cmd.ID); err != nil {
			return err
		}
		return uc.responseRepo.Delete(txCtx, cmd.ID)
	})
	if txErr != nil {
		if stderrors.Is(txErr, survey.ErrResponseNotFound) {
			return errors.NewNotFoundError("Survey response not found")
		}
		uc.logger.Errorw("failed to delete survey response", "error", txErr, "id", cmd.ID)
		return fmt.Errorf("failed to delete survey response: %w", txErr)
	}

	uc.logger.Infow("survey response deleted", "id", cmd.ID, "subject", cmd.Caller.Subject())
	return nil
}
