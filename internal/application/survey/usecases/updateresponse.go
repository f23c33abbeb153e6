package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"demandsurvey/internal/application/survey/dto"
	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/domain/survey"
	"demandsurvey/internal/shared/authorization"
	"demandsurvey/internal/shared/constants"
	"demandsurvey/internal/shared/errors"
	"demandsurvey/internal/shared/logger"
)

type UpdateResponseCommand struct {
	Caller authorization.Capability
	ID     uint
	Raw    survey.RawSubmission
}

// UpdateResponseUseCase edits the respondent fields of a stored response.
// Items are not editable.
type UpdateResponseUseCase struct {
	responseRepo survey.ResponseRepository
	locationRepo location.Repository
	validator    *survey.Validator
	sanitizer    TextSanitizer
	logger       logger.Interface
}

// NewUpdateResponseUseCase creates a new UpdateResponseUseCase
func NewUpdateResponseUseCase(
	responseRepo survey.ResponseRepository,
	locationRepo location.Repository,
	validator *survey.Validator,
	sanitizer TextSanitizer,
	logger logger.Interface,
) *UpdateResponseUseCase {
	return &UpdateResponseUseCase{
		responseRepo: responseRepo,
		locationRepo: locationRepo,
		validator:    validator,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

// Execute re-validates the respondent against the current catalog and saves it
func (uc *UpdateResponseUseCase) Execute(ctx context.Context, cmd UpdateResponseCommand) (*dto.ResponseDTO, error) {
	if err := cmd.Caller.RequireAdmin(); err != nil {
		uc.logger.Warnw("update response denied", "subject", cmd.Caller.Subject(), "id", cmd.ID)
		return nil, err
	}

	response, err := uc.responseRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		if stderrors.Is(err, survey.ErrResponseNotFound) {
			return nil, errors.NewNotFoundError("Survey response not found")
		}
		uc.logger.Errorw("failed to get survey response", "error", err, "id", cmd.ID)
		return nil, fmt.Errorf("failed to get survey response: %w", err)
	}

	locations, err := uc.locationRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load location catalog", "error", err)
		return nil, errors.NewFetchError(constants.ErrMsgLoadFailed, err, "locations")
	}

	raw := cmd.Raw
	if uc.sanitizer != nil {
		raw.Name = uc.sanitizer.Sanitize(raw.Name)
	}

	respondent, fieldErrs := uc.validator.ValidateRespondent(raw, location.NewDirectory(locations))
	if len(fieldErrs) > 0 {
		return nil, errors.NewFieldValidationError("Validation failed", fieldErrs)
	}

	response.EditRespondent(*respondent)
	if err := uc.responseRepo.Update(ctx, response); err != nil {
		uc.logger.Errorw("failed to update survey response", "error", err, "id", cmd.ID)
		return nil, fmt.Errorf("failed to update survey response: %w", err)
	}

	uc.logger.Infow("survey response updated", "id", cmd.ID, "subject", cmd.Caller.Subject())
	return dto.ToResponseDTO(response), nil
}
