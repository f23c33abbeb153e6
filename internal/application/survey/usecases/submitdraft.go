package usecases

import (
	"context"
	"time"

	"demandsurvey/internal/application/survey/dto"
	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/domain/survey"
	"demandsurvey/internal/shared/logger"
)

type SubmitDraftCommand struct {
	DraftID string
}

type SubmitDraftResult struct {
	Submission *dto.SubmitResult `json:"submission"`
	Draft      *dto.DraftDTO     `json:"draft"`
}

// SubmitDraftUseCase submits a draft through the intake pipeline and, on
// full success, clears it and starts the confirmation window.
type SubmitDraftUseCase struct {
	pipeline *submissionPipeline
	store    DraftStore
	logger   logger.Interface
	now      func() time.Time
}

// NewSubmitDraftUseCase creates a new SubmitDraftUseCase
func NewSubmitDraftUseCase(
	responseRepo survey.ResponseRepository,
	itemRepo survey.ItemRepository,
	locationRepo location.Repository,
	validator *survey.Validator,
	sanitizer TextSanitizer,
	store DraftStore,
	logger logger.Interface,
) *SubmitDraftUseCase {
	return &SubmitDraftUseCase{
		pipeline: newSubmissionPipeline(responseRepo, itemRepo, locationRepo, validator, sanitizer, logger),
		store:    store,
		logger:   logger,
		now:      time.Now,
	}
}

// Execute submits the draft. On any failure the draft keeps its content so
// the respondent can correct and retry.
func (uc *SubmitDraftUseCase) Execute(ctx context.Context, cmd SubmitDraftCommand) (*SubmitDraftResult, error) {
	draft, err := loadDraft(ctx, uc.store, uc.logger, cmd.DraftID)
	if err != nil {
		return nil, err
	}

	result, err := uc.pipeline.run(ctx, draft.Raw())
	if err != nil {
		return nil, err
	}

	now := uc.now()
	draft.MarkSubmitted(now)
	if err := uc.store.Save(ctx, draft); err != nil {
		// the response is stored; only the form reset is lost
		uc.logger.Warnw("failed to reset draft after submission",
			"error", err,
			"draft_id", cmd.DraftID,
			"response_id", result.ResponseID,
		)
	}

	return &SubmitDraftResult{
		Submission: result,
		Draft:      dto.ToDraftDTO(draft, now),
	}, nil
}
