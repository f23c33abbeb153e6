package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"demandsurvey/internal/application/survey/dto"
	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/domain/survey"
	"demandsurvey/internal/shared/constants"
	"demandsurvey/internal/shared/errors"
	"demandsurvey/internal/shared/logger"
	"demandsurvey/internal/shared/utils"
)

type SubmitSurveyCommand struct {
	Raw survey.RawSubmission
}

// SubmitSurveyUseCase runs the intake pipeline for a one-shot submission
type SubmitSurveyUseCase struct {
	pipeline *submissionPipeline
}

// NewSubmitSurveyUseCase creates a new SubmitSurveyUseCase
func NewSubmitSurveyUseCase(
	responseRepo survey.ResponseRepository,
	itemRepo survey.ItemRepository,
	locationRepo location.Repository,
	validator *survey.Validator,
	sanitizer TextSanitizer,
	logger logger.Interface,
) *SubmitSurveyUseCase {
	return &SubmitSurveyUseCase{
		pipeline: newSubmissionPipeline(responseRepo, itemRepo, locationRepo, validator, sanitizer, logger),
	}
}

// Execute validates and persists a submission
func (uc *SubmitSurveyUseCase) Execute(ctx context.Context, cmd SubmitSurveyCommand) (*dto.SubmitResult, error) {
	return uc.pipeline.run(ctx, cmd.Raw)
}

// submissionPipeline is validate, then create the response, then insert its
// items. The two writes are not transactional: when the item insert fails
// the response stays behind and the failure is reported, not repaired.
type submissionPipeline struct {
	responseRepo survey.ResponseRepository
	itemRepo     survey.ItemRepository
	locationRepo location.Repository
	validator    *survey.Validator
	sanitizer    TextSanitizer
	logger       logger.Interface
}

func newSubmissionPipeline(
	responseRepo survey.ResponseRepository,
	itemRepo survey.ItemRepository,
	locationRepo location.Repository,
	validator *survey.Validator,
	sanitizer TextSanitizer,
	logger logger.Interface,
) *submissionPipeline {
	return &submissionPipeline{
		responseRepo: responseRepo,
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
		validator:    validator,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

func (p *submissionPipeline) run(ctx context.Context, raw survey.RawSubmission) (*dto.SubmitResult, error) {
	raw, markupErrs := p.sanitize(raw)

	directory, err := p.catalog(ctx)
	if err != nil {
		return nil, err
	}

	sub, fieldErrs := p.validator.Validate(raw, directory)
	for field, msg := range fieldErrs {
		markupErrs.Add(field, msg)
	}
	fieldErrs = markupErrs
	if len(fieldErrs) > 0 {
		p.logger.Infow("survey submission rejected", "fields", len(fieldErrs))
		return nil, errors.NewFieldValidationError("Validation failed", fieldErrs)
	}

	response, err := survey.NewResponse(sub)
	if err != nil {
		p.logger.Errorw("failed to create survey response entity", "error", err)
		return nil, fmt.Errorf("failed to create survey response: %w", err)
	}

	if err := p.responseRepo.Create(ctx, response); err != nil {
		p.logger.Errorw("failed to save survey response", "error", err, "location", sub.Respondent.Location)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save survey response: %w", err)
	}

	items, err := survey.NewItemMentions(response.ID(), sub.Items)
	if err != nil {
		p.logger.Errorw("failed to build item mentions", "error", err, "response_id", response.ID())
		return nil, errors.NewPartialPersistenceError(constants.ErrMsgSubmitFailed, err,
			fmt.Sprintf("response %d has no items", response.ID()))
	}

	if err := p.itemRepo.CreateBatch(ctx, items); err != nil {
		p.logger.Errorw("survey response stored without items",
			"error", err,
			"response_id", response.ID(),
			"item_count", len(items),
		)
		return nil, errors.NewPartialPersistenceError(constants.ErrMsgSubmitFailed, err,
			fmt.Sprintf("response %d has no items", response.ID()))
	}

	p.logger.Infow("survey submitted successfully",
		"response_id", response.ID(),
		"location", sub.Respondent.Location,
		"mobile", utils.MaskMobile(sub.Respondent.Mobile),
		"item_count", len(items),
	)

	return &dto.SubmitResult{
		ResponseID:      response.ID(),
		ItemCount:       len(items),
		CreatedAt:       response.CreatedAt(),
		ConfirmationTTL: int(survey.ConfirmationWindow / time.Second),
	}, nil
}

func (p *submissionPipeline) catalog(ctx context.Context) (*location.Directory, error) {
	locations, err := p.locationRepo.List(ctx)
	if err != nil {
		p.logger.Errorw("failed to load location catalog", "error", err)
		return nil, errors.NewFetchError(constants.ErrMsgLoadFailed, err, "locations")
	}
	return location.NewDirectory(locations), nil
}

// sanitize strips markup from the free-text fields. An item that held text
// before sanitizing and is blank after it is reported rather than dropped.
func (p *submissionPipeline) sanitize(raw survey.RawSubmission) (survey.RawSubmission, survey.FieldErrors) {
	errs := survey.FieldErrors{}
	if p.sanitizer == nil {
		return raw, errs
	}
	items := make([]string, len(raw.Items))
	for i, item := range raw.Items {
		items[i] = p.sanitizer.Sanitize(item)
		if strings.TrimSpace(item) != "" && strings.TrimSpace(items[i]) == "" {
			errs.Add(survey.FieldItems, survey.MsgItemMarkupOnly)
		}
	}
	raw.Name = p.sanitizer.Sanitize(raw.Name)
	raw.Items = items
	return raw, errs
}
