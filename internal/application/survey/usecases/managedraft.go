package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"demandsurvey/internal/application/survey/dto"
	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/domain/survey"
	"demandsurvey/internal/shared/constants"
	"demandsurvey/internal/shared/errors"
	"demandsurvey/internal/shared/logger"
)

// ManageDraftUseCase edits server-held form sessions: respondent fields, the
// location selection and the item slots.
type ManageDraftUseCase struct {
	store        DraftStore
	locationRepo location.Repository
	logger       logger.Interface
	now          func() time.Time
}

// NewManageDraftUseCase creates a new ManageDraftUseCase
func NewManageDraftUseCase(store DraftStore, locationRepo location.Repository, logger logger.Interface) *ManageDraftUseCase {
	return &ManageDraftUseCase{
		store:        store,
		locationRepo: locationRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Create starts an empty draft with one item slot
func (uc *ManageDraftUseCase) Create(ctx context.Context) (*dto.DraftDTO, error) {
	draft, err := survey.NewDraft()
	if err != nil {
		uc.logger.Errorw("failed to create draft", "error", err)
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	if err := uc.store.Save(ctx, draft); err != nil {
		uc.logger.Errorw("failed to save draft", "error", err, "draft_id", draft.ID())
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	uc.logger.Debugw("draft created", "draft_id", draft.ID())
	return dto.ToDraftDTO(draft, uc.now()), nil
}

// Get returns the current state of a draft
func (uc *ManageDraftUseCase) Get(ctx context.Context, id string) (*dto.DraftDTO, error) {
	draft, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToDraftDTO(draft, uc.now()), nil
}

// UpdateFields sets any of name, mobile and role
func (uc *ManageDraftUseCase) UpdateFields(ctx context.Context, id string, req dto.UpdateDraftRequest) (*dto.DraftDTO, error) {
	return uc.mutate(ctx, id, func(d *survey.Draft) error {
		d.UpdateFields(req.Name, req.Mobile, req.Role)
		return nil
	})
}

// SelectLocation picks a location. A different location clears the sub-region.
func (uc *ManageDraftUseCase) SelectLocation(ctx context.Context, id, name string) (*dto.DraftDTO, error) {
	return uc.mutate(ctx, id, func(d *survey.Draft) error {
		d.SelectLocation(name)
		return nil
	})
}

// SelectSubRegion picks a sub-region within the selected location's bounds
func (uc *ManageDraftUseCase) SelectSubRegion(ctx context.Context, id string, subRegion int) (*dto.DraftDTO, error) {
	locations, err := uc.locationRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load location catalog", "error", err)
		return nil, errors.NewFetchError(constants.ErrMsgLoadFailed, err, "locations")
	}
	directory := location.NewDirectory(locations)

	return uc.mutate(ctx, id, func(d *survey.Draft) error {
		return d.SelectSubRegion(directory, subRegion)
	})
}

// AppendSlot adds an empty item slot
func (uc *ManageDraftUseCase) AppendSlot(ctx context.Context, id string) (*dto.DraftDTO, error) {
	return uc.mutate(ctx, id, func(d *survey.Draft) error {
		d.AppendSlot()
		return nil
	})
}

// UpdateSlot replaces the text of one item slot
func (uc *ManageDraftUseCase) UpdateSlot(ctx context.Context, id string, index int, text string) (*dto.DraftDTO, error) {
	return uc.mutate(ctx, id, func(d *survey.Draft) error {
		return d.UpdateSlot(index, text)
	})
}

// RemoveSlot removes one item slot. The last slot is kept.
func (uc *ManageDraftUseCase) RemoveSlot(ctx context.Context, id string, index int) (*dto.DraftDTO, error) {
	return uc.mutate(ctx, id, func(d *survey.Draft) error {
		return d.RemoveSlot(index)
	})
}

func (uc *ManageDraftUseCase) mutate(ctx context.Context, id string, fn func(d *survey.Draft) error) (*dto.DraftDTO, error) {
	draft, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return nil, translateDraftError(err)
	}
	if err := uc.store.Save(ctx, draft); err != nil {
		uc.logger.Errorw("failed to save draft", "error", err, "draft_id", id)
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return dto.ToDraftDTO(draft, uc.now()), nil
}

func (uc *ManageDraftUseCase) load(ctx context.Context, id string) (*survey.Draft, error) {
	return loadDraft(ctx, uc.store, uc.logger, id)
}

func loadDraft(ctx context.Context, store DraftStore, log logger.Interface, id string) (*survey.Draft, error) {
	draft, err := store.Get(ctx, id)
	if err != nil {
		if stderrors.Is(err, survey.ErrDraftNotFound) {
			return nil, errors.NewNotFoundError("Draft not found", id)
		}
		log.Errorw("failed to load draft", "error", err, "draft_id", id)
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	return draft, nil
}

func translateDraftError(err error) error {
	switch {
	case stderrors.Is(err, survey.ErrLastSlot):
		return errors.NewBadRequestError("At least one product/service field is required")
	case stderrors.Is(err, survey.ErrSlotOutOfRange):
		return errors.NewBadRequestError("Product/service field does not exist")
	case stderrors.Is(err, location.ErrUnknownLocation):
		return errors.NewFieldValidationError("Validation failed", map[string]string{
			survey.FieldLocation: "Please select a valid location",
		})
	case stderrors.Is(err, location.ErrSubRegionOutOfRange):
		return errors.NewFieldValidationError("Validation failed", map[string]string{
			survey.FieldSubRegion: "Sub-region is out of range for this location",
		})
	}
	return err
}
