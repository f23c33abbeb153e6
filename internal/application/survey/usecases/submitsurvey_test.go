package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/domain/survey"
	apperrors "demandsurvey/internal/shared/errors"
	"demandsurvey/internal/shared/logger"
	"demandsurvey/internal/shared/services/sanitize"
)

func newSubmitUseCase(t *testing.T, responses *mockResponseRepository, items *mockItemRepository) *SubmitSurveyUseCase {
	t.Helper()
	return NewSubmitSurveyUseCase(responses, items, catalogRepo(t), survey.NewValidator(), tagStripper{}, logger.Nop())
}

func TestSubmitSurveyUseCase_PersistsResponseThenOneBatch(t *testing.T) {
	var created *survey.Response
	responses := &mockResponseRepository{
		CreateFunc: func(ctx context.Context, r *survey.Response) error {
			created = r
			return r.SetID(42)
		},
	}
	items := &mockItemRepository{}

	result, err := newSubmitUseCase(t, responses, items).Execute(context.Background(), SubmitSurveyCommand{Raw: validRaw()})

	require.NoError(t, err)
	assert.Equal(t, 1, responses.createCalls)
	require.Len(t, items.batches, 1)
	require.Len(t, items.batches[0], 3)
	for _, m := range items.batches[0] {
		assert.Equal(t, uint(42), m.ResponseID())
		assert.Equal(t, survey.ItemTypeProduct, m.ItemType())
	}
	assert.Equal(t, "Anu Thomas", created.Respondent().Name)
	assert.Equal(t, uint(42), result.ResponseID)
	assert.Equal(t, 3, result.ItemCount)
	assert.Equal(t, 5, result.ConfirmationTTL)
}

func TestSubmitSurveyUseCase_ValidationFailurePersistsNothing(t *testing.T) {
	responses := &mockResponseRepository{}
	items := &mockItemRepository{}

	raw := validRaw()
	raw.Mobile = "5876543210"
	raw.Items = []string{"", "  "}

	_, err := newSubmitUseCase(t, responses, items).Execute(context.Background(), SubmitSurveyCommand{Raw: raw})

	require.True(t, apperrors.IsValidationError(err))
	fields := apperrors.GetAppError(err).Fields
	assert.Contains(t, fields, survey.FieldMobile)
	assert.Contains(t, fields, survey.FieldItems)
	assert.Zero(t, responses.calls)
	assert.Empty(t, items.batches)
}

func TestSubmitSurveyUseCase_SanitizesFreeText(t *testing.T) {
	var names []string
	items := &mockItemRepository{
		CreateBatchFunc: func(ctx context.Context, ms []*survey.ItemMention) error {
			for _, m := range ms {
				names = append(names, m.ItemName())
			}
			return nil
		},
	}

	raw := validRaw()
	raw.Items = []string{"<b>Soap</b>", "  "}

	result, err := newSubmitUseCase(t, &mockResponseRepository{}, items).Execute(context.Background(), SubmitSurveyCommand{Raw: raw})

	require.NoError(t, err)
	assert.Equal(t, 1, result.ItemCount)
	assert.Equal(t, []string{"Soap"}, names)
}

func TestSubmitSurveyUseCase_MarkupOnlyItemIsRejected(t *testing.T) {
	responses := &mockResponseRepository{}
	items := &mockItemRepository{}
	uc := NewSubmitSurveyUseCase(responses, items, catalogRepo(t), survey.NewValidator(), sanitize.NewTextService(), logger.Nop())

	raw := validRaw()
	raw.Items = []string{"Rice", "<Soap>"}

	_, err := uc.Execute(context.Background(), SubmitSurveyCommand{Raw: raw})

	require.True(t, apperrors.IsValidationError(err))
	fields := apperrors.GetAppError(err).Fields
	assert.Equal(t, survey.MsgItemMarkupOnly, fields[survey.FieldItems])
	assert.Len(t, fields, 1)
	assert.Zero(t, responses.calls)
	assert.Empty(t, items.batches)
}

func TestSubmitSurveyUseCase_ResponseCreateFailureSkipsItems(t *testing.T) {
	tests := []struct {
		name      string
		createErr error
		check     func(t *testing.T, err error)
	}{
		{
			name:      "store conflict passes through",
			createErr: apperrors.NewConflictError("duplicate response"),
			check: func(t *testing.T, err error) {
				assert.True(t, apperrors.IsConflictError(err))
			},
		},
		{
			name:      "plain failure is wrapped",
			createErr: errors.New("connection reset"),
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "failed to save survey response")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses := &mockResponseRepository{
				CreateFunc: func(ctx context.Context, r *survey.Response) error { return tt.createErr },
			}
			items := &mockItemRepository{}

			_, err := newSubmitUseCase(t, responses, items).Execute(context.Background(), SubmitSurveyCommand{Raw: validRaw()})

			require.Error(t, err)
			tt.check(t, err)
			assert.Empty(t, items.batches)
		})
	}
}

func TestSubmitSurveyUseCase_ItemFailureIsPartialPersistence(t *testing.T) {
	deleted := false
	responses := &mockResponseRepository{
		CreateFunc: func(ctx context.Context, r *survey.Response) error { return r.SetID(7) },
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	items := &mockItemRepository{
		CreateBatchFunc: func(ctx context.Context, ms []*survey.ItemMention) error {
			return errors.New("disk full")
		},
	}

	_, err := newSubmitUseCase(t, responses, items).Execute(context.Background(), SubmitSurveyCommand{Raw: validRaw()})

	require.True(t, apperrors.IsPartialPersistenceError(err))
	appErr := apperrors.GetAppError(err)
	assert.Equal(t, "Failed to submit survey", appErr.Message)
	assert.Contains(t, appErr.Details, "response 7")
	assert.ErrorContains(t, errors.Unwrap(appErr), "disk full")
	assert.False(t, deleted, "no compensating rollback")
}

func TestSubmitSurveyUseCase_CatalogLoadFailure(t *testing.T) {
	responses := &mockResponseRepository{}
	locations := &mockLocationRepository{
		ListFunc: func(ctx context.Context) ([]*location.Location, error) { return nil, errors.New("timeout") },
	}

	uc := NewSubmitSurveyUseCase(responses, &mockItemRepository{}, locations, survey.NewValidator(), nil, logger.Nop())
	_, err := uc.Execute(context.Background(), SubmitSurveyCommand{Raw: validRaw()})

	assert.True(t, apperrors.IsFetchError(err))
	assert.Zero(t, responses.calls)
}
