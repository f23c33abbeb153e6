package usecases

import (
	"context"

	"demandsurvey/internal/application/survey/dto"
	"demandsurvey/internal/domain/survey"
)

// TextSanitizer strips markup from free-text form input
type TextSanitizer interface {
	Sanitize(s string) string
}

// DraftStore keeps form sessions between requests.
// Get returns survey.ErrDraftNotFound for missing or expired drafts.
type DraftStore interface {
	Save(ctx context.Context, draft *survey.Draft) error
	Get(ctx context.Context, id string) (*survey.Draft, error)
}

// TransactionRunner runs fn inside one database transaction
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SubmitSurveyExecutor interface {
	Execute(ctx context.Context, cmd SubmitSurveyCommand) (*dto.SubmitResult, error)
}

type SubmitDraftExecutor interface {
	Execute(ctx context.Context, cmd SubmitDraftCommand) (*SubmitDraftResult, error)
}

type ListResponsesExecutor interface {
	Execute(ctx context.Context, query ListResponsesQuery) (*dto.ResponseListDTO, error)
}

type UpdateResponseExecutor interface {
	Execute(ctx context.Context, cmd UpdateResponseCommand) (*dto.ResponseDTO, error)
}

type DeleteResponseExecutor interface {
	Execute(ctx context.Context, cmd DeleteResponseCommand) error
}

type GetDemandReportExecutor interface {
	Execute(ctx context.Context, query GetDemandReportQuery) (*dto.DemandReportDTO, error)
}

// DraftManager edits server-held form drafts
type DraftManager interface {
	Create(ctx context.Context) (*dto.DraftDTO, error)
	Get(ctx context.Context, id string) (*dto.DraftDTO, error)
	UpdateFields(ctx context.Context, id string, req dto.UpdateDraftRequest) (*dto.DraftDTO, error)
	SelectLocation(ctx context.Context, id, name string) (*dto.DraftDTO, error)
	SelectSubRegion(ctx context.Context, id string, subRegion int) (*dto.DraftDTO, error)
	AppendSlot(ctx context.Context, id string) (*dto.DraftDTO, error)
	UpdateSlot(ctx context.Context, id string, index int, text string) (*dto.DraftDTO, error)
	RemoveSlot(ctx context.Context, id string, index int) (*dto.DraftDTO, error)
}

var _ DraftManager = (*ManageDraftUseCase)(nil)
