package usecases

import (
	"context"

	"demandsurvey/internal/application/survey/dto"
	"demandsurvey/internal/domain/demand"
	"demandsurvey/internal/domain/survey"
	"demandsurvey/internal/shared/authorization"
	"demandsurvey/internal/shared/constants"
	"demandsurvey/internal/shared/errors"
	"demandsurvey/internal/shared/logger"
)

type ListResponsesQuery struct {
	Caller   authorization.Capability
	Location string
}

// ListResponsesUseCase lists stored responses with their items, newest first
type ListResponsesUseCase struct {
	responseRepo survey.ResponseRepository
	logger       logger.Interface
}

// NewListResponsesUseCase creates a new ListResponsesUseCase
func NewListResponsesUseCase(responseRepo survey.ResponseRepository, logger logger.Interface) *ListResponsesUseCase {
	return &ListResponsesUseCase{responseRepo: responseRepo, logger: logger}
}

// Execute lists responses in the requested scope plus every location value
// present in the data, for the filter control.
func (uc *ListResponsesUseCase) Execute(ctx context.Context, query ListResponsesQuery) (*dto.ResponseListDTO, error) {
	if err := query.Caller.RequireAdmin(); err != nil {
		uc.logger.Warnw("list responses denied", "subject", query.Caller.Subject())
		return nil, err
	}

	scope := demand.ParseScope(query.Location)

	responses, err := uc.responseRepo.ListWithItems(ctx, survey.ListFilter{Location: scope.Location()})
	if err != nil {
		uc.logger.Errorw("failed to list survey responses", "error", err, "scope", scope.String())
		return nil, errors.NewFetchError(constants.ErrMsgLoadFailed, err, "responses")
	}

	locations, err := uc.responseRepo.ListLocations(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list response locations", "error", err)
		return nil, errors.NewFetchError(constants.ErrMsgLoadFailed, err, "locations")
	}
	if locations == nil {
		locations = []string{}
	}

	return &dto.ResponseListDTO{
		Scope:     scope.String(),
		Responses: dto.ToResponseDTOs(responses),
		Locations: locations,
	}, nil
}
