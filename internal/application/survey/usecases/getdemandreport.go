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

type GetDemandReportQuery struct {
	Caller   authorization.Capability
	Location string
}

// GetDemandReportUseCase ranks item mentions by demand. The report is
// recomputed from the stored data on every call.
type GetDemandReportUseCase struct {
	responseRepo survey.ResponseRepository
	itemRepo     survey.ItemRepository
	logger       logger.Interface
}

// NewGetDemandReportUseCase creates a new GetDemandReportUseCase
func NewGetDemandReportUseCase(responseRepo survey.ResponseRepository, itemRepo survey.ItemRepository, logger logger.Interface) *GetDemandReportUseCase {
	return &GetDemandReportUseCase{
		responseRepo: responseRepo,
		itemRepo:     itemRepo,
		logger:       logger,
	}
}

// Execute builds the report for the requested scope
func (uc *GetDemandReportUseCase) Execute(ctx context.Context, query GetDemandReportQuery) (*dto.DemandReportDTO, error) {
	if err := query.Caller.RequireAdmin(); err != nil {
		uc.logger.Warnw("demand report denied", "subject", query.Caller.Subject())
		return nil, err
	}

	scope := demand.ParseScope(query.Location)
	filter := survey.ListFilter{Location: scope.Location()}

	names, err := uc.itemRepo.ListNames(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list item names", "error", err, "scope", scope.String())
		return nil, errors.NewFetchError(constants.ErrMsgLoadFailed, err, "items")
	}

	responses, err := uc.responseRepo.ListWithItems(ctx, filter)
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

	return &dto.DemandReportDTO{
		Scope:          scope.String(),
		TotalResponses: len(responses),
		LocationCount:  len(locations),
		UniqueItems:    demand.UniqueCount(names),
		Top:            dto.ToDemandEntryDTOs(demand.Aggregate(names, demand.TopN)),
		Locations:      locations,
	}, nil
}
