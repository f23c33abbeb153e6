package usecases

import (
	"context"

	"demandsurvey/internal/application/location/dto"
)

type ListLocationsExecutor interface {
	Execute(ctx context.Context) ([]*dto.LocationDTO, error)
}

type CreateLocationExecutor interface {
	Execute(ctx context.Context, cmd CreateLocationCommand) (*dto.LocationDTO, error)
}

type UpdateLocationExecutor interface {
	Execute(ctx context.Context, cmd UpdateLocationCommand) (*dto.LocationDTO, error)
}

type DeleteLocationExecutor interface {
	Execute(ctx context.Context, cmd DeleteLocationCommand) error
}
