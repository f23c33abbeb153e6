package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/domain/survey"
	"demandsurvey/internal/shared/authorization"
)

var (
	admin  = authorization.Admin("admin@test")
	denied = authorization.Denied("viewer@test")
)

func catalogRepo(t *testing.T) *mockLocationRepository {
	t.Helper()
	now := time.Now()
	kottayam, err := location.ReconstructLocation(1, "Kottayam", 12, now, now)
	require.NoError(t, err)
	aluva, err := location.ReconstructLocation(2, "Aluva", 4, now, now)
	require.NoError(t, err)
	return &mockLocationRepository{
		ListFunc: func(ctx context.Context) ([]*location.Location, error) {
			return []*location.Location{kottayam, aluva}, nil
		},
	}
}

func validRaw() survey.RawSubmission {
	return survey.RawSubmission{
		Name:      "Anu Thomas",
		Mobile:    "9876543210",
		Location:  "Kottayam",
		SubRegion: "3",
		Role:      "customer",
		Items:     []string{"Soap", "Rice", "Cooking oil"},
	}
}

func storedResponse(t *testing.T, id uint, loc string, items ...string) *survey.Response {
	t.Helper()
	mentions := make([]*survey.ItemMention, 0, len(items))
	for i, name := range items {
		mentions = append(mentions, survey.ReconstructItemMention(uint(i+1), id, name, survey.ItemTypeProduct))
	}
	created := time.Now().Add(-time.Duration(id) * time.Minute)
	resp, err := survey.ReconstructResponse(id, survey.Respondent{
		Name: "Stored", Mobile: "9876543210", Location: loc, SubRegion: 1, Role: survey.RoleCustomer,
	}, mentions, created, created)
	require.NoError(t, err)
	return resp
}
