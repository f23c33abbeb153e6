package migration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/shared/logger"
)

// LocationSeed is one catalog entry in a seed file.
type LocationSeed struct {
	Name           string `yaml:"name"`
	SubRegionCount int    `yaml:"sub_region_count"`
}

type seedFile struct {
	Locations []LocationSeed `yaml:"locations"`
}

// SeedResult counts what a seed run did.
type SeedResult struct {
	Created int
	Skipped int
}

// ParseLocationSeeds decodes a YAML document of the form
//
//	locations:
//	  - name: Kottayam
//	    sub_region_count: 12
func ParseLocationSeeds(r io.Reader) ([]LocationSeed, error) {
	var file seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	return file.Locations, nil
}

// LoadLocationSeeds reads and parses a seed file from disk.
func LoadLocationSeeds(path string) ([]LocationSeed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return ParseLocationSeeds(f)
}

// SeedLocations creates every seed whose name is not yet in the catalog.
// Invalid entries stop the run; entries created before it are kept.
func SeedLocations(ctx context.Context, repo location.Repository, seeds []LocationSeed, log logger.Interface) (SeedResult, error) {
	var result SeedResult

	for i, seed := range seeds {
		loc, err := location.NewLocation(seed.Name, seed.SubRegionCount)
		if err != nil {
			return result, fmt.Errorf("invalid seed entry %d (%q): %w", i+1, seed.Name, err)
		}

		exists, err := repo.ExistsByName(ctx, loc.Name())
		if err != nil {
			return result, fmt.Errorf("failed to check location %q: %w", loc.Name(), err)
		}
		if exists {
			result.Skipped++
			continue
		}

		if err := repo.Create(ctx, loc); err != nil {
			if errors.Is(err, location.ErrDuplicateName) {
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("failed to create location %q: %w", loc.Name(), err)
		}
		result.Created++
	}

	log.Infow("location seed completed", "created", result.Created, "skipped", result.Skipped)
	return result, nil
}
