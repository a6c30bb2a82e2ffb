// Package seed loads the bundled fish species catalogue.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/internal/service"
)

//go:embed species.json
var speciesJSON []byte

// Species parses the bundled catalogue.
func Species() ([]service.CreateFishSpeciesInput, error) {
	var out []service.CreateFishSpeciesInput
	if err := json.Unmarshal(speciesJSON, &out); err != nil {
		return nil, fmt.Errorf("parse species seed: %w", err)
	}
	return out, nil
}

type Result struct {
	Created int
	Skipped int
}

// SeedSpecies creates every catalogue entry through svc. Entries whose
// English name already exists are skipped, so reruns are harmless.
func SeedSpecies(ctx context.Context, svc *service.FishSpeciesService, l *zap.Logger) (Result, error) {
	items, err := Species()
	if err != nil {
		return Result{}, err
	}
	var res Result
	for _, in := range items {
		out, err := svc.Create(ctx, in)
		var dup *domain.AlreadyExistsError
		switch {
		case err == nil:
			res.Created++
			l.Info("species created", zap.Int64("id", out.ID), zap.String("name", out.NameEn))
		case errors.As(err, &dup):
			res.Skipped++
			l.Info("species exists, skipped", zap.String("name", in.NameEn))
		default:
			return res, fmt.Errorf("seed %s: %w", in.NameEn, err)
		}
	}
	return res, nil
}
