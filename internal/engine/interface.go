// Package engine composes the mechanic builder, cost calculators and display derivers into one
// evaluation per creator. It holds no state and performs no I/O; the catalog is passed in.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-mechanics/internal/engine Engine

import (
	"context"
)

// Engine evaluates powers, techniques and items against a catalog
type Engine interface {
	// Creators
	EvaluatePower(ctx context.Context, input *EvaluatePowerInput) (*EvaluatePowerOutput, error)
	EvaluateTechnique(ctx context.Context, input *EvaluateTechniqueInput) (*EvaluateTechniqueOutput, error)
	EvaluateItem(ctx context.Context, input *EvaluateItemInput) (*EvaluateItemOutput, error)

	// Item pricing
	ResolveRarity(ctx context.Context, input *ResolveRarityInput) (*ResolveRarityOutput, error)
}
