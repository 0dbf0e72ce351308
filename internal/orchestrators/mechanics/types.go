package mechanics

import (
	"context"

	"github.com/KirkDiggler/rpg-mechanics/internal/engine"
	"github.com/KirkDiggler/rpg-mechanics/internal/engine/builder"
	"github.com/KirkDiggler/rpg-mechanics/internal/engine/cost"
	entities "github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mechanicsmock github.com/KirkDiggler/rpg-mechanics/internal/orchestrators/mechanics Service

// Service defines the mechanics orchestrator interface
type Service interface {
	// Cost calculation
	CalculatePower(ctx context.Context, input *CalculatePowerInput) (*CalculatePowerOutput, error)
	CalculateTechnique(ctx context.Context, input *CalculateTechniqueInput) (*CalculateTechniqueOutput, error)
	CalculateItem(ctx context.Context, input *CalculateItemInput) (*CalculateItemOutput, error)
	ResolveRarity(ctx context.Context, input *ResolveRarityInput) (*ResolveRarityOutput, error)

	// Previews
	RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error)

	// Saved builds
	SaveBuild(ctx context.Context, input *SaveBuildInput) (*SaveBuildOutput, error)
	GetBuild(ctx context.Context, input *GetBuildInput) (*GetBuildOutput, error)
	ListBuilds(ctx context.Context, input *ListBuildsInput) (*ListBuildsOutput, error)
	DeleteBuild(ctx context.Context, input *DeleteBuildInput) (*DeleteBuildOutput, error)
}

// CalculatePowerInput is either creator configuration or a saved reference list
type CalculatePowerInput struct {
	Config     *builder.PowerConfig     `json:"config,omitempty"`
	References []entities.PartReference `json:"parts,omitempty"`
	Damage     []entities.DamageConfig  `json:"damage,omitempty"`
}

// CalculatePowerOutput contains the canonical parts, costs and display strings of a power
type CalculatePowerOutput struct {
	References []entities.PartReference `json:"parts"`
	Cost       entities.CostResult      `json:"cost"`
	Summary    engine.PowerSummary      `json:"summary"`
}

// CalculateTechniqueInput is either creator configuration or a saved reference list
type CalculateTechniqueInput struct {
	Config     *builder.TechniqueConfig `json:"config,omitempty"`
	References []entities.PartReference `json:"parts,omitempty"`
	Damage     *entities.DamageConfig   `json:"damage,omitempty"`
}

// CalculateTechniqueOutput contains the canonical parts, costs and display strings of a technique
type CalculateTechniqueOutput struct {
	References []entities.PartReference `json:"parts"`
	Cost       entities.CostResult      `json:"cost"`
	Summary    engine.TechniqueSummary  `json:"summary"`
}

// CalculateItemInput holds the selected item properties
type CalculateItemInput struct {
	References []entities.PartReference `json:"parts,omitempty"`
	Damage     []entities.DamageConfig  `json:"damage,omitempty"`
}

// CalculateItemOutput contains totals, rarity and display values of an item
type CalculateItemOutput struct {
	References []entities.PartReference `json:"parts"`
	Cost       entities.CostResult      `json:"cost"`
	Rarity     cost.RarityResult        `json:"rarity"`
	Summary    engine.ItemSummary       `json:"summary"`
}

// ResolveRarityInput contains item totals
type ResolveRarityInput struct {
	TotalCurrency float64 `json:"totalCurrency"`
	TotalIP       float64 `json:"totalIP"`
}

// ResolveRarityOutput contains the rarity tier and currency cost
type ResolveRarityOutput struct {
	Result cost.RarityResult `json:"result"`
}

// RollDamageInput lists the damage rows to roll
type RollDamageInput struct {
	Damage []entities.DamageConfig `json:"damage"`
}

// DamageRoll is the result of rolling one damage row
type DamageRoll struct {
	Damage      entities.DamageConfig `json:"damage"`
	Total       int                   `json:"total"`
	Description string                `json:"description"`
}

// RollDamageOutput contains each row's roll and the grand total
type RollDamageOutput struct {
	Rolls []DamageRoll `json:"rolls"`
	Total int          `json:"total"`
}

// SaveBuildInput creates a build when Build.ID is empty and replaces it otherwise
type SaveBuildInput struct {
	Build *entities.Build `json:"build"`
}

// SaveBuildOutput contains the stored build with its recomputed cost
type SaveBuildOutput struct {
	Build *entities.Build `json:"build"`
}

// GetBuildInput identifies a build
type GetBuildInput struct {
	BuildID string `json:"buildId"`
}

// GetBuildOutput contains the build
type GetBuildOutput struct {
	Build *entities.Build `json:"build"`
}

// ListBuildsInput filters an owner's builds
type ListBuildsInput struct {
	OwnerID string        `json:"ownerId"`
	Kind    entities.Kind `json:"kind,omitempty"`
}

// ListBuildsOutput contains the owner's builds, oldest first
type ListBuildsOutput struct {
	Builds []*entities.Build `json:"builds"`
}

// DeleteBuildInput identifies a build
type DeleteBuildInput struct {
	BuildID string `json:"buildId"`
}

// DeleteBuildOutput is empty on success
type DeleteBuildOutput struct{}
