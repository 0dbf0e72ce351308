package engine

import (
	"github.com/KirkDiggler/rpg-mechanics/internal/engine/builder"
	"github.com/KirkDiggler/rpg-mechanics/internal/engine/cost"
	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
)

// EvaluatePowerInput carries a power either as creator configuration or as a saved reference list.
// When Config is set the references are generated from it and References is ignored.
type EvaluatePowerInput struct {
	Parts      []mechanics.PartDefinition
	Config     *builder.PowerConfig
	References []mechanics.PartReference
	Damage     []mechanics.DamageConfig
}

// PowerSummary holds the display strings of a power
type PowerSummary struct {
	ActionType string `json:"actionType"`
	Range      string `json:"range"`
	Area       string `json:"area"`
	Duration   string `json:"duration"`
	Damage     string `json:"damage,omitempty"`
}

// EvaluatePowerOutput contains the canonical references, costs and summary of a power
type EvaluatePowerOutput struct {
	References []mechanics.PartReference
	Cost       mechanics.CostResult
	Summary    PowerSummary
}

// EvaluateTechniqueInput carries a technique as configuration or saved references
type EvaluateTechniqueInput struct {
	Parts      []mechanics.PartDefinition
	Config     *builder.TechniqueConfig
	References []mechanics.PartReference
	Damage     *mechanics.DamageConfig
}

// TechniqueSummary holds the display strings of a technique
type TechniqueSummary struct {
	ActionType string `json:"actionType"`
	Damage     string `json:"damage,omitempty"`
}

// EvaluateTechniqueOutput contains the canonical references, costs and summary of a technique
type EvaluateTechniqueOutput struct {
	References []mechanics.PartReference
	Cost       mechanics.CostResult
	Summary    TechniqueSummary
}

// EvaluateItemInput carries the selected item properties
type EvaluateItemInput struct {
	Parts      []mechanics.PartDefinition
	References []mechanics.PartReference
	Damage     []mechanics.DamageConfig
}

// ItemSummary holds the display values of an item
type ItemSummary struct {
	Range           string `json:"range"`
	DamageReduction int    `json:"damageReduction"`
	Damage          string `json:"damage,omitempty"`
	Rarity          string `json:"rarity"`
}

// EvaluateItemOutput contains totals, rarity and summary of an item
type EvaluateItemOutput struct {
	References []mechanics.PartReference
	Cost       mechanics.CostResult
	Rarity     cost.RarityResult
	Summary    ItemSummary
}

// ResolveRarityInput contains item totals
type ResolveRarityInput struct {
	TotalCurrency float64
	TotalIP       float64
}

// ResolveRarityOutput contains the resolved tier and currency cost
type ResolveRarityOutput struct {
	Result cost.RarityResult
}
