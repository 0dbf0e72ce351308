package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-mechanics/internal/engine/builder"
	"github.com/KirkDiggler/rpg-mechanics/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-mechanics/internal/engine/cost"
	"github.com/KirkDiggler/rpg-mechanics/internal/engine/display"
	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
	"github.com/KirkDiggler/rpg-mechanics/internal/errors"
)

type engine struct {
}

// Config configures the engine
type Config struct {
}

// Validate validates the config
func (cfg *Config) Validate() error {
	return nil
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{}, nil
}

func (e *engine) EvaluatePower(_ context.Context, input *EvaluatePowerInput) (*EvaluatePowerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	damage := input.Damage
	var refs []mechanics.PartReference
	if input.Config != nil {
		refs = builder.BuildPower(input.Parts, *input.Config)
		damage = input.Config.Damage
	} else {
		refs = catalog.Normalize(input.References)
	}

	return &EvaluatePowerOutput{
		References: refs,
		Cost:       cost.CalculatePowerCosts(refs, input.Parts),
		Summary: PowerSummary{
			ActionType: display.ActionType(refs, input.Parts),
			Range:      display.PowerRange(refs, input.Parts),
			Area:       display.PowerArea(refs, input.Parts),
			Duration:   display.PowerDuration(refs, input.Parts),
			Damage:     display.Damage(damage),
		},
	}, nil
}

func (e *engine) EvaluateTechnique(
	_ context.Context,
	input *EvaluateTechniqueInput,
) (*EvaluateTechniqueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	damage := input.Damage
	var refs []mechanics.PartReference
	if input.Config != nil {
		refs = builder.BuildTechnique(input.Parts, *input.Config)
		damage = input.Config.Damage
	} else {
		refs = catalog.Normalize(input.References)
	}

	out := &EvaluateTechniqueOutput{
		References: refs,
		Cost:       cost.CalculateTechniqueCosts(refs, input.Parts),
		Summary: TechniqueSummary{
			ActionType: display.ActionType(refs, input.Parts),
		},
	}
	if damage != nil {
		out.Summary.Damage = display.Damage([]mechanics.DamageConfig{*damage})
	}
	return out, nil
}

func (e *engine) EvaluateItem(_ context.Context, input *EvaluateItemInput) (*EvaluateItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	refs := catalog.Normalize(input.References)
	totals := cost.CalculateItemCosts(refs, input.Parts)
	rarity := cost.CalculateCurrencyCostAndRarity(totals.TotalCurrency, totals.TotalIP)

	return &EvaluateItemOutput{
		References: refs,
		Cost:       totals,
		Rarity:     rarity,
		Summary: ItemSummary{
			Range:           display.ItemRange(refs, input.Parts),
			DamageReduction: display.ItemDamageReduction(refs, input.Parts),
			Damage:          display.Damage(input.Damage),
			Rarity:          rarity.Rarity,
		},
	}, nil
}

func (e *engine) ResolveRarity(_ context.Context, input *ResolveRarityInput) (*ResolveRarityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &ResolveRarityOutput{
		Result: cost.CalculateCurrencyCostAndRarity(input.TotalCurrency, input.TotalIP),
	}, nil
}
