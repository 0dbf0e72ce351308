// Package mechanics implements the orchestrator that fronts the cost engine: it loads catalogs,
// evaluates powers, techniques and items, previews damage rolls and persists saved builds.
package mechanics

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-mechanics/internal/engine"
	entities "github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
	"github.com/KirkDiggler/rpg-mechanics/internal/errors"
	"github.com/KirkDiggler/rpg-mechanics/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-mechanics/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-mechanics/internal/repositories/builds"
	"github.com/KirkDiggler/rpg-mechanics/internal/repositories/catalog"
)

// Event types published on the bus
const (
	EventCostCalculated = "mechanics.cost.calculated"
	EventBuildSaved     = "mechanics.build.saved"
)

// Event context keys
const (
	ContextKeyKind     = "kind"
	ContextKeyEnergy   = "energy"
	ContextKeyTP       = "tp"
	ContextKeyIP       = "ip"
	ContextKeyCurrency = "currency"
)

// Config holds the dependencies for the mechanics orchestrator
type Config struct {
	Engine      engine.Engine
	CatalogRepo catalog.Repository
	BuildRepo   builds.Repository
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	// Clock defaults to the real clock
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.BuildRepo == nil {
		vb.RequiredField("BuildRepo")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements Service
type Orchestrator struct {
	engine      engine.Engine
	catalogRepo catalog.Repository
	buildRepo   builds.Repository
	eventBus    events.EventBus
	idGen       idgen.Generator
	clock       clock.Clock
}

// New creates a mechanics orchestrator with the provided dependencies
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		engine:      cfg.Engine,
		catalogRepo: cfg.CatalogRepo,
		buildRepo:   cfg.BuildRepo,
		eventBus:    cfg.EventBus,
		idGen:       cfg.IDGenerator,
		clock:       c,
	}, nil
}

func (o *Orchestrator) loadParts(ctx context.Context, kind entities.Kind) ([]entities.PartDefinition, error) {
	out, err := o.catalogRepo.GetParts(ctx, catalog.GetPartsInput{Kind: kind})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s catalog", kind)
	}
	return out.Parts, nil
}

// publish reports an event; a failing handler never fails the calculation
func (o *Orchestrator) publish(ctx context.Context, eventType string, build *entities.Build) {
	event := events.NewGameEvent(eventType, entities.WrapBuild(build), nil)
	event.Context().Set(ContextKeyKind, string(build.Kind))
	event.Context().Set(ContextKeyEnergy, build.Cost.TotalEnergy)
	event.Context().Set(ContextKeyTP, build.Cost.TotalTP)
	event.Context().Set(ContextKeyIP, build.Cost.TotalIP)
	event.Context().Set(ContextKeyCurrency, build.Cost.TotalCurrency)

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish mechanics event",
			"event_type", eventType,
			"kind", build.Kind,
			"error", err.Error())
	}
}

// CalculatePower builds (when configured) and costs a power
func (o *Orchestrator) CalculatePower(ctx context.Context, input *CalculatePowerInput) (*CalculatePowerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	parts, err := o.loadParts(ctx, entities.KindPower)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.EvaluatePower(ctx, &engine.EvaluatePowerInput{
		Parts:      parts,
		Config:     input.Config,
		References: input.References,
		Damage:     input.Damage,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate power")
	}

	o.publish(ctx, EventCostCalculated, &entities.Build{Kind: entities.KindPower, Cost: result.Cost})

	slog.InfoContext(ctx, "Power cost calculated",
		"parts", len(result.References),
		"energy", result.Cost.TotalEnergy,
		"tp", result.Cost.TotalTP,
	)

	return &CalculatePowerOutput{
		References: result.References,
		Cost:       result.Cost,
		Summary:    result.Summary,
	}, nil
}

// CalculateTechnique builds (when configured) and costs a technique
func (o *Orchestrator) CalculateTechnique(
	ctx context.Context,
	input *CalculateTechniqueInput,
) (*CalculateTechniqueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	parts, err := o.loadParts(ctx, entities.KindTechnique)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.EvaluateTechnique(ctx, &engine.EvaluateTechniqueInput{
		Parts:      parts,
		Config:     input.Config,
		References: input.References,
		Damage:     input.Damage,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate technique")
	}

	o.publish(ctx, EventCostCalculated, &entities.Build{Kind: entities.KindTechnique, Cost: result.Cost})

	slog.InfoContext(ctx, "Technique cost calculated",
		"parts", len(result.References),
		"energy", result.Cost.TotalEnergy,
		"tp", result.Cost.TotalTP,
	)

	return &CalculateTechniqueOutput{
		References: result.References,
		Cost:       result.Cost,
		Summary:    result.Summary,
	}, nil
}

// CalculateItem totals an item's properties and resolves its rarity
func (o *Orchestrator) CalculateItem(ctx context.Context, input *CalculateItemInput) (*CalculateItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	parts, err := o.loadParts(ctx, entities.KindItem)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.EvaluateItem(ctx, &engine.EvaluateItemInput{
		Parts:      parts,
		References: input.References,
		Damage:     input.Damage,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate item")
	}

	o.publish(ctx, EventCostCalculated, &entities.Build{
		Kind:         entities.KindItem,
		Cost:         result.Cost,
		Rarity:       result.Rarity.Rarity,
		CurrencyCost: result.Rarity.CurrencyCost,
	})

	slog.InfoContext(ctx, "Item cost calculated",
		"parts", len(result.References),
		"ip", result.Cost.TotalIP,
		"rarity", result.Rarity.Rarity,
		"currency_cost", result.Rarity.CurrencyCost,
	)

	return &CalculateItemOutput{
		References: result.References,
		Cost:       result.Cost,
		Rarity:     result.Rarity,
		Summary:    result.Summary,
	}, nil
}

// ResolveRarity maps item totals to a rarity tier and currency cost
func (o *Orchestrator) ResolveRarity(ctx context.Context, input *ResolveRarityInput) (*ResolveRarityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := o.engine.ResolveRarity(ctx, &engine.ResolveRarityInput{
		TotalCurrency: input.TotalCurrency,
		TotalIP:       input.TotalIP,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve rarity")
	}

	return &ResolveRarityOutput{Result: result.Result}, nil
}

// RollDamage rolls each configured damage row once
func (o *Orchestrator) RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error) {
	if input == nil || len(input.Damage) == 0 {
		return nil, errors.InvalidArgument("damage is required")
	}

	out := &RollDamageOutput{Rolls: make([]DamageRoll, 0, len(input.Damage))}
	for i, d := range input.Damage {
		if !d.IsValid() {
			return nil, errors.InvalidArgumentf("damage %d is not rollable: %s", i, d.String())
		}

		roll, err := dice.NewRoll(d.Amount, d.Size)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create roll for %s", d.String())
		}

		total := roll.GetValue()
		out.Rolls = append(out.Rolls, DamageRoll{
			Damage:      d,
			Total:       total,
			Description: roll.GetDescription(),
		})
		out.Total += total
	}

	slog.InfoContext(ctx, "Damage rolled",
		"rows", len(out.Rolls),
		"total", out.Total,
	)

	return out, nil
}

// SaveBuild recomputes a build's cost from the current catalog and stores it
func (o *Orchestrator) SaveBuild(ctx context.Context, input *SaveBuildInput) (*SaveBuildOutput, error) {
	if input == nil || input.Build == nil {
		return nil, errors.InvalidArgument("build is required")
	}
	build := *input.Build
	if build.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	if build.Name == "" {
		return nil, errors.InvalidArgument("build name is required")
	}
	if !build.Kind.IsValid() {
		return nil, errors.InvalidArgumentf("unknown build kind %q", build.Kind)
	}

	if err := o.evaluateBuild(ctx, &build); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	build.UpdatedAt = now

	if build.ID == "" {
		build.ID = o.idGen.Generate()
		build.CreatedAt = now

		if _, err := o.buildRepo.Create(ctx, builds.CreateInput{Build: &build}); err != nil {
			return nil, errors.Wrap(err, "failed to create build")
		}
	} else {
		existing, err := o.buildRepo.Get(ctx, builds.GetInput{ID: build.ID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to get build")
		}
		build.CreatedAt = existing.Build.CreatedAt

		if _, err := o.buildRepo.Update(ctx, builds.UpdateInput{Build: &build}); err != nil {
			return nil, errors.Wrap(err, "failed to update build")
		}
	}

	o.publish(ctx, EventBuildSaved, &build)

	slog.InfoContext(ctx, "Build saved",
		"build_id", build.ID,
		"owner_id", build.OwnerID,
		"kind", build.Kind,
	)

	return &SaveBuildOutput{Build: &build}, nil
}

// evaluateBuild replaces the build's parts with their saved shape and fills in its cost
func (o *Orchestrator) evaluateBuild(ctx context.Context, build *entities.Build) error {
	parts, err := o.loadParts(ctx, build.Kind)
	if err != nil {
		return err
	}
	refs := toSavedShape(build.Parts)

	switch build.Kind {
	case entities.KindPower:
		result, err := o.engine.EvaluatePower(ctx, &engine.EvaluatePowerInput{
			Parts:      parts,
			References: refs,
			Damage:     build.Damage,
		})
		if err != nil {
			return errors.Wrap(err, "failed to evaluate power")
		}
		build.Parts, build.Cost = result.References, result.Cost
	case entities.KindTechnique:
		in := &engine.EvaluateTechniqueInput{Parts: parts, References: refs}
		if len(build.Damage) > 0 {
			in.Damage = &build.Damage[0]
		}
		result, err := o.engine.EvaluateTechnique(ctx, in)
		if err != nil {
			return errors.Wrap(err, "failed to evaluate technique")
		}
		build.Parts, build.Cost = result.References, result.Cost
	case entities.KindItem:
		result, err := o.engine.EvaluateItem(ctx, &engine.EvaluateItemInput{
			Parts:      parts,
			References: refs,
			Damage:     build.Damage,
		})
		if err != nil {
			return errors.Wrap(err, "failed to evaluate item")
		}
		build.Parts, build.Cost = result.References, result.Cost
		build.Rarity, build.CurrencyCost = result.Rarity.Rarity, result.Rarity.CurrencyCost
	}
	return nil
}

// toSavedShape drops inline definitions, keeping their id and name as the reference
func toSavedShape(refs []entities.PartReference) []entities.PartReference {
	out := make([]entities.PartReference, len(refs))
	for i, ref := range refs {
		if ref.Part != nil {
			if ref.ID == nil {
				id := ref.Part.ID
				ref.ID = &id
			}
			if ref.Name == "" {
				ref.Name = ref.Part.Name
			}
			ref.Part = nil
		}
		out[i] = ref
	}
	return out
}

// GetBuild retrieves a saved build
func (o *Orchestrator) GetBuild(ctx context.Context, input *GetBuildInput) (*GetBuildOutput, error) {
	if input == nil || input.BuildID == "" {
		return nil, errors.InvalidArgument("build ID is required")
	}

	out, err := o.buildRepo.Get(ctx, builds.GetInput{ID: input.BuildID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get build")
	}

	return &GetBuildOutput{Build: out.Build}, nil
}

// ListBuilds lists an owner's builds, optionally of a single kind
func (o *Orchestrator) ListBuilds(ctx context.Context, input *ListBuildsInput) (*ListBuildsOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	if input.Kind != "" && !input.Kind.IsValid() {
		return nil, errors.InvalidArgumentf("unknown build kind %q", input.Kind)
	}

	out, err := o.buildRepo.ListByOwner(ctx, builds.ListByOwnerInput{
		OwnerID: input.OwnerID,
		Kind:    input.Kind,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list builds")
	}

	return &ListBuildsOutput{Builds: out.Builds}, nil
}

// DeleteBuild removes a saved build
func (o *Orchestrator) DeleteBuild(ctx context.Context, input *DeleteBuildInput) (*DeleteBuildOutput, error) {
	if input == nil || input.BuildID == "" {
		return nil, errors.InvalidArgument("build ID is required")
	}

	if _, err := o.buildRepo.Delete(ctx, builds.DeleteInput{ID: input.BuildID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete build")
	}

	slog.InfoContext(ctx, "Build deleted", "build_id", input.BuildID)

	return &DeleteBuildOutput{}, nil
}

var _ Service = (*Orchestrator)(nil)
