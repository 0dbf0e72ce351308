package testutils

import (
	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
)

// Ids of the user-selectable sample parts that are not builder markers
const (
	FlightPartID        = 40
	LoreNotePartID      = 41
	PreciseStrikePartID = 42
	KeenEdgePartID      = 43

	// TestOwnerID is the default owner of build fixtures
	TestOwnerID = "owner-test-001"
)

func part(id int, name string, kind mechanics.Kind, base mechanics.Costs, opts ...mechanics.Costs) mechanics.PartDefinition {
	def := mechanics.PartDefinition{
		ID:       id,
		Name:     name,
		Kind:     kind,
		Mechanic: true,
		Base:     base,
	}
	for _, o := range opts {
		def.Options = append(def.Options, mechanics.Option{Costs: o})
	}
	return def
}

func percentage(def mechanics.PartDefinition) mechanics.PartDefinition {
	def.Percentage = true
	return def
}

func duration(def mechanics.PartDefinition) mechanics.PartDefinition {
	def.Duration = true
	return def
}

func actionParts(kind mechanics.Kind) []mechanics.PartDefinition {
	return []mechanics.PartDefinition{
		part(1, "Reaction", kind, mechanics.Costs{Energy: 2}),
		part(2, "Quick or Free Action", kind, mechanics.Costs{Energy: 1}, mechanics.Costs{Energy: 1}),
		percentage(part(3, "Long Action", kind, mechanics.Costs{Energy: 0.75}, mechanics.Costs{Energy: -0.25})),
	}
}

// SamplePowerParts returns a small power catalog containing every builder marker
func SamplePowerParts() []mechanics.PartDefinition {
	k := mechanics.KindPower
	damage := mechanics.Costs{Energy: 1}
	perLevel := mechanics.Costs{Energy: 0.5, TP: 0.5}

	parts := actionParts(k)
	parts = append(parts,
		part(4, "Magic Damage", k, damage, perLevel),
		part(5, "Light Damage", k, damage, perLevel),
		part(6, "Elemental Damage", k, damage, perLevel),
		part(7, "Poison or Necrotic Damage", k, damage, perLevel),
		part(8, "Sonic Damage", k, damage, perLevel),
		part(9, "Spiritual Damage", k, damage, perLevel),
		part(10, "Psychic Damage", k, damage, perLevel),
		part(11, "Physical Damage", k, damage, perLevel),
		part(12, "Split Damage Dice", k, mechanics.Costs{Energy: 1}, mechanics.Costs{Energy: 1}),
		part(13, "Power Range", k, mechanics.Costs{Energy: 0.5}, mechanics.Costs{Energy: 0.5}),
		part(14, "Sphere of Effect", k, mechanics.Costs{Energy: 2, TP: 1}, mechanics.Costs{Energy: 1}),
		part(15, "Cylinder of Effect", k, mechanics.Costs{Energy: 2, TP: 1}, mechanics.Costs{Energy: 1}),
		part(16, "Cone of Effect", k, mechanics.Costs{Energy: 2, TP: 1}, mechanics.Costs{Energy: 1}),
		part(17, "Line of Effect", k, mechanics.Costs{Energy: 2, TP: 1}, mechanics.Costs{Energy: 1}),
		part(18, "Trail of Effect", k, mechanics.Costs{Energy: 2, TP: 1}, mechanics.Costs{Energy: 1}),
		percentage(part(19, "Focus", k, mechanics.Costs{Energy: 0.9})),
		percentage(part(20, "No Harm or Adaptation Parts", k, mechanics.Costs{Energy: 0.75})),
		percentage(part(21, "Duration Ends on Activation", k, mechanics.Costs{Energy: 0.8})),
		part(22, "Sustain", k, mechanics.Costs{Energy: 1}, mechanics.Costs{Energy: 1}),
		duration(part(23, "Duration (Round)", k, mechanics.Costs{Energy: 2}, mechanics.Costs{Energy: 1})),
		duration(part(24, "Duration (Minute)", k, mechanics.Costs{Energy: 4}, mechanics.Costs{Energy: 2})),
		duration(part(25, "Duration (Hour)", k, mechanics.Costs{Energy: 8}, mechanics.Costs{Energy: 2})),
		duration(part(26, "Duration (Days)", k, mechanics.Costs{Energy: 12}, mechanics.Costs{Energy: 4})),
		duration(part(27, "Duration (Permanent)", k, mechanics.Costs{Energy: 30})),
		part(FlightPartID, "Flight", k, mechanics.Costs{Energy: 3, TP: 2}, mechanics.Costs{Energy: 2, TP: 1}),
	)

	lore := part(LoreNotePartID, "Lore Note", k, mechanics.Costs{Energy: 5, TP: 1})
	lore.Mechanic = false
	return append(parts, lore)
}

// SampleTechniqueParts returns a small technique catalog
func SampleTechniqueParts() []mechanics.PartDefinition {
	k := mechanics.KindTechnique
	parts := actionParts(k)
	return append(parts,
		part(12, "Split Damage Dice", k, mechanics.Costs{Energy: 1}, mechanics.Costs{Energy: 1}),
		part(28, "Additional Damage", k, mechanics.Costs{Energy: 1}, mechanics.Costs{Energy: 1, TP: 0.5}),
		part(29, "Add Weapon Attack", k, mechanics.Costs{Energy: 1, TP: 1}, mechanics.Costs{Energy: 1, TP: 1}),
		part(PreciseStrikePartID, "Precise Strike", k, mechanics.Costs{Energy: 2, TP: 1.5}),
	)
}

// SampleItemParts returns a small item property catalog
func SampleItemParts() []mechanics.PartDefinition {
	k := mechanics.KindItem
	return []mechanics.PartDefinition{
		part(30, "Range", k, mechanics.Costs{IP: 0.5, Currency: 1}, mechanics.Costs{IP: 0.5, Currency: 1}),
		part(31, "Damage Reduction", k, mechanics.Costs{IP: 1, TP: 1, Currency: 2}, mechanics.Costs{IP: 1, TP: 0.5}),
		part(KeenEdgePartID, "Keen Edge", k, mechanics.Costs{IP: 1.5, TP: 0.5, Currency: 1}, mechanics.Costs{IP: 1}),
	}
}

// SampleParts returns the sample catalog of a kind
func SampleParts(kind mechanics.Kind) []mechanics.PartDefinition {
	switch kind {
	case mechanics.KindPower:
		return SamplePowerParts()
	case mechanics.KindTechnique:
		return SampleTechniqueParts()
	case mechanics.KindItem:
		return SampleItemParts()
	default:
		return nil
	}
}
