// Package builder translates creator configuration (action type, damage dice, range, area,
// duration, weapon scaling) into the canonical list of part references used by the cost
// calculators. Power, Technique and Empowered-Technique creators share these functions.
//
// A generated part is only emitted when it resolves in the catalog and is flagged as a
// mechanic part; anything else is dropped silently.
package builder

import (
	"math"

	"github.com/KirkDiggler/rpg-mechanics/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
)

// splitDieSize is the die size the split calculation compares against
const splitDieSize = 12

// technique damage baseline: the average of 1d4
const baselineAverageDamage = 2.5

// damageCategories maps a damage type tag to its power damage part
var damageCategories = map[string]catalog.PartKey{
	"magic":       catalog.MagicDamage,
	"light":       catalog.LightDamage,
	"radiant":     catalog.LightDamage,
	"fire":        catalog.ElementalDamage,
	"cold":        catalog.ElementalDamage,
	"lightning":   catalog.ElementalDamage,
	"ice":         catalog.ElementalDamage,
	"acid":        catalog.ElementalDamage,
	"poison":      catalog.PoisonDamage,
	"necrotic":    catalog.PoisonDamage,
	"sonic":       catalog.SonicDamage,
	"spiritual":   catalog.SpiritualDamage,
	"psychic":     catalog.PsychicDamage,
	"bludgeoning": catalog.PhysicalDamage,
	"piercing":    catalog.PhysicalDamage,
	"slashing":    catalog.PhysicalDamage,
}

var areaParts = map[AreaShape]catalog.PartKey{
	AreaSphere:   catalog.SphereOfEffect,
	AreaCylinder: catalog.CylinderOfEffect,
	AreaCone:     catalog.ConeOfEffect,
	AreaLine:     catalog.LineOfEffect,
	AreaTrail:    catalog.TrailOfEffect,
}

var baseDurationParts = map[DurationUnit]catalog.PartKey{
	DurationRounds:    catalog.DurationRound,
	DurationMinutes:   catalog.DurationMinute,
	DurationHours:     catalog.DurationHour,
	DurationDays:      catalog.DurationDays,
	DurationPermanent: catalog.DurationPermanent,
}

// DamageCategory returns the power damage part for a damage type tag
func DamageCategory(damageType string) (catalog.PartKey, bool) {
	key, ok := damageCategories[damageType]
	return key, ok
}

// AreaPart returns the part for an area shape
func AreaPart(shape AreaShape) (catalog.PartKey, bool) {
	key, ok := areaParts[shape]
	return key, ok
}

// BaseDurationPart returns the base duration part for a unit
func BaseDurationPart(unit DurationUnit) (catalog.PartKey, bool) {
	key, ok := baseDurationParts[unit]
	return key, ok
}

// emit appends the part for key at the given option-1 level when it resolves to a mechanic part
func emit(
	out []mechanics.PartReference,
	parts []mechanics.PartDefinition,
	key catalog.PartKey,
	level int,
) []mechanics.PartReference {
	def, ok := catalog.Find(parts, key)
	if !ok || !def.Mechanic {
		return out
	}

	ref := mechanics.RefByID(def.ID)
	ref.Name = def.Name
	ref.Op1Level = level
	return append(out, ref)
}

// ActionParts maps the action selector and reaction toggle to at most one reaction part and
// at most one quick/free or long action part.
func ActionParts(parts []mechanics.PartDefinition, cfg ActionConfig) []mechanics.PartReference {
	var out []mechanics.PartReference
	if cfg.Reaction {
		out = emit(out, parts, catalog.Reaction, 0)
	}

	switch cfg.Type {
	case ActionQuick:
		out = emit(out, parts, catalog.QuickOrFreeAction, 0)
	case ActionFree:
		out = emit(out, parts, catalog.QuickOrFreeAction, 1)
	case ActionLong3:
		out = emit(out, parts, catalog.LongAction, 0)
	case ActionLong4:
		out = emit(out, parts, catalog.LongAction, 1)
	}
	return out
}

// ComputeSplits returns how many more dice are used than the minimum number of d12s
// that could deliver the same maximum damage. It is 0 for a single die.
func ComputeSplits(diceAmount, dieSize int) int {
	if diceAmount <= 1 {
		return 0
	}
	minimumDice := (diceAmount*dieSize + splitDieSize - 1) / splitDieSize
	return max(0, diceAmount-minimumDice)
}

// PowerDamageLevel is the option-1 level of a power damage part
func PowerDamageLevel(diceAmount, dieSize int) int {
	return max(0, floorDiv(diceAmount*dieSize-4, 2))
}

// TechniqueDamageLevel is the option-1 level of the Additional Damage part
func TechniqueDamageLevel(diceAmount, dieSize int) int {
	average := float64(diceAmount) * float64(dieSize+1) / 2
	return max(0, int(math.Floor((average-baselineAverageDamage)/2)))
}

// PowerDamageParts emits one damage category part per configured damage row and a single
// Split Damage Dice part for all rows together. The split uses the largest die size across
// rows, not each row's own size.
func PowerDamageParts(parts []mechanics.PartDefinition, damage []mechanics.DamageConfig) []mechanics.PartReference {
	var out []mechanics.PartReference
	totalDice, maxDieSize := 0, 0

	for _, d := range damage {
		if d.Type == mechanics.DamageTypeNone || d.Amount <= 0 || !mechanics.IsValidDieSize(d.Size) {
			continue
		}

		if key, ok := DamageCategory(d.Type); ok {
			out = emit(out, parts, key, PowerDamageLevel(d.Amount, d.Size))
		}

		totalDice += d.Amount
		maxDieSize = max(maxDieSize, d.Size)
	}

	if totalDice > 1 && mechanics.IsValidDieSize(maxDieSize) {
		if splits := ComputeSplits(totalDice, maxDieSize); splits > 0 {
			out = emit(out, parts, catalog.SplitDamageDice, splits-1)
		}
	}
	return out
}

// TechniqueDamageParts emits Additional Damage for the technique's dice plus split dice
func TechniqueDamageParts(parts []mechanics.PartDefinition, damage mechanics.DamageConfig) []mechanics.PartReference {
	if damage.Type == mechanics.DamageTypeNone || damage.Amount <= 0 || !mechanics.IsValidDieSize(damage.Size) {
		return nil
	}

	out := emit(nil, parts, catalog.AdditionalDamage, TechniqueDamageLevel(damage.Amount, damage.Size))
	if splits := ComputeSplits(damage.Amount, damage.Size); splits > 0 {
		out = emit(out, parts, catalog.SplitDamageDice, splits-1)
	}
	return out
}

// RangeParts emits Power Range for a positive number of range steps
func RangeParts(parts []mechanics.PartDefinition, steps int) []mechanics.PartReference {
	if steps <= 0 {
		return nil
	}
	return emit(nil, parts, catalog.PowerRange, steps-1)
}

// AreaParts emits the area shape part; Level is 1-based
func AreaParts(parts []mechanics.PartDefinition, cfg AreaConfig) []mechanics.PartReference {
	key, ok := AreaPart(cfg.Shape)
	if !ok || cfg.Level < 1 {
		return nil
	}
	return emit(nil, parts, key, cfg.Level-1)
}

// DurationParts emits the duration modifiers followed by exactly one base duration part
// when the unit/value pair maps to a level.
func DurationParts(parts []mechanics.PartDefinition, cfg DurationConfig) []mechanics.PartReference {
	var out []mechanics.PartReference
	if cfg.Focus {
		out = emit(out, parts, catalog.Focus, 0)
	}
	if cfg.NoHarm {
		out = emit(out, parts, catalog.NoHarm, 0)
	}
	if cfg.EndsOnActivation {
		out = emit(out, parts, catalog.EndsOnActivation, 0)
	}
	if cfg.Sustain > 0 {
		out = emit(out, parts, catalog.Sustain, cfg.Sustain-1)
	}

	key, ok := BaseDurationPart(cfg.Unit)
	if !ok {
		return out
	}
	if level, ok := durationLevel(cfg.Unit, cfg.Value); ok {
		out = emit(out, parts, key, level)
	}
	return out
}

// WeaponParts emits Add Weapon Attack when the weapon carries at least one TP
func WeaponParts(parts []mechanics.PartDefinition, cfg WeaponConfig) []mechanics.PartReference {
	if cfg.TP < 1 {
		return nil
	}
	return emit(nil, parts, catalog.AddWeaponAttack, cfg.TP-1)
}

// BuildPower produces the full reference list of a power: generated parts in creator order
// followed by the user's own selections.
func BuildPower(parts []mechanics.PartDefinition, cfg PowerConfig) []mechanics.PartReference {
	var out []mechanics.PartReference
	out = append(out, ActionParts(parts, cfg.Action)...)
	out = append(out, PowerDamageParts(parts, cfg.Damage)...)
	out = append(out, RangeParts(parts, cfg.Range)...)
	if cfg.Area != nil {
		out = append(out, AreaParts(parts, *cfg.Area)...)
	}
	if cfg.Duration != nil {
		out = append(out, DurationParts(parts, *cfg.Duration)...)
	}
	return append(out, catalog.Normalize(cfg.Parts)...)
}

// BuildTechnique produces the full reference list of a technique
func BuildTechnique(parts []mechanics.PartDefinition, cfg TechniqueConfig) []mechanics.PartReference {
	var out []mechanics.PartReference
	out = append(out, ActionParts(parts, cfg.Action)...)
	if cfg.Damage != nil {
		out = append(out, TechniqueDamageParts(parts, *cfg.Damage)...)
	}
	out = append(out, WeaponParts(parts, cfg.Weapon)...)
	return append(out, catalog.Normalize(cfg.Parts)...)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
