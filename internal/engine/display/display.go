// Package display derives the human-readable attribute strings shown on power, technique and item
// summaries. Each deriver scans the reference list for its marker parts and falls back to a fixed
// default when none resolve.
package display

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-mechanics/internal/engine/builder"
	"github.com/KirkDiggler/rpg-mechanics/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-mechanics/internal/engine/cost"
	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
)

// Defaults shown when no marker part is present
const (
	DefaultPowerRange    = "1 space"
	DefaultPowerArea     = "1 target"
	DefaultPowerDuration = "1 round"
	DefaultItemRange     = "Melee"
)

// find returns the option-1 level of the first reference resolving to key
func find(refs []mechanics.PartReference, parts []mechanics.PartDefinition, key catalog.PartKey) (int, bool) {
	ref, ok := catalog.FindReference(parts, refs, key)
	if !ok {
		return 0, false
	}
	return max(0, ref.Op1Level), true
}

func spaces(n int) string {
	if n == 1 {
		return "1 space"
	}
	return fmt.Sprintf("%d spaces", n)
}

// ActionType formats the action economy, e.g. "Quick Action" or "Long (4) Reaction"
func ActionType(refs []mechanics.PartReference, parts []mechanics.PartDefinition) string {
	speed := "Basic"
	if level, ok := find(refs, parts, catalog.QuickOrFreeAction); ok {
		speed = "Quick"
		if level >= 1 {
			speed = "Free"
		}
	} else if level, ok := find(refs, parts, catalog.LongAction); ok {
		speed = "Long (3)"
		if level >= 1 {
			speed = "Long (4)"
		}
	}

	kind := "Action"
	if _, ok := find(refs, parts, catalog.Reaction); ok {
		kind = "Reaction"
	}
	return speed + " " + kind
}

// PowerRange returns the range of a power; each range step adds 3 spaces
func PowerRange(refs []mechanics.PartReference, parts []mechanics.PartDefinition) string {
	level, ok := find(refs, parts, catalog.PowerRange)
	if !ok {
		return DefaultPowerRange
	}
	return spaces(3 * (level + 1))
}

type areaFormat struct {
	shape builder.AreaShape
	base  int
	step  int
	label string
}

var areaFormats = []areaFormat{
	{shape: builder.AreaSphere, base: 1, step: 1, label: "radius sphere"},
	{shape: builder.AreaCylinder, base: 1, step: 1, label: "radius cylinder"},
	{shape: builder.AreaCone, base: 2, step: 2, label: "cone"},
	{shape: builder.AreaLine, base: 4, step: 4, label: "line"},
	{shape: builder.AreaTrail, base: 3, step: 3, label: "trail"},
}

// PowerArea returns the area of effect of a power, e.g. "2-space radius sphere"
func PowerArea(refs []mechanics.PartReference, parts []mechanics.PartDefinition) string {
	for _, f := range areaFormats {
		key, ok := builder.AreaPart(f.shape)
		if !ok {
			continue
		}
		if level, ok := find(refs, parts, key); ok {
			return fmt.Sprintf("%d-space %s", f.base+f.step*level, f.label)
		}
	}
	return DefaultPowerArea
}

var durationUnits = []struct {
	unit     builder.DurationUnit
	singular string
	plural   string
}{
	{unit: builder.DurationRounds, singular: "round", plural: "rounds"},
	{unit: builder.DurationMinutes, singular: "minute", plural: "minutes"},
	{unit: builder.DurationHours, singular: "hour", plural: "hours"},
	{unit: builder.DurationDays, singular: "day", plural: "days"},
	{unit: builder.DurationPermanent},
}

// PowerDuration returns the duration of a power with its modifiers, e.g.
// "10 minutes (Focus, Sustain 2)"
func PowerDuration(refs []mechanics.PartReference, parts []mechanics.PartDefinition) string {
	base := DefaultPowerDuration
	for _, u := range durationUnits {
		key, ok := builder.BaseDurationPart(u.unit)
		if !ok {
			continue
		}
		level, ok := find(refs, parts, key)
		if !ok {
			continue
		}
		if u.unit == builder.DurationPermanent {
			base = "Permanent"
			break
		}
		value, ok := builder.DurationValueForLevel(u.unit, level)
		if !ok {
			continue
		}
		if value == 1 {
			base = "1 " + u.singular
		} else {
			base = fmt.Sprintf("%d %s", value, u.plural)
		}
		break
	}

	var modifiers []string
	if _, ok := find(refs, parts, catalog.Focus); ok {
		modifiers = append(modifiers, "Focus")
	}
	if _, ok := find(refs, parts, catalog.NoHarm); ok {
		modifiers = append(modifiers, "No Harm")
	}
	if _, ok := find(refs, parts, catalog.EndsOnActivation); ok {
		modifiers = append(modifiers, "Ends on Activation")
	}
	if level, ok := find(refs, parts, catalog.Sustain); ok {
		modifiers = append(modifiers, fmt.Sprintf("Sustain %d", level+1))
	}

	if len(modifiers) == 0 {
		return base
	}
	return base + " (" + strings.Join(modifiers, ", ") + ")"
}

// Damage joins the configured damage as "2d6 slashing, 1d4 fire", skipping empty rows
func Damage(damage []mechanics.DamageConfig) string {
	var out []string
	for _, d := range damage {
		if d.Amount <= 0 || d.Size <= 0 || d.Type == "" || d.Type == mechanics.DamageTypeNone {
			continue
		}
		out = append(out, d.String())
	}
	return strings.Join(out, ", ")
}

// ItemRange returns an item's range in spaces, or "Melee" without a Range property
func ItemRange(refs []mechanics.PartReference, parts []mechanics.PartDefinition) string {
	level, ok := find(refs, parts, catalog.ItemRange)
	if !ok {
		return DefaultItemRange
	}
	return spaces(8 + 8*level)
}

// ItemDamageReduction returns the damage reduction granted by an item
func ItemDamageReduction(refs []mechanics.PartReference, parts []mechanics.PartDefinition) int {
	level, ok := find(refs, parts, catalog.DamageReduction)
	if !ok {
		return 0
	}
	return 1 + level
}

// Rarity returns the rarity tier name for a total IP
func Rarity(totalIP float64) string {
	return cost.RarityForIP(totalIP).Name
}
