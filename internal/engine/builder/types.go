package builder

import (
	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
)

// ActionType is the action economy selector of a creator
type ActionType string

// Action types
const (
	ActionBasic ActionType = "basic"
	ActionQuick ActionType = "quick"
	ActionFree  ActionType = "free"
	ActionLong3 ActionType = "long3"
	ActionLong4 ActionType = "long4"
)

// ActionConfig is the action selector plus the reaction toggle
type ActionConfig struct {
	Type     ActionType `json:"type"`
	Reaction bool       `json:"reaction"`
}

// AreaShape is an area-of-effect shape
type AreaShape string

// Area shapes
const (
	AreaSphere   AreaShape = "sphere"
	AreaCylinder AreaShape = "cylinder"
	AreaCone     AreaShape = "cone"
	AreaLine     AreaShape = "line"
	AreaTrail    AreaShape = "trail"
)

// AreaConfig selects an area shape and its 1-based level
type AreaConfig struct {
	Shape AreaShape `json:"shape"`
	Level int       `json:"level"`
}

// DurationUnit is the base duration unit of a power
type DurationUnit string

// Duration units
const (
	DurationRounds    DurationUnit = "rounds"
	DurationMinutes   DurationUnit = "minutes"
	DurationHours     DurationUnit = "hours"
	DurationDays      DurationUnit = "days"
	DurationPermanent DurationUnit = "permanent"
)

// DurationConfig is the base duration plus its modifiers
type DurationConfig struct {
	Unit             DurationUnit `json:"unit"`
	Value            int          `json:"value"`
	Focus            bool         `json:"focus"`
	NoHarm           bool         `json:"noHarm"`
	EndsOnActivation bool         `json:"endsOnActivation"`
	Sustain          int          `json:"sustain"`
}

// WeaponConfig is the weapon scaling of a technique
type WeaponConfig struct {
	TP int `json:"tp"`
}

// PowerConfig is the full creator state of a power
type PowerConfig struct {
	Action   ActionConfig             `json:"action"`
	Damage   []mechanics.DamageConfig `json:"damage,omitempty"`
	Range    int                      `json:"range"`
	Area     *AreaConfig              `json:"area,omitempty"`
	Duration *DurationConfig          `json:"duration,omitempty"`

	// Parts are user-selected parts appended after the generated ones
	Parts []mechanics.PartReference `json:"parts,omitempty"`
}

// TechniqueConfig is the full creator state of a technique
type TechniqueConfig struct {
	Action ActionConfig              `json:"action"`
	Damage *mechanics.DamageConfig   `json:"damage,omitempty"`
	Weapon WeaponConfig              `json:"weapon"`
	Parts  []mechanics.PartReference `json:"parts,omitempty"`
}
