// Package mechanics holds the data model shared by the catalog, builder, cost calculators and display
// derivers: part definitions, user part references, damage configuration and cost results.
package mechanics

import (
	"encoding/json"
	"fmt"
)

// Kind identifies which creator a catalog definition belongs to
type Kind string

// Catalog kinds
const (
	KindPower     Kind = "power"
	KindTechnique Kind = "technique"
	KindItem      Kind = "item"
)

// IsValid reports whether the kind is one of the known catalog kinds
func (k Kind) IsValid() bool {
	switch k {
	case KindPower, KindTechnique, KindItem:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// MaxOptions is the number of leveled options a part can carry
const MaxOptions = 3

// Costs holds per-unit cost coefficients. Energy applies to powers and techniques;
// IP and Currency apply to item properties only.
type Costs struct {
	Energy   float64 `json:"energy,omitempty" toml:"energy,omitempty"`
	TP       float64 `json:"tp,omitempty" toml:"tp,omitempty"`
	IP       float64 `json:"ip,omitempty" toml:"ip,omitempty"`
	Currency float64 `json:"currency,omitempty" toml:"currency,omitempty"`
}

// Option is one leveled option of a part. Its costs are per level taken.
type Option struct {
	Costs
	Description string `json:"description,omitempty" toml:"description,omitempty"`
}

// PartDefinition is an immutable catalog entry (a power/technique part or an item property)
type PartDefinition struct {
	ID          int    `json:"id" toml:"id"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description,omitempty" toml:"description,omitempty"`
	Category    string `json:"category,omitempty" toml:"category,omitempty"`
	Kind        Kind   `json:"kind,omitempty" toml:"kind,omitempty"`

	// Mechanic marks the part as cost-bearing rather than descriptive
	Mechanic bool `json:"mechanic" toml:"mechanic"`
	// Duration parts multiply into the duration subtotal of a power
	Duration bool `json:"duration,omitempty" toml:"duration,omitempty"`
	// Percentage parts contribute an energy multiplier instead of an addend
	Percentage bool `json:"percentage,omitempty" toml:"percentage,omitempty"`

	Base    Costs    `json:"base" toml:"base"`
	Options []Option `json:"options,omitempty" toml:"options,omitempty"`
}

// OptionAt returns the option at the zero-based index, or a zero option when absent
func (p PartDefinition) OptionAt(i int) Option {
	if i < 0 || i >= len(p.Options) {
		return Option{}
	}
	return p.Options[i]
}

// Validate checks the structural rules of a definition
func (p PartDefinition) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("part %d: name is required", p.ID)
	}
	if len(p.Options) > MaxOptions {
		return fmt.Errorf("part %q: at most %d options allowed, got %d", p.Name, MaxOptions, len(p.Options))
	}
	return nil
}

// PartReference is a user's selection of a part, either in UI shape (Part set inline)
// or saved shape (ID and/or Name only).
type PartReference struct {
	ID            *int            `json:"id,omitempty"`
	Name          string          `json:"name,omitempty"`
	Part          *PartDefinition `json:"part,omitempty"`
	Op1Level      int             `json:"op_1_lvl"`
	Op2Level      int             `json:"op_2_lvl"`
	Op3Level      int             `json:"op_3_lvl"`
	ApplyDuration bool            `json:"applyDuration,omitempty"`
}

// RefByID creates a saved-shape reference by id
func RefByID(id int) PartReference {
	return PartReference{ID: &id}
}

// RefByName creates a saved-shape reference by name
func RefByName(name string) PartReference {
	return PartReference{Name: name}
}

// WithLevels returns a copy of the reference with the given option levels
func (r PartReference) WithLevels(l1, l2, l3 int) PartReference {
	r.Op1Level, r.Op2Level, r.Op3Level = l1, l2, l3
	return r
}

// Levels returns the three option levels in order
func (r PartReference) Levels() [MaxOptions]int {
	return [MaxOptions]int{r.Op1Level, r.Op2Level, r.Op3Level}
}

// UnmarshalJSON accepts the legacy optNLevel field names alongside op_N_lvl
func (r *PartReference) UnmarshalJSON(data []byte) error {
	type plain PartReference
	var aux struct {
		plain
		Op1Level  *int `json:"op_1_lvl"`
		Op2Level  *int `json:"op_2_lvl"`
		Op3Level  *int `json:"op_3_lvl"`
		Opt1Level *int `json:"opt1Level"`
		Opt2Level *int `json:"opt2Level"`
		Opt3Level *int `json:"opt3Level"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*r = PartReference(aux.plain)
	r.Op1Level = firstLevel(aux.Op1Level, aux.Opt1Level)
	r.Op2Level = firstLevel(aux.Op2Level, aux.Opt2Level)
	r.Op3Level = firstLevel(aux.Op3Level, aux.Opt3Level)
	return nil
}

func firstLevel(values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

// Valid die sizes for damage dice
var validDieSizes = map[int]bool{4: true, 6: true, 8: true, 10: true, 12: true}

// DamageTypeNone marks an unconfigured damage row
const DamageTypeNone = "none"

// IsValidDieSize reports whether size is one of d4, d6, d8, d10, d12
func IsValidDieSize(size int) bool {
	return validDieSizes[size]
}

// DamageConfig describes dice damage configured in a creator
type DamageConfig struct {
	Amount int    `json:"amount"`
	Size   int    `json:"size"`
	Type   string `json:"type"`
}

// IsValid reports whether the config describes real damage
func (d DamageConfig) IsValid() bool {
	return d.Amount > 0 && IsValidDieSize(d.Size) && d.Type != "" && d.Type != DamageTypeNone
}

// String formats the damage as "{amount}d{size} {type}"
func (d DamageConfig) String() string {
	return fmt.Sprintf("%dd%d %s", d.Amount, d.Size, d.Type)
}

// CostResult is the value object produced by the cost calculators
type CostResult struct {
	TotalEnergy int `json:"totalEnergy,omitempty"`
	// TotalTP is a whole number for powers and techniques; item TP is not floored
	TotalTP       float64  `json:"totalTP"`
	TotalIP       float64  `json:"totalIP,omitempty"`
	TotalCurrency float64  `json:"totalCurrency,omitempty"`
	TPSources     []string `json:"tpSources"`
}
