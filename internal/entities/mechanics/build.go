package mechanics

import "time"

// Build is a saved power, technique or item. Parts are stored in saved shape
// (id/name and levels) and the cost is recomputed whenever the build is saved.
type Build struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Kind        Kind            `json:"kind"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parts       []PartReference `json:"parts"`
	Damage      []DamageConfig  `json:"damage,omitempty"`
	Cost        CostResult      `json:"cost"`

	// Items only
	Rarity       string `json:"rarity,omitempty"`
	CurrencyCost int    `json:"currency_cost,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
