package mechanics

import "math"

// RarityBracket is one tier of the item rarity table. A bracket covers IP values
// above the previous bracket's IPHigh up to and including its own IPHigh.
type RarityBracket struct {
	Name         string  `json:"name"`
	IPLow        float64 `json:"ipLow"`
	IPHigh       float64 `json:"ipHigh"`
	BaseCurrency int     `json:"baseCurrency"`
}

// Rarity tier names
const (
	RarityCommon    = "Common"
	RarityUncommon  = "Uncommon"
	RarityRare      = "Rare"
	RarityEpic      = "Epic"
	RarityLegendary = "Legendary"
	RarityMythic    = "Mythic"
	RarityAscended  = "Ascended"
)

// RarityBrackets is the ordered rarity table, Common through Ascended. The last
// bracket is open-ended; MaxFloat64 keeps it JSON encodable.
var RarityBrackets = []RarityBracket{
	{Name: RarityCommon, IPLow: 0, IPHigh: 4, BaseCurrency: 25},
	{Name: RarityUncommon, IPLow: 4.01, IPHigh: 6, BaseCurrency: 100},
	{Name: RarityRare, IPLow: 6.01, IPHigh: 8, BaseCurrency: 500},
	{Name: RarityEpic, IPLow: 8.01, IPHigh: 11, BaseCurrency: 2500},
	{Name: RarityLegendary, IPLow: 11.01, IPHigh: 14, BaseCurrency: 10000},
	{Name: RarityMythic, IPLow: 14.01, IPHigh: 16, BaseCurrency: 50000},
	{Name: RarityAscended, IPLow: 16.01, IPHigh: math.MaxFloat64, BaseCurrency: 100000},
}
