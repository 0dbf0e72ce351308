package cost

import (
	"math"

	"github.com/KirkDiggler/rpg-mechanics/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
)

// currencySurcharge is the fraction of the tier base added per point of item currency
const currencySurcharge = 0.125

// CalculateItemCosts sums IP, TP and currency of item properties. Only option 1 scales
// item properties and nothing is floored.
func CalculateItemCosts(refs []mechanics.PartReference, parts []mechanics.PartDefinition) mechanics.CostResult {
	result := mechanics.CostResult{TPSources: []string{}}

	for _, ref := range refs {
		def, ok := catalog.Resolve(parts, ref)
		if !ok {
			continue
		}

		level := float64(ref.Op1Level)
		opt := def.OptionAt(0)
		result.TotalIP += def.Base.IP + opt.IP*level
		result.TotalCurrency += def.Base.Currency + opt.Currency*level

		tp := def.Base.TP + opt.TP*level
		result.TotalTP += tp
		if tp > 0 {
			result.TPSources = append(result.TPSources,
				tpSource(denoise(tp), def.Name, [mechanics.MaxOptions]int{ref.Op1Level}))
		}
	}

	result.TotalIP = denoise(result.TotalIP)
	result.TotalTP = denoise(result.TotalTP)
	result.TotalCurrency = denoise(result.TotalCurrency)
	return result
}

// RarityResult is the resolved rarity tier and final currency cost of an item
type RarityResult struct {
	Rarity       string                  `json:"rarity"`
	CurrencyCost int                     `json:"currencyCost"`
	Bracket      mechanics.RarityBracket `json:"bracket"`
}

// RarityForIP returns the bracket containing ip. Negative IP is treated as 0.
func RarityForIP(ip float64) mechanics.RarityBracket {
	ip = max(0, ip)
	for _, b := range mechanics.RarityBrackets {
		if ip <= b.IPHigh {
			return b
		}
	}
	return mechanics.RarityBrackets[len(mechanics.RarityBrackets)-1]
}

// CalculateCurrencyCostAndRarity resolves the rarity tier for totalIP and applies the currency
// surcharge to its base cost. The result is never below the tier base.
func CalculateCurrencyCostAndRarity(totalCurrency, totalIP float64) RarityResult {
	bracket := RarityForIP(totalIP)
	base := float64(bracket.BaseCurrency)

	cost := math.Floor(denoise(base * (1 + currencySurcharge*max(0, totalCurrency))))
	return RarityResult{
		Rarity:       bracket.Name,
		CurrencyCost: int(max(cost, base)),
		Bracket:      bracket,
	}
}
