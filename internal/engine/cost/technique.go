package cost

import (
	"math"

	"github.com/KirkDiggler/rpg-mechanics/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
)

// CalculateTechniqueCosts computes energy as Σflat × Πpercentage and TP floored per part.
// Techniques have no duration bucket; duration-flagged parts count as flat.
func CalculateTechniqueCosts(refs []mechanics.PartReference, parts []mechanics.PartDefinition) mechanics.CostResult {
	flat, perc := 0.0, 1.0
	result := mechanics.CostResult{TPSources: []string{}}

	additional, hasAdditional := catalog.Find(parts, catalog.AdditionalDamage)

	for _, ref := range refs {
		def, ok := catalog.Resolve(parts, ref)
		if !ok {
			continue
		}

		levels := ref.Levels()
		energy := optionSum(def, levels, energyOf)
		if def.Percentage {
			perc *= energy
		} else {
			flat += energy
		}

		var tp float64
		if hasAdditional && def.ID == additional.ID && def.Name == additional.Name {
			tp = additionalDamageTP(def, levels)
		} else {
			tp = floorTP(optionSum(def, levels, tpOf))
		}
		if tp > 0 {
			result.TotalTP += tp
			result.TPSources = append(result.TPSources, tpSource(tp, def.Name, levels))
		}
	}

	result.TotalEnergy = ceilEnergy(flat * perc)
	return result
}

// additionalDamageTP floors the fractional option-1 contribution before adding the rest
func additionalDamageTP(def mechanics.PartDefinition, levels [mechanics.MaxOptions]int) float64 {
	opt1 := math.Floor(denoise(def.OptionAt(0).TP * float64(levels[0])))
	rest := def.Base.TP
	for i := 1; i < mechanics.MaxOptions; i++ {
		rest += def.OptionAt(i).TP * float64(levels[i])
	}
	return floorTP(opt1 + rest)
}
