package cost

import (
	"github.com/KirkDiggler/rpg-mechanics/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
)

// powerEnergy holds the buckets of the unified power equation
type powerEnergy struct {
	durAll       float64
	durFound     bool
	percAll      float64
	percDur      float64
	flatNormal   float64
	flatDuration float64
}

func newPowerEnergy() *powerEnergy {
	return &powerEnergy{durAll: 1, percAll: 1, percDur: 1}
}

func (p *powerEnergy) add(ref mechanics.PartReference, def mechanics.PartDefinition, energy float64) {
	switch {
	case def.Duration:
		p.durAll *= energy
		p.durFound = true
	case def.Percentage:
		p.percAll *= energy
		if ref.ApplyDuration {
			p.percDur *= energy
		}
	default:
		p.flatNormal += energy
		if ref.ApplyDuration {
			p.flatDuration += energy
		}
	}
}

// raw evaluates
//
//	flat_normal*perc_all + (dur_all+1)*flat_duration*perc_dur - flat_duration*perc_dur
//
// where dur_all is 0 when no duration part was present.
func (p *powerEnergy) raw() float64 {
	durAll := p.durAll
	if !p.durFound {
		durAll = 0
	}
	durationTerm := p.flatDuration * p.percDur
	return p.flatNormal*p.percAll + (durAll+1)*durationTerm - durationTerm
}

// CalculatePowerCosts computes energy, floored-per-part TP and TP sources of a power
func CalculatePowerCosts(refs []mechanics.PartReference, parts []mechanics.PartDefinition) mechanics.CostResult {
	energy := newPowerEnergy()
	result := mechanics.CostResult{TPSources: []string{}}

	for _, ref := range refs {
		def, ok := catalog.Resolve(parts, ref)
		if !ok {
			continue
		}

		levels := ref.Levels()
		energy.add(ref, def, optionSum(def, levels, energyOf))

		tp := floorTP(optionSum(def, levels, tpOf))
		if tp > 0 {
			result.TotalTP += tp
			result.TPSources = append(result.TPSources, tpSource(tp, def.Name, levels))
		}
	}

	result.TotalEnergy = ceilEnergy(energy.raw())
	return result
}
