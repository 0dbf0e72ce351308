// Package cost implements the Power, Technique and Item cost calculators and the item
// rarity/currency resolver. Every function is a pure function of its inputs: references that do
// not resolve in the catalog contribute nothing, and the mechanic flag is not re-checked here.
package cost

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
)

// floatNoise is the precision float sums are rounded to before ceil/floor
const floatNoise = 1e9

// optionSum returns base + Σ option(i)*level(i) for the cost selected by pick
func optionSum(
	def mechanics.PartDefinition,
	levels [mechanics.MaxOptions]int,
	pick func(mechanics.Costs) float64,
) float64 {
	total := pick(def.Base)
	for i, level := range levels {
		if level == 0 {
			continue
		}
		total += pick(def.OptionAt(i).Costs) * float64(level)
	}
	return total
}

func energyOf(c mechanics.Costs) float64 {
	return c.Energy
}

func tpOf(c mechanics.Costs) float64 {
	return c.TP
}

// denoise rounds away float accumulation error such as 2.9999999999999996
func denoise(v float64) float64 {
	return math.Round(v*floatNoise) / floatNoise
}

func ceilEnergy(raw float64) int {
	return int(math.Ceil(denoise(raw)))
}

func floorTP(raw float64) float64 {
	return math.Floor(denoise(raw))
}

// tpSource formats one breakdown line, e.g. "2 TP: Physical Damage (Opt1 x4)"
func tpSource(tp float64, name string, levels [mechanics.MaxOptions]int) string {
	var opts []string
	for i, level := range levels {
		if level > 0 {
			opts = append(opts, fmt.Sprintf("Opt%d x%d", i+1, level))
		}
	}

	line := fmt.Sprintf("%s TP: %s", strconv.FormatFloat(tp, 'f', -1, 64), name)
	if len(opts) > 0 {
		line += " (" + strings.Join(opts, ", ") + ")"
	}
	return line
}
