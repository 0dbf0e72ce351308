package client

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-mechanics/internal/handlers/mechanics/v1alpha1"
	"github.com/KirkDiggler/rpg-mechanics/internal/orchestrators/mechanics"
)

var calcPowerCmd = &cobra.Command{
	Use:   "calc-power [request.json]",
	Short: "Calculate the cost of a power",
	Long: `Calculate energy, TP and display strings of a power. The request holds either a creator
config or saved parts. Examples:

  calc-power power.json
  echo '{"parts":[{"id":11,"op_1_lvl":4}]}' | calc-power -`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var in mechanics.CalculatePowerInput
		if err := readInput(args[0], &in); err != nil {
			return err
		}
		return call[mechanics.CalculatePowerOutput](v1alpha1.MethodCalculatePower, &in)
	},
}

var calcTechniqueCmd = &cobra.Command{
	Use:   "calc-technique [request.json]",
	Short: "Calculate the cost of a technique",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var in mechanics.CalculateTechniqueInput
		if err := readInput(args[0], &in); err != nil {
			return err
		}
		return call[mechanics.CalculateTechniqueOutput](v1alpha1.MethodCalculateTechnique, &in)
	},
}

var calcItemCmd = &cobra.Command{
	Use:   "calc-item [request.json]",
	Short: "Calculate IP, TP, currency and rarity of an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var in mechanics.CalculateItemInput
		if err := readInput(args[0], &in); err != nil {
			return err
		}
		return call[mechanics.CalculateItemOutput](v1alpha1.MethodCalculateItem, &in)
	},
}

var rarityCmd = &cobra.Command{
	Use:   "rarity [total-ip] [total-currency]",
	Short: "Resolve the rarity tier and currency cost of item totals",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		ip, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}
		currency, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}
		return call[mechanics.ResolveRarityOutput](v1alpha1.MethodResolveRarity, &mechanics.ResolveRarityInput{
			TotalCurrency: currency,
			TotalIP:       ip,
		})
	},
}

var rollDamageCmd = &cobra.Command{
	Use:   "roll-damage [request.json]",
	Short: "Roll configured damage dice",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var in mechanics.RollDamageInput
		if err := readInput(args[0], &in); err != nil {
			return err
		}
		return call[mechanics.RollDamageOutput](v1alpha1.MethodRollDamage, &in)
	},
}
