package cost_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-mechanics/internal/engine/builder"
	"github.com/KirkDiggler/rpg-mechanics/internal/engine/cost"
	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
	"github.com/KirkDiggler/rpg-mechanics/internal/testutils"
)

type PowerCostTestSuite struct {
	suite.Suite
	parts []mechanics.PartDefinition
}

func (s *PowerCostTestSuite) SetupTest() {
	s.parts = testutils.SamplePowerParts()
}

func (s *PowerCostTestSuite) TestBuiltDamage() {
	refs := builder.PowerDamageParts(s.parts, []mechanics.DamageConfig{{Amount: 2, Size: 6, Type: "slashing"}})

	result := cost.CalculatePowerCosts(refs, s.parts)

	s.Equal(4, result.TotalEnergy)
	s.Equal(2.0, result.TotalTP)
	s.Equal([]string{"2 TP: Physical Damage (Opt1 x4)"}, result.TPSources)
}

func (s *PowerCostTestSuite) TestUnifiedEquation() {
	flight := mechanics.RefByID(testutils.FlightPartID).WithLevels(1, 0, 0)
	flight.ApplyDuration = true
	focus := mechanics.RefByName("Focus")
	focus.ApplyDuration = true

	refs := []mechanics.PartReference{
		flight,
		focus,
		mechanics.RefByName("Duration (Minute)").WithLevels(1, 0, 0),
		mechanics.RefByName("Power Range").WithLevels(1, 0, 0),
	}

	result := cost.CalculatePowerCosts(refs, s.parts)

	// 6*0.9 + (6+1)*5*0.9 - 5*0.9 = 32.4
	s.Equal(33, result.TotalEnergy)
	s.Equal(3.0, result.TotalTP)
	s.Equal([]string{"3 TP: Flight (Opt1 x1)"}, result.TPSources)
}

func (s *PowerCostTestSuite) TestApplyDurationWithoutDurationPart() {
	flight := mechanics.RefByID(testutils.FlightPartID)
	flight.ApplyDuration = true

	result := cost.CalculatePowerCosts([]mechanics.PartReference{flight}, s.parts)

	s.Equal(3, result.TotalEnergy)
}

func (s *PowerCostTestSuite) TestPercentageWithoutApplyDuration() {
	refs := []mechanics.PartReference{
		mechanics.RefByID(testutils.FlightPartID).WithLevels(2, 0, 0),
		mechanics.RefByName("Long Action").WithLevels(1, 0, 0),
	}

	result := cost.CalculatePowerCosts(refs, s.parts)

	// (3+2*2) * 0.5
	s.Equal(4, result.TotalEnergy)
}

func (s *PowerCostTestSuite) TestUnknownReferencesContributeNothing() {
	refs := []mechanics.PartReference{mechanics.RefByID(testutils.FlightPartID)}
	withUnknown := append(slices.Clone(refs), mechanics.RefByID(999), mechanics.RefByName("Nope"), mechanics.PartReference{})

	s.Equal(cost.CalculatePowerCosts(refs, s.parts), cost.CalculatePowerCosts(withUnknown, s.parts))
}

func (s *PowerCostTestSuite) TestNonMechanicPartsStillCount() {
	result := cost.CalculatePowerCosts([]mechanics.PartReference{mechanics.RefByID(testutils.LoreNotePartID)}, s.parts)

	s.Equal(5, result.TotalEnergy)
	s.Equal(1.0, result.TotalTP)
}

func (s *PowerCostTestSuite) TestEmptyReferences() {
	result := cost.CalculatePowerCosts(nil, s.parts)

	s.Equal(0, result.TotalEnergy)
	s.Equal(0.0, result.TotalTP)
	s.Empty(result.TPSources)
}

func (s *PowerCostTestSuite) TestIdempotent() {
	refs := builder.BuildPower(s.parts, builder.PowerConfig{
		Action:   builder.ActionConfig{Type: builder.ActionFree, Reaction: true},
		Damage:   []mechanics.DamageConfig{{Amount: 3, Size: 8, Type: "fire"}},
		Range:    4,
		Area:     &builder.AreaConfig{Shape: builder.AreaLine, Level: 2},
		Duration: &builder.DurationConfig{Unit: builder.DurationHours, Value: 6, Focus: true},
	})

	first := cost.CalculatePowerCosts(refs, s.parts)
	second := cost.CalculatePowerCosts(refs, s.parts)

	s.Equal(first, second)
	s.Positive(first.TotalEnergy)
}

func (s *PowerCostTestSuite) TestFloatNoiseDoesNotRoundUp() {
	parts := []mechanics.PartDefinition{
		{ID: 1, Name: "A", Mechanic: true, Base: mechanics.Costs{Energy: 0.1}},
		{ID: 2, Name: "B", Mechanic: true, Base: mechanics.Costs{Energy: 0.2}},
		{ID: 3, Name: "C", Mechanic: true, Base: mechanics.Costs{Energy: 2.7}},
	}
	refs := []mechanics.PartReference{mechanics.RefByID(1), mechanics.RefByID(2), mechanics.RefByID(3)}

	s.Equal(3, cost.CalculatePowerCosts(refs, parts).TotalEnergy)
}

func (s *PowerCostTestSuite) TestTPFlooredPerPart() {
	parts := []mechanics.PartDefinition{
		{ID: 1, Name: "A", Mechanic: true, Base: mechanics.Costs{TP: 0.6}},
		{ID: 2, Name: "B", Mechanic: true, Base: mechanics.Costs{TP: 0.6}},
	}
	refs := []mechanics.PartReference{mechanics.RefByID(1), mechanics.RefByID(2)}

	result := cost.CalculatePowerCosts(refs, parts)

	s.Equal(0.0, result.TotalTP)
	s.Empty(result.TPSources)
}

func TestPowerCostTestSuite(t *testing.T) {
	suite.Run(t, new(PowerCostTestSuite))
}

type TechniqueCostTestSuite struct {
	suite.Suite
	parts []mechanics.PartDefinition
}

func (s *TechniqueCostTestSuite) SetupTest() {
	s.parts = testutils.SampleTechniqueParts()
}

func (s *TechniqueCostTestSuite) TestEnergyAndTP() {
	refs := []mechanics.PartReference{
		mechanics.RefByName("Additional Damage").WithLevels(2, 0, 0),
		mechanics.RefByName("Add Weapon Attack"),
		mechanics.RefByName("Long Action").WithLevels(1, 0, 0),
	}

	result := cost.CalculateTechniqueCosts(refs, s.parts)

	s.Equal(2, result.TotalEnergy)
	s.Equal(2.0, result.TotalTP)
	s.Equal([]string{
		"1 TP: Additional Damage (Opt1 x2)",
		"1 TP: Add Weapon Attack",
	}, result.TPSources)
}

func (s *TechniqueCostTestSuite) TestAdditionalDamageFlooredBeforeSum() {
	parts := testutils.SampleTechniqueParts()
	for i := range parts {
		if parts[i].Name == "Additional Damage" {
			parts[i].Base.TP = 0.6
		}
	}
	refs := []mechanics.PartReference{mechanics.RefByName("Additional Damage").WithLevels(3, 0, 0)}

	result := cost.CalculateTechniqueCosts(refs, parts)

	// floor(floor(0.5*3) + 0.6) = 1, flooring once would give floor(2.1) = 2
	s.Equal(1.0, result.TotalTP)
}

func (s *TechniqueCostTestSuite) TestAdditionalDamageMatchedByName() {
	parts := []mechanics.PartDefinition{
		{ID: 28, Name: "Keen Edge", Mechanic: true, Options: []mechanics.Option{{Costs: mechanics.Costs{TP: 0.5}}}},
		{ID: 90, Name: "Additional Damage", Mechanic: true, Base: mechanics.Costs{TP: 0.6},
			Options: []mechanics.Option{{Costs: mechanics.Costs{TP: 0.5}}}},
	}
	refs := []mechanics.PartReference{
		mechanics.RefByID(28).WithLevels(3, 0, 0),
		mechanics.RefByID(90).WithLevels(3, 0, 0),
	}

	result := cost.CalculateTechniqueCosts(refs, parts)

	// Keen Edge floor(1.5) = 1, Additional Damage floor(floor(1.5) + 0.6) = 1
	s.Equal(2.0, result.TotalTP)
}

func (s *TechniqueCostTestSuite) TestOtherPartsFlooredAfterSum() {
	refs := []mechanics.PartReference{mechanics.RefByID(testutils.PreciseStrikePartID)}

	result := cost.CalculateTechniqueCosts(refs, s.parts)

	s.Equal(1.0, result.TotalTP)
	s.Equal(2, result.TotalEnergy)
}

func (s *TechniqueCostTestSuite) TestDurationPartsAreFlat() {
	parts := []mechanics.PartDefinition{
		{ID: 1, Name: "Strike", Mechanic: true, Base: mechanics.Costs{Energy: 2}},
		{ID: 2, Name: "Lingering", Mechanic: true, Duration: true, Base: mechanics.Costs{Energy: 3}},
	}

	result := cost.CalculateTechniqueCosts([]mechanics.PartReference{mechanics.RefByID(1), mechanics.RefByID(2)}, parts)

	s.Equal(5, result.TotalEnergy)
}

func (s *TechniqueCostTestSuite) TestBuiltTechnique() {
	refs := builder.BuildTechnique(s.parts, builder.TechniqueConfig{
		Action: builder.ActionConfig{Type: builder.ActionQuick},
		Damage: &mechanics.DamageConfig{Amount: 2, Size: 6, Type: "slashing"},
		Weapon: builder.WeaponConfig{TP: 2},
	})

	result := cost.CalculateTechniqueCosts(refs, s.parts)

	// quick 1 + additional 3 + split 1 + weapon 2
	s.Equal(7, result.TotalEnergy)
	// additional floor(0.5*2)=1, weapon 1+1=2
	s.Equal(3.0, result.TotalTP)
}

func TestTechniqueCostTestSuite(t *testing.T) {
	suite.Run(t, new(TechniqueCostTestSuite))
}

func itemRefs() []mechanics.PartReference {
	return []mechanics.PartReference{
		mechanics.RefByName("Range").WithLevels(2, 0, 0),
		mechanics.RefByName("Damage Reduction").WithLevels(1, 0, 0),
		mechanics.RefByID(testutils.KeenEdgePartID),
	}
}

func TestCalculateItemCosts(t *testing.T) {
	result := cost.CalculateItemCosts(itemRefs(), testutils.SampleItemParts())

	assert.Equal(t, 5.0, result.TotalIP)
	assert.Equal(t, 2.0, result.TotalTP)
	assert.Equal(t, 6.0, result.TotalCurrency)
	assert.Equal(t, 0, result.TotalEnergy)
	assert.Equal(t, []string{
		"1.5 TP: Damage Reduction (Opt1 x1)",
		"0.5 TP: Keen Edge",
	}, result.TPSources)
}

func TestCalculateItemCostsIsOrderIndependent(t *testing.T) {
	parts := testutils.SampleItemParts()
	refs := itemRefs()
	expected := cost.CalculateItemCosts(refs, parts)

	reversed := slices.Clone(refs)
	slices.Reverse(reversed)
	actual := cost.CalculateItemCosts(reversed, parts)

	assert.Equal(t, expected.TotalIP, actual.TotalIP)
	assert.Equal(t, expected.TotalTP, actual.TotalTP)
	assert.Equal(t, expected.TotalCurrency, actual.TotalCurrency)
	assert.ElementsMatch(t, expected.TPSources, actual.TPSources)
}

func TestCalculateItemCostsIgnoresOtherOptions(t *testing.T) {
	parts := []mechanics.PartDefinition{{
		ID:      1,
		Name:    "Warded",
		Options: []mechanics.Option{{Costs: mechanics.Costs{IP: 1}}, {Costs: mechanics.Costs{IP: 10}}},
	}}

	result := cost.CalculateItemCosts([]mechanics.PartReference{mechanics.RefByID(1).WithLevels(1, 3, 0)}, parts)

	assert.Equal(t, 1.0, result.TotalIP)
}

func TestCalculateCurrencyCostAndRarity(t *testing.T) {
	testCases := []struct {
		name     string
		currency float64
		ip       float64
		rarity   string
		cost     int
	}{
		{name: "empty item", currency: 0, ip: 0, rarity: mechanics.RarityCommon, cost: 25},
		{name: "uncommon with surcharge", currency: 8, ip: 5, rarity: mechanics.RarityUncommon, cost: 200},
		{name: "top of common", currency: 0, ip: 4, rarity: mechanics.RarityCommon, cost: 25},
		{name: "just above common", currency: 0, ip: 4.005, rarity: mechanics.RarityUncommon, cost: 100},
		{name: "negative ip clamps", currency: 0, ip: -3, rarity: mechanics.RarityCommon, cost: 25},
		{name: "negative currency floors at base", currency: -4, ip: 7, rarity: mechanics.RarityRare, cost: 500},
		{name: "fractional surcharge floors", currency: 1, ip: 11, rarity: mechanics.RarityEpic, cost: 2812},
		{name: "legendary", currency: 2, ip: 12.5, rarity: mechanics.RarityLegendary, cost: 12500},
		{name: "mythic", currency: 0, ip: 16, rarity: mechanics.RarityMythic, cost: 50000},
		{name: "ascended", currency: 0, ip: 16.01, rarity: mechanics.RarityAscended, cost: 100000},
		{name: "unbounded ip", currency: 0, ip: 1e6, rarity: mechanics.RarityAscended, cost: 100000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := cost.CalculateCurrencyCostAndRarity(tc.currency, tc.ip)
			assert.Equal(t, tc.rarity, result.Rarity)
			assert.Equal(t, tc.cost, result.CurrencyCost)
			assert.Equal(t, tc.rarity, result.Bracket.Name)
		})
	}
}

func TestRarityForIPCoversWholeRange(t *testing.T) {
	previous := -1
	for ip := 0.0; ip <= 20; ip += 0.005 {
		bracket := cost.RarityForIP(ip)
		index := slices.IndexFunc(mechanics.RarityBrackets, func(b mechanics.RarityBracket) bool {
			return b.Name == bracket.Name
		})
		assert.GreaterOrEqual(t, index, previous, "ip %v", ip)
		previous = index
	}

	assert.Equal(t, mechanics.RarityAscended, cost.RarityForIP(math.Inf(1)).Name)
}
