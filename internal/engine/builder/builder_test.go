package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-mechanics/internal/engine/builder"
	"github.com/KirkDiggler/rpg-mechanics/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
	"github.com/KirkDiggler/rpg-mechanics/internal/testutils"
)

type BuilderTestSuite struct {
	suite.Suite
	powerParts     []mechanics.PartDefinition
	techniqueParts []mechanics.PartDefinition
}

func (s *BuilderTestSuite) SetupTest() {
	s.powerParts = testutils.SamplePowerParts()
	s.techniqueParts = testutils.SampleTechniqueParts()
}

type emitted struct {
	id    int
	level int
}

func summarize(refs []mechanics.PartReference) []emitted {
	out := make([]emitted, 0, len(refs))
	for _, ref := range refs {
		id := -1
		if ref.ID != nil {
			id = *ref.ID
		}
		out = append(out, emitted{id: id, level: ref.Op1Level})
	}
	return out
}

func (s *BuilderTestSuite) TestActionParts() {
	testCases := []struct {
		name     string
		cfg      builder.ActionConfig
		expected []emitted
	}{
		{name: "basic action", cfg: builder.ActionConfig{Type: builder.ActionBasic}, expected: []emitted{}},
		{name: "quick", cfg: builder.ActionConfig{Type: builder.ActionQuick}, expected: []emitted{{2, 0}}},
		{name: "free", cfg: builder.ActionConfig{Type: builder.ActionFree}, expected: []emitted{{2, 1}}},
		{name: "long 3", cfg: builder.ActionConfig{Type: builder.ActionLong3}, expected: []emitted{{3, 0}}},
		{name: "long 4", cfg: builder.ActionConfig{Type: builder.ActionLong4}, expected: []emitted{{3, 1}}},
		{
			name:     "basic reaction",
			cfg:      builder.ActionConfig{Type: builder.ActionBasic, Reaction: true},
			expected: []emitted{{1, 0}},
		},
		{
			name:     "free reaction",
			cfg:      builder.ActionConfig{Type: builder.ActionFree, Reaction: true},
			expected: []emitted{{1, 0}, {2, 1}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			refs := builder.ActionParts(s.powerParts, tc.cfg)
			s.Equal(tc.expected, summarize(refs))
		})
	}
}

func (s *BuilderTestSuite) TestNonMechanicPartsAreDropped() {
	parts := testutils.SamplePowerParts()
	for i := range parts {
		if parts[i].Name == catalog.Reaction.Name {
			parts[i].Mechanic = false
		}
	}

	refs := builder.ActionParts(parts, builder.ActionConfig{Type: builder.ActionQuick, Reaction: true})
	s.Equal([]emitted{{2, 0}}, summarize(refs))
}

func (s *BuilderTestSuite) TestUnresolvedPartsAreDropped() {
	refs := builder.ActionParts(nil, builder.ActionConfig{Type: builder.ActionLong4, Reaction: true})
	s.Empty(refs)
}

func (s *BuilderTestSuite) TestMarkersResolveByNameInRenumberedCatalog() {
	parts := testutils.SamplePowerParts()
	for i := range parts {
		parts[i].ID += 100
	}

	refs := builder.RangeParts(parts, 2)
	s.Require().Len(refs, 1)
	s.Equal(113, *refs[0].ID)
	s.Equal("Power Range", refs[0].Name)
	s.Equal(1, refs[0].Op1Level)
}

func (s *BuilderTestSuite) TestMarkersIgnoreUnrelatedPartsSharingIDs() {
	parts := []mechanics.PartDefinition{
		{ID: 1, Name: "Flight", Mechanic: true},
		{ID: 11, Name: "Invisibility", Mechanic: true},
		{ID: 40, Name: "Physical Damage", Mechanic: true},
	}

	refs := builder.PowerDamageParts(parts, []mechanics.DamageConfig{{Amount: 2, Size: 6, Type: "slashing"}})
	s.Require().Len(refs, 1)
	s.Equal(40, *refs[0].ID)
	s.Equal("Physical Damage", refs[0].Name)
	s.Equal(4, refs[0].Op1Level)

	s.Empty(builder.ActionParts(parts, builder.ActionConfig{Type: builder.ActionBasic, Reaction: true}))
}

func (s *BuilderTestSuite) TestPowerDamageParts() {
	testCases := []struct {
		name     string
		damage   []mechanics.DamageConfig
		expected []emitted
	}{
		{
			name:     "2d6 slashing",
			damage:   []mechanics.DamageConfig{{Amount: 2, Size: 6, Type: "slashing"}},
			expected: []emitted{{11, 4}, {12, 0}},
		},
		{
			name:     "single die has no split",
			damage:   []mechanics.DamageConfig{{Amount: 1, Size: 10, Type: "fire"}},
			expected: []emitted{{6, 3}},
		},
		{
			name:     "radiant maps to light",
			damage:   []mechanics.DamageConfig{{Amount: 1, Size: 4, Type: "radiant"}},
			expected: []emitted{{5, 0}},
		},
		{
			name:     "d12s never split",
			damage:   []mechanics.DamageConfig{{Amount: 3, Size: 12, Type: "necrotic"}},
			expected: []emitted{{7, 16}},
		},
		{
			name: "split uses the largest die size",
			damage: []mechanics.DamageConfig{
				{Amount: 2, Size: 4, Type: "acid"},
				{Amount: 1, Size: 6, Type: "psychic"},
			},
			expected: []emitted{{6, 2}, {10, 1}, {12, 0}},
		},
		{
			name: "largest die can remove the split",
			damage: []mechanics.DamageConfig{
				{Amount: 1, Size: 4, Type: "fire"},
				{Amount: 1, Size: 12, Type: "cold"},
			},
			expected: []emitted{{6, 0}, {6, 4}},
		},
		{
			name: "none and invalid rows are ignored",
			damage: []mechanics.DamageConfig{
				{Amount: 4, Size: 6, Type: mechanics.DamageTypeNone},
				{Amount: 0, Size: 6, Type: "fire"},
				{Amount: 2, Size: 3, Type: "fire"},
			},
			expected: []emitted{},
		},
		{
			name:     "d20 is not a damage die",
			damage:   []mechanics.DamageConfig{{Amount: 1, Size: 20, Type: "slashing"}},
			expected: []emitted{},
		},
		{
			name:     "unknown type still counts toward splits",
			damage:   []mechanics.DamageConfig{{Amount: 4, Size: 4, Type: "force"}},
			expected: []emitted{{12, 1}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			refs := builder.PowerDamageParts(s.powerParts, tc.damage)
			s.Equal(tc.expected, summarize(refs))
		})
	}
}

func (s *BuilderTestSuite) TestTechniqueDamageParts() {
	testCases := []struct {
		name     string
		damage   mechanics.DamageConfig
		expected []emitted
	}{
		{name: "2d6", damage: mechanics.DamageConfig{Amount: 2, Size: 6, Type: "slashing"}, expected: []emitted{{28, 2}, {12, 0}}},
		{name: "1d4 baseline", damage: mechanics.DamageConfig{Amount: 1, Size: 4, Type: "piercing"}, expected: []emitted{{28, 0}}},
		{name: "1d12", damage: mechanics.DamageConfig{Amount: 1, Size: 12, Type: "fire"}, expected: []emitted{{28, 2}}},
		{name: "4d8", damage: mechanics.DamageConfig{Amount: 4, Size: 8, Type: "cold"}, expected: []emitted{{28, 7}, {12, 0}}},
		{name: "none", damage: mechanics.DamageConfig{Amount: 2, Size: 6, Type: mechanics.DamageTypeNone}, expected: []emitted{}},
		{name: "invalid die", damage: mechanics.DamageConfig{Amount: 2, Size: 7, Type: "fire"}, expected: []emitted{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			refs := builder.TechniqueDamageParts(s.techniqueParts, tc.damage)
			s.Equal(tc.expected, summarize(refs))
		})
	}
}

func (s *BuilderTestSuite) TestRangeAndArea() {
	s.Empty(builder.RangeParts(s.powerParts, 0))
	s.Equal([]emitted{{13, 2}}, summarize(builder.RangeParts(s.powerParts, 3)))

	s.Empty(builder.AreaParts(s.powerParts, builder.AreaConfig{Shape: builder.AreaCone, Level: 0}))
	s.Empty(builder.AreaParts(s.powerParts, builder.AreaConfig{Shape: "blob", Level: 2}))
	s.Equal([]emitted{{16, 1}}, summarize(builder.AreaParts(s.powerParts, builder.AreaConfig{Shape: builder.AreaCone, Level: 2})))
	s.Equal([]emitted{{18, 0}}, summarize(builder.AreaParts(s.powerParts, builder.AreaConfig{Shape: builder.AreaTrail, Level: 1})))
}

func (s *BuilderTestSuite) TestDurationParts() {
	testCases := []struct {
		name     string
		cfg      builder.DurationConfig
		expected []emitted
	}{
		{
			name:     "one round emits nothing",
			cfg:      builder.DurationConfig{Unit: builder.DurationRounds, Value: 1},
			expected: []emitted{},
		},
		{
			name:     "three rounds",
			cfg:      builder.DurationConfig{Unit: builder.DurationRounds, Value: 3},
			expected: []emitted{{23, 1}},
		},
		{
			name: "ten minutes with modifiers",
			cfg: builder.DurationConfig{
				Unit:    builder.DurationMinutes,
				Value:   10,
				Focus:   true,
				Sustain: 2,
			},
			expected: []emitted{{19, 0}, {22, 1}, {24, 1}},
		},
		{
			name:     "unlisted minute value",
			cfg:      builder.DurationConfig{Unit: builder.DurationMinutes, Value: 5, NoHarm: true},
			expected: []emitted{{20, 0}},
		},
		{
			name:     "twelve hours",
			cfg:      builder.DurationConfig{Unit: builder.DurationHours, Value: 12, EndsOnActivation: true},
			expected: []emitted{{21, 0}, {25, 2}},
		},
		{
			name:     "a year",
			cfg:      builder.DurationConfig{Unit: builder.DurationDays, Value: 365},
			expected: []emitted{{26, 4}},
		},
		{
			name:     "permanent ignores value",
			cfg:      builder.DurationConfig{Unit: builder.DurationPermanent, Value: 99},
			expected: []emitted{{27, 0}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			refs := builder.DurationParts(s.powerParts, tc.cfg)
			s.Equal(tc.expected, summarize(refs))
		})
	}
}

func (s *BuilderTestSuite) TestWeaponParts() {
	s.Empty(builder.WeaponParts(s.techniqueParts, builder.WeaponConfig{TP: 0}))
	s.Equal([]emitted{{29, 1}}, summarize(builder.WeaponParts(s.techniqueParts, builder.WeaponConfig{TP: 2})))
}

func (s *BuilderTestSuite) TestBuildPower() {
	flight := mechanics.RefByID(testutils.FlightPartID).WithLevels(-1, 2, 0)

	refs := builder.BuildPower(s.powerParts, builder.PowerConfig{
		Action:   builder.ActionConfig{Type: builder.ActionQuick},
		Damage:   []mechanics.DamageConfig{{Amount: 2, Size: 6, Type: "slashing"}},
		Range:    2,
		Area:     &builder.AreaConfig{Shape: builder.AreaSphere, Level: 1},
		Duration: &builder.DurationConfig{Unit: builder.DurationMinutes, Value: 1},
		Parts:    []mechanics.PartReference{flight},
	})

	s.Equal([]emitted{{2, 0}, {11, 4}, {12, 0}, {13, 1}, {14, 0}, {24, 0}, {testutils.FlightPartID, 0}}, summarize(refs))
	s.Equal(2, refs[len(refs)-1].Op2Level)
	s.Equal(-1, flight.Op1Level, "input references are not mutated")
}

func (s *BuilderTestSuite) TestBuildTechnique() {
	refs := builder.BuildTechnique(s.techniqueParts, builder.TechniqueConfig{
		Action: builder.ActionConfig{Type: builder.ActionBasic, Reaction: true},
		Damage: &mechanics.DamageConfig{Amount: 2, Size: 6, Type: "slashing"},
		Weapon: builder.WeaponConfig{TP: 1},
		Parts:  []mechanics.PartReference{mechanics.RefByName("Precise Strike")},
	})

	s.Equal([]emitted{{1, 0}, {28, 2}, {12, 0}, {29, 0}, {-1, 0}}, summarize(refs))
	s.Equal("Precise Strike", refs[4].Name)
}

func TestBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func TestComputeSplits(t *testing.T) {
	for _, size := range []int{4, 6, 8, 10, 12} {
		for amount := 0; amount <= 20; amount++ {
			expected := 0
			if amount > 1 {
				expected = max(0, amount-(amount*size+11)/12)
			}
			assert.Equal(t, expected, builder.ComputeSplits(amount, size), "%dd%d", amount, size)
		}
	}

	assert.Equal(t, 1, builder.ComputeSplits(2, 6))
	assert.Equal(t, 0, builder.ComputeSplits(5, 12))
	assert.Equal(t, 4, builder.ComputeSplits(6, 4))
}

func TestPowerDamageLevelIsMonotonic(t *testing.T) {
	previous := -1
	for product := 1; product <= 240; product++ {
		level := builder.PowerDamageLevel(product, 1)
		require.GreaterOrEqual(t, level, previous, "product %d", product)
		require.GreaterOrEqual(t, level, 0)
		previous = level
	}

	assert.Equal(t, 4, builder.PowerDamageLevel(2, 6))
	assert.Equal(t, 0, builder.PowerDamageLevel(1, 4))
	assert.Equal(t, 0, builder.PowerDamageLevel(1, 1))
}

func TestDurationValueForLevel(t *testing.T) {
	value, ok := builder.DurationValueForLevel(builder.DurationDays, 3)
	assert.True(t, ok)
	assert.Equal(t, 30, value)

	value, ok = builder.DurationValueForLevel(builder.DurationRounds, 1)
	assert.True(t, ok)
	assert.Equal(t, 3, value)

	_, ok = builder.DurationValueForLevel(builder.DurationHours, 3)
	assert.False(t, ok)

	assert.Equal(t, []int{1, 10, 30}, builder.DurationValues(builder.DurationMinutes))
	assert.Nil(t, builder.DurationValues(builder.DurationRounds))
}
