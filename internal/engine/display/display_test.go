package display_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-mechanics/internal/engine/builder"
	"github.com/KirkDiggler/rpg-mechanics/internal/engine/display"
	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
	"github.com/KirkDiggler/rpg-mechanics/internal/testutils"
)

type DisplayTestSuite struct {
	suite.Suite
	powerParts []mechanics.PartDefinition
	itemParts  []mechanics.PartDefinition
}

func (s *DisplayTestSuite) SetupTest() {
	s.powerParts = testutils.SamplePowerParts()
	s.itemParts = testutils.SampleItemParts()
}

func (s *DisplayTestSuite) TestActionType() {
	testCases := []struct {
		name     string
		cfg      builder.ActionConfig
		expected string
	}{
		{name: "basic", cfg: builder.ActionConfig{Type: builder.ActionBasic}, expected: "Basic Action"},
		{name: "quick", cfg: builder.ActionConfig{Type: builder.ActionQuick}, expected: "Quick Action"},
		{name: "free reaction", cfg: builder.ActionConfig{Type: builder.ActionFree, Reaction: true}, expected: "Free Reaction"},
		{name: "long 3", cfg: builder.ActionConfig{Type: builder.ActionLong3}, expected: "Long (3) Action"},
		{name: "long 4 reaction", cfg: builder.ActionConfig{Type: builder.ActionLong4, Reaction: true}, expected: "Long (4) Reaction"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			refs := builder.ActionParts(s.powerParts, tc.cfg)
			s.Equal(tc.expected, display.ActionType(refs, s.powerParts))
		})
	}
}

func (s *DisplayTestSuite) TestDefaults() {
	s.Equal("Basic Action", display.ActionType(nil, s.powerParts))
	s.Equal(display.DefaultPowerRange, display.PowerRange(nil, s.powerParts))
	s.Equal(display.DefaultPowerArea, display.PowerArea(nil, nil))
	s.Equal(display.DefaultPowerDuration, display.PowerDuration(nil, s.powerParts))
	s.Equal(display.DefaultItemRange, display.ItemRange(nil, s.itemParts))
	s.Equal(0, display.ItemDamageReduction(nil, s.itemParts))
	s.Equal("", display.Damage(nil))
}

func (s *DisplayTestSuite) TestUnresolvedReferencesUseDefaults() {
	refs := []mechanics.PartReference{mechanics.RefByID(999), mechanics.RefByName("Power Range")}

	s.Equal(display.DefaultPowerRange, display.PowerRange(refs, nil))
	s.Equal(display.DefaultPowerArea, display.PowerArea(refs, s.powerParts))
}

func (s *DisplayTestSuite) TestMarkersIgnoreUnrelatedPartsSharingIDs() {
	parts := []mechanics.PartDefinition{
		{ID: 1, Name: "Flight", Mechanic: true},
		{ID: 3, Name: "Invisibility", Mechanic: true},
		{ID: 13, Name: "Teleport", Mechanic: true},
	}
	refs := []mechanics.PartReference{
		mechanics.RefByID(1),
		mechanics.RefByID(3).WithLevels(1, 0, 0),
		mechanics.RefByID(13).WithLevels(4, 0, 0),
	}

	s.Equal("Basic Action", display.ActionType(refs, parts))
	s.Equal(display.DefaultPowerRange, display.PowerRange(refs, parts))
}

func (s *DisplayTestSuite) TestPowerRange() {
	s.Equal("3 spaces", display.PowerRange(builder.RangeParts(s.powerParts, 1), s.powerParts))
	s.Equal("12 spaces", display.PowerRange(builder.RangeParts(s.powerParts, 4), s.powerParts))
}

func (s *DisplayTestSuite) TestPowerArea() {
	testCases := []struct {
		cfg      builder.AreaConfig
		expected string
	}{
		{cfg: builder.AreaConfig{Shape: builder.AreaSphere, Level: 1}, expected: "1-space radius sphere"},
		{cfg: builder.AreaConfig{Shape: builder.AreaCylinder, Level: 3}, expected: "3-space radius cylinder"},
		{cfg: builder.AreaConfig{Shape: builder.AreaCone, Level: 2}, expected: "4-space cone"},
		{cfg: builder.AreaConfig{Shape: builder.AreaLine, Level: 1}, expected: "4-space line"},
		{cfg: builder.AreaConfig{Shape: builder.AreaTrail, Level: 3}, expected: "9-space trail"},
	}

	for _, tc := range testCases {
		s.Run(string(tc.cfg.Shape), func() {
			refs := builder.AreaParts(s.powerParts, tc.cfg)
			s.Equal(tc.expected, display.PowerArea(refs, s.powerParts))
		})
	}
}

func (s *DisplayTestSuite) TestPowerDuration() {
	testCases := []struct {
		name     string
		cfg      builder.DurationConfig
		expected string
	}{
		{
			name:     "minutes with modifiers",
			cfg:      builder.DurationConfig{Unit: builder.DurationMinutes, Value: 10, Focus: true, Sustain: 2},
			expected: "10 minutes (Focus, Sustain 2)",
		},
		{
			name:     "single hour",
			cfg:      builder.DurationConfig{Unit: builder.DurationHours, Value: 1},
			expected: "1 hour",
		},
		{
			name:     "rounds",
			cfg:      builder.DurationConfig{Unit: builder.DurationRounds, Value: 4},
			expected: "4 rounds",
		},
		{
			name:     "single round keeps modifiers",
			cfg:      builder.DurationConfig{Unit: builder.DurationRounds, Value: 1, NoHarm: true},
			expected: "1 round (No Harm)",
		},
		{
			name:     "permanent",
			cfg:      builder.DurationConfig{Unit: builder.DurationPermanent, EndsOnActivation: true},
			expected: "Permanent (Ends on Activation)",
		},
		{
			name:     "days",
			cfg:      builder.DurationConfig{Unit: builder.DurationDays, Value: 30},
			expected: "30 days",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			refs := builder.DurationParts(s.powerParts, tc.cfg)
			s.Equal(tc.expected, display.PowerDuration(refs, s.powerParts))
		})
	}
}

func (s *DisplayTestSuite) TestDamage() {
	damage := []mechanics.DamageConfig{
		{Amount: 2, Size: 6, Type: "slashing"},
		{Amount: 0, Size: 6, Type: "fire"},
		{Amount: 1, Size: 4, Type: mechanics.DamageTypeNone},
		{Amount: 1, Size: 4, Type: "fire"},
	}

	s.Equal("2d6 slashing, 1d4 fire", display.Damage(damage))
}

func (s *DisplayTestSuite) TestItemRangeAndDamageReduction() {
	refs := []mechanics.PartReference{
		mechanics.RefByName("Range").WithLevels(2, 0, 0),
		mechanics.RefByName("Damage Reduction").WithLevels(3, 0, 0),
	}

	s.Equal("24 spaces", display.ItemRange(refs, s.itemParts))
	s.Equal(4, display.ItemDamageReduction(refs, s.itemParts))

	s.Equal("8 spaces", display.ItemRange([]mechanics.PartReference{mechanics.RefByID(30)}, s.itemParts))
}

func (s *DisplayTestSuite) TestRarity() {
	s.Equal(mechanics.RarityCommon, display.Rarity(0))
	s.Equal(mechanics.RarityUncommon, display.Rarity(5))
	s.Equal(mechanics.RarityCommon, display.Rarity(-1))
}

func TestDisplayTestSuite(t *testing.T) {
	suite.Run(t, new(DisplayTestSuite))
}
