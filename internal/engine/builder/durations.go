package builder

// Value tables for the indexed duration units. The option level of the base duration part
// is the index of the value in its table.
var durationValues = map[DurationUnit][]int{
	DurationMinutes: {1, 10, 30},
	DurationHours:   {1, 6, 12},
	DurationDays:    {1, 7, 14, 30, 365},
}

// DurationValues returns the selectable values of an indexed unit, nil for rounds and permanent
func DurationValues(unit DurationUnit) []int {
	return durationValues[unit]
}

// durationLevel maps a unit/value pair to the base duration option level
func durationLevel(unit DurationUnit, value int) (int, bool) {
	switch unit {
	case DurationRounds:
		if value > 1 {
			return value - 2, true
		}
		return 0, false
	case DurationPermanent:
		return 0, true
	}

	for i, v := range durationValues[unit] {
		if v == value {
			return i, true
		}
	}
	return 0, false
}

// DurationValueForLevel inverts the level mapping for display
func DurationValueForLevel(unit DurationUnit, level int) (int, bool) {
	if level < 0 {
		return 0, false
	}
	switch unit {
	case DurationRounds:
		return level + 2, true
	case DurationPermanent:
		return 0, true
	}

	values := durationValues[unit]
	if level >= len(values) {
		return 0, false
	}
	return values[level], true
}
