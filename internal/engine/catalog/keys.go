package catalog

// Well-known parts the builder emits and the display derivers scan for. They are matched by
// name only; catalog ids are assigned by whoever authors the catalog.
var (
	// Action parts
	Reaction          = PartKey{Name: "Reaction"}
	QuickOrFreeAction = PartKey{Name: "Quick or Free Action"}
	LongAction        = PartKey{Name: "Long Action"}

	// Power damage categories
	MagicDamage     = PartKey{Name: "Magic Damage"}
	LightDamage     = PartKey{Name: "Light Damage"}
	ElementalDamage = PartKey{Name: "Elemental Damage"}
	PoisonDamage    = PartKey{Name: "Poison or Necrotic Damage"}
	SonicDamage     = PartKey{Name: "Sonic Damage"}
	SpiritualDamage = PartKey{Name: "Spiritual Damage"}
	PsychicDamage   = PartKey{Name: "Psychic Damage"}
	PhysicalDamage  = PartKey{Name: "Physical Damage"}
	SplitDamageDice = PartKey{Name: "Split Damage Dice"}

	PowerRange = PartKey{Name: "Power Range"}

	// Areas of effect
	SphereOfEffect   = PartKey{Name: "Sphere of Effect"}
	CylinderOfEffect = PartKey{Name: "Cylinder of Effect"}
	ConeOfEffect     = PartKey{Name: "Cone of Effect"}
	LineOfEffect     = PartKey{Name: "Line of Effect"}
	TrailOfEffect    = PartKey{Name: "Trail of Effect"}

	// Duration modifiers
	Focus            = PartKey{Name: "Focus"}
	NoHarm           = PartKey{Name: "No Harm or Adaptation Parts"}
	EndsOnActivation = PartKey{Name: "Duration Ends on Activation"}
	Sustain          = PartKey{Name: "Sustain"}

	// Base durations
	DurationRound     = PartKey{Name: "Duration (Round)"}
	DurationMinute    = PartKey{Name: "Duration (Minute)"}
	DurationHour      = PartKey{Name: "Duration (Hour)"}
	DurationDays      = PartKey{Name: "Duration (Days)"}
	DurationPermanent = PartKey{Name: "Duration (Permanent)"}

	// Technique parts
	AdditionalDamage = PartKey{Name: "Additional Damage"}
	AddWeaponAttack  = PartKey{Name: "Add Weapon Attack"}

	// Item properties
	ItemRange       = PartKey{Name: "Range"}
	DamageReduction = PartKey{Name: "Damage Reduction"}
)
