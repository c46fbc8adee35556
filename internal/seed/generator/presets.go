package generator

// Preset defines a named generation profile.
type Preset string

const (
	// PresetDemo recreates the three reference step-count rooms.
	PresetDemo Preset = "demo"

	// PresetNeighbourhood creates a handful of generated rooms with a
	// wider spread of creation dates.
	PresetNeighbourhood Preset = "neighbourhood"

	// PresetStress creates many short-lived rooms for volume testing.
	PresetStress Preset = "stress"
)

// PresetConfig holds the generation parameters for a preset.
type PresetConfig struct {
	// Number of users to generate (0 = the full nickname pool).
	Users int

	// Number of rooms to generate. Ignored by the demo preset, which
	// always creates its three fixed rooms.
	Rooms int

	// Room age range in days, counted back from now.
	RoomAgeMinDays int
	RoomAgeMaxDays int

	// Each room samples len(users)/MemberDivisor members.
	MemberDivisor int
}

// GetPresetConfig returns the configuration for a preset.
func GetPresetConfig(preset Preset) PresetConfig {
	switch preset {
	case PresetNeighbourhood:
		return PresetConfig{
			Users:          0,
			Rooms:          8,
			RoomAgeMinDays: 30,
			RoomAgeMaxDays: 120,
			MemberDivisor:  3,
		}

	case PresetStress:
		return PresetConfig{
			Users:          0,
			Rooms:          25,
			RoomAgeMinDays: 20,
			RoomAgeMaxDays: 60,
			MemberDivisor:  4,
		}

	case PresetDemo:
		fallthrough
	default:
		return PresetConfig{
			Users:          0,
			Rooms:          3,
			RoomAgeMinDays: 85,
			RoomAgeMaxDays: 100,
			MemberDivisor:  3,
		}
	}
}

// ValidPresets lists the presets accepted on the command line.
func ValidPresets() []Preset {
	return []Preset{PresetDemo, PresetNeighbourhood, PresetStress}
}
