package components

// FieldDescriptor describes a vehicle field for UI display.
type FieldDescriptor struct {
	ID         string  // Unique identifier
	Label      string  // Display name
	Format     string  // Printf format (e.g., "%.2f")
	Min        float32 // Minimum value (for bars)
	Max        float32 // Maximum value (for bars)
	IsCentered bool    // True for centered bar display
	IsBar      bool    // True to render as progress bar
	Group      string  // Logical grouping
}

// VehicleFieldDescriptors returns metadata for the fields shown in the inspector.
// Field IDs must match cases in GetVehicleValue().
func VehicleFieldDescriptors() []FieldDescriptor {
	return []FieldDescriptor{
		{ID: "x", Label: "X", Format: "%.1f", Group: "pose"},
		{ID: "y", Label: "Y", Format: "%.1f", Group: "pose"},
		{ID: "heading", Label: "Heading", Format: "%.1f", Group: "pose"},
		{ID: "left", Label: "Left", Format: "%.3f", Min: 0, Max: 5, IsBar: true, Group: "motor"},
		{ID: "right", Label: "Right", Format: "%.3f", Min: 0, Max: 5, IsBar: true, Group: "motor"},
		{ID: "turn", Label: "Turn", Format: "%+.3f", Min: -5, Max: 5, IsBar: true, IsCentered: true, Group: "motor"},
		{ID: "speed", Label: "Speed", Format: "%.3f", Min: 0, Max: 10, IsBar: true, Group: "motor"},
	}
}

// VehicleGroups returns the logical groupings for vehicle fields.
func VehicleGroups() []string {
	return []string{"pose", "motor"}
}

// GetVehicleValue extracts a vehicle field value by ID. Motor values come from
// the last applied motion because pending activations are zero between ticks.
func GetVehicleValue(v *Vehicle, fieldID string) float32 {
	switch fieldID {
	case "x":
		return v.Pos.X
	case "y":
		return v.Pos.Y
	case "heading":
		return v.Heading
	case "left":
		return v.Motion.Left
	case "right":
		return v.Motion.Right
	case "turn":
		return v.Motion.Turn
	case "speed":
		return v.Motion.Speed
	default:
		return 0
	}
}
