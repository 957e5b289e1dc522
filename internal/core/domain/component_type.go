package domain

import "fmt"

// ComponentType is the closed set of component kinds a bike can carry.
type ComponentType string

const (
	Chain           ComponentType = "chain"
	Cassette        ComponentType = "cassette"
	Chainrings      ComponentType = "chainrings"
	BottomBracket   ComponentType = "bottom_bracket"
	PulleyWheels    ComponentType = "pulley_wheels"
	TireFront       ComponentType = "tire_front"
	TireRear        ComponentType = "tire_rear"
	InnerTubeFront  ComponentType = "inner_tube_front"
	InnerTubeRear   ComponentType = "inner_tube_rear"
	BrakePadsFront  ComponentType = "brake_pads_front"
	BrakePadsRear   ComponentType = "brake_pads_rear"
	BrakeRotorFront ComponentType = "brake_rotor_front"
	BrakeRotorRear  ComponentType = "brake_rotor_rear"
	ShiftCables     ComponentType = "shift_cables"
	BrakeCables     ComponentType = "brake_cables"

	// Legacy types produced by the unconfigured generator.
	Cables      ComponentType = "cables"
	BrakeRotors ComponentType = "brake_rotors"

	Custom ComponentType = "custom"
)

// Types removed from the catalog. Stored rows are cleaned up by migration
// 00002_remove_obsolete_component_types.
var DeprecatedTypes = []string{"bar_tape", "brake_pads"}

type Category string

const (
	CategoryDrivetrain Category = "Drivetrain"
	CategoryWheels     Category = "Wheels"
	CategoryBrakes     Category = "Brakes"
	CategoryOther      Category = "Other"
)

var CategoryOrder = []Category{CategoryDrivetrain, CategoryWheels, CategoryBrakes, CategoryOther}

type typeInfo struct {
	name     string
	category Category
	icon     string
}

var catalog = map[ComponentType]typeInfo{
	Chain:           {"Chain", CategoryDrivetrain, "link"},
	Cassette:        {"Cassette", CategoryDrivetrain, "disc3"},
	Chainrings:      {"Chainrings", CategoryDrivetrain, "cog"},
	BottomBracket:   {"Bottom Bracket", CategoryDrivetrain, "hexagon"},
	PulleyWheels:    {"Pulley Wheels", CategoryDrivetrain, "cog"},
	TireFront:       {"Front Tire", CategoryWheels, "circle-dot"},
	TireRear:        {"Rear Tire", CategoryWheels, "circle-dot"},
	InnerTubeFront:  {"Front Inner Tube", CategoryWheels, "circle-dashed"},
	InnerTubeRear:   {"Rear Inner Tube", CategoryWheels, "circle-dashed"},
	BrakePadsFront:  {"Front Brake Pads", CategoryBrakes, "hand"},
	BrakePadsRear:   {"Rear Brake Pads", CategoryBrakes, "hand"},
	BrakeRotorFront: {"Front Brake Rotor", CategoryBrakes, "disc"},
	BrakeRotorRear:  {"Rear Brake Rotor", CategoryBrakes, "disc"},
	ShiftCables:     {"Shift Cables & Housing", CategoryOther, "cable"},
	BrakeCables:     {"Brake Cables & Housing", CategoryOther, "cable"},
	Cables:          {"Cables", CategoryOther, "cable"},
	BrakeRotors:     {"Brake Rotors", CategoryBrakes, "disc"},
	Custom:          {"Custom", CategoryOther, "wrench"},
}

// ParseComponentType validates s against the catalog.
func ParseComponentType(s string) (ComponentType, error) {
	t := ComponentType(s)
	if _, ok := catalog[t]; !ok {
		return "", fmt.Errorf("%w: unknown component type %q", ErrInvalidInput, s)
	}
	return t, nil
}

func (t ComponentType) Valid() bool {
	_, ok := catalog[t]
	return ok
}

func (t ComponentType) DisplayName() string {
	if info, ok := catalog[t]; ok {
		return info.name
	}
	return string(t)
}

// Category falls back to Other for anything the catalog does not know.
func (t ComponentType) Category() Category {
	if info, ok := catalog[t]; ok {
		return info.category
	}
	return CategoryOther
}

// Icon returns the icon key used when a component carries no custom icon.
func (t ComponentType) Icon() string {
	if info, ok := catalog[t]; ok {
		return info.icon
	}
	return "wrench"
}

// Family is a front/rear pair rendered together.
type Family struct {
	Label string        `json:"label"`
	Front ComponentType `json:"front_type"`
	Rear  ComponentType `json:"rear_type"`
}

var Families = []Family{
	{Label: "Tires", Front: TireFront, Rear: TireRear},
	{Label: "Inner Tubes", Front: InnerTubeFront, Rear: InnerTubeRear},
	{Label: "Brake Pads", Front: BrakePadsFront, Rear: BrakePadsRear},
	{Label: "Brake Rotors", Front: BrakeRotorFront, Rear: BrakeRotorRear},
}

// FamilyOf returns the family t belongs to, if any.
func FamilyOf(t ComponentType) (Family, bool) {
	for _, f := range Families {
		if f.Front == t || f.Rear == t {
			return f, true
		}
	}
	return Family{}, false
}

// Icon keys offered for custom components.
var CustomIconKeys = []string{
	"wrench", "cog", "link", "disc", "disc3", "circle-dot", "hexagon", "hand",
	"cable", "gauge", "lightbulb", "shield", "zap", "layers", "grip", "box",
	"ruler", "timer", "circle-dashed", "bolt",
}
