package converter

// Category selects one of the three conversion buttons.
type Category int

const (
	Length Category = iota
	Weight
	Temperature
)

// Categories lists every category in button order.
var Categories = []Category{Length, Weight, Temperature}

func (c Category) String() string {
	switch c {
	case Length:
		return "length"
	case Weight:
		return "weight"
	case Temperature:
		return "temp"
	default:
		return "unknown"
	}
}

// Label is the button caption.
func (c Category) Label() string {
	switch c {
	case Length:
		return "Longitud"
	case Weight:
		return "Peso"
	case Temperature:
		return "Temperatura"
	default:
		return ""
	}
}

// Forward is the direction applied on the first press of the category.
func (c Category) Forward() Direction {
	switch c {
	case Length:
		return MetersToFeet
	case Weight:
		return KilogramsToPounds
	case Temperature:
		return CelsiusToFahrenheit
	default:
		return DirectionNone
	}
}

// Backward is the direction applied when the previous conversion was Forward.
func (c Category) Backward() Direction {
	switch c {
	case Length:
		return FeetToMeters
	case Weight:
		return PoundsToKilograms
	case Temperature:
		return FahrenheitToCelsius
	default:
		return DirectionNone
	}
}

// Next reports the direction a press of c would apply after last.
func (c Category) Next(last Direction) Direction {
	if last == c.Forward() {
		return c.Backward()
	}
	return c.Forward()
}

func (c Category) valid() bool {
	return c >= Length && c <= Temperature
}

// Direction is one half of a category toggle.
type Direction int

const (
	DirectionNone Direction = iota
	MetersToFeet
	FeetToMeters
	KilogramsToPounds
	PoundsToKilograms
	CelsiusToFahrenheit
	FahrenheitToCelsius
)

type directionSpec struct {
	id       string
	category Category
	from     string
	to       string
	apply    func(float64) float64
}

var directions = map[Direction]directionSpec{
	MetersToFeet: {
		id: "length_m_to_ft", category: Length, from: "metros", to: "pies",
		apply: func(v float64) float64 { return v * 3.28084 },
	},
	FeetToMeters: {
		id: "length_ft_to_m", category: Length, from: "pies", to: "metros",
		apply: func(v float64) float64 { return v * 0.3048 },
	},
	KilogramsToPounds: {
		id: "weight_kg_to_lb", category: Weight, from: "kilogramos", to: "libras",
		apply: func(v float64) float64 { return v * 2.20462 },
	},
	PoundsToKilograms: {
		id: "weight_lb_to_kg", category: Weight, from: "libras", to: "kilogramos",
		apply: func(v float64) float64 { return v * 0.453592 },
	},
	CelsiusToFahrenheit: {
		id: "temp_c_to_f", category: Temperature, from: "°C", to: "°F",
		apply: func(v float64) float64 { return v*9/5 + 32 },
	},
	FahrenheitToCelsius: {
		id: "temp_f_to_c", category: Temperature, from: "°F", to: "°C",
		apply: func(v float64) float64 { return (v - 32) * 5 / 9 },
	},
}

func (d Direction) String() string {
	if spec, ok := directions[d]; ok {
		return spec.id
	}
	return "none"
}

// Category returns the category the direction belongs to.
func (d Direction) Category() (Category, bool) {
	spec, ok := directions[d]
	return spec.category, ok
}

// Units returns the source and target unit labels.
func (d Direction) Units() (from, to string) {
	spec := directions[d]
	return spec.from, spec.to
}

// Apply evaluates the direction's formula. DirectionNone returns v unchanged.
func (d Direction) Apply(v float64) float64 {
	spec, ok := directions[d]
	if !ok {
		return v
	}
	return spec.apply(v)
}
