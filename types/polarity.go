package types

type Polarity int8

func (p Polarity) Name() string {
	switch p {
	case PolarityAffirmative:
		return "affirmative"
	case PolarityNegative:
		return "negative"
	default:
		return "unknown"
	}
}

// Opposite returns the polarity a rewrite produces.
func (p Polarity) Opposite() Polarity {
	switch p {
	case PolarityAffirmative:
		return PolarityNegative
	case PolarityNegative:
		return PolarityAffirmative
	default:
		return PolarityUnknown
	}
}

const (
	PolarityAffirmative Polarity = 1
	PolarityNegative    Polarity = -1
	PolarityUnknown     Polarity = 0
)

type Direction string

const (
	DirectionToggle      Direction = "toggle"
	DirectionAffirmative Direction = "affirmative"
	DirectionNegative    Direction = "negative"
)

func (d Direction) IsValid() bool {
	return d == DirectionToggle || d == DirectionAffirmative || d == DirectionNegative
}

// Target returns the polarity a sentence with polarity current should end up in.
func (d Direction) Target(current Polarity) Polarity {
	switch d {
	case DirectionAffirmative:
		return PolarityAffirmative
	case DirectionNegative:
		return PolarityNegative
	default:
		return current.Opposite()
	}
}
