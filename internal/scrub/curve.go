package scrub

import (
	"fmt"
	"math"
	"strings"
)

// Curve selects how emphasis decays with distance from the scrub position.
type Curve string

const (
	CurveLinear    Curve = "linear"
	CurveSine      Curve = "sine"
	CurveQuadratic Curve = "quadratic"
)

// Curves lists the supported curves.
var Curves = []Curve{CurveLinear, CurveSine, CurveQuadratic}

// ParseCurve resolves a curve name, case-insensitively. Empty selects sine.
func ParseCurve(s string) (Curve, error) {
	name := Curve(strings.ToLower(strings.TrimSpace(s)))
	if name == "" {
		return CurveSine, nil
	}
	for _, c := range Curves {
		if c == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCurve, s)
}

// falloff maps a normalised distance t in [0, 1] to a weight in [0, 1]:
// 1 at t=0, 0 at t>=1.
func (c Curve) falloff(t float64) float64 {
	if t <= 0 {
		return 1
	}
	if t >= 1 {
		return 0
	}
	switch c {
	case CurveLinear:
		return 1 - t
	case CurveQuadratic:
		return (1 - t) * (1 - t)
	default:
		return (1 + math.Cos(math.Pi*t)) / 2
	}
}
