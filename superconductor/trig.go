package superconductor

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownExpression indicates a Trig expression that is not supported.
var ErrUnknownExpression = errors.New("superconductor: unknown trig expression")

// TrigFunc evaluates a function of the mixing angle β(Δk, λk).
type TrigFunc func(dk, lk float64) float64

// Supported Trig expressions. "beta" is accepted in place of "β".
const (
	Cos2Beta      = "cos^2 β"
	Sin2Beta      = "sin^2 β"
	CosDoubleBeta = "cos 2β"
	SinDoubleBeta = "sin 2β"
)

var trigTable = map[string]TrigFunc{
	normalize(Cos2Beta):      func(dk, lk float64) float64 { return 0.5 * (1 + dk/QuasiparticleEnergy(dk, lk)) },
	normalize(Sin2Beta):      func(dk, lk float64) float64 { return 0.5 * (1 - dk/QuasiparticleEnergy(dk, lk)) },
	normalize(CosDoubleBeta): func(dk, lk float64) float64 { return dk / QuasiparticleEnergy(dk, lk) },
	normalize(SinDoubleBeta): func(dk, lk float64) float64 { return lk / QuasiparticleEnergy(dk, lk) },
}

// normalize drops whitespace and spells β as a symbol.
func normalize(expr string) string {
	return strings.ReplaceAll(strings.Join(strings.Fields(expr), ""), "beta", "β")
}

// QuasiparticleEnergy returns √(Δk² + λk²).
func QuasiparticleEnergy(dk, lk float64) float64 { return math.Hypot(dk, lk) }

// Trig returns the function named by expr, e.g. "cos^2 β" or "sin^2 beta".
// Whitespace is insignificant.
func Trig(expr string) (TrigFunc, error) {
	f, ok := trigTable[normalize(expr)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", expr, ErrUnknownExpression)
	}

	return f, nil
}

// MustTrig is Trig for constant expressions; it panics on an unknown one.
func MustTrig(expr string) TrigFunc {
	f, err := Trig(expr)
	if err != nil {
		panic(err)
	}

	return f
}
