package quantum

import (
	"errors"
	"fmt"
)

// ErrInvalidQuantumNumber indicates a label outside {−1, +1}.
var ErrInvalidQuantumNumber = errors.New("quantum: quantum number must be -1 or +1")

// Valley τ selects the +K or −K valley.
type Valley int

// Band n selects the conduction (+1) or valence (−1) band.
type Band int

// Spin s is the spin projection.
type Spin int

// Helicity v is the circular-polarization handedness.
type Helicity int

const (
	KPrime Valley = -1
	K      Valley = +1

	Valence    Band = -1
	Conduction Band = +1

	Down Spin = -1
	Up   Spin = +1

	Left  Helicity = -1
	Right Helicity = +1
)

// Check reports ErrInvalidQuantumNumber, naming the label, when q ∉ {−1, +1}.
func Check[T ~int](name string, q T) error {
	if q != 1 && q != -1 {
		return fmt.Errorf("%s=%d: %w", name, int(q), ErrInvalidQuantumNumber)
	}

	return nil
}

// Labels is one (n, τ, s) triple.
type Labels struct {
	N   Band
	Tau Valley
	S   Spin
}

// Validate checks every component of l.
func (l Labels) Validate() error {
	if err := Check("n", l.N); err != nil {
		return err
	}
	if err := Check("τ", l.Tau); err != nil {
		return err
	}

	return Check("s", l.S)
}

// TauS returns the spin–valley product τ·s.
func (l Labels) TauS() float64 { return float64(int(l.Tau) * int(l.S)) }

// String renders l as "(n=+1, τ=-1, s=+1)".
func (l Labels) String() string {
	return fmt.Sprintf("(n=%+d, τ=%+d, s=%+d)", int(l.N), int(l.Tau), int(l.S))
}

// AllLabels enumerates {−1,+1}³ as (n, τ, s) with n varying slowest.
func AllLabels() []Labels {
	out := make([]Labels, 0, 8)
	for _, n := range []Band{Valence, Conduction} {
		for _, tau := range []Valley{KPrime, K} {
			for _, s := range []Spin{Down, Up} {
				out = append(out, Labels{N: n, Tau: tau, S: s})
			}
		}
	}

	return out
}

// Helicities returns (−1, +1).
func Helicities() []Helicity { return []Helicity{Left, Right} }
