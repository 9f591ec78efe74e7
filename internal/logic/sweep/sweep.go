// Package sweep evaluates the beam-angle calculator over a range of dive
// pitches, the way the mounting-angle trade study was run: fix the roll,
// scan the pitch, and look at how the four beams move.
package sweep

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cjeanneret/BeamGo/internal/logic/geometry"
)

// Point pairs one sampled dive pitch with the beam angles it produces.
type Point struct {
	PitchDeg float64
	Angles   geometry.BeamAngles
}

// Balance is the result of a dive-pitch balance search.
type Balance struct {
	PitchDeg    float64             // sampled pitch with the best fore/port match
	Angles      geometry.BeamAngles // beam angles at that pitch
	MismatchDeg float64             // |fore − port| at that pitch
}

// Pitch samples the calculator at n evenly spaced pitches between fromDeg
// and toDeg (inclusive), holding roll fixed.
func Pitch(calc *geometry.BeamCalculator, rollDeg, fromDeg, toDeg float64, n int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 samples, got %d", n)
	}
	if fromDeg > toDeg {
		return nil, fmt.Errorf("sweep start %g is beyond end %g", fromDeg, toDeg)
	}

	grid := floats.Span(make([]float64, n), fromDeg, toDeg)
	points := make([]Point, n)
	for i, pitch := range grid {
		points[i] = Point{
			PitchDeg: pitch,
			Angles:   calc.AnglesFromVertical(geometry.Attitude{PitchDeg: pitch, RollDeg: rollDeg}),
		}
	}
	return points, nil
}

// BalancePitch scans the same grid as Pitch and returns the sampled pitch
// at which the fore beam most nearly matches the port/starboard pair.
// For the default head (47.5/25) this lands near 17.4 degrees, where three
// of the four beams sit at ~30 degrees from vertical.
func BalancePitch(calc *geometry.BeamCalculator, rollDeg, fromDeg, toDeg float64, n int) (Balance, error) {
	points, err := Pitch(calc, rollDeg, fromDeg, toDeg, n)
	if err != nil {
		return Balance{}, err
	}

	mismatch := make([]float64, len(points))
	for i, pt := range points {
		mismatch[i] = math.Abs(pt.Angles.Fore - pt.Angles.Port)
	}
	best := floats.MinIdx(mismatch)

	return Balance{
		PitchDeg:    points[best].PitchDeg,
		Angles:      points[best].Angles,
		MismatchDeg: mismatch[best],
	}, nil
}
