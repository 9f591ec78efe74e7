package geometry

import "math"

// Default mounting angles of the profiler head, from vertical,
// with the vehicle level.
const (
	DefaultForeAftDeg       = 47.5
	DefaultPortStarboardDeg = 25.0
)

// Mounting holds the design angles of the two transducer pairs,
// measured from vertical when the vehicle is level.
type Mounting struct {
	ForeAftDeg       float64 // fore and aft transducers
	PortStarboardDeg float64 // port and starboard transducers
}

// Attitude is the vehicle attitude in degrees.
// Pitch is nose-up positive, roll is starboard-down positive.
type Attitude struct {
	PitchDeg float64
	RollDeg  float64
}

// BeamAngles holds the instantaneous angle from vertical of each
// of the four beams, in degrees.
type BeamAngles struct {
	Fore      float64
	Port      float64
	Aft       float64
	Starboard float64
}

// Slice returns the four angles in fore, port, aft, starboard order.
func (b BeamAngles) Slice() [4]float64 {
	return [4]float64{b.Fore, b.Port, b.Aft, b.Starboard}
}

// Spread returns the difference between the largest and smallest
// of the four angles.
func (b BeamAngles) Spread() float64 {
	min, max := b.Fore, b.Fore
	for _, a := range []float64{b.Port, b.Aft, b.Starboard} {
		if a < min {
			min = a
		}
		if a > max {
			max = a
		}
	}
	return max - min
}

// BeamCalculator computes instantaneous beam angles from vertical
// for a fixed mounting geometry and a varying vehicle attitude.
type BeamCalculator struct {
	mounting Mounting
}

// NewBeamCalculator creates a calculator for the given mounting geometry.
// No validation is performed: any real angle produces a mathematically
// valid (if physically meaningless) result.
func NewBeamCalculator(m Mounting) *BeamCalculator {
	return &BeamCalculator{mounting: m}
}

// Mounting returns the mounting geometry the calculator was built with.
func (c *BeamCalculator) Mounting() Mounting {
	return c.mounting
}

// AnglesFromVertical calculates the angle from vertical of all four beams
// at the given attitude.
// Formulas (radians internally):
//   fore = arccos(cos(foreAft − pitch) × cos(roll))
//   port = arccos(cos(portStbd − roll) × cos(pitch))
//   aft  = arccos(cos(foreAft + pitch) × cos(roll))
//   stbd = arccos(cos(portStbd + roll) × cos(pitch))
// The arccos argument is a product of cosines, so it always stays within
// [-1, 1] and the result is defined for any real input.
func (c *BeamCalculator) AnglesFromVertical(att Attitude) BeamAngles {
	foreAft := degToRad(c.mounting.ForeAftDeg)
	portStbd := degToRad(c.mounting.PortStarboardDeg)
	pitch := degToRad(att.PitchDeg)
	roll := degToRad(att.RollDeg)

	cosPitch := math.Cos(pitch)
	cosRoll := math.Cos(roll)

	return BeamAngles{
		Fore:      radToDeg(math.Acos(math.Cos(foreAft-pitch) * cosRoll)),
		Port:      radToDeg(math.Acos(math.Cos(portStbd-roll) * cosPitch)),
		Aft:       radToDeg(math.Acos(math.Cos(foreAft+pitch) * cosRoll)),
		Starboard: radToDeg(math.Acos(math.Cos(portStbd+roll) * cosPitch)),
	}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func radToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
