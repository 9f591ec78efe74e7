// Package report renders beam-angle results. Computation stays in
// internal/logic; callers build a buffer here and decide where it goes.
package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/cjeanneret/BeamGo/internal/logic/geometry"
	"github.com/cjeanneret/BeamGo/internal/logic/sweep"
)

// WriteText writes the four beam angles in the reference four-line form,
// three decimals each.
func WriteText(buf *bytes.Buffer, a geometry.BeamAngles) {
	fmt.Fprintf(buf, "fore angle: %.3f\n", a.Fore)
	fmt.Fprintf(buf, "port angle: %.3f\n", a.Port)
	fmt.Fprintf(buf, "aft angle: %.3f\n", a.Aft)
	fmt.Fprintf(buf, "stbd angle: %.3f\n", a.Starboard)
}

// WriteSweepText writes a pitch sweep as an aligned table.
func WriteSweepText(buf *bytes.Buffer, points []sweep.Point) {
	fmt.Fprintf(buf, "%9s %9s %9s %9s %9s\n", "pitch", "fore", "port", "aft", "stbd")
	for _, pt := range points {
		fmt.Fprintf(buf, "%9.3f %9.3f %9.3f %9.3f %9.3f\n",
			pt.PitchDeg, pt.Angles.Fore, pt.Angles.Port, pt.Angles.Aft, pt.Angles.Starboard)
	}
}

// WriteSweepCSV writes a pitch sweep as CSV, one row per sampled pitch.
func WriteSweepCSV(buf *bytes.Buffer, points []sweep.Point) {
	buf.WriteString("pitch_deg,fore_deg,port_deg,aft_deg,stbd_deg\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for _, pt := range points {
		buf.WriteString(strconv.FormatFloat(pt.PitchDeg, 'f', -1, 64))
		writeFloat(pt.Angles.Fore)
		writeFloat(pt.Angles.Port)
		writeFloat(pt.Angles.Aft)
		writeFloat(pt.Angles.Starboard)
		buf.WriteString("\n")
	}
}

// WriteBalanceText writes the result of a dive-pitch balance search,
// followed by the beam angles at the balanced pitch.
func WriteBalanceText(buf *bytes.Buffer, b sweep.Balance) {
	fmt.Fprintf(buf, "balanced dive pitch: %.3f (fore/port mismatch %.3f)\n", b.PitchDeg, b.MismatchDeg)
	WriteText(buf, b.Angles)
}
