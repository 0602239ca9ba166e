// Public domain.

// Package astro, angle conversions for catalog coordinates.
package astro

import (
	"math"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/precess"
	"github.com/soniakeys/unit"
)

// J2000 is the Julian epoch of catalog coordinates.
const J2000 = 2000.

// RA converts sexagesimal right ascension to radians.
//
// An hour of right ascension is 15 degrees, so the hour sum is scaled by
// π/12.  Zero components are fine, as from blank catalog fields.
func RA(h, m int, s float64) unit.RA {
	return unit.RA((float64(h) + float64(m)/60 + s/3600) * (math.Pi / 12))
}

// Dec converts sexagesimal declination to radians.  The result is negative
// if sign is '-', positive for anything else.
func Dec(sign byte, d, m int, s float64) unit.Angle {
	deg := float64(d) + float64(m)/60 + s/3600
	if sign == '-' {
		deg = -deg
	}
	return unit.Angle(deg * (math.Pi / 180))
}

// PM converts a proper motion in arc seconds per year to radians per year.
func PM(arcsec float64) float64 {
	return arcsec * (math.Pi / (180 * 3600))
}

// AtEpoch moves a J2000 position to a Julian epoch, applying annual
// proper motions pmRA and pmDec, both in radians, along with precession.
func AtEpoch(ra unit.RA, dec unit.Angle, pmRA, pmDec float64,
	epoch float64) (unit.RA, unit.Angle) {
	if epoch == J2000 {
		return ra, dec
	}
	eq := &coord.Equatorial{RA: ra, Dec: dec}
	precess.Position(eq, eq, J2000, epoch,
		unit.HourAngle(pmRA), unit.Angle(pmDec))
	return eq.RA, eq.Dec
}
