// Public domain.

// Package bsc5 defines the binary star catalog layout of the Yale Bright
// Star Catalog, 5th edition, as distributed by the Harvard-Smithsonian
// Telescope Data Center.
//
// A catalog file is a 28 byte header followed by one 32 byte record per
// star.  All values are little-endian.  The header layout is documented at
// http://tdc-www.harvard.edu/catalogs/bsc5.header.html, the record layout
// at http://tdc-www.harvard.edu/catalogs/bsc5.entry.html.
package bsc5

import (
	"fmt"

	"github.com/soniakeys/unit"
)

// Sizes of the fixed parts of a catalog file, in bytes.
const (
	HeaderSize = 28
	EntrySize  = 32
)

// Header values.  These never vary with the input.  STARN is negative
// because coordinates are J2000.
const (
	Star0 = 0
	Star1 = 1
	StarN = -9110
	StNum = 1
	MProp = 1
	NMag  = 1 // the format page says -1, the distributed file has 1
	NBEnt = EntrySize
)

// refHeader is the first 28 bytes of the distributed catalog file.
const refHeader = "\x00\x00\x00\x00\x01\x00\x00\x00\x6a\xdc\xff\xff" +
	"\x01\x00\x00\x00\x01\x00\x00\x00\x01\x00\x00\x00" +
	"\x20\x00\x00\x00"

// Header is the catalog header.
type Header struct {
	Star0 int32 // subtract from star number to get sequence number
	Star1 int32 // first star number in file
	StarN int32 // number of stars in file, negative for J2000
	StNum int32 // 1 if a star id number is present
	MProp int32 // 1 if proper motion is included
	NMag  int32 // number of magnitudes present
	NBEnt int32 // number of bytes per star entry
}

// StdHeader returns the header written to every catalog.
func StdHeader() Header {
	return Header{Star0, Star1, StarN, StNum, MProp, NMag, NBEnt}
}

// Count returns the number of entries announced by the header.
func (h Header) Count() int {
	if h.StarN < 0 {
		return int(-h.StarN)
	}
	return int(h.StarN)
}

// J2000 reports whether coordinates are J2000 rather than B1950.
func (h Header) J2000() bool { return h.StarN < 0 }

// Entry is one star of the catalog.
type Entry struct {
	XNO   float32    // catalog number
	SRA0  unit.RA    // right ascension
	SDEC0 unit.Angle // declination
	IS    string     // spectral type, at most 2 ASCII characters
	MAG   int16      // V magnitude * 100
	XRPM  float32    // R.A. proper motion, radians per year
	XDPM  float32    // Dec. proper motion, radians per year
}

// Magnitude returns the V magnitude.
func (e *Entry) Magnitude() float64 { return float64(e.MAG) / 100 }

// EncodingError reports an entry value that cannot be represented in the
// fixed width record.
type EncodingError struct {
	XNO    float32
	Field  string
	Value  string
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("entry %g: cannot encode %s %q: %s",
		e.XNO, e.Field, e.Value, e.Reason)
}

// ContractError is a defect in the encoders themselves.  It is raised
// with panic, never returned.
type ContractError struct {
	What      string
	Want, Got string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s does not match the expected value.\n"+
		"Expected:\t %s\nFound:\t\t %s", e.What, e.Want, e.Got)
}
