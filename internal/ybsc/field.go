// Public domain.

// Package ybsc reads the ASCII edition of the Yale Bright Star Catalog,
// ybsc5, as distributed at http://tdc-www.harvard.edu/catalogs/bsc5.html.
//
// The format is one star per line with fields at fixed columns.  It is an
// ASCII encoded format; columns are byte offsets.
package ybsc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field locates one field of a catalog line.  Start is a 0-based byte
// offset.
type Field struct {
	Name         string
	Start, Width int
}

// End returns the offset just past the field.
func (f Field) End() int { return f.Start + f.Width }

// Indexes into Layout.
const (
	Num = iota
	RAh
	RAm
	RAs
	DESign
	DEd
	DEm
	DEs
	Vmag
	SpType
	PmRA
	PmDE
	nFields
)

// Layout is the subset of ybsc5 columns used to build a binary entry.
var Layout = [nFields]Field{
	Num:    {"catalog number", 0, 4},
	RAh:    {"RA hours", 75, 2},
	RAm:    {"RA minutes", 77, 2},
	RAs:    {"RA seconds", 79, 4},
	DESign: {"Dec sign", 83, 1},
	DEd:    {"Dec degrees", 84, 2},
	DEm:    {"Dec minutes", 86, 2},
	DEs:    {"Dec seconds", 88, 2},
	Vmag:   {"V magnitude", 102, 5},
	SpType: {"spectral type", 129, 2},
	PmRA:   {"RA proper motion", 148, 6},
	PmDE:   {"Dec proper motion", 154, 6},
}

// MinLen returns the line length needed to extract all fields of table.
func MinLen(table []Field) (n int) {
	for _, f := range table {
		if e := f.End(); e > n {
			n = e
		}
	}
	return
}

// Extract slices line into the fields of table.  Sub-strings are returned
// as found, including blanks.
func Extract(line string, table []Field) ([]string, error) {
	if n := MinLen(table); len(line) < n {
		return nil, &FormatError{
			Field: "line",
			Text:  line,
			Err:   fmt.Errorf("%d characters, need %d", len(line), n),
		}
	}
	s := make([]string, len(table))
	for i, f := range table {
		s[i] = line[f.Start:f.End()]
	}
	return s, nil
}

// FormatError reports a line that is too short or a field that does not
// parse.  Line is the 1-based line number when known.
type FormatError struct {
	Line  int
	Field string
	Text  string
	Err   error
}

func (e *FormatError) Error() string {
	s := fmt.Sprintf("invalid %s (%s)", e.Field, e.Text)
	if e.Err != nil {
		s += ", " + e.Err.Error()
	}
	if e.Line > 0 {
		s = fmt.Sprintf("line %d: %s", e.Line, s)
	}
	return s
}

func (e *FormatError) Unwrap() error { return e.Err }

// blank reports whether a field holds only spaces.  Blank numeric fields
// read as zero.
func blank(s string) bool { return strings.TrimSpace(s) == "" }

func parseInt(s string) (int, error) {
	if blank(s) {
		return 0, nil
	}
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseFloat(s string) (float64, error) {
	if blank(s) {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	return f, finite(f)
}

var errNotFinite = errors.New("not a finite number")

// finite rejects the NaN and Inf spellings strconv accepts.
func finite(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errNotFinite
	}
	return nil
}
