// Public domain.

package ybsc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/starcat/bsc5conv/internal/astro"
	"github.com/starcat/bsc5conv/internal/bsc5"
)

// ParseLine parses a single ybsc5 line into a binary catalog entry.
//
// The catalog number must be present.  Other numeric fields may be blank
// and then read as zero.  The spectral type is taken as the two columns
// found, without trimming.
func ParseLine(line string) (e bsc5.Entry, err error) {
	line = strings.TrimRight(line, "\r\n")
	f, err := Extract(line, Layout[:])
	if err != nil {
		return
	}
	bad := func(x int, err error) error {
		return &FormatError{Field: Layout[x].Name, Text: f[x], Err: err}
	}

	xno, err := strconv.ParseFloat(strings.TrimSpace(f[Num]), 32)
	if err == nil {
		err = finite(xno)
	}
	if err != nil {
		return e, bad(Num, err)
	}
	e.XNO = float32(xno)

	var rah, ram int
	var ras float64
	if rah, err = parseInt(f[RAh]); err != nil {
		return e, bad(RAh, err)
	}
	if ram, err = parseInt(f[RAm]); err != nil {
		return e, bad(RAm, err)
	}
	if ras, err = parseFloat(f[RAs]); err != nil {
		return e, bad(RAs, err)
	}
	e.SRA0 = astro.RA(rah, ram, ras)

	var decd, decm int
	var decs float64
	if decd, err = parseInt(f[DEd]); err != nil {
		return e, bad(DEd, err)
	}
	if decm, err = parseInt(f[DEm]); err != nil {
		return e, bad(DEm, err)
	}
	if decs, err = parseFloat(f[DEs]); err != nil {
		return e, bad(DEs, err)
	}
	e.SDEC0 = astro.Dec(f[DESign][0], decd, decm, decs)

	e.IS = f[SpType]

	mag, err := parseFloat(f[Vmag])
	if err != nil {
		return e, bad(Vmag, err)
	}
	// truncated toward zero, as the legacy converter did
	m100 := math.Trunc(mag * 100)
	if math.IsNaN(m100) || m100 < math.MinInt16 || m100 > math.MaxInt16 {
		return e, bad(Vmag, errors.New("out of range"))
	}
	e.MAG = int16(m100)

	pmRA, err := parseFloat(f[PmRA])
	if err != nil {
		return e, bad(PmRA, err)
	}
	pmDE, err := parseFloat(f[PmDE])
	if err != nil {
		return e, bad(PmDE, err)
	}
	e.XRPM = float32(astro.PM(pmRA))
	e.XDPM = float32(astro.PM(pmDE))
	return
}

// Reader reads catalog lines in file order.
type Reader struct {
	sc *bufio.Scanner
	n  int
}

// NewReader returns a Reader for r.  Gzip compressed input, as ybsc5.gz
// is distributed, is recognized and decompressed.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(2); err == nil &&
		magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("ybsc: %v", err)
		}
		return &Reader{sc: bufio.NewScanner(zr)}, nil
	}
	return &Reader{sc: bufio.NewScanner(br)}, nil
}

// ReadLine returns the next line, without line terminator.  It returns
// io.EOF after the last line.
func (r *Reader) ReadLine() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	r.n++
	return r.sc.Text(), nil
}

// Line returns the 1-based number of the line last read.
func (r *Reader) Line() int { return r.n }

// Read reads and parses the next line.  A *FormatError carries the line
// number.
func (r *Reader) Read() (bsc5.Entry, error) {
	line, err := r.ReadLine()
	if err != nil {
		return bsc5.Entry{}, err
	}
	e, err := ParseLine(line)
	if err != nil {
		err = At(err, r.n)
	}
	return e, err
}

// At sets the line number of a *FormatError.  Other errors are returned
// unchanged.
func At(err error, line int) error {
	var fe *FormatError
	if errors.As(err, &fe) {
		fe.Line = line
	}
	return err
}
