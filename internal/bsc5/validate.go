// Public domain.

package bsc5

import (
	"fmt"
	"io"
	"os"

	"github.com/spaolacci/murmur3"
)

// Reference values of the distributed catalog, 9110 entries.
//
// The checksum tolerance was calibrated by comparing output of this
// transcoder for ybsc5 against the distributed binary, where differences
// are confined to the least significant bytes of the float fields.  It
// says nothing about other input catalogs.
const (
	RefSize      = HeaderSize + EntrySize*9110 // 291548
	RefChecksum  = 32911474
	RefTolerance = 128
)

// Report summarizes a written catalog.
type Report struct {
	Entries     int
	Size        int64
	Checksum    int64  // sum of all bytes
	Fingerprint string // murmur3 128 bit, hex
}

// ValidationError reports a failed check.  Tolerance and Deviation are
// set only for the checksum check.
type ValidationError struct {
	Check     string
	Want, Got int64
	Tolerance int64
	Deviation int64
}

func (e *ValidationError) Error() string {
	if e.Check == "checksum" {
		return fmt.Sprintf("Generated file checksum verification failed:\n"+
			"- Generated file checksum: %d\n"+
			"- Expected checksum: %d\n"+
			"- Allowed difference: %d\n"+
			"- Actual difference: %d",
			e.Got, e.Want, e.Tolerance, e.Deviation)
	}
	return fmt.Sprintf("Binary file %s does not match the expected value.\n"+
		"Expected:\t %d\nFound:\t\t %d", e.Check, e.Want, e.Got)
}

// Summarize reads a catalog from r, computing its size, additive byte
// checksum and fingerprint.  No checks are made.
func Summarize(r io.Reader, entries int) (*Report, error) {
	h := murmur3.New128()
	rp := &Report{Entries: entries}
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		for _, c := range buf[:n] {
			rp.Checksum += int64(c)
		}
		rp.Size += int64(n)
		h.Write(buf[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	h1, h2 := h.Sum128()
	rp.Fingerprint = fmt.Sprintf("%016x%016x", h1, h2)
	return rp, nil
}

// Validate summarizes the catalog in r and checks that its size is that of
// a header and the given number of entries.
//
// If reference is true it further checks size and checksum against the
// distributed catalog.  These checks are only meaningful when the input
// was the reference catalog ybsc5.
func Validate(r io.Reader, entries int, reference bool) (*Report, error) {
	rp, err := Summarize(r, entries)
	if err != nil {
		return nil, err
	}
	if want := int64(HeaderSize + EntrySize*entries); rp.Size != want {
		return rp, &ValidationError{Check: "size", Want: want, Got: rp.Size}
	}
	if !reference {
		return rp, nil
	}
	if rp.Size != RefSize {
		return rp, &ValidationError{Check: "size", Want: RefSize, Got: rp.Size}
	}
	d := rp.Checksum - RefChecksum
	if d < 0 {
		d = -d
	}
	if d > RefTolerance {
		return rp, &ValidationError{
			Check:     "checksum",
			Want:      RefChecksum,
			Got:       rp.Checksum,
			Tolerance: RefTolerance,
			Deviation: d,
		}
	}
	return rp, nil
}

// ValidateFile is Validate on the file fn.
func ValidateFile(fn string, entries int, reference bool) (*Report, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Validate(f, entries, reference)
}
