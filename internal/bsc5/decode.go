// Public domain.

package bsc5

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/soniakeys/unit"
)

// ErrShortHeader is returned by Decode when data cannot hold a header.
var ErrShortHeader = errors.New("bsc5: insufficient data for header")

// DecodeHeader decodes the first 28 bytes of b.
func DecodeHeader(b []byte) (h Header, err error) {
	if len(b) < HeaderSize {
		return h, ErrShortHeader
	}
	v := func(i int) int32 { return int32(le.Uint32(b[i*4:])) }
	h = Header{v(0), v(1), v(2), v(3), v(4), v(5), v(6)}
	return h, nil
}

// DecodeEntry decodes a single 32 byte record.  Trailing zero bytes of
// the spectral type are dropped.
func DecodeEntry(b []byte) (e Entry) {
	_ = b[EntrySize-1]
	e.XNO = math.Float32frombits(le.Uint32(b[0:]))
	e.SRA0 = unit.RA(math.Float64frombits(le.Uint64(b[4:])))
	e.SDEC0 = unit.Angle(math.Float64frombits(le.Uint64(b[12:])))
	e.IS = string(bytes.TrimRight(b[20:22], "\x00"))
	e.MAG = int16(le.Uint16(b[22:]))
	e.XRPM = math.Float32frombits(le.Uint32(b[24:]))
	e.XDPM = math.Float32frombits(le.Uint32(b[28:]))
	return
}

// Decode parses a complete catalog, the header and the number of entries
// the header announces.  Data beyond the announced entries is ignored.
func Decode(data []byte) (Header, []Entry, error) {
	h, err := DecodeHeader(data)
	if err != nil {
		return h, nil, err
	}
	if h.NBEnt != EntrySize {
		return h, nil, fmt.Errorf("bsc5: unsupported entry size %d", h.NBEnt)
	}
	data = data[HeaderSize:]
	n := h.Count()
	entries := make([]Entry, n)
	for i := range entries {
		if len(data) < EntrySize {
			return h, entries[:i],
				fmt.Errorf("bsc5: insufficient data for entry %d", i)
		}
		entries[i] = DecodeEntry(data)
		data = data[EntrySize:]
	}
	return h, entries, nil
}

// ReadFile reads and decodes the catalog file fn.
func ReadFile(fn string) (Header, []Entry, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		return Header{}, nil, err
	}
	return Decode(data)
}
