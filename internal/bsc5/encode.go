// Public domain.

package bsc5

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
)

var le = binary.LittleEndian

// EncodeHeader returns the 28 byte catalog header.
//
// The result is checked against the header of the distributed catalog.
// A mismatch panics with a *ContractError.
func EncodeHeader() []byte {
	h := StdHeader()
	b := make([]byte, 0, HeaderSize)
	for _, v := range []int32{
		h.Star0, h.Star1, h.StarN, h.StNum, h.MProp, h.NMag, h.NBEnt,
	} {
		b = le.AppendUint32(b, uint32(v))
	}
	if string(b) != refHeader {
		panic(&ContractError{
			What: "Binary header",
			Want: hex.EncodeToString([]byte(refHeader)),
			Got:  hex.EncodeToString(b),
		})
	}
	return b
}

// AppendEntry appends the 32 byte record for e to dst and returns the
// extended slice.
//
// The spectral type is right-padded with zero bytes.  A spectral type
// longer than two bytes or containing non-ASCII bytes is an
// *EncodingError; dst is returned unchanged in that case.
func AppendEntry(dst []byte, e *Entry) ([]byte, error) {
	is, err := spectral(e)
	if err != nil {
		return dst, err
	}
	n0 := len(dst)
	dst = le.AppendUint32(dst, math.Float32bits(e.XNO))
	dst = le.AppendUint64(dst, math.Float64bits(e.SRA0.Rad()))
	dst = le.AppendUint64(dst, math.Float64bits(e.SDEC0.Rad()))
	dst = append(dst, is[0], is[1])
	dst = le.AppendUint16(dst, uint16(e.MAG))
	dst = le.AppendUint32(dst, math.Float32bits(e.XRPM))
	dst = le.AppendUint32(dst, math.Float32bits(e.XDPM))
	if n := len(dst) - n0; n != EntrySize {
		panic(&ContractError{
			What: "Binary entry length",
			Want: "32",
			Got:  fmt.Sprint(n),
		})
	}
	return dst, nil
}

// EncodeEntry returns the 32 byte record for e.
func EncodeEntry(e *Entry) ([]byte, error) {
	return AppendEntry(make([]byte, 0, EntrySize), e)
}

func spectral(e *Entry) (is [2]byte, err error) {
	if len(e.IS) > len(is) {
		return is, &EncodingError{e.XNO, "spectral type", e.IS,
			"longer than 2 characters"}
	}
	for i := 0; i < len(e.IS); i++ {
		if e.IS[i] >= 0x80 {
			return is, &EncodingError{e.XNO, "spectral type", e.IS,
				"non-ASCII byte"}
		}
		is[i] = e.IS[i]
	}
	return
}
