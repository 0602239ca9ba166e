// Public domain.

package ybsc_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/starcat/bsc5conv/internal/bsc5"
	"github.com/starcat/bsc5conv/internal/ybsc"
)

// mkLine places field values at their columns in an otherwise blank line.
func mkLine(f map[int]string) string {
	b := []byte(strings.Repeat(" ", 197))
	for x, s := range f {
		copy(b[ybsc.Layout[x].Start:ybsc.Layout[x].End()], s)
	}
	return string(b)
}

// HR 1, the first line of ybsc5.
var hr1 = mkLine(map[int]string{
	ybsc.Num:    "   1",
	ybsc.RAh:    "00",
	ybsc.RAm:    "05",
	ybsc.RAs:    "09.9",
	ybsc.DESign: "+",
	ybsc.DEd:    "45",
	ybsc.DEm:    "13",
	ybsc.DEs:    "45",
	ybsc.Vmag:   " 6.70",
	ybsc.SpType: "A1",
	ybsc.PmRA:   "-0.012",
	ybsc.PmDE:   "-0.018",
})

// first record of the distributed binary catalog.
const refEntry = "\x00\x00\x80\x3f\x75\x98\xcc\x34\xd3\x13\x97\x3f" +
	"\xe6\x19\xc3\x55\xbf\x42\xe9\x3f\x41\x31\x9e\x02" +
	"\xfe\xde\x79\xb3\x3f\x67\xbb\xb3"

func ExampleExtract() {
	f, _ := ybsc.Extract(hr1, ybsc.Layout[:ybsc.DEs+1])
	fmt.Printf("%q\n", f)
	// Output:
	// ["   1" "00" "05" "09.9" "+" "45" "13" "45"]
}

func TestMinLen(t *testing.T) {
	if n := ybsc.MinLen(ybsc.Layout[:]); n != 160 {
		t.Fatal("MinLen", n)
	}
}

func TestReferenceRecord(t *testing.T) {
	e, err := ybsc.ParseLine(hr1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := bsc5.EncodeEntry(&e)
	if err != nil {
		t.Fatal(err)
	}
	// Integer, character and float32 fields match exactly.  Float64
	// fields may differ from the legacy output in the last bits.
	if string(b[:4]) != refEntry[:4] {
		t.Fatalf("catalog number %x", b[:4])
	}
	if string(b[20:]) != refEntry[20:] {
		t.Fatalf("bytes 20-31 %x, want %x", b[20:], refEntry[20:])
	}
	for _, off := range []int{4, 12} {
		got := binary.LittleEndian.Uint64(b[off:])
		want := binary.LittleEndian.Uint64([]byte(refEntry[off:]))
		d := int64(got - want)
		if d < -8 || d > 8 {
			t.Fatalf("offset %d: %g, want %g", off,
				math.Float64frombits(got), math.Float64frombits(want))
		}
	}
}

func TestBlankFields(t *testing.T) {
	e, err := ybsc.ParseLine(mkLine(map[int]string{ybsc.Num: "  42"}))
	switch {
	case err != nil:
		t.Fatal(err)
	case e.XNO != 42:
		t.Fatal("XNO", e.XNO)
	case e.SRA0 != 0 || e.SDEC0 != 0:
		t.Fatal("position", e.SRA0, e.SDEC0)
	case e.MAG != 0 || e.XRPM != 0 || e.XDPM != 0:
		t.Fatal("mag, pm", e.MAG, e.XRPM, e.XDPM)
	case e.IS != "  ":
		t.Fatalf("spectral type %q", e.IS)
	}
}

func TestMagnitude(t *testing.T) {
	for _, c := range []struct {
		v    string
		want int16
	}{
		{" 6.70", 670},
		{"-1.46", -146},
		{" 0.03", 3},
		{"-0.01", -1},
		{"  5.1", 509}, // 5.1*100 is just under 510
		{"     ", 0},
	} {
		e, err := ybsc.ParseLine(mkLine(map[int]string{
			ybsc.Num: "   9", ybsc.Vmag: c.v}))
		if err != nil {
			t.Fatal(c.v, err)
		}
		if e.MAG != c.want {
			t.Fatalf("%q: got %d want %d", c.v, e.MAG, c.want)
		}
	}
}

func TestDeclinationSign(t *testing.T) {
	f := map[int]string{ybsc.Num: "   2", ybsc.DEd: "01",
		ybsc.DESign: "+"}
	p, err := ybsc.ParseLine(mkLine(f))
	if err != nil {
		t.Fatal(err)
	}
	f[ybsc.DESign] = "-"
	n, err := ybsc.ParseLine(mkLine(f))
	if err != nil {
		t.Fatal(err)
	}
	if p.SDEC0 <= 0 || n.SDEC0 != -p.SDEC0 {
		t.Fatal(p.SDEC0, n.SDEC0)
	}
}

func TestFormatError(t *testing.T) {
	for _, c := range []struct {
		name, line, field string
	}{
		{"short", hr1[:159], "line"},
		{"empty", "", "line"},
		{"no number", mkLine(map[int]string{}), "catalog number"},
		{"bad RA", mkLine(map[int]string{ybsc.Num: "   1", ybsc.RAh: "x1"}),
			"RA hours"},
		{"bad Dec", mkLine(map[int]string{ybsc.Num: "   1", ybsc.DEs: "4x"}),
			"Dec seconds"},
		{"bad pm", mkLine(map[int]string{ybsc.Num: "   1", ybsc.PmDE: "-0.0-1"}),
			"Dec proper motion"},
		{"huge mag", mkLine(map[int]string{ybsc.Num: "   1", ybsc.Vmag: "999.0"}),
			"V magnitude"},
		{"NaN mag", mkLine(map[int]string{ybsc.Num: "   1", ybsc.Vmag: "  NaN"}),
			"V magnitude"},
		{"Inf mag", mkLine(map[int]string{ybsc.Num: "   1", ybsc.Vmag: " -Inf"}),
			"V magnitude"},
		{"NaN number", mkLine(map[int]string{ybsc.Num: " NaN"}),
			"catalog number"},
		{"NaN RA", mkLine(map[int]string{ybsc.Num: "   1", ybsc.RAs: " nan"}),
			"RA seconds"},
		{"Inf pm", mkLine(map[int]string{ybsc.Num: "   1", ybsc.PmRA: "  +Inf"}),
			"RA proper motion"},
	} {
		_, err := ybsc.ParseLine(c.line)
		var fe *ybsc.FormatError
		switch {
		case !errors.As(err, &fe):
			t.Fatalf("%s: expected FormatError, got %v", c.name, err)
		case fe.Field != c.field:
			t.Fatalf("%s: field %q, want %q", c.name, fe.Field, c.field)
		}
	}
}

func readAll(t *testing.T, r io.Reader) ([]bsc5.Entry, error) {
	yr, err := ybsc.NewReader(r)
	if err != nil {
		t.Fatal(err)
	}
	var entries []bsc5.Entry
	for {
		e, err := yr.Read()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
	}
}

func catalogText(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		sb.WriteString(mkLine(map[int]string{ybsc.Num: fmt.Sprintf("%4d", i)}))
		sb.WriteString("\r\n")
	}
	return sb.String()
}

func TestReader(t *testing.T) {
	entries, err := readAll(t, strings.NewReader(catalogText(3)))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatal(len(entries), "entries")
	}
	for i, e := range entries {
		if e.XNO != float32(i+1) {
			t.Fatalf("entry %d: XNO %g", i, e.XNO)
		}
	}
}

func TestReaderGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	io.WriteString(zw, catalogText(5))
	zw.Close()
	entries, err := readAll(t, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 5 || entries[4].XNO != 5 {
		t.Fatal(entries)
	}
}

func TestReaderLineNumber(t *testing.T) {
	text := catalogText(1) + "too short\n" + catalogText(1)
	entries, err := readAll(t, strings.NewReader(text))
	var fe *ybsc.FormatError
	switch {
	case !errors.As(err, &fe):
		t.Fatal("expected FormatError, got", err)
	case fe.Line != 2:
		t.Fatal("line", fe.Line)
	case len(entries) != 1:
		t.Fatal(len(entries), "entries before error")
	case !strings.HasPrefix(err.Error(), "line 2: "):
		t.Fatal(err)
	}
}
