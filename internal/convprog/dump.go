// Public domain.

package convprog

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/soniakeys/exit"
	sexa "github.com/soniakeys/sexagesimal"

	"github.com/starcat/bsc5conv/internal/astro"
	"github.com/starcat/bsc5conv/internal/bsc5"
)

func dump(w io.Writer, fn string, epoch float64) {
	h, entries, err := bsc5.ReadFile(fn)
	if err != nil {
		exit.Log(err)
	}
	if err = list(w, h, entries, epoch); err != nil {
		exit.Log(err)
	}
}

// arc seconds per radian
var secPerRad = 1 / astro.PM(1)

// list writes one line per entry, positions at the given Julian epoch.
func list(w io.Writer, h bsc5.Header, entries []bsc5.Entry, epoch float64) error {
	if epoch != astro.J2000 && !h.J2000() {
		return errors.New("catalog coordinates are B1950, " +
			"proper motion epoch not supported")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d entries, epoch %g\n", len(entries), epoch)
	for i := range entries {
		e := &entries[i]
		ra, dec := astro.AtEpoch(e.SRA0, e.SDEC0,
			float64(e.XRPM), float64(e.XDPM), epoch)
		// fixed width sexagesimal keeps columns aligned
		fmt.Fprintf(bw, "%4.0f  %2.1s  %2.0s  %5.2f  %-2s  %+.3f %+.3f\n",
			e.XNO, sexa.FmtRA(ra), sexa.FmtAngle(dec), e.Magnitude(), e.IS,
			float64(e.XRPM)*secPerRad, float64(e.XDPM)*secPerRad)
	}
	return bw.Flush()
}
