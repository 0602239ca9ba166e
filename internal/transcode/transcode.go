// Public domain.

// Package transcode converts the ASCII star catalog to the binary one.
package transcode

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/facebookgo/atomicfile"
	"golang.org/x/sync/errgroup"

	"github.com/starcat/bsc5conv/internal/bsc5"
	"github.com/starcat/bsc5conv/internal/ybsc"
)

// State of a Transcoder.
type State int

const (
	HeaderPending State = iota
	Streaming
	Done
)

var stateNames = [...]string{"header pending", "streaming", "done"}

func (s State) String() string { return stateNames[s] }

// Transcoder writes a binary catalog, the header once then one record per
// entry in the order given.
type Transcoder struct {
	w     *bufio.Writer
	state State
	n     int
	rec   []byte
}

// New returns a Transcoder writing to w.
func New(w io.Writer) *Transcoder {
	return &Transcoder{
		w:   bufio.NewWriter(w),
		rec: make([]byte, 0, bsc5.EntrySize),
	}
}

// State returns the current state.
func (t *Transcoder) State() State { return t.state }

// Count returns the number of records written.
func (t *Transcoder) Count() int { return t.n }

func (t *Transcoder) expect(s State) error {
	if t.state != s {
		return fmt.Errorf("transcode: %s, expected %s", t.state, s)
	}
	return nil
}

// Start writes the header.
func (t *Transcoder) Start() error {
	if err := t.expect(HeaderPending); err != nil {
		return err
	}
	if _, err := t.w.Write(bsc5.EncodeHeader()); err != nil {
		return err
	}
	t.state = Streaming
	return nil
}

// Write encodes and writes one entry.
func (t *Transcoder) Write(e *bsc5.Entry) (err error) {
	if err = t.expect(Streaming); err != nil {
		return err
	}
	if t.rec, err = bsc5.AppendEntry(t.rec[:0], e); err != nil {
		return err
	}
	if _, err = t.w.Write(t.rec); err != nil {
		return err
	}
	t.n++
	return nil
}

// WriteRecords writes records already encoded, a multiple of 32 bytes.
func (t *Transcoder) WriteRecords(recs []byte) error {
	if err := t.expect(Streaming); err != nil {
		return err
	}
	if len(recs)%bsc5.EntrySize != 0 {
		panic(&bsc5.ContractError{
			What: "Encoded records length",
			Want: fmt.Sprintf("multiple of %d", bsc5.EntrySize),
			Got:  fmt.Sprint(len(recs)),
		})
	}
	if _, err := t.w.Write(recs); err != nil {
		return err
	}
	t.n += len(recs) / bsc5.EntrySize
	return nil
}

// Finish flushes output.
func (t *Transcoder) Finish() error {
	if err := t.expect(Streaming); err != nil {
		return err
	}
	if err := t.w.Flush(); err != nil {
		return err
	}
	t.state = Done
	return nil
}

// Run transcodes all of r to w and returns the number of entries written.
//
// With workers > 1, lines are parsed and encoded concurrently, each into
// its own slot of a buffer, then written in line order.  Either way the
// first bad line, in line order, ends the run.
func Run(r io.Reader, w io.Writer, workers int) (int, error) {
	yr, err := ybsc.NewReader(r)
	if err != nil {
		return 0, err
	}
	t := New(w)
	if err = t.Start(); err != nil {
		return 0, err
	}
	if workers > 1 {
		err = parallel(yr, t, workers)
	} else {
		err = sequential(yr, t)
	}
	if err != nil {
		return t.n, err
	}
	return t.n, t.Finish()
}

func sequential(yr *ybsc.Reader, t *Transcoder) error {
	for {
		e, err := yr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err = t.Write(&e); err != nil {
			return fmt.Errorf("line %d: %w", yr.Line(), err)
		}
	}
}

// lines per unit of parallel work
const chunk = 512

func parallel(yr *ybsc.Reader, t *Transcoder, workers int) error {
	var lines []string
	for {
		l, err := yr.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		lines = append(lines, l)
	}
	recs := make([]byte, len(lines)*bsc5.EntrySize)
	errs := make([]error, (len(lines)+chunk-1)/chunk)
	// chunks are not cancelled on failure, so that the error reported is
	// the earliest in line order rather than the first to happen.
	var g errgroup.Group
	g.SetLimit(workers)
	for c := range errs {
		c := c
		g.Go(func() error {
			errs[c] = encodeChunk(lines, recs, c*chunk)
			return errs[c]
		})
	}
	g.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return t.WriteRecords(recs)
}

func encodeChunk(lines []string, recs []byte, lo int) error {
	hi := min(lo+chunk, len(lines))
	for i := lo; i < hi; i++ {
		e, err := ybsc.ParseLine(lines[i])
		if err != nil {
			return ybsc.At(err, i+1)
		}
		off := i * bsc5.EntrySize
		if _, err = bsc5.AppendEntry(recs[off:off], &e); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return nil
}

// Options control File.
type Options struct {
	Workers   int
	Reference bool // check against the distributed catalog
}

// File transcodes the ASCII catalog in file in to the binary catalog out,
// then validates the result.
//
// Output goes to a temporary file that replaces out only when every step
// succeeds.  On any failure out is left as it was before the call.
func File(in, out string, opt Options) (*bsc5.Report, error) {
	fi, err := os.Open(in)
	if err != nil {
		return nil, err
	}
	defer fi.Close()
	fo, err := atomicfile.New(out, 0644)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			fo.Abort()
		}
	}()
	n, err := Run(fi, fo, opt.Workers)
	if err != nil {
		return nil, err
	}
	rp, err := bsc5.ValidateFile(fo.Name(), n, opt.Reference)
	if err != nil {
		return rp, err
	}
	if err = fo.Close(); err != nil {
		return rp, err
	}
	committed = true
	return rp, nil
}
