// Public domain.

package convprog

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/soniakeys/exit"
)

const defaultConfig = "bsc5conv.config"

type options struct {
	workers   int
	reference bool
	quiet     bool
}

// readConfig reads the config file, if any, then applies command line
// options, which take precedence.
func readConfig(cl *commandLine) *options {
	opt := &options{workers: 1, reference: true}
	fn := cl.dc
	if fn == "" {
		fn = defaultConfig
	}
	f, err := os.Open(fn)
	switch {
	case err == nil:
		err = parseConfig(f, opt)
		f.Close()
		if err != nil {
			exit.Log(fmt.Sprintf("%s: %v", fn, err))
		}
	case cl.dc != "":
		// a config file was specified, it's required
		exit.Log(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "j":
			opt.workers = cl.j
		case "noref":
			opt.reference = !cl.noref
		case "q":
			opt.quiet = cl.q
		}
	})
	return opt
}

var rxWorkers = regexp.MustCompile(`^workers[ \t]*=[ \t]*(.+)$`)

// parseConfig reads keyword lines.  Empty lines and lines beginning with
// # are ignored.
func parseConfig(r io.Reader, opt *options) error {
	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		l := strings.TrimSpace(sc.Text())
		switch {
		case l == "", l[0] == '#':
			continue
		case l == "reference":
			opt.reference = true
			continue
		case l == "noreference":
			opt.reference = false
			continue
		case l == "quiet":
			opt.quiet = true
			continue
		case l == "verbose":
			opt.quiet = false
			continue
		}
		if m := rxWorkers.FindStringSubmatch(l); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil || n < 0 {
				return fmt.Errorf("line %d: invalid workers (%s)", ln, m[1])
			}
			opt.workers = n
			continue
		}
		return fmt.Errorf("line %d: unrecognized line: %s", ln, l)
	}
	return sc.Err()
}
