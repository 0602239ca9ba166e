// Public domain.

// Package convprog is the bsc5conv command.
package convprog

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/soniakeys/exit"

	"github.com/starcat/bsc5conv/internal/bsc5"
	"github.com/starcat/bsc5conv/internal/transcode"
)

const versionString = "bsc5conv version 0.1 Go source."
const copyrightString = "Public domain."

func Main() {
	defer exit.Handler()
	log.SetFlags(0)

	cl := parseCommandLine()
	if cl.dump {
		dump(os.Stdout, cl.args[0], cl.epoch)
		return
	}
	opt := readConfig(cl)
	if opt.workers <= 0 {
		opt.workers = runtime.GOMAXPROCS(0)
	}
	in, out := cl.args[0], cl.args[1]
	if !opt.quiet {
		fmt.Println("Reading", in)
	}
	rp, err := transcode.File(in, out, transcode.Options{
		Workers:   opt.workers,
		Reference: opt.reference,
	})
	if err != nil {
		log.Printf("%s not written.", out)
		exit.Log(err)
	}
	if opt.quiet {
		return
	}
	fmt.Printf("Wrote %s entries, %s, to %s\n",
		humanize.Comma(int64(rp.Entries)), humanize.Bytes(uint64(rp.Size)), out)
	fmt.Println("Checksum", rp.Checksum, "fingerprint", rp.Fingerprint)
	if opt.reference {
		d := rp.Checksum - bsc5.RefChecksum
		if d < 0 {
			d = -d
		}
		fmt.Printf("Reference checks passed, checksum difference %d of %d allowed.\n",
			d, bsc5.RefTolerance)
	}
}

type commandLine struct {
	dc    string  // config file
	j     int     // workers
	noref bool    // skip reference checks
	q     bool    // quiet
	dump  bool    // -d
	epoch float64 // -e
	args  []string
}

func parseCommandLine() *commandLine {
	var cl commandLine
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("v", false, "")
	flag.StringVar(&cl.dc, "c", "", "")
	flag.IntVar(&cl.j, "j", 1, "")
	flag.BoolVar(&cl.noref, "noref", false, "")
	flag.BoolVar(&cl.q, "q", false, "")
	flag.BoolVar(&cl.dump, "d", false, "")
	flag.Float64Var(&cl.epoch, "e", 2000, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: bsc5conv [options] <ybsc5> <bsc5>   convert ASCII catalog to binary
       bsc5conv -d [-e <epoch>] <bsc5>     list a binary catalog
       bsc5conv -h                         display help
       bsc5conv -v                         display version and copyright

Options:
       -c <config-file>
       -j <workers>      0 for one per CPU
       -noref            skip checks against the distributed catalog
       -q                quiet
`)
	}
	flag.Parse()
	switch {
	case *dh:
		printHelp()
		os.Exit(0)
	case *dv:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	case cl.dump && flag.NArg() != 1,
		!cl.dump && flag.NArg() != 2:
		flag.Usage()
		os.Exit(1)
	}
	cl.args = flag.Args()
	return &cl
}

func printHelp() {
	fmt.Println(`
Bsc5conv converts the ASCII Yale Bright Star Catalog (ybsc5, plain or
gzipped) to the binary catalog format of the Harvard-Smithsonian Telescope
Data Center, a 28 byte header and a 32 byte record per star.

The result is checked for size.  Unless -noref is given or the config file
says noreference, it is also checked against the size and byte checksum of
the distributed binary catalog.  These checks only pass when the input is
ybsc5 itself.  Output is written only if all checks pass.

Config file keywords:
   reference
   noreference
   quiet
   verbose
   workers=<n>

For full documentation:
   go doc github.com/starcat/bsc5conv`)
}
