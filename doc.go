/*
Command bsc5conv converts the Yale Bright Star Catalog, 5th revised edition,
from its ASCII distribution to the binary catalog format used by the
Harvard-Smithsonian Telescope Data Center.

Contents

	Program overview
	Command line usage
	Config file
	File formats
	Checks


Program overview

Input is ybsc5, the ASCII catalog, one star per line with fields at fixed
columns.  It may be gzipped as distributed.  Output is the binary catalog,
a 28 byte header followed by one 32 byte record per input line, in input
order.

Sample run:

	$ bsc5conv ybsc5.gz bsc5
	Reading ybsc5.gz
	Wrote 9,110 entries, 292 kB, to bsc5
	...

The binary catalog distributed by the TDC and the one written here are
derived from the same ASCII source.  They differ, if at all, only in the
least significant bits of some floating point values.


Command line usage

	Usage: bsc5conv [options] <ybsc5> <bsc5>   convert ASCII catalog to binary
	       bsc5conv -d [-e <epoch>] <bsc5>     list a binary catalog
	       bsc5conv -h                         display help
	       bsc5conv -v                         display version and copyright

	Options:
	       -c <config-file>
	       -j <workers>      0 for one per CPU
	       -noref            skip checks against the distributed catalog
	       -q                quiet

With -j greater than 1 lines are converted concurrently.  Output is the
same.

With -d, entries of a binary catalog are listed, positions in sexagesimal.
With -e, positions are moved from J2000 to the given Julian epoch using
proper motion and precession.


Config file

An optional config file, bsc5conv.config in the current directory or the
file given with -c, holds keywords one per line.  Empty lines and lines
beginning with # are ignored.

	reference
	noreference
	quiet
	verbose
	workers=<n>

Command line options override the config file.


File formats

ASCII: http://tdc-www.harvard.edu/catalogs/bsc5.readme

Binary header: http://tdc-www.harvard.edu/catalogs/bsc5.header.html

Binary entry: http://tdc-www.harvard.edu/catalogs/bsc5.entry.html

The header is the same for every run: STAR0=0, STAR1=1, STARN=-9110,
STNUM=1, MPROP=1, NMAG=1, NBENT=32.  Each record holds the catalog number
(Real*4), J2000 right ascension and declination in radians (Real*8), the
spectral type (Character*2), V magnitude times 100 (Integer*2) and proper
motions in radians per year (Real*4).  Blank numeric fields convert as zero.
Magnitudes are truncated, not rounded.


Checks

Any line that cannot be parsed or encoded ends the run.  A fixed record
layout has no room for a skipped line.

After writing, the file size must be 28 + 32 times the number of lines.
Reference checks then require the size of the distributed catalog, 291548
bytes, and an additive byte checksum within 128 of the distributed
catalog's 32911474.  They are only meaningful for ybsc5 itself.  Use
-noref for other input.

On any failure the output file is not written, and an existing file of the
same name is left unchanged.  The exit status is non-zero.

-------------
Public domain.
*/
package main
