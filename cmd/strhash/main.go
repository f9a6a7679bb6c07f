// main.go -- compare string hash functions
//
// (c) Sudhi Herle 2018
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// strhash times a set of string hash functions over a synthetic corpus
// and counts their collisions. Run without arguments it compares the
// JVM compatible hashCode against murmur3 using the standard pass counts.

package main

import (
	"fmt"
	"log/slog"
	"os"

	flag "github.com/opencoff/pflag"
)

func main() {
	var opt Option

	usage := fmt.Sprintf(
		`%s - compare string hash functions on throughput and collisions

Usage: %s [global-options] [CMD CMD-ARGS...]

CMD is an operation to be performed and CMD-ARGS are operation specific
arguments. Without CMD, 'run' is assumed. The supported operations are:

  run [options]      -- Warm up, time and collision-test the hash variants
  corpus [options]   -- Print a generated corpus, one string per line
  list               -- List the available hash variants

Options:
`, os.Args[0], os.Args[0])

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(os.Stdout)
	fs.BoolVarP(&opt.verbose, "verbose", "V", false, "Show verbose output")
	fs.Usage = func() {
		fmt.Print(usage)
		fs.PrintDefaults()
		os.Exit(0)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		die("%s", err)
	}

	opt.log = newLogger(opt.verbose)

	args := fs.Args()
	if len(args) == 0 {
		args = []string{"run"}
	}

	err := runCommand(args, &opt)
	if err != nil {
		die("%s", err)
	}
}

func newLogger(verbose bool) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(h)
}

// die with error
func die(f string, v ...interface{}) {
	warn(f, v...)
	os.Exit(1)
}

func warn(f string, v ...interface{}) {
	z := fmt.Sprintf("%s: %s", os.Args[0], f)
	s := fmt.Sprintf(z, v...)
	if n := len(s); s[n-1] != '\n' {
		s += "\n"
	}

	os.Stderr.WriteString(s)
	os.Stderr.Sync()
}

// vim: ft=go:sw=4:ts=4:noexpandtab:tw=78:
