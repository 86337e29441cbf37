// Public domain.

// Package edprog implements the epochdiag command.
package edprog

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/soniakeys/exit"

	"github.com/soniakeys/epochdiag/internal/report"
	"github.com/soniakeys/epochdiag/internal/scenario"
)

const versionString = "epochdiag version 0.1 Go source."
const copyrightString = "Public domain."

// default config file name, looked for in the current directory
const configDefault = "epochdiag.config"

func Main() {
	defer exit.Handler()

	// these functions all set up values and terminate on error
	cl := parseCommandLine()
	opt, out := readConfig(cl)

	s, err := scenario.ReadFile(cl.fnScenario)
	if err != nil {
		exit.Log(err)
	}
	for _, w := range unknownBodies(s, opt) {
		log.Println(w)
	}
	r, err := report.Build(s, opt)
	if err != nil {
		exit.Log(err)
	}
	if out.json {
		err = r.WriteJSON(os.Stdout)
	} else {
		if out.text.Headings {
			fmt.Println(versionString)
		}
		err = r.WriteText(os.Stdout, out.text)
	}
	if err != nil {
		exit.Log(err)
	}
}

type commandLine struct {
	dc         string // config file
	json       bool   // -j option
	fnScenario string
}

func parseCommandLine() *commandLine {
	var cl commandLine
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("v", false, "")
	flag.StringVar(&cl.dc, "c", "", "")
	flag.BoolVar(&cl.json, "j", false, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: epochdiag [options] <scenario>    diagnose scenario file
       epochdiag [options] -             diagnose scenario from stdin
       epochdiag -h                      display help and quick reference
       epochdiag -v                      display version and copyright

Options:
       -c <config-file>
       -j                                JSON output
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
	case flag.NArg() != 1:
		flag.Usage()
		os.Exit(1)
	}
	cl.fnScenario = flag.Arg(0)
	return &cl
}

// readConfig returns defaults if no config file is specified and the
// default file does not exist.  Other failures are fatal.
func readConfig(cl *commandLine) (report.Options, outputOptions) {
	opt := report.DefaultOptions()
	out := defaultOutput()
	out.json = cl.json
	fn := cl.dc
	if fn == "" {
		fn = configDefault
	}
	f, err := os.Open(fn)
	if err != nil {
		if cl.dc == "" {
			return opt, out
		}
		exit.Log(err)
	}
	defer f.Close()
	if err := parseConfig(f, &opt, &out); err != nil {
		exit.Log(err)
	}
	// command line takes precedence
	if cl.json {
		out.json = true
	}
	return opt, out
}

func printHelp() {
	fmt.Println(`
Epochdiag checks orbital elements for epoch and unit consistency.
Input is a YAML scenario of bodies with their elements and epochs, and
optionally close approaches with expected and computed distances.
Output is epoch drift estimates, mean motion checks, and a diagnosis of
distance discrepancies.

Config file keywords:
   headings
   noheadings
   sexagesimal
   decimal
   json
   text
   tolerance[ <body>]=<deg/day>
   kepler=<fraction>
   rate[ <body>]=<km/day>
   period=<days>
   stale=<km>
   band=<factor>

For full documentation:
   go doc github.com/soniakeys/epochdiag`)
}
