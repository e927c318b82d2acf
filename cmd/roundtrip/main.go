// Command roundtrip runs one compression round-trip check on one fuzz
// input file, the execution model used by file-based fuzzing drivers:
// exit status 0 means the input was handled correctly (or was too short
// to form a test case), any other exit means the codec violated its
// contract and the driver should keep the input for triage.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/codecfuzz/roundtrip"
)

var (
	codecName string
	list      bool
	verbose   bool
)

func init() {
	flag.StringVar(&codecName, "codec", "deflate", "Codec to exercise")
	flag.BoolVar(&list, "list", false, "List registered codecs and exit")
	flag.BoolVar(&verbose, "v", false, "Report the outcome of passing runs")
}

func main() {
	flag.Parse()

	if list {
		fmt.Println(strings.Join(roundtrip.Names(), "\n"))
		return
	}
	if flag.NArg() != 1 {
		fatal(usageString())
	}

	codec, err := roundtrip.ByName(codecName)
	if err != nil {
		fatal(err)
	}

	outcome, err := roundtrip.CheckFile(codec, flag.Arg(0))
	if err != nil {
		fatal(err)
	}
	if verbose {
		fmt.Printf("%s: %s\n", flag.Arg(0), outcome)
	}
}

func usageString() string {
	buf := new(strings.Builder)
	buf.WriteString("Usage: roundtrip [-codec name] <inputfile>\n")
	flag.CommandLine.SetOutput(buf)
	flag.PrintDefaults()
	return buf.String()
}

func fatal(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
	os.Exit(1)
}
