// Command edn reads EDN source from a file or stdin and either prints it
// back out canonically or normalizes it to JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/knakk/edn"
)

type options struct {
	File      string `short:"f" long:"file" description:"Read EDN from the file, rather than stdin" value-name:"filename" default:"-"`
	Normalize bool   `short:"n" long:"normalize" description:"Normalize to host values and print as JSON instead of EDN"`
	CharNames bool   `long:"char-names" description:"Print \\newline, \\return, \\tab, \\space instead of the generic \\X escape"`
	Help      bool   `long:"help" description:"Show this help"`
}

func parseOptions(args []string) (*options, []string) {
	var opts options
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[option...]"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}
	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	return &opts, rest
}

func main() {
	opts, _ := parseOptions(os.Args[1:])

	var src []byte
	var err error
	if opts.File == "" || opts.File == "-" {
		src, err = io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("edn: reading stdin: %s", err)
		}
	} else {
		src, err = os.ReadFile(opts.File)
		if err != nil {
			log.Fatalf("edn: %s", err)
		}
	}

	vals, err := edn.Parse(src)
	if err != nil {
		log.Fatalf("edn: %s", err)
	}

	if opts.Normalize {
		runNormalize(vals)
		return
	}
	runPrint(vals, opts.CharNames)
}

func runPrint(vals []edn.Value, charNames bool) {
	p := &edn.Printer{CharNames: charNames}
	for i, v := range vals {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(p.Sprint(v))
	}
	fmt.Println()
}

func runNormalize(vals []edn.Value) {
	handlers := edn.BuiltinHandlers()
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		n, err := edn.Normalize(v, handlers)
		if err != nil {
			log.Fatalf("edn: %s", err)
		}
		out[i] = n
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	var payload interface{} = out
	if len(out) == 1 {
		payload = out[0]
	}
	if err := enc.Encode(payload); err != nil {
		log.Fatalf("edn: encoding JSON: %s", err)
	}
}
