// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/ezrec/tapevm/compiler"
	"github.com/ezrec/tapevm/sink"
	"github.com/ezrec/tapevm/tape"
)

// defineFlag collects repeated -D NAME=VALUE flags.
type defineFlag map[string]string

func (df defineFlag) String() string {
	var defs []string
	for name, value := range df {
		defs = append(defs, name+"="+value)
	}
	return strings.Join(defs, ",")
}

func (df defineFlag) Set(text string) error {
	name, value, _ := strings.Cut(text, "=")
	df[name] = value
	return nil
}

func main() {
	var file string
	var source string
	var demo bool
	var output string
	var watch bool

	defines := defineFlag{}
	rn := &runner{Defines: defines}

	flag.StringVar(&file, "c", "", "program file to compile (- for stdin)")
	flag.StringVar(&source, "e", "", "program text to compile")
	flag.BoolVar(&demo, "demo", false, "run the built-in greeting program")
	flag.UintVar(&rn.Width, "w", tape.DEFAULT_WIDTH, "tape and cell width, in bits")
	flag.IntVar(&rn.Capacity, "n", sink.DEFAULT_CAPACITY, "output buffer capacity, in bytes")
	flag.IntVar(&rn.Limit, "l", 0, "step limit (0 is unlimited)")
	flag.StringVar(&output, "o", "-", "output file")
	flag.BoolVar(&rn.Raw, "raw", false, "write output bytes without UTF-8 rendering")
	flag.Var(defines, "D", "predefine NAME=VALUE for $(...) expressions")
	flag.BoolVar(&watch, "watch", false, "rerun the -c file whenever it changes")
	flag.BoolVar(&rn.Verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if rn.Capacity < 0 {
		log.Fatalf("%v: -n %v: %v", os.Args[0], rn.Capacity, errCapacityNegative)
	}

	if output == "-" {
		rn.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		rn.Output = ouf
	}

	var err error
	switch {
	case watch:
		if len(file) == 0 || file == "-" {
			log.Fatalf("%v: -watch needs a -c file", os.Args[0])
		}
		err = rn.Watch(file, nil)
	case demo:
		err = rn.Run(strings.NewReader(compiler.GREETING))
	case len(source) != 0:
		err = rn.Run(strings.NewReader(source))
	case file == "-":
		err = rn.Run(os.Stdin)
	case len(file) != 0:
		err = rn.RunFile(file)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
