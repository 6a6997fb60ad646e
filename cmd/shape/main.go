package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	shape "github.com/reoring/shape"
	"github.com/reoring/shape/shapedef"
	"github.com/rs/zerolog"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "shape CLI\n\nUsage:\n  shape check -schema def.json [-format json|yaml] [-q] [data-file]\n\nNotes:\n  - data is read from the file argument, or stdin when omitted.\n  - the schema definition format is documented in the shapedef package.")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var schemaPath string
	var format string
	var quiet bool
	fs.StringVar(&schemaPath, "schema", "", "path to the shape definition (json or yaml by extension)")
	fs.StringVar(&format, "format", "json", "data format: json or yaml")
	fs.BoolVar(&quiet, "q", false, "suppress diagnostics")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	if quiet {
		shape.SetDiagLogger(zerolog.Nop())
	} else {
		shape.SetDiagLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel))
	}

	s := loadSchema(schemaPath)
	data := readData(fs.Args())

	var ok bool
	var err error
	switch format {
	case "json":
		ok, err = shape.CheckJSON(s, data)
	case "yaml":
		ok, err = shape.CheckYAML(s, data)
	default:
		fatalf("unknown format %q", format)
	}
	if err != nil {
		fatalf("decode: %v", err)
	}
	if !ok {
		fmt.Printf("invalid: value does not conform to %s\n", s.Name())
		os.Exit(1)
	}
	fmt.Printf("valid: %s\n", s.Name())
}

func loadSchema(path string) shape.Shape {
	raw, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading schema: %v", err)
	}
	var s shape.Shape
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		s, err = shapedef.FromYAML(raw)
	} else {
		s, err = shapedef.FromJSON(raw)
	}
	if err != nil {
		fatalf("compiling schema: %v", err)
	}
	return s
}

func readData(args []string) []byte {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("reading stdin: %v", err)
		}
		return data
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fatalf("reading data: %v", err)
	}
	return data
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
