// Command lispi is the REPL/batch-file entry point: it wires CLI flags
// and an optional YAML config file into an interp.Context, then drives
// the parser and driver loop until end of input (spec §6), grounded on
// main()'s flag handling in original_source/src/interpreter.c and restated
// with Go's flag package the way cmd/barn/main.go configures its server.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"lispi/config"
	"lispi/driver"
	"lispi/interp"
	"lispi/parser"
	"lispi/trace"
)

// version is the module version string printed by -version.
const version = "lispi 0.1.0"

func main() {
	var (
		file       = flag.String("f", "", "read a program from this file instead of stdin")
		debugFlag  = flag.String("d", "", "enable debug trace; no path means stdout")
		debugSet   = false
		serial     = flag.Bool("s", false, "disable parallel argument evaluation (MAX_WORKERS=0)")
		configPath = flag.String("config", "", "optional YAML config file")
		showVer    = flag.Bool("version", false, "print the version string and exit")
	)
	// A bare -d (last argument, or followed by another flag) becomes -d=,
	// the empty path that selects stdout below.
	args := os.Args[1:]
	for i, a := range args {
		if a == "-d" && (i+1 == len(args) || (args[i+1] != "" && args[i+1][0] == '-')) {
			args[i] = "-d="
		}
	}
	flag.CommandLine.Parse(args)

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "d" {
			debugSet = true
		}
	})

	if *showVer {
		fmt.Println(version)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Printf("failed to load config %s: %v", *configPath, err)
		} else {
			cfg = loaded
		}
	}

	if *serial {
		cfg.MaxWorkers = 0
	}

	var debugOut io.Writer
	switch {
	case debugSet && *debugFlag == "":
		debugOut = os.Stdout
	case debugSet:
		f, err := os.Create(*debugFlag)
		if err != nil {
			log.Printf("failed to open debug file %s: %v", *debugFlag, err)
		} else {
			debugOut = f
			defer f.Close()
		}
	case cfg.DebugPath != "":
		f, err := os.Create(cfg.DebugPath)
		if err != nil {
			log.Printf("failed to open debug file %s: %v", cfg.DebugPath, err)
		} else {
			debugOut = f
			defer f.Close()
		}
	}

	var tracer *trace.Tracer
	if debugOut != nil {
		tracer = trace.New(debugOut)
	}

	input := os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			fmt.Printf("Failed to open %s\n", *file)
		} else {
			input = f
			defer f.Close()
		}
	}

	src, err := io.ReadAll(input)
	if err != nil {
		log.Fatalf("failed to read input: %v", err)
	}

	ctx := interp.New(cfg.MaxWorkers, tracer)
	d := driver.New(ctx, os.Stdout)

	p := parser.NewParser(string(src))
	for {
		form, err := p.ParseForm()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println(err.Error())
			continue
		}
		d.RunForm(form)
	}
}
