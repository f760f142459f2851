// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/golang/snappy"

	"github.com/gjrchen/UWasic-Training-pt2/cpu"
	"github.com/gjrchen/UWasic-Training-pt2/emulator"
	sapio "github.com/gjrchen/UWasic-Training-pt2/io"
)

// traceWriter opens the trace destination. Names ending in .sz are
// snappy compressed.
func traceWriter(name string) (w io.WriteCloser, err error) {
	if name == "-" {
		w = nopCloser{os.Stderr}
		return
	}

	ouf, err := os.Create(name)
	if err != nil {
		return
	}

	if strings.HasSuffix(name, ".sz") {
		w = &snappyFile{Writer: snappy.NewBufferedWriter(ouf), file: ouf}
		return
	}

	w = ouf
	return
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

type snappyFile struct {
	*snappy.Writer
	file *os.File
}

func (sf *snappyFile) Close() (err error) {
	err = sf.Writer.Close()
	if err != nil {
		sf.file.Close()
		return
	}
	err = sf.file.Close()
	return
}

func main() {
	err := run(os.Args[0], os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

// run executes the command line. Open files are closed, and a compressed
// trace is flushed, before any error is returned.
func run(prog string, args []string, stdout io.Writer) (err error) {
	var compile string
	var image string
	var save bool
	var output string
	var limit int
	var trace string
	var color bool
	var verbose bool

	flags := flag.NewFlagSet(prog, flag.ContinueOnError)
	flags.StringVar(&compile, "c", "", ".sap file to compile")
	flags.StringVar(&image, "r", "", ".rom image file to use")
	flags.BoolVar(&save, "s", false, "Save compiled program to the image file, do not execute")
	flags.StringVar(&output, "o", "-", "Output register tape")
	flags.IntVar(&limit, "n", emulator.CLOCK_LIMIT, "Clock limit")
	flags.StringVar(&trace, "t", "", "Clock trace output (- for stderr, .sz for compressed)")
	flags.BoolVar(&color, "color", false, "Highlight changed registers in the trace")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if flags.NArg() != 0 {
		err = fmt.Errorf("%v: Unknown arguments: %v", prog, flags.Args())
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	// Compile a new instruction stream.
	if len(compile) != 0 {
		var inf *os.File
		inf, err = os.Open(compile)
		if err != nil {
			return
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			err = fmt.Errorf("%v: %w", compile, err)
			return
		}
	}

	bins := emu.Program.Binary()
	rom := &sapio.Rom{Data: bins[:]}

	if save {
		if len(image) == 0 {
			err = fmt.Errorf("%v: -s requires -r", prog)
			return
		}
		var ouf *os.File
		ouf, err = os.Create(image)
		if err != nil {
			return
		}
		err = rom.Marshal(ouf)
		if err != nil {
			ouf.Close()
			err = fmt.Errorf("%v: %w", image, err)
			return
		}
		err = ouf.Close()
		return
	}

	if len(image) != 0 && len(compile) == 0 {
		var inf *os.File
		inf, err = os.Open(image)
		if err != nil {
			return
		}
		err = rom.Unmarshal(inf)
		inf.Close()
		if err != nil {
			err = fmt.Errorf("%v: %w", image, err)
			return
		}
	}

	if output == "-" {
		emu.Tape.Output = stdout
	} else {
		var ouf *os.File
		ouf, err = os.Create(output)
		if err != nil {
			return
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	if len(trace) != 0 {
		var tw io.WriteCloser
		tw, err = traceWriter(trace)
		if err != nil {
			return
		}
		defer func() {
			cerr := tw.Close()
			if err == nil {
				err = cerr
			}
		}()
		emu.Trace = &emulator.Trace{Output: tw, Color: color}
	}

	err = emu.Boot(rom)
	if err != nil {
		return
	}

	clocks, err := emu.Run(limit)
	if err != nil {
		return
	}

	if verbose {
		log.Printf("sap1: halted after %d clocks\n%v", clocks, emu.Cpu)
	}

	return
}
