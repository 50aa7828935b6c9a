package main

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/howeyc/fsnotify"

	"github.com/ezrec/tapevm/compiler"
	"github.com/ezrec/tapevm/machine"
	"github.com/ezrec/tapevm/sink"
	"github.com/ezrec/tapevm/translate"
)

var errCapacityNegative = errors.New(translate.From("output capacity negative"))

// runner compiles and runs programs with one set of options.
type runner struct {
	Verbose  bool              // If set, logs compiler and evaluator steps.
	Width    uint              // Tape and cell width.
	Capacity int               // Output buffer capacity.
	Limit    int               // Step limit, zero is unlimited.
	Raw      bool              // Write output without rendering.
	Defines  map[string]string // Compiler predefines.
	Output   io.Writer         // Destination of the output.
}

// Run compiles and runs one program.
func (rn *runner) Run(input io.Reader) (err error) {
	if rn.Capacity < 0 {
		err = errCapacityNegative
		return
	}

	cc := &compiler.Compiler{Verbose: rn.Verbose}
	for name, value := range rn.Defines {
		cc.Predefine(name, value)
	}

	prog, err := cc.Parse(input)
	if err != nil {
		return
	}

	state, err := machine.NewState(rn.Width)
	if err != nil {
		return
	}

	ev := machine.NewEvaluator(prog, state)
	ev.Verbose = rn.Verbose
	ev.Limit = rn.Limit

	for done, err := ev.Tick(); !done; done, err = ev.Tick() {
		if err != nil {
			return err
		}
	}

	if rn.Verbose {
		log.Printf("%v steps, %v", ev.Steps(), ev.State())
		for addr, cell := range ev.State().Tape.NonZero() {
			log.Printf("cell 0x%02x = 0x%02x", addr, cell.Value())
		}
	}

	buf := make([]byte, rn.Capacity)
	n, err := sink.Copy(buf, ev.State().Output)
	if err != nil {
		return
	}

	err = sink.Emit(rn.Output, buf[:n], rn.Raw)

	return
}

// RunFile compiles and runs the program in a file.
func (rn *runner) RunFile(path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return rn.Run(inf)
}

// Watch runs the program in a file, and runs it again every time the file
// is written, until stop is closed. Errors from the program are logged
// rather than returned.
func (rn *runner) Watch(path string, stop <-chan struct{}) (err error) {
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return
	}
	defer watcher.Close()

	err = watcher.Watch(filepath.Dir(path))
	if err != nil {
		return
	}

	rerun := func() {
		log.Printf("watch: run %s", filepath.Base(path))
		if err := rn.RunFile(path); err != nil {
			log.Printf("watch: %v", err)
		}
	}

	rerun()

	for {
		select {
		case ev := <-watcher.Event:
			if filepath.Clean(ev.Name) != path {
				break
			}
			if ev.IsModify() || ev.IsCreate() || ev.IsRename() {
				rerun()
			}
		case err = <-watcher.Error:
			return
		case <-stop:
			return
		}
	}
}
