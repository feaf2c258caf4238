// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ezrec/bfvm/config"
	"github.com/ezrec/bfvm/emulator"
	bfio "github.com/ezrec/bfvm/io"
	"github.com/ezrec/bfvm/program"
	"github.com/ezrec/bfvm/tape"
	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrUsage     = errors.New(f("usage"))
	ErrTimeLimit = errors.New(f("time limit exceeded"))
)

// Dumper writes the tape contents to a file.
type Dumper interface {
	Marshal(file io.Writer) error
}

// Preloader loads the tape contents from a file.
type Preloader interface {
	Unmarshal(file io.Reader) error
}

// options are the command line settings.
type options struct {
	configFile string
	source     string
	size       int
	circular   bool
	input      string
	output     string
	preload    string
	dump       string
	timeout    time.Duration
	verbose    bool
}

func newFlagSet(opts *options, stderr io.Writer) (fs *flag.FlagSet) {
	fs = flag.NewFlagSet("bfvm", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configFile, "c", "", ".toml or .star configuration file")
	fs.StringVar(&opts.source, "e", "", "Program source, instead of a file")
	fs.IntVar(&opts.size, "s", 0, "Tape size in cells")
	fs.BoolVar(&opts.circular, "w", false, "Wrap the tape into a ring")
	fs.StringVar(&opts.input, "i", "-", "Program input")
	fs.StringVar(&opts.output, "o", "-", "Program output")
	fs.StringVar(&opts.preload, "p", "", "File to preload the tape from")
	fs.StringVar(&opts.dump, "d", "", "File to dump the tape to after the run")
	fs.DurationVar(&opts.timeout, "t", 0, "Wall clock limit for the run")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose mode")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), f("usage: %v [flags] (-e source | file)", fs.Name()))
		fs.PrintDefaults()
	}

	return
}

// config loads the configuration file, then applies the flags that were
// set on the command line over it.
func (opts *options) config(fs *flag.FlagSet) (cfg *config.Config, err error) {
	cfg = config.Default()
	if len(opts.configFile) != 0 {
		cfg, err = config.Load(opts.configFile)
		if err != nil {
			err = fmt.Errorf("%v: %w", opts.configFile, err)
			return
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "s":
			cfg.TapeSize = opts.size
		case "w":
			if opts.circular {
				cfg.Tape = tape.POLICY_CIRCULAR.String()
			} else {
				cfg.Tape = tape.POLICY_BOUNDED.String()
			}
		case "t":
			cfg.Timeout = opts.timeout.String()
		case "v":
			cfg.Verbose = opts.verbose
		}
	})

	err = cfg.Validate()
	if err != nil {
		cfg = nil
	}

	return
}

// parse reads the program from -e or from the single file argument.
func (opts *options) parse(fs *flag.FlagSet) (prog *program.Program, err error) {
	var name string
	switch {
	case fs.NArg() == 0 && len(opts.source) != 0:
		name = "-e"
		prog, err = program.Parse(opts.source)
	case fs.NArg() == 1 && len(opts.source) == 0:
		name = fs.Arg(0)
		var inf *os.File
		inf, err = os.Open(name)
		if err != nil {
			return
		}
		defer inf.Close()
		prog, err = program.ParseReader(inf)
	default:
		fs.Usage()
		err = ErrUsage
		return
	}

	if err != nil {
		err = diagnostic(name, err)
	}

	return
}

// bfvm runs the command line in args, with "-" input and output on stdin
// and stdout.
func bfvm(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) (err error) {
	opts := &options{}
	fs := newFlagSet(opts, stderr)

	err = fs.Parse(args)
	if err != nil {
		return
	}

	cfg, err := opts.config(fs)
	if err != nil {
		return
	}

	prog, err := opts.parse(fs)
	if err != nil {
		return
	}

	tp, err := cfg.NewTape()
	if err != nil {
		return
	}

	if len(opts.preload) != 0 {
		var inf *os.File
		inf, err = os.Open(opts.preload)
		if err != nil {
			return
		}
		err = tp.(Preloader).Unmarshal(inf)
		inf.Close()
		if err != nil {
			err = fmt.Errorf("%v: %w", opts.preload, err)
			return
		}
	}

	con := &bfio.Console{}

	if opts.input == "-" {
		con.Input = stdin
	} else {
		var inf *os.File
		inf, err = os.Open(opts.input)
		if err != nil {
			return
		}
		defer inf.Close()
		con.Input = inf
	}

	if opts.output == "-" {
		con.Output = stdout
	} else {
		var ouf *os.File
		ouf, err = os.Create(opts.output)
		if err != nil {
			return
		}
		defer ouf.Close()
		con.Output = ouf
	}

	emu := emulator.NewEmulator(prog, tp)
	emu.Input = con
	emu.Output = con
	emu.Verbose = cfg.Verbose

	limit, _ := cfg.TimeoutDuration()
	err = run(emu, limit)

	// Output produced before a failure, or before the time limit, is kept.
	if closeErr := con.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return
	}

	if len(opts.dump) != 0 {
		var ouf *os.File
		ouf, err = os.Create(opts.dump)
		if err != nil {
			return
		}
		err = tp.(Dumper).Marshal(ouf)
		if closeErr := ouf.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			err = fmt.Errorf("%v: %w", opts.dump, err)
		}
	}

	return
}

func main() {
	err := bfvm(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, ErrUsage):
		os.Exit(2)
	default:
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

// run executes the emulator. If limit is non-zero and the run takes longer,
// ErrTimeLimit is returned while the emulator is left running.
func run(emu *emulator.Emulator, limit time.Duration) (err error) {
	if limit == 0 {
		return emu.Run()
	}

	done := make(chan error, 1)
	go func() {
		done <- emu.Run()
	}()

	timer := time.NewTimer(limit)
	defer timer.Stop()

	select {
	case err = <-done:
	case <-timer.C:
		err = fmt.Errorf("%w: %v", ErrTimeLimit, limit)
	}

	return
}

// diagnostic prefixes a parse error with the program name, giving
// name:line:col: message for syntax errors.
func diagnostic(name string, err error) error {
	var syntax *program.ErrSyntax
	if errors.As(err, &syntax) {
		return fmt.Errorf("%v:%w", name, err)
	}
	return fmt.Errorf("%v: %w", name, err)
}
