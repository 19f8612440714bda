package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"
)

var (
	ErrInvalidArgumentCount = errors.New("exactly three population counts are required")
	ErrInvalidCount         = errors.New("population count must be a non-negative integer")
)

const (
	RendererRaylib   = "raylib"
	RendererTerminal = "tty"
	RendererHeadless = "headless"
)

// Config is the parsed command line.
type Config struct {
	Yeast    int
	Glucose  int
	Other    int
	Renderer string
	Sound    bool
	Seed     uint64
	Verbose  bool
}

const usage = `usage: yeast-sim [flags] <yeast> <glucose> <other>

Seeds an arena with the given numbers of yeast, glucose and other
particles and runs until the glucose is gone.

flags:
`

// parseConfig parses args (without the program name). Usage goes to out.
func parseConfig(args []string, out io.Writer) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet("yeast-sim", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Renderer, "renderer", RendererRaylib, "frontend: raylib, tty or headless")
	fs.BoolVar(&cfg.Sound, "sound", false, "play a tone for every reaction")
	fs.Uint64Var(&cfg.Seed, "seed", uint64(time.Now().UnixNano()), "random seed")
	fs.BoolVar(&cfg.Verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch cfg.Renderer {
	case RendererRaylib, RendererTerminal, RendererHeadless:
	default:
		fs.Usage()
		return Config{}, fmt.Errorf("unknown renderer %q", cfg.Renderer)
	}

	if fs.NArg() != 3 {
		fs.Usage()
		return Config{}, fmt.Errorf("%w, got %d", ErrInvalidArgumentCount, fs.NArg())
	}

	counts := make([]int, 3)
	for i, arg := range fs.Args() {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fs.Usage()
			return Config{}, fmt.Errorf("%w: %q: %w", ErrInvalidCount, arg, err)
		}
		if n < 0 {
			fs.Usage()
			return Config{}, fmt.Errorf("%w: %d", ErrInvalidCount, n)
		}
		counts[i] = n
	}
	cfg.Yeast, cfg.Glucose, cfg.Other = counts[0], counts[1], counts[2]
	return cfg, nil
}
