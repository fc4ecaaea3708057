package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultCount      = 6
	defaultMax        = 100
	defaultDebugLevel = "info"
)

// config defines the configuration options for rbstdemo.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Count      int    `short:"n" long:"count" description:"Number of unique keys to insert in each tree"`
	Max        int    `short:"m" long:"max" description:"Keys are drawn from [0, max)"`
	Seed       uint64 `short:"s" long:"seed" description:"Seed of the key generator -- Use 0 to seed from the clock"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
}

// loadConfig initializes and parses the config using the given command line
// options.
func loadConfig(args []string) (*config, error) {
	// Default config.
	cfg := config{
		Count:      defaultCount,
		Max:        defaultMax,
		DebugLevel: defaultDebugLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, err
	}

	funcName := "loadConfig"
	if cfg.Max <= 0 {
		str := "%s: max must be positive -- parsed [%d]"
		return nil, usageError(parser, fmt.Errorf(str, funcName, cfg.Max))
	}
	if cfg.Count < 0 || cfg.Count > cfg.Max {
		str := "%s: count must be in [0, %d] to draw unique keys -- parsed [%d]"
		return nil, usageError(parser, fmt.Errorf(str, funcName, cfg.Max, cfg.Count))
	}
	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		str := "%s: the specified debug level [%v] is invalid"
		return nil, usageError(parser, fmt.Errorf(str, funcName, cfg.DebugLevel))
	}

	return &cfg, nil
}

// usageError prints err followed by the usage message and returns err.
func usageError(parser *flags.Parser, err error) error {
	fmt.Fprintln(os.Stderr, err)
	parser.WriteHelp(os.Stderr)
	return err
}
