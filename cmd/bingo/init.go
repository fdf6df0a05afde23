package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-bingo/internal/config"
	"github.com/alnah/go-bingo/internal/fileutil"
	"github.com/alnah/go-bingo/internal/hints"
	"github.com/alnah/go-bingo/internal/yamlutil"
)

// defaultInitPath is where init writes when no --output is given.
const defaultInitPath = "bingo.yaml"

// runInit writes the default configuration as an editable YAML file.
func runInit(args []string, env *Environment) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printInitUsage(env.Stderr) }
	output := fs.StringP("output", "o", defaultInitPath, "config file to create")
	force := fs.BoolP("force", "f", false, "overwrite an existing file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %v", ErrUnexpectedArgs, fs.Args())
	}

	if fileutil.FileExists(*output) && !*force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, *output)
	}

	cfg := env.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := fileutil.WriteFileAtomic(*output, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v%s", ErrWriteOutput, *output, err, hints.ForOutputDirectory())
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", *output)
	return nil
}
