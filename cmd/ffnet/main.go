// Package main provides the ffnet CLI.
//
// Usage:
//
//	ffnet version
//	ffnet run  -config net.yaml [-weights net.safetensors] [-input 1,2,3,4] [-v]
//	ffnet init -config net.yaml -out net.safetensors [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/born-ml/ffnet/internal/config"
	"github.com/born-ml/ffnet/internal/network"
)

const version = "v0.1.0"

var errUsage = errors.New("usage")

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errUsage) {
			log.Error().Err(err).Msg("ffnet failed")
		}
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return errUsage
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "ffnet %s\n", version)
		return nil
	case "run":
		return runForward(args[1:], stdout)
	case "init":
		return runInit(args[1:], stdout)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		usage(stdout)
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "ffnet - feedforward network inference")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run      Build a network from a config and run a forward pass")
	fmt.Fprintln(w, "  init     Initialize weights from a config and save them")
	fmt.Fprintln(w, "  version  Show version")
}

func setVerbose(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func runForward(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stdout)
	configPath := fs.String("config", "", "network config (.yaml, .yml or .json)")
	weightsPath := fs.String("weights", "", "SafeTensors checkpoint to load weights from")
	input := fs.String("input", "", "comma-separated input vector, overrides config inputs")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	setVerbose(*verbose)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *input != "" {
		if cfg.Inputs, err = parseVector(*input); err != nil {
			return err
		}
	}
	if len(cfg.Inputs) == 0 {
		return fmt.Errorf("no inputs: set inputs in the config or pass -input")
	}

	net, err := cfg.Build()
	if err != nil {
		return err
	}
	if *weightsPath != "" {
		if err := net.Load(*weightsPath); err != nil {
			return err
		}
	}

	if err := net.Process(); err != nil {
		return err
	}

	outputs := net.Outputs()
	log.Debug().Ints("layers", cfg.Layers).Str("activation", cfg.Activation).Msg("forward pass complete")
	fmt.Fprintln(stdout, formatVector(outputs))
	return nil
}

func runInit(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(stdout)
	configPath := fs.String("config", "", "network config (.yaml, .yml or .json)")
	out := fs.String("out", "", "output SafeTensors file")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	setVerbose(*verbose)

	if *out == "" {
		return fmt.Errorf("%w: -out is required", errUsage)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	net, err := cfg.Build()
	if err != nil {
		return err
	}
	if err := net.Save(*out); err != nil {
		return err
	}

	log.Info().Str("path", *out).Str("layers", network.FormatLayerSizes(cfg.Layers)).Str("mode", cfg.Init.Mode).Msg("saved initialized weights")
	fmt.Fprintln(stdout, *out)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		log.Debug().Msg("no -config given, using default network")
		return config.Default(), nil
	}
	return config.Load(path)
}

func parseVector(s string) ([]float32, error) {
	parts := strings.Split(s, ",")
	v := make([]float32, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

func formatVector(v []float32) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(float64(x), 'g', -1, 32)
	}
	return strings.Join(parts, ",")
}
