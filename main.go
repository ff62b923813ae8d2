package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Edouard127/ciede2000/harness"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

var isCount = regexp.MustCompile(`^[1-9][0-9]{0,7}$`).MatchString
var isPeer = regexp.MustCompile(`^[a-zA-Z]+$`).MatchString

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("ciede2000", flag.ContinueOnError)
	flags.SetOutput(stdout)
	configPath := flags.String("config", "", "YAML configuration file")
	seed := flags.Uint64("seed", 0, "seed of the record generator, overrides the configuration")
	debug := flags.Bool("debug", false, "development logging")
	flags.Usage = func() { usage(stdout, flags) }

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() != 1 {
		usage(stdout, flags)
		return exitUsage
	}

	config, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stdout, "Invalid configuration:", err)
		return exitUsage
	}
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			config.Seed = *seed
		}
	})

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintln(stdout, "Error creating logger:", err)
		return exitFailure
	}
	defer logger.Sync()

	input := flags.Arg(0)
	switch {
	case isCount(input):
		count, _ := strconv.Atoi(input)
		return generate(logger, config, stdout, count)
	case isPeer(input):
		return compare(logger, config, stdout, input)
	}

	usage(stdout, flags)
	return exitUsage
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func generate(logger *zap.Logger, config Config, stdout io.Writer, count int) int {
	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) ^ uint64(count)
	}
	logger = logger.With(zap.Uint64("seed", seed))

	g := harness.NewGenerator(logger, harness.NewXorshift(seed),
		harness.WithWeights(config.Weights),
		harness.WithProgress(progressMarker(stdout, config.ProgressEvery)),
	)
	err := g.GenerateFile(config.Output, count)
	endProgress(stdout, config.ProgressEvery, count)
	if err != nil {
		logger.Error("Error generating records", zap.Error(err))
		return exitFailure
	}
	return exitOK
}

func compare(logger *zap.Logger, config Config, stdout io.Writer, peer string) int {
	path, err := harness.PeerPath(config.PeerPath, peer)
	if err != nil {
		logger.Error("Invalid peer", zap.Error(err))
		return exitUsage
	}
	logger = logger.With(zap.String("peer", peer))

	c := harness.NewComparator(logger,
		harness.WithWeights(config.Weights),
		harness.WithTolerance(config.Tolerance),
		harness.WithMaxMismatches(config.MaxMismatches),
		harness.WithProgress(progressMarker(stdout, config.ProgressEvery)),
	)
	report, err := c.CompareFile(path)
	if report != nil {
		endProgress(stdout, config.ProgressEvery, report.Lines)
	}
	if err != nil {
		logger.Error("Error comparing records", zap.Error(err))
		return exitFailure
	}
	if !report.OK() {
		return exitFailure
	}
	return exitOK
}

// progressMarker prints a dot every n records.
func progressMarker(w io.Writer, n int) harness.Progress {
	if n <= 0 {
		return nil
	}
	return func(records int) {
		if records%n == 0 {
			fmt.Fprint(w, ".")
		}
	}
}

func endProgress(w io.Writer, n, records int) {
	if n > 0 && records >= n {
		fmt.Fprintln(w)
	}
}

func usage(w io.Writer, flags *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: ciede2000 [flags] <count | peer>")
	fmt.Fprintln(w, "  - Provide a positive integer between 1 and 99,999,999 to produce a test file.")
	fmt.Fprintln(w, "  - Provide a peer name (letters only) to check the records that peer produced.")
	fmt.Fprintln(w, "  - Any other input shows this help message.")
	fmt.Fprintln(w, "Flags:")
	flags.PrintDefaults()
}
