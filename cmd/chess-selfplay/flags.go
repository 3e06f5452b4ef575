// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// options holds the parsed command line.
type options struct {
	// Games
	games    int
	maxPlies int
	workers  int
	seed     int64
	startFEN string

	// Tags
	event, site, white, black string

	// Output options
	outputFile   string
	appendOutput bool
	jsonOutput   bool
	outputFormat string
	lineLength   int
	sevenTagOnly bool
	noTags       bool
	noResults    bool
	noChecks     bool

	// Duplicate detection
	suppressDuplicates bool
	duplicateFile      string
	exactDuplicates    bool

	// Annotations
	addPlyCount    bool
	addTermination bool
	addFinalFEN    bool
	addHashcodeTag bool

	// Logging
	logFile  string
	logLevel string

	// Other options
	quiet   bool
	help    bool
	version bool
}

// newFlagSet binds every flag to opts.
func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("chess-selfplay", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&opts.games, "n", 1, "Number of games to play")
	fs.IntVar(&opts.maxPlies, "maxplies", 500, "Stop a game after this many plies (0 = no limit)")
	fs.IntVar(&opts.workers, "workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	fs.Int64Var(&opts.seed, "seed", 1, "Seed for the random movers")
	fs.StringVar(&opts.startFEN, "fen", engine.InitialFEN, "Starting position")

	fs.StringVar(&opts.event, "event", "Casual game", "Event tag")
	fs.StringVar(&opts.site, "site", "?", "Site tag")
	fs.StringVar(&opts.white, "white", "?", "White tag")
	fs.StringVar(&opts.black, "black", "?", "Black tag")

	fs.StringVar(&opts.outputFile, "o", "", "Output file (default: stdout)")
	fs.BoolVar(&opts.appendOutput, "a", false, "Append to output file instead of overwrite")
	fs.BoolVar(&opts.jsonOutput, "J", false, "Output in JSON format")
	fs.StringVar(&opts.outputFormat, "W", "san", "Move notation: san, lalg")
	fs.IntVar(&opts.lineLength, "w", 80, "Maximum line length (0 = no wrapping)")
	fs.BoolVar(&opts.sevenTagOnly, "7", false, "Output only the seven tag roster")
	fs.BoolVar(&opts.noTags, "notags", false, "Don't output any tags")
	fs.BoolVar(&opts.noResults, "noresults", false, "Don't output results")
	fs.BoolVar(&opts.noChecks, "nochecks", false, "Don't output check and mate symbols")

	fs.BoolVar(&opts.suppressDuplicates, "D", false, "Suppress games ending in an already seen position")
	fs.StringVar(&opts.duplicateFile, "d", "", "Output duplicates to this file")
	fs.BoolVar(&opts.exactDuplicates, "exact", false, "Duplicates must also have the same length")

	fs.BoolVar(&opts.addPlyCount, "plycount", false, "Add PlyCount tag")
	fs.BoolVar(&opts.addTermination, "termination", false, "Add Termination tag")
	fs.BoolVar(&opts.addFinalFEN, "fencomment", false, "Add the final position as a comment")
	fs.BoolVar(&opts.addHashcodeTag, "addhashcode", false, "Add HashCode tag")

	fs.StringVar(&opts.logFile, "l", "", "Write diagnostics to log file")
	fs.StringVar(&opts.logLevel, "loglevel", "info", "Log level: debug, info, warn, error")

	fs.BoolVar(&opts.quiet, "s", false, "Silent mode (no summary)")
	fs.BoolVar(&opts.help, "h", false, "Show help")
	fs.BoolVar(&opts.version, "version", false, "Show version")

	fs.Usage = func() { usage(fs) }
	return fs
}

// parseFlags parses args into options.
func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fs := newFlagSet(opts, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if fs.NArg() > 0 {
		return nil, fs, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.workers <= 0 {
		opts.workers = runtime.NumCPU()
	}
	return opts, fs, nil
}

// applyFlags applies command-line options to the configuration. It does not
// open any files.
func applyFlags(cfg *config.Config, opts *options) error {
	cfg.StartFEN = opts.startFEN
	cfg.Tags[chess.EventTag] = opts.event
	cfg.Tags[chess.SiteTag] = opts.site
	cfg.Tags[chess.WhiteTag] = opts.white
	cfg.Tags[chess.BlackTag] = opts.black

	cfg.SelfPlay.Games = opts.games
	cfg.SelfPlay.MaxPlies = opts.maxPlies
	cfg.SelfPlay.Workers = opts.workers
	cfg.SelfPlay.Seed = opts.seed

	applyOutputFlags(cfg, opts)

	cfg.Duplicate.Suppress = opts.suppressDuplicates
	cfg.Duplicate.ExactMatch = opts.exactDuplicates

	cfg.Annotation.AddPlyCount = opts.addPlyCount
	cfg.Annotation.AddTermination = opts.addTermination
	cfg.Annotation.AddFinalFEN = opts.addFinalFEN
	cfg.Annotation.AddHashTag = opts.addHashcodeTag

	if err := cfg.LogLevel.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("log level %q: %w", opts.logLevel, err)
	}
	if opts.quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config, opts *options) {
	switch {
	case opts.noTags:
		cfg.Output.TagFormat = config.NoTags
	case opts.sevenTagOnly:
		cfg.Output.TagFormat = config.SevenTagRoster
	}

	if opts.outputFormat == config.LALG.String() {
		cfg.Output.Format = config.LALG
	} else {
		cfg.Output.Format = config.SAN
	}

	cfg.Output.JSONFormat = opts.jsonOutput
	cfg.Output.KeepResults = !opts.noResults
	cfg.Output.KeepChecks = !opts.noChecks
	if opts.lineLength > 0 {
		cfg.Output.MaxLineLength = uint(opts.lineLength)
	} else {
		cfg.Output.MaxLineLength = 0
	}
}

// openFiles opens the output, duplicate and log files named by opts. The
// returned function closes whatever was opened.
func openFiles(cfg *config.Config, opts *options) (func(), error) {
	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		}
	}

	if opts.outputFile != "" {
		var f *os.File
		var err error
		if opts.appendOutput {
			f, err = os.OpenFile(opts.outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
		} else {
			f, err = os.Create(opts.outputFile)
		}
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("creating output file %s: %w", opts.outputFile, err)
		}
		files = append(files, f)
		cfg.SetOutput(f)
	}

	if opts.duplicateFile != "" {
		f, err := os.Create(opts.duplicateFile)
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("creating duplicate file %s: %w", opts.duplicateFile, err)
		}
		files = append(files, f)
		cfg.Duplicate.DuplicateFile = f
	}

	if opts.logFile != "" {
		f, err := os.Create(opts.logFile)
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("creating log file %s: %w", opts.logFile, err)
		}
		files = append(files, f)
		cfg.SetLogOutput(f)
	}

	return closeAll, nil
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: chess-selfplay [options]\n\n")
	fmt.Fprintf(w, "Plays games between two random movers and writes them as PGN or JSON.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nMove notation (-W):\n")
	fmt.Fprintf(w, "  san    Standard Algebraic Notation (default)\n")
	fmt.Fprintf(w, "  lalg   Long algebraic (e2e4)\n")
}
