package cli

import (
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"zonetext/ui"
)

type (
	Args struct {
		Dump        *DumpCmd        `arg:"subcommand:dump"`
		Load        *LoadCmd        `arg:"subcommand:load"`
		Menu        *MenuCmd        `arg:"subcommand:menu"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Config      string          `help:"path to an optional settings file" placeholder:"zonetext.ini"`
		Verbose     bool            `help:"log at debug level"`
	}
	DumpCmd struct {
		From  string `arg:"required" help:"path to source file" placeholder:"bullet.tracer.json"`
		To    string `arg:"required" help:"path to destination file" placeholder:"bullet.tracer"`
		Force bool   `help:"overwrite the destination file"`
	}
	LoadCmd struct {
		From  string `arg:"required" help:"path to source file" placeholder:"bullet.tracer"`
		To    string `arg:"required" help:"path to destination file" placeholder:"bullet.tracer.json"`
		Name  string `help:"asset name; the source file name is used when empty"`
		Force bool   `help:"overwrite the destination file"`
	}
	MenuCmd struct {
		From  string `arg:"required" help:"path to a statement JSON file" placeholder:"visible.stmt.json"`
		To    string `help:"path to destination file; stdout when empty"`
		Bool  bool   `help:"serialize as a boolean guard (when ...)"`
		Force bool   `help:"overwrite the destination file"`
	}
	InteractiveCmd struct{}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Ruin has come to our zone files.\n",
			"A CLI utility to convert zone assets between their binary-shaped JSON dumps",
			"and the engine's editable text dialects (InfoString tables, menu expressions).",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.
		New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func checkDestination(logger zerolog.Logger, path string, force bool) bool {
	if path == "" || !CheckExistence(path) || force {
		return true
	}
	logger.Error().
		Str("path", path).
		Msg("destination file exists; pass --force to allow overwriting")
	return false
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	logger := newLogger(args.Verbose)
	settings, err := LoadSettings(args.Config)
	if err != nil {
		logger.Fatal().Err(err).Msg("reading settings failed")
	}

	switch {
	case args.Dump != nil:
		if !checkDestination(logger, args.Dump.To, args.Dump.Force) {
			return
		}
		if err := StartDumping(logger, settings, args.Dump.From, args.Dump.To); err != nil {
			logger.Fatal().Err(err).Msg("dumping failed")
		}
	case args.Load != nil:
		if !checkDestination(logger, args.Load.To, args.Load.Force) {
			return
		}
		if err := StartLoading(logger, args.Load.From, args.Load.To, args.Load.Name); err != nil {
			logger.Fatal().Err(err).Msg("loading failed")
		}
	case args.Menu != nil:
		if !checkDestination(logger, args.Menu.To, args.Menu.Force) {
			return
		}
		if err := StartMenuSerializing(logger, args.Menu.From, args.Menu.To, args.Menu.Bool); err != nil {
			logger.Fatal().Err(err).Msg("serializing failed")
		}
	case args.Interactive != nil:
		ui.Start()
	default:
		parser.WriteHelp(os.Stdout)
	}
}
