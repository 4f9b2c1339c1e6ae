package cli

import (
	"io"
	"os"
	"strings"

	"contraption/config"
	"contraption/tim"
	"contraption/tim/tstruct"
	"contraption/ui"
	"github.com/alexflint/go-arg"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

type (
	Args struct {
		Config  string      `arg:"--config" help:"path to a TOML config file" placeholder:"FILE"`
		Verbose bool        `arg:"-v,--verbose" help:"log at debug level"`
		Convert *ConvertCmd `arg:"subcommand:convert" help:"convert a level file to JSON or back"`
		Inspect *InspectCmd `arg:"subcommand:inspect" help:"browse the parts of a level file"`
	}
	ConvertCmd struct {
		From  string `arg:"required" help:"path to source file" placeholder:"LEVEL.TIM"`
		To    string `arg:"required" help:"path to destination file" placeholder:"level.json"`
		Force bool   `help:"overwrite the destination file"`
		Debug bool   `help:"dump the full decoded structure instead of the document"`
	}
	InspectCmd struct {
		Path string `arg:"positional,required" help:"path to a level file" placeholder:"LEVEL.TIM"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Converts level files of the contraption editor",
			"to an editable JSON document and back.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func NewLogger(w io.Writer, cfg config.Config, verbose bool) *log.Logger {
	level := cfg.LogLevel()
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(
		w,
		log.Options{
			ReportTimestamp: true,
			Level:           level,
		},
	)
}

func CodecOptions(cfg config.Config, logger *log.Logger) tstruct.Options {
	return tstruct.Options{
		Logger:        logger,
		StrictMagic:   cfg.Codec.StrictMagic,
		LenientLength: cfg.Codec.LenientLength,
	}
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// StartConverting picks the direction from the source bytes: a level file
// becomes JSON, anything else is parsed as a document.
func StartConverting(cmd ConvertCmd, cfg config.Config, logger *log.Logger) error {
	if !CheckExistence(cmd.From) {
		return errors.Errorf("cli.StartConverting error: source file %s does not exist", cmd.From)
	}
	if CheckExistence(cmd.To) && !cmd.Force {
		return errors.Errorf(
			"cli.StartConverting error: destination file %s exists, use --force to overwrite it",
			cmd.To,
		)
	}
	fileBytes, err := os.ReadFile(cmd.From)
	if err != nil {
		return errors.Wrap(err, "cli.StartConverting error: read source")
	}

	var outputBytes []byte
	if tim.IsTIM(fileBytes) {
		logger.Debug("decoding level file", "path", cmd.From, "size", len(fileBytes))
		outputBytes, err = tim.DecodeTIM(fileBytes, CodecOptions(cfg, logger), cfg.Output.Indent, cmd.Debug)
		if err != nil {
			return errors.Wrap(err, "cli.StartConverting error: decode level")
		}
	} else {
		logger.Debug("encoding document", "path", cmd.From, "size", len(fileBytes))
		outputBytes, err = tim.EncodeJSON(fileBytes)
		if err != nil {
			return errors.Wrap(err, "cli.StartConverting error: encode document")
		}
	}

	if err := os.WriteFile(cmd.To, outputBytes, 0644); err != nil {
		return errors.Wrap(err, "cli.StartConverting error: write destination")
	}
	logger.Info("done converting", "from", cmd.From, "to", cmd.To, "size", len(outputBytes))
	return nil
}

func LoadLevel(path string, opts tstruct.Options) (*tstruct.Level, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cli.LoadLevel error")
	}
	level, err := tstruct.Decode(fileBytes, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "cli.LoadLevel error: path %s", path)
	}
	return level, nil
}

func StartInspecting(cmd InspectCmd, cfg config.Config, logger *log.Logger) error {
	level, err := LoadLevel(cmd.Path, CodecOptions(cfg, logger))
	if err != nil {
		return err
	}
	return ui.Start(*level)
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	if args.Convert == nil && args.Inspect == nil {
		parser.WriteHelp(os.Stdout)
		return
	}

	bootLogger := NewLogger(os.Stderr, config.Default(), args.Verbose)
	cfg, err := config.Load(args.Config)
	if err != nil {
		bootLogger.Fatal("loading config", "err", err)
	}
	logger := NewLogger(os.Stderr, *cfg, args.Verbose)

	switch {
	case args.Convert != nil:
		err = StartConverting(*args.Convert, *cfg, logger)
	case args.Inspect != nil:
		err = StartInspecting(*args.Inspect, *cfg, logger)
	}
	if err != nil {
		logger.Fatal("command failed", "err", err)
	}
}
