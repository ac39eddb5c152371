// Package cli implements the denomconv command line tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/wallet_denominations/internal/apperrors"
	"github.com/SscSPs/wallet_denominations/internal/core/domain"
	"github.com/SscSPs/wallet_denominations/internal/fiat"
	"github.com/SscSPs/wallet_denominations/internal/platform/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrUsage is returned for unknown subcommands and bad flags.
var ErrUsage = errors.New("usage error")

type command struct {
	summary string
	run     func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"native-to-display":  {summary: "convert native amounts to the display denomination", run: (*App).nativeToDisplay},
	"native-to-exchange": {summary: "convert native amounts to the exchange denomination", run: (*App).nativeToExchange},
	"display-to-native":  {summary: "convert display amounts to native units", run: (*App).displayToNative},
	"precision-adjust":   {summary: "extra decimals needed to show a low-value currency", run: (*App).precisionAdjust},
	"fix-fiat":           {summary: "add the iso: prefix to fiat codes", run: (*App).fixFiat},
	"fiat-symbol":        {summary: "look up fiat symbols", run: (*App).fiatSymbol},
	"fiat-denom":         {summary: "print the denomination of a fiat code", run: (*App).fiatDenom},
	"fiat-list":          {summary: "list supported fiat currencies", run: (*App).fiatList},
	"truncate":           {summary: "cut display amounts to a number of decimals", run: (*App).truncate},
	"time":               {summary: "convert between minutes and display time units", run: (*App).convertTime},
}

// App holds what every subcommand needs.
type App struct {
	normalizer *fiat.Normalizer
	logger     *slog.Logger
	out        io.Writer
}

// New creates an App writing results to out.
func New(normalizer *fiat.Normalizer, logger *slog.Logger, out io.Writer) *App {
	return &App{normalizer: normalizer, logger: logger, out: out}
}

// GlobalFlags parses the flags that precede the subcommand and binds them into
// a fresh viper instance under their environment variable names.
func GlobalFlags(args []string) (*viper.Viper, []string, error) {
	fs := pflag.NewFlagSet("denomconv", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(io.Discard)
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "json", "log format (json, text)")
	fs.String("fiat-symbols-file", "", "YAML or JSON file replacing the built-in fiat table")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	v := viper.New()
	bindings := map[string]string{
		"LOG_LEVEL":         "log-level",
		"LOG_FORMAT":        "log-format",
		"FIAT_SYMBOLS_FILE": "fiat-symbols-file",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return v, fs.Args(), nil
}

// Run dispatches args[0] to its subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return fmt.Errorf("%w: missing subcommand", ErrUsage)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: unknown subcommand %q", ErrUsage, args[0])
	}

	logger := a.logger.With(slog.String("command", args[0]))
	ctx = logging.NewContext(ctx, logger)
	if err := cmd.run(a, ctx, args[1:]); err != nil {
		logger.Error("Command failed", slog.String("error", err.Error()))
		return err
	}
	logger.Debug("Command completed")
	return nil
}

func (a *App) usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: denomconv [--log-level L] [--log-format F] [--fiat-symbols-file PATH] <command> [flags] [--] [args]\n")
	b.WriteString("put negative amounts after --, e.g. denomconv native-to-display -m 100 -- -250\n\ncommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-20s %s\n", name, commands[name].summary)
	}
	fmt.Fprint(a.out, b.String())
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}
	return nil
}

// resolveDenomination builds the target denomination from --multiplier or --fiat
// and refuses anything that would divide by zero. A negative precision keeps
// the denomination's own.
func (a *App) resolveDenomination(multiplier, fiatCode string, precision int) (domain.Denomination, error) {
	if multiplier != "" && fiatCode != "" {
		return domain.Denomination{}, fmt.Errorf("%w: --multiplier and --fiat are mutually exclusive", ErrUsage)
	}
	denom := domain.Denomination{Name: "multiplier", Multiplier: multiplier}
	if fiatCode != "" {
		denom = a.normalizer.GetDenomFromIsoCode(fiatCode)
		if denom.IsUnsupported() {
			return domain.Denomination{}, fmt.Errorf("%w: %s has no fiat denomination", apperrors.ErrValidation, fiatCode)
		}
	}
	if precision >= 0 {
		denom.Precision = precision
	}
	if err := denom.Validate(); err != nil {
		return domain.Denomination{}, err
	}
	return denom, nil
}
