package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/SscSPs/wallet_denominations/internal/apperrors"
	"github.com/SscSPs/wallet_denominations/internal/fiat"
	"github.com/SscSPs/wallet_denominations/internal/platform/logging"
	"github.com/SscSPs/wallet_denominations/internal/utils"
	"github.com/SscSPs/wallet_denominations/internal/utils/conversion"
	"github.com/SscSPs/wallet_denominations/internal/utils/timeunits"
	"github.com/shopspring/decimal"
)

func (a *App) nativeToDisplay(ctx context.Context, args []string) error {
	return a.convert(ctx, "native-to-display", args, conversion.ConvertNativeToDisplay, true)
}

func (a *App) nativeToExchange(ctx context.Context, args []string) error {
	return a.convert(ctx, "native-to-exchange", args, conversion.ConvertNativeToExchange, true)
}

func (a *App) displayToNative(ctx context.Context, args []string) error {
	return a.convert(ctx, "display-to-native", args, conversion.ConvertDisplayToNative, false)
}

// convert runs one Converter over every positional amount. Negative amounts
// must follow "--" so they are not read as flags.
func (a *App) convert(ctx context.Context, name string, args []string, build func(string) conversion.Converter, roundable bool) error {
	fs := newFlagSet(name)
	multiplier := fs.StringP("multiplier", "m", "", "native units per denomination unit, e.g. 100000000")
	fiatCode := fs.String("fiat", "", "use the two-decimal denomination of this fiat code")
	precision := fs.IntP("precision", "p", -1, "display precision of the denomination (defaults to the fiat precision, or 0)")
	var round *bool
	if roundable {
		round = fs.Bool("round", false, "round results to the denomination precision")
	}
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: %s needs at least one amount", ErrUsage, name)
	}

	denom, err := a.resolveDenomination(*multiplier, *fiatCode, *precision)
	if err != nil {
		return err
	}
	ratio := denom.Multiplier

	convert := build(ratio)
	logger := logging.FromContext(ctx)
	for _, amount := range fs.Args() {
		out, err := convert(amount)
		if err != nil {
			return err
		}
		if round != nil && *round {
			d, err := decimal.NewFromString(out)
			if err != nil {
				return fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, out)
			}
			out = utils.FormatWithDenominationPrecision(d, denom)
		}
		logger.Debug("Converted amount", slog.String("in", amount), slog.String("out", out), slog.String("multiplier", ratio))
		fmt.Fprintln(a.out, out)
	}
	return nil
}

func (a *App) precisionAdjust(_ context.Context, args []string) error {
	fs := newFlagSet("precision-adjust")
	ratio := fs.Float64("ratio", 0, "secondary units per primary unit, e.g. 65000 for BTC in USD")
	secondary := fs.String("secondary-multiplier", "", "exchange multiplier of the secondary currency")
	primary := fs.String("primary-multiplier", "", "exchange multiplier of the primary currency")
	if err := parse(fs, args); err != nil {
		return err
	}

	extra, err := conversion.PrecisionAdjust(conversion.PrecisionAdjustParams{
		ExchangeSecondaryToPrimaryRatio: *ratio,
		SecondaryExchangeMultiplier:     *secondary,
		PrimaryExchangeMultiplier:       *primary,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, extra)
	return nil
}

func (a *App) fixFiat(_ context.Context, args []string) error {
	for _, code := range args {
		fmt.Fprintln(a.out, fiat.FixFiatCurrencyCode(code))
	}
	return nil
}

func (a *App) fiatSymbol(_ context.Context, args []string) error {
	for _, code := range args {
		sym, ok := a.normalizer.GetFiatSymbol(code)
		if !ok {
			return fmt.Errorf("%w: no symbol for %q", apperrors.ErrNotFound, code)
		}
		fmt.Fprintln(a.out, sym)
	}
	return nil
}

func (a *App) fiatDenom(_ context.Context, args []string) error {
	enc := json.NewEncoder(a.out)
	for _, code := range args {
		if err := enc.Encode(a.normalizer.GetDenomFromIsoCode(code)); err != nil {
			return fmt.Errorf("failed to encode denomination for %s: %w", code, err)
		}
	}
	return nil
}

func (a *App) fiatList(_ context.Context, args []string) error {
	fs := newFlagSet("fiat-list")
	denoms := fs.Bool("denominations", false, "print denominations instead of picker labels")
	if err := parse(fs, args); err != nil {
		return err
	}

	if *denoms {
		enc := json.NewEncoder(a.out)
		for _, d := range a.normalizer.GetAllDenomsOfIsoCurrencies() {
			if err := enc.Encode(d); err != nil {
				return fmt.Errorf("failed to encode denomination for %s: %w", d.Name, err)
			}
		}
		return nil
	}
	for _, opt := range a.normalizer.GetSupportedFiats() {
		fmt.Fprintln(a.out, opt.Label)
	}
	return nil
}

func (a *App) truncate(_ context.Context, args []string) error {
	fs := newFlagSet("truncate")
	precision := fs.IntP("precision", "p", 2, "fractional digits to keep")
	allowBlank := fs.Bool("allow-blank", false, "keep empty input empty instead of 0")
	orZero := fs.Bool("or-zero", false, "collapse amounts below one that truncate to zero into 0")
	if err := parse(fs, args); err != nil {
		return err
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{""}
	}
	for _, in := range inputs {
		if !utils.IsValidInput(in) {
			return fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, in)
		}
		out := utils.TruncateDecimals(in, *precision, *allowBlank)
		if *orZero && out != "" {
			var err error
			if out, err = utils.DecimalOrZero(out, *precision); err != nil {
				return err
			}
		}
		fmt.Fprintln(a.out, out)
	}
	return nil
}

func (a *App) convertTime(_ context.Context, args []string) error {
	fs := newFlagSet("time")
	minutes := fs.Float64("minutes", math.NaN(), "duration in minutes to express in display units")
	value := fs.Float64("value", math.NaN(), "duration value in --measurement units")
	measurement := fs.String("measurement", "", "seconds, minutes, hours or days")
	if err := parse(fs, args); err != nil {
		return err
	}

	switch {
	case !math.IsNaN(*minutes):
		t := timeunits.GetTimeWithMeasurement(*minutes)
		if t.Measurement == timeunits.Unknown {
			return fmt.Errorf("%w: %v minutes is out of range", apperrors.ErrValidation, *minutes)
		}
		fmt.Fprintf(a.out, "%s %s\n", formatFloat(t.Value), t.Measurement)
	case !math.IsNaN(*value):
		m := timeunits.ParseMeasurement(*measurement)
		if m == timeunits.Unknown {
			return fmt.Errorf("%w: unknown measurement %q", apperrors.ErrValidation, *measurement)
		}
		fmt.Fprintln(a.out, formatFloat(timeunits.GetTimeInMinutes(timeunits.TimeWithMeasurement{Measurement: m, Value: *value})))
	default:
		return fmt.Errorf("%w: time needs --minutes or --value with --measurement", ErrUsage)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
