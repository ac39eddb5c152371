// Package timeunits buckets durations given in minutes into the unit a
// settings screen would show them in.
package timeunits

import (
	"log/slog"
	"math"
)

// Measurement is the unit a duration is displayed in.
type Measurement string

const (
	Unknown Measurement = ""
	Seconds Measurement = "seconds"
	Minutes Measurement = "minutes"
	Hours   Measurement = "hours"
	Days    Measurement = "days"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
	// longest duration still shown in days (59 days)
	maxDayMinutes = 84960

	MillisecondsPerDay = 86400000
)

// TimeWithMeasurement is a duration expressed in a particular unit.
type TimeWithMeasurement struct {
	Measurement Measurement `json:"measurement"`
	Value       float64     `json:"value"`
}

// ParseMeasurement maps a unit name to a Measurement. Unrecognized names map to Unknown.
func ParseMeasurement(s string) Measurement {
	switch m := Measurement(s); m {
	case Seconds, Minutes, Hours, Days:
		return m
	default:
		return Unknown
	}
}

// GetTimeMeasurement picks the unit for a duration in minutes.
// Each boundary belongs to the larger unit: 60 is hours, 1440 is days.
func GetTimeMeasurement(inMinutes float64) Measurement {
	switch {
	case inMinutes < 1:
		return Seconds
	case inMinutes < minutesPerHour:
		return Minutes
	case inMinutes < minutesPerDay:
		return Hours
	case inMinutes <= maxDayMinutes:
		return Days
	default:
		return Unknown
	}
}

// GetTimeWithMeasurement converts minutes into the unit chosen by GetTimeMeasurement.
// Durations past the last bucket are logged and come back as {Unknown, +Inf}.
func GetTimeWithMeasurement(inMinutes float64) TimeWithMeasurement {
	m := GetTimeMeasurement(inMinutes)

	var value float64
	switch m {
	case Seconds:
		value = roundHalfUp(inMinutes * 60)
	case Minutes:
		value = inMinutes
	case Hours:
		value = inMinutes / minutesPerHour
	case Days:
		value = inMinutes / 24 / 60
	default:
		slog.Error("No strategy for particular measurement", slog.String("measurement", string(m)), slog.Float64("minutes", inMinutes))
		return TimeWithMeasurement{Measurement: Unknown, Value: math.Inf(1)}
	}
	return TimeWithMeasurement{Measurement: m, Value: value}
}

// GetTimeInMinutes converts t back to minutes. Seconds are rounded to two decimals.
// An unknown measurement is logged and yields +Inf.
func GetTimeInMinutes(t TimeWithMeasurement) float64 {
	switch t.Measurement {
	case Seconds:
		return roundHalfUp(t.Value/60*100) / 100
	case Minutes:
		return t.Value
	case Hours:
		return t.Value * minutesPerHour
	case Days:
		return t.Value * minutesPerDay
	default:
		slog.Error("No strategy for particular measurement", slog.String("measurement", string(t.Measurement)))
		return math.Inf(1)
	}
}

// DaysBetween returns the possibly fractional number of days from a to b, both in Unix milliseconds.
func DaysBetween(aMillis, bMillis int64) float64 {
	return float64(bMillis-aMillis) / MillisecondsPerDay
}

// roundHalfUp rounds ties toward +Inf, so -7.5 becomes -7.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
