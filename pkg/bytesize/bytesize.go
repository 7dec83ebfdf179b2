// Package bytesize converts between human-readable byte sizes ("2.5kb", "33 MB")
// and integer byte counts, in either decimal (1000) or binary (1024) base.
package bytesize

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Conversion errors. Use errors.Is to match them.
var (
	ErrInvalidBase     = errors.New("invalid base")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrNegativeValue   = errors.New("negative values not supported")
	ErrUnsupportedUnit = errors.New("unsupported unit")
	ErrNegativeBytes   = errors.New("negative bytes not supported")
)

// Base is the multiplier between consecutive units.
type Base int

const (
	Decimal Base = 1000
	Binary  Base = 1024
)

// DefaultPrecision is the number of decimal places used by FromBytes.
const DefaultPrecision = 2

// maxSafeInteger is the largest integer a float64 represents exactly (2^53 - 1).
const maxSafeInteger = 1<<53 - 1

// Valid reports whether b is one of the supported bases.
func (b Base) Valid() bool {
	return b == Decimal || b == Binary
}

// Number, optional exponent, optional unit. NaN and Infinity are matched so
// that they fail as invalid numbers rather than invalid formats.
var bytePattern = regexp.MustCompile(`^([+-]?(?:[0-9]*\.?[0-9]+(?:e[+-]?[0-9]+)?|nan|infinity(?:-\w+)?))\s*([a-z]*)$`)

// Long unit suffixes after a multi-digit number are rejected up front
// (e.g. "12xyz") unless they are a compound unit or "byte".
var (
	multiDigitPrefix = regexp.MustCompile(`^\d{2,}`)
	compoundUnit     = regexp.MustCompile(`^(kb|mb|gb|tb|pb)$`)
)

// unitRanks maps every accepted unit token to its power of the base.
var unitRanks = map[string]int{
	"":   0,
	"b":  0,
	"k":  1,
	"kb": 1,
	"m":  2,
	"mb": 2,
	"g":  3,
	"gb": 3,
	"t":  4,
	"tb": 4,
	"p":  5,
	"pb": 5,
}

// supportedUnits lists unit tokens in rank order for error messages.
var supportedUnits = []string{"b", "k", "kb", "m", "mb", "g", "gb", "t", "tb", "p", "pb"}

var (
	shortLabels = []string{"B", "KB", "MB", "GB", "TB", "PB"}
	longLabels  = []string{"bytes", "KB", "MB", "GB", "TB", "PB"}
)

// Options controls ToBytes.
type Options struct {
	Base   Base
	Round  bool
	Logger *zap.Logger
}

// Option configures a conversion.
type Option func(*Options)

// WithBase selects the unit base (Decimal or Binary).
func WithBase(base Base) Option {
	return func(o *Options) { o.Base = base }
}

// WithRound toggles rounding of the result to the nearest integer.
func WithRound(round bool) Option {
	return func(o *Options) { o.Round = round }
}

// WithLogger sets the logger used for the overflow diagnostic.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

func defaultOptions() Options {
	return Options{Base: Binary, Round: true}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.L()
}

// Input is anything ToBytes accepts: a size string or a plain number of bytes.
type Input interface {
	~string | ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// ToBytes converts input such as "2.5kb", "33 MB", "1e3" or 1024 to a byte count.
// Units are case-insensitive; a bare number is a count of bytes.
//
//	ToBytes("1kb")                         // 1024
//	ToBytes("1mb", WithBase(Decimal))      // 1000000
//	ToBytes("1.7b", WithRound(false))      // 1.7
func ToBytes[T Input](input T, opts ...Option) (float64, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return convert(inputString(input), o)
}

// inputString renders input the way it would appear in a size string.
func inputString[T Input](input T) string {
	v := reflect.ValueOf(input)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return formatNumber(v.Float())
	case reflect.Int, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	default:
		return v.String()
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func convert(input string, o Options) (float64, error) {
	if !o.Base.Valid() {
		return 0, fmt.Errorf("%w: %d, must be 1000 or 1024", ErrInvalidBase, o.Base)
	}

	str := strings.ToLower(strings.TrimSpace(input))
	match := bytePattern.FindStringSubmatch(str)
	if match == nil {
		return 0, formatError(input)
	}
	numberPart, unitPart := match[1], match[2]

	if multiDigitPrefix.MatchString(numberPart) && len(unitPart) > 2 &&
		unitPart != "byte" && !compoundUnit.MatchString(unitPart) {
		return 0, formatError(input)
	}

	value, err := strconv.ParseFloat(numberPart, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, numberPart)
	}

	if value < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNegativeValue, formatNumber(value))
	}

	rank, ok := unitRanks[unitPart]
	if !ok {
		return 0, fmt.Errorf("%w: %q, supported units: %s",
			ErrUnsupportedUnit, unitPart, strings.Join(supportedUnits, ", "))
	}

	result := value * multiplier(o.Base, rank)
	if !o.Round {
		return result, nil
	}

	if result > maxSafeInteger {
		o.logger().Warn("byte count exceeds safe integer range",
			zap.Float64("result", result),
			zap.String("input", input))
	}
	return math.Round(result), nil
}

func formatError(input string) error {
	return fmt.Errorf("%w: %q, expected format like \"2.5kb\", \"33mb\", \"2.4gb\", or a number",
		ErrInvalidFormat, input)
}

// multiplier returns base^rank using integer powers so that results stay exact.
func multiplier(base Base, rank int) float64 {
	m := 1.0
	for i := 0; i < rank; i++ {
		m *= float64(base)
	}
	return m
}

// FormatOptions controls FromBytes.
type FormatOptions struct {
	Base      Base
	Precision int
	LongForm  bool
}

// DefaultFormatOptions returns base 1024, two decimals, short labels.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{Base: Binary, Precision: DefaultPrecision}
}

// FromBytes formats a byte count as a human-readable string such as "1.50 MB".
// A zero Base in opts means Binary.
func FromBytes(bytes float64, opts FormatOptions) (string, error) {
	if opts.Base == 0 {
		opts.Base = Binary
	}
	if !opts.Base.Valid() {
		return "", fmt.Errorf("%w: %d, must be 1000 or 1024", ErrInvalidBase, opts.Base)
	}
	if opts.Precision < 0 {
		opts.Precision = 0
	}

	labels := shortLabels
	if opts.LongForm {
		labels = longLabels
	}

	if math.IsNaN(bytes) || math.IsInf(bytes, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidNumber, bytes)
	}
	if bytes < 0 {
		return "", fmt.Errorf("%w: %v", ErrNegativeBytes, bytes)
	}
	if bytes == 0 {
		return "0 " + labels[0], nil
	}

	// Largest unit not exceeding bytes; compared against exact powers so
	// 1000^3 lands on GB rather than 999.99 MB.
	i := 0
	for i < len(labels)-1 && bytes >= multiplier(opts.Base, i+1) {
		i++
	}

	value := bytes / multiplier(opts.Base, i)
	return strconv.FormatFloat(value, 'f', opts.Precision, 64) + " " + labels[i], nil
}

// Format is FromBytes with the default options.
func Format(bytes float64) (string, error) {
	return FromBytes(bytes, DefaultFormatOptions())
}

// Converter is a ToBytes with preset options.
type Converter func(input string, overrides ...Option) (float64, error)

// NewConverter returns a Converter that applies defaults first and per-call
// overrides second, so overrides win on collision.
func NewConverter(defaults ...Option) Converter {
	return func(input string, overrides ...Option) (float64, error) {
		o := defaultOptions()
		for _, opt := range defaults {
			opt(&o)
		}
		for _, opt := range overrides {
			opt(&o)
		}
		return convert(input, o)
	}
}
