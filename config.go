package stringdecimal

// RoundMode selects how a value is rounded to a chosen number of
// fractional places when it is formatted, both for a pending division
// and for a value that already has too many digits.
type RoundMode byte

// The six rounding modes. RoundBanking is the default when a Config is
// not given or leaves Round at its zero value.
const (
	RoundBanking  RoundMode = 'B' // half-to-even (default)
	RoundTruncate RoundMode = 'T' // towards zero
	RoundUp       RoundMode = 'U' // away from zero
	RoundFloor    RoundMode = 'F' // towards -Inf
	RoundCeiling  RoundMode = 'C' // towards +Inf
	RoundRound    RoundMode = 'R' // half away from zero
)

// Format selects an output layout.
type Format byte

const (
	FormatLimit     Format = '-' // cap divisions at Places; natural otherwise
	FormatExact     Format = '=' // always exactly Places fractional digits
	FormatExtra     Format = '+' // denominator width + Places extra (default)
	FormatInput     Format = '*' // input.places+Places digits, then round
	FormatMax       Format = '>' // input.places+Places digits, no re-rounding
	FormatExp       Format = 'e' // scientific notation
	FormatRational  Format = '/' // integer, or num/den if not exact
)

// Config is a process-wide set of knobs, modelled as an explicit,
// immutable-once-built value (never a mutable global) that every
// operation threads through explicitly: the textual grammar's
// punctuation, a length guard, and the default rounding/format/places
// used when an operation does not specify its own.
//
// The zero value is ready to use and selects the defaults documented on
// each field. A nil *Config anywhere in this package's API is equivalent
// to a zero Config.
type Config struct {
	CommaChar rune // thousands separator accepted while parsing; 0 = ','
	PointChar rune // decimal point accepted while parsing and used when formatting; 0 = '.'
	MaxLength int  // Parse fails with ErrNumberTooLong for a number of more than this many digits; 0 = unlimited
	NoComma   bool // disable thousands grouping, both when parsing and when formatting
	NoFrac    bool // disable Unicode vulgar-fraction suffixes
	NoSI      bool // disable SI magnitude suffixes (k, M, µ, %, ...)
	NoIEEE    bool // disable binary magnitude suffixes (Ki, Mi, ...)

	Round  RoundMode // default rounding mode; 0 = RoundBanking
	Places int       // number of places used by Format; 0 with Format also unset means 3
	Format Format    // default output format; 0 = FormatExtra
}

func (c *Config) comma() rune {
	if c == nil || c.CommaChar == 0 {
		return ','
	}
	return c.CommaChar
}

func (c *Config) point() rune {
	if c == nil || c.PointChar == 0 {
		return '.'
	}
	return c.PointChar
}

func (c *Config) maxLength() int {
	if c == nil {
		return 0
	}
	return c.MaxLength
}

func (c *Config) noComma() bool {
	return c != nil && c.NoComma
}

func (c *Config) noFrac() bool {
	return c != nil && c.NoFrac
}

func (c *Config) noSI() bool {
	return c != nil && c.NoSI
}

func (c *Config) noIEEE() bool {
	return c != nil && c.NoIEEE
}

func (c *Config) round() RoundMode {
	if c == nil || c.Round == 0 {
		return RoundBanking
	}
	return c.Round
}

func (c *Config) format() Format {
	if c == nil || c.Format == 0 {
		return FormatExtra
	}
	return c.Format
}

func (c *Config) places() int {
	if c == nil {
		return 3
	}
	if c.Places == 0 && c.Format == 0 {
		return 3
	}
	return c.Places
}
