package rational

import (
	"database/sql/driver"
	"fmt"

	"github.com/goccy/go-json"
)

// jsonRational is the structured interchange encoding of a rational.
// Both fields are strings so that the value never passes through a host
// language's native number type on its way to or from the wire.
type jsonRational struct {
	P string `json:"p"`
	Q string `json:"q"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The value is encoded as an object holding the numerator and the
// denominator, both as strings:
//
//	{"p":"617","q":"48664"}
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (r Rational) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonRational{
		P: r.numVal().String(),
		Q: r.denVal().String(),
	})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The denominator must be a positive integer; a zero denominator fails
// the same way it does at construction time.
// See also method [Rational.MarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (r *Rational) UnmarshalJSON(data []byte) error {
	var enc jsonRational
	if err := json.Unmarshal(data, &enc); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rational{}, err)
	}
	num, ok := parseInt(enc.P, true)
	if !ok {
		return fmt.Errorf("unmarshaling %T: p %q: %w", Rational{}, enc.P, ErrInvalidRational)
	}
	den, ok := parseInt(enc.Q, false)
	if !ok {
		return fmt.Errorf("unmarshaling %T: q %q: %w", Rational{}, enc.Q, ErrInvalidRational)
	}
	v, err := normalize(num, den)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rational{}, err)
	}
	*r = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Rational.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rational{}, err)
	}
	*r = v
	return nil
}

// Scan implements the [sql.Scanner] interface.
// Only string and byte-slice columns holding "p/q" text are supported.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (r *Rational) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*r, err = Parse(value)
	case []byte:
		*r, err = Parse(string(value))
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Rational{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The value is always stored as its reduced "p/q" string.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (r Rational) Value() (driver.Value, error) {
	return r.String(), nil
}
