package decimal

import (
	"database/sql/driver"
	"fmt"
	"math/big"
	"strconv"

	"github.com/goccy/go-json"
)

// jsonDecimal is the structured interchange encoding of a decimal.
// Both fields are strings so that the value never passes through a host
// language's native number type on its way to or from the wire.
type jsonDecimal struct {
	Amount   string `json:"amount"`
	Decimals string `json:"decimals"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The value is encoded as an object holding the coefficient and the scale,
// both as strings:
//
//	{"amount":"1250","decimals":"2"}
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonDecimal{
		Amount:   d.coefVal().String(),
		Decimals: strconv.Itoa(d.scale),
	})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Decimal.MarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	var enc jsonDecimal
	if err := json.Unmarshal(data, &enc); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Decimal{}, err)
	}
	coef, ok := new(big.Int).SetString(enc.Amount, 10)
	if !ok {
		return fmt.Errorf("unmarshaling %T: amount %q: %w", Decimal{}, enc.Amount, ErrInvalidDecimal)
	}
	scale, err := strconv.Atoi(enc.Decimals)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: decimals %q: %w", Decimal{}, enc.Decimals, ErrInvalidDecimal)
	}
	if scale < 0 {
		return fmt.Errorf("unmarshaling %T: decimals %q: %w", Decimal{}, enc.Decimals, ErrScaleRange)
	}
	*d = newUnsafe(coef, scale)
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Decimal{}, err)
	}
	*d = v
	return nil
}

// Scan implements the [sql.Scanner] interface.
// Only string and byte-slice columns are supported; numeric columns would
// route the value through a native number type and are rejected.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse(value)
	case []byte:
		*d, err = Parse(string(value))
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Decimal{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The value is always stored as its exact decimal string.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}
