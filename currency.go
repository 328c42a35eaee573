package money

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// Currency type represents an asset in the global financial system.
// It is a read-only descriptor: code, display name, symbol, the number of
// decimal places of the minor unit, the minor unit's name, and whether the
// asset is part of ISO 4217.
// The zero value is [XXX], which indicates an unknown currency.
//
// Descriptors are shared reference data. Amounts hold a currency by value
// and never modify it, so Currency is safe for concurrent use by multiple
// goroutines.
type Currency struct {
	code    string
	name    string
	symbol  string
	scale   int
	subunit string
	iso     bool
}

// XXX is the unknown currency, the zero value of [Currency].
var XXX = Currency{code: "XXX", name: "Unknown", scale: 0, iso: true}

var (
	registryMu sync.RWMutex
	registry   = map[string]Currency{}
	symbols    = map[string]string{} // display symbol -> code
)

func init() {
	for _, c := range []Currency{
		XXX,
		{code: "USD", name: "US Dollar", symbol: "$", scale: 2, subunit: "cent", iso: true},
		{code: "EUR", name: "Euro", symbol: "€", scale: 2, subunit: "cent", iso: true},
		{code: "GBP", name: "Pound Sterling", symbol: "£", scale: 2, subunit: "penny", iso: true},
		{code: "JPY", name: "Yen", symbol: "¥", scale: 0, iso: true},
		{code: "CHF", name: "Swiss Franc", scale: 2, subunit: "rappen", iso: true},
		{code: "CAD", name: "Canadian Dollar", scale: 2, subunit: "cent", iso: true},
		{code: "AUD", name: "Australian Dollar", scale: 2, subunit: "cent", iso: true},
		{code: "CNY", name: "Yuan Renminbi", scale: 2, subunit: "fen", iso: true},
		{code: "INR", name: "Indian Rupee", symbol: "₹", scale: 2, subunit: "paisa", iso: true},
		{code: "BRL", name: "Brazilian Real", scale: 2, subunit: "centavo", iso: true},
		{code: "OMR", name: "Rial Omani", scale: 3, subunit: "baisa", iso: true},
		{code: "BHD", name: "Bahraini Dinar", scale: 3, subunit: "fils", iso: true},
		{code: "KWD", name: "Kuwaiti Dinar", scale: 3, subunit: "fils", iso: true},
		{code: "BTC", name: "Bitcoin", symbol: "₿", scale: 8, subunit: "satoshi"},
		{code: "ETH", name: "Ether", symbol: "Ξ", scale: 18, subunit: "wei"},
	} {
		if err := register(c); err != nil {
			panic(fmt.Sprintf("registering %v failed: %v", c.code, err))
		}
	}
}

// Register adds a custom currency descriptor to the process-wide registry.
// Registration is append-only: registering the same descriptor twice is a
// no-op, while re-registering a code with different properties is an error,
// so concurrent readers never observe a descriptor change.
//
// Register returns an error if the code is empty or the scale is negative.
func Register(code, name, symbol string, scale int, subunit string, iso bool) error {
	return register(Currency{
		code:    strings.ToUpper(code),
		name:    name,
		symbol:  symbol,
		scale:   scale,
		subunit: subunit,
		iso:     iso,
	})
}

func register(c Currency) error {
	if c.code == "" {
		return &ValidationError{Field: "currency code", Reason: "must not be empty"}
	}
	if c.scale < 0 {
		return &ValidationError{Field: "currency decimals", Reason: "must not be negative"}
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if prev, ok := registry[c.code]; ok {
		if prev != c {
			return &ValidationError{Field: "currency code", Reason: fmt.Sprintf("%s is already registered with different properties", c.code)}
		}
		return nil
	}
	registry[c.code] = c
	if c.symbol != "" {
		if _, ok := symbols[c.symbol]; !ok {
			symbols[c.symbol] = c.code
		}
	}
	return nil
}

// ParseCurr converts a string to a currency.
// The input must be a registered code; the match is case-insensitive:
//
//	USD
//	usd
//
// ParseCurr returns an error if the string does not name a registered currency.
func ParseCurr(curr string) (Currency, error) {
	registryMu.RLock()
	c, ok := registry[strings.ToUpper(strings.TrimSpace(curr))]
	registryMu.RUnlock()
	if !ok {
		return XXX, &ParseError{Kind: "currency", Input: curr}
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// lookupSymbol resolves a display symbol, such as "$", to its currency.
func lookupSymbol(sym string) (Currency, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	code, ok := symbols[sym]
	if !ok {
		return XXX, false
	}
	return registry[code], true
}

// Code returns the alphabetic code identifying the currency,
// such as "USD" or "BTC".
func (c Currency) Code() string {
	if c.code == "" {
		return XXX.code
	}
	return c.code
}

// Name returns the human-readable name of the currency.
func (c Currency) Name() string {
	if c.code == "" {
		return XXX.name
	}
	return c.name
}

// Symbol returns the display symbol of the currency, such as "$",
// or an empty string if the currency has none.
func (c Currency) Symbol() string {
	return c.symbol
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of the currency: 2 for the US Dollar (cents),
// 0 for the Yen, 8 for Bitcoin (satoshis).
func (c Currency) Scale() int {
	return c.scale
}

// Subunit returns the name of the currency's minor unit, such as "cent"
// or "satoshi", or an empty string if the currency has none.
func (c Currency) Subunit() string {
	return c.subunit
}

// IsISO returns true if the currency is part of the ISO 4217 standard.
func (c Currency) IsISO() bool {
	if c.code == "" {
		return XXX.iso
	}
	return c.iso
}

// String implements the [fmt.Stringer] interface and returns the
// currency code.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// SameCurr returns true if both descriptors identify the same currency code.
func (c Currency) SameCurr(o Currency) bool {
	return c.Code() == o.Code()
}

// jsonCurrency is the structured interchange encoding of a descriptor.
// The decimals field is a string, keeping the full-precision encoding free
// of host number types.
type jsonCurrency struct {
	Code     string `json:"code"`
	Name     string `json:"name,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
	Decimals string `json:"decimals"`
	Subunit  string `json:"subunit,omitempty"`
	ISO      bool   `json:"iso"`
}

// MarshalJSON implements the [json.Marshaler] interface and encodes the
// full descriptor.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonCurrency{
		Code:     c.Code(),
		Name:     c.Name(),
		Symbol:   c.symbol,
		Decimals: strconv.Itoa(c.scale),
		Subunit:  c.subunit,
		ISO:      c.IsISO(),
	})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// A registered code wins over the encoded properties; an unregistered code
// is accepted as long as the descriptor passes shape checks, which lets
// encodings round-trip across processes with different registries.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(data []byte) error {
	var enc jsonCurrency
	if err := json.Unmarshal(data, &enc); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	if known, err := ParseCurr(enc.Code); err == nil {
		*c = known
		return nil
	}
	if enc.Code == "" {
		return fmt.Errorf("unmarshaling %T: %w", XXX, &ValidationError{Field: "currency code", Reason: "must not be empty"})
	}
	scale, err := strconv.Atoi(enc.Decimals)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, &ValidationError{Field: "currency decimals", Reason: "must be a base-10 integer string"})
	}
	if scale < 0 {
		return fmt.Errorf("unmarshaling %T: %w", XXX, &ValidationError{Field: "currency decimals", Reason: "must not be negative"})
	}
	*c = Currency{
		code:    strings.ToUpper(enc.Code),
		name:    enc.Name,
		symbol:  enc.Symbol,
		scale:   scale,
		subunit: enc.Subunit,
		iso:     enc.ISO,
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the alphabetic code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	v, err := ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	*c = v
	return nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T", XXX, NullCurrency{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, XXX, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}

// NullCurrency represents a currency that can be null.
// Its zero value is null.
// NullCurrency is not thread-safe.
type NullCurrency struct {
	Currency Currency
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Currency.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullCurrency) Scan(value any) error {
	if value == nil {
		n.Currency = XXX
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Currency.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullCurrency) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Currency.Value()
}
