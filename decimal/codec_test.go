package decimal

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		tests := []struct {
			d    string
			want string
		}{
			{"10.00", `{"amount":"1000","decimals":"2"}`},
			{"-0.05", `{"amount":"-5","decimals":"2"}`},
			{"7", `{"amount":"7","decimals":"0"}`},
			{"0.000000000000000000001", `{"amount":"1","decimals":"21"}`},
		}
		for _, tt := range tests {
			got, err := json.Marshal(MustParse(tt.d))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		var d Decimal
		err := json.Unmarshal([]byte(`{"amount":"1000","decimals":"2"}`), &d)
		require.NoError(t, err)
		assert.Equal(t, "10.00", d.String())
	})

	t.Run("round trip", func(t *testing.T) {
		for _, s := range []string{"0", "0.00", "-123.456", "99999999999999999999999999.999999"} {
			d := MustParse(s)
			blob, err := json.Marshal(d)
			require.NoError(t, err)
			var back Decimal
			require.NoError(t, json.Unmarshal(blob, &back))
			assert.Equal(t, s, back.String())
		}
	})

	t.Run("errors", func(t *testing.T) {
		tests := map[string]string{
			"negative decimals": `{"amount":"1000","decimals":"-2"}`,
			"bad amount":        `{"amount":"1e3","decimals":"2"}`,
			"empty amount":      `{"amount":"","decimals":"2"}`,
			"bad decimals":      `{"amount":"1000","decimals":"two"}`,
			"not an object":     `"10.00"`,
		}
		for name, blob := range tests {
			t.Run(name, func(t *testing.T) {
				var d Decimal
				assert.Error(t, json.Unmarshal([]byte(blob), &d))
			})
		}
	})
}

func TestDecimal_Text(t *testing.T) {
	d := MustParse("-12.50")
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-12.50", string(text))

	var back Decimal
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, d.String(), back.String())
}

func TestDecimal_SQL(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		v, err := MustParse("10.00").Value()
		require.NoError(t, err)
		assert.Equal(t, "10.00", v)
	})

	t.Run("scan", func(t *testing.T) {
		var d Decimal
		require.NoError(t, d.Scan("12.34"))
		assert.Equal(t, "12.34", d.String())

		require.NoError(t, d.Scan([]byte("-0.01")))
		assert.Equal(t, "-0.01", d.String())
	})

	t.Run("scan rejects numeric types", func(t *testing.T) {
		var d Decimal
		assert.Error(t, d.Scan(float64(10)))
		assert.Error(t, d.Scan(int64(10)))
		assert.Error(t, d.Scan(nil))
	})
}
