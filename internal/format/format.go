package format

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/decline-insights/internal/model"
)

// Currency renders a whole-unit dollar amount with thousands separators,
// e.g. $12,346.
func Currency(amount decimal.Decimal) string {
	rounded := amount.Round(0).IntPart()
	if rounded < 0 {
		return "-$" + humanize.Comma(-rounded)
	}
	return "$" + humanize.Comma(rounded)
}

// Amount renders an exact amount with cents, e.g. 1,234.50.
func Amount(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return humanize.FormatFloat("#,###.##", f)
}

// Number renders an integer with thousands separators.
func Number(n int) string {
	return humanize.Comma(int64(n))
}

// Percent renders value with the given number of decimals and a % sign.
func Percent(value float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, value)
}

// Date renders an instant as "Jan 11, 2026" in UTC.
func Date(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006")
}

// Time renders the UTC wall clock as "03:04 PM".
func Time(t time.Time) string {
	return t.UTC().Format("03:04 PM")
}

// ShortDate turns a YYYY-MM-DD date into a chart label such as "Jan 11".
// Text that is not a date is returned unchanged.
func ShortDate(date string) string {
	d, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("Jan 2")
}
