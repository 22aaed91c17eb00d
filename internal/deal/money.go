package deal

import (
	"math"

	"github.com/Rhymond/go-money"
)

// eurFormatter renders whole-euro amounts the way the dashboard
// displays them: no decimals, no-break-space thousands grouping,
// trailing € sign.
var eurFormatter = money.NewFormatter(0, ",", "\u00a0", "€", "1\u00a0$")

// FormatEUR formats a deal value for display, rounded to whole euros.
func FormatEUR(v float64) string {
	return eurFormatter.Format(int64(math.Round(v)))
}
