// Package format formatea cifras para las tarjetas KPI y tablas del dashboard
// (separador de miles en inglés, montos en dólares, millones).
package format

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder se muestra cuando la métrica no existe (media de un conjunto vacío).
const Placeholder = "—"

var printer = message.NewPrinter(language.English)

// Int formatea un entero con separador de miles: 5878 → "5,878".
func Int(n int) string {
	return printer.Sprintf("%d", n)
}

// Money formatea un monto sin decimales: 1234567.4 → "$1,234,567".
func Money(d decimal.Decimal) string {
	return MoneyFloat(d.InexactFloat64())
}

// MoneyFloat igual que Money para float64; NaN → Placeholder.
func MoneyFloat(f float64) string {
	if math.IsNaN(f) {
		return Placeholder
	}
	return "$" + printer.Sprintf("%.0f", f)
}

// Millions expresa un monto en millones: 3200000 → "$3.20M" (decimals=2).
func Millions(d decimal.Decimal, decimals int) string {
	return "$" + d.Div(decimal.NewFromInt(1_000_000)).StringFixed(int32(decimals)) + "M"
}

// Fixed formatea un float sin separador de miles; NaN → Placeholder.
func Fixed(f float64, decimals int) string {
	if math.IsNaN(f) {
		return Placeholder
	}
	return fmt.Sprintf("%.*f", decimals, f)
}

// Grouped formatea un float con separador de miles; NaN → Placeholder.
func Grouped(f float64, decimals int) string {
	if math.IsNaN(f) {
		return Placeholder
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), f)
}

// Percent formatea un porcentaje ya multiplicado por 100: 38.8 → "38.8%".
func Percent(f float64, decimals int) string {
	if math.IsNaN(f) {
		return Placeholder
	}
	return fmt.Sprintf("%.*f%%", decimals, f)
}

// Days formatea un promedio de días: 123.6 → "124 days".
func Days(f float64) string {
	if math.IsNaN(f) {
		return Placeholder
	}
	return fmt.Sprintf("%.0f days", f)
}
