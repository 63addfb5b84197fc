package models

import "github.com/shopspring/decimal"

// FormatAmount renders minor currency units at the given exponent, e.g.
// 2500 with two minor digits becomes "25.00".
func FormatAmount(minor int64, minorDigits int32) string {
	return decimal.New(minor, -minorDigits).StringFixed(minorDigits)
}

// FormatSignedAmount is FormatAmount with an explicit leading sign, as
// statement rows always show one.
func FormatSignedAmount(minor int64, minorDigits int32) string {
	formatted := FormatAmount(minor, minorDigits)
	if minor >= 0 {
		return "+" + formatted
	}
	return formatted
}
