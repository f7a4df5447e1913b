package domain

import "strconv"

// AmountString renders an amount without trailing zeros, e.g. 159 -> "159",
// 159.5 -> "159.5". This is the form handed to the delivery channel.
func AmountString(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// FormatPrice renders an amount the way the storefront displays it, e.g.
// "159 kr". Prices are whole-kronor-oriented with no minor-unit handling.
func FormatPrice(n float64) string {
	return AmountString(n) + " kr"
}
