package models

import (
	"strconv"
	"strings"
)

// Currency is the only currency the shop sells in
const Currency = "USD"

// FormatPrice renders an amount in cents the way the storefront shows it, e.g. 240800 as "$2,408.00"
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := strconv.FormatInt(cents/100, 10)
	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	frac := strconv.FormatInt(cents%100, 10)
	if len(frac) == 1 {
		frac = "0" + frac
	}
	return sign + "$" + grouped.String() + "." + frac
}
