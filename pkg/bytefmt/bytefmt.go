// Package bytefmt renders byte counts as human-readable IEC strings with a
// caller-chosen number of decimal places. Memory fields use two decimals,
// disk fields use zero.
package bytefmt

import "fmt"

var units = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// Format renders n as a value scaled to the largest IEC unit below it,
// with the given number of decimal places. Values under 1 KiB are always
// rendered without decimals.
func Format(n uint64, decimals int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	v := float64(n)
	unit := 0
	for v >= 1024 && unit < len(units)-1 {
		v /= 1024
		unit++
	}
	return fmt.Sprintf("%.*f %s", decimals, v, units[unit])
}
