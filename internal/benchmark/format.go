package benchmark

import "fmt"

// FormatDuration renders d in the largest unit that keeps it readable:
// whole microseconds below 1ms, milliseconds below 1s, seconds otherwise.
func FormatDuration(d Duration) string {
	micros := d.Microseconds()
	if micros < 1000 {
		return fmt.Sprintf("%d µs", micros)
	}
	if micros < 1000000 {
		return fmt.Sprintf("%.2f ms", float64(micros)/1000)
	}
	return fmt.Sprintf("%.2f s", float64(micros)/1000000)
}
