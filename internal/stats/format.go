package stats

import "fmt"

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// FormatDuration renders seconds as "DD day(s) HH hour(s) MM minute(s)".
// Leftover seconds are dropped. Negative input is not supported.
func FormatDuration(totalSeconds int) string {
	days := totalSeconds / secondsPerDay
	hours := (totalSeconds % secondsPerDay) / secondsPerHour
	minutes := (totalSeconds % secondsPerHour) / secondsPerMinute

	return fmt.Sprintf("%02d day(s) %02d hour(s) %02d minute(s)", days, hours, minutes)
}

// CalculateWinRate returns wins/(wins+losses) in [0,1], or 0 with no games played
func CalculateWinRate(wins int, losses int) float64 {
	total := wins + losses
	if total <= 0 {
		return 0
	}
	return float64(wins) / float64(total)
}
