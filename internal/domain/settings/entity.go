package settings

// Settings is the process-wide classification configuration. It is loaded
// fresh at the start of each operation and passed by value into the
// classifier and aggregator; it is never cached across requests.
type Settings struct {
	LatenessGraceMinutes  int
	EarlyGraceMinutes     int
	DefaultScheduledHours float64
}

// Defaults returned when the settings row has never been written.
func Defaults() Settings {
	return Settings{
		LatenessGraceMinutes:  15,
		EarlyGraceMinutes:     15,
		DefaultScheduledHours: 8,
	}
}
