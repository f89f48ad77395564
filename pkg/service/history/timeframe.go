package history

import "time"

// Timeframe selects the history window.
type Timeframe string

const (
	Timeframe24h Timeframe = "24h"
	Timeframe7d  Timeframe = "7d"
	Timeframe30d Timeframe = "30d"
)

// ParseTimeframe maps unknown values to Timeframe24h.
func ParseTimeframe(s string) Timeframe {
	switch tf := Timeframe(s); tf {
	case Timeframe7d, Timeframe30d:
		return tf
	default:
		return Timeframe24h
	}
}

// Window is how far back stored samples are read.
func (tf Timeframe) Window() time.Duration {
	switch tf {
	case Timeframe7d:
		return 7 * 24 * time.Hour
	case Timeframe30d:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Limit caps the number of stored samples read, one per hour of window.
func (tf Timeframe) Limit() int {
	return int(tf.Window() / time.Hour)
}

// samplePlan returns the number of synthetic points and their spacing.
func (tf Timeframe) samplePlan() (int, time.Duration) {
	switch tf {
	case Timeframe7d:
		return 42, 4 * time.Hour
	case Timeframe30d:
		return 30, 24 * time.Hour
	default:
		return 24, time.Hour
	}
}
