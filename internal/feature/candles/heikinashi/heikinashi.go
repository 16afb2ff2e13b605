// Package heikinashi converts an ordinary OHLC series into its Heikin-Ashi
// (smoothed candlestick) representation.
package heikinashi

import (
	"math"
	"sort"
	"time"

	"stockview_backend/internal/feature/candles/domain"
	"stockview_backend/internal/feature/candles/domain/entity"
)

// Seed selects which end of the series anchors the smoothing recurrence.
type Seed int

const (
	// SeedOldest anchors the recurrence at the chronologically first bar.
	// This is the textbook Heikin-Ashi definition.
	SeedOldest Seed = iota

	// SeedNewest anchors the recurrence at the most recent bar and runs it
	// backwards through history. This reproduces the behavior of frontends
	// that iterate the feed in its native newest-first order and only
	// reverse the finished output.
	SeedNewest
)

// Bar is one derived Heikin-Ashi candle. It carries no volume: the transform
// is defined over prices only.
type Bar struct {
	Time  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Compute derives the Heikin-Ashi series for the given bars.
//
// The recurrence, per bar in processing order:
//   - seed bar: haOpen = open, haClose = close (raw values, no smoothing)
//   - others:   haOpen = (prevHaOpen + prevHaClose) / 2
//     haClose = (open + high + low + close) / 4
//   - always:   haHigh = max(high, haOpen, haClose)
//     haLow  = min(low, haOpen, haClose)
//
// The input may arrive in any order; Compute establishes its own processing
// order from the bar timestamps, so the seed is determined solely by the Seed
// argument. The output is always chronological (oldest first) and has exactly
// one Bar per input candle. An empty input yields domain.ErrEmptySeries.
func Compute(bars []entity.Candle, seed Seed) ([]Bar, error) {
	if len(bars) == 0 {
		return nil, domain.ErrEmptySeries
	}

	sorted := make([]entity.Candle, len(bars))
	copy(sorted, bars)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	// Index sequence in processing order. SeedNewest walks history backwards.
	order := make([]int, len(sorted))
	for i := range order {
		if seed == SeedNewest {
			order[i] = len(sorted) - 1 - i
		} else {
			order[i] = i
		}
	}

	out := make([]Bar, len(sorted))
	var prev Bar
	for n, idx := range order {
		src := sorted[idx]
		b := Bar{Time: src.Time}
		if n == 0 {
			b.Open = src.Open
			b.Close = src.Close
		} else {
			b.Open = (prev.Open + prev.Close) / 2
			b.Close = (src.Open + src.High + src.Low + src.Close) / 4
		}
		b.High = math.Max(src.High, math.Max(b.Open, b.Close))
		b.Low = math.Min(src.Low, math.Min(b.Open, b.Close))
		out[idx] = b
		prev = b
	}
	return out, nil
}
