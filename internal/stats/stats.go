// Package stats computes read-only aggregates for display.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/mkenter/habitkeep/internal/habit"
	"github.com/mkenter/habitkeep/internal/model"
)

// DefaultWindowDays is the trailing window used for completion rates.
const DefaultWindowDays = 30

// HabitSummary aggregates a habit's recent performance.
type HabitSummary struct {
	Streak           int     `json:"streak"`
	CompletionRate   float64 `json:"completion_rate"` // 0..1 over the window
	TotalCompletions int     `json:"total_completions"`
	WindowDays       int     `json:"window_days"`
}

// SummarizeHabit computes a habit's summary over the trailing window ending
// at the reference date. Days on which the habit is vacuously complete
// (custom schedule, off day) count toward the rate, matching the evaluator's
// period semantics.
func SummarizeHabit(h *model.Habit, today time.Time, windowDays int) HabitSummary {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	completed := 0
	for i := 0; i < windowDays; i++ {
		if habit.CompletedForPeriod(h, today.AddDate(0, 0, -i)) {
			completed++
		}
	}

	total := 0
	for _, v := range h.Entries {
		if v >= h.Target {
			total++
		}
	}

	return HabitSummary{
		Streak:           habit.Streak(h, today),
		CompletionRate:   float64(completed) / float64(windowDays),
		TotalCompletions: total,
		WindowDays:       windowDays,
	}
}

// Trend labels for sleep statistics.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// SleepSummary aggregates sleep entries.
type SleepSummary struct {
	AvgHours    float64 `json:"avg_hours"`
	AvgScore    int     `json:"avg_score"`
	RecentTrend string  `json:"recent_trend"`
	Nights      int     `json:"nights"`
}

// SummarizeSleep computes averages over entries with positive hours and a
// recent trend by comparing the latest three nights against the three before.
func SummarizeSleep(entries []*model.SleepEntry) SleepSummary {
	valid := make([]*model.SleepEntry, 0, len(entries))
	for _, e := range entries {
		if e.Hours > 0 {
			valid = append(valid, e)
		}
	}

	summary := SleepSummary{RecentTrend: TrendStable}
	if len(valid) == 0 {
		return summary
	}

	var totalHours float64
	var totalScore int
	for _, e := range valid {
		totalHours += e.Hours
		totalScore += e.Score
	}

	sorted := make([]*model.SleepEntry, len(valid))
	copy(sorted, valid)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	if len(sorted) >= 6 {
		var recent, older float64
		for _, e := range sorted[:3] {
			recent += e.Hours
		}
		for _, e := range sorted[3:6] {
			older += e.Hours
		}
		recent /= 3
		older /= 3
		if recent > older+0.5 {
			summary.RecentTrend = TrendImproving
		} else if recent < older-0.5 {
			summary.RecentTrend = TrendDeclining
		}
	}

	summary.AvgHours = math.Round(totalHours/float64(len(valid))*10) / 10
	summary.AvgScore = int(math.Round(float64(totalScore) / float64(len(valid))))
	summary.Nights = len(valid)
	return summary
}

// WeightSummary aggregates weight entries.
type WeightSummary struct {
	Latest  float64 `json:"latest"`
	First   float64 `json:"first"`
	Delta   float64 `json:"delta"`
	Entries int     `json:"entries"`
}

// SummarizeWeight computes the change between the first and latest
// measurements. Entries must be sorted oldest first.
func SummarizeWeight(entries []*model.WeightEntry) WeightSummary {
	if len(entries) == 0 {
		return WeightSummary{}
	}
	first := entries[0].Weight
	latest := entries[len(entries)-1].Weight
	return WeightSummary{
		Latest:  latest,
		First:   first,
		Delta:   latest - first,
		Entries: len(entries),
	}
}
