package output

import (
	"time"

	"github.com/mkenter/habitkeep/internal/habit"
	"github.com/mkenter/habitkeep/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// HabitOutput represents a habit in JSON output, with its evaluated state for
// the reference date.
type HabitOutput struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Icon         string  `json:"icon,omitempty"`
	Target       float64 `json:"target"`
	Unit         string  `json:"unit"`
	TrackingType string  `json:"tracking_type,omitempty"`
	Schedule     string  `json:"schedule"`
	Due          bool    `json:"due"`
	Completed    bool    `json:"completed"`
	Progress     string  `json:"progress"`
	Streak       int     `json:"streak"`
}

// NewHabitOutput creates a HabitOutput evaluated at the given date.
func NewHabitOutput(h *model.Habit, date time.Time) *HabitOutput {
	return &HabitOutput{
		ID:           h.ID,
		Name:         h.Name,
		Icon:         h.Icon,
		Target:       h.Target,
		Unit:         h.Unit,
		TrackingType: string(h.TrackingType),
		Schedule:     habit.ScheduleText(h),
		Due:          habit.IsDue(h, date),
		Completed:    habit.CompletedForPeriod(h, date),
		Progress:     habit.ProgressText(h, date),
		Streak:       habit.Streak(h, date),
	}
}

// HabitsResponse represents a habit list in JSON.
type HabitsResponse struct {
	Habits []*HabitOutput `json:"habits"`
	Count  int            `json:"count"`
}

// NewHabitsResponse creates a HabitsResponse evaluated at the given date.
func NewHabitsResponse(habits []*model.Habit, date time.Time) *HabitsResponse {
	outputs := make([]*HabitOutput, len(habits))
	for i, h := range habits {
		outputs[i] = NewHabitOutput(h, date)
	}
	return &HabitsResponse{Habits: outputs, Count: len(outputs)}
}

// EntryResponse represents the result of a logged entry in JSON.
type EntryResponse struct {
	Status string       `json:"status"`
	Date   string       `json:"date"`
	Value  float64      `json:"value"`
	Habit  *HabitOutput `json:"habit"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PrintError outputs an error response.
func (j *JSONFormatter) PrintError(errText, message string) error {
	return j.JSON(&ErrorResponse{
		Status:  "error",
		Error:   errText,
		Message: message,
	})
}

// MomentOutput represents a moment in JSON output.
type MomentOutput struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// MomentsResponse represents a moment list in JSON.
type MomentsResponse struct {
	Moments []*MomentOutput `json:"moments"`
	Count   int             `json:"count"`
}

// NewMomentsResponse creates a MomentsResponse.
func NewMomentsResponse(moments []*model.Moment) *MomentsResponse {
	outputs := make([]*MomentOutput, len(moments))
	for i, m := range moments {
		outputs[i] = &MomentOutput{Date: m.Date, Text: m.Text}
	}
	return &MomentsResponse{Moments: outputs, Count: len(outputs)}
}

// SleepOutput represents a sleep entry in JSON output.
type SleepOutput struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
	Score int     `json:"score"`
}

// SleepResponse represents a sleep entry list in JSON.
type SleepResponse struct {
	Entries []*SleepOutput `json:"entries"`
	Count   int            `json:"count"`
}

// NewSleepResponse creates a SleepResponse.
func NewSleepResponse(entries []*model.SleepEntry) *SleepResponse {
	outputs := make([]*SleepOutput, len(entries))
	for i, e := range entries {
		outputs[i] = &SleepOutput{Date: e.Date, Hours: e.Hours, Score: e.Score}
	}
	return &SleepResponse{Entries: outputs, Count: len(outputs)}
}

// WeightOutput represents a weight entry in JSON output.
type WeightOutput struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// WeightResponse represents a weight entry list in JSON.
type WeightResponse struct {
	Entries []*WeightOutput `json:"entries"`
	Count   int             `json:"count"`
}

// NewWeightResponse creates a WeightResponse.
func NewWeightResponse(entries []*model.WeightEntry) *WeightResponse {
	outputs := make([]*WeightOutput, len(entries))
	for i, e := range entries {
		outputs[i] = &WeightOutput{Date: e.Date, Weight: e.Weight}
	}
	return &WeightResponse{Entries: outputs, Count: len(outputs)}
}
