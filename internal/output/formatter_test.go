package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkenter/habitkeep/internal/model"
)

func newTestFormatter() (*Formatter, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &Formatter{Writer: buf, Format: FormatCLI, ColorMode: ColorNever}, buf
}

func TestIsColorEnabled(t *testing.T) {
	f, _ := newTestFormatter()
	assert.False(t, f.IsColorEnabled())

	f.ColorMode = ColorAlways
	assert.True(t, f.IsColorEnabled())

	// Auto with a non-file writer falls back to no color.
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}

func TestJSONOutput(t *testing.T) {
	f, buf := newTestFormatter()
	require.NoError(t, f.JSON(map[string]int{"count": 3}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got["count"])
}

func TestCLIFormatterPlainMarks(t *testing.T) {
	f, buf := newTestFormatter()
	cli := NewCLIFormatter(f)

	assert.Equal(t, "✓", cli.CheckMark(true))
	assert.Equal(t, "·", cli.CheckMark(false))
	assert.Equal(t, "🔥 3", cli.Streak(3))
	assert.Equal(t, "0", cli.Streak(0))

	cli.Success("saved")
	assert.Contains(t, buf.String(), "✓ saved")
}

func TestProgressBar(t *testing.T) {
	f, _ := newTestFormatter()
	cli := NewCLIFormatter(f)

	assert.Equal(t, "█████░░░░░", cli.ProgressBar(0.5, 10))
	assert.Equal(t, "░░░░░░░░░░", cli.ProgressBar(-1, 10))
	assert.Equal(t, "██████████", cli.ProgressBar(2, 10))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "50%", Percent(0.5))
	assert.Equal(t, "100%", Percent(1))
}

func TestNewHabitOutputEvaluatesState(t *testing.T) {
	h := model.NewHabit("id-1", "Water", 2000, "ml")
	h.SetEntry("2024-01-01", 2000)

	date, err := time.ParseInLocation("2006-01-02", "2024-01-01", time.Local)
	require.NoError(t, err)

	out := NewHabitOutput(h, date)
	assert.True(t, out.Due)
	assert.True(t, out.Completed)
	assert.Equal(t, "2000 / 2000 ml", out.Progress)
	assert.Equal(t, 1, out.Streak)
	assert.Equal(t, "Daily", out.Schedule)
}
