package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	ws := Default()

	require.NoError(t, ws.Validate())

	assert.False(t, ws.IsOpenOn(time.Sunday))
	for wd := time.Monday; wd <= time.Saturday; wd++ {
		assert.True(t, ws.IsOpenOn(wd), "weekday %s should be open", wd)

		start, end, err := ws.HoursFor(wd)
		require.NoError(t, err)
		assert.Equal(t, "10:00", start)
		assert.Equal(t, "20:30", end)
	}

	assert.True(t, ws.Break.Enabled)
	assert.Equal(t, "13:30", ws.Break.Start)
	assert.Equal(t, "16:30", ws.Break.End)
}

func TestHoursFor_ClosedDay(t *testing.T) {
	ws := Default()

	_, _, err := ws.HoursFor(time.Sunday)

	var schedErr ScheduleError
	require.ErrorAs(t, err, &schedErr)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*WorkingSchedule)
		wantErr bool
	}{
		{
			name:   "default is valid",
			mutate: func(ws *WorkingSchedule) {},
		},
		{
			name: "closed day ignores empty times",
			mutate: func(ws *WorkingSchedule) {
				ws.Days[1] = Day{Open: false}
			},
		},
		{
			name: "open day with start after end",
			mutate: func(ws *WorkingSchedule) {
				ws.Days[1] = Day{Open: true, Start: "18:00", End: "09:00"}
			},
			wantErr: true,
		},
		{
			name: "open day with equal start and end",
			mutate: func(ws *WorkingSchedule) {
				ws.Days[2] = Day{Open: true, Start: "09:00", End: "09:00"}
			},
			wantErr: true,
		},
		{
			name: "open day with malformed start",
			mutate: func(ws *WorkingSchedule) {
				ws.Days[3] = Day{Open: true, Start: "9h", End: "18:00"}
			},
			wantErr: true,
		},
		{
			name: "break start after end",
			mutate: func(ws *WorkingSchedule) {
				ws.Break = Break{Enabled: true, Start: "17:00", End: "13:00"}
			},
			wantErr: true,
		},
		{
			name: "disabled break ignores malformed times",
			mutate: func(ws *WorkingSchedule) {
				ws.Break = Break{Enabled: false, Start: "xx", End: "yy"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := Default()
			tt.mutate(&ws)

			err := ws.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsBreakActiveAt(t *testing.T) {
	ws := Default() // pausa 13:30–16:30

	assert.False(t, ws.IsBreakActiveAt("13:00"))
	assert.True(t, ws.IsBreakActiveAt("13:30")) // início inclusivo
	assert.True(t, ws.IsBreakActiveAt("15:00"))
	assert.True(t, ws.IsBreakActiveAt("16:00"))
	assert.False(t, ws.IsBreakActiveAt("16:30")) // fim exclusivo
	assert.False(t, ws.IsBreakActiveAt("17:00"))

	assert.False(t, ws.IsBreakActiveAt("not-a-time"))

	ws.Break.Enabled = false
	assert.False(t, ws.IsBreakActiveAt("15:00"))
}
