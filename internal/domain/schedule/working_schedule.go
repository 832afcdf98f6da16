package schedule

import (
	"fmt"
	"time"
)

// ===============================
// Working Schedule (value object)
// ===============================

type Day struct {
	Open  bool   `json:"open"`
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`   // HH:MM
}

// Pausa diária única - vale igualmente para todos os dias abertos.
type Break struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type WorkingSchedule struct {
	Days  [7]Day `json:"days"` // indexado por time.Weekday (0 = domingo)
	Break Break  `json:"break"`
}

type ScheduleError struct {
	Reason string
}

func (e ScheduleError) Error() string {
	return "schedule: " + e.Reason
}

// Default é o horário criado no registro: todos os dias abertos 10:00–20:30,
// exceto domingo, com pausa 13:30–16:30.
func Default() WorkingSchedule {
	ws := WorkingSchedule{
		Break: Break{Enabled: true, Start: "13:30", End: "16:30"},
	}
	for wd := range ws.Days {
		if time.Weekday(wd) == time.Sunday {
			continue
		}
		ws.Days[wd] = Day{Open: true, Start: "10:00", End: "20:30"}
	}
	return ws
}

func (ws WorkingSchedule) Validate() error {
	for wd, day := range ws.Days {
		if !day.Open {
			continue
		}
		start, err := ParseHM(day.Start)
		if err != nil {
			return ScheduleError{Reason: fmt.Sprintf("weekday %d: invalid start %q", wd, day.Start)}
		}
		end, err := ParseHM(day.End)
		if err != nil {
			return ScheduleError{Reason: fmt.Sprintf("weekday %d: invalid end %q", wd, day.End)}
		}
		if !start.Before(end) {
			return ScheduleError{Reason: fmt.Sprintf("weekday %d: start %s must be before end %s", wd, day.Start, day.End)}
		}
	}

	if ws.Break.Enabled {
		start, err := ParseHM(ws.Break.Start)
		if err != nil {
			return ScheduleError{Reason: fmt.Sprintf("break: invalid start %q", ws.Break.Start)}
		}
		end, err := ParseHM(ws.Break.End)
		if err != nil {
			return ScheduleError{Reason: fmt.Sprintf("break: invalid end %q", ws.Break.End)}
		}
		if !start.Before(end) {
			return ScheduleError{Reason: fmt.Sprintf("break: start %s must be before end %s", ws.Break.Start, ws.Break.End)}
		}
	}

	return nil
}

func (ws WorkingSchedule) IsOpenOn(weekday time.Weekday) bool {
	return ws.Days[weekday].Open
}

func (ws WorkingSchedule) HoursFor(weekday time.Weekday) (string, string, error) {
	day := ws.Days[weekday]
	if !day.Open {
		return "", "", ScheduleError{Reason: fmt.Sprintf("weekday %d is closed", weekday)}
	}
	return day.Start, day.End, nil
}

// IsBreakActiveAt verifica se um horário HH:MM cai dentro da pausa
// (início inclusivo, fim exclusivo). Horário malformado conta como fora.
func (ws WorkingSchedule) IsBreakActiveAt(hm string) bool {
	if !ws.Break.Enabled {
		return false
	}

	t, err := ParseHM(hm)
	if err != nil {
		return false
	}
	start, err := ParseHM(ws.Break.Start)
	if err != nil {
		return false
	}
	end, err := ParseHM(ws.Break.End)
	if err != nil {
		return false
	}

	return !t.Before(start) && t.Before(end)
}

// ParseHM interpreta um horário de parede HH:MM (sem timezone).
func ParseHM(hm string) (time.Time, error) {
	return time.Parse("15:04", hm)
}
