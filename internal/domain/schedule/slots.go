package schedule

import "time"

// Granularidade fixa dos horários de atendimento.
const SlotMinutes = 30

// Slots gera os horários candidatos de um dia, na ordem, em passos de 30
// minutos a partir da abertura (inclusiva) enquanto estritamente antes do
// fechamento. Dia fechado ou horário malformado produz lista vazia - não é
// erro, é "sem disponibilidade".
//
// Mesma entrada produz sempre a mesma saída, na mesma ordem.
func Slots(ws WorkingSchedule, date time.Time) []string {
	day := ws.Days[date.Weekday()]
	if !day.Open {
		return []string{}
	}

	start, err := ParseHM(day.Start)
	if err != nil {
		return []string{}
	}
	end, err := ParseHM(day.End)
	if err != nil {
		return []string{}
	}

	slots := []string{}
	for cur := start; cur.Before(end); cur = cur.Add(SlotMinutes * time.Minute) {
		slots = append(slots, cur.Format("15:04"))
	}

	return slots
}
