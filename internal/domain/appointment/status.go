package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	// StatusScheduled: criado pelo barbeiro, ainda pendente de confirmação.
	StatusScheduled Status = "scheduled"
	// StatusConfirmed: reserva feita pelo cliente, ou scheduled confirmado.
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// IsLive indica se o agendamento ocupa o horário. Cancelado continua
// persistido (histórico) mas não bloqueia o slot.
func IsLive(s Status) bool {
	return s == StatusScheduled || s == StatusConfirmed
}

// CanCancel define se um agendamento pode ser cancelado.
func CanCancel(current Status) bool {
	return IsLive(current)
}

// CanConfirm define se um agendamento pode ser confirmado.
func CanConfirm(current Status) bool {
	return current == StatusScheduled
}
