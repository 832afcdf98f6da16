package appointment

// ===============================
// Availability view
// ===============================

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotBreak     SlotStatus = "break"
)

type SlotView struct {
	Time   string     `json:"time"`
	Status SlotStatus `json:"status"`
}
