package dto

type AppointmentDTO struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	Service     string `json:"service"`
	Price       string `json:"price"`
}
