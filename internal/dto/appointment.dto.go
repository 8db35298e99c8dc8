package dto

type AppointmentClientDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type AppointmentDTO struct {
	ID      string               `json:"id"`
	Date    string               `json:"date"`
	Time    string               `json:"time"`
	Service string               `json:"service"`
	Notes   string               `json:"notes"`
	Client  AppointmentClientDTO `json:"client"`
}

// UpcomingAppointmentDTO é a projeção desnormalizada usada pela lista
// de próximos agendamentos.
type UpcomingAppointmentDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Service     string `json:"service"`
	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
}
