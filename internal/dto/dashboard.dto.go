package dto

// Derivados sob demanda; nunca persistidos nem cacheados além da
// própria requisição.

type LastClientDTO struct {
	Name    string `json:"name"`
	Service string `json:"service"`
	Time    string `json:"time"`
}

type DashboardStatsDTO struct {
	TotalClients       int64          `json:"total_clients"`
	TodayAppointments  int64          `json:"today_appointments"`
	FutureAppointments int64          `json:"future_appointments"`
	LastClient         *LastClientDTO `json:"last_client"`
}

type MonthlyStatsDTO struct {
	CurrentMonthCount int64 `json:"current_month_count"`
	LastMonthCount    int64 `json:"last_month_count"`
	PercentageChange  int   `json:"percentage_change"`
}
