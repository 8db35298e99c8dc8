package timezone

import "time"

// Locale fixo da aplicação. Toda a agenda vive neste fuso;
// conversão por usuário está fora de escopo.
const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
