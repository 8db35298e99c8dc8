package validators

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultPhoneRegion = "BR"

// NormalizePhone devolve o telefone em formato de exibição e a cópia
// só-dígitos usada internamente para busca. Números que a libphonenumber
// não entende caem no strip manual de dígitos.
func NormalizePhone(raw string) (display, digits string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}

	if num, err := phonenumbers.Parse(raw, defaultPhoneRegion); err == nil && phonenumbers.IsValidNumber(num) {
		display = phonenumbers.Format(num, phonenumbers.NATIONAL)
		return display, OnlyDigits(display)
	}

	return raw, OnlyDigits(raw)
}

func OnlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
