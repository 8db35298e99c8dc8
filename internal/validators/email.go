package validators

import (
	"net"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsEmailValid aplica o formato padrão de endereço.
func IsEmailValid(email string) bool {
	return validate.Var(email, "email") == nil
}

// IsEmailDomainValid confere se o domínio resolve (MX ou A). Usado só
// no cadastro de conta; exige rede, então fica fora das validações de
// cliente.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
