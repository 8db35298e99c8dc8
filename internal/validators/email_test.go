package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	assert.True(t, IsEmailValid("ana@example.com"))
	assert.True(t, IsEmailValid("ana.souza+promo@sub.example.com.br"))

	assert.False(t, IsEmailValid("ana"))
	assert.False(t, IsEmailValid("ana@"))
	assert.False(t, IsEmailValid("@example.com"))
	assert.False(t, IsEmailValid("ana example@example.com"))
	assert.False(t, IsEmailValid(""))
}
