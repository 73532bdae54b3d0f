package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("register 3 is empty", From("register %v is empty", 3))
	assert.Equal("plain", From("plain"))
}

func TestPrinter(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		locales []string
		text    string
	}){
		{nil, "1,000 steps"},
		{[]string{"en-US"}, "1,000 steps"},
		{[]string{"de-DE"}, "1.000 steps"},
		{[]string{"!!", "de-DE"}, "1.000 steps"},
		{[]string{"!!"}, "1,000 steps"},
	}

	for _, entry := range table {
		p := Printer(entry.locales...)
		assert.Equal(entry.text, p.Sprintf("%v steps", 1000), entry.locales)
	}
}
