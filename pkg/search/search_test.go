package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSQLFilter(t *testing.T) {
	sql, args := SQLFilter("appointments.reg_no", "  REG-17 ")
	assert.Equal(t, `LOWER(appointments.reg_no) LIKE ? ESCAPE '\'`, sql)
	assert.Equal(t, []any{"%reg-17%"}, args)
}

func TestNormalize_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `50\%\_off`, Normalize("50%_OFF"))
}
