package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Os horários são gravados como timestamptz, então o range da constraint de
// exclusão tem que ser tstzrange. Com tsrange o Postgres responde
// undefined_function (42883) e derruba o boot.
func TestExclusionConstraintUsesTstzrange(t *testing.T) {
	assert.Contains(t, exclusionConstraintDDL, "tstzrange(start_time, end_time)")
	assert.NotContains(t, strings.ReplaceAll(exclusionConstraintDDL, "tstzrange", ""), "tsrange")
}

func TestExclusionConstraintIgnoresCanceled(t *testing.T) {
	assert.Contains(t, exclusionConstraintDDL, "status <> 'CANCELED'")
	assert.Contains(t, exclusionConstraintDDL, "EXCLUDE USING gist")
}
