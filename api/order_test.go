package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceWeight(t *testing.T) {
	assert.Equal(t, 200, coerceWeight(float64(200)))
	assert.Equal(t, 200, coerceWeight(200.9))
	assert.Equal(t, 200, coerceWeight(json.Number("200.5")))
	assert.Equal(t, 200, coerceWeight("200"))
	assert.Equal(t, 200, coerceWeight(" 200.7 "))
	assert.Equal(t, 200, coerceWeight(200))

	assert.Equal(t, 0, coerceWeight(nil))
	assert.Equal(t, 0, coerceWeight(""))
	assert.Equal(t, 0, coerceWeight("abc"))
	assert.Equal(t, 0, coerceWeight(json.Number("x")))
	assert.Equal(t, 0, coerceWeight(true))
}
