package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapEnv(t *testing.T) {
	t.Parallel()
	e := NewFromMap(map[string]string{"B": "2", "A": "1"})

	assert.Equal(t, "1", e.Get("A"))
	assert.Empty(t, e.Get("MISSING"))

	e.Set("C", "3")
	assert.Equal(t, "3", e.Get("C"))
	assert.Equal(t, []string{"A=1", "B=2", "C=3"}, e.Env())
}
