package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	s := Some(42)
	v, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.True(t, s.Present())
	assert.Equal(t, 42, s.Or(-1))
	assert.Equal(t, 42, s.Must())
	assert.Equal(t, "Some(42)", s.String())

	n := None[int]()
	_, ok = n.Get()
	assert.False(t, ok)
	assert.False(t, n.Present())
	assert.Equal(t, -1, n.Or(-1))
	assert.Equal(t, "None", n.String())
	assert.Panics(t, func() { n.Must() })
}

// The zero Value must behave exactly like None: callers embed it in structs.
func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var z Value[string]
	assert.False(t, z.Present())
	assert.Equal(t, "fallback", z.Or("fallback"))
}

// A held zero value is still "present": Some(0) != None.
func TestSomeOfZeroValue(t *testing.T) {
	t.Parallel()

	s := Some(0)
	assert.True(t, s.Present())
	assert.Equal(t, 0, s.Or(99))
}
