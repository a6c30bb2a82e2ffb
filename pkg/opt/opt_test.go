package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldZeroValueIsPresent(t *testing.T) {
	zero := 0
	f := FromPtr(&zero)
	v, ok := f.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, f.OrElse(42))
}

func TestFieldAbsent(t *testing.T) {
	var p *string
	f := FromPtr(p)
	assert.False(t, f.IsSet())
	assert.Equal(t, "x", f.OrElse("x"))
	assert.False(t, None[int]().IsSet())
}

func TestFieldNullablePointer(t *testing.T) {
	clear := Some[*int64](nil)
	v, ok := clear.Get()
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestFieldInto(t *testing.T) {
	cols := map[string]any{}
	Some("x").Into(cols, "name")
	None[int]().Into(cols, "width")
	Some[*int64](nil).Into(cols, "owner_id")

	assert.Equal(t, "x", cols["name"])
	assert.NotContains(t, cols, "width")
	v, ok := cols["owner_id"]
	assert.True(t, ok)
	assert.Nil(t, v)
}
