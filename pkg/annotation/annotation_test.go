package annotation

import (
	"testing"

	"github.com/lesewerk/silbe/pkg/cluster"
	"github.com/lesewerk/silbe/pkg/locate"
	"github.com/stretchr/testify/assert"
)

func TestMapSetClearQuery(t *testing.T) {
	m := New()
	m.Set(3, "red")
	m.SetRange(5, 7, "blue")

	c, ok := m.Query(6)
	assert.True(t, ok)
	assert.Equal(t, "blue", c)
	assert.Equal(t, []int{3, 5, 6, 7}, m.Indices())
	assert.Equal(t, []int{5, 6, 7}, m.WithColor("blue"))

	m.Clear(6)
	_, ok = m.Query(6)
	assert.False(t, ok)

	m.Set(3, "")
	assert.Equal(t, 2, m.Len())

	m.ClearAll()
	assert.Equal(t, 0, m.Len())
}

func TestMapEncodeDecode(t *testing.T) {
	m := New()
	m.SetRange(0, 2, "red")
	m.Set(4, "blue")

	encoded := m.Encode()
	assert.Equal(t, "0-2:red,4:blue", encoded)

	decoded := Decode(encoded)
	assert.Equal(t, m.Colors(), decoded.Colors())
}

func TestMapMarkOccurrences(t *testing.T) {
	m := New()
	for _, o := range locate.Locate("Tasche", []string{"Ta", "sche"}, "sch", cluster.Default(), 10) {
		m.Mark(o, "yellow")
	}
	assert.Equal(t, "12-14:yellow", m.Encode())
}

func TestColorsReturnsCopy(t *testing.T) {
	m := New()
	m.Set(1, "red")
	colors := m.Colors()
	colors[1] = "blue"

	c, _ := m.Query(1)
	assert.Equal(t, "red", c)
}
