package debugui

import (
	"reflect"
	"testing"

	"github.com/plus3/game2d/sprite"
	"github.com/stretchr/testify/assert"
)

func TestFrameHistory(t *testing.T) {
	h := newFrameHistory(3)
	assert.Equal(t, float32(0), h.average())

	h.push(10)
	assert.Equal(t, float32(10), h.average())

	h.push(20)
	h.push(30)
	h.push(40) // evicts 10
	assert.Equal(t, float32(30), h.average())
	assert.Equal(t, []float32{40, 20, 30}, h.values)
}

func TestSortBuckets(t *testing.T) {
	rows := []sprite.BucketStats{
		{ID: 0, Type: "b.Enemy", Count: 5, Slots: 9},
		{ID: 1, Type: "a.Player", Count: 1, Slots: 1},
		{ID: 2, Type: "c.Coin", Count: 12, Slots: 12},
	}

	sortBuckets(rows, 2, false)
	assert.Equal(t, []uint32{2, 0, 1}, ids(rows))

	sortBuckets(rows, 1, true)
	assert.Equal(t, []uint32{1, 0, 2}, ids(rows))

	sortBuckets(rows, 0, true)
	assert.Equal(t, []uint32{0, 1, 2}, ids(rows))
}

func ids(rows []sprite.BucketStats) []uint32 {
	out := make([]uint32, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

type inspected struct {
	Name   string
	hidden int
	Speed  float64
}

func TestFieldsOfSkipsUnexported(t *testing.T) {
	fields := fieldsOf(reflect.TypeFor[inspected]())
	assert.Equal(t, []fieldInfo{{Name: "Name", Index: 0}, {Name: "Speed", Index: 2}}, fields)

	assert.Empty(t, fieldsOf(reflect.TypeFor[int]()))
}
