package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutRowSumsExactly(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5} {
		widths := LayoutRow(103, n)
		assert.Len(t, widths, n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		assert.Equal(t, 103, sum, "n=%d", n)
	}
}

func TestLayoutRowRemainderGoesFirst(t *testing.T) {
	widths := LayoutRow(10, 3)
	assert.Equal(t, []int{4, 3, 3}, widths)
}
