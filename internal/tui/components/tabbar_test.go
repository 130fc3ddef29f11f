package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTabIdxByKey(t *testing.T) {
	assert.Equal(t, 0, TabIdxByKey('o'))
	assert.Equal(t, 1, TabIdxByKey('h'))
	assert.Equal(t, 2, TabIdxByKey('t'))
	assert.Equal(t, 3, TabIdxByKey('c'))
	assert.Equal(t, 4, TabIdxByKey('f'))
	assert.Equal(t, -1, TabIdxByKey('z'))
}
