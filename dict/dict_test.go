package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fruit() map[string]int {
	return map[string]int{
		"apple":  12,
		"orange": 5,
		"banana": 20,
		"lemon":  15,
	}
}

func TestOnly(t *testing.T) {
	m := fruit()

	assert.Equal(t, map[string]int{"apple": 12, "banana": 20}, Only(m, "apple", "banana", "milk"))
	assert.Empty(t, Only(m, "milk"))
	assert.Empty(t, Only(m))
	assert.Equal(t, fruit(), m, "source map is untouched")
}

func TestExcept(t *testing.T) {
	m := fruit()

	assert.Equal(t, map[string]int{"orange": 5, "lemon": 15}, Except(m, "apple", "banana", "milk"))
	assert.Equal(t, m, Except(m, "milk"))
	assert.Equal(t, fruit(), m, "source map is untouched")
}

func TestNamedMapTypes(t *testing.T) {
	type headers map[string]string
	h := headers{"Accept": "json", "Authorization": "secret"}

	var filtered headers = Except(h, "Authorization")
	assert.Equal(t, headers{"Accept": "json"}, filtered)
}

func TestNilMap(t *testing.T) {
	var m map[int]bool
	assert.NotNil(t, Only(m, 1))
	assert.Empty(t, Except(m, 1))
}
