package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumDeterminism(t *testing.T) {
	a := Sum("Prime Minister's Research Fellowship", "Government of India")
	b := Sum("Prime Minister's Research Fellowship", "Government of India")

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestSumDistinguishesSource(t *testing.T) {
	a := Sum("X", "Y")
	b := Sum("X", "Z")

	assert.NotEqual(t, a, b)
}

func TestSumWhitespaceSensitive(t *testing.T) {
	// No normalization is applied: differently-whitespaced titles are
	// distinct records.
	a := Sum("KVPY Fellowship", "DST")
	b := Sum("KVPY  Fellowship", "DST")

	assert.NotEqual(t, a, b)
}
