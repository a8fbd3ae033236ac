package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	for _, c := range []struct {
		v    float64
		prec int
		s    string
	}{
		{2736.467475182493, 5, "2736.46748"},
		{2736.467475182493, -1, "2736.467475182493"},
		{100, 3, "100"},
		{0.5, 0, "0"},
		{1.25, 1, "1.2"},
		{-0.00001, 2, "0"},
		{101.325, 6, "101.325"},
	} {
		assert.Equal(t, c.s, FormatFloat(c.v, c.prec), "%v %d", c.v, c.prec)
	}
}
