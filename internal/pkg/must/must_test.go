package must

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanicIf(t *testing.T) {
	assert.NotPanics(t, func() { PanicIf(nil) })
	assert.Panics(t, func() { PanicIf(errors.New("fail")) })
}

func TestYaml(t *testing.T) {
	var v struct{ T, P float64 }
	UnmarshalYaml(MarshalYaml(struct{ T, P float64 }{350, 2}), &v)
	assert.Equal(t, 350.0, v.T)
	assert.Panics(t, func() { UnmarshalYaml([]byte("t: ["), &v) })
}
