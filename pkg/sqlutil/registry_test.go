package sqlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizers(t *testing.T) {
	names := Optimizers()

	assert.Contains(t, names, SimpleOptimizerName)
	assert.IsIncreasing(t, names)
}

func TestNewOptimizer(t *testing.T) {
	o, err := NewOptimizer(SimpleOptimizerName)
	require.NoError(t, err)
	assert.IsType(t, SimpleCountOptimizer{}, o)

	_, err = NewOptimizer("missing")
	assert.True(t, IsErrorCode(err, ErrCodeOptimizerNotFound))

	_, err = NewOptimizer(failingOptimizerName)
	assert.True(t, IsErrorCode(err, ErrCodeOptimizeConfig))
}

func TestRegister_Duplicate(t *testing.T) {
	assert.Panics(t, func() {
		Register(SimpleOptimizerName, func() (CountOptimizer, error) { return SimpleCountOptimizer{}, nil })
	})
	assert.Panics(t, func() {
		Register("nil-factory", nil)
	})
}
