package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorf(t *testing.T) {
	err := NewErrorf("upstream returned status %d", 502)
	assert.EqualError(t, err, "upstream returned status 502")
}

func TestCombine(t *testing.T) {
	assert.NoError(t, Combine(nil, nil))

	e1 := errors.New("first")
	e2 := errors.New("second")
	err := Combine(nil, e1, nil, e2)
	assert.ErrorIs(t, err, e1)
	assert.ErrorIs(t, err, e2)
}

func TestRecoverStopsPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		defer Recover("background job")
		panic("boom")
	})
}
