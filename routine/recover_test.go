package routine

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverRunsCleanupsInOrder(t *testing.T) {
	var order []string

	func() {
		defer Recover(
			func(r interface{}) { order = append(order, fmt.Sprintf("first:%v", r)) },
			func(r interface{}) { order = append(order, fmt.Sprintf("second:%v", r)) },
		)
		panic("boom")
	}()

	assert.Equal(t, []string{"first:boom", "second:boom"}, order)
}

func TestRecoverNoPanic(t *testing.T) {
	called := false

	func() {
		defer Recover(func(r interface{}) { called = true })
	}()

	assert.False(t, called)
}

func TestNewRecoveredCapturesCaller(t *testing.T) {
	var rec *Recovered

	func() {
		defer func() {
			if r := recover(); r != nil {
				rec = NewRecovered(0, r)
			}
		}()
		panic("boom")
	}()

	require.NotNil(t, rec)
	assert.Equal(t, "boom", rec.Value)
	assert.NotEmpty(t, rec.Callers)
}

func TestRecoveredAsError(t *testing.T) {
	var nilRec *Recovered
	assert.NoError(t, nilRec.AsError())

	err := NewRecovered(0, "boom").AsError()
	require.Error(t, err)
	assert.Equal(t, "panic: boom", err.Error())
}

func TestRecoveredErrorStackTrace(t *testing.T) {
	err := NewRecovered(0, "boom").AsError()

	var re *RecoveredError
	require.ErrorAs(t, err, &re)
	require.NotEmpty(t, re.StackTrace())

	rendered := fmt.Sprintf("%+v", err)
	assert.True(t, strings.HasPrefix(rendered, "panic: boom"))
	assert.Contains(t, rendered, "recover_test.go")
}
