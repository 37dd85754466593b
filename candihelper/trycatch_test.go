package candihelper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryCatch_Do(t *testing.T) {
	t.Run("Test Catch Panic", func(t *testing.T) {
		var caught error
		TryCatch{
			Try: func() {
				panic("test")
			},
			Catch: func(e error) {
				caught = e
			},
		}.Do()
		assert.Equal(t, errors.New("test"), caught)
	})
	t.Run("Test Catch Panic Nil Pointer", func(t *testing.T) {
		var caught error
		TryCatch{
			Try: func() {
				var event *struct{ senderID string }
				_ = event.senderID
			},
			Catch: func(e error) {
				caught = e
			},
		}.Do()
		assert.Error(t, caught)
		assert.Contains(t, caught.Error(), "invalid memory address or nil pointer dereference")
	})
	t.Run("Test Catch Panic index out of range", func(t *testing.T) {
		var caught error
		TryCatch{
			Try: func() {
				var samples []float64
				_ = samples[1]
			},
			Catch: func(e error) {
				caught = e
			},
		}.Do()
		assert.Contains(t, caught.Error(), "index out of range")
	})
	t.Run("Test Finally after Catch", func(t *testing.T) {
		var steps []string
		TryCatch{
			Try:     func() { panic(errors.New("send failed")) },
			Catch:   func(e error) { steps = append(steps, "catch:"+e.Error()) },
			Finally: func() { steps = append(steps, "finally") },
		}.Do()
		assert.Equal(t, []string{"catch:send failed", "finally"}, steps)
	})
	t.Run("Test Finally without panic and without Catch", func(t *testing.T) {
		finished := false
		TryCatch{
			Try:     func() {},
			Finally: func() { finished = true },
		}.Do()
		assert.True(t, finished)
	})
	t.Run("Test without panic", func(t *testing.T) {
		called := false
		TryCatch{
			Try:   func() {},
			Catch: func(e error) { called = true },
		}.Do()
		assert.False(t, called)
	})
}
