package candihelper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiError(t *testing.T) {
	t.Run("Test empty multi error", func(t *testing.T) {
		mErr := NewMultiError()
		assert.True(t, mErr.IsNil())
		assert.False(t, mErr.HasError())
		assert.Equal(t, "", mErr.Error())
	})
	t.Run("Test append ignore nil error", func(t *testing.T) {
		mErr := NewMultiError()
		mErr.Append("PORT", nil)
		assert.True(t, mErr.IsNil())
	})
	t.Run("Test append and sorted message", func(t *testing.T) {
		mErr := NewMultiError()
		mErr.Append("VERIFY_TOKEN", errors.New("required")).Append("PAGE_ACCESS_TOKEN", errors.New("required"))
		assert.True(t, mErr.HasError())
		assert.Equal(t, "PAGE_ACCESS_TOKEN: required\nVERIFY_TOKEN: required", mErr.Error())
	})
	t.Run("Test merge and clear", func(t *testing.T) {
		mErr := NewMultiError().Append("a", errors.New("x"))
		other := NewMultiError().Append("b", errors.New("y"))
		mErr.Merge(other)
		assert.Equal(t, map[string]string{"a": "x", "b": "y"}, mErr.ToMap())

		mErr.Clear()
		assert.True(t, mErr.IsNil())
	})
}
