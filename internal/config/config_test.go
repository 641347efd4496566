package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("FORMAT", "")
		t.Setenv("VERBOSE", "")

		cfg := NewConfig()

		assert.Equal(t, DefaultFormat, cfg.Reader.Format)
		assert.False(t, cfg.Global.Verbose)
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("FORMAT", "paperback")
		t.Setenv("VERBOSE", "true")

		cfg := NewConfig()

		assert.Equal(t, "paperback", cfg.Format)
		assert.True(t, cfg.Verbose)
	})
}
