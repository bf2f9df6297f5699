package applog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithScope(t *testing.T) {
	var buf bytes.Buffer
	logger := WithScope(NewLogger(&buf, false), "CART")

	logger.Info().Msg("item added")
	assert.Contains(t, buf.String(), "[CART]")
	assert.Contains(t, buf.String(), "item added")
	assert.NotContains(t, buf.String(), "scope=")
}

func TestDebugLevel(t *testing.T) {
	tcs := []struct {
		name  string
		debug bool
		want  bool
	}{
		{"info level hides debug", false, false},
		{"debug level shows debug", true, true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tc.debug)
			logger.Debug().Msg("descend")
			assert.Equal(t, tc.want, bytes.Contains(buf.Bytes(), []byte("descend")))
		})
	}
}
