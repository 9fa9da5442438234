package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"default level", false, false},
		{"verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, tt.verbose)

			logger.Debug("walking tree")
			logger.Info("scan complete")
			_ = logger.Sync()

			out := buf.String()
			assert.Contains(t, out, "INFO")
			assert.Contains(t, out, "scan complete")
			assert.Contains(t, out, "up2date")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("walking tree")))
		})
	}
}
