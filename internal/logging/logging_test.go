package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdLogger_Verbosity(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantInfo bool
	}{
		{"default", Options{}, true},
		{"verbose", Options{Verbose: true}, true},
		{"quiet", Options{Quiet: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.opts.Output = &buf
			log, err := New(tt.opts)
			require.NoError(t, err)

			log.Debug("debug-line", "k", 1)
			log.Info("info-line", "k", 2)
			log.Warn("warn-line", "k", 3)
			require.NoError(t, log.Close())

			out := buf.String()
			assert.Equal(t, tt.opts.Verbose, strings.Contains(out, "debug-line"))
			assert.Equal(t, tt.wantInfo, strings.Contains(out, "info-line"))
			assert.Contains(t, out, "warn-line")
		})
	}
}

func TestNop(t *testing.T) {
	var log Logger = Nop{}
	log.Debug("x")
	log.Info("x")
	log.Warn("x")
	log.Error("x")
	assert.NoError(t, log.Close())
}
