package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestParseSignal(t *testing.T) {
	cases := []struct {
		spec     string
		expected unix.Signal
		wantErr  bool
	}{
		{spec: "SIGTERM", expected: unix.SIGTERM},
		{spec: "SIGKILL", expected: unix.SIGKILL},
		{spec: "SIGTSTP", expected: unix.SIGTSTP},
		{spec: "9", expected: unix.SIGKILL},
		{spec: "2", expected: unix.SIGINT},
		{spec: "0", wantErr: true},
		{spec: "-3", wantErr: true},
		{spec: "SIGWINCH", wantErr: true},
		{spec: "TERM", wantErr: true},
		{spec: "bogus", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.spec, func(t *testing.T) {
			sig, err := ParseSignal(tc.spec)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, sig)
		})
	}
}

func TestSignalName(t *testing.T) {
	assert.Equal(t, "Interrupt", SignalName(int(unix.SIGINT)))
	assert.Equal(t, "Killed", SignalName(int(unix.SIGKILL)))
	assert.Equal(t, "Terminated", SignalName(int(unix.SIGTERM)))
	assert.Equal(t, "Stopped", SignalName(int(unix.SIGTSTP)))
	assert.Equal(t, "Segmentation fault", SignalName(int(unix.SIGSEGV)))
}
