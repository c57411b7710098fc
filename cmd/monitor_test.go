package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMonitorOptions(t *testing.T) {
	testCases := []struct {
		name     string
		interval int
		timeout  int
		wantErr  bool
	}{
		{"defaults are valid", 5, 1, false},
		{"zero timeout would dial unbounded", 5, 0, true},
		{"negative timeout", 5, -1, true},
		{"zero interval would panic the ticker", 0, 1, true},
		{"negative interval", -5, 1, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateMonitorOptions(tc.interval, tc.timeout)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
