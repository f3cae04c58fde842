package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bytesum/internal/core/domain"
)

func TestScanPhase(t *testing.T) {
	tests := []struct {
		phase    domain.ScanPhase
		name     string
		isActive bool
	}{
		{domain.PhaseIdle, "idle", false},
		{domain.PhaseScanning, "scanning", true},
		{domain.PhaseDispatching, "dispatching", true},
		{domain.PhaseJoining, "joining", true},
		{domain.PhaseFinished, "finished", false},
		{domain.ScanPhase(42), "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.phase.String())
			assert.Equal(t, tt.isActive, tt.phase.IsActive())
		})
	}
}
