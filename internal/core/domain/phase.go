package domain

// ScanPhase represents the lifecycle state of a scan session.
type ScanPhase int

const (
	// PhaseIdle means no scan has been started, or the dispatcher is ready for a new one.
	PhaseIdle ScanPhase = iota
	// PhaseScanning means the directory tree is being enumerated.
	PhaseScanning
	// PhaseDispatching means units of work are being scheduled.
	PhaseDispatching
	// PhaseJoining means every unit has been scheduled and the dispatcher is waiting for them.
	PhaseJoining
	// PhaseFinished means the last scan has returned.
	PhaseFinished
)

// String returns a human-readable phase name.
func (p ScanPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseScanning:
		return "scanning"
	case PhaseDispatching:
		return "dispatching"
	case PhaseJoining:
		return "joining"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// IsActive reports whether a scan session is in flight.
func (p ScanPhase) IsActive() bool {
	switch p {
	case PhaseScanning, PhaseDispatching, PhaseJoining:
		return true
	default:
		return false
	}
}
