// Package domain holds the checksum data model, scan events and cancellation primitives.
package domain

import "strconv"

// ChecksumResult is the byte sum computed for a single file.
// It is a value type and is never mutated after the dispatcher produces it.
type ChecksumResult struct {
	Path     string
	Checksum uint64
}

// String renders the result the way the console front end prints it.
func (r ChecksumResult) String() string {
	return r.Path + " : " + strconv.FormatUint(r.Checksum, 10)
}

// Outcome is the per-file result of one unit of work.
// Exactly one of Result (when Succeeded) or Message (when failed) is meaningful.
type Outcome struct {
	Succeeded bool
	Result    ChecksumResult
	Message   string
	Err       error

	// Sequence is the processed-counter value assigned when the outcome was finalized.
	Sequence int64
}

// Path returns the path of the file the outcome belongs to.
func (o Outcome) Path() string {
	return o.Result.Path
}

// NewSuccess builds a successful outcome.
func NewSuccess(result ChecksumResult, seq int64) Outcome {
	return Outcome{
		Succeeded: true,
		Result:    result,
		Sequence:  seq,
	}
}

// NewFailure builds a failed outcome for path. The checksum of a failed outcome is always zero.
func NewFailure(path string, err error, seq int64) Outcome {
	o := Outcome{
		Result:   ChecksumResult{Path: path},
		Err:      err,
		Sequence: seq,
	}
	if err != nil {
		o.Message = err.Error()
	}
	return o
}
