package domain

// Event is a progress notification emitted by the dispatcher during a scan.
type Event interface {
	isEvent()
}

// TotalCountKnown is emitted exactly once per scan, after enumeration and before any file is processed.
type TotalCountKnown struct {
	Root  string
	Count int64
}

func (TotalCountKnown) isEvent() {}

// FileProcessed is emitted once for every file whose unit of work completed without being canceled.
type FileProcessed struct {
	Outcome Outcome
}

func (FileProcessed) isEvent() {}
