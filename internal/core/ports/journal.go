package ports

// ProgressJournal is a ProgressListener that persists what it receives.
type ProgressJournal interface {
	ProgressListener
	Close() error
}

// JournalOpener creates progress journals.
//
//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks
type JournalOpener interface {
	// Open creates or truncates the journal file at path.
	Open(path string) (ProgressJournal, error)
}
