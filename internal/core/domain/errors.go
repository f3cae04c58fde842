package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidArgument is returned when a path or source argument is nil or blank.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrOperationCanceled is returned by the checksum engine when the cancellation signal is observed
	// before the whole source has been consumed.
	ErrOperationCanceled = zerr.New("operation canceled")

	// ErrArithmeticOverflow is returned when a byte sum no longer fits into an unsigned 64-bit integer.
	ErrArithmeticOverflow = zerr.New("checksum overflows uint64")

	// ErrNotADirectory is returned when the scan root exists but is not a directory.
	ErrNotADirectory = zerr.New("scan root is not a directory")

	// ErrScanInProgress is returned when Scan is called on a dispatcher that is already scanning.
	ErrScanInProgress = zerr.New("scan already in progress")

	// ErrUnknownReportFormat is returned when a report format other than xml, json or yaml is requested.
	ErrUnknownReportFormat = zerr.New("unknown report format, expected 'xml', 'json' or 'yaml'")

	// ErrReportWriteFailed is returned when the report file cannot be created or written.
	ErrReportWriteFailed = zerr.New("failed to write report")

	// ErrConfigReadFailed is returned when the config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")
)
