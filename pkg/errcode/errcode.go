package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Config errors
	ConfigReadError
	ConfigDumpError

	// Input errors
	InputMissingError
	InputNotFoundError
	InputOpenError

	// Parse errors
	ParseXMLError

	// Output errors
	OutputCreateError
	OutputWriteError
)
