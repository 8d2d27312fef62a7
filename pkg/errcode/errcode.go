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
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Isotope registry errors
	UnknownIsotopeError
	SymbolCollisionError
	IsotopeDataError

	// Query errors
	MalformedQueryError
	UnknownMixingError

	// Method and resolution errors
	MethodValidationError
	SizeLimitError

	// Input file errors
	MethodFileError
	SystemFileError
	UnitError
	IsotopeImportError
)
