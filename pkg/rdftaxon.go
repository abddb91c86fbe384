// Package rdftaxon converts the UniProt RDF/XML taxonomy dump into
// tab-delimited files ready for bulk loading into a relational database.
//
// The package declares the contracts between the conversion core and its
// collaborators. Implementations live in internal/io* packages.
package rdftaxon

// Converter runs one conversion of an RDF taxonomy file.
type Converter interface {
	// Convert reads the RDF file at inputPath and writes the taxonomy
	// table (and optionally the other names table). It returns nil on
	// success and a *gn.Error describing the failed phase otherwise.
	Convert(inputPath string) error
}

// Notifier receives human-readable notifications from the conversion
// core. Messages may contain gn markup tags (<em>, <warn>).
type Notifier interface {
	// Status reports normal progress: chosen paths, periodic progress,
	// totals and completion.
	Status(format string, args ...any)

	// Warning reports a recoverable condition, usually a skipped block.
	Warning(format string, args ...any)

	// Error reports a fatal error of a conversion phase.
	Error(err error)
}
