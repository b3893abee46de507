package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldFormat = "format"

	// Load fields.
	FieldStrategy   = "strategy"
	FieldGeneration = "generation"
	FieldEncoding   = "encoding"

	// Progress fields.
	FieldPhase = "phase"
	FieldDone  = "done"
	FieldTotal = "total"

	// Statistics fields.
	FieldLines    = "lines"
	FieldItems    = "items"
	FieldSpacers  = "spacers"
	FieldBanners  = "banners"
	FieldFolders  = "folders"
	FieldLeaves   = "leaves"
	FieldMaxDepth = "max_depth"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
