// Package config provides configuration management for RDFtaxon.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Output: with_rank, with_parents, with_grandparents, with_common_name,
//     with_synonym, with_mnemonic, with_other_names, postgres,
//     primary_key_suffix
//   - Log: level, format, destination
//   - General: quiet, with_progress_bar
//
// Runtime-only fields (CLI flags only):
//   - InputPath, OutputPath, OtherNamesPath (per-run)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use RDFTAXON_ prefix with underscores for nesting:
//
//	RDFTAXON_OUTPUT_POSTGRES=true
//	RDFTAXON_OUTPUT_PRIMARY_KEY_SUFFIX=NEWT1
//	RDFTAXON_LOG_LEVEL=info
//	RDFTAXON_QUIET=true
package config

// DefaultPrimaryKeySuffix is appended to a term identifier to create
// the value of the Term_PK column.
const DefaultPrimaryKeySuffix = "NEWT1"

// PostgresNull is the null marker understood by the PostgreSQL COPY
// command.
const PostgresNull = `\N`

// Config represents the complete RDFtaxon configuration.
type Config struct {
	// Output contains settings that shape the generated tables.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Quiet suppresses status messages on the console. Warnings, errors
	// and the log file are not affected.
	Quiet bool `mapstructure:"quiet" yaml:"quiet"`

	// WithProgressBar shows a progress bar of the bytes read from the
	// input file instead of periodic status messages.
	WithProgressBar bool `mapstructure:"with_progress_bar" yaml:"with_progress_bar"`

	// InputPath is the RDF/XML taxonomy file to convert.
	InputPath string `mapstructure:"-" yaml:"-"`

	// OutputPath is the taxonomy table file. If empty, it is created next
	// to the input file as <input-basename>_info.txt.
	OutputPath string `mapstructure:"-" yaml:"-"`

	// OtherNamesPath is the alternate names table file. If empty, it is
	// created next to the output as <output-basename>_OtherNames<ext>.
	OtherNamesPath string `mapstructure:"-" yaml:"-"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// OutputConfig determines which columns are written and how values are
// formatted.
type OutputConfig struct {
	// WithRank adds the Rank column (family, genus, species, etc.).
	WithRank bool `mapstructure:"with_rank" yaml:"with_rank"`

	// WithParents adds Parent_Term_Name and Parent_Term_ID columns.
	WithParents bool `mapstructure:"with_parents" yaml:"with_parents"`

	// WithGrandparents adds Grandparent_Term_Name and Grandparent_Term_ID
	// columns. It implies WithParents.
	WithGrandparents bool `mapstructure:"with_grandparents" yaml:"with_grandparents"`

	// WithCommonName adds the Common_Name column.
	WithCommonName bool `mapstructure:"with_common_name" yaml:"with_common_name"`

	// WithSynonym adds the Synonym column.
	WithSynonym bool `mapstructure:"with_synonym" yaml:"with_synonym"`

	// WithMnemonic adds the Mnemonic column (a five letter abbreviation of
	// the scientific name, for example HUMAN for Homo sapiens).
	WithMnemonic bool `mapstructure:"with_mnemonic" yaml:"with_mnemonic"`

	// WithOtherNames creates a second file with alternate names of terms.
	WithOtherNames bool `mapstructure:"with_other_names" yaml:"with_other_names"`

	// Postgres uses \N for null values and escapes backslashes, so the
	// file can be imported with
	// COPY ... CSV HEADER DELIMITER E'\t' QUOTE '"'.
	Postgres bool `mapstructure:"postgres" yaml:"postgres"`

	// PrimaryKeySuffix is appended to the identifier in Term_PK column.
	// Empty string means no suffix.
	PrimaryKeySuffix string `mapstructure:"primary_key_suffix" yaml:"primary_key_suffix"`
}

// NullMarker returns the value written for missing data.
func (o OutputConfig) NullMarker() string {
	if o.Postgres {
		return PostgresNull
	}
	return ""
}

// HasParents is true when parent columns are written. Grandparent
// columns force parent columns.
func (o OutputConfig) HasParents() bool {
	return o.WithParents || o.WithGrandparents
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Output: OutputConfig{
			WithRank:         true,
			WithParents:      true,
			WithGrandparents: true,
			WithCommonName:   true,
			WithSynonym:      true,
			WithMnemonic:     true,
			WithOtherNames:   true,
			PrimaryKeySuffix: DefaultPrimaryKeySuffix,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
