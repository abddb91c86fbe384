package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptWithRank sets inclusion of the Rank column.
func OptWithRank(b bool) Option {
	return func(c *Config) {
		c.Output.WithRank = b
	}
}

// OptWithParents sets inclusion of parent term columns.
func OptWithParents(b bool) Option {
	return func(c *Config) {
		c.Output.WithParents = b
	}
}

// OptWithGrandparents sets inclusion of grandparent term columns.
// Parent columns are written whenever grandparent columns are.
func OptWithGrandparents(b bool) Option {
	return func(c *Config) {
		c.Output.WithGrandparents = b
	}
}

// OptWithCommonName sets inclusion of the Common_Name column.
func OptWithCommonName(b bool) Option {
	return func(c *Config) {
		c.Output.WithCommonName = b
	}
}

// OptWithSynonym sets inclusion of the Synonym column.
func OptWithSynonym(b bool) Option {
	return func(c *Config) {
		c.Output.WithSynonym = b
	}
}

// OptWithMnemonic sets inclusion of the Mnemonic column.
func OptWithMnemonic(b bool) Option {
	return func(c *Config) {
		c.Output.WithMnemonic = b
	}
}

// OptWithOtherNames sets creation of the other names file.
func OptWithOtherNames(b bool) Option {
	return func(c *Config) {
		c.Output.WithOtherNames = b
	}
}

// OptPostgres switches on formatting for PostgreSQL COPY command.
func OptPostgres(b bool) Option {
	return func(c *Config) {
		c.Output.Postgres = b
	}
}

// OptPrimaryKeySuffix sets the suffix of Term_PK values.
// Whitespace-only suffix is treated as no suffix.
func OptPrimaryKeySuffix(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if strings.ContainsAny(s, "\t\n\r") {
			warnInvalid("Primary Key Suffix", s)
			return
		}
		c.Output.PrimaryKeySuffix = s
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptQuiet suppresses console status messages.
func OptQuiet(b bool) Option {
	return func(c *Config) {
		c.Quiet = b
	}
}

// OptWithProgressBar shows a progress bar while the input is read.
func OptWithProgressBar(b bool) Option {
	return func(c *Config) {
		c.WithProgressBar = b
	}
}

// OptInputPath sets the RDF file to convert.
// Runtime-only field - not in ToOptions().
func OptInputPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Path", s) {
			c.InputPath = s
		}
	}
}

// OptOutputPath sets the taxonomy table path.
// Runtime-only field - not in ToOptions().
func OptOutputPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Path", s) {
			c.OutputPath = s
		}
	}
}

// OptOtherNamesPath sets the other names table path.
// Runtime-only field - not in ToOptions().
func OptOtherNamesPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Other Names Path", s) {
			c.OtherNamesPath = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
