package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, InputPath, OutputPath,
// OtherNamesPath).
// Boolean fields are always included, because false is a meaningful
// value for them.
func (c *Config) ToOptions() []Option {
	o := c.Output
	res := []Option{
		OptWithRank(o.WithRank),
		OptWithParents(o.WithParents),
		OptWithGrandparents(o.WithGrandparents),
		OptWithCommonName(o.WithCommonName),
		OptWithSynonym(o.WithSynonym),
		OptWithMnemonic(o.WithMnemonic),
		OptWithOtherNames(o.WithOtherNames),
		OptPostgres(o.Postgres),
		OptPrimaryKeySuffix(o.PrimaryKeySuffix),
	}

	var s string
	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	res = append(res,
		OptQuiet(c.Quiet),
		OptWithProgressBar(c.WithProgressBar),
	)
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func warnInvalid(name, s string) {
	gn.Warn("<em>%s</em> has invalid value %q, ignoring", name, s)
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
