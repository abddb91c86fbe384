package cmd

import (
	"github.com/gnames/rdftaxon/pkg/config"
	"github.com/spf13/cobra"
)

// boolFlag connects a boolean flag to the option it sets.
type boolFlag struct {
	name  string
	short string
	usage string
	opt   func(bool) config.Option
	value func(config.OutputConfig) bool
}

var boolFlags = []boolFlag{
	{
		name: "rank", usage: "add Rank column",
		opt:   config.OptWithRank,
		value: func(o config.OutputConfig) bool { return o.WithRank },
	},
	{
		name: "parents", usage: "add parent name and ID columns",
		opt:   config.OptWithParents,
		value: func(o config.OutputConfig) bool { return o.WithParents },
	},
	{
		name: "grandparents", usage: "add grandparent name and ID columns (implies --parents)",
		opt:   config.OptWithGrandparents,
		value: func(o config.OutputConfig) bool { return o.WithGrandparents },
	},
	{
		name: "common-name", usage: "add Common_Name column",
		opt:   config.OptWithCommonName,
		value: func(o config.OutputConfig) bool { return o.WithCommonName },
	},
	{
		name: "synonym", usage: "add Synonym column",
		opt:   config.OptWithSynonym,
		value: func(o config.OutputConfig) bool { return o.WithSynonym },
	},
	{
		name: "mnemonic", usage: "add Mnemonic column",
		opt:   config.OptWithMnemonic,
		value: func(o config.OutputConfig) bool { return o.WithMnemonic },
	},
	{
		name: "other-names", usage: "save alternate names to a separate file",
		opt:   config.OptWithOtherNames,
		value: func(o config.OutputConfig) bool { return o.WithOtherNames },
	},
	{
		name: "postgres", short: "p",
		usage: `format for PostgreSQL COPY (\N for missing values, doubled backslashes)`,
		opt:   config.OptPostgres,
		value: func(o config.OutputConfig) bool { return o.Postgres },
	},
}

func addFlags(cmd *cobra.Command) {
	def := config.New()
	fs := cmd.Flags()

	fs.StringP("output", "o", "",
		"taxonomy table path (default: <input-basename>_info.txt)")
	fs.String("other-names-output", "",
		"alternate names table path (default: <output>_OtherNames<ext>)")
	fs.String("pk-suffix", def.Output.PrimaryKeySuffix,
		"suffix of Term_PK values")

	for _, v := range boolFlags {
		fs.BoolP(v.name, v.short, v.value(def.Output), v.usage)
	}

	fs.BoolP("quiet", "q", def.Quiet, "suppress status messages")
	fs.Bool("progress", def.WithProgressBar, "show progress bar while parsing")
	fs.StringP("config", "c", "",
		"config file (default: ~/.config/rdftaxon/config.yaml)")
	fs.String("dump-config", "",
		"save effective configuration to a YAML file")
}

// flagOptions converts explicitly set flags to options, so flags that
// were not used do not override config file and environment settings.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	fs := cmd.Flags()

	for _, v := range boolFlags {
		if fs.Changed(v.name) {
			b, _ := fs.GetBool(v.name)
			res = append(res, v.opt(b))
		}
	}

	if fs.Changed("pk-suffix") {
		s, _ := fs.GetString("pk-suffix")
		res = append(res, config.OptPrimaryKeySuffix(s))
	}

	if fs.Changed("output") {
		s, _ := fs.GetString("output")
		res = append(res, config.OptOutputPath(s))
	}

	if fs.Changed("other-names-output") {
		s, _ := fs.GetString("other-names-output")
		res = append(res, config.OptOtherNamesPath(s))
	}

	if fs.Changed("quiet") {
		b, _ := fs.GetBool("quiet")
		res = append(res, config.OptQuiet(b))
	}

	if fs.Changed("progress") {
		b, _ := fs.GetBool("progress")
		res = append(res, config.OptWithProgressBar(b))
	}

	return res
}
