/*
Copyright © 2026 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/rdftaxon/internal/ioconvert"
	"github.com/gnames/rdftaxon/internal/iofs"
	"github.com/gnames/rdftaxon/internal/iologger"
	"github.com/gnames/rdftaxon/internal/ionotify"
	rdftaxon "github.com/gnames/rdftaxon/pkg"
	"github.com/gnames/rdftaxon/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			rdftaxon.Version, rdftaxon.Build),
		Use:   "rdftaxon [flags] taxonomy.rdf",
		Short: "Converts UniProt RDF taxonomy into tab-delimited tables",
		Long: `RDFtaxon converts the UniProt taxonomy dump in RDF/XML format into
tab-delimited text files ready for bulk loading into a relational
database.

The taxonomy table contains one line per taxon with its name, rank,
parent and grandparent, common name, synonym and mnemonic. Alternate
names are saved to a separate table. Top level taxa are attached to a
synthetic 'root' term with identifier 1.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (RDFTAXON_*)
  3. Config file (~/.config/rdftaxon/config.yaml)
  4. Built-in defaults

Environment variables:
  Nested fields use underscores (output.postgres → RDFTAXON_OUTPUT_POSTGRES).

  Examples:
    RDFTAXON_OUTPUT_POSTGRES            PostgreSQL COPY format
    RDFTAXON_OUTPUT_PRIMARY_KEY_SUFFIX  Suffix of Term_PK values
    RDFTAXON_LOG_LEVEL                  Log level (debug/info/warn/error)
    RDFTAXON_QUIET                      Suppress status messages

Examples:
  # Convert with default settings, output goes to taxonomy_info.txt
  rdftaxon taxonomy.rdf

  # Output for PostgreSQL COPY without synonyms and mnemonics
  rdftaxon -p --synonym=false --mnemonic=false taxonomy.rdf

  # Save effective settings for later use with --config
  rdftaxon --postgres --pk-suffix UNI --dump-config uniprot.yaml`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "rdftaxon version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for rdftaxon")

	addFlags(rootCmd)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with defaults, it is reconfigured later with
	// user's settings
	if err = iologger.Init(config.LogDir(homeDir), config.New().Log, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfgPath := config.ConfigFilePath(homeDir)
	if custom, _ := cmd.Flags().GetString("config"); custom != "" {
		cfgPath = custom
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(cfgPath); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, the log of the current
	// run is kept
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", cfgPath)

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	flagOpts := flagOptions(cmd)
	if len(args) > 0 {
		flagOpts = append(flagOpts, config.OptInputPath(args[0]))
	}
	cfg.Update(flagOpts)

	if dumpPath, _ := cmd.Flags().GetString("dump-config"); dumpPath != "" {
		if err := iofs.DumpConfig(dumpPath, cfg); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		gn.Info("Configuration is saved to <em>%s</em>", dumpPath)
		if cfg.InputPath == "" {
			return nil
		}
	}

	ntf := ionotify.New(cfg.Quiet)
	conv := ioconvert.New(cfg, ntf)

	// converter reports its errors through the notifier
	return conv.Convert(cfg.InputPath)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	_ = iologger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(cfgPath string) (*config.Config, error) {
	var err error
	v := viper.New()
	v.SetConfigFile(cfgPath)
	v.SetConfigType("yaml")

	// keys missing in the file keep their default values
	setDefaults(v, config.New())
	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ConfigReadError(cfgPath, err)
	}

	return &res, nil
}

func setDefaults(v *viper.Viper, def *config.Config) {
	o := def.Output
	v.SetDefault("output.with_rank", o.WithRank)
	v.SetDefault("output.with_parents", o.WithParents)
	v.SetDefault("output.with_grandparents", o.WithGrandparents)
	v.SetDefault("output.with_common_name", o.WithCommonName)
	v.SetDefault("output.with_synonym", o.WithSynonym)
	v.SetDefault("output.with_mnemonic", o.WithMnemonic)
	v.SetDefault("output.with_other_names", o.WithOtherNames)
	v.SetDefault("output.postgres", o.Postgres)
	v.SetDefault("output.primary_key_suffix", o.PrimaryKeySuffix)

	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.destination", def.Log.Destination)

	v.SetDefault("quiet", def.Quiet)
	v.SetDefault("with_progress_bar", def.WithProgressBar)
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("RDFTAXON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Output configuration
	v.BindEnv("output.with_rank")
	v.BindEnv("output.with_parents")
	v.BindEnv("output.with_grandparents")
	v.BindEnv("output.with_common_name")
	v.BindEnv("output.with_synonym")
	v.BindEnv("output.with_mnemonic")
	v.BindEnv("output.with_other_names")
	v.BindEnv("output.postgres")
	v.BindEnv("output.primary_key_suffix")

	// Log configuration
	v.BindEnv("log.level")
	v.BindEnv("log.format")
	v.BindEnv("log.destination")

	// General configuration
	v.BindEnv("quiet")
	v.BindEnv("with_progress_bar")

	v.AutomaticEnv()
}
