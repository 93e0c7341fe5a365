// Package commands implements the CLI for the k2build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/k2build/internal/app"
	"go.trai.ch/k2build/internal/build"
	"go.trai.ch/k2build/internal/core/domain"
)

// CLI represents the command line interface for k2build.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, ov domain.Overrides, flags domain.TaskFlags, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "k2build",
		Short: "Build k-mer/minimizer taxonomic classification databases",
		Long: `k2build resolves and validates the parameters for a k-mer/minimizer
taxonomic classification database and hands off to exactly one external
build program. Select exactly one task per invocation:

  --download-taxonomy       Download NCBI taxonomic information
  --download-library TYPE   Download one genomic library
                            (archaea, bacteria, plasmid, viral, plant,
                            protozoa, fungi, human, nr, nt, UniVec,
                            UniVec_Core)
  --add-to-library FILE     Add a FASTA file to the library
  --build                   Build the database from the library
  --standard                Download and build the standard database
  --clean                   Remove intermediate files from the database
  --special TYPE            Build one of the special 16S databases
                            (greengenes, silva, rdp)

Parameters not given as flags fall back to the inherited KRAKEN2_* environment
variables, then to mode-dependent defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected argument %q", domain.ErrBadUsage, args[0])
			}
			return nil
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help"

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", domain.ErrBadUsage, err)
	})

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	addConfigFlags(rootCmd.Flags())
	addTaskFlags(rootCmd.Flags())

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		return c.app.Run(
			cmd.Context(),
			overridesFrom(cmd.Flags()),
			taskFlagsFrom(cmd.Flags()),
			app.RunOptions{DryRun: dryRun},
		)
	}

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func addConfigFlags(f *pflag.FlagSet) {
	f.String("db", "", "Name of the database directory (required for most tasks)")
	f.Int("threads", domain.DefaultThreadCount, "Number of threads for the downstream build program")
	f.Int("kmer-len", 0, "K-mer length in bp/aa (default: 35 nt, 15 aa)")
	f.Int("minimizer-len", 0, "Minimizer length in bp/aa (default: 31 nt, 12 aa)")
	f.Int("minimizer-spaces", 0, "Number of characters in minimizer ignored in comparisons (default: 7 nt, 0 aa)")
	f.Bool("protein", false, "Build a protein database for translated search")
	f.Bool("masking", true, "Mask low-complexity sequences prior to building")
	f.Bool("no-masking", false, "Avoid masking low-complexity sequences prior to building")
	f.Int64("max-db-size", 0, "Maximum number of bytes for the hash table; no limit if unset")
	f.Bool("use-ftp", false, "Use FTP for downloading instead of RSYNC")
	f.Bool("skip-maps", false, "Avoid downloading accession number to taxid maps")
	f.Float64("load-factor", domain.DefaultLoadFactor, "Proportion of the hash table to be populated")
	f.Bool("fast-build", false, "Do not require database to be deterministically built when using multiple threads")
	f.Int("block-size", domain.DefaultBlockSize, "Block size used by the estimator")
	f.Int("subblock-size", 0, "Subblock size used by the estimator (default: block size over threads, rounded up)")
	f.Int("minimum-bits-for-taxid", 0, "Bit storage requested for taxid; 0 selects automatically")
	f.Int("update-interval", domain.DefaultUpdateInterval, "Progress update interval for the downstream build program")
	f.Bool("only-estimate", false, "Stop the build after hash table size estimation")
	f.Bool("dry-run", false, "Print the resolved configuration and dispatch plan without running anything")
}

func addTaskFlags(f *pflag.FlagSet) {
	f.Bool("download-taxonomy", false, "Download NCBI taxonomic information")
	f.String("download-library", "", "Download partial library (see --help for types)")
	f.String("add-to-library", "", "Add FILE to library")
	f.Bool("build", false, "Build database from library")
	f.Bool("standard", false, "Download and build default database")
	f.Bool("clean", false, "Remove unneeded files from database")
	f.String("special", "", "Build special database (greengenes, silva, rdp)")
}

// overridesFrom collects the explicitly changed configuration flags.
// Unchanged flags stay nil so lower-precedence tiers apply.
func overridesFrom(f *pflag.FlagSet) domain.Overrides {
	var ov domain.Overrides
	if f.Changed("db") {
		v, _ := f.GetString("db")
		ov.DBName = &v
	}
	if f.Changed("threads") {
		v, _ := f.GetInt("threads")
		ov.Threads = &v
	}
	if f.Changed("kmer-len") {
		v, _ := f.GetInt("kmer-len")
		ov.KmerLen = &v
	}
	if f.Changed("minimizer-len") {
		v, _ := f.GetInt("minimizer-len")
		ov.MinimizerLen = &v
	}
	if f.Changed("minimizer-spaces") {
		v, _ := f.GetInt("minimizer-spaces")
		ov.MinimizerSpaces = &v
	}
	if f.Changed("protein") {
		v, _ := f.GetBool("protein")
		ov.Protein = &v
	}
	// --no-masking wins over --masking when both are given
	switch {
	case f.Changed("no-masking"):
		noMask, _ := f.GetBool("no-masking")
		masking := !noMask
		ov.Masking = &masking
	case f.Changed("masking"):
		v, _ := f.GetBool("masking")
		ov.Masking = &v
	}
	if f.Changed("max-db-size") {
		v, _ := f.GetInt64("max-db-size")
		ov.MaxDBSize = &v
	}
	if f.Changed("use-ftp") {
		v, _ := f.GetBool("use-ftp")
		ov.UseFTP = &v
	}
	if f.Changed("skip-maps") {
		v, _ := f.GetBool("skip-maps")
		ov.SkipMaps = &v
	}
	if f.Changed("load-factor") {
		v, _ := f.GetFloat64("load-factor")
		ov.LoadFactor = &v
	}
	if f.Changed("fast-build") {
		v, _ := f.GetBool("fast-build")
		ov.FastBuild = &v
	}
	if f.Changed("block-size") {
		v, _ := f.GetInt("block-size")
		ov.BlockSize = &v
	}
	if f.Changed("subblock-size") {
		v, _ := f.GetInt("subblock-size")
		ov.SubblockSize = &v
	}
	if f.Changed("minimum-bits-for-taxid") {
		v, _ := f.GetInt("minimum-bits-for-taxid")
		ov.MinTaxidBits = &v
	}
	if f.Changed("update-interval") {
		v, _ := f.GetInt("update-interval")
		ov.UpdateInterval = &v
	}
	if f.Changed("only-estimate") {
		v, _ := f.GetBool("only-estimate")
		ov.OnlyEstimate = &v
	}
	return ov
}

func taskFlagsFrom(f *pflag.FlagSet) domain.TaskFlags {
	var tf domain.TaskFlags
	tf.DownloadTaxonomy, _ = f.GetBool("download-taxonomy")
	tf.DownloadLibrary, _ = f.GetString("download-library")
	tf.AddToLibrary, _ = f.GetString("add-to-library")
	tf.Build, _ = f.GetBool("build")
	tf.Standard, _ = f.GetBool("standard")
	tf.Clean, _ = f.GetBool("clean")
	tf.Special, _ = f.GetString("special")
	return tf
}
