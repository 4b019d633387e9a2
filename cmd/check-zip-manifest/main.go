package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/cobra"
	"github.com/yuya-takeyama/check-zip-manifest/internal/logging"
	"github.com/yuya-takeyama/check-zip-manifest/pkg/archive"
	"github.com/yuya-takeyama/check-zip-manifest/pkg/differ"
	"github.com/yuya-takeyama/check-zip-manifest/pkg/manifest"
	"github.com/yuya-takeyama/check-zip-manifest/pkg/s3client"
	"github.com/yuya-takeyama/check-zip-manifest/pkg/source"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

const (
	exitOK          = 0
	exitDifferences = 1
	exitError       = 2
)

type checkConfig struct {
	zipPath          string
	manifestIn       string
	excludes         []string
	ignoreBlankLines bool
	jsonFile         string
	profile          string
	region           string
	verbose          bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	var cfg checkConfig
	var result differ.Result

	rootCmd := &cobra.Command{
		Use:   "check-zip-manifest <zip_path> <manifest_in>",
		Short: "Compare the entries of a zip archive against a manifest",
		Long: `check-zip-manifest lists the entries of a zip archive and compares them with
a manifest holding one expected entry name per line. Added and removed entries
are printed and the exit status is 1 when the two differ.`,
		Version:       fmt.Sprintf("%s (commit: %s, built at: %s by %s)", version, commit, date, builtBy),
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.zipPath = args[0]
			cfg.manifestIn = args[1]

			var err error
			result, err = run(cmd.Context(), &cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return err
		},
	}

	rootCmd.Flags().StringSliceVar(&cfg.excludes, "exclude", nil, "Exclude entries matching pattern from both sides (multiple allowed)")
	rootCmd.Flags().BoolVar(&cfg.ignoreBlankLines, "ignore-blank-lines", false, "Skip manifest lines that are empty after trimming")
	rootCmd.Flags().StringVar(&cfg.jsonFile, "json-file", "", "Path to output the comparison as JSON file")
	rootCmd.Flags().StringVar(&cfg.profile, "profile", "", "AWS profile to use for s3:// inputs")
	rootCmd.Flags().StringVar(&cfg.region, "region", "", "AWS region (uses default if not specified)")
	rootCmd.Flags().BoolVarP(&cfg.verbose, "verbose", "v", false, "Print diagnostics to stderr")

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	if result.HasDifferences() {
		return exitDifferences
	}
	return exitOK
}

func run(ctx context.Context, cfg *checkConfig, stdout, stderr io.Writer) (differ.Result, error) {
	logger := logging.New(stderr, cfg.verbose)

	if err := differ.ValidatePatterns(cfg.excludes); err != nil {
		return differ.Result{}, err
	}

	opener, err := newOpener(ctx, cfg, logger)
	if err != nil {
		return differ.Result{}, err
	}

	expected, err := readManifest(ctx, opener, cfg)
	if err != nil {
		return differ.Result{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	logger.Debug("read manifest", "path", cfg.manifestIn, "entries", len(expected))

	actual, err := listArchive(ctx, opener, cfg.zipPath)
	if err != nil {
		return differ.Result{}, fmt.Errorf("failed to list archive: %w", err)
	}
	logger.Debug("listed archive", "path", cfg.zipPath, "entries", len(actual))

	if expected, err = differ.FilterExcluded(expected, cfg.excludes); err != nil {
		return differ.Result{}, err
	}
	if actual, err = differ.FilterExcluded(actual, cfg.excludes); err != nil {
		return differ.Result{}, err
	}

	result := differ.Compare(expected, actual)
	logger.Debug("compared entries", "added", len(result.Added), "removed", len(result.Removed))

	if cfg.jsonFile != "" {
		if err := differ.WriteJSON(cfg.jsonFile, result); err != nil {
			return differ.Result{}, fmt.Errorf("failed to write result JSON: %w", err)
		}
	}

	if err := differ.WriteReport(stdout, result); err != nil {
		return differ.Result{}, err
	}

	return result, nil
}

func newOpener(ctx context.Context, cfg *checkConfig, logger *slog.Logger) (*source.Opener, error) {
	opts := []source.Option{source.WithLogger(logger)}
	if !source.HasS3Location(cfg.zipPath, cfg.manifestIn) {
		return source.NewOpener(nil, opts...), nil
	}

	var configOpts []func(*config.LoadOptions) error
	if cfg.profile != "" {
		configOpts = append(configOpts, config.WithSharedConfigProfile(cfg.profile))
	}
	if cfg.region != "" {
		configOpts = append(configOpts, config.WithRegion(cfg.region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return source.NewOpener(s3client.NewAWSClient(awsCfg), opts...), nil
}

func readManifest(ctx context.Context, opener *source.Opener, cfg *checkConfig) ([]string, error) {
	r, err := opener.OpenReader(ctx, cfg.manifestIn)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return manifest.Read(r, manifest.Options{IgnoreBlankLines: cfg.ignoreBlankLines})
}

func listArchive(ctx context.Context, opener *source.Opener, location string) ([]string, error) {
	f, err := opener.OpenFile(ctx, location)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := archive.List(f, f.Size())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	return names, nil
}
