package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/TURKZEN/english-turkish-dictionary/internal/cli"
	"github.com/TURKZEN/english-turkish-dictionary/internal/config"
	"github.com/TURKZEN/english-turkish-dictionary/internal/dictionary"
	"github.com/TURKZEN/english-turkish-dictionary/internal/dictionary/remote"
	"github.com/TURKZEN/english-turkish-dictionary/internal/progress"
)

type lookupOptions struct {
	configFile     string
	debugMode      bool
	dictionaryPath string
	dictionaryURL  string
	format         cli.Format
	noProgress     bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := lookupOptions{
		format: cli.FormatText,
	}

	rootCommand := &cobra.Command{
		Use:   "sozluk <word>",
		Short: "Look up an English word in the English-Turkish dictionary",
		Long: `Look up an English word in the English-Turkish dictionary.

The dictionary is a JSON file. When it does not exist locally and a
dictionary URL is configured, it is downloaded once and kept on disk.
No URL is configured by default, so a missing dictionary is an error
until one is set with --dictionary-url, the dictionary.url config key
or SOZLUK_DICTIONARY_URL.`,
		Version:       version,
		Args:          exactlyOneWord,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(stderr, opts.debugMode)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args[0], opts, stdout, stderr)
		},
	}
	rootCommand.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	flags := rootCommand.Flags()
	flags.StringVar(&opts.configFile, "config", "", "config file path")
	flags.BoolVar(&opts.debugMode, "debug", false, "Enable debug mode")
	flags.StringVarP(&opts.dictionaryPath, "dictionary-path", "p", "", "local dictionary file (overrides config)")
	flags.StringVarP(&opts.dictionaryURL, "dictionary-url", "u", "", "URL to download the dictionary from when the local file is missing (overrides config)")
	flags.VarP(&opts.format, "format", "o", fmt.Sprintf("output format. Possible values are %v", cli.AllFormats))
	flags.BoolVar(&opts.noProgress, "no-progress", false, "do not show download progress")

	return rootCommand
}

func runLookup(cmd *cobra.Command, word string, opts lookupOptions, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	var format cli.Format
	if err := format.Set(cfg.Presentation.Format); err != nil {
		return fmt.Errorf("format.Set > %w", err)
	}

	loaderOptions := []dictionary.LoaderOption{
		dictionary.WithFetcher(remote.NewClient("sozluk/" + version)),
	}
	if f, ok := stderr.(*os.File); ok && !opts.noProgress && progress.IsTerminal(f) {
		loaderOptions = append(loaderOptions, dictionary.WithProgress(progress.NewBar(stderr, "Downloading dictionary")))
	}

	loader := dictionary.NewLoader(dictionary.LoaderConfig{
		Path: cfg.Dictionary.Path,
		URL:  cfg.Dictionary.URL,
	}, loaderOptions...)
	dict, err := loader.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("loader.Load > %w", err)
	}

	matches := dict.Search(word)
	return cli.NewFormatter(stdout, format, cfg.Presentation.Placeholder).Print(word, matches)
}

func loadConfig(cmd *cobra.Command, opts lookupOptions) (*config.Config, error) {
	loader, err := config.NewConfigLoader(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("dictionary-path") {
		cfg.Dictionary.Path = opts.dictionaryPath
	}
	if cmd.Flags().Changed("dictionary-url") {
		cfg.Dictionary.URL = opts.dictionaryURL
	}
	if cmd.Flags().Changed("format") {
		cfg.Presentation.Format = opts.format.String()
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
