package cli

import (
	"github.com/spf13/cobra"

	"github.com/confluence-tools/confluence-md-export/pkg/config"
	"github.com/confluence-tools/confluence-md-export/pkg/confluence"
	"github.com/confluence-tools/confluence-md-export/pkg/export"
	"github.com/confluence-tools/confluence-md-export/pkg/logging"
	"github.com/confluence-tools/confluence-md-export/pkg/names"
)

var (
	urlFile   string
	outputDir string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Fetch the listed pages and append them to a Markdown file",
	Long: `Reads page URLs from the URL list (one per line, blank lines ignored),
fetches each page with the credentials from the environment or .env file, and
appends one formatted block per page to outputs/confluence_data_<timestamp>.md.
Unparseable URLs and failed fetches are logged and skipped; the batch always
runs to the end of the list.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&urlFile, "urls", "urls.txt", "file with one page URL per line")
	exportCmd.Flags().StringVar(&outputDir, "output-dir", "./outputs", "directory the output file is written into")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	// Environment values apply where the flag was left at its default.
	if !cmd.Flags().Changed("urls") && cfg.URLFile != "" {
		urlFile = cfg.URLFile
	}
	if !cmd.Flags().Changed("output-dir") && cfg.OutputDir != "" {
		outputDir = cfg.OutputDir
	}
	if !rootCmd.PersistentFlags().Changed("log-level") && cfg.LogLevel != "" {
		logging.Setup(logging.Config{
			Level:  logging.LogLevel(cfg.LogLevel),
			Pretty: pretty,
			Output: cmd.ErrOrStderr(),
		})
	}

	urls, err := export.ReadURLList(urlFile)
	if err != nil {
		return err
	}

	client, err := confluence.New(confluence.DefaultConfig(cfg.UserName, cfg.APIToken))
	if err != nil {
		return err
	}
	resolver := names.NewResolver(client, names.NewCache())
	exporter := export.New(client, resolver, outputDir)

	cmd.Printf("Exporting %d pages...\n", len(urls))

	summary, err := exporter.Run(cmd.Context(), urls, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	cmd.Printf("Done: %d exported, %d skipped -> %s\n",
		summary.Processed, summary.Skipped, summary.OutputPath)
	return nil
}
