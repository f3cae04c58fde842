package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.trai.ch/bytesum/internal/adapters/console"
	"go.trai.ch/bytesum/internal/adapters/tui"
	"go.trai.ch/bytesum/internal/app"
	"go.trai.ch/bytesum/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

const prompt = "Type a directory name: "

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Checksum every file below a directory and write a report",
		Long: "Checksum every file below a directory and write a report.\n" +
			"When no directory is given, it is read from standard input.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var root string
			if len(args) == 1 {
				root = args[0]
			} else {
				dir, err := promptDirectory(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				root = dir
			}

			opts, err := scanOptions(cmd)
			if err != nil {
				return err
			}

			useTUI, _ := cmd.Flags().GetBool("tui")
			var res *app.ScanResult
			if useTUI && isTerminal(cmd.OutOrStdout()) {
				res, err = c.scanWithTUI(cmd, root, opts)
			} else {
				opts.Listeners = append(opts.Listeners, console.NewPrinter(cmd.OutOrStdout(), verbose(cmd)))
				res, err = c.app.Scan(cmd.Context(), root, opts)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%d files checksummed\n", res.Aggregate.Len())
			if !opts.NoReport {
				_, _ = fmt.Fprintf(out, "%s report written to %s\n", res.Format, res.ReportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringP("config", "c", "", "Path to the configuration file (default bytesum.yaml)")
	cmd.Flags().IntP("concurrency", "j", 0, "Maximum files processed at once, 0 for one goroutine per file")
	cmd.Flags().StringP("report", "o", "", "Report file path (default report.xml)")
	cmd.Flags().StringP("format", "f", "", "Report format: xml, json or yaml")
	cmd.Flags().Bool("no-report", false, "Do not write a report file")
	cmd.Flags().String("journal", "", "Record scan progress to this file as progrock status updates")
	cmd.Flags().BoolP("verbose", "v", false, "Also print failed files")
	cmd.Flags().Bool("tui", false, "Show an interactive progress view when attached to a terminal")

	return cmd
}

func scanOptions(cmd *cobra.Command) (app.ScanOptions, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	reportPath, _ := flags.GetString("report")
	format, _ := flags.GetString("format")
	noReport, _ := flags.GetBool("no-report")
	journal, _ := flags.GetString("journal")

	opts := app.ScanOptions{
		ConfigPath:  configPath,
		ReportPath:  reportPath,
		Format:      format,
		NoReport:    noReport,
		JournalPath: journal,
	}

	if flags.Changed("concurrency") {
		n, err := flags.GetInt("concurrency")
		if err != nil {
			return app.ScanOptions{}, err
		}
		opts.Concurrency = &n
	}

	return opts, nil
}

// scanWithTUI runs the scan behind the interactive progress view.
// Pressing c in the view cancels the scan; the partial result is still reported.
//
//nolint:gocritic // hugeParam ignored
func (c *CLI) scanWithTUI(cmd *cobra.Command, root string, opts app.ScanOptions) (*app.ScanResult, error) {
	renderer := tui.NewRenderer(
		tui.NewModel(c.app.Cancel),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	renderer.Start()

	opts.Listeners = append(opts.Listeners, renderer)
	res, err := c.app.Scan(cmd.Context(), root, opts)
	renderer.Finish(err)

	if _, tuiErr := renderer.Wait(); tuiErr != nil && err == nil {
		c.logger.Warn("progress view exited: " + tuiErr.Error())
	}
	return res, err
}

func verbose(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("verbose")
	return v
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// promptDirectory asks for a directory until an existing one is entered.
func promptDirectory(in io.Reader, out io.Writer) (string, error) {
	scanner := bufio.NewScanner(in)
	for {
		_, _ = io.WriteString(out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", zerr.Wrap(err, "failed to read directory name")
			}
			return "", zerr.Wrap(domain.ErrInvalidArgument, "no directory given")
		}

		dir := strings.TrimSpace(scanner.Text())
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
		_, _ = fmt.Fprintf(out, "%s is not a directory\n", dir)
	}
}
