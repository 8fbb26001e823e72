package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cotlang/cotup/convert"
	"github.com/cotlang/cotup/formatter"
	tt "github.com/cotlang/cotup/internal/types"
)

var dryRun bool

var convertCmd = &cobra.Command{
	Use:   "convert [paths...]",
	Short: "Rewrite legacy fn main() parity tests as inline test blocks",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := convert.New(logger, cfgFile, dryRun)
		if err != nil {
			logger.Fatal("Failed to initialize conversion engine", zap.Error(err))
		}

		runConvert(ctx, engine, args, dryRun)
	},
}

func init() {
	convertCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print converted output without modifying files")
}

func runConvert(ctx context.Context, engine convert.Converter, paths []string, dryRun bool) {
	results, err := convert.ProcessFiles(ctx, logger, engine, paths)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}

	if dryRun {
		for _, r := range results {
			if r.Status == tt.Converted {
				fmt.Println(formatter.FormatPreview(r))
			}
		}
	}

	fmt.Print(formatter.FormatResults(results))

	summary := tt.Summarize(results)
	fmt.Print(formatter.FormatSummary(summary))

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
