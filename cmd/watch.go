package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cotlang/cotup/convert"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Watch directories and convert parity tests as they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide directory paths to watch")
			os.Exit(1)
		}

		engine, err := convert.New(logger, cfgFile, false)
		if err != nil {
			logger.Fatal("Failed to initialize conversion engine", zap.Error(err))
		}

		if err := engine.StartWatching(args); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		defer engine.StopWatching()

		logger.Info("watching for changes", zap.Strings("dirs", args))

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
	},
}
