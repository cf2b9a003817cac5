package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/chatrecords/internal/document"
	"github.com/mmynk/chatrecords/pkg/logging"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	logLevel string
	format   string
)

var rootCmd = &cobra.Command{
	Use:   "recordctl",
	Short: "Build and inspect chat records",
	Long:  `recordctl builds user profiles and group descriptors, and decodes documents from the document store into records.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.SetupWithLevel(logging.ParseLevel(logLevel))
		if format != formatText && format != formatJSON {
			return fmt.Errorf("unsupported format %q (want %s or %s)", format, formatText, formatJSON)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", os.Getenv("LOG_LEVEL"),
		"log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&format, "format", formatText,
		"output format: text or json")
}

// printRecord writes the record's diagnostic string, or its document as JSON.
func printRecord(w io.Writer, record fmt.Stringer) error {
	if format == formatText {
		_, err := fmt.Fprintln(w, record.String())
		return err
	}

	doc, err := document.Encode(record)
	if err != nil {
		return err
	}
	data, err := document.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
