package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/chatrecords/internal/document"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <user|group> [file]",
	Short: "Decode a JSON document into a record",
	Long:  `Reads a JSON document from file, or stdin when no file is given, and prints the record it maps to.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := document.ParseKind(args[0])
		if err != nil {
			return err
		}

		var data []byte
		if len(args) == 2 {
			data, err = os.ReadFile(args[1])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}

		doc, err := document.Unmarshal(data)
		if err != nil {
			return err
		}
		record, err := document.Decode(kind, doc)
		if err != nil {
			return err
		}

		slog.Debug("Decoded document", "kind", kind, "keys", len(doc.GetFields()))
		return printRecord(cmd.OutOrStdout(), record)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
