package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/muninndb/muninn/pkg/journal"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <journal-file>",
	Short: "Print the entries of a journal file",
	Long: `Dump decodes a journal file and prints one line per entry with its
identity fields, headers, and payload size.

Example:
  muninn dump data/journal/2zAb....journal`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := journal.OpenFileReader(nil, args[0])
		if err != nil {
			return err
		}
		defer reader.Close()

		it := reader.Iterator()
		for it.Next() {
			entry := it.Entry()
			fmt.Printf("log=%d entry=%d lac=%d attr=%d key=%q value_bytes=%d headers=%d\n",
				entry.LogID(), entry.EntryID(), entry.LastConfirmID(), entry.Attr(),
				entry.Key(), len(entry.Value()), len(entry.Headers()))
			for _, h := range entry.Headers() {
				fmt.Printf("  header %q=%q\n", h.Key(), h.Value())
			}
		}
		if err := it.Err(); err != io.EOF {
			return fmt.Errorf("journal %s: %w", args[0], err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
