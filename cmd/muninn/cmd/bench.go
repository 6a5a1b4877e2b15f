package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/muninndb/muninn/pkg/codec"
	"github.com/muninndb/muninn/pkg/journal"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark journal append throughput",
	Long: `Bench appends synthetic entries to a fresh journal file in the data
directory and reports throughput.

Example:
  muninn bench --entries 100000 --value-size 1024`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, _ := cmd.Flags().GetInt("entries")
		valueSize, _ := cmd.Flags().GetInt("value-size")
		syncEvery, _ := cmd.Flags().GetInt("sync-every")
		if syncEvery == 0 && cfg.Journal.SyncOnAppend {
			syncEvery = 1
		}

		sink, err := journal.CreateFileSink(nil, cfg.DataDir)
		if err != nil {
			return err
		}
		writer, err := journal.NewWriter(journal.WriterConfig{
			Sink:       sink,
			BufferSize: cfg.Journal.BufferSize,
		})
		if err != nil {
			return err
		}
		logger.Info("benchmark starting", "file", sink.Path(),
			"entries", entries, "value_size", valueSize)

		value := bytes.Repeat([]byte("x"), valueSize)
		start := time.Now()
		for i := 0; i < entries; i++ {
			entry, err := codec.NewBuilder().
				LogID(1).
				EntryID(int64(i)).
				LastConfirmID(int64(i - 1)).
				KV([]byte("bench"), value).
				Build()
			if err != nil {
				return err
			}
			if err := writer.AppendEntry(entry); err != nil {
				return err
			}
			if syncEvery > 0 && (i+1)%syncEvery == 0 {
				if err := writer.Flush(); err != nil {
					return err
				}
				if err := writer.Sync(); err != nil {
					return err
				}
			}
		}
		if err := writer.Close(); err != nil {
			return err
		}
		elapsed := time.Since(start)

		seconds := elapsed.Seconds()
		fmt.Printf("appended %d entries (%d bytes) in %s\n", entries, writer.Size(), elapsed)
		fmt.Printf("%.0f entries/s, %.2f MiB/s\n",
			float64(entries)/seconds, float64(writer.Size())/seconds/(1<<20))
		return nil
	},
}

func init() {
	benchCmd.Flags().Int("entries", 100000, "Number of entries to append")
	benchCmd.Flags().Int("value-size", 1024, "Payload size per entry in bytes")
	benchCmd.Flags().Int("sync-every", 0, "Flush and sync every N entries (0 = only at close)")
	rootCmd.AddCommand(benchCmd)
}
