package commands

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/openhwif/hwif-go/pkg/log"
)

// RunExport writes every event of the trace file to w in the given format.
func RunExport(path, format string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "run_id", "component", "category", "detail", "sequence", "duration_ns"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		var detail, seq, dur string
		switch {
		case event.Transition != nil:
			detail = event.Transition.From + "->" + event.Transition.To
		case event.Cycle != nil:
			seq = strconv.FormatUint(event.Cycle.Sequence, 10)
			dur = strconv.FormatInt(int64(event.Cycle.Duration), 10)
			if event.Cycle.Overrun {
				detail = "overrun"
			}
		case event.Error != nil:
			detail = event.Error.Stage.String() + ": " + event.Error.Message
			if event.Error.Sequence > 0 {
				seq = strconv.FormatUint(event.Error.Sequence, 10)
			}
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.RunID,
			event.Component,
			event.Category.String(),
			detail,
			seq,
			dur,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
}
