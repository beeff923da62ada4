package storage

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/telari/stagecue/internal/sampler"
)

// WriteTraceCSV flattens sampled traces into one CSV: a row per performer
// per sample. Off-stage samples keep empty x/y cells rather than fake zeros.
func WriteTraceCSV(path string, traces []sampler.Trace) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write([]string{"time", "slot", "layer", "x", "y"}); err != nil {
		return err
	}

	for _, tr := range traces {
		for i := range tr.Times {
			row := []string{
				strconv.FormatFloat(tr.Times[i], 'f', 6, 64),
				strconv.Itoa(tr.Slot),
				tr.Active[i],
				"",
				"",
			}
			if tr.OnStage[i] {
				row[3] = strconv.FormatFloat(tr.X[i], 'f', 6, 64)
				row[4] = strconv.FormatFloat(tr.Y[i], 'f', 6, 64)
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}
