// Package output writes run results to files: the accepted games as
// csv rows and an optional xlsx report with the run summary.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/multierr"

	"github.com/dmfelipe/lotogen/internal/lottery"
)

// WriteGamesCSV writes one row per game, in acceptance order.
func WriteGamesCSV(path string, games []lottery.Game) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	w := csv.NewWriter(f)
	for _, game := range games {
		row := make([]string, len(game))
		for i, n := range game {
			row[i] = strconv.FormatInt(n, 10)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
