package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dmfelipe/lotogen/internal/gen"
	"github.com/dmfelipe/lotogen/internal/lottery"
)

// ExportRunXLSX writes a two-sheet workbook: Games with one row per
// accepted game, Summary with the run parameters and counters.
func ExportRunXLSX(path string, req gen.Request, res *gen.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	games := "Games"
	if err := f.SetSheetName("Sheet1", games); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"#", "N1", "N2", "N3", "N4", "N5", "N6", "Rank"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(games, cell, h)
	}
	for row, game := range res.Games {
		cell, _ := excelize.CoordinatesToCellName(1, row+2)
		f.SetCellValue(games, cell, row+1)
		for col, n := range game {
			cell, _ := excelize.CoordinatesToCellName(col+2, row+2)
			f.SetCellValue(games, cell, n)
		}
		cell, _ = excelize.CoordinatesToCellName(len(headers), row+2)
		f.SetCellValue(games, cell, lottery.GameRank(game))
	}

	summary := "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}
	rows := [][2]any{
		{"Target games", req.TargetGames},
		{"Initial games", res.Summary.Seeded},
		{"Seed", req.Seed},
		{"Min desired number", req.Rule.MinDesired},
		{"Max number", req.Rule.MaxNumber},
		{"Accepted", res.Summary.Accepted},
		{"Attempts", res.Summary.Attempts},
		{"Rejected (duplicate game)", res.Summary.DupGame},
		{"Rejected (out of range)", res.Summary.OutOfRange},
		{"Rejected (triplet clash)", res.Summary.TripletClash},
		{"Distinct triplets used", res.TripletRanks.Len()},
		{"Elapsed", res.Summary.Elapsed.String()},
	}
	for i, r := range rows {
		key, _ := excelize.CoordinatesToCellName(1, i+1)
		val, _ := excelize.CoordinatesToCellName(2, i+1)
		f.SetCellValue(summary, key, r[0])
		f.SetCellValue(summary, val, r[1])
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
