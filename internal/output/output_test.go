package output

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/dmfelipe/lotogen/internal/gen"
	"github.com/dmfelipe/lotogen/internal/lottery"
)

func TestWriteGamesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.csv")
	games := []lottery.Game{
		{1, 2, 3, 4, 5, 6},
		{10, 20, 30, 40, 50, 60},
	}

	if err := WriteGamesCSV(path, games); err != nil {
		t.Fatalf("WriteGamesCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := [][]string{
		{"1", "2", "3", "4", "5", "6"},
		{"10", "20", "30", "40", "50", "60"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("csv rows = %v, want %v", rows, want)
	}
}

func TestExportRunXLSX(t *testing.T) {
	req := gen.Request{
		TargetGames: 5,
		Seed:        42,
		Rule:        lottery.Rule{MinDesired: 1, MaxNumber: lottery.MaxNumber},
	}
	res, err := gen.New(zerolog.Nop()).Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := ExportRunXLSX(path, req, res); err != nil {
		t.Fatalf("ExportRunXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Games")
	if err != nil {
		t.Fatalf("read Games sheet: %v", err)
	}
	// header + one row per accepted game
	if len(rows) != len(res.Games)+1 {
		t.Errorf("Games sheet has %d rows, want %d", len(rows), len(res.Games)+1)
	}

	summary, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("read Summary sheet: %v", err)
	}
	if len(summary) == 0 {
		t.Error("Summary sheet is empty")
	}
}
