// Command export dumps a craft's stored snapshot history to an Excel
// workbook, one row per snapshot, one column per field.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"gw2-tracker/internal/config"
	"gw2-tracker/internal/database"
	"gw2-tracker/internal/snapshot"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"
)

var (
	craftID = flag.String("craft", "scholar_rune", "craft to export")
	start   = flag.String("start", "", "range start (RFC 3339), empty = unbounded")
	end     = flag.String("end", "", "range end (RFC 3339), empty = unbounded")
	outFile = flag.String("out", "history.xlsx", "output file path")
)

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	store := snapshot.NewStore(db)
	records, err := store.QueryRange(*craftID, *start, *end)
	if err != nil {
		log.Fatal("Query failed:", err)
	}
	if len(records) == 0 {
		log.Fatalf("No snapshots stored for %q in that range", *craftID)
	}

	// Column order: union of field names across all rows, sorted.
	fieldSet := map[string]bool{}
	for _, rec := range records {
		for name := range rec.Fields {
			fieldSet[name] = true
		}
	}
	fields := make([]string, 0, len(fieldSet))
	for name := range fieldSet {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := append([]string{"timestamp"}, fields...)
	for col, name := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	for row, rec := range records {
		cell, _ := excelize.CoordinatesToCellName(1, row+2)
		f.SetCellValue(sheet, cell, rec.Timestamp)
		for col, name := range fields {
			if value, ok := rec.Fields[name]; ok {
				cell, _ := excelize.CoordinatesToCellName(col+2, row+2)
				f.SetCellValue(sheet, cell, value)
			}
		}
	}

	if err := f.SaveAs(*outFile); err != nil {
		log.Fatal("Failed to write workbook:", err)
	}
	fmt.Printf("Exported %d snapshots for %s to %s\n", len(records), *craftID, *outFile)
}
