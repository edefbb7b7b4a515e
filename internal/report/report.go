// Package report builds the per-category and master CSV summaries and
// archives state-level reports into each region's states folder.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/jszwec/csvutil"

	"github.com/openxpd/catalogctl/internal/catalog"
)

// categoryRow is the per-category CSV schema. Column order matches the
// struct field order.
type categoryRow struct {
	UUID         string `csv:"uuid"`
	Name         string `csv:"name"`
	GWP          string `csv:"gwp"`
	DeclaredUnit string `csv:"declared_unit"`
	Category     string `csv:"category"`
}

// masterRow is the all-regions CSV schema.
type masterRow struct {
	Region       string `csv:"region"`
	Category     string `csv:"category"`
	UUID         string `csv:"uuid"`
	Name         string `csv:"name"`
	GWP          string `csv:"gwp"`
	DeclaredUnit string `csv:"declared_unit"`
}

// BuildCategoryReport serializes records to CSV, sorted ascending by
// product name (case-sensitive); ties keep their encounter order. The
// header row is always present, even for zero records.
func BuildCategoryReport(records []catalog.ProductRecord) ([]byte, error) {
	rows := make([]categoryRow, len(records))
	for i, r := range records {
		rows[i] = categoryRow{
			UUID:         r.UUID,
			Name:         r.Name,
			GWP:          r.GWP,
			DeclaredUnit: r.DeclaredUnit,
			Category:     r.Category,
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Name < rows[j].Name
	})
	return encodeRows(categoryRow{}, rows)
}

// BuildMasterReport serializes records to CSV, sorted ascending by
// (region, category, name); remaining ties keep their encounter order.
func BuildMasterReport(records []catalog.ProductRecord) ([]byte, error) {
	rows := make([]masterRow, len(records))
	for i, r := range records {
		rows[i] = masterRow{
			Region:       r.Region,
			Category:     r.Category,
			UUID:         r.UUID,
			Name:         r.Name,
			GWP:          r.GWP,
			DeclaredUnit: r.DeclaredUnit,
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Name < b.Name
	})
	return encodeRows(masterRow{}, rows)
}

// encodeRows writes header plus rows through csvutil into a buffer.
// The csv writer uses plain \n line endings.
func encodeRows[T any](header T, rows []T) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	enc := csvutil.NewEncoder(w)
	if err := enc.EncodeHeader(header); err != nil {
		return nil, fmt.Errorf("encode header: %w", err)
	}
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return nil, fmt.Errorf("encode row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
