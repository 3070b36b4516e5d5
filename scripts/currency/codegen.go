package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"
)

type currency struct {
	Name  string
	Code  string
	Num   string
	Scale int
}

func main() {
	dir := filepath.Join("scripts", "currency")

	recs, err := readCsvFile(filepath.Join(dir, "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("reading CSV file: %w", err))
	}

	currs, err := convertRecords(recs)
	if err != nil {
		panic(fmt.Errorf("converting records: %w", err))
	}

	code, err := generateGoCode(filepath.Join(dir, "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("generating Go code: %w", err))
	}

	if err := os.WriteFile("currency_data.go", code, 0o644); err != nil { //nolint:gosec
		panic(fmt.Errorf("writing Go code: %w", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = 4
	if _, err := reader.Read(); err != nil { // header
		return nil, err
	}
	return reader.ReadAll()
}

// convertRecords keeps XXX at index 0, so that it stays the zero value of
// Currency, followed by XTS and then the rest in alphabetical order.
func convertRecords(recs [][]string) ([]currency, error) {
	rank := func(code string) int {
		switch code {
		case "XXX":
			return 0
		case "XTS":
			return 1
		}
		return 2
	}
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i][1], recs[j][1]
		if rank(a) != rank(b) {
			return rank(a) < rank(b)
		}
		return a < b
	})

	currs := make([]currency, 0, len(recs))
	seen := make(map[string]bool, 2*len(recs))
	for _, rec := range recs {
		scale, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("currency %v: scale %q: %w", rec[1], rec[3], err)
		}
		if scale < 0 || scale > 4 {
			return nil, fmt.Errorf("currency %v: scale %v out of range", rec[1], scale)
		}
		for _, key := range []string{rec[1], rec[2]} {
			if seen[key] {
				return nil, fmt.Errorf("duplicate code %q", key)
			}
			seen[key] = true
		}
		currs = append(currs, currency{
			Name:  rec[0],
			Code:  rec[1],
			Num:   rec[2],
			Scale: scale,
		})
	}
	if len(currs) == 0 || currs[0].Code != "XXX" {
		return nil, fmt.Errorf("XXX must be present")
	}
	if len(currs) > 256 {
		return nil, fmt.Errorf("too many currencies: %v", len(currs))
	}
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	if err := tmpl.Execute(&output, currs); err != nil {
		return nil, err
	}

	return format.Source(output.Bytes())
}
