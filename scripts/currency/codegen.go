package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

type currency struct {
	Name   string
	Code   string
	Scale  int
	Symbol string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %w", err))
	}

	// Convert the CSV records to a list of currency objects
	currs, err := convertDataToCurrencies(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %w", err))
	}

	// Generate Go code from the currency objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %w", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %w", err))
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
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

// convertDataToCurrencies sorts records by code, keeping XXX first so that
// it becomes the zero value of the Currency type.
func convertDataToCurrencies(data [][]string) ([]currency, error) {
	sort.Slice(data, func(i, j int) bool {
		a, b := data[i][1], data[j][1]
		switch {
		case a == "XXX":
			return b != "XXX"
		case b == "XXX":
			return false
		}
		return a < b
	})
	if len(data) == 0 || data[0][1] != "XXX" {
		return nil, fmt.Errorf("currency XXX is missing")
	}
	if len(data) > 256 {
		return nil, fmt.Errorf("%v currencies do not fit into uint8", len(data))
	}

	currs := make([]currency, 0, len(data))
	seen := make(map[string]bool, len(data))
	for _, rec := range data {
		code := rec[1]
		if len(code) != 3 || strings.ToUpper(code) != code {
			return nil, fmt.Errorf("invalid code %q", code)
		}
		if seen[code] {
			return nil, fmt.Errorf("duplicate code %q", code)
		}
		seen[code] = true
		scale, err := strconv.Atoi(rec[2])
		if err != nil || scale < 0 || scale > 4 {
			return nil, fmt.Errorf("invalid scale %q for %v", rec[2], code)
		}
		currs = append(currs, currency{
			Name:   rec[0],
			Code:   code,
			Scale:  scale,
			Symbol: rec[3],
		})
	}
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
