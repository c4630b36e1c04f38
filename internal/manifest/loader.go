package manifest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrNoRows = errors.New("manifest must contain a header row and at least one data row")

// Loader reads batch manifests (CSV, JSONL or Parquet)
type Loader struct {
	path string
}

// NewLoader creates a new manifest loader
func NewLoader(path string) *Loader {
	return &Loader{
		path: path,
	}
}

// Load reads every row of the manifest
func (l *Loader) Load() ([]Row, error) {
	return l.LoadSample(0)
}

// LoadSample reads at most limit rows. A limit of zero or less reads everything.
func (l *Loader) LoadSample(limit int) ([]Row, error) {
	ext := strings.ToLower(filepath.Ext(l.path))

	var (
		rows []Row
		err  error
	)
	switch ext {
	case ".csv":
		rows, err = l.loadCSV()
	case ".jsonl", ".json":
		rows, err = l.loadJSONL(limit)
	case ".parquet":
		rows, err = l.loadParquet(limit)
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s (supported: .csv, .jsonl, .parquet)", ext)
	}
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	slog.Debug("Loaded manifest", "path", l.path, "rows", len(rows))
	return rows, nil
}

func (l *Loader) loadCSV() ([]Row, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer file.Close()

	return ParseCSV(file)
}

// ParseCSV reads a header-mapped CSV manifest. A leading UTF-8 byte order mark
// is dropped, values are trimmed and rows whose column count differs from the
// header are skipped.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrNoRows
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []Row
	for i, record := range records[1:] {
		if len(record) != len(headers) {
			slog.Warn("Row has mismatched column count, skipping", "row", i+2, "columns", len(record), "expected", len(headers))
			continue
		}

		var row Row
		for j, value := range record {
			row.set(headers[j], strings.TrimSpace(value))
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (l *Loader) loadJSONL(limit int) ([]Row, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer file.Close()

	var rows []Row
	scanner := bufio.NewScanner(file)

	lineNum := 0
	for scanner.Scan() {
		if limit > 0 && len(rows) >= limit {
			break
		}
		lineNum++

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var row Row
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading manifest: %w", err)
	}

	return rows, nil
}

func (l *Loader) loadParquet(limit int) ([]Row, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet manifest opened", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[Row](pf)
	defer reader.Close()

	var rows []Row
	buf := make([]Row, 128)
	for limit <= 0 || len(rows) < limit {
		n, err := reader.Read(buf)
		rows = append(rows, buf[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	return rows, nil
}
