// Package reader decodes uploaded tabular files (CSV or single-sheet
// spreadsheets) into an in-memory Table. The first row is always the header.
package reader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bretcon-dev/bretcon/internal/model"
)

// Decoder converts a raw tabular file into a Table.
type Decoder interface {
	Decode(r io.Reader) (*model.Table, error)
	Extensions() []string
}

// Registry holds decoders keyed by file extension.
type Registry struct {
	decoders map[string]Decoder
}

// FileInfo describes a tabular file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty decoder registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]Decoder)}
}

// Register adds a decoder. Panics on duplicate extension.
func (r *Registry) Register(d Decoder) {
	for _, ext := range d.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.decoders[key]; ok {
			panic("duplicate decoder extension: " + key)
		}
		r.decoders[key] = d
	}
}

// ForFile returns the decoder for the file's extension, or nil.
func (r *Registry) ForFile(name string) Decoder {
	return r.decoders[strings.ToLower(filepath.Ext(name))]
}

// DefaultRegistry returns a registry with all built-in decoders.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVDecoder{})
	r.Register(&ExcelDecoder{})
	return r
}

// DecodeFile opens and decodes path using the registry.
func (r *Registry) DecodeFile(path string) (*model.Table, error) {
	d := r.ForFile(path)
	if d == nil {
		return nil, fmt.Errorf("unsupported file type %q (expected CSV or Excel)", filepath.Ext(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := d.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return t, nil
}

// importDir is the subdirectory scanned for uploads.
const importDir = "import"

// processedDir is the subdirectory for handled uploads.
const processedDir = "import/processed"

// Scan returns decodable files in <root>/import/.
func Scan(root string, reg *Registry) ([]FileInfo, error) {
	dir := filepath.Join(root, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if reg.ForFile(e.Name()) == nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(root, fileName string) error {
	src := filepath.Join(root, importDir, fileName)
	dstDir := filepath.Join(root, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}

// headerName stringifies a header cell; blank headers get a positional name.
func headerName(i int, raw string) string {
	h := strings.TrimSpace(raw)
	if h == "" {
		return fmt.Sprintf("Column_%d", i+1)
	}
	return h
}

// buildTable converts raw records (header row first) into a Table, padding
// short rows to header width. Whitespace-only cells become the null marker.
func buildTable(records [][]string) *model.Table {
	if len(records) == 0 {
		return &model.Table{}
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = headerName(i, h)
	}

	rows := make([][]model.Cell, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]model.Cell, len(headers))
		for i := range row {
			if i < len(rec) && strings.TrimSpace(rec[i]) != "" {
				row[i] = model.TextCell(rec[i])
			} else {
				row[i] = model.EmptyCell()
			}
		}
		rows = append(rows, row)
	}

	return &model.Table{Headers: headers, Rows: rows}
}
