package records

import (
	"bufio"
	"bytes"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Source file names inside a data directory.
const (
	CustomersFile  = "customers.csv"
	ProductsFile   = "products.csv"
	ZonesFile      = "shipping_zones.csv"
	PromotionsFile = "promotions.csv"
	OrdersFile     = "orders.csv"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const maxLineBytes = 1 << 20

// Source yields the data rows of a named CSV file, header excluded.
type Source interface {
	Rows(name string) ([][]string, error)
}

// DirSource reads CSV files from a file system rooted at the data directory.
type DirSource struct {
	FS fs.FS
}

// NewDirSource returns a Source reading from dir on the local disk.
func NewDirSource(dir string) DirSource {
	return DirSource{FS: os.DirFS(dir)}
}

// Rows opens name and returns its rows without the header.
func (s DirSource) Rows(name string) ([][]string, error) {
	if s.FS == nil {
		return nil, &LoadError{File: name, Err: fs.ErrInvalid}
	}
	f, err := s.FS.Open(name)
	if err != nil {
		return nil, &LoadError{File: name, Err: err}
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, &LoadError{File: name, Err: err}
	}
	return rows, nil
}

// ReadRows tokenizes comma separated rows from r, one row per line. The
// first line is always dropped as the header, whatever it contains, and
// blank lines after it are skipped. Quotes carry no meaning, so a malformed
// field never spills into the following rows.
func ReadRows(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]string
	header := true
	for scanner.Scan() {
		if header {
			header = false
			continue
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, ","))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
