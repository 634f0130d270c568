package records_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-billing/internal/records"
)

func TestReadRowsSkipsHeaderAndBlankLines(t *testing.T) {
	t.Parallel()

	input := "id,name,level,shipping_zone,currency\n" +
		"C001,Alice Martin,BASIC,ZONE1,EUR\n" +
		"\n" +
		"C002,Bob Durant,PREMIUM,ZONE2,EUR\n" +
		"C003,Charlie Smith,BASIC,ZONE3,USD"

	rows, err := records.ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"C001", "Alice Martin", "BASIC", "ZONE1", "EUR"},
		{"C002", "Bob Durant", "PREMIUM", "ZONE2", "EUR"},
		{"C003", "Charlie Smith", "BASIC", "ZONE3", "USD"},
	}, rows)
}

func TestReadRowsDropsFirstRowEvenWithoutHeader(t *testing.T) {
	t.Parallel()

	rows, err := records.ReadRows(strings.NewReader("ZONE1,5,0.5\nZONE2,8,1\n"))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"ZONE2", "8", "1"}}, rows)
}

func TestReadRowsHandlesBOMAndCRLF(t *testing.T) {
	t.Parallel()

	rows, err := records.ReadRows(strings.NewReader("\ufeffcode,type\r\nSALE,PERCENTAGE\r\n"))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"SALE", "PERCENTAGE"}}, rows)
}

func TestReadRowsVariableFieldCount(t *testing.T) {
	t.Parallel()

	rows, err := records.ReadRows(strings.NewReader("h\nO1,C1,P1,2,10,2026-01-16\nO2,C1,P1,1,10,2026-01-16,,08:30\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Len(t, rows[0], 6)
	require.Len(t, rows[1], 8)
}

func TestReadRowsKeepsRowsAfterStrayQuote(t *testing.T) {
	t.Parallel()

	input := "id,name,level,shipping_zone,currency\n" +
		"C001,\"Alice,BASIC,ZONE1,EUR\n" +
		"C002,Bob,BASIC,ZONE1,EUR\n"

	rows, err := records.ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"C001", "\"Alice", "BASIC", "ZONE1", "EUR"},
		{"C002", "Bob", "BASIC", "ZONE1", "EUR"},
	}, rows)
}

func TestReadRowsDropsLeadingBlankLineAsHeader(t *testing.T) {
	t.Parallel()

	rows, err := records.ReadRows(strings.NewReader("\nid,name\nC001,Alice\n"))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"id", "name"}, {"C001", "Alice"}}, rows)
}

func TestReadRowsSplitsQuotedCommas(t *testing.T) {
	t.Parallel()

	rows, err := records.ReadRows(strings.NewReader("h\nP001,\"Desk, oak\",10\n"))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"P001", "\"Desk", " oak\"", "10"}}, rows)
}

func TestReadRowsEmptyInput(t *testing.T) {
	t.Parallel()

	rows, err := records.ReadRows(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestDirSourceMissingFile(t *testing.T) {
	t.Parallel()

	src := records.DirSource{FS: fstest.MapFS{}}
	_, err := src.Rows(records.OrdersFile)
	require.Error(t, err)
	require.True(t, records.IsMissing(err))
	require.True(t, errors.Is(err, fs.ErrNotExist))

	var loadErr *records.LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, records.OrdersFile, loadErr.File)
	require.Contains(t, err.Error(), "load orders.csv")
}
