package util

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type CVSSimpleTest struct {
	Name   string  `csv:"name"`
	Age    int     `csv:"age"`
	Height float32 `csv:"height"`
	Gender bool    `csv:"gender"`
}

func readCSV(t *testing.T, reader io.Reader) ([]CVSSimpleTest, error) {
	t.Helper()
	rows, err := ReadCSV[CVSSimpleTest](reader, ';')
	require.NoError(t, err)
	result := make([]CVSSimpleTest, 0)
	for row, err := range rows {
		if err != nil {
			return result, err
		}
		result = append(result, row)
	}
	return result, nil
}

func readCSVFile(t *testing.T, file string) ([]CVSSimpleTest, error) {
	t.Helper()
	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()
	return readCSV(t, f)
}

func TestCSVSimple(t *testing.T) {
	rows, err := readCSVFile(t, "./testdata/simple.csv")
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, CVSSimpleTest{"John", 30, 170, false}, rows[0])
	assert.Equal(t, CVSSimpleTest{"Jane", 25, 160, true}, rows[1])
	assert.Equal(t, CVSSimpleTest{"Joe", 35, 175, true}, rows[2])
}

func TestCSVFieldCount(t *testing.T) {
	rows, err := readCSVFile(t, "./testdata/error.csv")

	// stops at the row with a wrong field count
	require.Error(t, err)
	assert.ErrorIs(t, err, csv.ErrFieldCount)
	assert.Contains(t, err.Error(), "line 3")
	require.Len(t, rows, 1)
	assert.Equal(t, CVSSimpleTest{"John", 30, 170.5, false}, rows[0])
}

func TestCSVEmptyValues(t *testing.T) {
	rows, err := readCSV(t, strings.NewReader("name;age;height;gender\n;28;;\n"))
	require.NoError(t, err)
	assert.Equal(t, []CVSSimpleTest{{"", 28, 0, false}}, rows)
}

func TestCSVInvalidNumber(t *testing.T) {
	rows, err := readCSV(t, strings.NewReader("name;age;height;gender\nJohn;30;170;false\nJane;old;160;true\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), "line 3, column age")
	assert.Len(t, rows, 1)
}

func TestCSVIntOverflow(t *testing.T) {
	type row struct {
		From     string `csv:"from"`
		Distance int32  `csv:"distance"`
	}
	rows, err := ReadCSV[row](strings.NewReader("from;distance\nA;4294967298\n"), ';')
	require.NoError(t, err)
	count := 0
	for value, err := range rows {
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
		assert.Equal(t, row{}, value)
		count++
	}
	assert.Equal(t, 1, count)
}

func TestCSVMissingHeader(t *testing.T) {
	_, err := ReadCSV[CVSSimpleTest](strings.NewReader(""), ';')
	assert.Error(t, err)
}
