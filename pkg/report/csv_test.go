package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agritech/entities"
)

func csvRows(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	rows, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSVDefaults(t *testing.T) {
	bd := time.Date(1990, 7, 4, 0, 0, 0, 0, time.UTC)
	rs := sampleRegistrants()
	rs[0].BirthDate = &bd
	rs[0].CreatedAt = time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rs, CSVOptions{}))
	rows := csvRows(t, &buf)

	// Header + two active rows; soft-deleted registrant dropped.
	require.Len(t, rows, 3)
	assert.Equal(t, "RSBSA NO.", rows[0][0])
	assert.Equal(t, "NAME", rows[0][1])

	assert.Equal(t, "DELA CRUZ, JUAN S.", rows[1][1])
	assert.Equal(t, "7/4/1990", rows[1][3])  // en-US style, no zero padding
	assert.Equal(t, "2/3/2025", rows[1][13]) // registered-on column
}

func TestWriteCSVColumnSubset(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRegistrants(), CSVOptions{
		Columns: []string{"name", "barangay"},
	}))
	rows := csvRows(t, &buf)
	assert.Equal(t, []string{"NAME", "BARANGAY"}, rows[0])
	assert.Equal(t, []string{"DELA CRUZ, JUAN S.", "APLAYA"}, rows[1])
}

func TestWriteCSVFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRegistrants(), CSVOptions{
		Registry: entities.RegistryFarmer,
		Crop:     "rice",
	}))
	rows := csvRows(t, &buf)
	require.Len(t, rows, 2)
	assert.Equal(t, "06-30-08-001", rows[1][0])
}

func TestWriteCSVUnknownColumnsFallBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, CSVOptions{Columns: []string{"bogus"}}))
	rows := csvRows(t, &buf)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], len(ColumnKeys()))
}

func TestWriteCSVQuotesCommas(t *testing.T) {
	rs := sampleRegistrants()[:1] // two crops joined with ", "
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rs, CSVOptions{Columns: []string{"crops"}}))
	assert.True(t, strings.Contains(buf.String(), `"RICE, CORN"`))
}

func TestColumnKeysStable(t *testing.T) {
	keys := ColumnKeys()
	assert.Equal(t, "reference_no", keys[0])
	assert.Equal(t, "registered", keys[len(keys)-1])
	assert.Len(t, keys, 14)
}
