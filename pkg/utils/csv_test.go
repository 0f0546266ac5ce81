package utils

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name   string
	Orders int
	Rate   float64
}

var rowColumns = []Column[row]{
	{Key: "name", Value: func(r row) string { return r.Name }},
	{Key: "total_orders", Value: func(r row) string { return FormatInt(r.Orders) }},
	{Key: "commission_rate", Label: "Commission (%)", Value: func(r row) string { return FormatFloat(r.Rate) }},
}

func renderCSV(t *testing.T, items []row) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, items, rowColumns))
	return sb.String()
}

func TestWriteCSV_QuotesEveryField(t *testing.T) {
	got := renderCSV(t, []row{{Name: "Ama", Orders: 1200, Rate: 15}})

	want := "\"Name\",\"Total Orders\",\"Commission (%)\"\n" +
		"\"Ama\",\"1200\",\"15\"\n"
	assert.Equal(t, want, got)
}

func TestWriteCSV_HeaderOnlyForEmptyInput(t *testing.T) {
	got := renderCSV(t, nil)
	assert.Equal(t, "\"Name\",\"Total Orders\",\"Commission (%)\"\n", got)
}

func TestWriteCSV_RoundTripsAwkwardValues(t *testing.T) {
	items := []row{
		{Name: `Chez "Le Boss", Akwa`, Orders: 3, Rate: 12.5},
		{Name: "line\nbreak", Orders: 0, Rate: 0},
	}

	out := renderCSV(t, items)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, `Chez "Le Boss", Akwa`, records[1][0])
	assert.Equal(t, "12.5", records[1][2])
	assert.Equal(t, "line\nbreak", records[2][0])
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}
