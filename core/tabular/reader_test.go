package tabular_test

import (
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"csvdiff/core/reconcile"
	"csvdiff/core/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	input := "id,name,age\r\n1,Alice,30\r\n2,\"Bob, Jr.\",\r\n"

	ds, err := tabular.Read(strings.NewReader(input), tabular.WithName("people.csv"))
	require.NoError(t, err)

	assert.Equal(t, "people.csv", ds.Name)
	assert.Equal(t, []string{"id", "name", "age"}, ds.Header)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, reconcile.Row{
		"id":   reconcile.Text("1"),
		"name": reconcile.Text("Alice"),
		"age":  reconcile.Text("30"),
	}, ds.Rows[0])
	assert.Equal(t, reconcile.Text("Bob, Jr."), ds.Rows[1]["name"])
	assert.Equal(t, reconcile.Text(""), ds.Rows[1]["age"])
}

func TestRead_SkipsBOM(t *testing.T) {
	input := "\xEF\xBB\xBFid,name\n1,Alice\n"

	ds, err := tabular.Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, ds.Header)
}

func TestRead_HeaderOnly(t *testing.T) {
	ds, err := tabular.Read(strings.NewReader("id,name\n"))
	require.NoError(t, err)
	assert.Empty(t, ds.Rows)
}

func TestRead_Delimiter(t *testing.T) {
	ds, err := tabular.Read(strings.NewReader("id;name\n1;Alice\n"), tabular.WithDelimiter(';'))
	require.NoError(t, err)
	assert.Equal(t, reconcile.Text("Alice"), ds.Rows[0]["name"])
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		cause error
		line  int
	}{
		{"empty input", "", tabular.ErrEmptyInput, 0},
		{"ragged row", "id,name\n1,Alice\n2\n", csv.ErrFieldCount, 3},
		{"too many fields", "id,name\n1,Alice,extra\n", csv.ErrFieldCount, 2},
		{"duplicate header", "id,id\n1,2\n", tabular.ErrDuplicateHeader, 1},
		{"invalid utf8", "id,name\n1,\xff\xfe\n", tabular.ErrInvalidUTF8, 2},
		{"bare quote", "id,name\n1,Al\"ice\n", csv.ErrBareQuote, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := tabular.Read(strings.NewReader(tt.input), tabular.WithName("bad.csv"))
			assert.Nil(t, ds)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tabular.ErrParse))
			assert.True(t, errors.Is(err, tt.cause), "got %v", err)
			assert.Contains(t, err.Error(), "bad.csv")

			var pe *tabular.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.line, pe.Line)
		})
	}
}
