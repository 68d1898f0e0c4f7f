package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row builds a Row from alternating column/value pairs.
func row(kv ...string) Row {
	r := make(Row, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		r[kv[i]] = Text(kv[i+1])
	}
	return r
}

func TestBuildTable_IndexesByKey(t *testing.T) {
	header := []string{"id", "name"}
	rows := []Row{
		row("id", "1", "name", "Alice"),
		row("id", "2", "name", "Bob"),
	}

	table, err := BuildTable(header, rows, "id")
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 2, table.RowCount)
	assert.Equal(t, []string{"1", "2"}, table.Keys())
	assert.Equal(t, "id", table.KeyColumn())
	assert.Equal(t, header, table.Header())

	r, ok := table.Row("2")
	require.True(t, ok)
	assert.Equal(t, Text("Bob"), r["name"])

	_, ok = table.Row("3")
	assert.False(t, ok)
}

func TestBuildTable_LastWriteWins(t *testing.T) {
	header := []string{"id", "name"}
	rows := []Row{
		row("id", "1", "name", "first"),
		row("id", "2", "name", "other"),
		row("id", "1", "name", "second"),
		row("id", "1", "name", "third"),
	}

	table, err := BuildTable(header, rows, "id")
	require.NoError(t, err)

	r, ok := table.Row("1")
	require.True(t, ok)
	assert.Equal(t, Text("third"), r["name"])
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 4, table.RowCount)
	assert.Equal(t, []string{"1"}, table.Duplicates)
}

func TestBuildTable_UndefinedKey(t *testing.T) {
	header := []string{"id", "name"}
	rows := []Row{
		row("id", "1", "name", "Alice"),
		row("id", "", "name", "blank"),
		{"id": Null(), "name": Text("null")},
	}

	table, err := BuildTable(header, rows, "id")
	require.NoError(t, err)

	assert.Equal(t, 2, table.Undefined)
	r, ok := table.Row(UndefinedKey)
	require.True(t, ok)
	assert.Equal(t, Text("null"), r["name"])
}

func TestBuildTable_MissingKeyColumn(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		rows   []Row
	}{
		{
			name:   "key not in header",
			header: []string{"code", "name"},
			rows:   []Row{row("code", "1", "name", "Alice")},
		},
		{
			name:   "key never has a value",
			header: []string{"id", "name"},
			rows: []Row{
				row("id", "", "name", "Alice"),
				{"id": Null(), "name": Text("Bob")},
			},
		},
		{
			name:   "key not in header and no rows",
			header: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := BuildTable(tt.header, tt.rows, "id")
			assert.Nil(t, table)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingKeyColumn))

			var mk *MissingKeyColumnError
			require.ErrorAs(t, err, &mk)
			assert.Equal(t, "id", mk.Column)
		})
	}
}

func TestBuildTable_EmptyRows(t *testing.T) {
	table, err := BuildTable([]string{"id"}, nil, "id")
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Keys())
}

func TestBuildTable_HeaderIsCopied(t *testing.T) {
	header := []string{"id", "name"}
	table, err := BuildTable(header, nil, "id")
	require.NoError(t, err)

	header[1] = "changed"
	assert.True(t, table.HasColumn("name"))
	assert.False(t, table.HasColumn("changed"))
}
