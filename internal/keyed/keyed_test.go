package keyed

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	Name string `json:"name"`
}

func TestDecode_KeepsDocumentOrder(t *testing.T) {
	body := `{"-Nz2":{"name":"second"},"-Aa1":{"name":"first"},"10":{"name":"numeric"}}`

	entries, err := Decode[pair](strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "-Nz2", entries[0].Key)
	assert.Equal(t, "second", entries[0].Value.Name)
	assert.Equal(t, "-Aa1", entries[1].Key)
	assert.Equal(t, "10", entries[2].Key)
}

func TestDecode_NullAndEmptyObject(t *testing.T) {
	entries, err := Decode[pair](strings.NewReader("null"))
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = Decode[pair](strings.NewReader("{}"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDecode_RawValues(t *testing.T) {
	entries, err := Decode[json.RawMessage](strings.NewReader(`{"adult":false,"budget":63000000,"genres":[{"id":18}]}`))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "false", string(entries[0].Value))
	assert.Equal(t, "63000000", string(entries[1].Value))
	assert.JSONEq(t, `[{"id":18}]`, string(entries[2].Value))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"array of scalars", `[1,2]`},
		{"scalar", `"text"`},
		{"trailing garbage", `{"a":{"name":"x"}}garbage`},
		{"second object", `{"a":{"name":"x"}} {}`},
		{"trailing after null", `null null`},
		{"truncated", `{"a":{"name":"x"`},
		{"bad value", `{"a":{"name":1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[pair](strings.NewReader(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDecode_TrailingWhitespaceIsFine(t *testing.T) {
	entries, err := Decode[pair](strings.NewReader("{\"a\":{\"name\":\"x\"}}\n  \n"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestDecode_ArrayUsesIndexKeys(t *testing.T) {
	entries, err := Decode[pair](strings.NewReader(`[{"name":"zero"},{"name":"one"}]`))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "0", entries[0].Key)
	assert.Equal(t, "zero", entries[0].Value.Name)
	assert.Equal(t, "1", entries[1].Key)

	entries, err = Decode[pair](strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDecode_NullMemberWithPointerValue(t *testing.T) {
	entries, err := Decode[*pair](strings.NewReader(`{"a":null,"b":{"name":"x"}}`))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Nil(t, entries[0].Value)
	require.NotNil(t, entries[1].Value)
	assert.Equal(t, "x", entries[1].Value.Name)
}
