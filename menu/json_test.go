package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatementJSON(t *testing.T) {
	data := []byte(`{
		"entries": [
			{"op": "("},
			{"int": 3},
			{"op": "+"},
			{"float": 1.5},
			{"op": ")"}
		]
	}`)

	statement, err := ParseStatementJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "(3 + 1.5)", Serialize(statement, false))
}

func TestParseStatementJSONStaticDvars(t *testing.T) {
	data := []byte(`{
		"entries": [
			{"op": 23},
			{"int": 0},
			{"op": ")"}
		],
		"static_dvars": ["ui_drawcrosshair"]
	}`)

	statement, err := ParseStatementJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "dvarint(ui_drawcrosshair)", Serialize(statement, false))
}

func TestParseStatementJSONFunctions(t *testing.T) {
	data := []byte(`{
		"entries": [{"func": 1}, {"op": "+"}, {"func": 9}],
		"num_functions": 2
	}`)

	statement, err := ParseStatementJSON(data)
	require.NoError(t, err)
	// index 9 is out of range and must degrade, not fail
	assert.Equal(t, "FUNC_1 + INVALID_FUNC", Serialize(statement, false))
}

func TestParseStatementJSONUnknownOperator(t *testing.T) {
	_, err := ParseStatementJSON([]byte(`{"entries": [{"op": "frobnicate"}]}`))
	assert.Error(t, err)
}

func TestParseStatementJSONMalformed(t *testing.T) {
	_, err := ParseStatementJSON([]byte(`{"entries": [`))
	assert.Error(t, err)

	_, err = ParseStatementJSON([]byte(`{"entries": [{}]}`))
	assert.Error(t, err)
}
