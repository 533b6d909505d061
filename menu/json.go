package menu

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// ParseStatementJSON builds a statement from the JSON form zone extractors
// emit:
//
//	{
//	  "entries": [{"op": "("}, {"int": 3}, {"op": "+"}, {"float": 1.5}, {"op": ")"}],
//	  "static_dvars": ["ui_drawcrosshair"],
//	  "num_functions": 2
//	}
//
// Operators are given by name or by numeric code. Function operands are
// indices into the supporting function table; an out-of-range index yields
// a dangling reference that serializes to INVALID_FUNC.
func ParseStatementJSON(data []byte) (*Statement, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("ParseStatementJSON error: input is not valid JSON")
	}
	root := gjson.ParseBytes(data)

	supportingData := &SupportingData{
		StaticDvars: lo.Map(
			root.Get("static_dvars").Array(),
			func(name gjson.Result, _ int) *StaticDvar {
				return &StaticDvar{Name: name.String()}
			},
		),
	}
	for i := int64(0); i < root.Get("num_functions").Int(); i++ {
		supportingData.Functions = append(supportingData.Functions, &Statement{})
	}

	statement := &Statement{SupportingData: supportingData}
	err := error(nil)
	for index, entryValue := range root.Get("entries").Array() {
		entry := Entry{}
		entry, err = parseEntry(entryValue, supportingData)
		if err != nil {
			err := errors.Wrapf(err, "ParseStatementJSON error at entry %d", index)
			return nil, err
		}
		statement.Entries = append(statement.Entries, entry)
	}

	return statement, nil
}

func parseEntry(entryValue gjson.Result, supportingData *SupportingData) (Entry, error) {
	if op := entryValue.Get("op"); op.Exists() {
		if op.Type == gjson.String {
			code, ok := OperatorCodeByName(op.String())
			if !ok {
				return Entry{}, fmt.Errorf(`unknown operator "%s"`, op.String())
			}
			return OperatorEntry(code), nil
		}
		return OperatorEntry(OperatorCode(op.Int())), nil
	}
	if intValue := entryValue.Get("int"); intValue.Exists() {
		return IntEntry(int32(intValue.Int())), nil
	}
	if floatValue := entryValue.Get("float"); floatValue.Exists() {
		return FloatEntry(float32(floatValue.Float())), nil
	}
	if stringValue := entryValue.Get("string"); stringValue.Exists() {
		return StringEntry(stringValue.String()), nil
	}
	if functionValue := entryValue.Get("func"); functionValue.Exists() {
		index := int(functionValue.Int())
		if index >= 0 && index < len(supportingData.Functions) {
			return FunctionEntry(supportingData.Functions[index]), nil
		}
		return FunctionEntry(&Statement{}), nil
	}
	return Entry{}, errors.New("entry carries no op/int/float/string/func member")
}
