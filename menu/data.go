// Package menu stores the expression statement serializer and the menu
// definition text dumper built on top of it.
package menu

type (
	EntryType    int
	OperandType  int
	OperatorCode int32

	// Operand is a tagged variant. Exactly one of the value members is
	// meaningful, selected by Type.
	Operand struct {
		Type      OperandType `json:"type"`
		IntVal    int32       `json:"int_val"`
		FloatVal  float32     `json:"float_val"`
		StringVal string      `json:"string_val"`
		Function  *Statement  `json:"-"`
	}

	// Entry is one element of a serialized expression: either an operator
	// code or an operand.
	Entry struct {
		Type    EntryType    `json:"type"`
		Op      OperatorCode `json:"op"`
		Operand Operand      `json:"operand"`
	}

	StaticDvar struct {
		Name string `json:"name"`
	}

	// SupportingData is shared by the statements of one menu list: the
	// known function table and the static dvar table.
	SupportingData struct {
		Functions   []*Statement  `json:"-"`
		StaticDvars []*StaticDvar `json:"static_dvars"`
	}

	// Statement is a flat operator/operand entry array; nesting is implied
	// by parenthesis operators and virtual function calls.
	Statement struct {
		Entries        []Entry         `json:"entries"`
		SupportingData *SupportingData `json:"-"`
	}
)

const (
	EntryOperator EntryType = iota
	EntryOperand
)

const (
	OperandInt OperandType = iota
	OperandFloat
	OperandString
	OperandFunction
)

const (
	OpNoop OperatorCode = iota
	OpRightParen
	OpMultiply
	OpDivide
	OpModulus
	OpAdd
	OpSubtract
	// OpNot doubles as the unary negation marker; no space follows it.
	OpNot
	OpLessThan
	OpLessEqual
	OpGreaterThan
	OpGreaterEqual
	OpEquals
	OpNotEqual
	OpAnd
	OpOr
	OpLeftParen
	OpComma
	OpBitwiseAnd
	OpBitwiseOr
	OpBitwiseNot
	OpLeftShift
	OpRightShift
	// OpCount is the number of plain operators. Codes at or above it are
	// function calls whose opening parenthesis is left out of the entries.
	OpCount
)

// The four static dvar accessors sit directly above the plain operators and
// are rendered specially.
const (
	ExpFuncStaticDvarInt OperatorCode = OpCount + iota
	ExpFuncStaticDvarBool
	ExpFuncStaticDvarFloat
	ExpFuncStaticDvarString
)

func OperatorEntry(op OperatorCode) Entry {
	return Entry{Type: EntryOperator, Op: op}
}

func IntEntry(value int32) Entry {
	return Entry{Type: EntryOperand, Operand: Operand{Type: OperandInt, IntVal: value}}
}

func FloatEntry(value float32) Entry {
	return Entry{Type: EntryOperand, Operand: Operand{Type: OperandFloat, FloatVal: value}}
}

func StringEntry(value string) Entry {
	return Entry{Type: EntryOperand, Operand: Operand{Type: OperandString, StringVal: value}}
}

func FunctionEntry(function *Statement) Entry {
	return Entry{Type: EntryOperand, Operand: Operand{Type: OperandFunction, Function: function}}
}
