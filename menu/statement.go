package menu

import (
	"strconv"
	"strings"
)

// Serialize renders a statement's entry array back into expression text.
// Malformed entries degrade to visible sentinel tokens; serialization
// itself never fails. A boolean statement is prefixed with the "when"
// keyword.
func Serialize(statement *Statement, isBooleanStatement bool) string {
	sb := &strings.Builder{}

	if isBooleanStatement {
		sb.WriteString("when")
		// no space when the first entry is an explicit (
		if len(statement.Entries) < 1 ||
			statement.Entries[0].Type != EntryOperator ||
			statement.Entries[0].Op != OpLeftParen {
			sb.WriteByte(' ')
		}
	}

	writeEntryRange(sb, statement, 0, len(statement.Entries))
	return sb.String()
}

// findClosingParenthesis scans for the entry matching an opening
// parenthesis at openingPosition. The opening position does not have to
// hold an actual left parenthesis operator: function calls leave theirs
// out of the entries, so any function operator also counts as an opening.
// A scan that runs off the end matches the end of the entry array.
func findClosingParenthesis(statement *Statement, openingPosition int) int {
	end := len(statement.Entries)

	depth := 1
	for position := openingPosition + 1; position < end; position++ {
		entry := statement.Entries[position]
		if entry.Type != EntryOperator {
			continue
		}

		if entry.Op == OpLeftParen || entry.Op >= OpCount {
			depth++
		} else if entry.Op == OpRightParen {
			if depth > 0 {
				depth--
			}
			if depth == 0 {
				return position
			}
		}
	}

	return end
}

func writeEntryRange(sb *strings.Builder, statement *Statement, start int, end int) {
	position := start
	spaceNext := false
	for position < end {
		if statement.Entries[position].Type == EntryOperator {
			writeOperator(sb, statement, &position, &spaceNext)
		} else {
			writeOperand(sb, statement, &position, &spaceNext)
		}
	}
}

func writeOperator(sb *strings.Builder, statement *Statement, position *int, spaceNext *bool) {
	entry := statement.Entries[*position]

	if *spaceNext && entry.Op != OpComma {
		sb.WriteByte(' ')
	}

	switch {
	case entry.Op == OpLeftParen:
		closing := findClosingParenthesis(statement, *position)
		sb.WriteByte('(')
		writeEntryRange(sb, statement, *position+1, closing)
		sb.WriteByte(')')
		*position = closing + 1
		*spaceNext = true

	case entry.Op >= ExpFuncStaticDvarInt && entry.Op <= ExpFuncStaticDvarString:
		writeStaticDvarCall(sb, statement, position)
		*spaceNext = true

	default:
		if entry.Op >= 0 && int(entry.Op) < len(operatorNames) {
			sb.WriteString(operatorNames[entry.Op])
		}

		if entry.Op >= OpCount {
			// the opening parenthesis of a function call is left out of
			// the entries; synthesize it
			closing := findClosingParenthesis(statement, *position)
			sb.WriteByte('(')
			writeEntryRange(sb, statement, *position+1, closing)
			sb.WriteByte(')')
			*position = closing + 1
		} else {
			*position++
		}

		*spaceNext = entry.Op != OpNot
	}
}

func writeStaticDvarCall(sb *strings.Builder, statement *Statement, position *int) {
	switch statement.Entries[*position].Op {
	case ExpFuncStaticDvarInt:
		sb.WriteString("dvarint")
	case ExpFuncStaticDvarBool:
		sb.WriteString("dvarbool")
	case ExpFuncStaticDvarFloat:
		sb.WriteString("dvarfloat")
	case ExpFuncStaticDvarString:
		sb.WriteString("dvarstring")
	}

	closing := findClosingParenthesis(statement, *position)
	sb.WriteByte('(')
	sb.WriteString(staticDvarName(statement, *position+1))
	sb.WriteByte(')')
	*position = closing + 1
}

func staticDvarName(statement *Statement, operandPosition int) string {
	if operandPosition >= len(statement.Entries) {
		return "#INVALID_DVAR_OPERAND"
	}

	entry := statement.Entries[operandPosition]
	if entry.Type != EntryOperand || entry.Operand.Type != OperandInt {
		return "#INVALID_DVAR_OPERAND"
	}

	index := int(entry.Operand.IntVal)
	supportingData := statement.SupportingData
	if supportingData == nil ||
		supportingData.StaticDvars == nil ||
		index < 0 ||
		index >= len(supportingData.StaticDvars) {
		return "#INVALID_DVAR_INDEX"
	}

	staticDvar := supportingData.StaticDvars[index]
	if staticDvar == nil {
		return ""
	}
	return staticDvar.Name
}

func writeOperand(sb *strings.Builder, statement *Statement, position *int, spaceNext *bool) {
	operand := statement.Entries[*position].Operand

	if *spaceNext {
		sb.WriteByte(' ')
	}

	switch operand.Type {
	case OperandFloat:
		sb.WriteString(strconv.FormatFloat(float64(operand.FloatVal), 'g', -1, 32))

	case OperandInt:
		sb.WriteString(strconv.FormatInt(int64(operand.IntVal), 10))

	case OperandString:
		sb.WriteString(`"` + operand.StringVal + `"`)

	case OperandFunction:
		sb.WriteString(functionToken(statement, operand.Function))
	}

	*position++
	*spaceNext = true
}

func functionToken(statement *Statement, function *Statement) string {
	if statement.SupportingData != nil {
		for index, supportingFunction := range statement.SupportingData.Functions {
			if supportingFunction == function {
				return "FUNC_" + strconv.Itoa(index)
			}
		}
	}
	return "INVALID_FUNC"
}
