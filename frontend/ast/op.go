package ast

// BinaryOp is an infix operator of a BinaryExpr
type BinaryOp uint8

const (
	BinInvalid BinaryOp = iota

	BinStrictEq    // ===
	BinStrictNotEq // !==
	BinEq          // ==
	BinNotEq       // !=

	BinLt    // <
	BinLtEq  // <=
	BinGt    // >
	BinGtEq  // >=
	BinAdd   // +
	BinSub   // -
	BinMul   // *
	BinDiv   // /
	BinMod   // %
	BinExp   // **
	BinShl   // <<
	BinShr   // >>
	BinUShr  // >>>
	BinBitOr // |
	BinBitXor
	BinBitAnd
	BinLogicalOr  // ||
	BinLogicalAnd // &&
	BinNullish    // ??
	BinIn
	BinInstanceOf
)

var binaryOpSyntax = [...]string{
	BinInvalid:     "<invalid>",
	BinStrictEq:    "===",
	BinStrictNotEq: "!==",
	BinEq:          "==",
	BinNotEq:       "!=",
	BinLt:          "<",
	BinLtEq:        "<=",
	BinGt:          ">",
	BinGtEq:        ">=",
	BinAdd:         "+",
	BinSub:         "-",
	BinMul:         "*",
	BinDiv:         "/",
	BinMod:         "%",
	BinExp:         "**",
	BinShl:         "<<",
	BinShr:         ">>",
	BinUShr:        ">>>",
	BinBitOr:       "|",
	BinBitXor:      "^",
	BinBitAnd:      "&",
	BinLogicalOr:   "||",
	BinLogicalAnd:  "&&",
	BinNullish:     "??",
	BinIn:          "in",
	BinInstanceOf:  "instanceof",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpSyntax) {
		return binaryOpSyntax[op]
	}
	return binaryOpSyntax[BinInvalid]
}

// IsStrictEquality is true for === and !==
func (op BinaryOp) IsStrictEquality() bool {
	return op == BinStrictEq || op == BinStrictNotEq
}

// IsEquality is true for both the strict and the loose equality families
func (op BinaryOp) IsEquality() bool {
	return op.IsStrictEquality() || op == BinEq || op == BinNotEq
}

// IsRelational is true for operators which always produce a boolean
func (op BinaryOp) IsRelational() bool {
	switch op {
	case BinStrictEq, BinStrictNotEq, BinEq, BinNotEq, BinLt, BinLtEq, BinGt, BinGtEq, BinIn, BinInstanceOf:
		return true
	default:
		return false
	}
}

// IsLogical is true for operators which evaluate to one of their operands
func (op BinaryOp) IsLogical() bool {
	return op == BinLogicalOr || op == BinLogicalAnd || op == BinNullish
}

// ParseBinaryOp returns the BinaryOp written as syntax, if any
func ParseBinaryOp(syntax string) (BinaryOp, bool) {
	for op, s := range binaryOpSyntax {
		if BinaryOp(op) != BinInvalid && s == syntax {
			return BinaryOp(op), true
		}
	}
	return BinInvalid, false
}

// UnaryOp is a prefix operator of a UnaryExpr
type UnaryOp uint8

const (
	UnaryInvalid UnaryOp = iota
	UnaryNot             // !
	UnaryMinus           // -
	UnaryPlus            // +
	UnaryBitNot          // ~
	UnaryTypeOf
	UnaryVoid
	UnaryDelete
)

var unaryOpSyntax = [...]string{
	UnaryInvalid: "<invalid>",
	UnaryNot:     "!",
	UnaryMinus:   "-",
	UnaryPlus:    "+",
	UnaryBitNot:  "~",
	UnaryTypeOf:  "typeof",
	UnaryVoid:    "void",
	UnaryDelete:  "delete",
}

func (op UnaryOp) String() string {
	if int(op) < len(unaryOpSyntax) {
		return unaryOpSyntax[op]
	}
	return unaryOpSyntax[UnaryInvalid]
}

// ParseUnaryOp returns the UnaryOp written as syntax, if any
func ParseUnaryOp(syntax string) (UnaryOp, bool) {
	for op, s := range unaryOpSyntax {
		if UnaryOp(op) != UnaryInvalid && s == syntax {
			return UnaryOp(op), true
		}
	}
	return UnaryInvalid, false
}
