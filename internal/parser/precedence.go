package parser

// Precedence constants. Higher binds tighter. Values for logic/set/relation
// operators are fixed by spec.md §4.3.8; the rest are chosen to slot
// consistently around them, mirroring the teacher's approach of a single
// ranked const block (internal/parser.LOWEST..MEMBER) rather than a
// table keyed by token type, since here the table is keyed by dictionary
// entry instead.
const (
	PrecLowest = 0

	// Quantifiers bind loosest of all the "expression" operators so
	// `\forall x, x > 0` reads as `\forall x, (x > 0)`.
	PrecQuantifier = 200

	PrecEquivalent = 219
	PrecImplies    = 220
	PrecOr         = 230
	PrecXorNandNor = 232
	PrecAnd        = 235

	// Set relations and comparisons interleave in spec.md's 240-265 band;
	// PrecRelation is the representative value entries in that band use
	// unless they need a more specific slot within it.
	PrecRelation     = 241
	PrecSetRelation  = 260
	PrecSetOperation = 265

	PrecAddition       = 275
	PrecMultiplication = 390
	PrecDivision       = 390

	PrecNot = 880

	// PrecNegate is unary minus/plus: binds tighter than multiplication
	// and than the superscript/subscript sigil (spec.md §4.3.3), so -2^2
	// parses as (Power (Negate 2) 2).
	PrecNegate = 740

	// PrecSigil mirrors dictionary.SigilPrecedence (720): the fixed
	// precedence of any ^ or _ trigger.
	PrecSigil = 720

	PrecPostfix     = 810
	PrecFunctionCall = 880
)
