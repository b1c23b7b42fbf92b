package serializer

// PrecLowest and PrecFunctionCall mirror the two precedence sentinels
// internal/parser needs for its own table (parser.PrecLowest,
// parser.PrecFunctionCall): "no grouping needed at all" and "bind as
// tightly as a function argument or sigil payload". Serialization doesn't
// need the parser's full operator table — every operator's own Precedence
// comes from its dictionary.Entry — only these two recursion-root
// sentinels.
const (
	PrecLowest       = 0
	PrecFunctionCall = 880
)
