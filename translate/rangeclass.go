package translate

import (
	"strconv"
	"strings"

	"github.com/cualquiercosa327/ccc"
	"github.com/cualquiercosa327/ccc/ast"
)

// stringPatterns is the ordered table of well-known (low, high) string
// patterns matched before any integer parsing is attempted — some 64- and
// 128-bit bounds overflow a 64-bit parser, and some ranges encode a
// floating-point width as (byte-count, "0") rather than true bounds.
var stringPatterns = []struct {
	low, high string
	class     ast.BuiltInClass
}{
	{"4", "0", ast.Float32},
	{"8", "0", ast.Float64},
	{"16", "0", ast.Float128},
	{"01000000000000000000000", "0777777777777777777777", ast.Signed64},
	{"0", "01777777777777777777777", ast.Unsigned64},
	{"0100000000000000000000000000000000000000000", "077777777777777777777777777777777777777777", ast.Signed128},
	{"0", "0377777777777777777777777777777777777777777", ast.Unsigned128},
	{"0", "-1", ast.Unqualified128},
}

// integerRanges is the ordered table of integer-bounds → built-in class
// mappings used once the string-pattern table misses and both bounds parse
// as 64-bit signed integers.
var integerRanges = []struct {
	low, high int64
	class     ast.BuiltInClass
}{
	{0, 255, ast.Unsigned8},
	{-128, 127, ast.Signed8},
	{0, 127, ast.Unqualified8},
	{0, 65535, ast.Unsigned16},
	{-32768, 32767, ast.Signed16},
	{0, 4294967295, ast.Unsigned32},
	{-2147483648, 2147483647, ast.Signed32},
}

// ClassifyRange implements component B (spec §4.B): map a RANGE node's
// textual low/high bounds to a built-in class, first against the
// string-pattern table, then by parsing both bounds as 64-bit signed
// integers (base 8 if a bound begins with "0", else base 10) and matching
// the integer-bounds table.
func ClassifyRange(low, high string) (ast.BuiltInClass, error) {
	for _, p := range stringPatterns {
		if p.low == low && p.high == high {
			return p.class, nil
		}
	}

	lowValue, err := parseRangeBound(low)
	if err != nil {
		return ast.Void, ccc.Wrap(ccc.IntegerParseFailure, "translate.ClassifyRange", err,
			"failed to parse low bound %q", low)
	}
	highValue, err := parseRangeBound(high)
	if err != nil {
		return ast.Void, ccc.Wrap(ccc.IntegerParseFailure, "translate.ClassifyRange", err,
			"failed to parse high bound %q", high)
	}

	for _, r := range integerRanges {
		// §9 Open Question 2: some emitters write the low bound negated;
		// preserve this comparison verbatim rather than "fixing" it.
		if (lowValue == r.low || lowValue == -r.low) && highValue == r.high {
			return r.class, nil
		}
	}

	return ast.Void, ccc.Fail(ccc.UnclassifiedRange, "translate.ClassifyRange",
		"range (%q, %q) matched neither the string-pattern table nor the integer-bounds table", low, high)
}

// parseRangeBound parses a range bound as base-8 if it begins with "0" (and
// isn't a bare "0"), else base-10, mirroring the compiler's own octal
// convention for emitting large unsigned bounds.
func parseRangeBound(s string) (int64, error) {
	trimmed := strings.TrimPrefix(s, "-")
	base := 10
	if len(trimmed) > 1 && trimmed[0] == '0' {
		base = 8
	}
	return strconv.ParseInt(s, base, 64)
}
