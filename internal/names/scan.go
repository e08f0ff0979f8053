package names

import "regexp"

// Declaration scanner.
//
// This is deliberately a shallow text match, not a parser:
//   - `function <name>` and `class <name>` anywhere in the text count,
//     including inside comments and string literals.
//   - Arrow functions, `const f = function () {}` and class fields are
//     not seen.
//
// The separator class mirrors a Unicode-aware `\s`: ASCII whitespace plus
// \v, the \x1c-\x1f separators, NEL and every Unicode Z* space. RE2's own
// `\s` covers only [\t\n\f\r ].
const (
	wsClass    = `[\t\n\v\f\r \x{1c}-\x{1f}\x{85}\p{Z}]+`
	identClass = `([a-zA-Z0-9_$]+)`
)

var (
	reFunction = regexp.MustCompile(`function` + wsClass + identClass)
	reClass    = regexp.MustCompile(`class` + wsClass + identClass)
)

// Scan returns the names declared in text via `function` or `class`.
func Scan(text string) Set {
	s := make(Set)
	for _, re := range []*regexp.Regexp{reFunction, reClass} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			s.Add(m[1])
		}
	}
	return s
}
