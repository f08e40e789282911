package natives

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lox-lang/golox/internal/errors"
	"github.com/lox-lang/golox/internal/interp"
)

// registerText adds Unicode-correct case conversion. strings.ToUpper/ToLower
// map one rune at a time and cannot expand a character (German ß), so these
// natives go through golang.org/x/text/cases instead. The casers use
// language-neutral rules (language.Und); language-specific mappings such as
// the Turkish dotted/dotless i are not applied.
func registerText(globals *interp.Environment) {
	upperCaser := cases.Upper(language.Und)
	lowerCaser := cases.Lower(language.Und)

	define(globals, "upper", 1, stringTransform(upperCaser.String))
	define(globals, "lower", 1, stringTransform(lowerCaser.String))
}

func stringTransform(f func(string) string) func(*interp.Interpreter, []interp.Value) (interp.Value, *errors.RuntimeError) {
	return func(i *interp.Interpreter, args []interp.Value) (interp.Value, *errors.RuntimeError) {
		s, ok := args[0].(string)
		if !ok {
			return nil, runtimeErr("requires a string argument.")
		}
		return f(s), nil
	}
}
