package tsck

import (
	"github.com/cottand/tsck/frontend/ilerr"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func testError(t *testing.T, prog string, shouldContain ...string) {
	p, ilerrs, err := NewProgramFromBytes([]byte(prog), "test.ts")
	assert.NoError(t, err)

	sb := strings.Builder{}
	for _, err := range ilerrs.Errors() {
		sb.WriteString(ilerr.FormatWithCodeAndSource(err, p))
		sb.WriteString("\n-----------\n")
	}
	errMsg := sb.String()
	for _, s := range shouldContain {
		assert.Contains(t, errMsg, s)
	}
	t.Log("error message:\n" + errMsg)
}

func TestErrorOffsetStartOfLine(t *testing.T) {
	prog := `
const a = 1;


"a" === "b";`
	testError(t, prog, `test.ts:5:1: (E007) this comparison appears to be unintentional because the types '"a"' and '"b"' have no overlap`)
}

func TestErrorOffsetNested(t *testing.T) {
	prog := `function f(x: number) {
  if (x === 1) {
    return "a" !== "b";
  }
}`
	testError(t, prog, `test.ts:3:12: (E007) this condition will always return 'true'`)
}

func TestErrorOffsetUndefinedName(t *testing.T) {
	prog := `// a long comment
const b = 2;
b === missing;`
	testError(t, prog, `test.ts:3:7: (E002) cannot find name 'missing'`)
}

func TestErrorOffsetSyntaxError(t *testing.T) {
	prog := `const a = 1;
const = 2;
"x" === "y";`
	testError(t, prog, "test.ts:2:", "(E001) syntax error", "test.ts:3:1: (E007)")
}
