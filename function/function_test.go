package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rtlang/lyth/ast"
	"github.com/rtlang/lyth/environment"
	"github.com/rtlang/lyth/object"
)

func TestFunction_GetType(t *testing.T) {
	fn := &Function{Env: environment.New()}
	assert.Equal(t, object.FunctionObj, fn.GetType())
}

func TestFunction_ToString_ListsParameterNames(t *testing.T) {
	fn := &Function{
		Parameters: []*ast.Identifier{{Value: "x"}, {Value: "y"}},
		Env:        environment.New(),
	}
	assert.Equal(t, "func(x, y)", fn.ToString())
}

func TestFunction_ToString_NoParameters(t *testing.T) {
	fn := &Function{Env: environment.New()}
	assert.Equal(t, "func()", fn.ToString())
}

func TestFunction_ToObject(t *testing.T) {
	fn := &Function{Parameters: []*ast.Identifier{{Value: "n"}}, Env: environment.New()}
	assert.Equal(t, "<func(n)>", fn.ToObject())
}

func TestFunction_EnvIsCapturedByReferenceNotCopied(t *testing.T) {
	env := environment.New()
	fn := &Function{Env: env}

	env.Set("later", &object.Integer{Value: 1})

	val, ok := fn.Env.Get("later")
	assert.True(t, ok)
	assert.Equal(t, int32(1), val.(*object.Integer).Value)
}
