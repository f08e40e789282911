package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMethodChecksOwnMethodsBeforeSuperclass(t *testing.T) {
	base := &Class{Name: "Base", Methods: map[string]*Function{
		"greet": plainReturn("greet", "base"),
	}}
	derived := &Class{Name: "Derived", Superclass: base, Methods: map[string]*Function{
		"greet": plainReturn("greet", "derived"),
	}}

	m, ok := derived.FindMethod("greet")
	require.True(t, ok)
	v, err := m.Call(New(nil), nil)
	require.Nil(t, err)
	assert.Equal(t, "derived", v)
}

func TestFindMethodFallsThroughToSuperclass(t *testing.T) {
	base := &Class{Name: "Base", Methods: map[string]*Function{
		"onlyOnBase": plainReturn("onlyOnBase", "base"),
	}}
	derived := &Class{Name: "Derived", Superclass: base, Methods: map[string]*Function{}}

	m, ok := derived.FindMethod("onlyOnBase")
	require.True(t, ok)
	v, _ := m.Call(New(nil), nil)
	assert.Equal(t, "base", v)
}

func TestFindMethodMissReturnsFalse(t *testing.T) {
	class := &Class{Name: "C", Methods: map[string]*Function{}}
	_, ok := class.FindMethod("nope")
	assert.False(t, ok)
}

func TestClassCallConstructsInstanceAndRunsInit(t *testing.T) {
	init := plainReturn("init", nil)
	class := &Class{Name: "C", Methods: map[string]*Function{"init": init}}

	i := New(nil)
	v, err := class.Call(i, nil)
	require.Nil(t, err)

	instance, ok := v.(*Instance)
	require.True(t, ok)
	assert.Same(t, class, instance.Class)
}

func TestClassArityIsInitializerArity(t *testing.T) {
	noInit := &Class{Name: "NoInit", Methods: map[string]*Function{}}
	assert.Equal(t, 0, noInit.Arity())
}

func TestInstanceGetChecksFieldsBeforeMethods(t *testing.T) {
	method := plainReturn("value", "from-method")
	class := &Class{Name: "C", Methods: map[string]*Function{"value": method}}
	instance := &Instance{Class: class, Fields: map[string]Value{"value": "from-field"}}

	v, ok := instance.Get("value")
	require.True(t, ok)
	assert.Equal(t, "from-field", v)
}

func TestInstanceGetFallsBackToBoundMethod(t *testing.T) {
	method := plainReturn("greet", "hi")
	class := &Class{Name: "C", Methods: map[string]*Function{"greet": method}}
	instance := &Instance{Class: class, Fields: map[string]Value{}}

	v, ok := instance.Get("greet")
	require.True(t, ok)
	fn, ok := v.(*Function)
	require.True(t, ok)

	result, err := fn.Call(New(nil), nil)
	require.Nil(t, err)
	assert.Equal(t, "hi", result)
}

func TestInstanceSetWritesField(t *testing.T) {
	instance := &Instance{Class: &Class{Name: "C"}, Fields: make(map[string]Value)}
	instance.Set("x", 42.0)
	v, ok := instance.Get("x")
	require.True(t, ok)
	assert.Equal(t, 42.0, v)
}
