package httpservicetest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// Testable is the minimal interface required for assertions and testing.
// This interface is implemented by several libraries.
type Testable interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

// AsTestable converts a value into a Testable.  The v parameter
// may be a *testing.T, *testing.B, or a type that provides a T() *testing.T method.
//
// If v cannot be coerced into a Testable, this function panics.
func AsTestable(v any) Testable {
	if tt, ok := v.(Testable); ok {
		return tt
	}

	type testHolder interface {
		T() *testing.T
	}

	if th, ok := v.(testHolder); ok {
		return th.T()
	}

	panic(fmt.Errorf("%T cannot be converted into a Testable", v))
}

// NewApp creates an *fxtest.App using the enclosing test.  The t parameter
// has the same restrictions as AsTestable.
func NewApp(t any, o ...fx.Option) *fxtest.App {
	return fxtest.New(AsTestable(t), o...)
}

// NewErrApp creates an *fx.App which is expected to fail during construction.
// Prior to returning, this function asserts that there was an error.
//
// Since an error is assumed to happen, the returned app has logging silenced.
func NewErrApp(t any, o ...fx.Option) *fx.App {
	app := fx.New(
		append(
			o,
			fx.NopLogger,
		)...,
	)

	assert.Error(AsTestable(t), app.Err())
	return app
}

// testWriter adapts a Testable to io.Writer.
type testWriter struct {
	t Testable
}

func (tw testWriter) Write(p []byte) (int, error) {
	tw.t.Logf("%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
