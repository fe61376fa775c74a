package errorkit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rengaw83/test-entity/pkg/errorkit"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

func ExampleError_Error() {
	const ErrSomething errorkit.Error = "something is an error"

	_ = ErrSomething
}

func TestError_Error_smoke(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"
	assert.Equal(t, ErrExample.Error(), string(ErrExample))
}

type ErrAsStub struct {
	V string
}

func (err ErrAsStub) Error() string {
	return fmt.Sprintf("ErrAsStub: %s", err.V)
}

func TestError_Wrap(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"
	t.Run("happy", func(t *testing.T) {
		exp := rnd.Error()
		got := ErrExample.Wrap(exp)
		assert.True(t, errors.Is(got, exp))
		assert.True(t, errors.Is(got, ErrExample))
		assert.Equal(t, fmt.Sprintf("[%s] %s", ErrExample, exp.Error()), got.Error())
	})
	t.Run("As", func(t *testing.T) {
		exp := ErrAsStub{V: rnd.String()}
		got := ErrExample.Wrap(exp)

		var expected ErrAsStub
		assert.True(t, errors.As(got, &expected))
		assert.Equal(t, exp, expected)
	})
	t.Run("nil", func(t *testing.T) {
		got := ErrExample.Wrap(nil)
		assert.Equal[error](t, ErrExample, got)
	})
}

func TestError_F(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"
	got := ErrExample.F("foo %s %d", "bar", 42)
	assert.True(t, errors.Is(got, ErrExample))
	assert.Equal(t, "[ErrExample] foo bar 42", got.Error())
}

func TestMerge(t *testing.T) {
	t.Run("no error", func(t *testing.T) {
		assert.Nil(t, errorkit.Merge())
		assert.Nil(t, errorkit.Merge(nil, nil))
	})
	t.Run("single error is returned as is", func(t *testing.T) {
		exp := rnd.Error()
		assert.Equal(t, exp, errorkit.Merge(nil, exp, nil))
	})
	t.Run("multiple errors", func(t *testing.T) {
		var (
			err1 = errors.New("foo")
			err2 = ErrAsStub{V: "bar"}
		)
		got := errorkit.Merge(err1, nil, err2)
		assert.True(t, errors.Is(got, err1))
		assert.True(t, errors.Is(got, err2))
		var as ErrAsStub
		assert.True(t, errors.As(got, &as))
		assert.Equal(t, err2, as)
		assert.Equal(t, "foo\nErrAsStub: bar", got.Error())
	})
}

func TestFinish(t *testing.T) {
	exp := rnd.Error()
	fn := func() (err error) {
		defer errorkit.Finish(&err, func() error { return exp })
		return nil
	}
	assert.Equal(t, exp, fn())
}

func TestRecoverWith(t *testing.T) {
	fn := func() (err error) {
		defer errorkit.RecoverWith(func(r any) { err = errorkit.Recover(r) })
		panic("boom")
	}
	err := fn()
	assert.NotNil(t, err)
	assert.Equal(t, "boom", err.Error())

	exp := rnd.Error()
	assert.Equal(t, exp, errorkit.Recover(exp))
	assert.Nil(t, errorkit.Recover(nil))
}
