package env_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rengaw83/test-entity/pkg/env"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

const (
	envKey    = "THE_ENV_KEY"
	othEnvKey = "OTH_ENV_KEY"
)

func TestLoad(t *testing.T) {
	t.Run("on nil value", func(t *testing.T) {
		type Example struct{}
		err := env.Load[Example](nil)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, env.ErrLoadInvalidData))
	})

	t.Run("on non-struct type", func(t *testing.T) {
		var c string
		err := env.Load(&c)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, env.ErrLoadInvalidData))
	})

	t.Run("struct fields without env tag are ignored", func(t *testing.T) {
		type Example struct{ V string }
		var c Example
		assert.NoError(t, env.Load(&c))
		assert.Empty(t, c)
	})

	t.Run("string struct field", func(t *testing.T) {
		type Example struct {
			V string `env:"THE_ENV_KEY"`
		}
		t.Run("os env has the value", func(t *testing.T) {
			testcase.SetEnv(t, envKey, "42")
			var c Example
			assert.NoError(t, env.Load(&c))
			assert.Equal(t, "42", c.V)
		})
		t.Run("os env doesn't have the value", func(t *testing.T) {
			testcase.UnsetEnv(t, envKey)
			var c Example
			assert.NoError(t, env.Load(&c))
			assert.Empty(t, c)
		})
	})

	t.Run("default value", func(t *testing.T) {
		type Example struct {
			V time.Duration `env:"THE_ENV_KEY" default:"1h5m"`
		}
		testcase.UnsetEnv(t, envKey)
		var c Example
		assert.NoError(t, env.Load(&c))
		assert.Equal(t, time.Hour+5*time.Minute, c.V)
	})

	t.Run("required value is missing", func(t *testing.T) {
		type Example struct {
			V int `env:"THE_ENV_KEY" required:"true"`
		}
		testcase.UnsetEnv(t, envKey)
		var c Example
		assert.Error(t, env.Load(&c))
	})

	t.Run("invalid value", func(t *testing.T) {
		type Example struct {
			V bool `env:"THE_ENV_KEY"`
		}
		testcase.SetEnv(t, envKey, "sure")
		var c Example
		err := env.Load(&c)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, env.ErrParse))
	})

	t.Run("nested struct without tag is visited", func(t *testing.T) {
		type Example struct {
			V struct {
				F uint8 `env:"THE_ENV_KEY"`
			}
			O []string `env:"OTH_ENV_KEY" separator:";"`
		}
		testcase.SetEnv(t, envKey, "42")
		testcase.SetEnv(t, othEnvKey, "foo; bar;baz")
		var c Example
		assert.NoError(t, env.Load(&c))
		assert.Equal(t, uint8(42), c.V.F)
		assert.Equal(t, []string{"foo", "bar", "baz"}, c.O)
	})
}

func TestLookup(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		testcase.SetEnv(t, envKey, "42.5")
		v, ok, err := env.Lookup[float64](envKey)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 42.5, v)
	})
	t.Run("absent", func(t *testing.T) {
		testcase.UnsetEnv(t, envKey)
		v, ok, err := env.Lookup[int](envKey)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 0, v)
	})
	t.Run("absent with default", func(t *testing.T) {
		testcase.UnsetEnv(t, envKey)
		v, ok, err := env.Lookup[bool](envKey, env.DefaultValue("true"))
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, v)
	})
	t.Run("absent but required", func(t *testing.T) {
		testcase.UnsetEnv(t, envKey)
		_, ok, err := env.Lookup[string](envKey, env.Required())
		assert.Error(t, err)
		assert.False(t, ok)
	})
	t.Run("list", func(t *testing.T) {
		testcase.SetEnv(t, envKey, "1|2|3")
		v, ok, err := env.Lookup[[]int](envKey, env.ListSeparator("|"))
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []int{1, 2, 3}, v)
	})
	t.Run("empty list", func(t *testing.T) {
		testcase.SetEnv(t, envKey, "")
		v, ok, err := env.Lookup[[]string](envKey)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, v)
	})
}
