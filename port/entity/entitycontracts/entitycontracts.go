// Package entitycontracts holds a contract that verifies the accessors of an entity.
//
// The contract receives a list of properties, each with a value.
// Every property becomes a data row, and for each row two tests are registered:
//
//	Getters/<index>_<property>: the value written into the field must be returned by the getter
//	Setters/<index>_<property>: the value passed to the setter must end up in the field
//
// Fields are reached even when they are unexported.
// Read-only properties skip their setter test.
package entitycontracts

import (
	"context"
	"errors"
	"testing"

	"github.com/rengaw83/test-entity/pkg/entitykit"
	"github.com/rengaw83/test-entity/pkg/env"
	"github.com/rengaw83/test-entity/pkg/logger"
	"github.com/rengaw83/test-entity/pkg/reflectkit"
	"github.com/rengaw83/test-entity/port/contract"
	"github.com/rengaw83/test-entity/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

type Option[Entity any] interface {
	option.Option[Config[Entity]]
}

type Config[Entity any] struct {
	// MakeContext returns the context passed to the checks.
	MakeContext func(testing.TB) context.Context
	// MakeEntity is responsible to create a new entity for each test.
	// By default, the zero value of the entity is allocated.
	MakeEntity contract.Make[*Entity]
	// ReadOnly lists the properties that don't have a setter.
	// Fields tagged with `entity:",readonly"` are read-only without being listed.
	ReadOnly []string
	// RequireSetters makes the setter tests fail when a setter is missing,
	// instead of writing the field directly.
	RequireSetters bool `env:"TESTENTITY_REQUIRE_SETTERS" default:"false"`
	// LogLevel is the minimum level of the accessor resolution logs, reported through the test log.
	// When empty, the logger's default level applies, which comes from LOG_LEVEL.
	LogLevel logger.Level `env:"TESTENTITY_LOG_LEVEL"`
}

func (c *Config[Entity]) Init() {
	c.MakeContext = func(testing.TB) context.Context { return context.Background() }
	c.MakeEntity = func(testing.TB) *Entity { return new(Entity) }
	if err := env.Load(c); err != nil {
		logger.Warn(context.Background(), "the entity contract configuration from the environment is ignored",
			logger.ErrField(err))
	}
	if c.LogLevel != "" {
		level, ok := logger.ParseLevel(string(c.LogLevel))
		if !ok {
			logger.Warn(context.Background(), "unknown log level in TESTENTITY_LOG_LEVEL, the default level is used",
				logger.Field("level", c.LogLevel))
		}
		c.LogLevel = level
	}
}

func (c Config[Entity]) Configure(t *Config[Entity]) {
	if c.MakeContext != nil {
		t.MakeContext = c.MakeContext
	}
	if c.MakeEntity != nil {
		t.MakeEntity = c.MakeEntity
	}
	if c.ReadOnly != nil {
		t.ReadOnly = append(t.ReadOnly, c.ReadOnly...)
	}
	if c.RequireSetters {
		t.RequireSetters = true
	}
	if c.LogLevel != "" {
		t.LogLevel = c.LogLevel
	}
}

// MakeEntity sets the function that creates a new entity for each test.
func MakeEntity[Entity any](fn contract.Make[*Entity]) Option[Entity] {
	return option.Func[Config[Entity]](func(c *Config[Entity]) {
		c.MakeEntity = fn
	})
}

// Constructor makes each entity by calling ctor with args.
// See entitykit.Construct for the accepted constructor signatures.
func Constructor[Entity any](ctor any, args ...any) Option[Entity] {
	return MakeEntity[Entity](func(tb testing.TB) *Entity {
		tb.Helper()
		ent, err := entitykit.Construct[Entity](ctor, args...)
		assert.Must(tb).NoError(err)
		return ent
	})
}

// ReadOnly marks properties as read-only, which makes their setter test skip.
func ReadOnly[Entity any](names ...string) Option[Entity] {
	return Config[Entity]{ReadOnly: names}
}

// RequireSetters makes a missing setter fail the setter test.
func RequireSetters[Entity any]() Option[Entity] {
	return Config[Entity]{RequireSetters: true}
}

// LogLevel sets the minimum level of the logs the checks report through the test log.
func LogLevel[Entity any](level logger.Level) Option[Entity] {
	return Config[Entity]{LogLevel: level}
}

// Properties is the contract for the getters and setters of an Entity.
//
// It panics when props is empty or invalid, since no test could be generated from them.
func Properties[Entity any](props entitykit.Properties, opts ...Option[Entity]) contract.Contract {
	if err := props.Validate(); err != nil {
		panic(err)
	}
	c := option.ToConfig[Config[Entity], Option[Entity]](opts)
	s := testcase.NewSpec(nil)

	var (
		entityName = reflectkit.FullyQualifiedName(new(Entity))
		checker    = func(t *testcase.T) entitykit.Checker {
			return entitykit.Checker{
				ReadOnly:      c.ReadOnly,
				RequireSetter: c.RequireSetters,
				Logger:        logger.Testing(t, c.LogLevel),
			}
		}
		makeContext = func(t *testcase.T, row entitykit.Row) context.Context {
			return logger.ContextWith(c.MakeContext(t),
				logger.Field("entity", entityName),
				logger.Field("row", row.Label()))
		}
		makeEntity = func(t *testcase.T) *Entity {
			ent := c.MakeEntity(t)
			t.Must.NotNil(ent, "MakeEntity returned a nil entity")
			return ent
		}
	)

	s.Describe("Getters", func(s *testcase.Spec) {
		for _, row := range props.Rows() {
			s.Test(row.Label(), func(t *testcase.T) {
				err := checker(t).Getter(makeContext(t, row), makeEntity(t), row.Property)
				t.Must.NoError(err)
			})
		}
	})

	s.Describe("Setters", func(s *testcase.Spec) {
		for _, row := range props.Rows() {
			s.Test(row.Label(), func(t *testcase.T) {
				err := checker(t).Setter(makeContext(t, row), makeEntity(t), row.Property)
				if errors.Is(err, entitykit.ErrReadOnly) {
					t.Skip(err.Error())
				}
				t.Must.NoError(err)
			})
		}
	})

	return s.AsSuite("Properties")
}
