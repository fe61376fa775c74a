package entitykit_test

import (
	"context"
	"io"
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rengaw83/test-entity/internal/testent"
	"github.com/rengaw83/test-entity/pkg/entitykit"
	"github.com/rengaw83/test-entity/pkg/logger"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/pp"
)

type withEqual struct{ at time.Time }

type withUnexported struct {
	name string
	tags []string
}

func TestIsSame(t *testing.T) {
	var (
		now   = time.Now()
		ptr   = &testent.Article{}
		ch    = make(chan int)
		ident = func() {}
	)
	type TC struct {
		Expected any
		Actual   any
		Same     bool
	}
	testcase.TableTest(t, map[string]TC{
		"both nil":                   {Expected: nil, Actual: nil, Same: true},
		"nil and non nil":            {Expected: nil, Actual: 0, Same: false},
		"equal strings":              {Expected: "foo", Actual: "foo", Same: true},
		"different types":            {Expected: int(1), Actual: int64(1), Same: false},
		"equal slices":               {Expected: []string{"a"}, Actual: []string{"a"}, Same: true},
		"different slices":           {Expected: []string{"a"}, Actual: []string{"b"}, Same: false},
		"same pointer":               {Expected: ptr, Actual: ptr, Same: true},
		"equal but distinct pointer": {Expected: &testent.Article{}, Actual: &testent.Article{}, Same: false},
		"same channel":               {Expected: ch, Actual: ch, Same: true},
		"same func":                  {Expected: ident, Actual: ident, Same: true},
		"equal unexported fields":    {Expected: withUnexported{name: "a", tags: []string{"x"}}, Actual: withUnexported{name: "a", tags: []string{"x"}}, Same: true},
		"different unexported field": {Expected: withUnexported{name: "a"}, Actual: withUnexported{name: "b"}, Same: false},
		"time in another location":   {Expected: now, Actual: now.UTC(), Same: true},
		"NaN":                        {Expected: math.NaN(), Actual: math.NaN(), Same: true},
		"NaN and number":             {Expected: math.NaN(), Actual: 1.0, Same: false},
		"struct holding times":       {Expected: withEqual{at: now}, Actual: withEqual{at: now.UTC()}, Same: true},
	}, func(t *testcase.T, tc TC) {
		t.Must.Equal(tc.Same, entitykit.IsSame(tc.Expected, tc.Actual),
			"expected:", assert.Message(pp.Format(tc.Expected)),
			"actual:", assert.Message(pp.Format(tc.Actual)))
	})
}

func TestChecker_property(t *testing.T) {
	var (
		ctx     = context.Background()
		checker = entitykit.Checker{Logger: &logger.Logger{Out: io.Discard}}
	)
	properties := gopter.NewProperties(nil)

	properties.Property("any title survives the accessors", prop.ForAll(
		func(title string) bool {
			p := entitykit.Property{Name: "title", Value: title}
			return checker.Getter(ctx, &testent.Article{}, p) == nil &&
				checker.Setter(ctx, &testent.Article{}, p) == nil
		},
		gen.AnyString(),
	))

	properties.Property("any view count survives the accessors", prop.ForAll(
		func(views int64) bool {
			p := entitykit.Property{Name: "views", Value: views}
			return checker.Getter(ctx, &testent.Article{}, p) == nil &&
				checker.Setter(ctx, &testent.Article{}, p) == nil
		},
		gen.Int64(),
	))

	properties.Property("int values fit into the int64 field", prop.ForAll(
		func(views int) bool {
			p := entitykit.Property{Name: "views", Value: views}
			return checker.Getter(ctx, &testent.Article{}, p) == nil
		},
		gen.Int(),
	))

	properties.Property("any tag list survives the accessors", prop.ForAll(
		func(tags []string) bool {
			p := entitykit.Property{Name: "tags", Value: tags}
			return checker.Getter(ctx, &testent.Article{}, p) == nil &&
				checker.Setter(ctx, &testent.Article{}, p) == nil
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("the broken counter is always off by one", prop.ForAll(
		func(count int) bool {
			p := entitykit.Property{Name: "count", Value: count}
			return checker.Getter(ctx, &testent.Broken{}, p) == nil &&
				checker.Setter(ctx, &testent.Broken{}, p) != nil
		},
		gen.IntRange(-1000, 1000),
	))

	properties.TestingRun(t)
}
