package entitykit_test

import (
	"testing"

	"github.com/rengaw83/test-entity/pkg/entitykit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestPropertiesOf(t *testing.T) {
	ps := entitykit.PropertiesOf(map[string]any{
		"name":    "Jane",
		"id":      42,
		"boolean": true,
	})

	assert.Equal(t, entitykit.Properties{
		{Name: "boolean", Value: true},
		{Name: "id", Value: 42},
		{Name: "name", Value: "Jane"},
	}, ps)
}

func TestProperties_Add(t *testing.T) {
	var ps entitykit.Properties
	ps = ps.Add("id", 42).Add("name", "Jane")

	assert.Equal(t, entitykit.Properties{
		{Name: "id", Value: 42},
		{Name: "name", Value: "Jane"},
	}, ps)
}

func TestProperties_Validate(t *testing.T) {
	s := testcase.NewSpec(t)

	props := testcase.Let[entitykit.Properties](s, nil)
	act := func(t *testcase.T) error {
		return props.Get(t).Validate()
	}

	s.When("no property is declared", func(s *testcase.Spec) {
		props.Let(s, func(t *testcase.T) entitykit.Properties { return entitykit.Properties{} })

		s.Then("it is reported as invalid", func(t *testcase.T) {
			t.Must.ErrorIs(entitykit.ErrInvalidProperties, act(t))
		})
	})

	s.When("properties have unique names", func(s *testcase.Spec) {
		props.Let(s, func(t *testcase.T) entitykit.Properties {
			return entitykit.Properties{}.
				Add("id", t.Random.Int()).
				Add("name", t.Random.String())
		})

		s.Then("they are valid", func(t *testcase.T) {
			t.Must.NoError(act(t))
		})
	})

	s.When("a property has a blank name", func(s *testcase.Spec) {
		props.Let(s, func(t *testcase.T) entitykit.Properties { return entitykit.Properties{}.Add("id", 1).Add("  ", 2) })

		s.Then("it is reported as invalid", func(t *testcase.T) {
			err := act(t)
			t.Must.ErrorIs(entitykit.ErrInvalidProperties, err)
			t.Must.Contain(err.Error(), "#1")
		})
	})

	s.When("a property is declared twice", func(s *testcase.Spec) {
		props.Let(s, func(t *testcase.T) entitykit.Properties { return entitykit.Properties{}.Add("id", 1).Add("id", 2) })

		s.Then("the duplicate is reported", func(t *testcase.T) {
			err := act(t)
			t.Must.ErrorIs(entitykit.ErrInvalidProperties, err)
			t.Must.Contain(err.Error(), `"id"`)
		})
	})
}

func TestProperties_Rows(t *testing.T) {
	ps := entitykit.Properties{}.
		Add("id", 1).
		Add("boolean", true).
		Add("name", "Jane")

	var labels []string
	for i, row := range ps.Rows() {
		assert.Equal(t, i, row.Index)
		assert.Equal(t, ps[i], row.Property)
		labels = append(labels, row.Label())
	}
	assert.Equal(t, []string{"0_id", "1_boolean", "2_name"}, labels)
}
