package testent

import (
	"time"

	randomdata "github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"

	"github.com/rengaw83/test-entity/pkg/entitykit"
)

func MakeAuthor() *Author {
	a := NewAuthor(randomdata.SillyName(), randomdata.Email())
	a.SetID(int64(randomdata.Number(1, 1000)))
	return a
}

// ArticleProperties returns random values for every Article property.
func ArticleProperties() entitykit.Properties {
	return entitykit.Properties{}.
		Add("id", uuid.NewV4()).
		Add("title", randomdata.SillyName()).
		Add("published", randomdata.Boolean()).
		Add("views", randomdata.Number(0, 10000)).
		Add("score", randomdata.Decimal(0, 5)).
		Add("tags", []string{randomdata.SillyName(), randomdata.SillyName()}).
		Add("author", MakeAuthor()).
		Add("created_at", time.Now().UTC()).
		Add("slug", randomdata.SillyName())
}

// AuthorProperties returns random values for every Author property.
func AuthorProperties() entitykit.Properties {
	return entitykit.PropertiesOf(map[string]any{
		"id":     randomdata.Number(1, 1000),
		"name":   randomdata.SillyName(),
		"email":  randomdata.Email(),
		"active": randomdata.Boolean(),
		"nick":   randomdata.SillyName(),
	})
}
