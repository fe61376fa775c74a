// Package testent holds entities for testing the accessor checks.
package testent

import (
	"errors"
	"time"

	uuid "github.com/satori/go.uuid"
)

// Article keeps its state in unexported fields behind fluent accessors.
type Article struct {
	id        uuid.UUID
	title     string
	published bool
	views     int64
	score     float64
	tags      []string
	author    *Author
	createdAt time.Time `entity:"created_at"`
	slug      string    `entity:",readonly"`
}

func (a *Article) GetID() uuid.UUID { return a.id }

func (a *Article) SetID(id uuid.UUID) *Article {
	a.id = id
	return a
}

func (a *Article) GetTitle() string { return a.title }

func (a *Article) SetTitle(title string) *Article {
	a.title = title
	a.slug = slugify(title)
	return a
}

func (a *Article) IsPublished() bool { return a.published }

func (a *Article) SetPublished(published bool) *Article {
	a.published = published
	return a
}

func (a *Article) GetViews() int64 { return a.views }

func (a *Article) SetViews(views int64) *Article {
	a.views = views
	return a
}

func (a *Article) GetScore() float64 { return a.score }

func (a *Article) SetScore(score float64) *Article {
	a.score = score
	return a
}

func (a *Article) GetTags() []string { return a.tags }

func (a *Article) SetTags(tags []string) *Article {
	a.tags = tags
	return a
}

func (a *Article) GetAuthor() *Author { return a.author }

func (a *Article) SetAuthor(author *Author) *Article {
	a.author = author
	return a
}

func (a *Article) CreatedAt() time.Time { return a.createdAt }

var ErrZeroTime = errors.New("zero time")

func (a *Article) SetCreatedAt(at time.Time) error {
	if at.IsZero() {
		return ErrZeroTime
	}
	a.createdAt = at
	return nil
}

func (a *Article) Slug() string { return a.slug }

func slugify(title string) string {
	var out []rune
	for _, r := range title {
		switch {
		case 'a' <= r && r <= 'z', '0' <= r && r <= '9':
			out = append(out, r)
		case 'A' <= r && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case len(out) != 0 && out[len(out)-1] != '-':
			out = append(out, '-')
		}
	}
	return string(out)
}

type Base struct {
	id int64
}

func (b *Base) ID() int64 { return b.id }

func (b *Base) SetID(id int64) *Base {
	b.id = id
	return b
}

// Author uses Go style getters, and it gets its ID from the embedded Base.
type Author struct {
	*Base
	name   string
	email  string
	active bool
	Nick   string
}

func NewAuthor(name, email string) *Author {
	return &Author{Base: &Base{}, name: name, email: email}
}

func (a *Author) Name() string { return a.name }

func (a *Author) SetName(name string) { a.name = name }

func (a *Author) Email() string { return a.email }

func (a *Author) SetEmail(email string) error {
	a.email = email
	return nil
}

func (a *Author) Active() bool { return a.active }

func (a *Author) SetActive(active bool) *Author {
	a.active = active
	return a
}

func (a Author) GetNick() string { return a.Nick }

// Broken has accessors which violate the expectations in every possible way.
type Broken struct {
	title    string
	count    int
	flag     bool
	hidden   string
	label    string
	status   Status
	panicky  string
	failing  string
	variadic string
}

type Status string

func (b *Broken) GetTitle() string { return "broken" }

func (b *Broken) SetTitle(title string) *Broken {
	b.title = title
	return &Broken{}
}

func (b *Broken) Count() int { return b.count }

func (b *Broken) SetCount(count int) { b.count = count + 1 }

func (b *Broken) IsFlag(int) bool { return b.flag }

var ErrFlag = errors.New("flag can't be set")

func (b *Broken) SetFlag(bool) error { return ErrFlag }

func (b *Broken) Label() string { return b.label }

func (b *Broken) SetLabel(label string) (*Broken, error) {
	b.label = label + "!"
	return b, nil
}

func (b *Broken) Status() Status { return b.status }

func (b *Broken) Panicky() string { panic("boom") }

func (b *Broken) SetPanicky(string) { panic("boom") }

var ErrFailing = errors.New("failing getter")

func (b *Broken) Failing() (string, error) { return "", ErrFailing }

func (b *Broken) Variadic() string { return b.variadic }

func (b *Broken) SetVariadic(vs ...string) {}
