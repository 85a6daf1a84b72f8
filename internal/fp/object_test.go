package fp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func book() Object {
	return Object{
		"title":  "Crush",
		"year":   1000,
		"author": Object{"name": "John", "age": 2},
	}
}

func TestReadingObjects(t *testing.T) {
	b := book()

	assert.Equal(t, 1000, Prop("year")(b))
	assert.Nil(t, Prop("missing")(b))
	assert.Nil(t, Prop("year")(nil))
	assert.Equal(t, "John", Path("author", "name")(b))
	assert.Nil(t, Path("author", "address", "zipcode")(b))
	assert.Nil(t, Path("title", "x")(b))
	assert.Equal(t, "none", PathOr("none", "author", "email")(b))
	assert.Equal(t, "Untitled", PropOr("Untitled", "name")(Object{}))
	assert.Equal(t, "Document 1", PropOr("Untitled", "name")(Object{"name": "Document 1"}))
	assert.Equal(t, "Untitled", PropOr("Untitled", "name")(Object{"name": nil}))
	assert.True(t, Has("title")(b))
	assert.False(t, Has("isbn")(b))
	assert.Equal(t, []string{"author", "title", "year"}, Keys(b))
	assert.Equal(t, []any{"Crush", 1000}, Values(Object{"title": "Crush", "year": 1000}))
}

func TestPickAndOmit(t *testing.T) {
	b := book()

	assert.Equal(t, Object{"title": "Crush", "year": 1000}, Pick("title", "year", "isbn")(b))
	assert.Equal(t, Object{"price": 1000}, Omit("$regex", "$gt")(Object{"$gt": 0, "price": 1000}))
	assert.Equal(t, Object{}, Omit("$regex", "$gt")(Object{"$regex": "/password123$"}))
	assert.Equal(t, Object{"year": 1000}, Dissoc("title")(Object{"title": "x", "year": 1000}))

	assert.Equal(t, book(), b)
}

func TestAssocPath(t *testing.T) {
	original := Object{"author": Object{"name": "Marcus"}}
	updated := AssocPath([]string{"author", "address", "zipcode"}, "13000")(original)

	assert.Equal(t, "13000", Path("author", "address", "zipcode")(updated))
	assert.Equal(t, "Marcus", Path("author", "name")(updated))

	// the original and its nested objects are untouched
	assert.Equal(t, Object{"author": Object{"name": "Marcus"}}, original)

	fromEmpty := AssocPath([]string{"author", "address", "zipcode"}, "13000")(Object{})
	assert.Equal(t, "13000", Path("author", "address", "zipcode")(fromEmpty))

	replaced := AssocPath([]string{"author", "name"}, "Josh")(Object{"author": "not an object"})
	assert.Equal(t, Object{"author": Object{"name": "Josh"}}, replaced)

	assert.Equal(t, Object{"a": 1, "b": 2}, Assoc("b", 2)(Object{"a": 1}))
}

func TestEvolve(t *testing.T) {
	inc := func(v any) any { return v.(int) + 1 }
	person := Object{"name": "Oleg", "age": 16}

	older := Evolve(map[string]func(any) any{"age": inc, "height": inc})(person)

	assert.Equal(t, Object{"name": "Oleg", "age": 17}, older)
	assert.Equal(t, 16, person["age"])
}
