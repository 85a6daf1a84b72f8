package lessons

import (
	"fpt/internal/assert"
	"fpt/internal/fp"
	"fpt/internal/registry"
)

// The object helpers of package fp read from and "change" an fp.Object
// without mutating it: every change returns a new object.

// GetYear reads the year property. Use fp.Prop.
var GetYear func(book fp.Object) any

// GetNameAndAge keeps only the name and year of a book. Use fp.Pick.
var GetNameAndAge func(book fp.Object) fp.Object

// HasTitle reports whether the book has a title. Use fp.Has.
var HasTitle func(book fp.Object) bool

// GetNameOfAuthor reads author.name. fp.Path walks nested objects and
// yields nil instead of failing on a missing step.
var GetNameOfAuthor func(book fp.Object) any

// GetNameOfDoc reads the name of a document, "Untitled" when it has none.
// Use fp.PropOr.
var GetNameOfDoc func(doc fp.Object) any

// GetKeys lists the keys of the author object of a book. fp.Keys sorts
// them.
var GetKeys func(book fp.Object) []string

// SetZipcode sets author.address.zipcode to "13000", creating the missing
// objects along the way. Use fp.AssocPath.
var SetZipcode func(doc fp.Object) fp.Object

// FilterInjections drops the "$regex" and "$gt" properties of a request.
// Use fp.Omit.
var FilterInjections func(request fp.Object) fp.Object

// CelebrateBirthday increments the age of a person. fp.Evolve applies a
// transformation per property.
var CelebrateBirthday func(person fp.Object) fp.Object

func immutabilityAndObjects(r *registry.Registry) {
	r.BeginGroup("Immutability and objects")

	r.AddTest("prop: get year", func() {
		assert.Expect(GetYear(fp.Object{"year": 1000})).ToBe(1000)
		assert.Expect(GetYear(fp.Object{"year": 1222})).ToBe(1222)
	})

	r.AddTest("pick: name and year of book", func() {
		assert.Expect(GetNameAndAge(fp.Object{"name": "Crush", "year": 1000, "pages": 12})).
			ToBe(fp.Object{"name": "Crush", "year": 1000})
		assert.Expect(GetNameAndAge(fp.Object{"name": "Allow", "year": 1222})).
			ToBe(fp.Object{"name": "Allow", "year": 1222})
	})

	r.AddTest("has: title of book", func() {
		assert.Expect(HasTitle(fp.Object{"title": "Crush", "year": 1000})).ToBeTrue()
		assert.Expect(HasTitle(fp.Object{"year": 1222})).ToBeFalse()
	})

	r.AddTest("path: name of book author", func() {
		assert.Expect(GetNameOfAuthor(fp.Object{
			"title":  "Crush",
			"year":   1000,
			"author": fp.Object{"name": "John"},
		})).ToBe("John")
		assert.Expect(GetNameOfAuthor(fp.Object{
			"year":   1222,
			"author": fp.Object{"name": "Josh"},
		})).ToBe("Josh")
	})

	r.AddTest("propOr/pathOr: name of document", func() {
		assert.Expect(GetNameOfDoc(fp.Object{"name": "Document 1"})).ToBe("Document 1")
		assert.Expect(GetNameOfDoc(fp.Object{})).ToBe("Untitled")
	})

	r.AddTest("keys/values: keys in book.author object", func() {
		book := fp.Object{"author": fp.Object{"name": "Marcus", "age": 2}}
		assert.Expect(GetKeys(book)).ToBe([]string{"age", "name"})
	})

	r.AddTest("assoc/assocPath: set zipcode", func() {
		doc := fp.Object{}
		getZipcode := fp.Path("author", "address", "zipcode")

		assert.Expect(getZipcode(SetZipcode(doc))).ToBe("13000")
		assert.Expect(doc).ToBe(fp.Object{})
	})

	r.AddTest("omit/dissoc: filter out injections", func() {
		assert.Expect(FilterInjections(fp.Object{"$regex": "/password123$"})).ToBe(fp.Object{})
		assert.Expect(FilterInjections(fp.Object{"$gt": 0, "price": 1000})).ToBe(fp.Object{"price": 1000})
	})

	r.AddTest("evolve: celebrate birthday", func() {
		age := fp.Prop("age")
		oleg := fp.Object{"name": "Oleg", "age": 16}

		assert.Expect(age(CelebrateBirthday(oleg))).ToBe(17)
		assert.Expect(age(CelebrateBirthday(fp.Object{"name": "Alice", "age": 0}))).ToBe(1)
		assert.Expect(age(oleg)).ToBe(16)
	})
}
