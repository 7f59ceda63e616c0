package activesupport

import (
	"github.com/jinzhu/inflection"
)

// Pluralize returns the plural form of the given English noun.
func Pluralize(s string) string {
	return inflection.Plural(s)
}

// Singularize returns the singular form of the given English noun.
func Singularize(s string) string {
	return inflection.Singular(s)
}
