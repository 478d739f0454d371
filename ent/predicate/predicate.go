// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ConversionRun is the predicate function for conversionrun builders.
type ConversionRun func(*sql.Selector)

// FileResult is the predicate function for fileresult builders.
type FileResult func(*sql.Selector)
