// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Inquiry is the predicate function for inquiry builders.
type Inquiry func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Preference is the predicate function for preference builders.
type Preference func(*sql.Selector)

// StudySession is the predicate function for studysession builders.
type StudySession func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
