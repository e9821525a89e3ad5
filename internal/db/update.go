package db

import (
	"fmt"
	"strings"
)

// SetClause accumulates "column = $n" assignments for partial updates.
type SetClause struct {
	sets []string
	args []interface{}
}

func (s *SetClause) Add(column string, value interface{}) {
	s.sets = append(s.sets, column+" = "+s.Arg(value))
}

// Arg appends a bind value and returns its placeholder.
func (s *SetClause) Arg(value interface{}) string {
	s.args = append(s.args, value)
	return fmt.Sprintf("$%d", len(s.args))
}

func (s *SetClause) Empty() bool {
	return len(s.sets) == 0
}

func (s *SetClause) SQL() string {
	return strings.Join(s.sets, ", ")
}

func (s *SetClause) Args() []interface{} {
	return s.args
}
