// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package query assembles SQL WHERE clauses with PostgreSQL positional parameters.

Conditions are written with '?' placeholders and renumbered to $1, $2, ... in
the order they are added:

	var conditions query.Conditions
	conditions.Add("kind = ?", "audio")
	conditions.AddFragment(visibility)      // e.g. "published = $2"
	sql := "SELECT ... FROM media " + conditions.Where()
	rows, err := db.Query(ctx, sql, conditions.Args()...)
*/
package query

import (
	"strconv"
	"strings"
)

// Fragment renders a boolean SQL expression whose parameters start at argStart.
type Fragment interface {
	Where(argStart int) (string, []any)
}

// Conditions is an AND-joined list of SQL predicates.
type Conditions struct {
	clauses []string
	args    []any
}

// Add appends a condition. Each '?' in clause consumes one of args.
func (c *Conditions) Add(clause string, args ...any) *Conditions {
	var builder strings.Builder
	argIndex := 0
	for _, char := range clause {
		if char == '?' && argIndex < len(args) {
			builder.WriteString("$" + strconv.Itoa(c.Next()+argIndex))
			argIndex++
			continue
		}
		builder.WriteRune(char)
	}

	c.clauses = append(c.clauses, builder.String())
	c.args = append(c.args, args...)
	return c
}

// AddFragment appends a pre-rendered fragment, numbering its parameters after
// those already collected.
func (c *Conditions) AddFragment(fragment Fragment) *Conditions {
	clause, args := fragment.Where(c.Next())
	c.clauses = append(c.clauses, "("+clause+")")
	c.args = append(c.args, args...)
	return c
}

// Next returns the number of the next positional parameter.
func (c *Conditions) Next() int {
	return len(c.args) + 1
}

// Where renders "WHERE a AND b", or "" when empty.
func (c *Conditions) Where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(c.clauses, " AND ")
}

// Args returns the collected parameters in placeholder order.
func (c *Conditions) Args() []any {
	return append([]any(nil), c.args...)
}

// Page appends LIMIT and OFFSET placeholders and returns the clause with the
// complete argument list.
func (c *Conditions) Page(limit, offset int) (string, []any) {
	next := c.Next()
	clause := " LIMIT $" + strconv.Itoa(next) + " OFFSET $" + strconv.Itoa(next+1)
	return clause, append(c.Args(), limit, offset)
}
