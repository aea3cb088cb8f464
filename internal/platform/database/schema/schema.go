// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package schema holds the table and column names of the relational model.

Repositories build their SQL from these definitions so a column rename is a
one-line change here plus a migration.
*/
package schema

import "strings"

// Qualify prefixes every column with alias.
func Qualify(alias string, columns ...string) []string {
	qualified := make([]string, len(columns))
	for index, column := range columns {
		qualified[index] = alias + "." + column
	}
	return qualified
}

// List joins columns into a SELECT projection.
func List(columns ...string) string {
	return strings.Join(columns, ", ")
}
