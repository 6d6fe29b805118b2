// Package psqlbuilder exposes squirrel statement builders preconfigured
// for Postgres dollar placeholders.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
