// Package psqlbuilder обертка над squirrel с PostgreSQL-плейсхолдерами ($1, $2, ...)
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT-запрос с PostgreSQL-плейсхолдерами
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert создает INSERT-запрос с PostgreSQL-плейсхолдерами
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update создает UPDATE-запрос с PostgreSQL-плейсхолдерами
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete создает DELETE-запрос с PostgreSQL-плейсхолдерами
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
