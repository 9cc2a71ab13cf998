package mssqlbuilder

import "github.com/Masterminds/squirrel"

// builder squirrel с плейсхолдерами @p1, @p2, ... для SQL Server
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.AtP)

// Select возвращает SELECT builder с @pN плейсхолдерами
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert возвращает INSERT builder с @pN плейсхолдерами
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update возвращает UPDATE builder с @pN плейсхолдерами
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete возвращает DELETE builder с @pN плейсхолдерами
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
