package postgres

import (
	"strings"

	"gorm.io/gorm"
)

const maxPageSize = 100

// paginate applies LIMIT/OFFSET for a 1-based page.
func paginate(page, size, defaultSize int) func(*gorm.DB) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(size).Offset((page - 1) * size)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-insensitive substring LIKE argument. Wildcards
// in s match literally.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// whereSearch keeps rows where any of columns contains search,
// case-insensitively.
func whereSearch(query *gorm.DB, search string, columns ...string) *gorm.DB {
	pattern := likePattern(search)
	conds := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, column := range columns {
		conds[i] = "LOWER(" + column + ") LIKE ? ESCAPE '\\'"
		args[i] = pattern
	}
	return query.Where("("+strings.Join(conds, " OR ")+")", args...)
}
