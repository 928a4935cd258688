// Package store persists Product, Post and User rows and implements the
// search-and-paginate query shared by both record kinds: a substring
// filter OR'd across the kind's text columns, a bounded fetch and a full
// count executed in one transaction, and a total-page figure derived from
// the full count regardless of which page was asked for.
package store

import (
	"strconv"

	"gorm.io/gorm"

	"tradeboard/internal/httperr"
)

// PageSize bounds the rows returned per paginated query.
const PageSize = 15

// Page is one page of search results plus the view state needed to
// render pagination links.
type Page[T any] struct {
	Items      []T
	Query      string
	Page       int
	TotalPages int
}

// NormalizePage parses a 1-based page number from a query parameter.
// Non-numeric or non-positive input means page 1.
func NormalizePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// searchPage runs the shared count-then-fetch against one record kind.
// cond is a two-placeholder LIKE predicate over the kind's searchable
// columns; both queries run inside a single transaction so the count and
// the fetched rows describe the same snapshot. Rows come back in
// insertion order (ascending id). A page past the end yields empty Items
// with TotalPages still computed from the full count.
func searchPage[T any](gdb *gorm.DB, cond, query string, page int) (Page[T], error) {
	if page < 1 {
		page = 1
	}
	like := "%" + query + "%"
	pg := Page[T]{Items: []T{}, Query: query, Page: page}

	err := gdb.Transaction(func(tx *gorm.DB) error {
		var total int64
		if err := tx.Model(new(T)).Where(cond, like, like).Count(&total).Error; err != nil {
			return err
		}
		pg.TotalPages = int((total + PageSize - 1) / PageSize)
		return tx.Where(cond, like, like).
			Order("id").
			Limit(PageSize).
			Offset((page - 1) * PageSize).
			Find(&pg.Items).Error
	})
	if err != nil {
		return pg, httperr.NewStorage("search query failed", err)
	}
	return pg, nil
}
