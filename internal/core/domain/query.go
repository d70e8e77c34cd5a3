package domain

import "github.com/niksmo/ecom-admin/pkg/paginate"

// A ListQuery is the common part of every admin list screen.
type ListQuery struct {
	Page   paginate.Page
	Search string
}

// A List is one page of items with its resolved pagination.
type List[T any] struct {
	Items []T
	Page  paginate.Page
}
