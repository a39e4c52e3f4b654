// Package views - производные данные для страниц: таблицы, карточки, пагинация.
// Функции не ходят в сеть и не меняют состояние.
package views

const DefaultPageSize = 10

type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// Paginate режет список на страницы (с 1). Страница за пределами
// списка прижимается к последней.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	out := make([]T, 0, end-start)
	out = append(out, items[start:end]...)

	return Page[T]{
		Items:      out,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
	}
}
