// Package listview aplica filtros, orden y paginación en memoria sobre
// colecciones ya traídas del upstream. Los listados del dashboard traen la
// colección completa una vez y todo el refinamiento ocurre del lado local.
package listview

import (
	"sort"
	"strings"
)

// Query es la consulta componible de un listado. Mutar filtros resetea el
// índice de página a 0 para no quedar parado en una página inexistente.
type Query[T any] struct {
	preds    []func(T) bool
	less     func(a, b T) bool
	desc     bool
	page     int
	pageSize int
}

// Page es el resultado paginado de aplicar la consulta
type Page[T any] struct {
	Items     []T `json:"items"`
	Total     int `json:"total"`
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
}

// New crea una consulta vacía (sin filtros, sin orden, sin paginar)
func New[T any]() *Query[T] {
	return &Query[T]{}
}

// Search agrega búsqueda por substring case-insensitive sobre los campos
// extraídos por fields. Un término vacío no filtra.
func (q *Query[T]) Search(term string, fields func(T) []string) *Query[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return q
	}
	q.page = 0
	q.preds = append(q.preds, func(item T) bool {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), term) {
				return true
			}
		}
		return false
	})
	return q
}

// Where agrega un filtro de coincidencia exacta
func (q *Query[T]) Where(pred func(T) bool) *Query[T] {
	q.page = 0
	q.preds = append(q.preds, pred)
	return q
}

// SortBy establece el criterio de orden ascendente
func (q *Query[T]) SortBy(less func(a, b T) bool) *Query[T] {
	q.less = less
	return q
}

// Desc invierte la dirección del orden
func (q *Query[T]) Desc() *Query[T] {
	q.desc = true
	return q
}

// Page establece el índice y tamaño de página. Tamaño <= 0 desactiva la
// paginación (todo en una página).
func (q *Query[T]) Page(index, size int) *Query[T] {
	if index < 0 {
		index = 0
	}
	q.page = index
	q.pageSize = size
	return q
}

// Apply ejecuta la consulta sobre la colección: filtra, ordena y pagina.
// No muta el slice de entrada.
func (q *Query[T]) Apply(items []T) Page[T] {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if q.matches(item) {
			filtered = append(filtered, item)
		}
	}

	if q.less != nil {
		less := q.less
		if q.desc {
			sort.SliceStable(filtered, func(i, j int) bool { return less(filtered[j], filtered[i]) })
		} else {
			sort.SliceStable(filtered, func(i, j int) bool { return less(filtered[i], filtered[j]) })
		}
	}

	total := len(filtered)
	if q.pageSize <= 0 {
		return Page[T]{Items: filtered, Total: total, PageIndex: 0, PageSize: total, PageCount: 1}
	}

	pageCount := (total + q.pageSize - 1) / q.pageSize
	if pageCount == 0 {
		pageCount = 1
	}
	index := q.page
	if index >= pageCount {
		index = pageCount - 1
	}

	start := index * q.pageSize
	end := start + q.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:     filtered[start:end],
		Total:     total,
		PageIndex: index,
		PageSize:  q.pageSize,
		PageCount: pageCount,
	}
}

func (q *Query[T]) matches(item T) bool {
	for _, pred := range q.preds {
		if !pred(item) {
			return false
		}
	}
	return true
}
