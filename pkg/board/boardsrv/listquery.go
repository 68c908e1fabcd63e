// Package boardsrv contiene los servicios de vista del dashboard: cada uno
// orquesta llamadas al backend HR, deriva estado para la pantalla y aplica
// filtros, orden y paginación del lado del gateway.
package boardsrv

// DepartmentNone es el valor centinela del filtro de departamento que
// selecciona cuentas sin departamento asignado
const DepartmentNone = "none"

// ListQuery son los parámetros comunes de refinamiento de los listados
type ListQuery struct {
	Search   string `query:"search"`
	SortBy   string `query:"sortBy"`
	Desc     bool   `query:"desc"`
	Page     int    `query:"page"`
	PageSize int    `query:"pageSize"`
}
