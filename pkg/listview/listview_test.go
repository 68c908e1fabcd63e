package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	FirstName    string
	LastName     string
	Username     string
	Email        string
	Role         string
	DepartmentID *string
	Age          int
}

func (r row) fields() []string {
	return []string{r.FirstName, r.LastName, r.Username, r.Email}
}

func dept(id string) *string { return &id }

var accounts = []row{
	{FirstName: "An", LastName: "Nguyen", Username: "an.nguyen", Email: "an@corp.io", Role: "ADMIN", DepartmentID: dept("d1"), Age: 30},
	{FirstName: "Binh", LastName: "Tran", Username: "btran", Email: "binh@corp.io", Role: "EMPLOYEE", DepartmentID: nil, Age: 25},
	{FirstName: "Chau", LastName: "Phan", Username: "chau.phan", Email: "chau@corp.io", Role: "EMPLOYEE", DepartmentID: dept("d2"), Age: 41},
	{FirstName: "Dana", LastName: "Vu", Username: "danavu", Email: "dana@corp.io", Role: "HR_MANAGER", DepartmentID: nil, Age: 35},
}

func TestSearchAcrossFields(t *testing.T) {
	page := New[row]().Search("an", row.fields).Apply(accounts)

	// "an" matchea An Nguyen, Binh Tran (last name), Chau Phan y Dana
	require.Len(t, page.Items, 4)

	page = New[row]().Search("BINH", row.fields).Apply(accounts)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "btran", page.Items[0].Username)

	page = New[row]().Search("nobody", row.fields).Apply(accounts)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
}

func TestDepartmentNoneSentinel(t *testing.T) {
	page := New[row]().
		Search("an", row.fields).
		Where(func(r row) bool { return r.DepartmentID == nil }).
		Apply(accounts)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "btran", page.Items[0].Username)
	assert.Equal(t, "danavu", page.Items[1].Username)
}

func TestExactRoleFilter(t *testing.T) {
	page := New[row]().
		Where(func(r row) bool { return r.Role == "EMPLOYEE" }).
		Apply(accounts)
	require.Len(t, page.Items, 2)
}

func TestSortAscDesc(t *testing.T) {
	byAge := func(a, b row) bool { return a.Age < b.Age }

	page := New[row]().SortBy(byAge).Apply(accounts)
	assert.Equal(t, 25, page.Items[0].Age)
	assert.Equal(t, 41, page.Items[len(page.Items)-1].Age)

	page = New[row]().SortBy(byAge).Desc().Apply(accounts)
	assert.Equal(t, 41, page.Items[0].Age)
	assert.Equal(t, 25, page.Items[len(page.Items)-1].Age)
}

func TestPagination(t *testing.T) {
	page := New[row]().Page(0, 3).Apply(accounts)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.PageCount)

	page = New[row]().Page(1, 3).Apply(accounts)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.PageIndex)

	// índice fuera de rango se clampa a la última página
	page = New[row]().Page(9, 3).Apply(accounts)
	assert.Equal(t, 1, page.PageIndex)
	assert.Len(t, page.Items, 1)
}

func TestFilterChangeResetsPage(t *testing.T) {
	q := New[row]().Page(1, 2)
	// agregar un filtro después de fijar página vuelve al índice 0
	q.Where(func(r row) bool { return true })

	page := q.Apply(accounts)
	assert.Equal(t, 0, page.PageIndex)
	assert.Len(t, page.Items, 2)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	original := make([]row, len(accounts))
	copy(original, accounts)

	New[row]().SortBy(func(a, b row) bool { return a.Age < b.Age }).Desc().Apply(accounts)
	assert.Equal(t, original, accounts)
}
