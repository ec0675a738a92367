package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	casos := []struct {
		nombre  string
		total   int64
		page    int
		perPage int
		quiere  Pagination
	}{
		{
			nombre: "página intermedia",
			total:  45, page: 2, perPage: 20,
			quiere: Pagination{Page: 2, PerPage: 20, Total: 45, TotalPages: 3, HasNext: true, HasPrev: true},
		},
		{
			nombre: "última página",
			total:  45, page: 3, perPage: 20,
			quiere: Pagination{Page: 3, PerPage: 20, Total: 45, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			nombre: "sin resultados sigue habiendo una página",
			total:  0, page: 1, perPage: 20,
			quiere: Pagination{Page: 1, PerPage: 20, Total: 0, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			nombre: "valores fuera de rango se normalizan",
			total:  10, page: 0, perPage: 0,
			quiere: Pagination{Page: 1, PerPage: 20, Total: 10, TotalPages: 1, HasNext: false, HasPrev: false},
		},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			got := BuildPaginationFromPage(tc.total, tc.page, tc.perPage)
			if got != tc.quiere {
				t.Errorf("BuildPaginationFromPage(%d, %d, %d) = %+v, se esperaba %+v",
					tc.total, tc.page, tc.perPage, got, tc.quiere)
			}
		})
	}
}
