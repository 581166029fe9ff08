package listview

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type row struct {
	id     string
	name   string
	email  string
	owner  string
	status string
	start  time.Time
	value  float64
}

func testSchema() Schema[row] {
	return Schema[row]{
		ID: func(r row) string { return r.id },
		SearchFields: []func(row) string{
			func(r row) string { return r.name },
			func(r row) string { return r.email },
		},
		Filters: map[string]FilterFunc[row]{
			"status": func(r row, v string) bool { return r.status == v },
			"owner":  func(r row, v string) bool { return r.owner == v },
		},
		SortKeys: map[string]Comparator[row]{
			"name":  TextKey(func(r row) string { return r.name }),
			"date":  DateKey(func(r row) time.Time { return r.start }),
			"time":  TimeOfDayKey(func(r row) time.Time { return r.start }),
			"value": NumberKey(func(r row) float64 { return r.value }),
		},
	}
}

func makeRows(n int) []row {
	out := make([]row, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, row{
			id:   fmt.Sprintf("id-%03d", i+1),
			name: fmt.Sprintf("Record %03d", i+1),
		})
	}
	return out
}

func TestCompute_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	rows := []row{
		{id: "1", name: "ACME Corp"},
		{id: "2", name: "Globex"},
		{id: "3", email: "sales@acme.io"},
	}
	state := NewState(50).WithSearch("acme")

	view := Compute(rows, testSchema(), state)

	require.Len(t, view.Rows, 2)
	require.Equal(t, "1", view.Rows[0].id)
	require.Equal(t, "3", view.Rows[1].id)
}

func TestCompute_EmptySearchPassesAll(t *testing.T) {
	rows := makeRows(5)
	view := Compute(rows, testSchema(), NewState(50))
	require.Len(t, view.Rows, 5)
}

func TestCompute_MissingFieldsNeverPanic(t *testing.T) {
	schema := testSchema()
	schema.SearchFields = append(schema.SearchFields, nil)
	rows := []row{{id: "1"}, {id: "2", name: "has a name"}}

	require.NotPanics(t, func() {
		view := Compute(rows, schema, NewState(50).WithSearch("name"))
		require.Len(t, view.Rows, 1)
	})
}

func TestCompute_Idempotent(t *testing.T) {
	rows := []row{
		{id: "1", name: "b", status: "open"},
		{id: "2", name: "a", status: "open"},
		{id: "3", name: "c", status: "won"},
	}
	state := NewState(50).WithFilter("status", "open").WithSort("name")

	first := Compute(rows, testSchema(), state)
	second := Compute(rows, testSchema(), state)

	require.Equal(t, first, second)
}

func TestCompute_FilterCompositionOrderIndependent(t *testing.T) {
	rows := []row{
		{id: "1", name: "ACME lead", owner: "u1", status: "open"},
		{id: "2", name: "ACME deal", owner: "u2", status: "open"},
		{id: "3", name: "Globex", owner: "u1", status: "open"},
		{id: "4", name: "ACME churn", owner: "u1", status: "lost"},
	}

	a := NewState(50).WithSearch("acme").WithFilter("status", "open").WithFilter("owner", "u1")
	b := NewState(50).WithFilter("owner", "u1").WithFilter("status", "open").WithSearch("acme")

	va := Compute(rows, testSchema(), a)
	vb := Compute(rows, testSchema(), b)

	require.Equal(t, va.Rows, vb.Rows)
	require.Len(t, va.Rows, 1)
	require.Equal(t, "1", va.Rows[0].id)
}

func TestCompute_FilterAllSentinelIsNoOp(t *testing.T) {
	rows := []row{
		{id: "1", status: "open"},
		{id: "2", status: "lost"},
	}
	state := NewState(50).WithFilter("status", FilterAll)
	view := Compute(rows, testSchema(), state)
	require.Len(t, view.Rows, 2)
}

func TestCompute_UnknownFilterKeyPasses(t *testing.T) {
	rows := makeRows(3)
	state := NewState(50).WithFilter("no-such-filter", "whatever")
	view := Compute(rows, testSchema(), state)
	require.Len(t, view.Rows, 3)
}

func TestCompute_UnknownFilterValueYieldsEmptySet(t *testing.T) {
	rows := []row{{id: "1", status: "open"}}
	state := NewState(50).WithFilter("status", "archived")
	view := Compute(rows, testSchema(), state)
	require.Empty(t, view.Rows)
	require.Zero(t, view.TotalFiltered)
	require.Equal(t, 1, view.TotalPages)
}

func TestCompute_SortTextCaseInsensitive(t *testing.T) {
	rows := []row{
		{id: "1", name: "beta"},
		{id: "2", name: "Alpha"},
		{id: "3", name: "gamma"},
	}
	view := Compute(rows, testSchema(), NewState(50).WithSort("name"))
	require.Equal(t, []string{"2", "1", "3"}, testSchema().IDs(view.Rows))
}

func TestCompute_SortUnknownColumnKeepsOrder(t *testing.T) {
	rows := makeRows(4)
	state := NewState(50).WithSort("bogus")
	view := Compute(rows, testSchema(), state)
	require.Equal(t, testSchema().IDs(rows), testSchema().IDs(view.Rows))
}

func TestCompute_SortStableForEqualKeys(t *testing.T) {
	rows := []row{
		{id: "1", name: "same", value: 2},
		{id: "2", name: "same", value: 1},
		{id: "3", name: "same", value: 3},
	}
	view := Compute(rows, testSchema(), NewState(50).WithSort("name"))
	// Ties keep relative order from the pre-sort sequence.
	require.Equal(t, []string{"1", "2", "3"}, testSchema().IDs(view.Rows))
}

func TestCompute_DateAndTimeAreDistinctSortKeys(t *testing.T) {
	rows := []row{
		// Later date, earlier time of day.
		{id: "1", start: time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)},
		// Earlier date, later time of day.
		{id: "2", start: time.Date(2024, 3, 1, 17, 30, 0, 0, time.UTC)},
	}
	schema := testSchema()

	byDate := Compute(rows, schema, NewState(50).WithSort("date"))
	require.Equal(t, []string{"2", "1"}, schema.IDs(byDate.Rows))

	byTime := Compute(rows, schema, NewState(50).WithSort("time"))
	require.Equal(t, []string{"1", "2"}, schema.IDs(byTime.Rows))
}

func TestCompute_DateKeyIgnoresTimeOfDay(t *testing.T) {
	rows := []row{
		{id: "1", start: time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)},
		{id: "2", start: time.Date(2024, 3, 1, 0, 1, 0, 0, time.UTC)},
	}
	view := Compute(rows, testSchema(), NewState(50).WithSort("date"))
	// Same day compares equal, so the original order is preserved.
	require.Equal(t, []string{"1", "2"}, testSchema().IDs(view.Rows))
}

func TestState_SortToggle(t *testing.T) {
	state := NewState(50).WithSort("name")
	require.Equal(t, SortAsc, state.SortDir)

	state = state.WithSort("name")
	require.Equal(t, SortDesc, state.SortDir)

	// Clicking a different column resets to ascending.
	state = state.WithSort("date")
	require.Equal(t, "date", state.SortColumn)
	require.Equal(t, SortAsc, state.SortDir)
}

func TestCompute_SortDescendingReverses(t *testing.T) {
	rows := []row{
		{id: "1", value: 1},
		{id: "2", value: 3},
		{id: "3", value: 2},
	}
	state := NewState(50).WithSort("value").WithSort("value")
	view := Compute(rows, testSchema(), state)
	require.Equal(t, []string{"2", "3", "1"}, testSchema().IDs(view.Rows))
}

func TestCompute_Pagination(t *testing.T) {
	rows := makeRows(120)
	schema := testSchema()

	page1 := Compute(rows, schema, NewState(50))
	require.Len(t, page1.Rows, 50)
	require.Equal(t, "id-001", page1.Rows[0].id)
	require.Equal(t, "id-050", page1.Rows[49].id)
	require.Equal(t, 120, page1.TotalFiltered)
	require.Equal(t, 3, page1.TotalPages)

	page3 := Compute(rows, schema, NewState(50).WithPage(3))
	require.Len(t, page3.Rows, 20)
	require.Equal(t, "id-101", page3.Rows[0].id)
	require.Equal(t, "id-120", page3.Rows[19].id)
}

func TestCompute_PageSliceLengthsSumToTotal(t *testing.T) {
	rows := makeRows(73)
	schema := testSchema()

	total := 0
	view := Compute(rows, schema, NewState(50))
	for page := 1; page <= view.TotalPages; page++ {
		v := Compute(rows, schema, NewState(50).WithPage(page))
		require.LessOrEqual(t, len(v.Rows), 50)
		total += len(v.Rows)
	}
	require.Equal(t, view.TotalFiltered, total)
}

func TestCompute_PageClampedToRange(t *testing.T) {
	rows := makeRows(10)
	view := Compute(rows, testSchema(), NewState(50).WithPage(99))
	require.Equal(t, 1, view.Page)
	require.Len(t, view.Rows, 10)
}

func TestState_SearchResetsPage(t *testing.T) {
	state := NewState(50).WithPage(3)
	require.Equal(t, 3, state.Page)

	state = state.WithSearch("acme")
	require.Equal(t, 1, state.Page)
}

func TestState_FilterAndSortResetPage(t *testing.T) {
	state := NewState(50).WithPage(2).WithFilter("status", "open")
	require.Equal(t, 1, state.Page)

	state = state.WithPage(2).WithSort("name")
	require.Equal(t, 1, state.Page)
}
