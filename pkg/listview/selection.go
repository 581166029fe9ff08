package listview

// HeaderState is the tri-state header checkbox of a table.
type HeaderState int

const (
	HeaderNone HeaderState = iota
	HeaderIndeterminate
	HeaderChecked
)

// HeaderCheckbox derives the header checkbox state from the selection and
// the number of rows on the current page: checked when every visible row is
// selected, indeterminate for any other non-empty selection. A selection
// left over from a previous filter state can exceed the page count; that
// also reports indeterminate, never checked.
func HeaderCheckbox(state State, pageRowCount int) HeaderState {
	selected := len(state.Selected)
	if selected == 0 {
		return HeaderNone
	}
	if pageRowCount > 0 && selected == pageRowCount {
		return HeaderChecked
	}
	return HeaderIndeterminate
}
