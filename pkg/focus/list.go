package focus

// List is an ordered sequence of items with an optional selection.
// A non-empty list always has a selected index in range; an empty list has none.
type List[T any] struct {
	items    []T
	selected int
}

// NewList returns a list selecting its first item.
func NewList[T any](items []T) List[T] {
	l := List[T]{selected: -1}
	l.SetItems(items)
	return l
}

// SetItems replaces the items, keeping the selected index when it is still in range
// and clamping it to the last item otherwise.
func (l *List[T]) SetItems(items []T) {
	l.items = items

	switch {
	case len(items) == 0:
		l.selected = -1
	case l.selected < 0:
		l.selected = 0
	case l.selected >= len(items):
		l.selected = len(items) - 1
	}
}

// Next selects the following item, wrapping from the last to the first.
func (l *List[T]) Next() {
	if len(l.items) == 0 {
		return
	}

	l.selected = (l.selected + 1) % len(l.items)
}

// Previous selects the preceding item, wrapping from the first to the last.
func (l *List[T]) Previous() {
	if len(l.items) == 0 {
		return
	}

	l.selected = (l.selected - 1 + len(l.items)) % len(l.items)
}

// Select selects the item at i. Out of range indexes are ignored.
func (l *List[T]) Select(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}

	l.selected = i
}

// Index returns the selected index.
func (l List[T]) Index() (int, bool) {
	if len(l.items) == 0 {
		return 0, false
	}

	return l.selected, true
}

// Selected returns the selected item.
func (l List[T]) Selected() (T, bool) {
	var zero T

	i, ok := l.Index()
	if !ok {
		return zero, false
	}

	return l.items[i], true
}

func (l List[T]) Items() []T {
	return l.items
}

func (l List[T]) Len() int {
	return len(l.items)
}
