package todo

import (
	"fmt"
	"iter"
	"strings"
)

// StatusFilter selects tasks by completion.
type StatusFilter string

const (
	FilterAll  StatusFilter = "all"
	FilterTodo StatusFilter = "todo"
	FilterDone StatusFilter = "done"
)

// StatusFilters lists the filters in cycling order.
var StatusFilters = []StatusFilter{FilterAll, FilterTodo, FilterDone}

// ParseStatusFilter parses a filter name case-insensitively.
// The empty string is FilterAll.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterTodo, FilterDone:
		return f, nil
	default:
		return FilterAll, fmt.Errorf("invalid status filter %q, must be one of: all, todo, done", s)
	}
}

// Next returns the filter after f in cycling order.
func (f StatusFilter) Next() StatusFilter {
	switch f {
	case FilterAll:
		return FilterTodo
	case FilterTodo:
		return FilterDone
	default:
		return FilterAll
	}
}

// Match reports whether t passes the filter. Unknown filters match
// everything.
func (f StatusFilter) Match(t Task) bool {
	switch f {
	case FilterDone:
		return t.Completed
	case FilterTodo:
		return !t.Completed
	default:
		return true
	}
}

// String returns the filter name.
func (f StatusFilter) String() string {
	if f == "" {
		return string(FilterAll)
	}
	return string(f)
}

// FilterAndSearch returns the tasks whose text contains term
// (case-insensitive) and that pass filter, in list order.
// The sequence reads l on every iteration and never modifies it.
func FilterAndSearch(l List, term string, filter StatusFilter) iter.Seq[Task] {
	needle := strings.ToLower(term)
	return func(yield func(Task) bool) {
		for _, t := range l {
			if needle != "" && !strings.Contains(strings.ToLower(t.Text), needle) {
				continue
			}
			if !filter.Match(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Collect gathers a task sequence into a List.
func Collect(seq iter.Seq[Task]) List {
	var out List
	for t := range seq {
		out = append(out, t)
	}
	return out
}

// Counts summarizes a list by completion.
type Counts struct {
	Total int
	Done  int
	Todo  int
}

// CountTasks counts the tasks in l.
func CountTasks(l List) Counts {
	c := Counts{Total: len(l)}
	for _, t := range l {
		if t.Completed {
			c.Done++
		}
	}
	c.Todo = c.Total - c.Done
	return c
}
