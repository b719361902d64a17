package todo

import "github.com/idilsaglam/todolist/internal/model"

// Entry is a task together with its 1-based position in the full list.
type Entry struct {
	Index int
	model.Task
}

// Listing splits tasks into completed and uncompleted groups. Each group keeps
// list order and each entry keeps its original index.
type Listing struct {
	Completed   []Entry
	Uncompleted []Entry
}

func (l Listing) Empty() bool { return len(l.Completed) == 0 && len(l.Uncompleted) == 0 }

func (l Listing) Total() int { return len(l.Completed) + len(l.Uncompleted) }

// Group builds a Listing from tasks.
func Group(tasks []model.Task) Listing {
	var l Listing
	for i, t := range tasks {
		e := Entry{Index: i + 1, Task: t}
		if t.Completed {
			l.Completed = append(l.Completed, e)
		} else {
			l.Uncompleted = append(l.Uncompleted, e)
		}
	}
	return l
}
