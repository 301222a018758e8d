package task

// List transitions never modify the receiver; each returns a fresh slice.
type List []Task

func (l List) Add(t Task) List {
	out := make(List, 0, len(l)+1)
	out = append(out, l...)
	return append(out, t)
}

func (l List) Toggle(id string) List {
	out := l.clone()
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
			break
		}
	}
	return out
}

func (l List) Remove(id string) List {
	out := make(List, 0, len(l))
	for _, t := range l {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// Reorder replaces the list with order. The caller supplies a permutation;
// nothing is checked.
func (l List) Reorder(order List) List {
	return order.clone()
}

func (l List) Find(id string) (Task, bool) {
	if i := l.Index(id); i >= 0 {
		return l[i], true
	}
	return Task{}, false
}

func (l List) Index(id string) int {
	for i, t := range l {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (l List) clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}
