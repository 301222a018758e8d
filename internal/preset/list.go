package preset

type List []Preset

func (l List) Add(p Preset) List {
	out := make(List, 0, len(l)+1)
	out = append(out, l...)
	return append(out, p)
}

func (l List) ToggleActive(id string) List {
	out := make(List, len(l))
	copy(out, l)
	for i := range out {
		if out[i].ID == id {
			out[i].Active = !out[i].Active
			break
		}
	}
	return out
}

func (l List) Remove(id string) List {
	out := make(List, 0, len(l))
	for _, p := range l {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func (l List) Find(id string) (Preset, bool) {
	for _, p := range l {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
