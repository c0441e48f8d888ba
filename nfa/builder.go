package nfa

// builder accumulates States in a growable arena as fragments are built,
// mirroring the teacher's "Add* returns StateID" arena idiom (coregex
// nfa/builder.go) adapted to this package's richer per-state edge model.
type builder struct {
	states []State
}

func newBuilder() *builder {
	return &builder{states: make([]State, 0, 16)}
}

// addState appends a fresh, empty State and returns its id.
func (b *builder) addState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{})
	return id
}

func (b *builder) state(id StateID) *State {
	return &b.states[id]
}

func (b *builder) addEpsilon(from, to StateID) {
	b.states[from].Epsilons = append(b.states[from].Epsilons, to)
}

// fragment is a Thompson fragment: exactly one entry state and one state
// that is accepting "for now" — joining fragments clears the upstream
// accept flag and adopts the downstream one (spec.md §4.3).
type fragment struct {
	start, accept StateID
}

// clone deep-copies the subgraph reachable from f's start via both epsilon
// and consuming edges, allocating fresh states and rewriting every target
// through an old->new remap table. Used to expand bounded quantifiers:
// sharing state across repeat clones would create spurious paths between
// iterations (spec.md §4.3, Design Notes §9).
func (b *builder) clone(f fragment) fragment {
	remap := make(map[StateID]StateID)
	var walk func(StateID) StateID
	walk = func(old StateID) StateID {
		if id, ok := remap[old]; ok {
			return id
		}
		newID := b.addState()
		remap[old] = newID
		src := b.states[old] // snapshot before further appends reallocate b.states
		dst := State{
			Accept:      src.Accept,
			RequireBOL:  src.RequireBOL,
			RequireEOL:  src.RequireEOL,
			EnterGroups: append([]int(nil), src.EnterGroups...),
			ExitGroups:  append([]int(nil), src.ExitGroups...),
		}
		dst.Edges = make([]Edge, len(src.Edges))
		copy(dst.Edges, src.Edges)
		dst.Epsilons = make([]StateID, len(src.Epsilons))
		for i, t := range src.Epsilons {
			dst.Epsilons[i] = walk(t)
		}
		for i, e := range dst.Edges {
			dst.Edges[i].Target = walk(e.Target)
		}
		b.states[newID] = dst
		return newID
	}
	newStart := walk(f.start)
	newAccept := remap[f.accept]
	return fragment{start: newStart, accept: newAccept}
}
