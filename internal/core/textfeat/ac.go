package textfeat

// A small Aho-Corasick automaton over bytes. Patterns and haystacks are both
// folded UTF-8, so a 256-way transition table per state is enough and keeps the
// scan free of map lookups

type acState struct {
	next [256]int32 // -1 when the edge is absent
	fail int32
	out  []int // pattern ids ending here, longest first
}

type automaton struct {
	states []acState
	lens   []int // pattern id -> byte length
}

func newState() acState {
	var s acState
	for i := range s.next {
		s.next[i] = -1
	}
	return s
}

func newAutomaton() *automaton {
	return &automaton{states: []acState{newState()}}
}

// add inserts pat and returns its id; empty patterns are ignored and return -1
func (a *automaton) add(pat string) int {
	if pat == "" {
		return -1
	}
	cur := int32(0)
	for i := 0; i < len(pat); i++ {
		b := pat[i]
		nxt := a.states[cur].next[b]
		if nxt == -1 {
			nxt = int32(len(a.states))
			a.states[cur].next[b] = nxt
			a.states = append(a.states, newState())
		}
		cur = nxt
	}
	id := len(a.lens)
	a.lens = append(a.lens, len(pat))
	a.states[cur].out = append(a.states[cur].out, id)
	return id
}

// build computes failure links breadth-first and merges outputs along them
func (a *automaton) build() {
	queue := make([]int32, 0, len(a.states))
	for b := range 256 {
		if s := a.states[0].next[b]; s != -1 {
			a.states[s].fail = 0
			queue = append(queue, s)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		r := queue[qi]
		for b := range 256 {
			s := a.states[r].next[b]
			if s == -1 {
				continue
			}
			queue = append(queue, s)

			f := a.states[r].fail
			for f != 0 && a.states[f].next[b] == -1 {
				f = a.states[f].fail
			}
			if nxt := a.states[f].next[b]; nxt != -1 && nxt != s {
				a.states[s].fail = nxt
			} else {
				a.states[s].fail = 0
			}
			a.states[s].out = append(a.states[s].out, a.states[a.states[s].fail].out...)
		}
	}
}

// scan calls fn(start, end, id) for every occurrence in text, in order of end offset.
// Returning false from fn stops the scan
func (a *automaton) scan(text string, fn func(start, end, id int) bool) {
	cur := int32(0)
	for i := 0; i < len(text); i++ {
		b := text[i]
		for cur != 0 && a.states[cur].next[b] == -1 {
			cur = a.states[cur].fail
		}
		if nxt := a.states[cur].next[b]; nxt != -1 {
			cur = nxt
		}
		for _, id := range a.states[cur].out {
			end := i + 1
			if !fn(end-a.lens[id], end, id) {
				return
			}
		}
	}
}
