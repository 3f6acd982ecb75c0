package semantic

// Registry is the read-only lookup table of semantic roles, built once at
// startup from the seed table. Ambiguity between candidate roles is
// resolved by Priority, then by seed declaration order; the table is an
// explicit ordered list precisely so that tie-break stays deterministic.
type Registry struct {
	order []Semantic
	byKey map[registryKey]int
	byID  map[string]int // first declaration wins across categories
}

type registryKey struct {
	category Category
	id       string
}

// NewRegistry builds the registry from the built-in seed table.
func NewRegistry() *Registry {
	return newRegistry(seedTable())
}

func newRegistry(seed []Semantic) *Registry {
	r := &Registry{
		order: seed,
		byKey: make(map[registryKey]int, len(seed)),
		byID:  make(map[string]int, len(seed)),
	}
	for i, s := range seed {
		key := registryKey{s.Category, s.ID}
		if _, dup := r.byKey[key]; dup {
			continue
		}
		r.byKey[key] = i
		if _, seen := r.byID[s.ID]; !seen {
			r.byID[s.ID] = i
		}
	}
	return r
}

// Lookup returns the semantic for (category, id).
func (r *Registry) Lookup(category Category, id string) (Semantic, bool) {
	i, ok := r.byKey[registryKey{category, id}]
	if !ok {
		return Semantic{}, false
	}
	return r.order[i], true
}

// LookupAny returns the semantic for id in any category. Chain settings
// carry bare semantic IDs, so this is the translation-time entry point.
func (r *Registry) LookupAny(id string) (Semantic, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Semantic{}, false
	}
	return r.order[i], true
}

// Prioritize picks the winning semantic among candidates: lowest Priority
// number first, ties broken by seed declaration order. Candidates unknown
// to the registry rank after all known ones.
func (r *Registry) Prioritize(candidates []Semantic) (Semantic, bool) {
	if len(candidates) == 0 {
		return Semantic{}, false
	}
	best := -1
	bestOrder := 0
	for i, c := range candidates {
		order, known := r.byKey[registryKey{c.Category, c.ID}]
		if !known {
			order = len(r.order) + i
		}
		if best < 0 ||
			c.Priority < candidates[best].Priority ||
			(c.Priority == candidates[best].Priority && order < bestOrder) {
			best = i
			bestOrder = order
		}
	}
	return candidates[best], true
}

// All returns every semantic in declaration order.
func (r *Registry) All() []Semantic {
	out := make([]Semantic, len(r.order))
	copy(out, r.order)
	return out
}

// ByCategory returns the semantics of one category in declaration order.
func (r *Registry) ByCategory(category Category) []Semantic {
	var out []Semantic
	for _, s := range r.order {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
