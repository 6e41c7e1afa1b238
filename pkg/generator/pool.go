package generator

// NewPool returns a generator that picks one of values uniformly at random.
// The values are copied; later changes to the caller's slice have no effect.
func NewPool(values ...string) (*Generator, error) {
	if len(values) == 0 {
		return nil, ErrEmptyPool
	}
	return &Generator{
		kind:   KindPool,
		values: append([]string(nil), values...),
	}, nil
}

// Values returns a copy of the pool's values, or nil for other kinds.
func (g *Generator) Values() []string {
	if g.kind != KindPool {
		return nil
	}
	return append([]string(nil), g.values...)
}
