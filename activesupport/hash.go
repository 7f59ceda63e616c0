package activesupport

type Hash map[string]interface{}

func (h Hash) HasKey(k string) bool {
	_, ok := h[k]
	return ok
}

func (h Hash) IsEmpty() bool {
	return len(h) == 0
}

func (h Hash) ToHash() Hash {
	return h
}

func (h Hash) Keys() StringSlice {
	keys := make(StringSlice, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	return keys
}

func (h Hash) Copy() Hash {
	hcopy := make(Hash, len(h))
	for k, v := range h {
		hcopy[k] = v
	}
	return hcopy
}

// Slice returns a new hash containing only the given keys, keys
// missing from the original hash are left out.
func (h Hash) Slice(keys ...string) Hash {
	hcopy := make(Hash, len(keys))
	for _, k := range keys {
		if v, ok := h[k]; ok {
			hcopy[k] = v
		}
	}
	return hcopy
}

// Except returns a new hash without the given keys.
func (h Hash) Except(keys ...string) Hash {
	hcopy := h.Copy()
	for _, k := range keys {
		delete(hcopy, k)
	}
	return hcopy
}

func (h Hash) Merged(others ...Hash) Hash {
	hcopy := h.Copy()
	for _, other := range others {
		for k, v := range other {
			hcopy[k] = v
		}
	}
	return hcopy
}

func (h Hash) Merge(others ...Hash) Hash {
	for _, other := range others {
		for k, v := range other {
			h[k] = v
		}
	}
	return h
}

type HashConverter interface {
	ToHash() Hash
}

type HashArrayConverter interface {
	ToHashArray() []Hash
}
