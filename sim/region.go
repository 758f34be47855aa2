package sim

// Region is one simulated device memory window with an owned backing buffer.
type Region struct {
	Base uint32
	Len  uint32

	buf    []byte
	cursor uint32
}

func newRegion(base, length uint32) *Region {
	return &Region{
		Base: base,
		Len:  length,
		buf:  make([]byte, length),
	}
}

// Contains reports whether addr falls inside [Base, Base+Len).
func (r *Region) Contains(addr uint32) bool {
	return addr >= r.Base && uint64(addr) < uint64(r.Base)+uint64(r.Len)
}

// Write copies p at the write cursor and advances it. The region is left
// untouched if p does not fit.
func (r *Region) Write(p []byte) error {
	if uint64(r.cursor)+uint64(len(p)) > uint64(r.Len) {
		return &OverflowError{
			Base:   r.Base,
			Len:    r.Len,
			Cursor: r.cursor,
			Count:  uint32(len(p)),
		}
	}

	copy(r.buf[r.cursor:], p)
	r.cursor += uint32(len(p))
	return nil
}

// ReadAt returns a copy of n bytes starting at the absolute address addr.
func (r *Region) ReadAt(addr, n uint32) ([]byte, error) {
	if !r.Contains(addr) {
		return nil, &AddressError{Addr: addr}
	}

	off := uint64(addr - r.Base)
	if off+uint64(n) > uint64(r.Len) {
		return nil, &RangeError{Addr: addr, Count: n, Base: r.Base, Len: r.Len}
	}

	out := make([]byte, n)
	copy(out, r.buf[off:off+uint64(n)])
	return out, nil
}

// Written returns the number of bytes received by data phases so far.
func (r *Region) Written() uint32 { return r.cursor }

// Bytes returns a copy of the backing buffer.
func (r *Region) Bytes() []byte {
	out := make([]byte, len(r.buf))
	copy(out, r.buf)
	return out
}

// Registry owns the simulated regions in creation order.
type Registry struct {
	regions []*Region
}

// Append allocates a zeroed region and appends it.
func (g *Registry) Append(base, length uint32) *Region {
	r := newRegion(base, length)
	g.regions = append(g.regions, r)
	return r
}

// FindContaining returns the first region, in creation order, whose window
// contains addr.
func (g *Registry) FindContaining(addr uint32) (*Region, bool) {
	for _, r := range g.regions {
		if r.Contains(addr) {
			return r, true
		}
	}
	return nil, false
}

// ReleaseAll drops every region. Calling it on an empty registry is a no-op.
func (g *Registry) ReleaseAll() {
	clear(g.regions)
	g.regions = nil
}

// Len returns the number of regions.
func (g *Registry) Len() int { return len(g.regions) }

// At returns the i-th region in creation order.
func (g *Registry) At(i int) *Region { return g.regions[i] }

// Regions returns a copy of the region list in creation order.
func (g *Registry) Regions() []*Region {
	out := make([]*Region, len(g.regions))
	copy(out, g.regions)
	return out
}
