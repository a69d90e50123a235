package ual

// appendSide links the given (idx, isA) occurrence onto the tail of
// owner's incidence list (linkBack semantics for one side).
func (g *Graph[K, GV, VV, EV]) appendSide(owner K, l link) {
	vr := &g.vertices[owner]
	e := &g.edges[l.idx]
	e.setPrev(l.isA, vr.tail)
	e.setNext(l.isA, noLink)
	if vr.tail.idx < 0 {
		vr.head = l
	} else {
		g.edges[vr.tail.idx].setNext(vr.tail.isA, l)
	}
	vr.tail = l
	vr.size++
}

// prependSide links the given (idx, isA) occurrence onto the head of
// owner's incidence list (linkFront semantics for one side).
func (g *Graph[K, GV, VV, EV]) prependSide(owner K, l link) {
	vr := &g.vertices[owner]
	e := &g.edges[l.idx]
	e.setNext(l.isA, vr.head)
	e.setPrev(l.isA, noLink)
	if vr.head.idx < 0 {
		vr.tail = l
	} else {
		g.edges[vr.head.idx].setPrev(vr.head.isA, l)
	}
	vr.head = l
	vr.size++
}

// unlinkSide splices the given (idx, isA) occurrence out of owner's
// incidence list, maintaining head/tail/size.
func (g *Graph[K, GV, VV, EV]) unlinkSide(owner K, l link) {
	vr := &g.vertices[owner]
	e := &g.edges[l.idx]
	p := e.prev(l.isA)
	n := e.next(l.isA)
	if p.idx < 0 {
		vr.head = n
	} else {
		g.edges[p.idx].setNext(p.isA, n)
	}
	if n.idx < 0 {
		vr.tail = p
	} else {
		g.edges[n.idx].setPrev(n.isA, p)
	}
	vr.size--
}

// linkBack appends edge idx (with endpoints a, b already set) into both
// endpoints' incidence lists. This is the default linkage on insertion.
func (g *Graph[K, GV, VV, EV]) linkBack(idx int) {
	e := &g.edges[idx]
	g.appendSide(e.a, link{idx: idx, isA: true})
	g.appendSide(e.b, link{idx: idx, isA: false})
}

// linkFront prepends edge idx into both endpoints' incidence lists.
func (g *Graph[K, GV, VV, EV]) linkFront(idx int) {
	e := &g.edges[idx]
	g.prependSide(e.a, link{idx: idx, isA: true})
	g.prependSide(e.b, link{idx: idx, isA: false})
}

// unlink splices edge idx out of both endpoints' incidence lists. It does
// not deallocate idx; the caller recycles it.
func (g *Graph[K, GV, VV, EV]) unlink(idx int) {
	e := &g.edges[idx]
	g.unlinkSide(e.a, link{idx: idx, isA: true})
	g.unlinkSide(e.b, link{idx: idx, isA: false})
}

// createEdge allocates (recycling a freed slab slot when available),
// links the new edge into both endpoints' incidence lists via linkBack,
// and returns its slab index.
func (g *Graph[K, GV, VV, EV]) createEdge(u, v K, value EV) int {
	node := edgeNode[K, EV]{a: u, b: v, value: value, prevA: noLink, nextA: noLink, prevB: noLink, nextB: noLink}

	var idx int
	if n := len(g.free); n > 0 {
		idx = g.free[n-1]
		g.free = g.free[:n-1]
		g.edges[idx] = node
	} else {
		idx = len(g.edges)
		g.edges = append(g.edges, node)
	}

	g.linkBack(idx)
	g.edgeCount++

	return idx
}

// eraseEdge unlinks edge idx from both incidence lists, clears its slot,
// and recycles the slab index.
func (g *Graph[K, GV, VV, EV]) eraseEdge(idx int) {
	g.unlink(idx)
	var zero edgeNode[K, EV]
	g.edges[idx] = zero
	g.free = append(g.free, idx)
	g.edgeCount--
}
