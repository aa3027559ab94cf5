package cache

// lruList is an intrusive doubly-linked recency list. The front holds the
// most recently used key, the back the eviction candidate. Not safe for
// concurrent use; the owning shard's lock covers it.
type lruList[K any] struct {
	front *lruNode[K]
	back  *lruNode[K]
	len   int
}

type lruNode[K any] struct {
	key  K
	prev *lruNode[K]
	next *lruNode[K]
}

// pushFront inserts a new node for key at the front of the list.
func (l *lruList[K]) pushFront(key K) *lruNode[K] {
	n := &lruNode[K]{key: key, next: l.front}
	if l.front != nil {
		l.front.prev = n
	}
	l.front = n
	if l.back == nil {
		l.back = n
	}
	l.len++
	return n
}

// moveToFront marks the node as most recently used.
func (l *lruList[K]) moveToFront(n *lruNode[K]) {
	if l.front == n {
		return
	}
	l.unlink(n)
	n.prev, n.next = nil, l.front
	if l.front != nil {
		l.front.prev = n
	}
	l.front = n
	if l.back == nil {
		l.back = n
	}
	l.len++
}

// remove unlinks the node from the list.
func (l *lruList[K]) remove(n *lruNode[K]) {
	l.unlink(n)
}

// removeOldest unlinks and returns the back node's key.
func (l *lruList[K]) removeOldest() (K, bool) {
	if l.back == nil {
		var zero K
		return zero, false
	}
	key := l.back.key
	l.unlink(l.back)
	return key, true
}

func (l *lruList[K]) unlink(n *lruNode[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else if l.front == n {
		l.front = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else if l.back == n {
		l.back = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}
