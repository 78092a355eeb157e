package pathset

// Iterator walks a snapshot of a collection in path order. Remove deletes
// the current entry from the collection without disturbing the iteration.
//
//	it := c.Iterator()
//	for it.Next() {
//		if strings.HasSuffix(it.Path(), ".bak") {
//			it.Remove()
//		}
//	}
type Iterator struct {
	c       *Collection
	entries []Entry
	pos     int
}

// Iterator returns an iterator positioned before the first entry.
func (c *Collection) Iterator() *Iterator {
	return &Iterator{c: c, entries: c.Entries(), pos: -1}
}

// Next advances to the next entry and reports whether there is one.
func (it *Iterator) Next() bool {
	if it.pos < len(it.entries) {
		it.pos++
	}
	return it.pos < len(it.entries)
}

// Entry returns the current entry.
func (it *Iterator) Entry() Entry {
	return it.entries[it.pos]
}

// Path returns the absolute path of the current entry.
func (it *Iterator) Path() string {
	return it.Entry().Path()
}

// Remove deletes the current entry from the collection.
func (it *Iterator) Remove() {
	delete(it.c.entries, it.Entry())
}
