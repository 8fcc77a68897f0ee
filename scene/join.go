package scene

import "strconv"

// ----------------------------------------------------------------------------
// Join

// A Join binds a list of keys to the direct children of a parent which share
// a tag and a class.
//
// Children whose key is in the list are retained, keys without a child get a
// freshly appended child (they enter) and children whose key is no longer
// listed are stale (they exit). Elems is in key order. A key listed n times
// binds the first n children carrying it.
type Join struct {
	Parent *Element
	Elems  []*Element

	entered []bool
	stale   []*Element
}

// Join computes the join of keys against the tag/class children of e.
// Entering elements are appended immediately with Key set; stale elements
// stay in place until Exit is called.
func (e *Element) Join(tag Tag, class string, keys []string) *Join {
	j := &Join{
		Parent:  e,
		Elems:   make([]*Element, len(keys)),
		entered: make([]bool, len(keys)),
	}

	// Repeated keys bind to same-keyed children in document order.
	bound := make(map[string][]*Element)
	existing := e.ChildrenOf(tag, class)
	for _, c := range existing {
		bound[c.Key] = append(bound[c.Key], c)
	}

	used := make(map[*Element]bool)
	for i, k := range keys {
		if q := bound[k]; len(q) > 0 {
			bound[k] = q[1:]
			used[q[0]] = true
			j.Elems[i] = q[0]
			continue
		}
		c := e.Append(tag, class)
		c.Key = k
		j.Elems[i] = c
		j.entered[i] = true
	}

	for _, c := range existing {
		if !used[c] {
			j.stale = append(j.stale, c)
		}
	}
	return j
}

// Len returns the number of bound keys.
func (j *Join) Len() int { return len(j.Elems) }

// Entered reports whether the i'th element was created by this join.
func (j *Join) Entered(i int) bool { return j.entered[i] }

// NumEntered returns the number of created elements.
func (j *Join) NumEntered() int {
	n := 0
	for _, e := range j.entered {
		if e {
			n++
		}
	}
	return n
}

// NumStale returns the number of elements Exit removes.
func (j *Join) NumStale() int { return len(j.stale) }

// Enter calls fn for every created element.
func (j *Join) Enter(fn func(i int, el *Element)) {
	for i, el := range j.Elems {
		if j.entered[i] {
			fn(i, el)
		}
	}
}

// Update calls fn for every retained element.
func (j *Join) Update(fn func(i int, el *Element)) {
	for i, el := range j.Elems {
		if !j.entered[i] {
			fn(i, el)
		}
	}
}

// Each calls fn for every bound element, created or retained.
func (j *Join) Each(fn func(i int, el *Element)) {
	for i, el := range j.Elems {
		fn(i, el)
	}
}

// Exit removes the stale elements and returns how many were removed.
func (j *Join) Exit() int {
	n := len(j.stale)
	for _, c := range j.stale {
		c.Remove()
	}
	j.stale = nil
	return n
}

// IndexKeys returns the keys "0", "1", ..., n-1 for joins bound by position.
func IndexKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}
