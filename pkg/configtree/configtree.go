// Package configtree applies dot-path updates to untyped JSON-like documents.
//
// A document is a tree of map[string]any, []any and scalar leaves, the shape
// produced by decoding JSON into an interface value. All mutating functions
// return a new document and leave the input untouched, so callers can detect
// changes by comparing the old and the new value.
//
// Paths are dot separated keys ("footer.links"). There is no bracket syntax.
// A segment that lands on an array and parses as an in-range index descends
// into that element, any other segment is treated as an object key.
package configtree

import (
	"reflect"
	"strconv"
	"strings"
)

// Document is the root of a configuration tree.
type Document = map[string]any

// Separator splits path segments.
const Separator = "."

// Set returns a copy of doc with value assigned at path.
//
// Missing intermediate objects are created. An intermediate scalar is replaced
// by an empty object.
func Set(doc Document, path string, value any) Document {
	out := Clone(doc)
	parent, key := walk(out, path)
	parent.set(key, cloneValue(value))
	return out
}

// Append returns a copy of doc with item pushed to the array at path.
//
// If the terminal value is absent or is not an array it is replaced by a new
// array holding only item.
func Append(doc Document, path string, item any) Document {
	out := Clone(doc)
	parent, key := walk(out, path)
	arr, _ := parent.get(key).([]any)
	parent.set(key, append(arr, cloneValue(item)))
	return out
}

// RemoveAt returns a copy of doc without the element at index of the array at
// path. Out of range indices and non-array terminals leave the copy unchanged.
func RemoveAt(doc Document, path string, index int) Document {
	out := Clone(doc)
	parent, key := walk(out, path)
	arr, ok := parent.get(key).([]any)
	if !ok || index < 0 || index >= len(arr) {
		return out
	}
	next := make([]any, 0, len(arr)-1)
	next = append(next, arr[:index]...)
	next = append(next, arr[index+1:]...)
	parent.set(key, next)
	return out
}

// Get returns the value stored at path. The returned value is shared with doc.
func Get(doc Document, path string) (any, bool) {
	var cur any = doc
	for _, seg := range split(path) {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, ok := arrayIndex(node, seg)
			if !ok {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Clone returns a deep copy of doc. A nil doc yields an empty document.
func Clone(doc Document) Document {
	if doc == nil {
		return Document{}
	}
	return cloneValue(doc).(map[string]any)
}

// Equal reports whether a and b hold the same tree.
func Equal(a, b Document) bool {
	return reflect.DeepEqual(a, b)
}

func cloneValue(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[k] = cloneValue(child)
		}
		return out
	case []any:
		if node == nil {
			return []any(nil)
		}
		out := make([]any, len(node))
		for i, child := range node {
			out[i] = cloneValue(child)
		}
		return out
	default:
		return v
	}
}

// container is the node holding a segment: an object or an array.
type container struct {
	obj map[string]any
	arr []any
}

func (c container) get(key string) any {
	if c.obj != nil {
		return c.obj[key]
	}
	if i, ok := arrayIndex(c.arr, key); ok {
		return c.arr[i]
	}
	return nil
}

func (c container) set(key string, v any) {
	if c.obj != nil {
		c.obj[key] = v
		return
	}
	if i, ok := arrayIndex(c.arr, key); ok {
		c.arr[i] = v
	}
}

// walk descends doc along every segment but the last, creating objects as
// needed, and returns the container of the last segment.
//
// An array is only entered when the following segment is an in-range index.
// Otherwise the rest of the path is written into a detached object, leaving
// the array as it was.
func walk(doc Document, path string) (container, string) {
	segs := split(path)
	last := len(segs) - 1

	cur := container{obj: doc}
	for i, seg := range segs[:last] {
		switch node := cur.get(seg).(type) {
		case map[string]any:
			cur = container{obj: node}
			continue
		case []any:
			if _, ok := arrayIndex(node, segs[i+1]); ok {
				cur = container{arr: node}
			} else {
				cur = container{obj: map[string]any{}}
			}
			continue
		}
		fresh := map[string]any{}
		cur.set(seg, fresh)
		cur = container{obj: fresh}
	}
	return cur, segs[last]
}

func split(path string) []string {
	return strings.Split(path, Separator)
}

func arrayIndex(arr []any, seg string) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= len(arr) {
		return 0, false
	}
	return i, true
}
