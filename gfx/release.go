// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import "reflect"

// Releaser collects acquired resources and releases them
// in reverse acquisition order. The zero value is ready to use.
type Releaser struct {
	items []Releasable
}

// Track remembers items for release. Nil values, including
// typed nil pointers, are ignored.
func (r *Releaser) Track(items ...Releasable) {
	for _, item := range items {
		if isNil(item) {
			continue
		}
		r.items = append(r.items, item)
	}
}

// Len returns the number of resources waiting for release.
func (r *Releaser) Len() int {
	return len(r.items)
}

// Release releases every tracked resource, newest first. Calling it
// again is a no-op until something new is tracked.
func (r *Releaser) Release() {
	for i := len(r.items) - 1; i >= 0; i-- {
		r.items[i].Release()
		r.items[i] = nil
	}
	r.items = r.items[:0]
}

func isNil(item Releasable) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
