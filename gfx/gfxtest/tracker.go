// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfxtest provides a recording gfx backend for tests.
package gfxtest

import "fmt"

// Tracker records the lifetime of every resource created through a Recorder.
// A release is a violation when a live resource still depends on the
// released one, or when the resource was already released.
type Tracker struct {
	resources  []*Resource
	Releases   []*Resource
	Violations []string
}

// Resource is a fake GPU resource. It implements every gfx handle interface.
type Resource struct {
	ID   int
	Kind string
	Desc interface{}
	Data []byte

	deps     []*Resource
	released bool
	tracker  *Tracker
}

// New creates a live resource depending on deps.
func (t *Tracker) New(kind string, desc interface{}, deps ...*Resource) *Resource {
	r := &Resource{
		ID:      len(t.resources) + 1,
		Kind:    kind,
		Desc:    desc,
		tracker: t,
	}
	for _, d := range deps {
		if d != nil {
			r.deps = append(r.deps, d)
		}
	}
	t.resources = append(t.resources, r)
	return r
}

// Live returns the resources not yet released, in creation order.
func (t *Tracker) Live() []*Resource {
	var live []*Resource
	for _, r := range t.resources {
		if !r.released {
			live = append(live, r)
		}
	}
	return live
}

// Created returns every resource of kind, in creation order.
func (t *Tracker) Created(kind string) []*Resource {
	var found []*Resource
	for _, r := range t.resources {
		if r.Kind == kind {
			found = append(found, r)
		}
	}
	return found
}

// Release implements gfx.Releasable.
func (r *Resource) Release() {
	t := r.tracker
	if r.released {
		t.Violations = append(t.Violations, fmt.Sprintf("%s released twice", r))
		return
	}
	for _, other := range t.resources {
		if other.released || other == r {
			continue
		}
		if other.DependsOn(r) {
			t.Violations = append(t.Violations, fmt.Sprintf("%s released while %s still references it", r, other))
		}
	}
	r.released = true
	t.Releases = append(t.Releases, r)
}

// Released reports whether Release was called.
func (r *Resource) Released() bool {
	return r.released
}

// DependsOn reports whether r directly depends on other.
func (r *Resource) DependsOn(other *Resource) bool {
	for _, d := range r.deps {
		if d == other {
			return true
		}
	}
	return false
}

func (r *Resource) String() string {
	return fmt.Sprintf("%s#%d", r.Kind, r.ID)
}
