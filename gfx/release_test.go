// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import "testing"

type releaseRecorder struct {
	name  string
	order *[]string
}

func (r *releaseRecorder) Release() {
	*r.order = append(*r.order, r.name)
}

func TestReleaserReverseOrder(t *testing.T) {
	var (
		order    []string
		releaser Releaser
	)
	for _, name := range []string{"device", "texture", "view"} {
		releaser.Track(&releaseRecorder{name: name, order: &order})
	}

	if releaser.Len() != 3 {
		t.Fatalf("incorrect number of tracked items: %d", releaser.Len())
	}

	releaser.Release()
	releaser.Release()

	expected := []string{"view", "texture", "device"}
	if len(order) != len(expected) {
		t.Fatalf("released %d items, expected %d", len(order), len(expected))
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("release %d: got %s, expected %s", i, order[i], expected[i])
		}
	}
}

func TestReleaserIgnoresNil(t *testing.T) {
	var (
		releaser Releaser
		typedNil *releaseRecorder
		buffer   Buffer
	)
	releaser.Track(nil, typedNil, buffer)
	if releaser.Len() != 0 {
		t.Fatalf("nil items must not be tracked, got %d", releaser.Len())
	}
	releaser.Release()
}
