// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model_test

import (
	"math"
	"testing"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/echo/model"
)

const epsilon = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func TestClientProjection(t *testing.T) {
	p := model.ClientProjection(1280, 720)

	yScale := float32(1 / math.Tan(math.Pi/8))
	expected := map[int]float32{
		0:  yScale / (1280.0 / 720.0),
		5:  yScale,
		10: 100 / (100 - 0.1),
		11: 1,
		14: -0.1 * 100 / (100 - 0.1),
	}
	for i := 0; i < 16; i++ {
		if !near(p[i], expected[i]) {
			t.Errorf("element %d: got %f, expected %f", i, p[i], expected[i])
		}
	}
}

func TestProjectionWidthChangesAspectTermsOnly(t *testing.T) {
	a := model.ClientProjection(1280, 720)
	b := model.ClientProjection(1920, 720)

	if a[0] == b[0] {
		t.Error("aspect term did not change with width")
	}
	for i := 1; i < 16; i++ {
		if a[i] != b[i] {
			t.Errorf("element %d changed with width: %f != %f", i, a[i], b[i])
		}
	}
}

func TestProjectionDepthRange(t *testing.T) {
	p := model.PerspectiveLH(model.FieldOfView, 16.0/9.0, model.NearPlane, model.FarPlane)

	for _, test := range []struct {
		z     float32
		depth float32
	}{
		{model.NearPlane, 0},
		{model.FarPlane, 1},
	} {
		v := p.Mul4x1(glm.Vec4{0, 0, test.z, 1})
		if !near(v.Z()/v.W(), test.depth) {
			t.Errorf("z=%f maps to depth %f, expected %f", test.z, v.Z()/v.W(), test.depth)
		}
	}
}

func TestDefaultCameraView(t *testing.T) {
	view := model.DefaultCamera.View()

	for _, test := range []struct {
		in, out glm.Vec3
	}{
		{glm.Vec3{0, 0, -10}, glm.Vec3{0, 0, 0}},
		{glm.Vec3{0, 0, 0}, glm.Vec3{0, 0, 10}},
		{glm.Vec3{1, 0, -10}, glm.Vec3{1, 0, 0}},
		{glm.Vec3{0, 1, -10}, glm.Vec3{0, 1, 0}},
	} {
		got := view.Mul4x1(test.in.Vec4(1)).Vec3()
		if !near(got.X(), test.out.X()) || !near(got.Y(), test.out.Y()) || !near(got.Z(), test.out.Z()) {
			t.Errorf("%v transformed to %v, expected %v", test.in, got, test.out)
		}
	}
}

func TestRotationAccumulation(t *testing.T) {
	r := model.NewRotation(glm.Vec3{0, 1, 1}, 90)
	for i := 0; i < 3; i++ {
		r.Advance(1.0 / 30.0)
	}
	if !near(r.Angle, 9) {
		t.Fatalf("angle is %f, expected 9", r.Angle)
	}

	// Rodrigues' rotation formula about the normalized axis
	k := [3]float64{0, 1 / math.Sqrt2, 1 / math.Sqrt2}
	theta := 9 * math.Pi / 180
	s, c := math.Sin(theta), math.Cos(theta)
	cross := [3][3]float64{
		{0, -k[2], k[1]},
		{k[2], 0, -k[0]},
		{-k[1], k[0], 0},
	}

	m := r.Matrix()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			expected := s*cross[row][col] + (1-c)*k[row]*k[col]
			if row == col {
				expected += c
			}
			if !near(m.At(row, col), float32(expected)) {
				t.Errorf("(%d,%d): got %f, expected %f", row, col, m.At(row, col), expected)
			}
		}
	}
	if m.At(3, 3) != 1 {
		t.Error("rotation must be homogeneous")
	}
}

func TestRotationHasNoModulo(t *testing.T) {
	r := model.NewRotation(glm.Vec3{0, 1, 1}, 90)
	r.Advance(5)
	if r.Angle != 450 {
		t.Fatalf("angle is %f, expected 450", r.Angle)
	}

	quarter := model.NewRotation(glm.Vec3{0, 1, 1}, 90)
	quarter.Advance(1)
	full, want := r.Matrix(), quarter.Matrix()
	for i := range full {
		if !near(full[i], want[i]) {
			t.Errorf("element %d: 450 degrees gives %f, 90 degrees gives %f", i, full[i], want[i])
		}
	}
}
