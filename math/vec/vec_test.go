package vec

import (
	"testing"
)

var (
	NULL = Vec3{}
)

func TestBasics(t *testing.T) {
	v := Vec3{1, 2, 3}
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Errorf("Vector construction is not obvious")
	}
}

func TestLength(t *testing.T) {
	if NULL.Length() != 0 {
		t.Errorf("Null vector has not 0 length")
	}
	v := Vec3{2, 2, 1}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{1, 2, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
}

func TestAdd(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Add(NULL, v)
	if !Equal(v, got) {
		t.Errorf("Adding a null vector changed the vector")
	}
	got = Add(v, v)
	want := Vec3{2, 4, 6}
	if !Equal(got, want) {
		t.Errorf("Add(%v,%v) = %v want %v", v, v, got, want)
	}
}

func TestSub(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Sub(v, NULL)
	if !Equal(v, got) {
		t.Errorf("Substracting a null vector changed the vector")
	}
	got = Sub(v, v)
	if !Equal(got, NULL) {
		t.Errorf("Sub(%v,%v) = %v want %v", v, v, got, NULL)
	}
}

func TestDot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	got := Dot(a, b)
	if got != 12 {
		t.Errorf("Dot(%v,%v) = %v want 12", a, b, got)
	}
}

func TestScale(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := v.Scale(2)
	want := Vec3{2, 4, 6}
	if !Equal(got, want) {
		t.Errorf("Scale(%v,2) = %v want %v", v, got, want)
	}
}

func TestNormalize(t *testing.T) {
	got := NULL.Normalize()
	if !Equal(got, NULL) {
		t.Errorf("Normalizing the null vector did not return the null vector")
	}
	v := Vec3{0, 3, 0}
	got = v.Normalize()
	want := Vec3{0, 1, 0}
	if !Equal(got, want) {
		t.Errorf("Normalize(%v) = %v want %v", v, got, want)
	}
}

func TestLerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 4, 6}
	got := Lerp(a, b, 0.5)
	want := Vec3{1, 2, 3}
	if !Equal(got, want) {
		t.Errorf("Lerp(%v,%v,0.5) = %v want %v", a, b, got, want)
	}
}
