package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{
			name:     "Add",
			got:      NewVec3(1, 2, 3).Add(NewVec3(4, 5, 6)),
			expected: NewVec3(5, 7, 9),
		},
		{
			name:     "Subtract",
			got:      NewVec3(4, 5, 6).Subtract(NewVec3(1, 2, 3)),
			expected: NewVec3(3, 3, 3),
		},
		{
			name:     "Multiply",
			got:      NewVec3(1, -2, 3).Multiply(2),
			expected: NewVec3(2, -4, 6),
		},
		{
			name:     "MultiplyVec",
			got:      NewVec3(1, 2, 3).MultiplyVec(NewVec3(2, 3, 4)),
			expected: NewVec3(2, 6, 12),
		},
		{
			name:     "DivideVec",
			got:      NewVec3(2, 6, 12).DivideVec(NewVec3(2, 3, 4)),
			expected: NewVec3(1, 2, 3),
		},
		{
			name:     "Negate",
			got:      NewVec3(1, -2, 3).Negate(),
			expected: NewVec3(-1, 2, -3),
		},
		{
			name:     "Cross",
			got:      NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)),
			expected: NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-12
			if tt.got.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_Dot(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	expected := 4.0 - 10.0 + 18.0
	if got := a.Dot(b); got != expected {
		t.Errorf("Expected dot product %f, got %f", expected, got)
	}
}

func TestVec3_Length(t *testing.T) {
	v := NewVec3(3, 4, 0)
	if got := v.Length(); got != 5.0 {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := v.LengthSquared(); got != 25.0 {
		t.Errorf("Expected squared length 25, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, -4, 0).Normalize()

	const tolerance = 1e-12
	if math.Abs(v.Length()-1.0) > tolerance {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if v.Subtract(NewVec3(0.6, -0.8, 0)).Length() > tolerance {
		t.Errorf("Expected (0.6, -0.8, 0), got %v", v)
	}
}

func TestVec3_Normalize_ZeroVector(t *testing.T) {
	v := NewVec3(0, 0, 0).Normalize()
	if v != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", v)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 1))

	got := ray.At(2.5)
	expected := NewVec3(1, 2, 5.5)
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
