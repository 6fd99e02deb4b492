package core

import "testing"

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))

	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{"at zero returns origin", 0, NewVec3(1, 2, 3)},
		{"positive t", 1.5, NewVec3(1, 2, 0)},
		{"negative t", -1, NewVec3(1, 2, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ray.At(tt.t)
			if result.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}
