// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func vecEqual(a, b Vector2D) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestVector2D_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Vector2D
		expected Vector2D
	}{
		{"add_mixed_signs", Vector2D{X: 5, Y: -3}.Add(Vector2D{X: -2, Y: 7}), Vector2D{X: 3, Y: 4}},
		{"sub_positive", Vector2D{X: 5, Y: 7}.Sub(Vector2D{X: 2, Y: 3}), Vector2D{X: 3, Y: 4}},
		{"scale_negative", Vector2D{X: 1, Y: -2}.Scale(-2), Vector2D{X: -2, Y: 4}},
		{"neg", Vector2D{X: 1, Y: -2}.Neg(), Vector2D{X: -1, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecEqual(tt.got, tt.expected) {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}
}

func TestVector2D_Length(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		expected float64
	}{
		{"three_four_five", Vector2D{X: 3, Y: 4}, 5},
		{"zero_vector", Vector2D{}, 0},
		{"diagonal", Vector2D{X: 10, Y: 10}, 10 * math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); math.Abs(got-tt.expected) > epsilon {
				t.Errorf("Length() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVector2D_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		angle    float64
		expected Vector2D
	}{
		{"quarter_turn", Vector2D{X: 1, Y: 0}, math.Pi / 2, Vector2D{X: 0, Y: 1}},
		{"half_turn", Vector2D{X: 1, Y: 2}, math.Pi, Vector2D{X: -1, Y: -2}},
		{"negative_quarter", Vector2D{X: 1, Y: 0}, -math.Pi / 2, Vector2D{X: 0, Y: -1}},
		{"no_rotation", Vector2D{X: 3, Y: 4}, 0, Vector2D{X: 3, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Rotate(tt.angle); !vecEqual(got, tt.expected) {
				t.Errorf("Rotate(%v) = %v, expected %v", tt.angle, got, tt.expected)
			}
		})
	}
}

func TestVector2D_Angle(t *testing.T) {
	v := Vector2D{X: 1, Y: math.Sqrt(3)}
	if math.Abs(v.Angle()-math.Pi/3) > epsilon {
		t.Errorf("Angle() = %v, expected %v", v.Angle(), math.Pi/3)
	}
}

func TestVector2D_DistanceAndDot(t *testing.T) {
	a := Vector2D{X: 1, Y: 1}
	b := Vector2D{X: 4, Y: 5}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance() = %v, expected 5", got)
	}
	if got := a.Dot(b); got != 9 {
		t.Errorf("Dot() = %v, expected 9", got)
	}
}

func TestVector2D_CPRoundTrip(t *testing.T) {
	v := Vector2D{X: -10, Y: 20}
	if got := FromCP(v.ToCP()); got != v {
		t.Errorf("FromCP(ToCP()) = %v, expected %v", got, v)
	}
}
