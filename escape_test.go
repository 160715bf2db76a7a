package mandel

import "testing"

func TestEscapeTime(t *testing.T) {
	tests := []struct {
		name    string
		cx, cy  float64
		maxIter int
		want    int
	}{
		{"origin never escapes", 0, 0, 500, 500},
		{"(2,2) escapes after one step", 2, 2, 1, 1},
		{"(2,2) with larger cap", 2, 2, 100, 1},
		{"zero cap", 2, 2, 0, 0},
		{"real axis 0.5", 0.5, 0, 100, 5},
		{"cap cuts 0.5 short", 0.5, 0, 3, 3},
		{"0.5 escapes on the cap", 0.5, 0, 5, 5},
		{"bulb centre", -1, 0, 200, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeTime(tt.cx, tt.cy, tt.maxIter); got != tt.want {
				t.Errorf("EscapeTime(%g,%g,%d) = %d, want %d", tt.cx, tt.cy, tt.maxIter, got, tt.want)
			}
		})
	}
}

func TestIsCandidate(t *testing.T) {
	tests := []struct {
		cx, cy float64
		want   bool
	}{
		{-1, 0, false},     // period-2 bulb centre
		{-1.2, 0.1, false}, // inside the bulb
		{0, 0, false},      // cardioid
		{0.2, 0.3, false},  // cardioid, off axis
		{2, 2, true},
		{0.5, 0, true},
		{-1.5, 0, true}, // left of the bulb, inside the set but not excluded
	}
	for _, tt := range tests {
		if got := IsCandidate(tt.cx, tt.cy); got != tt.want {
			t.Errorf("IsCandidate(%g,%g) = %v, want %v", tt.cx, tt.cy, got, tt.want)
		}
	}
}

func TestIsCandidate_NeverExcludesEscapingPoints(t *testing.T) {
	for y := -1.0; y <= 1.0; y += 0.01 {
		for x := -2.0; x <= 1.0; x += 0.01 {
			if !IsCandidate(x, y) && EscapeTime(x, y, 2000) < 2000 {
				t.Fatalf("IsCandidate excluded (%g,%g) which escapes", x, y)
			}
		}
	}
}

func TestOrbitBetween(t *testing.T) {
	// c = 0.5 escapes on the step with index 4
	tests := []struct {
		name             string
		cx, cy           float64
		minIter, maxIter int
		want             bool
	}{
		{"first-step escape in [0,1)", 2, 2, 0, 1, true},
		{"first-step escape below window", 2, 2, 1, 10, false},
		{"index 4 in [4,5)", 0.5, 0, 4, 5, true},
		{"index 4 in [0,100)", 0.5, 0, 0, 100, true},
		{"index 4 above [0,4)", 0.5, 0, 0, 4, false},
		// EscapeTime(0.5, 0, 5) is 5, the cap, but the escape happened
		{"escape on the last allowed step", 0.5, 0, 0, 5, true},
		{"index 4 below [5,100)", 0.5, 0, 5, 100, false},
		{"bounded orbit", -1.5, 0, 0, 1000, false},
		{"filtered by bulb test", -1, 0, 0, 1000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrbitBetween(tt.cx, tt.cy, tt.minIter, tt.maxIter); got != tt.want {
				t.Errorf("OrbitBetween(%g,%g,%d,%d) = %v, want %v", tt.cx, tt.cy, tt.minIter, tt.maxIter, got, tt.want)
			}
		})
	}
}

func BenchmarkOrbitBetween(b *testing.B) {
	for i := 0; i < b.N; i++ {
		OrbitBetween(-0.75, 0.1, 20, 1000)
	}
}
