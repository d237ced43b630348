package world

import "testing"

func TestHeightFromConstantNoise(t *testing.T) {
	tests := []struct {
		noise float64
		want  int
	}{
		{-1, 10},
		{-0.6, 10},
		{-0.5, 11},
		{0, 12},
		{0.49, 12},
		{0.5, 13},
		{0.99, 13},
		{1, 14},
		{3, 14},  // clamped
		{-7, 10}, // clamped
	}
	for _, tt := range tests {
		h := NewHeightField(ConstantNoise(tt.noise), 80, 10)
		for _, col := range [][2]int{{0, 0}, {-17, 33}, {1000, -1000}} {
			if got := h.Height(col[0], col[1]); got != tt.want {
				t.Errorf("noise %v: Height(%d,%d) = %d, want %d", tt.noise, col[0], col[1], got, tt.want)
			}
		}
	}
}

func TestHeightSamplesScaledCoordinates(t *testing.T) {
	var gotU, gotV float64
	h := NewHeightField(NoiseFunc(func(u, v float64) float64 {
		gotU, gotV = u, v
		return 0
	}), 80, 10)
	h.Height(40, -160)
	if gotU != 0.5 || gotV != -2 {
		t.Errorf("sampled (%f,%f), want (0.5,-2)", gotU, gotV)
	}
}

func TestHeightDeterministic(t *testing.T) {
	a := NewHeightField(NewSimplex(12), 80, 10)
	b := NewHeightField(NewSimplex(12), 80, 10)
	for x := -64; x < 64; x += 3 {
		for z := -64; z < 64; z += 5 {
			ha, hb := a.Height(x, z), b.Height(x, z)
			if ha != hb {
				t.Fatalf("Height(%d,%d) differs: %d vs %d", x, z, ha, hb)
			}
			if ha < 10 || ha > 10+HeightAmplitude {
				t.Fatalf("Height(%d,%d) = %d outside [10,%d]", x, z, ha, 10+HeightAmplitude)
			}
		}
	}
}

func BenchmarkHeight(b *testing.B) {
	h := NewHeightField(NewSimplex(12), 80, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Height(i%1024, (i*31)%1024)
	}
}
