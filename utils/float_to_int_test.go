// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0.0, 0},
		{"max positive", 1.0, math.MaxInt16},
		{"max negative", -1.0, -math.MaxInt16},
		{"half positive", 0.5, 16383},
		{"half negative", -0.5, -16383},
		{"small positive", 0.001, 32},
		{"clamp over max", 1.5, math.MaxInt16},
		{"clamp under min", -7, -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestAppendInt16(t *testing.T) {
	t.Parallel()

	dst := []int16{7}
	dst = AppendInt16(dst, []float32{0, 1, -1, 2})

	want := []int16{7, 0, math.MaxInt16, -math.MaxInt16, math.MaxInt16}
	if len(dst) != len(want) {
		t.Fatalf("len(dst) = %d, want %d", len(dst), len(want))
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestAppendInt16_Grows(t *testing.T) {
	t.Parallel()

	var dst []int16
	for range 10 {
		dst = AppendInt16(dst, make([]float32, 1000))
	}

	if len(dst) != 10000 {
		t.Errorf("len(dst) = %d, want 10000", len(dst))
	}
}
