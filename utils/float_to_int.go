// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
// The positive side scales by 32767 so 1.0 does not overflow.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// AppendInt16 converts src with Float32ToInt16 and appends the result to dst.
func AppendInt16(dst []int16, src []float32) []int16 {
	if free := cap(dst) - len(dst); free < len(src) {
		grown := make([]int16, len(dst), len(dst)+max(len(src), cap(dst)))
		copy(grown, dst)
		dst = grown
	}

	start := len(dst)
	dst = dst[:start+len(src)]
	for i, x := range src {
		dst[start+i] = Float32ToInt16(x)
	}

	return dst
}
