package v128

import "testing"

func TestProcessWithTail(t *testing.T) {
	for _, size := range []int{0, 3, 4, 5, 8, 11} {
		data := make([]float32, size)
		for i := range data {
			data[i] = float32(i)
		}
		out := make([]float32, size)

		var full, tails int
		ProcessWithTail[float32](size,
			func(offset int) {
				full++
				v := LoadSlice(data[offset:])
				v.Add(v).StoreSlice(out[offset:])
			},
			func(offset, count int) {
				tails++
				if count <= 0 || count >= 4 {
					t.Errorf("size %d: tail count %d out of range", size, count)
				}
				v := LoadSlice(data[offset : offset+count])
				v.Add(v).StoreSlice(out[offset : offset+count])
			},
		)

		if full != size/4 {
			t.Errorf("size %d: got %d full vectors, want %d", size, full, size/4)
		}
		wantTails := 0
		if size%4 != 0 {
			wantTails = 1
		}
		if tails != wantTails {
			t.Errorf("size %d: got %d tail calls, want %d", size, tails, wantTails)
		}
		for i := range out {
			if out[i] != 2*data[i] {
				t.Errorf("size %d: out[%d] = %v, want %v", size, i, out[i], 2*data[i])
			}
		}
	}
}

func TestProcessWithTailNoMask(t *testing.T) {
	data := make([]int32, 10)
	var offsets []int
	ProcessWithTailNoMask[int32](len(data), func(offset int) {
		offsets = append(offsets, offset)
		Splat[int32](7).StoreSlice(data[offset:])
	})

	want := []int{0, 4, 6}
	if len(offsets) != len(want) {
		t.Fatalf("offsets: got %v, want %v", offsets, want)
	}
	for i := range want {
		if offsets[i] != want[i] {
			t.Errorf("offsets[%d]: got %d, want %d", i, offsets[i], want[i])
		}
	}
	for i, x := range data {
		if x != 7 {
			t.Errorf("data[%d] = %d, want 7", i, x)
		}
	}
}

func TestAlignedSize(t *testing.T) {
	tests := []struct {
		size, f32, i8, f64 int
	}{
		{0, 0, 0, 0},
		{1, 4, 16, 2},
		{4, 4, 16, 4},
		{17, 20, 32, 18},
	}
	for _, tt := range tests {
		if got := AlignedSize[float32](tt.size); got != tt.f32 {
			t.Errorf("AlignedSize[float32](%d): got %d, want %d", tt.size, got, tt.f32)
		}
		if got := AlignedSize[int8](tt.size); got != tt.i8 {
			t.Errorf("AlignedSize[int8](%d): got %d, want %d", tt.size, got, tt.i8)
		}
		if got := AlignedSize[float64](tt.size); got != tt.f64 {
			t.Errorf("AlignedSize[float64](%d): got %d, want %d", tt.size, got, tt.f64)
		}
	}
	if !IsAligned[uint16](24) || IsAligned[uint16](12) {
		t.Error("IsAligned[uint16]: wrong result for 24 or 12")
	}
}
