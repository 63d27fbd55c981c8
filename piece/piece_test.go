package piece

import (
	"testing"

	"github.com/deitrix/tetrominoes/cell"
)

func TestIndex_Permutation(t *testing.T) {
	for r := 0; r < 4; r++ {
		var seen [Size * Size]int
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				i := Index(x, y, r)
				if i < 0 || i >= Size*Size {
					t.Fatalf("Index(%d, %d, %d) = %d: out of range", x, y, r, i)
				}
				seen[i]++
			}
		}
		for i, n := range seen {
			if n != 1 {
				t.Errorf("rotation %d: index %d visited %d times, want 1", r, i, n)
			}
		}
	}
}

func TestIndex_WrapsRotation(t *testing.T) {
	for _, r := range []int{-1, 4, 5, 7} {
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				if got, want := Index(x, y, r), Index(x, y, ((r%4)+4)%4); got != want {
					t.Errorf("Index(%d, %d, %d) = %d, want %d", x, y, r, got, want)
				}
			}
		}
	}
}

func TestAt_FourCellsEveryRotation(t *testing.T) {
	for id := ID(0); id < Count; id++ {
		for r := 0; r < 4; r++ {
			n := 0
			for y := 0; y < Size; y++ {
				for x := 0; x < Size; x++ {
					k := id.At(x, y, r)
					switch k {
					case cell.Empty:
					case id.Kind():
						n++
					default:
						t.Errorf("%s rotation %d: cell (%d, %d) is %s, want %s", id, r, x, y, k, id.Kind())
					}
				}
			}
			if n != 4 {
				t.Errorf("%s rotation %d: %d filled cells, want 4", id, r, n)
			}
		}
	}
}

func TestAt_Rotation(t *testing.T) {
	tests := []struct {
		id     ID
		r      int
		expect []int
	}{
		{
			id: I,
			r:  0,
			expect: []int{
				0, 0, 1, 0,
				0, 0, 1, 0,
				0, 0, 1, 0,
				0, 0, 1, 0,
			},
		},
		{
			id: I,
			r:  1,
			expect: []int{
				0, 0, 0, 0,
				0, 0, 0, 0,
				1, 1, 1, 1,
				0, 0, 0, 0,
			},
		},
		{
			id: L,
			r:  2,
			expect: []int{
				0, 0, 0, 0,
				0, 1, 1, 0,
				0, 0, 1, 0,
				0, 0, 1, 0,
			},
		},
		{
			id: T,
			r:  3,
			expect: []int{
				0, 0, 0, 0,
				1, 1, 1, 0,
				0, 1, 0, 0,
				0, 0, 0, 0,
			},
		},
	}
	for _, test := range tests {
		for i, want := range test.expect {
			x, y := i%Size, i/Size
			if got := test.id.At(x, y, test.r); got.Filled() != (want == 1) {
				t.Errorf("%s.At(%d, %d, %d) = %s, want filled=%t", test.id, x, y, test.r, got, want == 1)
			}
		}
	}
}

func TestNext_Cycle(t *testing.T) {
	id := None
	for i := 0; i < 3*Count; i++ {
		id = id.Next()
		if want := ID(i % Count); id != want {
			t.Fatalf("spawn %d: got %s, want %s", i, id, want)
		}
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		id     ID
		r      int
		expect Bounds
	}{
		{I, 0, Bounds{X: 2, Y: 0, Width: 1, Height: 4}},
		{I, 1, Bounds{X: 0, Y: 2, Width: 4, Height: 1}},
		{O, 0, Bounds{X: 1, Y: 1, Width: 2, Height: 2}},
		{T, 0, Bounds{X: 1, Y: 0, Width: 2, Height: 3}},
		{None, 0, Bounds{}},
	}
	for _, test := range tests {
		if got := test.id.Trim(test.r); got != test.expect {
			t.Errorf("%s.Trim(%d): got: %+v, want: %+v", test.id, test.r, got, test.expect)
		}
	}
}
