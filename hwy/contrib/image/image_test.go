package image

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewPlane(t *testing.T) {
	p := NewPlane[float32](50, 100)

	if p.Rows() != 50 {
		t.Errorf("Rows: got %d, want 50", p.Rows())
	}
	if p.Cols() != 100 {
		t.Errorf("Cols: got %d, want 100", p.Cols())
	}
	if p.Len() != 5000 || len(p.Data()) != 5000 {
		t.Errorf("Len: got %d/%d, want 5000", p.Len(), len(p.Data()))
	}
}

func TestNewPlane_ZeroDimensions(t *testing.T) {
	p := NewPlane[float32](0, 0)
	if p.Rows() != 0 || p.Cols() != 0 {
		t.Errorf("Zero dimensions: got %dx%d, want 0x0", p.Rows(), p.Cols())
	}

	p = NewPlane[float32](10, -1)
	if p.Rows() != 0 || p.Cols() != 0 {
		t.Errorf("Negative cols: got %dx%d, want 0x0", p.Rows(), p.Cols())
	}
}

func TestPlane_Row(t *testing.T) {
	p := NewPlane[float32](5, 10)

	row0 := p.Row(0)
	if len(row0) != 10 {
		t.Fatalf("Row length: got %d, want 10", len(row0))
	}
	for i := range 10 {
		row0[i] = float32(i)
	}
	for i := range 10 {
		if got := p.At(0, i); got != float32(i) {
			t.Errorf("At(0, %d): got %v, want %v", i, got, float32(i))
		}
	}

	row1 := p.Row(1)
	row1[0] = 999
	if row0[0] == 999 {
		t.Error("Rows should be independent")
	}

	if p.Row(-1) != nil {
		t.Error("Row(-1) should return nil")
	}
	if p.Row(5) != nil {
		t.Error("Row(5) should return nil")
	}
}

func TestPlane_AtSet(t *testing.T) {
	p := NewPlane[float64](3, 4)
	p.Set(2, 3, 7)
	if got := p.Data()[2*4+3]; got != 7 {
		t.Errorf("row-major layout: got %v, want 7", got)
	}

	// Out of range is a no-op / zero.
	p.Set(3, 0, 1)
	p.Set(0, -1, 1)
	if got := p.At(3, 0); got != 0 {
		t.Errorf("At out of range: got %v, want 0", got)
	}
}

func TestPlaneFrom(t *testing.T) {
	buf := make([]float32, 12)
	p, err := PlaneFrom(buf, 3, 4)
	if err != nil {
		t.Fatalf("PlaneFrom: %v", err)
	}
	p.Set(1, 1, 5)
	if buf[5] != 5 {
		t.Errorf("PlaneFrom should share memory, buf[5] = %v", buf[5])
	}

	if _, err := PlaneFrom(buf, 4, 4); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("PlaneFrom short buffer: got %v, want ErrShortBuffer", err)
	}
	if _, err := PlaneFrom(buf, -1, 4); err == nil {
		t.Error("PlaneFrom negative rows should fail")
	}
}

func TestPlane_ViewAndReshape(t *testing.T) {
	p := NewPlane[float32](4, 4)
	for i := range p.Data() {
		p.Data()[i] = float32(i)
	}

	v, err := p.View(2, 2)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	// The view reads the prefix of the backing slice.
	want := []float32{0, 1, 2, 3}
	for i, w := range want {
		if v.Data()[i] != w {
			t.Errorf("view[%d]: got %v, want %v", i, v.Data()[i], w)
		}
	}
	if v.Cap() != 16 {
		t.Errorf("view Cap: got %d, want 16", v.Cap())
	}

	if err := v.Reshape(4, 4); err != nil {
		t.Errorf("Reshape back to capacity: %v", err)
	}
	if err := v.Reshape(5, 4); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Reshape beyond capacity: got %v, want ErrShortBuffer", err)
	}
}

func TestPlane_CloneFillCopy(t *testing.T) {
	p := NewPlane[float32](3, 3)
	p.Fill(2.5)

	c := p.Clone()
	c.Set(0, 0, 1)
	if p.At(0, 0) != 2.5 {
		t.Error("Clone should not share memory")
	}

	if err := p.CopyFrom(c); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if p.At(0, 0) != 1 || p.At(2, 2) != 2.5 {
		t.Errorf("CopyFrom: got %v/%v", p.At(0, 0), p.At(2, 2))
	}
	if err := p.CopyFrom(NewPlane[float32](2, 3)); err == nil {
		t.Error("CopyFrom size mismatch should fail")
	}

	p.Clear()
	for i, v := range p.Data() {
		if v != 0 {
			t.Fatalf("Clear: sample %d = %v", i, v)
		}
	}
}

func TestOverlaps(t *testing.T) {
	buf := make([]float32, 16)
	tests := []struct {
		name string
		a, b []float32
		want bool
	}{
		{"same", buf, buf, true},
		{"disjoint halves", buf[:8], buf[8:], false},
		{"partial", buf[:9], buf[8:], true},
		{"separate allocations", buf, make([]float32, 16), false},
		{"empty", buf[:0], buf, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		index, size, want int
	}{
		{0, 8, 0},
		{7, 8, 7},
		{8, 8, 0},
		{-1, 8, 7},
		{-9, 8, 7},
		{17, 8, 1},
		{-16, 8, 0},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := Wrap(tt.index, tt.size); got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.index, tt.size, got, tt.want)
		}
	}
}
