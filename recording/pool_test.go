package recording

import (
	"testing"

	"github.com/gogpu/textdraw/paint"
)

func TestPoolDeduplicatesPaint(t *testing.T) {
	p := NewResourcePool()
	a := p.AddFill(paint.Solid(paint.Black))
	b := p.AddFill(paint.Solid(paint.Black))
	c := p.AddFill(paint.Solid(paint.White))
	if a != b || a == c {
		t.Errorf("fill refs = %d, %d, %d; want equal fills shared", a, b, c)
	}
	if p.FillCount() != 2 {
		t.Errorf("FillCount() = %d, want 2", p.FillCount())
	}

	s := paint.NewStroke(1, paint.Black)
	r1 := p.AddStroke(s)
	s.Width = 2
	r2 := p.AddStroke(s)
	if r1 == r2 {
		t.Error("changed stroke shared a reference")
	}
	if got := p.Stroke(r1).Width; got != 1 {
		t.Errorf("stored stroke width = %v, want 1", got)
	}
}

func TestPoolInvalidRefs(t *testing.T) {
	p := NewResourcePool()
	if p.Geometry(0) != nil || p.Fill(3) != nil || p.Stroke(1) != nil {
		t.Error("lookup in an empty pool returned a resource")
	}
	ref := p.AddGeometry(nil)
	if p.Geometry(ref) != nil {
		t.Error("nil geometry stored as non-nil")
	}
	if GeometryRef(InvalidRef).IsValid() || !ref.IsValid() {
		t.Error("IsValid() mismatch")
	}
}

func TestPoolClear(t *testing.T) {
	p := NewResourcePool()
	p.AddGeometry(square())
	p.AddFill(red)
	p.AddStroke(&paint.Stroke{Width: 1, Fill: red})
	p.Clear()
	if p.GeometryCount() != 0 || p.FillCount() != 0 || p.StrokeCount() != 0 {
		t.Errorf("counts after Clear = %d, %d, %d; want 0", p.GeometryCount(), p.FillCount(), p.StrokeCount())
	}
}
