package widget

import (
	"image"
	"testing"
)

func TestMarksPropagateUp(t *testing.T) {
	a := &ENode{}
	a.SetWrapperForRoot(a)
	b := &ENode{}
	c := &ENode{}
	a.Append(b)
	b.Append(c)

	// clear insertion marks
	a.Bounds = image.Rect(0, 0, 10, 10)
	a.LayoutTree()
	a.PaintMarked()

	c.MarkNeedsPaint()
	if !a.HasAnyMarks(MarkChildNeedsPaint) {
		t.Fatal("parent not marked")
	}
	if !b.HasAnyMarks(MarkChildNeedsPaint) {
		t.Fatal("mid not marked")
	}
	if a.HasAnyMarks(MarkNeedsPaint) {
		t.Fatal("parent wrongly marked")
	}

	r := a.PaintMarked()
	if r.Empty() {
		t.Fatal("nothing painted")
	}
	if a.TreeNeedsPaint() {
		t.Fatal("marks not cleared")
	}
}

func TestInsertRemovePanics(t *testing.T) {
	a := &ENode{}
	a.SetWrapperForRoot(a)
	b := &ENode{}
	a.Append(b)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("no panic")
			}
		}()
		a.Append(b) // already has a parent
	}()

	c := &ENode{}
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("no panic")
			}
		}()
		a.Remove(c) // not a child
	}()
}

func TestLayoutTreeAutoPaint(t *testing.T) {
	a := &ENode{}
	a.SetWrapperForRoot(a)
	b := &ENode{}
	a.Append(b)
	a.Bounds = image.Rect(0, 0, 10, 10)
	a.LayoutTree()
	a.PaintMarked()

	// childs with changed bounds get an automatic paint mark
	a.Bounds = image.Rect(0, 0, 20, 20)
	a.LayoutTree()
	if !b.HasAnyMarks(MarkNeedsPaint) {
		t.Fatal("child not marked")
	}
}
