package heuristic

import (
	"testing"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/core"
	"github.com/xDarkicex/atp/term"
)

func TestSelectFirstNegative(t *testing.T) {
	c := clause.New(
		clause.Pos("p", term.Const("a")),
		clause.Neg("q", term.Const("b")),
		clause.Neg("r", term.Const("c")),
	)
	Select(c, core.SelectFirstNegative)
	if !c.IsSelected(1) || c.IsSelected(2) {
		t.Fatalf("expected only index 1 selected, got %v", c.Selected)
	}
}

func TestSelectPositivePicksFirstPositive(t *testing.T) {
	c := clause.New(
		clause.Neg("p", term.Const("a")),
		clause.Pos("q", term.Const("b")),
		clause.Pos("r", term.Const("c")),
	)
	SelectPositive(c)
	if !c.IsSelected(1) || c.IsSelected(2) || c.IsSelected(0) {
		t.Fatalf("expected only index 1 selected, got %v", c.Selected)
	}
}

func TestSelectPositiveNoOpWhenNoPositiveLiteral(t *testing.T) {
	c := clause.New(clause.Neg("p", term.Const("a")))
	SelectPositive(c)
	if c.HasSelection() {
		t.Fatal("expected no selection when clause has no positive literal")
	}
}

func TestSelectNoneClearsSelection(t *testing.T) {
	c := clause.New(clause.Neg("q", term.Const("b")))
	c.Selected = map[int]bool{0: true}
	Select(c, core.SelectNone)
	if c.HasSelection() {
		t.Fatal("SelectNone must clear any prior selection")
	}
}

func TestFIFOPickerOrdersByArrival(t *testing.T) {
	p := NewPicker(core.HeuristicFIFO)
	a := clause.New(clause.Pos("p", term.Const("a")))
	b := clause.New(clause.Pos("q", term.Const("b")))
	p.Push(a)
	p.Push(b)
	got, ok := p.Pop()
	if !ok || got != a {
		t.Fatalf("expected FIFO to return the first-pushed clause")
	}
}

func TestWeightPickerPrefersLighter(t *testing.T) {
	p := NewPicker(core.HeuristicSymbolCount)
	heavy := clause.New(clause.Pos("p", term.App("f", term.Var{Name: "X"}, term.Var{Name: "Y"})))
	light := clause.New(clause.Pos("q", term.Const("a")))
	p.Push(heavy)
	p.Push(light)
	got, ok := p.Pop()
	if !ok || got != light {
		t.Fatal("expected the lighter clause to be picked first")
	}
}

func TestPickGiven5ReturnsFIFOOnceEveryFive(t *testing.T) {
	p := NewPicker(core.HeuristicPickGiven5)
	// The oldest clause is also the heaviest, so only the FIFO turn can
	// pick it.
	old := clause.New(clause.Pos("old", term.App("f", term.Var{Name: "X"}, term.Var{Name: "Y"}, term.Var{Name: "Z"}, term.Var{Name: "W"})))
	p.Push(old)
	for i := 0; i < 10; i++ {
		p.Push(clause.New(clause.Pos("heavy", term.App("f", term.Var{Name: "X"}, term.Var{Name: "Y"}, term.Var{Name: "Z"}))))
	}
	var sawOldAt5 bool
	for i := 1; i <= 5; i++ {
		got, ok := p.Pop()
		if !ok {
			t.Fatalf("picker ran dry at selection %d", i)
		}
		if i == 5 && got == old {
			sawOldAt5 = true
		}
	}
	if !sawOldAt5 {
		t.Fatal("expected the 5th PickGiven5 selection to be the oldest clause")
	}
}
