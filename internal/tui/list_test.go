package tui

import (
	"slices"
	"strings"
	"testing"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/ui"
)

func TestRenderRowReflectsPackedState(t *testing.T) {
	th := testTheme(t)
	it := model.Item{ID: 1, Description: "Socks", Quantity: model.QuantityTwo}

	got := ui.StripANSI(renderRow(th, it, false, 0))
	if want := "  [ ] Socks (2)  x"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	it.Packed = true
	got = ui.StripANSI(renderRow(th, it, true, 0))
	if want := "> [x] Socks (2)  x"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRenderRowTruncatesToWidth(t *testing.T) {
	th := testTheme(t)
	it := model.Item{ID: 1, Description: strings.Repeat("sunscreen ", 10), Quantity: model.QuantityOne}
	got := ui.StripANSI(renderRow(th, it, false, 30))
	if w := ui.Width(got); w > 30 {
		t.Fatalf("row is %d cells wide, want <= 30: %q", w, got)
	}
	if !strings.Contains(got, "…") {
		t.Fatalf("expected ellipsis in %q", got)
	}
}

func TestPackingListDisplayOrder(t *testing.T) {
	p := newPackingList(testTheme(t), newKeyMap(), 60, 10)
	p.SetItems([]model.Item{
		{ID: 1, Description: "a", Quantity: 1, Packed: true},
		{ID: 2, Description: "b", Quantity: 1},
		{ID: 3, Description: "c", Quantity: 1, Packed: true},
		{ID: 4, Description: "d", Quantity: 1},
	})
	if got, want := itemIDs(p.Rows()), []int64{2, 4, 1, 3}; !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPackingListClearAllOnlyWhenNonEmpty(t *testing.T) {
	p := newPackingList(testTheme(t), newKeyMap(), 60, 10)
	if strings.Contains(ui.StripANSI(p.View()), "Clear All") {
		t.Fatalf("clear all shown for empty list")
	}
	if _, cmd := p.Update(keyRunes("C")); cmd != nil {
		if _, isClear := cmd().(clearAllMsg); isClear {
			t.Fatalf("clear all emitted for empty list")
		}
	}

	p.SetItems([]model.Item{{ID: 1, Description: "a", Quantity: 1}})
	if !strings.Contains(ui.StripANSI(p.View()), "Clear All") {
		t.Fatalf("clear all missing for non-empty list")
	}
	_, cmd := p.Update(keyRunes("C"))
	if cmd == nil {
		t.Fatalf("expected clear all intent")
	}
	if _, ok := cmd().(clearAllMsg); !ok {
		t.Fatalf("expected clearAllMsg, got %T", cmd())
	}
}

func TestPackingListRowIntents(t *testing.T) {
	p := newPackingList(testTheme(t), newKeyMap(), 60, 10)
	p.SetItems([]model.Item{
		{ID: 7, Description: "a", Quantity: 1},
		{ID: 9, Description: "b", Quantity: 1},
	})
	p.list.Select(1)

	_, cmd := p.Update(keyRunes("x"))
	if msg, ok := cmd().(togglePackedMsg); !ok || msg.id != 9 {
		t.Fatalf("expected toggle of 9, got %#v", cmd())
	}
	_, cmd = p.Update(keyRunes("d"))
	if msg, ok := cmd().(deleteItemMsg); !ok || msg.id != 9 {
		t.Fatalf("expected delete of 9, got %#v", cmd())
	}
}

func TestPackingListSelectionFollowsID(t *testing.T) {
	p := newPackingList(testTheme(t), newKeyMap(), 60, 10)
	items := []model.Item{
		{ID: 1, Description: "a", Quantity: 1},
		{ID: 2, Description: "b", Quantity: 1},
		{ID: 3, Description: "c", Quantity: 1},
	}
	p.SetItems(items)
	p.list.Select(0)

	items[0].Packed = true
	p.SetItems(items)
	r, ok := p.selected()
	if !ok || r.item.ID != 1 {
		t.Fatalf("expected selection to stay on item 1, got %#v", r)
	}
	if p.list.Index() != 2 {
		t.Fatalf("expected packed item at the bottom, index %d", p.list.Index())
	}

	p.SetItems(items[:2])
	if p.list.Index() >= len(p.list.VisibleItems()) {
		t.Fatalf("selection out of range after delete: %d", p.list.Index())
	}
}

func TestFuzzyFilter(t *testing.T) {
	targets := []string{"Toothbrush", "Socks", "Sunscreen", "Swimsuit"}
	ranks := fuzzyFilter("ss", targets)
	var got []string
	for _, r := range ranks {
		got = append(got, targets[r.Index])
	}
	if slices.Contains(got, "Toothbrush") {
		t.Fatalf("unexpected match in %v", got)
	}
	for _, want := range []string{"Socks", "Swimsuit"} {
		if !slices.Contains(got, want) {
			t.Fatalf("expected %q in %v", want, got)
		}
	}
	if len(fuzzyFilter("zzz", targets)) != 0 {
		t.Fatalf("expected no matches")
	}
}
