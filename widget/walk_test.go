package widget

import (
	"strings"
	"testing"

	"github.com/yllada/styling/editor"
)

type msg string

func sampleTree() Element[msg] {
	return Center[msg]{Content: Column[msg]{
		Spacing:  20,
		Padding:  20,
		MaxWidth: 600,
		Children: []Element[msg]{
			Text{Content: "Theme:"},
			Rule{Axis: Horizontal, Thickness: 5},
			Row[msg]{Spacing: 10, Children: []Element[msg]{
				Button[msg]{Label: "Primary", OnPress: func() msg { return "pressed" }},
				Button[msg]{Label: "Danger", Style: ButtonDanger},
			}},
			ProgressBar{Max: 100, Value: 30},
			Container[msg]{Style: ContainerBordered, Padding: 20, Content: Column[msg]{
				Children: []Element[msg]{
					Text{Content: "Card Example", Size: 24},
					ProgressBar{Max: 100, Value: 30},
				},
			}},
		},
	}}
}

func TestWalk_Order(t *testing.T) {
	var kinds []string
	Walk[msg](sampleTree(), func(e Element[msg]) bool {
		kinds = append(kinds, e.Kind().String())
		return true
	})

	want := "Center Column Text Rule Row Button Button ProgressBar Container Column Text ProgressBar"
	if got := strings.Join(kinds, " "); got != want {
		t.Errorf("Walk order = %s, want %s", got, want)
	}
}

func TestWalk_Prune(t *testing.T) {
	count := 0
	Walk[msg](sampleTree(), func(e Element[msg]) bool {
		count++
		return e.Kind() != KindColumn
	})
	if count != 2 {
		t.Errorf("visited %d elements, want 2 (Center and pruned Column)", count)
	}
}

func TestWalk_Nil(t *testing.T) {
	Walk[msg](nil, func(Element[msg]) bool {
		t.Error("fn must not be called for a nil tree")
		return true
	})
}

func TestCollect(t *testing.T) {
	bars := Collect[msg](sampleTree(), KindProgressBar)
	if len(bars) != 2 {
		t.Fatalf("Collect(ProgressBar) = %d elements, want 2", len(bars))
	}
	for _, b := range bars {
		if b.(ProgressBar).Value != 30 {
			t.Errorf("unexpected bar %v", b)
		}
	}
}

func TestProgressBar_Fraction(t *testing.T) {
	tests := []struct {
		bar  ProgressBar
		want float64
	}{
		{ProgressBar{Min: 0, Max: 100, Value: 42.5}, 0.425},
		{ProgressBar{Min: 0, Max: 100, Value: -3}, 0},
		{ProgressBar{Min: 0, Max: 100, Value: 300}, 1},
		{ProgressBar{Min: 10, Max: 10, Value: 10}, 0},
	}
	for _, tt := range tests {
		if got := tt.bar.Fraction(); got != tt.want {
			t.Errorf("Fraction(%v) = %v, want %v", tt.bar, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		el   Element[msg]
		want string
	}{
		{Text{Content: "Card Example", Size: 24}, `Text "Card Example" size=24`},
		{Rule{Axis: Vertical, Thickness: 5}, "Rule vertical thickness=5"},
		{Slider[msg]{Max: 100, Value: 42.5}, "Slider [0, 100] = 42.5"},
		{ProgressBar{Max: 100, Value: 42.5}, "ProgressBar [0, 100] = 42.5"},
		{Button[msg]{Label: "Danger", Style: ButtonDanger}, `Button "Danger" danger disabled`},
		{Checkbox[msg]{Label: "Check me!", Checked: true}, `Checkbox "Check me!" on`},
		{Toggler[msg]{Label: "Toggle me!"}, `Toggler "Toggle me!" off`},
		{PickList[msg]{Options: []string{"A", "B"}, Selected: 1}, `PickList 2 options, selected "B"`},
		{PickList[msg]{Options: []string{"A"}, Selected: -1}, "PickList 1 options, selected none"},
		{Space{Height: 800}, "Space height=800"},
		{Scrollable[msg]{Height: 100}, "Scrollable height=100"},
		{Row[msg]{Spacing: 10, Height: Fill}, "Row spacing=10 height=fill"},
		{Column[msg]{Spacing: 20, Padding: 20, MaxWidth: 600}, "Column spacing=20 padding=20 max-width=600"},
		{Container[msg]{Padding: 20, Style: ContainerBordered}, "Container bordered padding=20"},
		{TextEditor[msg]{Content: editor.New("abc"), Placeholder: "p"}, `TextEditor 3 chars placeholder="p"`},
		{TextInput[msg]{Value: "hi", Placeholder: "p"}, `TextInput "hi" placeholder="p"`},
	}

	for _, tt := range tests {
		t.Run(tt.el.Kind().String(), func(t *testing.T) {
			if got := Describe[msg](tt.el); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if KindToggler.String() != "Toggler" {
		t.Errorf("KindToggler = %s", KindToggler)
	}
	if Kind(99).String() != "Unknown" {
		t.Errorf("Kind(99) = %s", Kind(99))
	}
}
