package theme

import (
	"errors"
	"testing"

	"github.com/yllada/styling/common"
)

func TestAll_IsCopy(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("All() must not be empty")
	}
	all[0] = Theme{Name: "Mutated"}
	if All()[0].Name != "Light" {
		t.Error("mutating the result of All() must not change the catalogue")
	}
}

func TestAll_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, th := range All() {
		if seen[th.Name] {
			t.Errorf("duplicate theme name %q", th.Name)
		}
		seen[th.Name] = true
	}
}

func TestDefault(t *testing.T) {
	if !All().Contains(Default()) {
		t.Error("Default() must be a catalogue member")
	}
	if Default().Name != "Light" {
		t.Errorf("Default() = %s, want Light", Default())
	}
}

func TestCatalogue_NextPrevious(t *testing.T) {
	c := All()
	n := len(c)

	tests := []struct {
		name     string
		from     int
		next     int
		previous int
	}{
		{"first", 0, 1, n - 1},
		{"middle", 3, 4, 2},
		{"last", n - 1, 0, n - 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Next(c[tt.from])
			if !ok || got != c[tt.next] {
				t.Errorf("Next(%s) = %s, %v, want %s", c[tt.from], got, ok, c[tt.next])
			}
			got, ok = c.Previous(c[tt.from])
			if !ok || got != c[tt.previous] {
				t.Errorf("Previous(%s) = %s, %v, want %s", c[tt.from], got, ok, c[tt.previous])
			}
		})
	}
}

func TestCatalogue_NextUnknown(t *testing.T) {
	c := All()[:3]
	outsider := All()[5]

	if got, ok := c.Next(outsider); ok || got != outsider {
		t.Errorf("Next(outsider) = %s, %v, want unchanged", got, ok)
	}
	if got, ok := c.Previous(outsider); ok || got != outsider {
		t.Errorf("Previous(outsider) = %s, %v, want unchanged", got, ok)
	}
}

func TestCatalogue_Lookup(t *testing.T) {
	c := All()

	th, err := c.Lookup("  tokyo night storm ")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if th.Name != "Tokyo Night Storm" {
		t.Errorf("Lookup() = %s", th)
	}

	if _, err := c.Lookup("Solarized Purple"); !errors.Is(err, common.ErrUnknownTheme) {
		t.Errorf("Lookup(unknown) error = %v, want ErrUnknownTheme", err)
	}
}

func TestCatalogue_Validate(t *testing.T) {
	if err := All().Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if err := (Catalogue{}).Validate(); !errors.Is(err, common.ErrEmptyCatalogue) {
		t.Errorf("Validate(empty) = %v, want ErrEmptyCatalogue", err)
	}
}

func TestCatalogue_Names(t *testing.T) {
	c := All()
	names := c.Names()
	if len(names) != len(c) {
		t.Fatalf("Names() length = %d, want %d", len(names), len(c))
	}
	for i := range c {
		if names[i] != c[i].Name {
			t.Errorf("Names()[%d] = %s, want %s", i, names[i], c[i].Name)
		}
	}
}

func TestIsDark(t *testing.T) {
	c := All()
	tests := []struct {
		name string
		dark bool
	}{
		{"Light", false},
		{"Dark", true},
		{"Solarized Light", false},
		{"Solarized Dark", true},
		{"Catppuccin Latte", false},
		{"Moonfly", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := c.Lookup(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			if th.IsDark() != tt.dark {
				t.Errorf("IsDark() = %v, want %v", th.IsDark(), tt.dark)
			}
		})
	}
}

func TestParsePalette_Invalid(t *testing.T) {
	_, err := ParsePalette("#ffffff", "black", "#5e7ce2", "#12664f", "#c3423f")
	if !errors.Is(err, common.ErrInvalidColor) {
		t.Errorf("ParsePalette() error = %v, want ErrInvalidColor", err)
	}
}

func TestExtended(t *testing.T) {
	for _, th := range All() {
		t.Run(th.Name, func(t *testing.T) {
			ext := th.Palette.Extended()
			if ext.IsDark != th.IsDark() {
				t.Error("Extended().IsDark disagrees with Theme.IsDark")
			}
			if ext.Background.Base.Color != th.Palette.Background {
				t.Error("background base must be the palette background")
			}
			if ext.Primary.Base.Color != th.Palette.Primary {
				t.Error("primary base must be the palette primary")
			}
			if ext.Background.Strong.Color == ext.Background.Base.Color {
				t.Error("strong background must differ from the base")
			}
			for _, c := range []Pair{ext.Primary.Base, ext.Success.Base, ext.Danger.Base, ext.Secondary.Base} {
				if !c.Color.IsValid() || !c.Text.IsValid() {
					t.Errorf("derived color out of gamut: %v", c)
				}
			}
		})
	}
}
