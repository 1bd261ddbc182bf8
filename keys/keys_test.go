package keys

import (
	"testing"
	"time"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyA, "a"},
		{Key7, "7"},
		{KeyF12, "f12"},
		{KeyLeftShift, "leftshift"},
		{KeyRightMeta, "rightmeta"},
		{KeyKpEnter, "kpenter"},
		{Unknown(62), "unknown(62)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", uint32(tt.key), got, tt.want)
		}
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
		ok   bool
	}{
		{"a", KeyA, true},
		{"A", KeyA, true},
		{" f5 ", KeyF5, true},
		{"ctrl", KeyLeftCtrl, true},
		{"cmd", KeyLeftMeta, true},
		{"super", KeyLeftMeta, true},
		{"esc", KeyEscape, true},
		{"return", KeyEnter, true},
		{"leftshift", KeyLeftShift, true},
		{"unknown(62)", Unknown(62), true},
		{"bogus", KeyNone, false},
		{"", KeyNone, false},
	}
	for _, tt := range tests {
		got, ok := FromName(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FromName(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseCombo(t *testing.T) {
	ks, err := ParseCombo("ctrl+shift+p")
	if err != nil {
		t.Fatal(err)
	}
	want := []Key{KeyLeftCtrl, KeyLeftShift, KeyP}
	if len(ks) != len(want) {
		t.Fatalf("got %d keys, want %d", len(ks), len(want))
	}
	for i := range want {
		if ks[i] != want[i] {
			t.Errorf("key %d = %v, want %v", i, ks[i], want[i])
		}
	}
}

func TestParseComboSpacesAndUnknown(t *testing.T) {
	ks, err := ParseCombo("meta + unknown(62)")
	if err != nil {
		t.Fatal(err)
	}
	if len(ks) != 2 || ks[0] != KeyLeftMeta || ks[1] != Unknown(62) {
		t.Errorf("got %v", ks)
	}
}

func TestParseComboErrors(t *testing.T) {
	for _, spec := range []string{"", "+", "a+", "bogus+a", "ctrl+nope"} {
		if _, err := ParseCombo(spec); err == nil {
			t.Errorf("ParseCombo(%q) should fail", spec)
		}
	}
}

func TestParseSuccession(t *testing.T) {
	k, d, err := ParseSuccession("shift@300ms")
	if err != nil {
		t.Fatal(err)
	}
	if k != KeyLeftShift || d != 300*time.Millisecond {
		t.Errorf("got (%v, %v), want (leftshift, 300ms)", k, d)
	}
}

func TestParseSuccessionDefaultDuration(t *testing.T) {
	k, d, err := ParseSuccession("a")
	if err != nil {
		t.Fatal(err)
	}
	if k != KeyA || d != 0 {
		t.Errorf("got (%v, %v), want (a, 0)", k, d)
	}
}

func TestParseSuccessionErrors(t *testing.T) {
	for _, spec := range []string{"", "@300ms", "a@nope", "bogus@300ms"} {
		if _, _, err := ParseSuccession(spec); err == nil {
			t.Errorf("ParseSuccession(%q) should fail", spec)
		}
	}
}

func TestUnknownRange(t *testing.T) {
	u := Unknown(500)
	if !u.IsUnknown() {
		t.Error("Unknown(500) should be in the unknown range")
	}
	if u.Raw() != 500 {
		t.Errorf("Raw() = %d, want 500", u.Raw())
	}
	if KeyA.IsUnknown() {
		t.Error("named keys must not be in the unknown range")
	}
	if Unknown(62) != Unknown(62) {
		t.Error("equal raw codes must compare equal")
	}
}
