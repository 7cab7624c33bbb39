package game

import "testing"

func TestClampScroll(t *testing.T) {
	cases := []struct {
		name                    string
		scroll, contentH, viewH int32
		want                    int32
	}{
		{"within range", 40, 200, 100, 40},
		{"past end", 500, 200, 100, 100},
		{"negative", -10, 200, 100, 0},
		{"content fits", 30, 80, 100, 0},
		{"at max", 100, 200, 100, 100},
	}
	for _, c := range cases {
		if got := clampScroll(c.scroll, c.contentH, c.viewH); got != c.want {
			t.Errorf("%s: clampScroll(%d, %d, %d) = %d, want %d",
				c.name, c.scroll, c.contentH, c.viewH, got, c.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 20); got != "short" {
		t.Errorf("truncate(short, 20) = %q", got)
	}
	if got := truncate("averylongbonename", 8); got != "averylo~" {
		t.Errorf("truncate = %q, want %q", got, "averylo~")
	}
	// Rune-aware: must never split a multi-byte character.
	got := truncate("骨盤ボーン名前長い", 5)
	if got != "骨盤ボー~" {
		t.Errorf("truncate multibyte = %q, want %q", got, "骨盤ボー~")
	}
	for _, r := range got {
		if r == '�' {
			t.Fatalf("truncate produced a broken rune in %q", got)
		}
	}
}
