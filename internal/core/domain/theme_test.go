package domain

import "testing"

func TestTheme_SetNotifiesOnChangeOnly(t *testing.T) {
	th := NewTheme()
	calls := 0
	th.Subscribe(func(bool) { calls++ })

	th.Set(false)
	if calls != 0 {
		t.Fatalf("setting the current value must not notify")
	}
	th.Set(true)
	th.Set(true)
	if calls != 1 || !th.Dark() {
		t.Fatalf("expected one notification and dark mode, got %d calls dark=%v", calls, th.Dark())
	}
}
