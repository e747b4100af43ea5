package manager

import (
	"testing"
	"time"
)

func TestNewWithConfig_Defaults(t *testing.T) {
	m := NewWithConfig(ManagerConfig{ModelPath: "/m.gguf", Adapter: &fakeAdapter{session: &fakeSession{}}})
	t.Cleanup(func() { _ = m.Close() })
	if m.cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("session ttl = %v", m.cfg.SessionTTL)
	}
	if m.cfg.ReapInterval != 10*time.Minute {
		t.Fatalf("reap interval = %v", m.cfg.ReapInterval)
	}
	if m.now == nil || m.adapter == nil {
		t.Fatal("clock or adapter not defaulted")
	}
}

func TestNewWithConfig_Overrides(t *testing.T) {
	clk := newFakeClock()
	m := NewWithConfig(ManagerConfig{
		Adapter:      &fakeAdapter{session: &fakeSession{}},
		SessionTTL:   time.Minute,
		ReapInterval: time.Second,
		Now:          clk.Now,
	})
	t.Cleanup(func() { _ = m.Close() })
	if m.cfg.SessionTTL != time.Minute || m.cfg.ReapInterval != time.Second {
		t.Fatalf("overrides not applied: %+v", m.cfg)
	}
	if !m.now().Equal(clk.Now()) {
		t.Fatal("injected clock not used")
	}
}

func TestClampMaxLength(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 150},
		{-1, 150},
		{150, 150},
		{151, 150},
		{10000, 150},
		{1, 1},
		{149, 149},
	}
	for _, c := range cases {
		if got := clampMaxLength(c.in); got != c.want {
			t.Fatalf("clampMaxLength(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
