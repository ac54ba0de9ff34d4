package config

import (
	"os"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writeProfilesFile(t, `
[profiles.compact]
indent = 2
delimiter = ","
`)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	select {
	case profiles := <-w.Updates:
		if _, ok := profiles["compact"]; !ok {
			t.Fatalf("initial load missing compact profile: %+v", profiles)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for initial load")
	}

	if err := os.WriteFile(path, []byte(`
[profiles.compact]
indent = 4
delimiter = "|"
`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case profiles := <-w.Updates:
		compact, ok := profiles["compact"]
		if !ok || compact.Indent != 4 || compact.Delimiter != "|" {
			t.Errorf("reloaded profile = %+v", profiles)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload after write")
	}
}
