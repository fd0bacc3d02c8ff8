package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/connectx/internal/core"
)

func TestRegisterAndCreate(t *testing.T) {
	Register("test-square", func() Variant {
		return Variant{
			Title:  "Test Square",
			Config: core.GameConfig{Rows: 5, Columns: 5, InARow: 4, Players: 2},
		}
	})

	if !Exists("test-square") {
		t.Fatal("Exists() = false after Register()")
	}

	v, err := Create("test-square")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if v.ID != "test-square" || v.Title != "Test Square" || v.Config.Rows != 5 {
		t.Errorf("Create() = %+v", v)
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-square" {
			found = true
			if info.Title != "Test Square" {
				t.Errorf("List() title = %q, expected %q", info.Title, "Test Square")
			}
		}
	}
	if !found {
		t.Error("List() does not include the registered variant")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Variant { return Variant{Title: "Dup"} })

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on duplicate registration")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "already registered") {
			t.Errorf("unexpected panic value: %v", r)
		}
	}()
	Register("test-dup", func() Variant { return Variant{Title: "Dup"} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-variant"); err == nil {
		t.Error("Create() of an unknown variant should fail")
	}
	if Exists("no-such-variant") {
		t.Error("Exists() = true for an unknown variant")
	}
}

func TestListSorted(t *testing.T) {
	Register("test-b", func() Variant { return Variant{Title: "B"} })
	Register("test-a", func() Variant { return Variant{Title: "A"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
