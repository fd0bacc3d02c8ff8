package variants

import (
	"testing"

	"github.com/vovakirdan/connectx/internal/core"
	"github.com/vovakirdan/connectx/internal/game"
	"github.com/vovakirdan/connectx/internal/registry"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"classic", "trio", "five", "mini", "quad"} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
		}
	}
}

func TestBuiltinsCreateValidGames(t *testing.T) {
	limits := core.DefaultLimits()
	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			v, err := registry.Create(info.ID)
			if err != nil {
				t.Fatalf("Create() failed: %v", err)
			}
			if v.Title == "" || v.Description == "" {
				t.Errorf("variant %q is missing a title or description", info.ID)
			}

			g, err := game.New(game.Options{Variant: v.ID, Config: v.Config, Limits: &limits})
			if err != nil {
				t.Fatalf("game.New() rejected variant %q: %v", info.ID, err)
			}
			if len(g.Players()) != v.Config.Players {
				t.Errorf("game has %d players, expected %d", len(g.Players()), v.Config.Players)
			}
		})
	}
}
