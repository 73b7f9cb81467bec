package registry

import (
	"testing"

	"github.com/vovakirdan/arcade-2048/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" && info.Title == "Stub stub-a" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered game with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() should fail for unknown ids")
	}
	if Exists("no-such-game") {
		t.Error("Exists() should be false for unknown ids")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub-z", func() Game { return &stubGame{id: "stub-z"} })
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Fatalf("List() not sorted: %v", games)
		}
	}
}
