package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-2048/internal/games/t2048"
	"github.com/vovakirdan/arcade-2048/internal/storage"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuChoice
	}{
		{"play", []tea.KeyMsg{{Type: tea.KeyEnter}}, ChoicePlay},
		{"scores", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, ChoiceScores},
		{"quit item", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, ChoiceQuit},
		{"cursor stops at end", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyUp}, {Type: tea.KeyEnter}}, ChoiceScores},
		{"tab", []tea.KeyMsg{{Type: tea.KeyTab}}, ChoiceScores},
		{"q", []tea.KeyMsg{runeKey('q')}, ChoiceQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewMenuModel(nil, t2048.ID, testRuntime())
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			if got := m.(MenuModel).Chosen(); got != tt.want {
				t.Errorf("Chosen() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(storage.Result{GameID: t2048.ID, Score: 4242}); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, t2048.ID, testRuntime())
	if !strings.Contains(m.View(), "Best score: 4242") {
		t.Error("menu should show the best recorded score")
	}
}

func TestSessionPlayAndBack(t *testing.T) {
	m := NewSessionModel(Deps{}, t2048.ID, testRuntime(), "tester")
	if m.SessionID() == "" {
		t.Fatal("session id should be set")
	}

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.gameModel == nil {
		t.Fatalf("enter on Play should start a game, view=%v", m.view)
	}
	if cmd == nil {
		t.Error("starting a game should schedule ticks")
	}

	// Pause, tick so the game reports it, then go back.
	m, _ = sessionUpdate(t, m, runeKey('p'))
	m, _ = sessionUpdate(t, m, TickMsg{})
	m, _ = sessionUpdate(t, m, runeKey('b'))
	if m.view != viewMenu {
		t.Fatalf("b on a paused game should return to the menu, view=%v", m.view)
	}
	if m.menu.Chosen() != ChoiceNone {
		t.Error("menu should be fresh after returning")
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(storage.Result{GameID: t2048.ID, Score: 64, MaxTile: 16, Moves: 9}); err != nil {
		t.Fatal(err)
	}

	m := NewSessionModel(Deps{Store: store}, t2048.ID, testRuntime(), "tester")
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("tab should open the scoreboard, view=%v", m.view)
	}
	if len(m.scoreboard.Scores()) != 1 {
		t.Errorf("scoreboard loaded %d scores, want 1", len(m.scoreboard.Scores()))
	}
	if !strings.Contains(m.View(), "HIGH SCORES - 2048") {
		t.Error("scoreboard title missing")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Errorf("esc should return to the menu, view=%v", m.view)
	}
	if m.quitting {
		t.Error("back must not quit the session")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(Deps{}, t2048.ID, testRuntime(), "tester")
	m, cmd := sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should quit the session")
	}
}
