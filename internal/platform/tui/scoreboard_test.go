package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func TestScoreboardListsRunsBestFirst(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	for _, run := range []struct{ score, wave int }{{300, 2}, {900, 4}, {100, 1}} {
		if _, err := store.SaveScore("invaders", run.score, run.wave); err != nil {
			t.Fatalf("SaveScore() error: %v", err)
		}
	}

	m := NewScoreboardModel(store, "invaders", "Space Invaders", 80, 24)
	rows := m.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, expected 3", len(rows))
	}
	if rows[0][1] != "900" || rows[0][2] != "4" {
		t.Errorf("first row = %v, expected score 900 wave 4", rows[0])
	}

	view := m.View()
	if !strings.Contains(view, "runs 3") || !strings.Contains(view, "best 900") {
		t.Errorf("View() missing stats summary:\n%s", view)
	}
}

func TestScoreboardWithoutSource(t *testing.T) {
	m := NewScoreboardModel(nil, "invaders", "Space Invaders", 80, 24)

	if len(m.Rows()) != 0 {
		t.Errorf("rows = %d, expected 0", len(m.Rows()))
	}
	if !strings.Contains(m.View(), "No runs yet") {
		t.Error("View() should show the empty message")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "invaders", "Space Invaders", 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if sm := next.(ScoreboardModel); !sm.IsGoingBack() || sm.IsQuitting() {
		t.Error("esc should go back")
	}

	next, _ = m.Update(runeKey('q'))
	if sm := next.(ScoreboardModel); !sm.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardClearRemovesRuns(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	for _, score := range []int{500, 200} {
		if _, err := store.SaveScore("invaders", score, 1); err != nil {
			t.Fatalf("SaveScore() error: %v", err)
		}
	}

	m := NewScoreboardModel(store, "invaders", "Space Invaders", 80, 24)
	if len(m.Rows()) != 2 {
		t.Fatalf("rows = %d, expected 2", len(m.Rows()))
	}

	next, _ := m.Update(runeKey('c'))
	sm := next.(ScoreboardModel)
	if len(sm.Rows()) != 0 {
		t.Errorf("rows after clear = %d, expected 0", len(sm.Rows()))
	}
	if sm.IsGoingBack() || sm.IsQuitting() {
		t.Error("clear should stay on the scoreboard")
	}
	if !strings.Contains(sm.View(), "No runs yet") {
		t.Error("View() should show the empty message after clear")
	}

	left, err := store.TopScores("invaders", 10)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("stored runs = %d, expected 0", len(left))
	}
}
