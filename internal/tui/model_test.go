// ABOUTME: Tests for the live linter model.
// ABOUTME: Drives Update with key messages and checks relinting and copying.

package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fiffu/sd-promptkit/internal/lint"
	"github.com/fiffu/sd-promptkit/internal/models"
)

func newTestModel(initial string) (*Model, *string) {
	var copied string
	m := New(lint.New(models.Options{}), initial)
	m.writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	return m, &copied
}

func TestNewClassifiesInitialInput(t *testing.T) {
	m, _ := newTestModel("Masterpiece, masterpiece")

	if len(m.results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(m.results))
	}
	if m.results[0].Action != models.Lint || m.results[1].Action != models.Remove {
		t.Errorf("unexpected actions %v, %v", m.results[0].Action, m.results[1].Action)
	}
	if m.Fixed() != "masterpiece" {
		t.Errorf("expected fixed 'masterpiece', got %q", m.Fixed())
	}
}

func TestTypingRelints(t *testing.T) {
	m, _ := newTestModel("")

	for _, r := range "Solo" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	if len(m.results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(m.results))
	}
	if m.results[0].Tag.Canonical != "solo" {
		t.Errorf("expected canonical 'solo', got %q", m.results[0].Tag.Canonical)
	}
}

func TestCopy(t *testing.T) {
	m, copied := newTestModel("(best_quality:1.2), solo")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	m.Update(cmd())

	if *copied != "(best quality: 1.2), solo" {
		t.Errorf("unexpected clipboard contents %q", *copied)
	}
	if !strings.Contains(m.View(), "Copied!") {
		t.Error("expected view to confirm copy")
	}
}

func TestCopyError(t *testing.T) {
	m, _ := newTestModel("solo")
	m.writeClipboard = func(string) error { return errors.New("no clipboard") }

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m.Update(cmd())

	if !strings.Contains(m.View(), "no clipboard") {
		t.Error("expected view to show clipboard error")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		m, _ := newTestModel("")
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("expected quit command for %s", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("expected QuitMsg for %s", key)
		}
	}
}

func TestViewEmpty(t *testing.T) {
	m, _ := newTestModel("")

	if !strings.Contains(m.View(), "(no tags)") {
		t.Error("expected empty placeholder in view")
	}
}
