package main

import (
	"errors"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saressalo/chandiff/diffview"
	"github.com/saressalo/chandiff/recording"
)

func testRecording(name string, channels, samples int) *recording.Recording {
	data := make([][]float64, channels)
	names := make([]string, channels)
	for c := range data {
		names[c] = "EEG " + string(rune('A'+c))
		data[c] = make([]float64, samples)
		for s := range data[c] {
			data[c][s] = math.Sin(float64(c+1) * float64(s) / 10)
		}
	}
	return &recording.Recording{
		Path:         name,
		ChannelNames: names,
		SampleRate:   100,
		Data:         data,
	}
}

func testModel(t *testing.T) *model {
	t.Helper()
	m, err := newModel(
		[]*recording.Recording{
			testRecording("a.csv", 4, 1000),
			testRecording("b.csv", 4, 1000),
		},
		appConfig{timeWindow: 100, specWindow: 50, windowRows: 2},
	)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestArrowKeysMoveViewState(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	for i := 0; i < 3; i++ {
		m.Update(keyMsg("right"))
	}
	m.Update(keyMsg("left"))
	m.Update(keyMsg("down"))
	m.Update(keyMsg("down"))
	m.Update(keyMsg("up"))

	if m.timeState.X != 2 {
		t.Errorf("x after 3 rights and a left: got %d, want 2", m.timeState.X)
	}
	if m.timeState.Y != 1 {
		t.Errorf("y after 2 downs and an up: got %d, want 1", m.timeState.Y)
	}
}

func TestVimAliasesMoveViewState(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	m.Update(keyMsg("l"))
	m.Update(keyMsg("l"))
	m.Update(keyMsg("h"))
	m.Update(keyMsg("j"))
	m.Update(keyMsg("k"))
	m.Update(keyMsg("k"))

	if m.timeState.X != 1 || m.timeState.Y != -1 {
		t.Errorf("state after hjkl walk: got %+v, want {X:1 Y:-1}", m.timeState)
	}
}

func TestUnboundKeyIsNoOp(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	m.Update(keyMsg("z"))
	m.Update(keyMsg("x"))

	if m.timeState.X != 0 || m.timeState.Y != 0 {
		t.Errorf("state after unbound keys: got %+v, want zero", m.timeState)
	}
	if m.mode != modeTime {
		t.Errorf("mode changed by unbound key")
	}
}

func TestSpectrumToggleKeepsSeparateOffsets(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	m.Update(keyMsg("right"))

	m.Update(keyMsg("p"))
	if m.mode != modeSpectrum {
		t.Fatal("p did not enter spectrum mode")
	}
	if m.specFrame == nil {
		t.Fatal("spectrum frame was not built")
	}

	m.Update(keyMsg("right"))
	m.Update(keyMsg("right"))
	if m.specState.X != 2 {
		t.Errorf("spectrum x: got %d, want 2", m.specState.X)
	}

	m.Update(keyMsg("p"))
	if m.mode != modeTime {
		t.Fatal("second p did not return to time mode")
	}
	if m.timeState.X != 1 {
		t.Errorf("time x survived mode round trip: got %d, want 1", m.timeState.X)
	}
}

func TestSpectrumFrameGeometry(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	m.Update(keyMsg("p"))
	if m.specFrame == nil {
		t.Fatal("spectrum frame was not built")
	}

	// 1000 samples at the default segment length gives 129 bins; a
	// 50-bin window pads that to 150.
	if got := m.specFrame.Samples(); got != 150 {
		t.Errorf("padded bins: got %d, want 150", got)
	}
	if got := m.specFrame.WindowWidth(); got != 50 {
		t.Errorf("spectrum window width: got %d, want 50", got)
	}
}

func TestQuitKeyReturnsQuitCmd(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not return tea.Quit")
	}
}

func TestNewModelRejectsShapeMismatch(t *testing.T) {
	t.Parallel()

	_, err := newModel(
		[]*recording.Recording{
			testRecording("a.csv", 4, 1000),
			testRecording("b.csv", 4, 999),
		},
		appConfig{timeWindow: 100, specWindow: 50, windowRows: 2},
	)
	if !errors.Is(err, diffview.ErrShapeMismatch) {
		t.Fatalf("got %v, want ErrShapeMismatch", err)
	}
}

func TestViewRendersChannelTitles(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	out := m.View()
	if !strings.Contains(out, "EEG A") {
		t.Error("view is missing the first channel title")
	}
	if !strings.Contains(out, "a.csv") {
		t.Error("view is missing the dataset label")
	}
}

func TestHelpDialogOpensAndCloses(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	m.Update(keyMsg("?"))
	if m.activeDialog == nil || !m.activeDialog.IsVisible() {
		t.Fatal("? did not open the help dialog")
	}

	// Keys go to the dialog while it is up.
	m.Update(keyMsg("right"))
	if m.timeState.X != 0 {
		t.Error("pan key leaked past the dialog")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.activeDialog.IsVisible() {
		t.Fatal("esc did not close the help dialog")
	}
}
