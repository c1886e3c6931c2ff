package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saressalo/chandiff/clipboard"
	"github.com/saressalo/chandiff/dialogs"
	"github.com/saressalo/chandiff/diffview"
	"github.com/saressalo/chandiff/logging"
	"github.com/saressalo/chandiff/recording"
	"github.com/saressalo/chandiff/spectral"
)

type viewMode int

const (
	modeTime viewMode = iota
	modeSpectrum
)

type appConfig struct {
	timeWindow int // samples per time-series window
	specWindow int // frequency bins per spectrum window
	windowRows int // channel rows per screen
}

type uiState struct {
	noticeMsg  string
	noticeType string
	noticeSeq  int
}

type model struct {
	cfg        appConfig
	recordings []*recording.Recording

	timeFrame *diffview.Frame
	specFrame *diffview.Frame // built lazily on the first spectrum toggle
	timeState diffview.ViewState
	specState diffview.ViewState

	mode         viewMode
	ready        bool
	activeDialog dialogs.Dialog
	ui           uiState

	terminalWidth  int
	terminalHeight int
}

// newModel validates the recordings against each other and builds the
// time-series frame. The spectrum frame waits until it is asked for.
func newModel(recs []*recording.Recording, cfg appConfig) (*model, error) {
	if len(recs) == 0 {
		return nil, fmt.Errorf("no recordings given")
	}

	datasets := make([][][]float64, len(recs))
	for i, rec := range recs {
		datasets[i] = rec.Data
	}

	frame, err := diffview.New(datasets,
		diffview.WithChannelNames(recs[0].ChannelNames),
		diffview.WithWindowWidth(cfg.timeWindow),
		diffview.WithWindowHeight(cfg.windowRows),
	)
	if err != nil {
		return nil, err
	}

	return &model{
		cfg:        cfg,
		recordings: recs,
		timeFrame:  frame,
		mode:       modeTime,
	}, nil
}

func (m *model) activeFrame() *diffview.Frame {
	if m.mode == modeSpectrum {
		return m.specFrame
	}
	return m.timeFrame
}

func (m *model) activeState() *diffview.ViewState {
	if m.mode == modeSpectrum {
		return &m.specState
	}
	return &m.timeState
}

func (m *model) datasetLabels() []string {
	labels := make([]string, len(m.recordings))
	for i, rec := range m.recordings {
		labels[i] = filepath.Base(rec.Path)
	}
	return labels
}

func (m *model) Init() tea.Cmd {
	log.Println("chandiff: Initialised")
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.activeDialog != nil && m.activeDialog.IsVisible() {
			var cmd tea.Cmd
			m.activeDialog, cmd = m.activeDialog.Update(msg)
			return m, cmd
		}
		return m.handleViewKey(msg)

	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		return m, nil

	case dialogs.ExportConfirmedMsg:
		if m.activeDialog != nil {
			m.activeDialog.Hide()
		}
		if err := m.exportWindow(msg.Path); err != nil {
			log.Printf("export to %q failed: %v", msg.Path, err)
			return m, m.startNotice(fmt.Sprintf("export failed: %v", err), "error", noticeDuration)
		}
		return m, m.startNotice(fmt.Sprintf("exported window to %s", msg.Path), "success", noticeDuration)

	case dialogs.ExportCanceledMsg:
		if m.activeDialog != nil {
			m.activeDialog.Hide()
		}
		return m, nil

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeType = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	logging.Debugf("handleViewKey %q mode=%d", msg.String(), m.mode)

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.PanLeft):
		m.activeState().Move(diffview.KeyLeft)

	case key.Matches(msg, Keys.PanRight):
		m.activeState().Move(diffview.KeyRight)

	case key.Matches(msg, Keys.ChannelUp):
		m.activeState().Move(diffview.KeyUp)

	case key.Matches(msg, Keys.ChannelDown):
		m.activeState().Move(diffview.KeyDown)

	case key.Matches(msg, Keys.ToggleSpectrum):
		return m, m.toggleSpectrum()

	case key.Matches(msg, Keys.CopyWindow):
		return m, m.copyWindow()

	case key.Matches(msg, Keys.ExportWindow):
		m.activeDialog = dialogs.NewExportDialog(defaultExportName(m.mode))
		return m, m.activeDialog.Focus()

	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
	}

	return m, nil
}

// toggleSpectrum switches between the time-series and PSD frames,
// estimating the spectra on first use. Each mode keeps its own offsets.
func (m *model) toggleSpectrum() tea.Cmd {
	if m.mode == modeSpectrum {
		m.mode = modeTime
		return nil
	}

	if m.specFrame == nil {
		log.Println("estimating power spectra")
		est := spectral.Estimator{Overlap: -1, SampleRate: m.recordings[0].SampleRate}

		powers := make([][][]float64, len(m.recordings))
		var freqs []float64
		for i, rec := range m.recordings {
			psd, err := est.EstimatePSD(rec.Data)
			if err != nil {
				log.Printf("PSD estimation failed for %q: %v", rec.Path, err)
				return m.startNotice(fmt.Sprintf("spectra unavailable: %v", err), "error", noticeDuration)
			}
			powers[i] = psd.Power
			freqs = psd.Freqs
		}

		frame, err := diffview.New(powers,
			diffview.WithChannelNames(m.recordings[0].ChannelNames),
			diffview.WithXRange(freqs),
			diffview.WithWindowWidth(m.cfg.specWindow),
			diffview.WithWindowHeight(m.cfg.windowRows),
		)
		if err != nil {
			log.Printf("building spectrum frame failed: %v", err)
			return m.startNotice(fmt.Sprintf("spectra unavailable: %v", err), "error", noticeDuration)
		}
		m.specFrame = frame
	}

	m.mode = modeSpectrum
	return nil
}

// copyWindow puts a plain-text summary of the visible window on the system
// clipboard.
func (m *model) copyWindow() tea.Cmd {
	text := windowSummary(m.activeFrame(), *m.activeState(), m.datasetLabels(), m.mode)
	if err := clipboard.Copy(text); err != nil {
		return m.startNotice(fmt.Sprintf("copy failed: %v", err), "error", noticeDuration)
	}
	return m.startNotice("window summary copied", "success", noticeDuration)
}

func defaultExportName(mode viewMode) string {
	if mode == modeSpectrum {
		return "window-psd.csv"
	}
	return "window.csv"
}
