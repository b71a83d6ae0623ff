package tui

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogCapture keeps the last maxLines log lines in memory so they can be
// shown without writing over the screen.
type LogCapture struct {
	messages []string
	mutex    sync.Mutex
	maxLines int
}

func NewLogCapture(maxLines int) *LogCapture {
	return &LogCapture{
		messages: make([]string, 0),
		maxLines: maxLines,
	}
}

func (lc *LogCapture) Write(p []byte) (n int, err error) {
	lc.mutex.Lock()
	defer lc.mutex.Unlock()

	lc.messages = append(lc.messages, string(p))
	if len(lc.messages) > lc.maxLines {
		lc.messages = lc.messages[len(lc.messages)-lc.maxLines:]
	}
	return len(p), nil
}

func (lc *LogCapture) GetMessages() string {
	lc.mutex.Lock()
	defer lc.mutex.Unlock()
	return strings.Join(lc.messages, "")
}

func (lc *LogCapture) Clear() {
	lc.mutex.Lock()
	defer lc.mutex.Unlock()
	lc.messages = lc.messages[:0]
}

func (t *TUIApp) showLogViewer() {
	logText := tview.NewTextView().
		SetDynamicColors(false).
		SetWrap(true).
		SetScrollable(true)
	logText.SetBorder(true).SetTitle("Log (ESC to close)")
	logText.SetText(t.logCapture.GetMessages())
	logText.ScrollToEnd()

	flex := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(logText, 0, 3, true).
			AddItem(nil, 0, 1, false), 0, 3, true).
		AddItem(nil, 0, 1, false)

	logText.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			t.backToMain()
			return nil
		}
		return event
	})
	t.app.SetRoot(flex, true).SetFocus(logText)
}

// initLogging sends all logging to the capture and to a temp file.
func (t *TUIApp) initLogging(debug bool) {
	t.logCapture = NewLogCapture(1000)

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var w io.Writer = t.logCapture
	logFile, err := os.CreateTemp("", "krabbels-tui-*.log")
	if err == nil {
		w = io.MultiWriter(logFile, t.logCapture)
	}
	logger := zerolog.New(w).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	if logFile != nil {
		logger.Info().Str("logfile", logFile.Name()).Msg("TUI logging initialized")
	}
}
