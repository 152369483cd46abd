package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/borderkit/internal/imagesource"
)

// themeDelay lets the picker finish initialising before it is themed.
const themeDelay = 200 * time.Millisecond

func themeTickCmd() tea.Cmd {
	return tea.Tick(themeDelay, func(time.Time) tea.Msg { return themeTickMsg{} })
}

// loadImageCmd decodes path off the event loop.
func loadImageCmd(loader *imagesource.Loader, path string) tea.Cmd {
	return func() tea.Msg {
		img, err := loader.Load(path)
		if err != nil {
			return ImageLoadFailedMsg{Path: path, Err: err}
		}
		return ImageLoadedMsg{Image: img}
	}
}

func writeSnippetCmd(path, snippet string) tea.Cmd {
	return func() tea.Msg {
		err := os.WriteFile(path, []byte(snippet), 0o644)
		return SnippetWrittenMsg{Path: path, Err: err}
	}
}
