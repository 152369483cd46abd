package tui

import "github.com/alexisbeaulieu97/borderkit/internal/imagesource"

// ImageLoadedMsg carries a decoded upload.
type ImageLoadedMsg struct {
	Image *imagesource.Image
}

// ImageLoadFailedMsg reports a failed decode.
type ImageLoadFailedMsg struct {
	Path string
	Err  error
}

// SnippetWrittenMsg reports the outcome of writing the snippet to disk.
type SnippetWrittenMsg struct {
	Path string
	Err  error
}

// themeTickMsg fires once after start-up to theme the colour picker.
type themeTickMsg struct{}
