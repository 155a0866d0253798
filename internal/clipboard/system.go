package clipboard

import "github.com/atotto/clipboard"

// systemClipboard adapts github.com/atotto/clipboard to the [Clipboard]
// interface.
type systemClipboard struct{}

// System returns the real OS clipboard.
func System() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

func (systemClipboard) ReadText() (string, error) {
	return clipboard.ReadAll()
}
