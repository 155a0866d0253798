package clipboard

//go:generate mockgen -source=interfaces.go -destination=../mock/clipboard_mock.go -package=mock

// Clipboard abstracts the shared system clipboard so the exposure guard
// can be driven by a fake in tests. Both operations may fail on platform
// grounds (missing display, non-text content, permissions); callers must
// treat such failures as best-effort degradation, not fatal errors.
type Clipboard interface {
	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error

	// ReadText returns the current clipboard contents.
	ReadText() (string, error)
}
