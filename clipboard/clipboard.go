// Package clipboard copies text to the system clipboard, falling back to
// the OSC52 terminal escape when no native clipboard is reachable (SSH,
// headless sessions).
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/saressalo/chandiff/logging"
)

// Copy writes text to the system clipboard.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		logging.Warnf("Clipboard: native copy failed (%v), trying OSC52", err)
		return copyOSC52(text)
	}
	logging.Infof("Clipboard: copied %d bytes", len(text))
	return nil
}
