package currencyinput

import (
	"github.com/atotto/clipboard"

	mdwerror "github.com/msto63/currencyedit/foundation/core/error"
)

// SystemClipboard reads the clipboard of the desktop session
type SystemClipboard struct{}

// ReadAll returns the clipboard text
func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", mdwerror.New("no clipboard utility available").
			WithCode(mdwerror.CodeClipboardUnavailable).
			WithOperation("currencyinput.SystemClipboard.ReadAll")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read clipboard").
			WithCode(mdwerror.CodeClipboardUnavailable).
			WithOperation("currencyinput.SystemClipboard.ReadAll")
	}
	return text, nil
}
