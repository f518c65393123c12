package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Writer copies text to the system clipboard.
type Writer func(text string) error

// System is the Writer backed by the OS clipboard.
var System Writer = Write

func Write(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	return nil
}
