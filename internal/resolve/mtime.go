package resolve

import (
	"os"
	"time"
)

// ModTimeResolver falls back to the filesystem's last-modification time.
// The instant is truncated to whole seconds and converted to the local
// timezone before formatting.
type ModTimeResolver struct{}

func (ModTimeResolver) Resolve(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(info.ModTime().Unix(), 0).Local(), true
}
