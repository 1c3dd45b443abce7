package resolve

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
)

func init() {
	exif.RegisterParsers(mknote.All...)
}

// exifTimeLayout is the fixed textual encoding of EXIF datetime tags.
const exifTimeLayout = "2006:01:02 15:04:05"

// ExifResolver reads the DateTimeOriginal tag from a file's EXIF block.
// The tag value is naive (no timezone); it is parsed as-is and never
// reconciled with any zone.
type ExifResolver struct{}

func (ExifResolver) Resolve(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(bufio.NewReader(f))
	if err != nil {
		// Not an image, truncated container, no EXIF — all expected.
		return time.Time{}, false
	}

	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, false
	}
	s, err := tag.StringVal()
	if err != nil {
		// Tag present but not ASCII-typed.
		return time.Time{}, false
	}
	return parseExifTime(s)
}

// parseExifTime parses an EXIF datetime string strictly against
// exifTimeLayout. Cameras commonly NUL-pad the value.
func parseExifTime(s string) (time.Time, bool) {
	s = strings.TrimRight(s, "\x00 ")
	t, err := time.Parse(exifTimeLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
