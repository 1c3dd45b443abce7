package resolve

import (
	"os"
	"time"

	mp4 "github.com/abema/go-mp4"
)

// mvhdEpochOffset is the number of seconds between the ISO-BMFF epoch
// (1904-01-01 00:00:00 UTC) and the Unix epoch.
const mvhdEpochOffset = 2082844800

// MvhdResolver reads the creation time from the moov/mvhd box of an
// ISO Base Media File Format container (mp4, mov, m4v and friends).
type MvhdResolver struct{}

func (MvhdResolver) Resolve(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	boxes, err := mp4.ExtractBoxWithPayload(f, nil,
		mp4.BoxPath{mp4.BoxTypeMoov(), mp4.BoxTypeMvhd()})
	if err != nil || len(boxes) == 0 {
		return time.Time{}, false
	}

	mvhd, ok := boxes[0].Payload.(*mp4.Mvhd)
	if !ok {
		return time.Time{}, false
	}

	var ct uint64
	if mvhd.Version > 0 {
		ct = mvhd.CreationTimeV1
	} else {
		ct = uint64(mvhd.CreationTimeV0)
	}
	if ct == 0 {
		// Unset creation time; common for re-encoded files.
		return time.Time{}, false
	}

	unix := int64(ct) - mvhdEpochOffset
	if unix < 0 {
		return time.Time{}, false
	}
	return time.Unix(unix, 0).Local(), true
}
