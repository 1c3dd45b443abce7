package resolve

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeMP4WithCreationTime writes a file holding a single moov/mvhd box
// (version 0) with the given creation time, expressed in seconds since
// the 1904 epoch.
func writeMP4WithCreationTime(t *testing.T, dir, name string, creation uint32) string {
	t.Helper()

	// mvhd version 0 full-box payload is exactly 100 bytes:
	// version+flags, creation, modification, timescale, duration,
	// rate, volume, reserved, matrix, pre-defined, next track ID.
	payload := make([]byte, 100)
	binary.BigEndian.PutUint32(payload[4:8], creation)

	box := func(typ string, body []byte) []byte {
		b := make([]byte, 8+len(body))
		binary.BigEndian.PutUint32(b[0:4], uint32(8+len(body)))
		copy(b[4:8], typ)
		copy(b[8:], body)
		return b
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, box("moov", box("mvhd", payload)), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMvhdResolverReadsCreationTime(t *testing.T) {
	want := time.Date(2021, 5, 3, 14, 22, 10, 0, time.UTC)
	creation := uint32(want.Unix() + mvhdEpochOffset)
	path := writeMP4WithCreationTime(t, t.TempDir(), "clip.mp4", creation)

	got, ok := MvhdResolver{}.Resolve(path)
	if !ok {
		t.Fatal("Resolve should find the mvhd creation time")
	}
	if got.Unix() != want.Unix() {
		t.Errorf("Resolve = %v, want instant %v", got, want)
	}
}

func TestMvhdResolverIgnoresZeroCreationTime(t *testing.T) {
	path := writeMP4WithCreationTime(t, t.TempDir(), "clip.mp4", 0)

	if _, ok := (MvhdResolver{}).Resolve(path); ok {
		t.Error("an unset creation time should resolve to absent")
	}
}

func TestMvhdResolverNotAContainer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("still not a movie"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, ok := (MvhdResolver{}).Resolve(path); ok {
		t.Error("non-container file should resolve to absent")
	}
}
