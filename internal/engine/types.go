package engine

// Actions recorded against a processed file.
const (
	ActionRenamed = "renamed"
	ActionPlanned = "planned"
	ActionHidden  = "hidden"
	ActionNoDate  = "no date"
)

// FileOutcome records what happened to a single file.
type FileOutcome struct {
	Path   string
	Dest   string // empty for skips
	Stamp  string // formatted date, empty for skips
	Action string
}

// FileError associates a rename failure with its file.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Result holds the outcome of a run.
type Result struct {
	Renamed []FileOutcome
	Planned []FileOutcome
	Skipped []FileOutcome
	Errors  []FileError
}
