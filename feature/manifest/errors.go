package manifest

import "errors"

var (
	// ErrManifestUnavailable means the index document could not be retrieved or lacks the table path.
	ErrManifestUnavailable = errors.New("manifest unavailable")
	// ErrDefinitionFetchFailed means a content table could not be retrieved or parsed.
	ErrDefinitionFetchFailed = errors.New("definition fetch failed")
	// ErrStorageWriteFailed means an artifact or the version token could not be persisted.
	ErrStorageWriteFailed = errors.New("storage write failed")
	// ErrRunInProgress is returned when another run holds the version lock.
	ErrRunInProgress = errors.New("manifest run already in progress")

	// ErrArtifactMissing is returned by read paths before the first successful run.
	ErrArtifactMissing = errors.New("artifact not found")
	// ErrPlugNotFound is returned when a hash is not part of the stored plug closure.
	ErrPlugNotFound = errors.New("plug not found")
	// ErrHistoryDisabled is returned by history reads when no database is configured.
	ErrHistoryDisabled = errors.New("run history disabled")
)

// Pipeline stages, as reported in errors, logs and run history.
const (
	StageIndex   = "index"
	StageFetch   = "fetch"
	StageResolve = "resolve"
	StageWrite   = "write"
	StageCommit  = "commit"
)

// StageError ties a fatal error to the stage that produced it.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// FailedStage returns the stage recorded in err, or "" when err carries none.
func FailedStage(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
