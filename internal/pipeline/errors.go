package pipeline

// StageError wraps the failure of a single stage. Its message is the
// underlying diagnostic so the summary line reads as the stage reported it.
type StageError struct {
	Stage State
	Err   error
}

func (e *StageError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *StageError) Unwrap() error { return e.Err }
