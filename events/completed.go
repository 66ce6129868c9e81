package events

type Completed struct {
	Base
	ExportId  string
	Succeeded int
	Failed    int
	Err       error
}

func NewCompletedEvent(exportId string, succeeded, failed int, err error) *Completed {
	return &Completed{
		ExportId:  exportId,
		Succeeded: succeeded,
		Failed:    failed,
		Err:       err,
	}
}
