package events

type Started struct {
	Base
	ExportId string
	// the number of groups the export will process
	GroupCount int
}

func NewStartedEvent(exportId string, groupCount int) *Started {
	return &Started{
		ExportId:   exportId,
		GroupCount: groupCount,
	}
}
