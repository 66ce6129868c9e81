package events

type Error struct {
	Base
	ExportId string
	// the key value of the offending group, empty for structural errors
	KeyValue string
	Err      error
}

func NewErrorEvent(exportId, keyValue string, err error) *Error {
	return &Error{
		ExportId: exportId,
		KeyValue: keyValue,
		Err:      err,
	}
}
