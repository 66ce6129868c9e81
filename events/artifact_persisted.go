package events

type ArtifactPersisted struct {
	Base
	ExportId    string
	KeyValue    string
	Destination string
}

func NewArtifactPersistedEvent(exportId, keyValue, destination string) *ArtifactPersisted {
	return &ArtifactPersisted{
		ExportId:    exportId,
		KeyValue:    keyValue,
		Destination: destination,
	}
}
