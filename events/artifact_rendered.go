package events

type ArtifactRendered struct {
	Base
	ExportId string
	KeyValue string
}

func NewArtifactRenderedEvent(exportId, keyValue string) *ArtifactRendered {
	return &ArtifactRendered{
		ExportId: exportId,
		KeyValue: keyValue,
	}
}
