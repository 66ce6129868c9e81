package constants

const (
	// known fields usable in a destination naming template
	// (all other %{...} tokens are left untouched so a bad template is visible in the output name)
	TemplateFieldKeyValue = "key_value"
	TemplateFieldIndex    = "index"
)

const DefaultFilenameTemplate = "%{key_value}.png"
