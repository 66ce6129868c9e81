package destination

import (
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/plotpipe/plotpipe-sdk/constants"
)

// NamingFunc maps (index, keyValue) to a destination identifier.
// It must produce no duplicate identifiers across one export call - the
// exporter verifies this before writing anything.
type NamingFunc func(index int, keyValue string) string

type NamingOption func(*namingConfig)

type namingConfig struct {
	snakeCaseValues bool
}

// WithSnakeCaseValues converts key values to snake_case before substitution,
// so values like "North America" name files north_america.png
func WithSnakeCaseValues() NamingOption {
	return func(c *namingConfig) {
		c.snakeCaseValues = true
	}
}

// TemplateNaming builds a NamingFunc from a template such as
// "%{key_value}.png" or "chart_%{index}_%{key_value}.png".
// Unknown %{...} tokens are left untouched.
func TemplateNaming(template string, opts ...NamingOption) NamingFunc {
	config := &namingConfig{}
	for _, opt := range opts {
		opt(config)
	}

	return func(index int, keyValue string) string {
		if config.snakeCaseValues {
			keyValue = strcase.ToSnake(keyValue)
		}
		name := strings.ReplaceAll(template, templateField(constants.TemplateFieldKeyValue), keyValue)
		name = strings.ReplaceAll(name, templateField(constants.TemplateFieldIndex), strconv.Itoa(index))
		return name
	}
}

func templateField(field string) string {
	return "%{" + field + "}"
}
