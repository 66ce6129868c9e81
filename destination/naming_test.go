package destination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateNaming(t *testing.T) {
	tests := []struct {
		name     string
		template string
		opts     []NamingOption
		index    int
		keyValue string
		expected string
	}{
		{
			name:     "key value only",
			template: "%{key_value}.png",
			keyValue: "8",
			expected: "8.png",
		},
		{
			name:     "index and key value",
			template: "chart_%{index}_%{key_value}.png",
			index:    2,
			keyValue: "setosa",
			expected: "chart_2_setosa.png",
		},
		{
			name:     "unknown token left untouched",
			template: "%{nope}/%{key_value}.svg",
			keyValue: "a",
			expected: "%{nope}/a.svg",
		},
		{
			name:     "snake case values",
			template: "%{key_value}.png",
			opts:     []NamingOption{WithSnakeCaseValues()},
			keyValue: "North America",
			expected: "north_america.png",
		},
		{
			name:     "no fields",
			template: "fixed.png",
			keyValue: "a",
			expected: "fixed.png",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			naming := TemplateNaming(tt.template, tt.opts...)
			assert.Equal(t, tt.expected, naming(tt.index, tt.keyValue))
		})
	}
}
