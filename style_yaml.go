package mdview

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StyleTableFromYAML decodes a style override table from YAML. The document
// must be a mapping of node-type keys to property mappings:
//
//	heading1:
//	  fontSize: 28
//	link:
//	  color: "#ff00ff"
func StyleTableFromYAML(data []byte) (StyleTable, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode style table: %w", err)
	}
	table := make(StyleTable, len(raw))
	for key, props := range raw {
		s := make(StyleObject, len(props))
		for k, v := range props {
			s[k] = v
		}
		table[key] = s
	}
	return table, nil
}
