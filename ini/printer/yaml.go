package printer

import (
	"gopkg.in/yaml.v3"
)

// printYAML prints a mapping of section name to a mapping of keys, preserving
// document order. Entries of the default section sit under the "" key.
func (p *Printer) printYAML() error {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, g := range p.groups(collapse(p.src.Entries())) {
		body := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range g.entries {
			body.Content = append(body.Content, scalar(e.Key), scalar(e.Value))
		}
		root.Content = append(root.Content, scalar(g.name), body)
	}

	enc := yaml.NewEncoder(p.writer)
	enc.SetIndent(p.opts.IndentSize)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return err
	}
	return enc.Close()
}

// scalar returns a string node; values such as 8080 or yes stay strings.
func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
