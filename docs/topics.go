// Package docs embeds the help topics served by the topic command.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// Index is the table-of-contents topic. It lists every other topic and is
// excluded from "*" expansion, which would otherwise print it twice.
const Index = "readme"

// GetTopic returns the markdown content of a single topic.
func GetTopic(topic string) (string, error) {
	content, err := topics.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of the named topics concatenated in order.
// The name "*" expands to every topic except the index.
func GetTopics(names ...string) (string, error) {
	expanded, err := expand(names)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, name := range expanded {
		content, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted list of every topic except the index.
func GetAllTopics() ([]string, error) {
	entries, err := topics.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == Index {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// expand replaces each "*" in names with the full topic list.
func expand(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name != "*" {
			out = append(out, name)
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return nil, err
		}
		out = append(out, all...)
	}
	return out, nil
}
