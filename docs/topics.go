// Package docs embeds the user documentation topics shown by the
// 'topic' subcommand.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// Topic returns the content of one documentation topic.
func Topic(name string) (string, error) {
	content, err := topics.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics lists the available topic names, sorted.
func Topics() ([]string, error) {
	files, err := fs.Glob(topics, "*.md")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(f, ".md"))
	}
	sort.Strings(names)
	return names, nil
}
