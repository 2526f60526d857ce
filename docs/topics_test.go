package docs

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	names, err := Topics()
	if err != nil {
		t.Fatalf("Topics() unexpected error = %v", err)
	}
	if len(names) == 0 {
		t.Fatal("Topics() returned no topics")
	}
	for _, name := range names {
		if _, err := Topic(name); err != nil {
			t.Errorf("Topic(%q) unexpected error = %v", name, err)
		}
	}
}

func TestTopic_NotFound(t *testing.T) {
	if _, err := Topic("no-such-topic"); err == nil {
		t.Error("Topic() expected an error for an unknown topic")
	}
}

// Every topic must be valid markdown opening with a level-1 heading,
// since the CLI renders it as a standalone document.
func TestTopics_StartWithTitle(t *testing.T) {
	names, err := Topics()
	if err != nil {
		t.Fatalf("Topics() unexpected error = %v", err)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			content, err := Topic(name)
			if err != nil {
				t.Fatalf("Topic(%q) unexpected error = %v", name, err)
			}

			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			first := root.FirstChild()
			if first == nil {
				t.Fatalf("topic %q is empty", name)
			}
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("topic %q does not start with a heading", name)
			}
			if heading.Level != 1 {
				t.Errorf("topic %q starts with a level-%d heading, want level 1", name, heading.Level)
			}
		})
	}
}
