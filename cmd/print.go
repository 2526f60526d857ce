package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document for the terminal. When
// rendering is not possible the raw markdown is printed instead.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err == nil {
		if out, err := r.Render(doc); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(doc)
}
