package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/ngtw-dev/ngtw/internal/branding"
)

// SampleHeading is a Tailwind-styled element shown after setup.
const SampleHeading = `<h1 class="text-3xl font-bold underline">Hello world!</h1>`

// DevServerURL is where `ng serve` listens by default.
const DevServerURL = "http://localhost:4200"

// Summary writes the post-setup report with next steps for the project.
func Summary(w io.Writer, name string) {
	fmt.Fprintln(w)
	Banner(w, RenderPass(IconPass)+" Setup Complete!")
	fmt.Fprintf(w, "Your %s project '%s' has been created.\n\n", projectKind(), name)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintf(w, "  %s\n", RenderAccent("cd "+name))
	fmt.Fprintf(w, "  %s\n\n", RenderAccent("ng serve"))
	fmt.Fprintf(w, "Then open %s in your browser.\n\n", RenderAccent(DevServerURL))
	fmt.Fprintln(w, "Start using Tailwind classes in your components:")
	fmt.Fprintf(w, "  %s\n\n", RenderMuted(SampleHeading))
}

func projectKind() string {
	return strings.TrimSuffix(branding.DisplayName(), " Project Setup")
}
