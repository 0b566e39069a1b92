package metadata

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/Its-donkey/convertx/internal/routes"
)

// DescriptionLimit is the longest description search results show in full.
const DescriptionLimit = 160

// Audit lists what is wrong with the metadata served for rt.
func Audit(md Metadata, rt routes.Route, siteName string) []string {
	if md.Status != http.StatusOK {
		return []string{fmt.Sprintf("status %d", md.Status)}
	}

	var problems []string
	if want := routes.DocumentTitle(rt.Title, siteName); md.Title != want {
		problems = append(problems, fmt.Sprintf("title %q, want %q", md.Title, want))
	}
	switch n := utf8.RuneCountInString(md.Description); {
	case n == 0:
		problems = append(problems, "missing description")
	case n > DescriptionLimit:
		problems = append(problems, fmt.Sprintf("description is %d characters", n))
	}
	if md.Canonical == "" {
		problems = append(problems, "missing canonical link")
	}
	if md.OGTitle == "" {
		problems = append(problems, "missing og:title")
	}
	if md.OGImage == "" {
		problems = append(problems, "missing og:image")
	}
	if md.Robots != "" {
		problems = append(problems, fmt.Sprintf("robots %q on an indexed route", md.Robots))
	}
	if len(md.Headings) != 1 {
		problems = append(problems, fmt.Sprintf("%d h1 elements", len(md.Headings)))
	}
	return problems
}
