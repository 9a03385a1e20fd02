package browse

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("libman index: " + m.indexPath))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(helpStyle.Render("loading index..."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	case len(m.items) == 0:
		b.WriteString(helpStyle.Render("index lists no packages"))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderList())
		b.WriteString("\n")
		b.WriteString(m.renderDetail())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderList() string {
	var b strings.Builder
	for i, item := range m.items {
		line := fmt.Sprintf("%s (%d libraries)", item.Name, len(item.Libraries))
		if item.Err != nil {
			line = item.Name + " (broken)"
		}
		if i == m.selected {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(normalItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderDetail() string {
	item := m.Selected()
	if item == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(item.Name))
	b.WriteString("\n")
	b.WriteString(detailLabelStyle.Render("path: "))
	b.WriteString(item.Path)
	b.WriteString("\n")

	if item.Err != nil {
		b.WriteString(errorStyle.Render(item.Err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(detailLabelStyle.Render("namespace: "))
	b.WriteString(item.Pkg.Namespace)
	b.WriteString("\n")
	if len(item.Pkg.Requires) > 0 {
		b.WriteString(detailLabelStyle.Render("requires: "))
		b.WriteString(strings.Join(item.Pkg.Requires, ", "))
		b.WriteString("\n")
	}

	for _, lib := range item.Libraries {
		b.WriteString(detailTitleStyle.Render("library " + lib.Name))
		b.WriteString("\n")
		if lib.Path != "" {
			b.WriteString(detailLabelStyle.Render("  linkable: "))
			b.WriteString(lib.Path)
			b.WriteString("\n")
		}
		for _, inc := range lib.Includes {
			b.WriteString(detailLabelStyle.Render("  include: "))
			b.WriteString(inc)
			b.WriteString("\n")
		}
		for _, def := range lib.Defines {
			b.WriteString(detailLabelStyle.Render("  define: "))
			b.WriteString(def)
			b.WriteString("\n")
		}
		for _, use := range lib.Uses {
			b.WriteString(detailLabelStyle.Render("  uses: "))
			b.WriteString(use.String())
			b.WriteString("\n")
		}
		for _, link := range lib.Links {
			b.WriteString(detailLabelStyle.Render("  links: "))
			b.WriteString(link.String())
			b.WriteString("\n")
		}
	}
	return b.String()
}
