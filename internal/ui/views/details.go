package views

import (
	"fmt"
	"strings"

	"tftlookup/internal/domain"
)

// DetailsRenderer renders the item details panel
type DetailsRenderer struct {
	styles *Styles
}

// NewDetailsRenderer creates a new details renderer
func NewDetailsRenderer(styles *Styles) *DetailsRenderer {
	return &DetailsRenderer{styles: styles}
}

// Render returns the panel body for item without the surrounding box
func (dr *DetailsRenderer) Render(item domain.Item) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", dr.styles.DetailsLabel.Render("Item name:"), item.Name)
	fmt.Fprintf(&b, "%s %s", dr.styles.DetailsLabel.Render("Item bonus:"), item.Bonus)
	if item.Img != "" {
		fmt.Fprintf(&b, "\n%s %s", dr.styles.DetailsLabel.Render("Image:"), dr.styles.Link.Render(item.Img))
	}

	// An item either combines into others or is built from two components
	switch {
	case item.HasCombos():
		dr.writeList(&b, "Item Combinations:", item.Combos)
	case item.IsCombined():
		dr.writeList(&b, "Built with:", item.Components())
	}

	return b.String()
}

func (dr *DetailsRenderer) writeList(b *strings.Builder, heading string, entries []string) {
	b.WriteString("\n")
	b.WriteString(dr.styles.Heading.Render(heading))
	for _, e := range entries {
		b.WriteString("\n  ")
		b.WriteString(dr.styles.Component.Render(e))
	}
}

// RenderDetails renders item with the default styles
func RenderDetails(item domain.Item) string {
	return NewDetailsRenderer(NewStyles()).Render(item)
}
