package tui

import (
	"strings"

	"github.com/agbru/zergmon/internal/sysmon"
)

// IdentityModel shows the host identity block.
type IdentityModel struct {
	identity sysmon.Identity
	width    int
	height   int
}

// NewIdentityModel creates an identity panel; every value starts unknown.
func NewIdentityModel() IdentityModel {
	return IdentityModel{}
}

// SetIdentity replaces the displayed identity.
func (m *IdentityModel) SetIdentity(id sysmon.Identity) {
	m.identity = id
}

// SetSize updates dimensions.
func (m *IdentityModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// View renders the identity panel.
func (m IdentityModel) View() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("System"))
	for _, f := range m.identity.Fields() {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(f.Label + ":"))
		b.WriteString(" ")
		if f.Value.IsKnown() {
			b.WriteString(valueStyle.Render(f.Value.String()))
		} else {
			b.WriteString(unknownStyle.Render(f.Value.String()))
		}
	}
	return panelStyle.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(b.String())
}
