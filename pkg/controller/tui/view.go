package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
	"github.com/wildcards-gg/wcadmin/pkg/usecase"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.browsing {
		return m.browserView()
	}

	s := m.composer.State()
	if !s.LoggedIn {
		return m.loginView(&s)
	}
	return m.dashboardView(&s)
}

func (m *Model) loginView(s *usecase.ComposerState) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("WC Admin"))
	b.WriteString("\n\n")
	b.WriteString("Enter the bot token to connect.\n\n")
	b.WriteString(m.token.View())
	b.WriteString("\n\n")

	switch {
	case m.busy:
		b.WriteString(m.spinner.View() + " Connecting...")
	case s.LoginError != "":
		b.WriteString(errorStyle.Render(s.LoginError))
	default:
		b.WriteString(hintStyle.Render("enter: connect • ctrl+c: quit"))
	}

	box := loginBoxStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) dashboardView(s *usecase.ComposerState) string {
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("WC Admin"),
		" ",
		m.tabView(s),
	)

	form := panelStyle.Width(m.formWidth()).Render(m.formView(s))
	previewWidth := max(20, m.width-m.formWidth()-6)
	preview := panelStyle.Width(previewWidth).Render(
		hintStyle.Render("Preview") + "\n" + m.renderPreview(m.composer.Preview(), previewWidth-2),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, form, preview)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.channelView(s),
		body,
		m.statusView(s),
		m.help.View(m.keys),
	)
}

func (m *Model) tabView(s *usecase.ComposerState) string {
	tabs := []struct {
		tab   types.Tab
		label string
	}{
		{types.TabMessage, "Message"},
		{types.TabProspect, "Prospect"},
	}

	rendered := make([]string, 0, len(tabs))
	for _, t := range tabs {
		style := tabStyle
		if s.Tab == t.tab {
			style = activeTabStyle
		}
		rendered = append(rendered, style.Render(t.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)
}

func (m *Model) channelView(s *usecase.ComposerState) string {
	if len(s.Channels) == 0 {
		return errorStyle.Render("No channels available") + hintStyle.Render("  (ctrl+r to reload)")
	}
	return labelStyle.Render("Channel") + valueStyle.Render("#"+s.ChannelName()) +
		hintStyle.Render(fmt.Sprintf("  (%d channels, pgup/pgdn)", len(s.Channels)))
}

func (m *Model) label(name string, kind field, index int) string {
	if t, ok := m.focused(); ok && t.kind == kind && t.index == index {
		return focusedLabelStyle.Render(name)
	}
	return labelStyle.Render(name)
}

func (m *Model) formView(s *usecase.ComposerState) string {
	var rows []string

	if s.Tab == types.TabProspect {
		rows = append(rows,
			m.label("Name", fieldName, 0)+m.name.View(),
			m.label("End date", fieldDate, 0)+m.date.View(),
			labelStyle.Render("Veto emoji")+valueStyle.Render(s.VetoEmoji)+hintStyle.Render("  (ctrl+e)"),
		)
	} else {
		rows = append(rows, labelStyle.Render("Type")+m.variantView(s))

		switch s.Variant {
		case types.MessageVariantEmbed:
			rows = append(rows,
				m.label("Title", fieldTitle, 0)+m.title.View(),
				m.label("Body", fieldContent, 0),
				m.content.View(),
				m.label("Color", fieldColor, 0)+m.color.View()+" "+swatch(s.EmbedColor),
			)
		case types.MessageVariantPoll:
			rows = append(rows, m.label("Question", fieldContent, 0), m.content.View())
			for i := range m.options {
				rows = append(rows, m.label(fmt.Sprintf("Option %d", i+1), fieldOption, i)+m.options[i].View())
			}
			rows = append(rows, hintStyle.Render("ctrl+n add • ctrl+d remove focused option"))
		default:
			rows = append(rows, m.label("Message", fieldContent, 0), m.content.View())
		}
	}

	image := hintStyle.Render("none (ctrl+o to attach)")
	if s.ImagePath != "" {
		image = valueStyle.Render(s.ImagePath) + hintStyle.Render("  (ctrl+x to remove)")
	}
	rows = append(rows, "", labelStyle.Render("Image")+image)

	return strings.Join(rows, "\n")
}

func (m *Model) variantView(s *usecase.ComposerState) string {
	parts := make([]string, 0, len(types.MessageVariants))
	for _, v := range types.MessageVariants {
		if v == s.Variant {
			parts = append(parts, activeVariantStyle.Render(v.String()))
			continue
		}
		parts = append(parts, tabStyle.Render(v.String()))
	}
	return strings.Join(parts, "") + hintStyle.Render(" (ctrl+k)")
}

func (m *Model) statusView(s *usecase.ComposerState) string {
	switch {
	case m.busy:
		return m.spinner.View() + " Working..."
	case s.Status == nil:
		return ""
	case s.Status.IsError():
		return errorStyle.Render(s.Status.Text)
	default:
		return successStyle.Render(s.Status.Text)
	}
}

func (m *Model) browserView() string {
	header := titleStyle.Render("Select an image") + "  " +
		hintStyle.Render(m.files.CurrentDirectory)
	footer := hintStyle.Render("enter: select/open • h/backspace: up • esc: cancel")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.files.View(), "", footer)
}
