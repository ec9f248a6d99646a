package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/weapon-stats/internal/catalog"
	"github.com/atomicstack/weapon-stats/internal/format/table"
	"github.com/atomicstack/weapon-stats/internal/i18n"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultViewWidth = 80
	sidebarMinWidth  = 20
	sidebarMaxWidth  = 30
	sidebarFraction  = 0.3
	maxIndicatorDots = 10
	starCount        = 5
	columnGap        = 1
	// title + blank above the panels; blank + counter + prompt below.
	chromeRows = 5
	// heading + hint + blank above the category list.
	sidebarHeaderRows = 3
)

var (
	titleText  = i18n.Key("Max Weapon Stats Without Mods or Operators")
	creditText = i18n.P(
		"Special thanks to JB Chicken for the data. Thank you!",
		"Obrigado especial para o JB Chicken pelos dados. Obrigado!",
	)
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.viewWidth()
	sidebarW := m.sidebarWidth(width)
	cardW := width - sidebarW - columnGap
	if cardW < 1 {
		cardW = 1
	}

	top := applyWidth([]styledLine{
		{text: m.dict.Translate(titleText, m.snapshot.Locale()), style: styles.Title},
		{},
	}, width)

	left := m.sidebarLines(sidebarW)
	right := m.cardLines(cardW)
	panelH := len(left)
	if len(right) > panelH {
		panelH = len(right)
	}
	if m.height > 0 {
		panelH = m.height - chromeRows - m.footerRows()
		if panelH < 1 {
			panelH = 1
		}
	}
	leftStr := padBlock(renderLines(applyWidth(limitHeight(left, panelH, sidebarW), sidebarW)), sidebarW, panelH)
	rightStr := padBlock(strings.Join(right, "\n"), cardW, panelH)
	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftStr, strings.Repeat(" ", columnGap), rightStr)

	bottom := []styledLine{
		{},
		{text: m.counterLine(), raw: true},
		{text: m.filterPrompt(), raw: true},
	}
	if m.showFooter {
		bottom = append(bottom,
			styledLine{text: m.help.View(m.keys), raw: true},
			styledLine{text: m.dict.Translate(creditText, m.snapshot.Locale()), style: styles.Footer},
		)
	}
	bottom = applyWidth(bottom, width)
	return renderLines(top) + "\n" + panels + "\n" + renderLines(bottom)
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultViewWidth
}

func (m *Model) sidebarWidth(total int) int {
	w := int(float64(total) * sidebarFraction)
	if w < sidebarMinWidth {
		w = sidebarMinWidth
	}
	if w > sidebarMaxWidth {
		w = sidebarMaxWidth
	}
	if w > total/2 {
		w = total / 2
	}
	return w
}

func (m *Model) footerRows() int {
	if m.showFooter {
		return 2
	}
	return 0
}

func (m *Model) maxVisibleCategories() int {
	if m.height <= 0 {
		return -1
	}
	remain := m.height - chromeRows - m.footerRows() - sidebarHeaderRows
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) sidebarLines(width int) []styledLine {
	lines := []styledLine{
		{text: iconGlyph("fa-list-ul") + " " + m.T("CATEGORIES"), style: styles.SidebarHeading},
		{text: m.T("Please select the weapon category"), style: styles.SidebarHint},
		{},
	}
	items, start := m.sidebar.Visible(m.maxVisibleCategories())
	for i, item := range items {
		lines = append(lines, m.buildCategoryLine(item.Icon, m.T(item.Label), start+i == m.sidebar.Cursor && item.ID == m.snapshot.Category(), width))
	}
	return lines
}

// buildCategoryLine pads the active entry so its background spans the column.
func (m *Model) buildCategoryLine(icon, label string, active bool, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if active {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := "▌ " + iconGlyph(icon) + " " + label
	if width > 0 {
		if pad := width - runewidth.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// cardLines renders the weapon card, or the empty state when the filter
// matches nothing. Lines are already styled.
func (m *Model) cardLines(width int) []string {
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	snap := m.snapshot
	label := snap.Category()
	if category, ok := m.categoryIcon(label); ok {
		label = category + " " + m.T(label)
	}
	lines := []string{render(styles.SidebarHeading, fit(label, inner)), ""}

	weapon, ok := snap.Selected()
	if !ok {
		lines = append(lines,
			render(styles.EmptyTitle, fit(m.T("No weapon found"), inner)),
			render(styles.EmptyHint, fit(m.T("Try another search term"), inner)),
		)
		return boxed(lines, width)
	}

	lines = append(lines,
		render(styles.PrimaryLabel, fit(m.T(weapon.Primary), inner)),
		render(styles.RarityStyle(weapon.Rarity), fit(weapon.Name, inner)),
		render(styles.Info, fit(m.T("Rarity")+": "+m.rarityLabel(weapon.Rarity), inner)),
		render(styles.Stars, strings.Repeat("★", starCount)),
		render(styles.Image, fit(m.T("Image")+": "+m.images.Resolve(weapon), inner)),
		"",
	)
	header := table.FormatWidth([][]string{{m.T("STATS"), m.T("MAX")}}, []table.Alignment{table.AlignLeft, table.AlignRight}, inner)
	lines = append(lines, render(styles.StatsHeader, fit(header[0], inner)))
	for _, row := range m.statRows(weapon, inner) {
		lines = append(lines, render(styles.StatRow, fit(row, inner)))
	}
	return boxed(lines, width)
}

func (m *Model) statRows(weapon catalog.Weapon, width int) []string {
	rows := make([][]string, 0, len(weapon.Stats))
	for _, stat := range weapon.Stats {
		rows = append(rows, []string{iconGlyph(stat.Icon), m.T(stat.Label), stat.Value})
	}
	return table.FormatWidth(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight}, width)
}

func (m *Model) rarityLabel(r catalog.Rarity) string {
	if canonical := r.Canonical(); canonical != "" {
		return m.T(canonical)
	}
	return r.String()
}

func (m *Model) categoryIcon(id string) (string, bool) {
	idx := m.sidebar.IndexOf(id)
	if idx < 0 {
		return "", false
	}
	return iconGlyph(m.sidebar.Items[idx].Icon), true
}

// counterLine renders "Weapon i of n" with one dot per weapon, capped at ten.
func (m *Model) counterLine() string {
	snap := m.snapshot
	n := snap.Len()
	if n == 0 {
		return ""
	}
	arrowStyle := styles.Counter
	if n <= 1 {
		arrowStyle = styles.Dot
	}
	counter := fmt.Sprintf("%s %d %s %d", m.T("Weapon"), snap.SelectedIndex()+1, m.T("of"), n)
	var dots strings.Builder
	for i := 0; i < n && i < maxIndicatorDots; i++ {
		if i > 0 {
			dots.WriteString(" ")
		}
		if i == snap.SelectedIndex() {
			dots.WriteString(render(styles.ActiveDot, "●"))
		} else {
			dots.WriteString(render(styles.Dot, "○"))
		}
	}
	return render(arrowStyle, "‹") + " " + render(styles.Counter, counter) + " " + render(arrowStyle, "›") + "  " + dots.String()
}

func boxed(lines []string, width int) []string {
	if styles.Card == nil {
		return lines
	}
	w := width - 2
	if w < 1 {
		w = 1
	}
	return strings.Split(styles.Card.Copy().Width(w).Render(strings.Join(lines, "\n")), "\n")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func fit(text string, width int) string {
	return truncateText(text, width)
}

// padBlock pads or truncates every row to exactly width visible columns and
// the block to height rows so JoinHorizontal keeps the columns aligned.
func padBlock(block string, width, height int) string {
	if width < 1 {
		width = 1
	}
	rows := strings.Split(block, "\n")
	if len(rows) > height {
		rows = rows[:height]
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	for i, row := range rows {
		w := lipgloss.Width(row)
		if w > width {
			rows[i] = truncate.StringWithTail(row, uint(width-1), "…")
		} else if w < width {
			rows[i] = row + strings.Repeat(" ", width-w)
		}
	}
	return strings.Join(rows, "\n")
}

func limitHeight(lines []styledLine, height int, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}
