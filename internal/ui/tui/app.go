package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nreyesp/cityride/internal/domain"
)

type screen int

const (
	screenCity screen = iota
	screenMonth
	screenDay
	screenLoading
	screenStats
	screenRaw
)

const rawPageSize = 5

type pickItem struct {
	title string
	desc  string
}

func (p pickItem) Title() string       { return p.title }
func (p pickItem) Description() string { return p.desc }
func (p pickItem) FilterValue() string { return p.title }

type model struct {
	theme Theme
	deps  Deps

	scr      screen
	cities   list.Model
	months   list.Model
	days     list.Model
	loading  spinner.Model
	rawTable table.Model

	city   string
	filter domain.Filter

	dataset domain.Dataset
	report  domain.Report
	page    pager

	width  int
	height int
	errMsg string
}

func Run(deps Deps) error {
	m, err := newModel(deps)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newModel(deps Deps) (model, error) {
	t := DefaultTheme()

	refs, err := deps.Catalog.ListCities(deps.DataDir)
	if err != nil {
		return model{}, err
	}

	cityItems := make([]list.Item, 0, len(refs))
	for _, ref := range refs {
		cityItems = append(cityItems, pickItem{title: ref.Name, desc: ref.Path})
	}

	// ValidMonths and ValidDays already carry the "all" value.
	monthItems := make([]list.Item, 0, len(domain.ValidMonths))
	for _, mo := range domain.ValidMonths {
		desc := "Only trips started in " + mo.Title()
		if mo == domain.MonthAll {
			desc = "No month filter"
		}
		monthItems = append(monthItems, pickItem{title: string(mo), desc: desc})
	}

	dayItems := make([]list.Item, 0, len(domain.ValidDays))
	for _, d := range domain.ValidDays {
		desc := "Only trips started on a " + d.Title()
		if d == domain.DayAll {
			desc = "No day filter"
		}
		dayItems = append(dayItems, pickItem{title: string(d), desc: desc})
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := model{
		theme:   t,
		deps:    deps,
		scr:     screenCity,
		cities:  newPicker("Pick a city", cityItems),
		months:  newPicker("Filter by month", monthItems),
		days:    newPicker("Filter by day of week", dayItems),
		loading: sp,
		filter:  domain.NoFilter,
	}
	return m, nil
}

func newPicker(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.cities.SetSize(msg.Width-4, msg.Height-10)
		m.months.SetSize(msg.Width-4, msg.Height-10)
		m.days.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case spinner.TickMsg:
		if m.scr != screenLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.loading, cmd = m.loading.Update(msg)
		return m, cmd

	case statsMsg:
		m.dataset = msg.dataset
		m.report = msg.report
		m.errMsg = ""
		m.scr = screenStats
		return m, nil

	case errMsg:
		m.errMsg = msg.err.Error()
		m.scr = screenCity
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateActiveList(msg)
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.scr {
	case screenCity:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			it, ok := m.cities.SelectedItem().(pickItem)
			if !ok {
				return m, nil
			}
			m.city = it.title
			m.errMsg = ""
			m.scr = screenMonth
			return m, nil
		}

	case screenMonth:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc", "b":
			m.scr = screenCity
			return m, nil
		case "enter":
			it, ok := m.months.SelectedItem().(pickItem)
			if !ok {
				return m, nil
			}
			m.filter.Month = domain.Month(it.title)
			m.scr = screenDay
			return m, nil
		}

	case screenDay:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc", "b":
			m.scr = screenMonth
			return m, nil
		case "enter":
			it, ok := m.days.SelectedItem().(pickItem)
			if !ok {
				return m, nil
			}
			m.filter.Day = domain.Day(it.title)
			m.scr = screenLoading
			return m, tea.Batch(m.loading.Tick, m.computeCmd(m.city, m.filter))
		}

	case screenLoading:
		// No keys while computing; ctrl+c handled above.
		return m, nil

	case screenStats:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "r":
			if m.dataset.Len() == 0 {
				return m, nil
			}
			m.page = newPager(m.dataset.Len(), rawPageSize)
			m.rawTable = m.rawPageTable()
			m.scr = screenRaw
			return m, nil
		case "n":
			m.filter = domain.NoFilter
			m.scr = screenCity
			return m, nil
		}

	case screenRaw:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc", "b":
			m.scr = screenStats
			return m, nil
		case "enter", " ":
			next, ok := m.page.advance()
			m.page = next
			if ok {
				m.rawTable = m.rawPageTable()
			}
			return m, nil
		}
	}

	return m.updateActiveList(msg)
}

func (m model) updateActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.scr {
	case screenCity:
		m.cities, cmd = m.cities.Update(msg)
	case screenMonth:
		m.months, cmd = m.months.Update(msg)
	case screenDay:
		m.days, cmd = m.days.Update(msg)
	}
	return m, cmd
}

// rawPageTable renders the current pager window as a bubbles table.
func (m model) rawPageTable() table.Model {
	cols := []table.Column{
		{Title: "Start", Width: 16},
		{Title: "Duration", Width: 9},
		{Title: "Start Station", Width: 28},
		{Title: "End Station", Width: 28},
		{Title: "User Type", Width: 10},
	}

	start, end := m.page.bounds()
	rows := make([]table.Row, 0, end-start)
	for _, t := range m.dataset.Trips[start:end] {
		rows = append(rows, table.Row{
			t.StartTime.Format("2006-01-02 15:04"),
			fmt.Sprintf("%.0fs", t.DurationSeconds),
			t.StartStation,
			t.EndStation,
			t.UserType,
		})
	}

	tb := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	tb.Blur()
	return tb
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Cityride") + "\n" +
		m.theme.Subtitle.Render("US bikeshare trip statistics") + "\n"

	var banner string
	if m.errMsg != "" {
		banner = m.theme.Error.Render("✗ "+m.errMsg) + "\n\n"
	}

	switch m.scr {
	case screenCity:
		help := m.theme.Help.Render("↑/↓ navigate • enter select • q quit")
		return wrap.Render(header + "\n" + banner + m.theme.Card.Render(m.cities.View()) + "\n" + help)

	case screenMonth:
		help := m.theme.Help.Render("↑/↓ navigate • enter select • esc back • q quit")
		return wrap.Render(header + "\n" + m.selectionLine() + "\n\n" + m.theme.Card.Render(m.months.View()) + "\n" + help)

	case screenDay:
		help := m.theme.Help.Render("↑/↓ navigate • enter select • esc back • q quit")
		return wrap.Render(header + "\n" + m.selectionLine() + "\n\n" + m.theme.Card.Render(m.days.View()) + "\n" + help)

	case screenLoading:
		card := m.theme.Card.Render(fmt.Sprintf("%s Crunching %s trips…", m.loading.View(), domain.TitleWords(m.city)))
		return wrap.Render(header + "\n" + m.selectionLine() + "\n\n" + card)

	case screenStats:
		help := m.theme.Help.Render("r raw data • n new filters • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.statsView()) + "\n" + help)

	case screenRaw:
		body := m.rawTable.View()
		start, end := m.page.bounds()
		status := fmt.Sprintf("Rows %d–%d of %d", start+1, end, m.dataset.Len())
		if start >= end {
			status = "No rows to display."
		}
		if m.page.exhausted() {
			status = "No more data to display."
		}
		help := m.theme.Help.Render("enter next 5 rows • esc back to stats • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(body+"\n\n"+m.theme.Subtitle.Render(status)) + "\n" + help)

	default:
		return wrap.Render(header + "\nunknown state")
	}
}

func (m model) selectionLine() string {
	parts := []string{"City: " + domain.TitleWords(m.city)}
	if m.scr >= screenDay {
		parts = append(parts, "Month: "+m.filter.Month.Title())
	}
	if m.scr >= screenLoading {
		parts = append(parts, "Day: "+m.filter.Day.Title())
	}
	return m.theme.Help.Render(strings.Join(parts, "  •  "))
}

func (m model) statsView() string {
	r := m.report

	head := m.theme.Title.Render(domain.TitleWords(r.City)) + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("month=%s  day=%s  rows=%d  (%dms)",
			r.Month, r.Day, r.Rows, r.ElapsedMS))

	if r.Empty {
		return head + "\n\n" + "No data available for the selected filters." +
			"\n\n" + m.theme.Help.Render("Press n to pick different filters.")
	}

	var b strings.Builder
	b.WriteString(head + "\n\n")

	b.WriteString(m.theme.Section.Render("Most Frequent Travel Times") + "\n")
	b.WriteString(m.statLine("Month", domain.TitleWords(r.Time.MostCommonMonth.Value), r.Time.MostCommonMonth.Count))
	b.WriteString(m.statLine("Day", domain.TitleWords(r.Time.MostCommonDay.Value), r.Time.MostCommonDay.Count))
	b.WriteString(m.statLine("Hour", r.Time.MostCommonHour.Value+":00", r.Time.MostCommonHour.Count))
	b.WriteString("\n")

	b.WriteString(m.theme.Section.Render("Popular Stations & Trip") + "\n")
	b.WriteString(m.statLine("Start", r.Stations.MostCommonStart.Value, r.Stations.MostCommonStart.Count))
	b.WriteString(m.statLine("End", r.Stations.MostCommonEnd.Value, r.Stations.MostCommonEnd.Count))
	b.WriteString(m.statLine("Trip", r.Stations.MostCommonTrip.Value, r.Stations.MostCommonTrip.Count))
	b.WriteString("\n")

	b.WriteString(m.theme.Section.Render("Trip Duration") + "\n")
	b.WriteString(fmt.Sprintf("  Total: %s\n", m.theme.Value.Render(fmt.Sprintf("%.0f seconds", r.Duration.TotalSeconds))))
	b.WriteString(fmt.Sprintf("  Mean:  %s\n", m.theme.Value.Render(fmt.Sprintf("%.2f seconds", r.Duration.MeanSeconds))))
	b.WriteString("\n")

	b.WriteString(m.theme.Section.Render("User Stats") + "\n")
	for _, item := range r.Users.Types {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", item.Value, m.theme.Value.Render(fmt.Sprint(item.Count))))
	}
	if len(r.Users.Genders) > 0 {
		for _, item := range r.Users.Genders {
			b.WriteString(fmt.Sprintf("  %-12s %s\n", item.Value, m.theme.Value.Render(fmt.Sprint(item.Count))))
		}
	} else {
		b.WriteString("  " + m.theme.Subtitle.Render("Gender data not available.") + "\n")
	}
	if by := r.Users.BirthYears; by != nil {
		b.WriteString(fmt.Sprintf("  Birth year: earliest %s, most recent %s, most common %s\n",
			m.theme.Value.Render(fmt.Sprint(by.Earliest)),
			m.theme.Value.Render(fmt.Sprint(by.MostRecent)),
			m.theme.Value.Render(by.MostCommon.Value)))
	} else {
		b.WriteString("  " + m.theme.Subtitle.Render("Birth year data not available.") + "\n")
	}

	return b.String()
}

func (m model) statLine(label, value string, count int) string {
	return fmt.Sprintf("  %-6s %s (%d trips)\n", label+":", m.theme.Value.Render(value), count)
}
