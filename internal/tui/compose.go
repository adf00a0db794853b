package tui

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-quick-post/internal/service"
)

// recommendedPostLength is the length Bluesky clients display as the limit.
// It is shown as a hint only; the server decides.
const recommendedPostLength = 300

const statusTTL = 4 * time.Second

// ComposeModel is the page for writing and publishing a post.
type ComposeModel struct {
	ctx     context.Context
	session service.SessionService

	// copyToClipboard is replaced in tests.
	copyToClipboard func(string) error

	area       textarea.Model
	submitting bool
	status     string
	errMsg     string
}

// NewComposeModel creates a [ComposeModel] with a focused empty text area.
func NewComposeModel(ctx context.Context, session service.SessionService) *ComposeModel {
	ta := textarea.New()
	ta.Placeholder = "Что нового?"
	ta.SetWidth(54)
	ta.SetHeight(6)
	ta.CharLimit = 3000
	ta.ShowLineNumbers = false
	ta.Focus()

	return &ComposeModel{
		ctx:             ctx,
		session:         session,
		copyToClipboard: clipboard.WriteAll,
		area:            ta,
	}
}

// Init implements [tea.Model].
func (m *ComposeModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [PostResult]      : clears the text on success, shows the outcome.
//   - [loggedInNotice]  : greets the user after login.
//   - ctrl+s            : publishes the text.
//   - ctrl+l            : logs out.
//   - ctrl+y            : copies the account DID to the clipboard.
func (m *ComposeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PostResult:
		m.submitting = false
		if msg.Err != nil || !msg.OK {
			m.status = ""
			m.errMsg = humanizeServerUnavailableError(msg.Err)
			if m.errMsg == "" {
				m.errMsg = "Пост не опубликован"
			}
			return m, nil
		}
		m.errMsg = ""
		m.status = "Опубликовано"
		m.area.Reset()
		return m, clearStatusAfter(statusTTL)

	case loggedInNotice:
		m.errMsg = ""
		m.status = "Вход выполнен: " + msg.Identifier
		m.area.Focus()
		return m, tea.Batch(textarea.Blink, clearStatusAfter(statusTTL))

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
			return m, nil
		}
		m.status = "DID скопирован"
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.post):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.status = ""
			m.submitting = true
			return m, m.cmdPost(m.area.Value())

		case key.Matches(msg, keys.logout):
			if m.submitting {
				return m, nil
			}
			return m, m.cmdLogout()

		case key.Matches(msg, keys.copyDID):
			did := m.session.Session().DID
			copyFn := m.copyToClipboard
			return m, func() tea.Msg { return copiedMsg{err: copyFn(did)} }
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *ComposeModel) View() string {
	var b strings.Builder

	b.WriteString("Аккаунт: ")
	b.WriteString(fitText(valueOrDash(m.session.Session().DID), 48))
	b.WriteString("\n\n")
	b.WriteString(m.area.View())
	b.WriteString("\n")

	n := utf8.RuneCountInString(m.area.Value())
	counter := fmt.Sprintf("%d/%d", n, recommendedPostLength)
	if n > recommendedPostLength {
		counter = overLimit.Render(counter)
	}
	b.WriteString(helpStyle.Render("символов: ") + counter)
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Публикация...]\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("НОВЫЙ ПОСТ", strings.TrimRight(b.String(), "\n"),
		"ctrl+s: опубликовать │ ctrl+l: выйти │ ctrl+y: копировать DID │ f1: о программе")
}

func (m *ComposeModel) cmdPost(text string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		ok, err := session.CreatePost(ctx, text)
		return PostResult{OK: ok, Err: err}
	}
}

func (m *ComposeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return LogoutResult{Err: session.Logout(ctx)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
