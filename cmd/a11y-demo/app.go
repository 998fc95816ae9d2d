package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/a11y/cmd/a11y-demo/internal/config"
	"github.com/go-drift/a11y/pkg/announce"
	"github.com/go-drift/a11y/pkg/dialog"
	a11yerrors "github.com/go-drift/a11y/pkg/errors"
	"github.com/go-drift/a11y/pkg/focus"
	"github.com/go-drift/a11y/pkg/tree"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	fieldStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dialogStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	politeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("72"))
	assertiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

// tickMsg drives periodic re-render so announcement expiry shows up.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type app struct {
	cfg  config.Resolved
	keys keyMap

	doc      *tree.Document
	skip     *tree.Node
	name     *tree.Node
	notes    *tree.Node
	save     *tree.Node
	remove   *tree.Node
	polite   *tree.Node
	alert    *tree.Node
	confirm  *tree.Node
	register *focus.Register
	router   *announce.Router

	ctrl    *dialog.Controller
	dismiss func()

	width int
}

func newApp(cfg config.Resolved) *app {
	doc := tree.NewDocument()

	skip := &tree.Node{Role: tree.RoleLink, Label: "Skip to content", Target: "#main"}

	name := &tree.Node{Role: tree.RoleTextField, Label: "Patient name"}
	notes := &tree.Node{Role: tree.RoleTextField, Label: "Session notes"}
	save := &tree.Node{Role: tree.RoleButton, Label: "Save session"}
	remove := &tree.Node{Role: tree.RoleButton, Label: "Delete session"}

	main := &tree.Node{Role: tree.RoleRegion, Label: "main"}
	main.Append(name, notes, save, remove)

	polite := &tree.Node{Label: "status"}
	alert := &tree.Node{Label: "alerts"}

	doc.Body().Append(skip, main, polite, alert)
	doc.SetMain(main)

	confirm := &tree.Node{Role: tree.RoleDialog, Label: "Delete session?"}
	confirm.Append(
		&tree.Node{Role: tree.RoleGeneric, Label: "This action cannot be undone."},
		&tree.Node{Role: tree.RoleButton, Label: "Cancel"},
		&tree.Node{Role: tree.RoleButton, Label: "Delete"},
	)

	return &app{
		cfg:      cfg,
		keys:     defaultKeyMap(),
		doc:      doc,
		skip:     skip,
		name:     name,
		notes:    notes,
		save:     save,
		remove:   remove,
		polite:   polite,
		alert:    alert,
		confirm:  confirm,
		register: focus.NewRegister(),
		router:   announce.NewRouter(polite, alert, announce.Options{Expiry: cfg.Expiry}),
	}
}

func (a *app) Init() tea.Cmd {
	a.doc.Focus(a.skip)
	return tick()
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
	case tickMsg:
		return a, tick()
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		a.handleKey(msg)
	}
	return a, nil
}

// handleKey routes a terminal key press: an open dialog sees it first,
// then the page-level bindings, then text entry into the focused field.
func (a *app) handleKey(msg tea.KeyMsg) {
	if a.dialogOpen() {
		if ev, ok := toKeyEvent(msg); ok {
			if a.ctrl.HandleKey(ev) == focus.KeyEventHandled {
				a.syncDialog()
				return
			}
			if ev.Key == focus.KeyEnter {
				a.activateDialogChoice()
				return
			}
		}
		return
	}

	switch {
	case key.Matches(msg, a.keys.Skip):
		a.doc.SkipToMain()
		focus.Move(a.doc, a.doc.Main(), 1)
	case key.Matches(msg, a.keys.Next):
		focus.Move(a.doc, a.doc.Body(), 1)
	case key.Matches(msg, a.keys.Prev):
		focus.Move(a.doc, a.doc.Body(), -1)
	case key.Matches(msg, a.keys.Activate):
		a.activate()
	default:
		a.typeIntoField(msg)
	}
}

// activate performs the focused control's action.
func (a *app) activate() {
	switch a.doc.Focused() {
	case a.skip:
		a.doc.SkipToMain()
		focus.Move(a.doc, a.doc.Main(), 1)
	case a.save:
		a.say("Session saved", announce.Polite)
	case a.remove:
		a.openConfirm()
	}
}

// openConfirm attaches the confirmation dialog and opens its lifecycle.
func (a *app) openConfirm() {
	a.doc.Body().Append(a.confirm)
	ctrl, dismiss, err := dialog.Show(a.doc, a.confirm, dialog.Options{
		Persistent:       a.cfg.Persistent,
		SkipInitialFocus: a.cfg.SkipInitialFocus,
		Register:         a.register,
	})
	if err != nil {
		a.doc.Remove(a.confirm)
		a.say("Could not open the dialog", announce.Assertive)
		return
	}
	a.ctrl = ctrl
	a.dismiss = dismiss
}

// activateDialogChoice resolves the dialog from its focused button.
func (a *app) activateDialogChoice() {
	focused := a.doc.Focused()
	if focused == nil {
		return
	}
	switch focused.Label {
	case "Cancel":
		a.closeConfirm()
		a.say("Deletion cancelled", announce.Polite)
	case "Delete":
		a.closeConfirm()
		a.name.Text = ""
		a.notes.Text = ""
		a.say("Session deleted", announce.Assertive)
	}
}

// say routes an announcement, sending any failure to the error handler
// so it shows up in the log instead of vanishing.
func (a *app) say(message string, politeness announce.Politeness) {
	if err := a.router.Announce(message, politeness); err != nil {
		a11yerrors.Report(a11yerrors.New("main.app.say", a11yerrors.KindUnknown, err))
	}
}

// closeConfirm dismisses the dialog and detaches its node.
func (a *app) closeConfirm() {
	if a.dismiss != nil {
		a.dismiss()
	}
	a.syncDialog()
}

// syncDialog detaches the dialog node once the lifecycle reaches Closed.
// The controller restores focus before this runs, so removal never
// disturbs the return target.
func (a *app) syncDialog() {
	if a.ctrl != nil && a.ctrl.Phase() == dialog.PhaseClosed {
		a.doc.Remove(a.confirm)
		a.ctrl = nil
		a.dismiss = nil
	}
}

func (a *app) dialogOpen() bool {
	return a.ctrl != nil && a.ctrl.Phase() == dialog.PhaseOpen
}

// typeIntoField edits the focused text field.
func (a *app) typeIntoField(msg tea.KeyMsg) {
	focused := a.doc.Focused()
	if focused == nil || focused.Role != tree.RoleTextField {
		return
	}
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		focused.Text += msg.String()
	case tea.KeyBackspace:
		if len(focused.Text) > 0 {
			runes := []rune(focused.Text)
			focused.Text = string(runes[:len(runes)-1])
		}
	}
}

// toKeyEvent translates a terminal key press into a toolkit key event.
func toKeyEvent(msg tea.KeyMsg) (focus.KeyEvent, bool) {
	switch msg.Type {
	case tea.KeyTab:
		return focus.KeyEvent{Key: focus.KeyTab}, true
	case tea.KeyShiftTab:
		return focus.KeyEvent{Key: focus.KeyTab, Shift: true}, true
	case tea.KeyEsc:
		return focus.KeyEvent{Key: focus.KeyEscape}, true
	case tea.KeyEnter:
		return focus.KeyEvent{Key: focus.KeyEnter}, true
	}
	return focus.KeyEvent{}, false
}

func (a *app) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Therapy Session Intake"))
	b.WriteString("\n\n")
	b.WriteString(a.renderControl(a.skip, a.skip.Label))
	b.WriteString("\n\n")
	b.WriteString(a.renderField(a.name))
	b.WriteString("\n")
	b.WriteString(a.renderField(a.notes))
	b.WriteString("\n\n")
	b.WriteString(a.renderControl(a.save, "[ "+a.save.Label+" ]"))
	b.WriteString("  ")
	b.WriteString(a.renderControl(a.remove, "[ "+a.remove.Label+" ]"))
	b.WriteString("\n")

	if a.dialogOpen() {
		b.WriteString("\n")
		b.WriteString(a.renderDialog())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.renderLiveRegions())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"tab/shift+tab move · enter activate · esc dismiss · ctrl+j skip · ctrl+c quit"))
	return b.String()
}

func (a *app) renderField(n *tree.Node) string {
	value := n.Text
	if value == "" {
		value = "…"
	}
	line := labelStyle.Render(n.Label+": ") + fieldStyle.Render(value)
	if a.doc.Focused() == n {
		return focusedStyle.Render("> ") + line
	}
	return "  " + line
}

func (a *app) renderControl(n *tree.Node, text string) string {
	if a.doc.Focused() == n {
		return focusedStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (a *app) renderDialog() string {
	var lines []string
	lines = append(lines, titleStyle.Render(a.confirm.Label))
	for _, child := range a.confirm.Children() {
		switch child.Role {
		case tree.RoleGeneric:
			lines = append(lines, labelStyle.Render(child.Label))
		case tree.RoleButton:
			lines = append(lines, a.renderControl(child, "[ "+child.Label+" ]"))
		}
	}
	return dialogStyle.Render(strings.Join(lines, "\n"))
}

func (a *app) renderLiveRegions() string {
	polite := a.router.Message(announce.Polite)
	assertive := a.router.Message(announce.Assertive)
	var lines []string
	if assertive != "" {
		lines = append(lines, assertiveStyle.Render("⚠ "+assertive))
	}
	if polite != "" {
		lines = append(lines, politeStyle.Render("ℹ "+polite))
	}
	if len(lines) == 0 {
		return helpStyle.Render("(no announcements)")
	}
	return strings.Join(lines, "\n")
}
