// Package tui is the interactive chat interface over the conversation
// engine. All wallet data comes from the local snapshot store; nothing
// typed here leaves the device.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/purser-dev/purser/internal/common"
	"github.com/purser-dev/purser/internal/engine"
	"github.com/purser-dev/purser/internal/model"
	"github.com/purser-dev/purser/internal/wallet"
)

type chatLine struct {
	role string
	text string
}

type turnDoneMsg struct {
	turn engine.Turn
	err  error
}

type broadcastDoneMsg struct {
	txid string
	err  error
}

// Model holds the chat TUI state.
type Model struct {
	ctx      context.Context
	eng      *engine.Engine
	sess     *engine.Session
	store    *wallet.Store
	viewport viewport.Model
	textarea textarea.Model
	history  []chatLine
	state    model.ConversationState
	lastErr  error
	width    int
	height   int
	ready    bool
	busy     bool
	quitting bool
}

func newModel(ctx context.Context, eng *engine.Engine, store *wallet.Store) Model {
	ta := textarea.New()
	ta.Placeholder = "Say something, like \"send 0.01 to bc1q...\" or \"what's my balance\""
	ta.Prompt = "> "
	ta.CharLimit = 500
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.Focus()

	return Model{
		ctx:      ctx,
		eng:      eng,
		sess:     eng.NewSession(),
		store:    store,
		textarea: ta,
		history: []chatLine{
			{role: "purser", text: "Hi! I'm your wallet assistant. Ask me anything, in English, Spanish, or Arabic."},
		},
		state: model.Idle(),
	}
}

// Init initializes the chat.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tea.EnterAltScreen)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.busy {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()
			m.history = append(m.history, chatLine{role: "you", text: input})
			m.busy = true
			m.syncViewport()
			return m, m.processTurn(input)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width - 2)
		vpHeight := msg.Height - 5
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = vpHeight
		}
		m.syncViewport()

	case turnDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.lastErr = msg.err
			common.LogError(msg.err, "turn failed", common.Fields{"session": m.sess.ID})
			m.history = append(m.history, chatLine{role: "error", text: msg.err.Error()})
			m.syncViewport()
			return m, nil
		}
		m.lastErr = nil
		m.state = msg.turn.State
		m.history = append(m.history, chatLine{role: "purser", text: msg.turn.Reply})
		m.syncViewport()
		if msg.turn.State.Kind == model.StateProcessing {
			m.busy = true
			return m, m.broadcast(msg.turn.State)
		}
		return m, nil

	case broadcastDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.lastErr = msg.err
			common.LogError(msg.err, "broadcast failed", common.Fields{"session": m.sess.ID})
			m.eng.FailSend(m.sess, msg.err.Error())
			m.history = append(m.history, chatLine{role: "error", text: "Broadcast failed: " + msg.err.Error()})
		} else {
			m.eng.CompleteSend(m.sess, msg.txid)
			m.history = append(m.history, chatLine{role: "purser", text: fmt.Sprintf("Done! Transaction %s… is on the network.", msg.txid[:8])})
		}
		m.state = m.sess.Memory().State
		m.syncViewport()
		return m, nil
	}

	var taCmd, vpCmd tea.Cmd
	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	cmds = append(cmds, taCmd, vpCmd)

	return m, tea.Batch(cmds...)
}

// processTurn runs one engine turn against a fresh wallet snapshot.
func (m Model) processTurn(input string) tea.Cmd {
	return func() tea.Msg {
		snap, err := m.store.Snapshot(m.ctx)
		if err != nil {
			return turnDoneMsg{err: fmt.Errorf("failed to load wallet: %w", err)}
		}
		turn, err := m.eng.Process(m.ctx, m.sess, input, snap)
		return turnDoneMsg{turn: turn, err: err}
	}
}

// broadcast simulates signing and broadcasting the pending transaction,
// then records it in the local store.
func (m Model) broadcast(state model.ConversationState) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(600 * time.Millisecond)
		txid := newTxID()
		if state.Pending != nil {
			if err := m.store.RecordSend(m.ctx, txid, state.Pending.Amount, state.Pending.Fee); err != nil {
				return broadcastDoneMsg{err: err}
			}
		}
		return broadcastDoneMsg{txid: txid}
	}
}

// newTxID produces a 64-hex demo transaction id.
func newTxID() string {
	a := strings.ReplaceAll(uuid.NewString(), "-", "")
	b := strings.ReplaceAll(uuid.NewString(), "-", "")
	return a + b
}

// View renders the chat.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return statusStyle.Render("Starting...")
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("purser: your wallet, in your words"))
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.statusLine())
	sb.WriteString("\n")
	sb.WriteString(m.textarea.View())
	return sb.String()
}

func (m Model) statusLine() string {
	if m.busy {
		return statusStyle.Render("thinking…")
	}
	if m.lastErr != nil {
		return errorStyle.Render(m.lastErr.Error())
	}
	switch m.state.Kind {
	case model.StateAwaitAmount:
		return awaitingStyle.Render("waiting for: amount")
	case model.StateAwaitAddress:
		return awaitingStyle.Render("waiting for: address")
	case model.StateAwaitFeeLevel:
		return awaitingStyle.Render("waiting for: fee level")
	case model.StateAwaitConfirm:
		return awaitingStyle.Render("waiting for: confirmation")
	default:
		return statusStyle.Render("esc to quit")
	}
}

// syncViewport re-renders the transcript and scrolls to the bottom.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	var sb strings.Builder
	for _, line := range m.history {
		switch line.role {
		case "you":
			sb.WriteString(userStyle.Render("you: ") + line.text)
		case "error":
			sb.WriteString(errorStyle.Render(line.text))
		default:
			sb.WriteString(assistantStyle.Render(line.text))
		}
		sb.WriteString("\n\n")
	}
	m.viewport.SetContent(sb.String())
	m.viewport.GotoBottom()
}
