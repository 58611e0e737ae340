// Package engine orchestrates one conversation turn: classification,
// disambiguation, the flow transition, and the response, in that order.
// Each session's memory has a single writer; the engine serializes turns
// per session with a mutex.
package engine

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/purser-dev/purser/internal/address"
	"github.com/purser-dev/purser/internal/classify"
	"github.com/purser-dev/purser/internal/common"
	"github.com/purser-dev/purser/internal/flow"
	"github.com/purser-dev/purser/internal/knowledge"
	"github.com/purser-dev/purser/internal/lexicon"
	"github.com/purser-dev/purser/internal/meaning"
	"github.com/purser-dev/purser/internal/model"
	"github.com/purser-dev/purser/internal/respond"
)

// Turn is the full outcome of processing one user message.
type Turn struct {
	Input  string
	Reply  string
	Result model.ClassificationResult
	Action model.FlowAction
	State  model.ConversationState
}

// Session is one conversation with its own memory. All access goes
// through the engine, which serializes turns on the session mutex.
type Session struct {
	ID     string
	mu     sync.Mutex
	memory *model.ConversationMemory
}

// Memory returns a copy of the session's memory for inspection.
func (s *Session) Memory() model.ConversationMemory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.memory
}

// Engine wires the pipeline together. It holds no per-turn state of its
// own, so one engine can serve many sessions.
type Engine struct {
	classifier *classify.Classifier
	disambig   *classify.Disambiguator
	machine    *flow.Machine
	responder  *respond.Responder

	mu       sync.Mutex
	sessions map[string]*Session
}

// New builds an engine answering in the given language.
func New(lang knowledge.Language) *Engine {
	lex := lexicon.NewClassifier()
	analyzer := meaning.NewAnalyzer(lex)
	return &Engine{
		classifier: classify.NewClassifier(analyzer),
		disambig:   classify.NewDisambiguator(),
		machine:    flow.NewMachine(address.NewValidator()),
		responder:  respond.NewResponder(knowledge.NewBase(lang)),
		sessions:   make(map[string]*Session),
	}
}

// NewSession starts a fresh conversation and returns it.
func (e *Engine) NewSession() *Session {
	s := &Session{
		ID:     uuid.NewString(),
		memory: model.NewConversationMemory(),
	}
	e.mu.Lock()
	e.sessions[s.ID] = s
	e.mu.Unlock()
	return s
}

// Session looks up an existing conversation by id.
func (e *Engine) Session(id string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[id]
	if !ok {
		return nil, common.NewUserError("that conversation no longer exists", common.ErrNoSession)
	}
	return s, nil
}

// Process runs one full turn. The wallet snapshot is read-only data the
// host loaded before calling; the engine never fetches anything itself.
func (e *Engine) Process(ctx context.Context, sess *Session, input string, wallet model.ConversationContext) (Turn, error) {
	if err := ctx.Err(); err != nil {
		return Turn{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	mem := sess.memory

	result := e.classifier.Classify(input, mem, wallet)
	result = e.disambig.Apply(input, result, mem)
	action := e.machine.Process(result, mem, wallet)
	reply := e.responder.Render(result, action, mem, wallet)

	e.remember(mem, result, reply, wallet)

	return Turn{
		Input:  strings.TrimSpace(input),
		Reply:  reply,
		Result: result,
		Action: action,
		State:  mem.State,
	}, nil
}

// remember applies the post-turn memory writes. Classification earlier in
// the turn saw the memory exactly as the previous turn left it.
func (e *Engine) remember(mem *model.ConversationMemory, result model.ClassificationResult, reply string, wallet model.ConversationContext) {
	mem.Turns++
	mem.LastResponse = reply

	intent := result.Intent
	if intent.Kind != model.IntentUnknown {
		saved := intent
		mem.LastIntent = &saved
	}

	switch intent.Kind {
	case model.IntentBalance, model.IntentShowBalance:
		bal := wallet.Balance
		mem.LastBalance = &bal
	case model.IntentHistory:
		if result.Meaning != nil && result.Meaning.Action == model.ActionShowMore {
			mem.ShownMoreCount++
		} else {
			mem.ShownMoreCount = 0
		}
		mem.LastShownTxns = shownTxns(intent.Count, wallet.RecentTxns)
	case model.IntentFeeEstimate:
		if wallet.FeeEstimates != nil {
			fees := *wallet.FeeEstimates
			mem.LastShownFees = &fees
		}
	}

	// The flow state is the source of truth for send slots.
	if mem.State.Active() || mem.State.Kind == model.StateProcessing {
		if mem.State.Address != "" {
			mem.LastAddress = mem.State.Address
		}
		if mem.State.HasAmount {
			amt := mem.State.Amount
			mem.LastAmount = &amt
		}
	}
}

func shownTxns(count int, txns []model.TransactionSummary) []model.TransactionSummary {
	if count <= 0 || count > len(txns) {
		count = len(txns)
	}
	out := make([]model.TransactionSummary, count)
	copy(out, txns[:count])
	return out
}

// CompleteSend is called by the host once a processing transaction has
// been signed and broadcast. It records the txid and closes the flow.
func (e *Engine) CompleteSend(sess *Session, txid string) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.memory.State.Kind != model.StateProcessing {
		return
	}
	sess.memory.LastSentTxID = txid
	e.machine.MarkCompleted(sess.memory)
}

// FailSend records a broadcast failure so the user can retry or cancel.
func (e *Engine) FailSend(sess *Session, msg string) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.memory.State.Kind != model.StateProcessing {
		return
	}
	e.machine.MarkError(sess.memory, msg)
}

// Reset abandons the session's flow and paused snapshot.
func (e *Engine) Reset(sess *Session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	e.machine.Reset(sess.memory)
}
