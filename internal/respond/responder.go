// Package respond renders classification and flow results into user-facing
// text. Every response is a deterministic template; when confidence is low
// the responder asks a clarifying question built from the alternatives
// instead of a bare failure message.
package respond

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/purser-dev/purser/internal/knowledge"
	"github.com/purser-dev/purser/internal/model"
)

// Responder turns a classified turn into reply text.
type Responder struct {
	kb *knowledge.Base
}

// NewResponder builds a responder backed by a knowledge base.
func NewResponder(kb *knowledge.Base) *Responder {
	return &Responder{kb: kb}
}

// Render produces the reply for one turn. The memory is read-only here;
// the engine owns all writes.
func (r *Responder) Render(res model.ClassificationResult, action model.FlowAction, mem *model.ConversationMemory, ctx model.ConversationContext) string {
	// The flow answered with state; meaning-level turns bypass it.
	if action.Kind == model.FlowRespondMeaning {
		return r.renderMeaning(res, mem, ctx)
	}

	if action.Kind == model.FlowPauseAndHandle {
		answer := r.renderIntent(res, mem, ctx)
		if action.ResumeHint != "" {
			return answer + "\n\n" + action.ResumeHint
		}
		return answer
	}

	// Active flow states prompt for the next slot regardless of what else
	// the turn contained.
	if prompt, ok := r.statePrompt(action.State); ok {
		if action.Kind == model.FlowModifyInPlace {
			return "Updated. " + prompt
		}
		return prompt
	}

	if res.NeedsClarification {
		return r.clarify(res)
	}

	return r.renderIntent(res, mem, ctx)
}

// statePrompt returns the next-slot prompt for an in-flight transfer.
func (r *Responder) statePrompt(state model.ConversationState) (string, bool) {
	switch state.Kind {
	case model.StateAwaitAmount:
		return "How much would you like to send?", true
	case model.StateAwaitAddress:
		return fmt.Sprintf("Sending %s BTC. What address should it go to?", state.Amount.String()), true
	case model.StateAwaitFeeLevel:
		return fmt.Sprintf("Sending %s BTC to %s. How fast should it go: slow, medium, or fast?",
			state.Amount.String(), shortAddr(state.Address)), true
	case model.StateAwaitConfirm:
		p := state.Pending
		if p == nil {
			return fmt.Sprintf("Ready to send %s BTC to %s. Say confirm to send it, or cancel.",
				state.Amount.String(), shortAddr(state.Address)), true
		}
		return fmt.Sprintf("Ready to send %s BTC to %s with a %s fee of about %s BTC (roughly %d minutes). Say confirm to send it, or cancel.",
			p.Amount.String(), shortAddr(p.Address), p.FeeLevel, p.Fee.String(), p.EstMinutes), true
	case model.StateProcessing:
		return "Sending it now. I'll let you know once it's on the network.", true
	case model.StateCompleted:
		return "Sent. You can check on it anytime by asking for your history.", true
	case model.StateError:
		return r.errorPrompt(state), true
	default:
		return "", false
	}
}

func (r *Responder) errorPrompt(state model.ConversationState) string {
	switch state.ErrCode {
	case model.ErrCodeInvalidAmount:
		return "That amount doesn't work: it must be more than zero and within what exists. What amount should I use?"
	case model.ErrCodeInvalidAddress:
		return "That doesn't look like a valid Bitcoin address. Could you check it and paste it again?"
	case model.ErrCodeTestnet:
		return "That's a testnet address, and this wallet only sends real bitcoin on mainnet. Do you have a mainnet address?"
	default:
		if state.ErrMsg != "" {
			return "Something went wrong: " + state.ErrMsg + ". Say cancel to start over, or try again."
		}
		return "Something went wrong with that transfer. Say cancel to start over, or try again."
	}
}

// clarify asks a question naming what the classifier almost understood.
func (r *Responder) clarify(res model.ClassificationResult) string {
	alts := make([]string, 0, 2)
	for _, score := range res.Alternatives {
		if score.Intent.Kind == model.IntentUnknown || score.Intent.Kind == res.Intent.Kind {
			continue
		}
		alts = append(alts, describeIntent(score.Intent.Kind))
		if len(alts) == 2 {
			break
		}
	}
	if res.Intent.Kind != model.IntentUnknown {
		lead := describeIntent(res.Intent.Kind)
		if len(alts) > 0 {
			return fmt.Sprintf("I think you want to %s, but you might mean %s. Which is it?", lead, strings.Join(alts, " or "))
		}
		return fmt.Sprintf("Just to check: do you want to %s?", lead)
	}
	if len(alts) > 0 {
		return fmt.Sprintf("I'm not sure what you meant. Did you want to %s?", strings.Join(alts, " or "))
	}
	return "I'm not sure what you meant. You can send bitcoin, check your balance, see your history, or ask me to explain something."
}

func (r *Responder) renderMeaning(res model.ClassificationResult, mem *model.ConversationMemory, ctx model.ConversationContext) string {
	sm := res.Meaning
	if sm == nil {
		return r.renderIntent(res, mem, ctx)
	}
	switch sm.Type {
	case model.SentenceEmotional:
		return emotionReply(sm.Emotion)
	case model.SentenceEvaluation:
		return r.evaluationReply(*sm, mem, ctx)
	default:
		if res.Intent.Kind == model.IntentExplain {
			return r.explain(res.Intent.Topic)
		}
		return r.renderIntent(res, mem, ctx)
	}
}

func emotionReply(e model.EmotionKind) string {
	switch e {
	case model.EmotionHappy, model.EmotionExcited:
		return "Glad to hear it! Anything you'd like to do with your wallet?"
	case model.EmotionGrateful:
		return "You're welcome. I'm here whenever you need me."
	case model.EmotionFrustrated:
		return "Sorry about that. Tell me plainly what you're trying to do and I'll walk you through it."
	case model.EmotionConfused:
		return "No problem, let's slow down. You can say things like \"send 0.01 to an address\", \"what's my balance\", or \"explain fees\"."
	case model.EmotionWorried:
		return "It's okay to be careful with money. Nothing happens until you confirm it, and you can cancel anytime."
	default:
		return "I'm listening. What would you like to do?"
	}
}

// evaluationReply answers judgments like "that's too expensive" with the
// data behind whatever was just shown.
func (r *Responder) evaluationReply(sm model.SentenceMeaning, mem *model.ConversationMemory, ctx model.ConversationContext) string {
	switch sm.Object {
	case model.ObjectFee:
		if sm.Judgment == model.JudgmentTooMuch || sm.Judgment == model.JudgmentExpensive {
			if fees := feesOf(mem, ctx); fees != nil {
				return fmt.Sprintf("You can go cheaper: slow is %d sat/vB instead of %d. It just takes longer to confirm. Want me to use slow?",
					fees.Slow, fees.Rate(model.FeeMedium))
			}
			return "Fees depend on how busy the network is. Choosing the slow level costs less but takes longer to confirm."
		}
		return "Fee levels trade speed for cost. Fast confirms in minutes, slow can take a couple of hours but is cheapest."
	case model.ObjectAmount:
		if mem.State.HasAmount {
			return fmt.Sprintf("The current amount is %s BTC. Say \"half\" or \"double\", or just tell me a new amount.", mem.State.Amount.String())
		}
		return "Tell me the amount you'd prefer and I'll use that."
	default:
		if sm.Judgment == model.JudgmentGood || sm.Judgment == model.JudgmentEnough {
			return "Good. Anything else you'd like to do?"
		}
		return "Understood. Tell me what you'd like to change."
	}
}

func feesOf(mem *model.ConversationMemory, ctx model.ConversationContext) *model.FeeEstimates {
	if mem.LastShownFees != nil {
		return mem.LastShownFees
	}
	return ctx.FeeEstimates
}

func (r *Responder) renderIntent(res model.ClassificationResult, mem *model.ConversationMemory, ctx model.ConversationContext) string {
	intent := res.Intent
	switch intent.Kind {
	case model.IntentBalance:
		return fmt.Sprintf("Your balance is %s BTC.", ctx.Balance.String())
	case model.IntentHideBalance:
		return "Okay, your balance is hidden. Say \"show my balance\" when you want it back."
	case model.IntentShowBalance:
		return fmt.Sprintf("Showing balances again. You have %s BTC.", ctx.Balance.String())
	case model.IntentHistory:
		return historyReply(intent, ctx)
	case model.IntentFeeEstimate:
		return feeReply(ctx)
	case model.IntentPrice:
		cur := currencyOf(intent)
		price, ok := ctx.Price(cur)
		if !ok {
			return "I don't have a price for that currency right now."
		}
		return fmt.Sprintf("1 BTC is currently %s %s.", price.StringFixed(2), cur)
	case model.IntentConvert:
		return convertReply(intent, ctx)
	case model.IntentReceive, model.IntentNewAddress:
		return "Here's a fresh address for receiving: check the Receive screen for the full QR code. Each payment should use a new address."
	case model.IntentUTXOList:
		return utxoReply(ctx)
	case model.IntentNetwork:
		return "The network looks normal: blocks are coming in and your node peers are healthy."
	case model.IntentWalletHealth:
		return fmt.Sprintf("Everything looks good. Balance %s BTC, %d recent transactions, keys backed up on this device.",
			ctx.Balance.String(), len(ctx.RecentTxns))
	case model.IntentRefresh:
		return "Refreshed. Your wallet is up to date with the network."
	case model.IntentExport:
		return "I've prepared your transaction history for export. You'll find the file in your wallet's export folder."
	case model.IntentTxDetail:
		return txDetailReply(intent, ctx)
	case model.IntentBumpFee:
		if intent.TxID == "" {
			return "I don't see a recent outgoing transaction to speed up. Which one did you mean?"
		}
		return fmt.Sprintf("I can rebroadcast %s with a higher fee so it confirms sooner. Say confirm to go ahead.", shortTxID(intent.TxID))
	case model.IntentGreeting:
		return greetingReply(mem)
	case model.IntentHelp:
		return "You can talk to me normally. Try \"send 0.01 to bc1q…\", \"what's my balance\", \"show my history\", \"what are fees like\", or \"explain confirmations\"."
	case model.IntentAbout:
		return "I'm your wallet's assistant. Everything I do happens on this device: I never send your words or your keys anywhere."
	case model.IntentSettings:
		return "Settings live in the gear menu: language, currency, fee defaults, and privacy options."
	case model.IntentExplain:
		return r.explain(intent.Topic)
	case model.IntentConfirm:
		return "There's nothing waiting for a confirmation right now."
	case model.IntentCancel:
		return "Cancelled. Nothing was sent."
	case model.IntentSend:
		// The flow normally owns send turns; reaching here means it had
		// nothing to advance.
		return "Tell me how much to send and to what address, and I'll set it up."
	default:
		return r.clarify(res)
	}
}

func historyReply(intent model.WalletIntent, ctx model.ConversationContext) string {
	if len(ctx.RecentTxns) == 0 {
		return "No transactions yet. Once you send or receive bitcoin, it will show up here."
	}
	n := intent.Count
	if n <= 0 || n > len(ctx.RecentTxns) {
		n = len(ctx.RecentTxns)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Here are your last %d transactions:\n", n)
	for i := 0; i < n; i++ {
		tx := ctx.RecentTxns[i]
		verb := "received"
		if tx.Direction == model.DirectionOutgoing {
			verb = "sent"
		}
		fmt.Fprintf(&sb, "%d. %s %s BTC (%d confirmations)\n", i+1, verb, tx.Amount.String(), tx.Confirmations)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func feeReply(ctx model.ConversationContext) string {
	fees := ctx.FeeEstimates
	if fees == nil {
		return "I don't have fresh fee estimates right now. Medium usually confirms within an hour."
	}
	return fmt.Sprintf("Current fees: slow %d sat/vB (about 2 hours), medium %d sat/vB (about 30 minutes), fast %d sat/vB (about 10 minutes).",
		fees.Slow, fees.Medium, fees.Fast)
}

func convertReply(intent model.WalletIntent, ctx model.ConversationContext) string {
	cur := currencyOf(intent)
	price, ok := ctx.Price(cur)
	if !ok || price.IsZero() {
		return "I don't have a price for that currency right now."
	}
	if intent.Amount == nil {
		return fmt.Sprintf("1 BTC is currently %s %s.", price.StringFixed(2), cur)
	}
	if intent.Currency != "" && intent.Unit == "" {
		// Fiat input converts into bitcoin.
		btc := intent.Amount.Div(price).Truncate(8)
		return fmt.Sprintf("%s %s is about %s BTC right now.", intent.Amount.String(), cur, btc.String())
	}
	btc := model.NormalizeAmount(*intent.Amount, intent.Unit)
	fiat := btc.Mul(price).Truncate(2)
	return fmt.Sprintf("%s BTC is about %s %s right now.", btc.String(), fiat.String(), cur)
}

func utxoReply(ctx model.ConversationContext) string {
	if len(ctx.UTXOs) == 0 {
		return "Your wallet has no unspent outputs right now."
	}
	total := decimal.Zero
	for _, u := range ctx.UTXOs {
		total = total.Add(u.Amount)
	}
	return fmt.Sprintf("You have %d unspent outputs totaling %s BTC.", len(ctx.UTXOs), total.String())
}

func txDetailReply(intent model.WalletIntent, ctx model.ConversationContext) string {
	for _, tx := range ctx.RecentTxns {
		if tx.TxID == intent.TxID {
			verb := "received"
			if tx.Direction == model.DirectionOutgoing {
				verb = "sent"
			}
			return fmt.Sprintf("Transaction %s: %s %s BTC, %d confirmations.", shortTxID(tx.TxID), verb, tx.Amount.String(), tx.Confirmations)
		}
	}
	if intent.TxID != "" {
		return fmt.Sprintf("I don't see %s in your recent history.", shortTxID(intent.TxID))
	}
	return "Which transaction did you mean? You can say \"the first one\" or \"the last one\" after viewing your history."
}

func greetingReply(mem *model.ConversationMemory) string {
	if mem.Turns == 0 {
		return "Hi! I'm your wallet assistant. You can ask me to send bitcoin, check your balance, or explain how things work."
	}
	return "Hello again! What would you like to do?"
}

func (r *Responder) explain(topic model.ConceptKind) string {
	if topic == "" {
		topic = model.ConceptBitcoin
	}
	if text, ok := r.kb.Explain(topic); ok {
		return text
	}
	return "I can explain fees, transactions, confirmations, addresses, and more. What would you like to know about?"
}

// describeIntent names an intent in plain words for clarifying questions.
func describeIntent(kind model.IntentKind) string {
	switch kind {
	case model.IntentSend:
		return "send bitcoin"
	case model.IntentReceive, model.IntentNewAddress:
		return "get a receiving address"
	case model.IntentBalance:
		return "check your balance"
	case model.IntentHistory:
		return "see your history"
	case model.IntentFeeEstimate:
		return "check network fees"
	case model.IntentBumpFee:
		return "speed up a transaction"
	case model.IntentPrice:
		return "check the bitcoin price"
	case model.IntentConvert:
		return "convert an amount"
	case model.IntentWalletHealth:
		return "check your wallet's health"
	case model.IntentUTXOList:
		return "see your unspent coins"
	case model.IntentNetwork:
		return "check the network"
	case model.IntentExport:
		return "export your history"
	case model.IntentTxDetail:
		return "look at a transaction"
	case model.IntentExplain:
		return "learn about bitcoin"
	case model.IntentHelp:
		return "see what I can do"
	case model.IntentCancel:
		return "cancel"
	case model.IntentConfirm:
		return "confirm"
	default:
		return string(kind)
	}
}

func currencyOf(intent model.WalletIntent) string {
	if intent.Currency != "" {
		return intent.Currency
	}
	return "USD"
}

func shortAddr(addr string) string {
	if len(addr) <= 13 {
		return addr
	}
	return addr[:8] + "…" + addr[len(addr)-4:]
}

func shortTxID(txid string) string {
	if len(txid) <= 12 {
		return txid
	}
	return txid[:8] + "…"
}
