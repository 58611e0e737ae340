package classify

import (
	"regexp"

	"github.com/purser-dev/purser/internal/model"
)

// keywordPattern is one curated regex voting for an intent at the keyword
// baseline weight.
type keywordPattern struct {
	re     *regexp.Regexp
	intent model.IntentKind
}

func kw(intent model.IntentKind, pattern string) keywordPattern {
	return keywordPattern{re: regexp.MustCompile(`(?i)` + pattern), intent: intent}
}

// keywordPatterns is the per-intent keyword table across English, Spanish
// and Arabic. Patterns vote at the keyword baseline weight; several may hit
// for the same intent and get merged downstream.
var keywordPatterns = []keywordPattern{
	// Send.
	kw(model.IntentSend, `\b(send|pay|transfer|sned|sedn)\b`),
	kw(model.IntentSend, `\b(envia(r)?|env[ií]a|manda(r)?|pagar?)\b`),
	kw(model.IntentSend, `(أرسل|ارسل|حول|ابعت)`),
	kw(model.IntentSend, `\bsend\s+(it|some|btc|bitcoin|sats)\b`),

	// Receive / new address.
	kw(model.IntentReceive, `\b(receive|recieve|deposit|recibir)\b`),
	kw(model.IntentReceive, `(استقبل|استلم)`),
	kw(model.IntentNewAddress, `\b(new|fresh|another)\s+(address|adress|direcci[oó]n)\b`),
	kw(model.IntentNewAddress, `\b(nueva\s+direcci[oó]n)\b`),
	kw(model.IntentNewAddress, `(عنوان\s+جديد)`),

	// Balance.
	kw(model.IntentBalance, `\b(balance|balanse|saldo|funds)\b`),
	kw(model.IntentBalance, `(رصيد|فلوس)`),
	kw(model.IntentBalance, `\bhow\s+much.*(have|own|got)\b`),
	kw(model.IntentBalance, `\bcu[aá]nto\s+tengo\b`),
	kw(model.IntentBalance, `(كم\s+عندي)`),

	// History.
	kw(model.IntentHistory, `\b(history|historial|transactions|transacciones)\b`),
	kw(model.IntentHistory, `(سجل|معاملات)`),
	kw(model.IntentHistory, `\b(last|past|recent)\s+\d+\b`),
	kw(model.IntentHistory, `\bdid\s+i\s+(send|receive|pay)\b`),

	// Fees.
	kw(model.IntentFeeEstimate, `\b(fee|fees|comisi[oó]n|tarifa)\b`),
	kw(model.IntentFeeEstimate, `(رسوم|العمولة)`),
	kw(model.IntentFeeEstimate, `\bhow\s+much.*cost\b`),
	kw(model.IntentBumpFee, `\b(bump|speed\s*up|accelerate|stuck)\b`),
	kw(model.IntentBumpFee, `\b(acelera|atascada?)\b`),
	kw(model.IntentBumpFee, `(عجل|علقت)`),

	// Price / conversion.
	kw(model.IntentPrice, `\b(price|precio|worth|rate)\b`),
	kw(model.IntentPrice, `(سعر|السعر)`),
	kw(model.IntentPrice, `\bbitcoin\s+(up|down)\b`),
	kw(model.IntentConvert, `\b(convert|convierte|in\s+(usd|dollars|euros?))\b`),
	kw(model.IntentConvert, `\bhow\s+much\s+is\s+[\d.]+\s*(btc|sats?)\b`),

	// Wallet health / utxos / network.
	kw(model.IntentWalletHealth, `\bwallet\s+(health|status|ok|doing)\b`),
	kw(model.IntentWalletHealth, `\b(salud|estado)\s+de\s+la\s+cartera\b`),
	kw(model.IntentUTXOList, `\b(utxos?|coins|unspent)\b`),
	kw(model.IntentNetwork, `\b(network|mempool|congestion|red)\b`),
	kw(model.IntentNetwork, `(الشبكة|شبكة)`),

	// Export, privacy, refresh.
	kw(model.IntentExport, `\b(export|download|csv|descargar|exportar)\b`),
	kw(model.IntentHideBalance, `\b(hide|oculta(r)?)\b.*\b(balance|saldo)\b`),
	kw(model.IntentHideBalance, `(اخفي\s*(الرصيد)?)`),
	kw(model.IntentShowBalance, `\b(show|unhide|muestra)\b.*\b(balance|saldo)\b`),
	kw(model.IntentRefresh, `\b(refresh|sync|reload|update|actualiza(r)?)\b`),
	kw(model.IntentRefresh, `(حدث)`),

	// Transaction detail.
	kw(model.IntentTxDetail, `\b(details?|detalles?)\b.*\b(transaction|tx|transacci[oó]n)\b`),
	kw(model.IntentTxDetail, `\btransaction\s+[0-9a-f]{8,}\b`),

	// Confirm / cancel.
	kw(model.IntentConfirm, `^\s*(yes|yeah|yep|ok(ay)?|sure|confirm|s[ií]|dale|claro|نعم|اكيد|تمام)\s*[.!]*\s*$`),
	kw(model.IntentConfirm, `\b(go\s+ahead|do\s+it|confirmar?)\b`),
	kw(model.IntentCancel, `\b(cancel|stop|abort|nevermind|never\s+mind|forget\s+it)\b`),
	kw(model.IntentCancel, `\b(cancela(r)?|olv[ií]dalo)\b`),
	kw(model.IntentCancel, `(إلغاء|الغاء|الغي|خلاص)`),

	// Greeting / help / meta.
	kw(model.IntentGreeting, `^\s*(hi|hey|hello|hola|buenas|مرحبا|اهلا|أهلا)\b`),
	kw(model.IntentHelp, `\b(help|ayuda|مساعدة|ساعدني)\b`),
	kw(model.IntentHelp, `\bwhat\s+can\s+you\s+do\b`),
	kw(model.IntentAbout, `\b(who|what)\s+are\s+you\b`),
	kw(model.IntentAbout, `\babout\s+(you|this\s+app)\b`),
	kw(model.IntentSettings, `\b(settings?|options?|configuraci[oó]n|الاعدادات)\b`),

	// Explain.
	kw(model.IntentExplain, `\b(explain|teach|what\s+is|what's|que\s+es|qu[eé]\s+es)\b`),
	kw(model.IntentExplain, `(اشرح|علمني|ما\s+هو)`),
}

// semanticPattern maps colloquial verb-noun pairings that the keyword table
// does not cover; these vote at the lower semantic weight.
var semanticPatterns = []keywordPattern{
	kw(model.IntentSend, `\b(move|shoot|throw|wire)\b.*\b(coins?|money|funds|btc|sats|bitcoin)\b`),
	kw(model.IntentSend, `\bmandale\b`),
	kw(model.IntentBalance, `\bwhat\s+am\s+i\s+worth\b`),
	kw(model.IntentBalance, `\bhow\s+(rich|broke)\s+am\s+i\b`),
	kw(model.IntentBalance, `\bstack\b`),
	kw(model.IntentReceive, `\b(top\s+up|load|fund)\b.*\b(wallet|cartera)\b`),
	kw(model.IntentNewAddress, `\bhook\s+me\s+up\b.*\baddress\b`),
	kw(model.IntentPrice, `\b(mooning|dumping|pumping|crashed?)\b`),
	kw(model.IntentHistory, `\bwhere\s+did\s+my\s+(money|btc|sats)\s+go\b`),
	kw(model.IntentFeeEstimate, `\bhow\s+much\s+(to|for)\s+send\b`),
	kw(model.IntentBumpFee, `\b(taking\s+forever|so\s+slow|still\s+pending)\b`),
	kw(model.IntentCancel, `\bchanged\s+my\s+mind\b`),
}

// socialPattern detects thanks, complaints and emoji-only chatter.
var socialPatterns = []keywordPattern{
	kw(model.IntentGreeting, `\b(thanks|thank\s+you|thx|gracias|شكرا|مشكور)\b`),
	kw(model.IntentGreeting, `^[\s\p{So}\p{Sk}!.]+$`),
	kw(model.IntentHelp, `\b(this\s+sucks|useless|not\s+working|no\s+funciona)\b`),
	kw(model.IntentAbout, `\b(love\s+this|great\s+app|me\s+encanta)\b`),
}
