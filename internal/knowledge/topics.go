// Package knowledge holds the static educational answers behind "explain"
// and "teach me about" requests. Everything is compiled in; nothing is
// fetched or generated.
package knowledge

import (
	"github.com/purser-dev/purser/internal/model"
)

// Language selects which compiled-in answer set to use.
type Language string

// Supported answer languages.
const (
	LangEnglish Language = "en"
	LangSpanish Language = "es"
	LangArabic  Language = "ar"
)

// Base is a read-only lookup from concept to a short explanation.
type Base struct {
	lang Language
}

// NewBase returns a knowledge base answering in the given language,
// defaulting to English for anything unrecognized.
func NewBase(lang Language) *Base {
	switch lang {
	case LangEnglish, LangSpanish, LangArabic:
		return &Base{lang: lang}
	default:
		return &Base{lang: LangEnglish}
	}
}

// Explain returns the explanation for a concept and whether one exists.
func (b *Base) Explain(topic model.ConceptKind) (string, bool) {
	set, ok := answers[b.lang]
	if !ok {
		set = answers[LangEnglish]
	}
	text, ok := set[topic]
	if !ok {
		// Fall back to English before giving up.
		text, ok = answers[LangEnglish][topic]
	}
	return text, ok
}

// Topics lists every concept the base can explain, for help output.
func (b *Base) Topics() []model.ConceptKind {
	out := make([]model.ConceptKind, 0, len(answers[LangEnglish]))
	for topic := range answers[LangEnglish] {
		out = append(out, topic)
	}
	return out
}

var answers = map[Language]map[model.ConceptKind]string{
	LangEnglish: {
		model.ConceptFee:          "Network fees pay miners to include your transaction in a block. Fees are measured in satoshis per virtual byte; a higher rate usually means faster confirmation. You choose the rate, not the network.",
		model.ConceptTransaction:  "A transaction moves bitcoin from addresses you control to a recipient. It is signed on this device, broadcast to the network, and becomes harder to reverse with each confirmation.",
		model.ConceptHistory:      "Your history is the list of transactions your wallet has sent and received. Each entry shows the amount, the direction, and how many confirmations it has accumulated.",
		model.ConceptBalance:      "Your balance is the sum of unspent outputs your keys control. Funds from very recent transactions may need a confirmation before they are spendable.",
		model.ConceptPrice:        "The price is the current market exchange rate between bitcoin and a fiat currency. It changes constantly and only affects fiat conversions, never your bitcoin amount.",
		model.ConceptAddress:      "An address is where bitcoin is received. Modern addresses start with bc1; older ones start with 1 or 3. Using a fresh address for each payment improves privacy.",
		model.ConceptUTXO:         "Your wallet holds coins as discrete unspent transaction outputs. Spending selects some of them, sends the payment, and returns change to you as a new output.",
		model.ConceptNetwork:      "The Bitcoin network is thousands of independent nodes relaying and verifying transactions. No single party controls it, which is why confirmations take time.",
		model.ConceptWallet:       "This wallet keeps your keys on this device and never sends them anywhere. Losing the device without a backup means losing the funds, so keep your recovery phrase safe.",
		model.ConceptConfirmation: "A confirmation means a mined block includes your transaction. Each additional block buries it deeper; most recipients consider six confirmations final.",
		model.ConceptSecurity:     "Sending bitcoin is irreversible. Check the address and amount before confirming, never share your recovery phrase, and be suspicious of anyone rushing you.",
		model.ConceptBitcoin:      "Bitcoin is a digital currency with a fixed supply of 21 million coins, secured by a global network instead of a bank. You hold it through cryptographic keys.",
	},
	LangSpanish: {
		model.ConceptFee:          "Las comisiones de red pagan a los mineros por incluir tu transacción en un bloque. Se miden en satoshis por byte virtual; una tarifa más alta normalmente confirma antes.",
		model.ConceptTransaction:  "Una transacción mueve bitcoin desde tus direcciones hacia un destinatario. Se firma en este dispositivo y se vuelve más difícil de revertir con cada confirmación.",
		model.ConceptHistory:      "Tu historial es la lista de transacciones enviadas y recibidas, con el monto, la dirección del movimiento y las confirmaciones acumuladas.",
		model.ConceptBalance:      "Tu saldo es la suma de las salidas no gastadas que controlan tus claves. Los fondos muy recientes pueden necesitar una confirmación antes de poder gastarse.",
		model.ConceptPrice:        "El precio es el tipo de cambio actual entre bitcoin y una moneda fiat. Cambia constantemente y solo afecta las conversiones, nunca tu cantidad de bitcoin.",
		model.ConceptAddress:      "Una dirección es donde se recibe bitcoin. Las modernas empiezan con bc1; las antiguas con 1 o 3. Usar una dirección nueva por pago mejora la privacidad.",
		model.ConceptUTXO:         "Tu billetera guarda las monedas como salidas no gastadas. Al gastar se seleccionan algunas, se envía el pago y el cambio vuelve a ti como una salida nueva.",
		model.ConceptNetwork:      "La red de Bitcoin son miles de nodos independientes que verifican transacciones. Nadie la controla, por eso las confirmaciones toman tiempo.",
		model.ConceptWallet:       "Esta billetera guarda tus claves en este dispositivo y nunca las envía a ningún lado. Sin respaldo, perder el dispositivo es perder los fondos.",
		model.ConceptConfirmation: "Una confirmación significa que un bloque minado incluye tu transacción. La mayoría considera definitivas seis confirmaciones.",
		model.ConceptSecurity:     "Enviar bitcoin es irreversible. Revisa la dirección y el monto antes de confirmar y nunca compartas tu frase de recuperación.",
		model.ConceptBitcoin:      "Bitcoin es una moneda digital con una oferta fija de 21 millones, asegurada por una red global en lugar de un banco.",
	},
	LangArabic: {
		model.ConceptFee:          "رسوم الشبكة تدفع للمعدّنين مقابل إدراج معاملتك في كتلة. تُقاس بالساتوشي لكل بايت افتراضي، والرسوم الأعلى تعني عادة تأكيدًا أسرع.",
		model.ConceptTransaction:  "المعاملة تنقل البيتكوين من عناوينك إلى المستلم. تُوقَّع على هذا الجهاز وتصبح أصعب في التراجع مع كل تأكيد.",
		model.ConceptHistory:      "سجلك هو قائمة المعاملات المرسلة والمستلمة، مع المبلغ والاتجاه وعدد التأكيدات.",
		model.ConceptBalance:      "رصيدك هو مجموع المخرجات غير المنفقة التي تتحكم بها مفاتيحك. الأموال الحديثة جدًا قد تحتاج تأكيدًا قبل إنفاقها.",
		model.ConceptPrice:        "السعر هو سعر الصرف الحالي بين البيتكوين والعملة الورقية. يتغير باستمرار ولا يؤثر إلا على التحويلات، لا على كمية البيتكوين لديك.",
		model.ConceptAddress:      "العنوان هو مكان استلام البيتكوين. العناوين الحديثة تبدأ بـ bc1 والقديمة بـ 1 أو 3. استخدام عنوان جديد لكل دفعة يحسّن الخصوصية.",
		model.ConceptUTXO:         "تحتفظ محفظتك بالعملات كمخرجات غير منفقة. عند الإنفاق تُختار بعضها ويعود الباقي إليك كمخرج جديد.",
		model.ConceptNetwork:      "شبكة البيتكوين آلاف العقد المستقلة التي تتحقق من المعاملات. لا يتحكم بها أحد، ولهذا تستغرق التأكيدات وقتًا.",
		model.ConceptWallet:       "هذه المحفظة تحفظ مفاتيحك على هذا الجهاز ولا ترسلها أبدًا. فقدان الجهاز بلا نسخة احتياطية يعني فقدان الأموال.",
		model.ConceptConfirmation: "التأكيد يعني أن كتلة معدَّنة تضم معاملتك. يعتبر معظم المستلمين ستة تأكيدات نهائية.",
		model.ConceptSecurity:     "إرسال البيتكوين لا رجعة فيه. تحقق من العنوان والمبلغ قبل التأكيد ولا تشارك عبارة الاسترداد أبدًا.",
		model.ConceptBitcoin:      "البيتكوين عملة رقمية بمعروض ثابت قدره 21 مليونًا، تؤمّنها شبكة عالمية بدلًا من بنك.",
	},
}
