package lexicon

import "github.com/purser-dev/purser/internal/model"

// Category constructors used by the dictionary tables.

func question(k model.QuestionKind) model.WordCategory {
	return model.WordCategory{Kind: model.WordQuestion, Question: k}
}

func pronoun(k model.PronounKind) model.WordCategory {
	return model.WordCategory{Kind: model.WordPronoun, Pronoun: k}
}

func modal(k model.ModalKind) model.WordCategory {
	return model.WordCategory{Kind: model.WordModal, Modal: k}
}

func walletVerb(a model.ActionKind) model.WordCategory {
	return model.WordCategory{Kind: model.WordWalletVerb, Action: a}
}

func pastWalletVerb(a model.ActionKind) model.WordCategory {
	return model.WordCategory{Kind: model.WordWalletVerb, Action: a, Time: model.TimePast}
}

func generalVerb(lemma string) model.WordCategory {
	return model.WordCategory{Kind: model.WordGeneralVerb, Verb: lemma}
}

func comparative(dir model.CompareDirection, surface string) model.WordCategory {
	return model.WordCategory{Kind: model.WordComparative, Compare: dir, Raw: surface}
}

func quantifier(q model.QuantityKind) model.WordCategory {
	return model.WordCategory{Kind: model.WordQuantifier, Quantity: q}
}

func evaluative(j model.JudgmentKind) model.WordCategory {
	return model.WordCategory{Kind: model.WordEvaluative, Judgment: j}
}

func directional(n model.NavDirection) model.WordCategory {
	return model.WordCategory{Kind: model.WordDirectional, Nav: n}
}

func directionalVerb(n model.NavDirection, a model.ActionKind) model.WordCategory {
	return model.WordCategory{Kind: model.WordDirectional, Nav: n, Action: a}
}

func temporal(t model.TimeRef) model.WordCategory {
	return model.WordCategory{Kind: model.WordTemporal, Time: t}
}

func negation() model.WordCategory {
	return model.WordCategory{Kind: model.WordNegation}
}

func affirmation() model.WordCategory {
	return model.WordCategory{Kind: model.WordAffirmation}
}

func noun(c model.ConceptKind) model.WordCategory {
	return model.WordCategory{Kind: model.WordBitcoinNoun, Concept: c}
}

func unit(raw string) model.WordCategory {
	return model.WordCategory{Kind: model.WordBitcoinUnit, Raw: raw}
}

func greeting() model.WordCategory {
	return model.WordCategory{Kind: model.WordGreeting}
}

func emotion(e model.EmotionKind) model.WordCategory {
	return model.WordCategory{Kind: model.WordEmotion, Emotion: e}
}

func noise() model.WordCategory {
	return model.WordCategory{Kind: model.WordArticle}
}

func tagged(raw string) model.WordCategory {
	return model.WordCategory{Kind: model.WordUnknown, Raw: raw}
}

// dictionary is the closed mapping from normalized surface forms (English,
// Arabic and Spanish synonyms plus common misspellings) to categories. It is
// pure data; every key maps to exactly one category.
var dictionary = map[string]model.WordCategory{
	// Question words.
	"what": question(model.QuestionWhat), "whats": question(model.QuestionWhat),
	"wat": question(model.QuestionWhat), "wut": question(model.QuestionWhat),
	"que": question(model.QuestionWhat), "qué": question(model.QuestionWhat),
	"ما": question(model.QuestionWhat), "ماذا": question(model.QuestionWhat),
	"how": question(model.QuestionHow), "cómo": question(model.QuestionHow),
	"como": question(model.QuestionHow), "كيف": question(model.QuestionHow),
	"how_much": question(model.QuestionHowMuch), "cuánto": question(model.QuestionHowMuch),
	"cuanto": question(model.QuestionHowMuch), "كم": question(model.QuestionHowMuch),
	"how_many": question(model.QuestionHowMany), "cuántos": question(model.QuestionHowMany),
	"cuantos": question(model.QuestionHowMany),
	"when":    question(model.QuestionWhen), "cuándo": question(model.QuestionWhen),
	"cuando": question(model.QuestionWhen), "متى": question(model.QuestionWhen),
	"where": question(model.QuestionWhere), "dónde": question(model.QuestionWhere),
	"donde": question(model.QuestionWhere), "أين": question(model.QuestionWhere),
	"اين": question(model.QuestionWhere),
	"why": question(model.QuestionWhy), "لماذا": question(model.QuestionWhy),
	"ليه":   question(model.QuestionWhy),
	"which": question(model.QuestionWhich), "cuál": question(model.QuestionWhich),
	"cual": question(model.QuestionWhich), "أي": question(model.QuestionWhich),
	"who": question(model.QuestionWho), "quién": question(model.QuestionWho),
	"quien": question(model.QuestionWho),

	// Pronouns.
	"i": pronoun(model.PronounFirst), "me": pronoun(model.PronounFirst),
	"yo": pronoun(model.PronounFirst), "أنا": pronoun(model.PronounFirst),
	"انا": pronoun(model.PronounFirst),
	"my":  pronoun(model.PronounPossessive), "mine": pronoun(model.PronounPossessive),
	"mi": pronoun(model.PronounPossessive), "mis": pronoun(model.PronounPossessive),
	"you": pronoun(model.PronounSecond), "tú": pronoun(model.PronounSecond),
	"it": pronoun(model.PronounAnaphoric), "that": pronoun(model.PronounAnaphoric),
	"this": pronoun(model.PronounAnaphoric), "eso": pronoun(model.PronounAnaphoric),
	"esto": pronoun(model.PronounAnaphoric), "هذا": pronoun(model.PronounAnaphoric),
	"ذلك": pronoun(model.PronounAnaphoric), "one": pronoun(model.PronounAnaphoric),

	// Conjunctions, prepositions, articles and polite fillers. All noise for
	// meaning resolution but kept distinct where it matters.
	"and": {Kind: model.WordConjunction}, "or": {Kind: model.WordConjunction},
	"but": {Kind: model.WordConjunction}, "y": {Kind: model.WordConjunction},
	"o": {Kind: model.WordConjunction}, "pero": {Kind: model.WordConjunction},
	"و": {Kind: model.WordConjunction}, "أو": {Kind: model.WordConjunction},
	"to": {Kind: model.WordPreposition}, "from": {Kind: model.WordPreposition},
	"for": {Kind: model.WordPreposition}, "with": {Kind: model.WordPreposition},
	"at": {Kind: model.WordPreposition}, "in": {Kind: model.WordPreposition},
	"on": {Kind: model.WordPreposition}, "of": {Kind: model.WordPreposition},
	"de": {Kind: model.WordPreposition}, "para": {Kind: model.WordPreposition},
	"con": {Kind: model.WordPreposition}, "إلى": {Kind: model.WordPreposition},
	"الى": {Kind: model.WordPreposition}, "من": {Kind: model.WordPreposition},
	"في":  {Kind: model.WordPreposition},
	"the": noise(), "a": noise(), "an": noise(),
	"el": noise(), "la": noise(), "los": noise(), "las": noise(),
	"un": noise(), "una": noise(),
	"please": noise(), "plz": noise(), "pls": noise(), "kindly": noise(),
	"por_favor": noise(), "من_فضلك": noise(), "لو_سمحت": noise(),

	// Modals.
	"can": modal(model.ModalCan), "could": modal(model.ModalCan),
	"puedo": modal(model.ModalCan), "puedes": modal(model.ModalCan),
	"هل":     modal(model.ModalCan),
	"should": modal(model.ModalShould), "shall": modal(model.ModalShould),
	"debería": modal(model.ModalShould), "deberia": modal(model.ModalShould),
	"would": modal(model.ModalWould),
	"must":  modal(model.ModalMust),
	"want":  modal(model.ModalWant), "wanna": modal(model.ModalWant),
	"quiero": modal(model.ModalWant), "أريد": modal(model.ModalWant),
	"اريد": modal(model.ModalWant), "عايز": modal(model.ModalWant),
	"need": modal(model.ModalNeed), "necesito": modal(model.ModalNeed),
	"أحتاج": modal(model.ModalNeed), "احتاج": modal(model.ModalNeed),

	// Wallet verbs.
	"send": walletVerb(model.ActionSend), "pay": walletVerb(model.ActionSend),
	"transfer": walletVerb(model.ActionSend), "sned": walletVerb(model.ActionSend),
	"sedn": walletVerb(model.ActionSend), "snd": walletVerb(model.ActionSend),
	"enviar": walletVerb(model.ActionSend), "envía": walletVerb(model.ActionSend),
	"envia": walletVerb(model.ActionSend), "manda": walletVerb(model.ActionSend),
	"mandar": walletVerb(model.ActionSend), "pagar": walletVerb(model.ActionSend),
	"أرسل": walletVerb(model.ActionSend), "ارسل": walletVerb(model.ActionSend),
	"حول": walletVerb(model.ActionSend), "ابعت": walletVerb(model.ActionSend),
	"sent": pastWalletVerb(model.ActionSend), "paid": pastWalletVerb(model.ActionSend),
	"envié": pastWalletVerb(model.ActionSend), "envie": pastWalletVerb(model.ActionSend),
	"أرسلت": pastWalletVerb(model.ActionSend), "ارسلت": pastWalletVerb(model.ActionSend),
	"receive": walletVerb(model.ActionReceive), "recieve": walletVerb(model.ActionReceive),
	"recibir": walletVerb(model.ActionReceive), "استقبل": walletVerb(model.ActionReceive),
	"استلم":    walletVerb(model.ActionReceive),
	"received": pastWalletVerb(model.ActionReceive), "recibí": pastWalletVerb(model.ActionReceive),
	"recibi": pastWalletVerb(model.ActionReceive), "استلمت": pastWalletVerb(model.ActionReceive),
	"show": walletVerb(model.ActionShow), "display": walletVerb(model.ActionShow),
	"check": walletVerb(model.ActionShow), "view": walletVerb(model.ActionShow),
	"muestra": walletVerb(model.ActionShow), "mostrar": walletVerb(model.ActionShow),
	"enséñame": walletVerb(model.ActionShow), "dame": walletVerb(model.ActionShow),
	"أظهر": walletVerb(model.ActionShow), "اعرض": walletVerb(model.ActionShow),
	"وريني": walletVerb(model.ActionShow),
	"hide":  walletVerb(model.ActionHideBalance), "ocultar": walletVerb(model.ActionHideBalance),
	"oculta": walletVerb(model.ActionHideBalance), "أخف": walletVerb(model.ActionHideBalance),
	"اخفي":   walletVerb(model.ActionHideBalance),
	"cancel": walletVerb(model.ActionCancel), "stop": walletVerb(model.ActionCancel),
	"abort": walletVerb(model.ActionCancel), "nevermind": walletVerb(model.ActionCancel),
	"forget": walletVerb(model.ActionCancel), "cancela": walletVerb(model.ActionCancel),
	"cancelar": walletVerb(model.ActionCancel), "olvídalo": walletVerb(model.ActionCancel),
	"olvidalo": walletVerb(model.ActionCancel), "إلغاء": walletVerb(model.ActionCancel),
	"الغاء": walletVerb(model.ActionCancel), "ألغ": walletVerb(model.ActionCancel),
	"الغي":    walletVerb(model.ActionCancel),
	"confirm": walletVerb(model.ActionConfirm), "confirma": walletVerb(model.ActionConfirm),
	"confirmar": walletVerb(model.ActionConfirm), "أكد": walletVerb(model.ActionConfirm),
	"اكد":    walletVerb(model.ActionConfirm),
	"change": walletVerb(model.ActionModify), "modify": walletVerb(model.ActionModify),
	"edit": walletVerb(model.ActionModify), "adjust": walletVerb(model.ActionModify),
	"cambia": walletVerb(model.ActionModify), "cambiar": walletVerb(model.ActionModify),
	"غير":  walletVerb(model.ActionModify),
	"bump": walletVerb(model.ActionBumpFee), "accelerate": walletVerb(model.ActionBumpFee),
	"speed_up": walletVerb(model.ActionBumpFee), "acelera": walletVerb(model.ActionBumpFee),
	"عجل":     walletVerb(model.ActionBumpFee),
	"refresh": walletVerb(model.ActionRefresh), "sync": walletVerb(model.ActionRefresh),
	"reload": walletVerb(model.ActionRefresh), "actualiza": walletVerb(model.ActionRefresh),
	"actualizar": walletVerb(model.ActionRefresh), "حدث": walletVerb(model.ActionRefresh),
	"export": walletVerb(model.ActionExport), "download": walletVerb(model.ActionExport),
	"descargar": walletVerb(model.ActionExport), "exportar": walletVerb(model.ActionExport),
	"صدر":     walletVerb(model.ActionExport),
	"convert": walletVerb(model.ActionConvert), "convierte": walletVerb(model.ActionConvert),
	"convertir": walletVerb(model.ActionConvert),

	// General verbs, kept as lemmas; the meaning resolver decides what they
	// combine with.
	"make": generalVerb("make"), "making": generalVerb("make"),
	"go": generalVerb("go"), "get": generalVerb("get"),
	"wait": generalVerb("wait"), "set": generalVerb("set"),
	"tell": generalVerb("tell"), "dime": generalVerb("tell"),
	"قل": generalVerb("tell"), "قولي": generalVerb("tell"),
	"see": generalVerb("see"), "look": generalVerb("look"),
	"explain": generalVerb("explain"), "explica": generalVerb("explain"),
	"explícame": generalVerb("explain"), "explicame": generalVerb("explain"),
	"اشرح": generalVerb("explain"), "إشرح": generalVerb("explain"),
	"teach": generalVerb("teach"), "enseña": generalVerb("teach"),
	"علمني": generalVerb("teach"),
	"know":  generalVerb("know"), "sé": generalVerb("know"),
	"أعرف": generalVerb("know"), "اعرف": generalVerb("know"),
	"learn": generalVerb("learn"), "aprender": generalVerb("learn"),
	"do": generalVerb("do"), "does": generalVerb("do"),
	"have": generalVerb("have"), "has": generalVerb("have"),
	"tengo": generalVerb("have"), "عندي": generalVerb("have"),
	"afford": generalVerb("afford"), "alcanza": generalVerb("afford"),
	"is": generalVerb("be"), "are": generalVerb("be"),
	"es": generalVerb("be"), "está": generalVerb("be"),
	"esta": generalVerb("be"),
	"give": generalVerb("give"), "take": generalVerb("take"),
	"use": generalVerb("use"), "keep": generalVerb("keep"),
	"cost": generalVerb("cost"), "cuesta": generalVerb("cost"),
	"يكلف": generalVerb("cost"),

	// Comparatives. Raw keeps the surface family for the up/down price
	// exclusion and the speed-versus-size distinction.
	"faster":  comparative(model.CompareIncrease, "faster"),
	"quicker": comparative(model.CompareIncrease, "faster"),
	"sooner":  comparative(model.CompareIncrease, "faster"),
	"rápida":  comparative(model.CompareIncrease, "faster"),
	"أسرع":    comparative(model.CompareIncrease, "faster"),
	"اسرع":    comparative(model.CompareIncrease, "faster"),
	"slower":  comparative(model.CompareDecrease, "slower"),
	"أبطأ":    comparative(model.CompareDecrease, "slower"),
	"more":    comparative(model.CompareIncrease, "more"),
	"más":     comparative(model.CompareIncrease, "more"),
	"mas":     comparative(model.CompareIncrease, "more"),
	"أكثر":    comparative(model.CompareIncrease, "more"),
	"اكثر":    comparative(model.CompareIncrease, "more"),
	"less":    comparative(model.CompareDecrease, "less"),
	"menos":   comparative(model.CompareDecrease, "less"),
	"أقل":     comparative(model.CompareDecrease, "less"),
	"اقل":     comparative(model.CompareDecrease, "less"),
	"higher":  comparative(model.CompareIncrease, "higher"),
	"lower":   comparative(model.CompareDecrease, "lower"),
	"bigger":  comparative(model.CompareIncrease, "bigger"),
	"smaller": comparative(model.CompareDecrease, "smaller"),
	"cheaper": comparative(model.CompareDecrease, "cheaper"),
	"barata":  comparative(model.CompareDecrease, "cheaper"),
	"أرخص":    comparative(model.CompareDecrease, "cheaper"),
	"up":      comparative(model.CompareIncrease, "up"),
	"down":    comparative(model.CompareDecrease, "down"),

	// Quantifiers.
	"all": quantifier(model.QuantityAll), "everything": quantifier(model.QuantityAll),
	"max": quantifier(model.QuantityAll), "maximum": quantifier(model.QuantityAll),
	"todo": quantifier(model.QuantityAll), "كل": quantifier(model.QuantityAll),
	"الكل": quantifier(model.QuantityAll),
	"half": quantifier(model.QuantityHalf), "mitad": quantifier(model.QuantityHalf),
	"نصف": quantifier(model.QuantityHalf), "نص": quantifier(model.QuantityHalf),
	"double": quantifier(model.QuantityDouble), "doble": quantifier(model.QuantityDouble),
	"ضعف":  quantifier(model.QuantityDouble),
	"some": quantifier(model.QuantitySome), "algo": quantifier(model.QuantitySome),
	"بعض":  quantifier(model.QuantitySome),
	"most": quantifier(model.QuantityMost),

	// Evaluatives.
	"too_much": evaluative(model.JudgmentTooMuch), "demasiado": evaluative(model.JudgmentTooMuch),
	"كثير": evaluative(model.JudgmentTooMuch), "كتير": evaluative(model.JudgmentTooMuch),
	"too_little": evaluative(model.JudgmentTooLittle), "too_small": evaluative(model.JudgmentTooLittle),
	"قليل":   evaluative(model.JudgmentTooLittle),
	"enough": evaluative(model.JudgmentEnough), "suficiente": evaluative(model.JudgmentEnough),
	"كفاية": evaluative(model.JudgmentEnough),
	"good":  evaluative(model.JudgmentGood), "great": evaluative(model.JudgmentGood),
	"fine": evaluative(model.JudgmentGood), "bien": evaluative(model.JudgmentGood),
	"bueno": evaluative(model.JudgmentGood), "جيد": evaluative(model.JudgmentGood),
	"كويس": evaluative(model.JudgmentGood),
	"bad":  evaluative(model.JudgmentBad), "terrible": evaluative(model.JudgmentBad),
	"malo": evaluative(model.JudgmentBad), "سيء": evaluative(model.JudgmentBad),
	"safe": evaluative(model.JudgmentSafe), "secure": evaluative(model.JudgmentSafe),
	"seguro": evaluative(model.JudgmentSafe), "آمن": evaluative(model.JudgmentSafe),
	"امن":   evaluative(model.JudgmentSafe),
	"risky": evaluative(model.JudgmentRisky), "dangerous": evaluative(model.JudgmentRisky),
	"peligroso": evaluative(model.JudgmentRisky), "خطير": evaluative(model.JudgmentRisky),
	"expensive": evaluative(model.JudgmentExpensive), "too_expensive": evaluative(model.JudgmentExpensive),
	"too_high": evaluative(model.JudgmentExpensive), "caro": evaluative(model.JudgmentExpensive),
	"غالي":  evaluative(model.JudgmentExpensive),
	"cheap": evaluative(model.JudgmentCheap), "too_low": evaluative(model.JudgmentCheap),
	"barato": evaluative(model.JudgmentCheap), "رخيص": evaluative(model.JudgmentCheap),

	// Directionals.
	"back": directional(model.NavBack), "previous": directional(model.NavBack),
	"atrás": directional(model.NavBack), "atras": directional(model.NavBack),
	"رجوع": directional(model.NavBack), "ارجع": directional(model.NavBack),
	"again": directional(model.NavAgain), "otra_vez": directional(model.NavAgain),
	"مجددا": directional(model.NavAgain), "تاني": directional(model.NavAgain),
	"send_it_again": directionalVerb(model.NavAgain, model.ActionSend),
	"first":         directional(model.NavFirst), "primero": directional(model.NavFirst),
	"primera": directional(model.NavFirst), "أول": directional(model.NavFirst),
	"اول":  directional(model.NavFirst),
	"next": directional(model.NavNext), "siguiente": directional(model.NavNext),
	"التالي": directional(model.NavNext),
	"last":   directional(model.NavLast), "último": directional(model.NavLast),
	"ultimo": directional(model.NavLast), "última": directional(model.NavLast),
	"ultima": directional(model.NavLast), "آخر": directional(model.NavLast),
	"اخر": directional(model.NavLast),

	// Temporals.
	"yesterday": temporal(model.TimePast), "ayer": temporal(model.TimePast),
	"أمس": temporal(model.TimePast), "امس": temporal(model.TimePast),
	"recently": temporal(model.TimePast), "recién": temporal(model.TimePast),
	"recien": temporal(model.TimePast), "مؤخرا": temporal(model.TimePast),
	"ago": temporal(model.TimePast), "did": temporal(model.TimePast),
	"today": temporal(model.TimePresent), "now": temporal(model.TimePresent),
	"ahora": temporal(model.TimePresent), "الآن": temporal(model.TimePresent),
	"الان":     temporal(model.TimePresent),
	"tomorrow": temporal(model.TimeFuture), "mañana": temporal(model.TimeFuture),
	"غدا": temporal(model.TimeFuture),

	// Negation and affirmation.
	"no": negation(), "not": negation(), "dont": negation(), "don't": negation(),
	"never": negation(), "nothing": negation(), "none": negation(),
	"nunca": negation(), "jamás": negation(), "tampoco": negation(),
	"لا": negation(), "مش": negation(), "ليس": negation(), "لن": negation(),
	"yes": affirmation(), "yeah": affirmation(), "yep": affirmation(),
	"yup": affirmation(), "sure": affirmation(), "ok": affirmation(),
	"okay": affirmation(), "correct": affirmation(), "right": affirmation(),
	"exactly": affirmation(), "definitely": affirmation(),
	"go_ahead": affirmation(), "do_it": affirmation(),
	"si": affirmation(), "sí": affirmation(), "claro": affirmation(),
	"dale": affirmation(), "vale": affirmation(),
	"نعم": affirmation(), "ايوه": affirmation(), "أجل": affirmation(),
	"اكيد": affirmation(), "تمام": affirmation(),

	// Bitcoin concept nouns.
	"fee": noun(model.ConceptFee), "fees": noun(model.ConceptFee),
	"comisión": noun(model.ConceptFee), "comision": noun(model.ConceptFee),
	"tarifa": noun(model.ConceptFee), "رسوم": noun(model.ConceptFee),
	"العمولة":     noun(model.ConceptFee),
	"transaction": noun(model.ConceptTransaction), "transactions": noun(model.ConceptTransaction),
	"tx": noun(model.ConceptTransaction), "txn": noun(model.ConceptTransaction),
	"transacción": noun(model.ConceptTransaction), "transaccion": noun(model.ConceptTransaction),
	"transacciones": noun(model.ConceptTransaction), "معاملة": noun(model.ConceptTransaction),
	"معاملات": noun(model.ConceptTransaction), "تحويل": noun(model.ConceptTransaction),
	"history": noun(model.ConceptHistory), "historial": noun(model.ConceptHistory),
	"historia": noun(model.ConceptHistory), "سجل": noun(model.ConceptHistory),
	"تاريخ":   noun(model.ConceptHistory),
	"balance": noun(model.ConceptBalance), "balanse": noun(model.ConceptBalance),
	"saldo": noun(model.ConceptBalance), "رصيد": noun(model.ConceptBalance),
	"رصيدي": noun(model.ConceptBalance), "funds": noun(model.ConceptBalance),
	"money": noun(model.ConceptBalance), "dinero": noun(model.ConceptBalance),
	"فلوس":  noun(model.ConceptBalance),
	"price": noun(model.ConceptPrice), "prices": noun(model.ConceptPrice),
	"worth": noun(model.ConceptPrice), "precio": noun(model.ConceptPrice),
	"سعر": noun(model.ConceptPrice), "السعر": noun(model.ConceptPrice),
	"rate":    noun(model.ConceptPrice),
	"address": noun(model.ConceptAddress), "adress": noun(model.ConceptAddress),
	"addr": noun(model.ConceptAddress), "dirección": noun(model.ConceptAddress),
	"direccion": noun(model.ConceptAddress), "عنوان": noun(model.ConceptAddress),
	"العنوان": noun(model.ConceptAddress),
	"utxo":    noun(model.ConceptUTXO), "utxos": noun(model.ConceptUTXO),
	"coins":   noun(model.ConceptUTXO),
	"network": noun(model.ConceptNetwork), "mempool": noun(model.ConceptNetwork),
	"red": noun(model.ConceptNetwork), "شبكة": noun(model.ConceptNetwork),
	"الشبكة": noun(model.ConceptNetwork),
	"wallet": noun(model.ConceptWallet), "walet": noun(model.ConceptWallet),
	"monedero": noun(model.ConceptWallet), "cartera": noun(model.ConceptWallet),
	"محفظة": noun(model.ConceptWallet), "محفظتي": noun(model.ConceptWallet),
	"confirmation": noun(model.ConceptConfirmation), "confirmations": noun(model.ConceptConfirmation),
	"confirmaciones": noun(model.ConceptConfirmation), "تأكيد": noun(model.ConceptConfirmation),
	"privacy": noun(model.ConceptSecurity), "security": noun(model.ConceptSecurity),
	"خصوصية": noun(model.ConceptSecurity),

	// Bitcoin units. Raw distinguishes the base unit from satoshis.
	"bitcoin": unit("btc"), "bitcoins": unit("btc"), "btc": unit("btc"),
	"bitcion": unit("btc"), "بيتكوين": unit("btc"), "بتكوين": unit("btc"),
	"sat": unit("sats"), "sats": unit("sats"), "satoshi": unit("sats"),
	"satoshis": unit("sats"), "ساتوشي": unit("sats"),

	// Greetings.
	"hi": greeting(), "hello": greeting(), "hey": greeting(), "helo": greeting(),
	"howdy": greeting(), "sup": greeting(),
	"hola": greeting(), "buenas": greeting(), "saludos": greeting(),
	"مرحبا": greeting(), "اهلا": greeting(), "أهلا": greeting(), "هاي": greeting(),
	"السلام":       greeting(),
	"good_morning": greeting(), "good_evening": greeting(), "good_afternoon": greeting(),
	"buenos_dias": greeting(), "buenas_tardes": greeting(), "buenas_noches": greeting(),
	"صباح_الخير": greeting(), "مساء_الخير": greeting(),
	"bye": greeting(), "goodbye": greeting(), "adiós": greeting(), "adios": greeting(),

	// Emotion words.
	"thanks": emotion(model.EmotionGrateful), "thank_you": emotion(model.EmotionGrateful),
	"thx": emotion(model.EmotionGrateful), "ty": emotion(model.EmotionGrateful),
	"gracias": emotion(model.EmotionGrateful), "muchas_gracias": emotion(model.EmotionGrateful),
	"شكرا": emotion(model.EmotionGrateful), "مشكور": emotion(model.EmotionGrateful),
	"awesome": emotion(model.EmotionExcited), "amazing": emotion(model.EmotionExcited),
	"wow": emotion(model.EmotionExcited), "genial": emotion(model.EmotionExcited),
	"رائع": emotion(model.EmotionExcited),
	"ugh":  emotion(model.EmotionFrustrated), "argh": emotion(model.EmotionFrustrated),
	"frustrating": emotion(model.EmotionFrustrated), "frustrated": emotion(model.EmotionFrustrated),
	"damn": emotion(model.EmotionFrustrated), "wtf": emotion(model.EmotionFrustrated),
	"confused": emotion(model.EmotionConfused), "dont_understand": emotion(model.EmotionConfused),
	"no_entiendo": emotion(model.EmotionConfused), "مش_فاهم": emotion(model.EmotionConfused),
	"worried": emotion(model.EmotionWorried), "scared": emotion(model.EmotionWorried),
	"nervous": emotion(model.EmotionWorried), "preocupado": emotion(model.EmotionWorried),
	"قلق":   emotion(model.EmotionWorried),
	"happy": emotion(model.EmotionHappy), "feliz": emotion(model.EmotionHappy),
	"سعيد": emotion(model.EmotionHappy),

	// Fee-level literals and other sub-tagged tokens surface as Unknown with
	// an encoded tag; downstream rules match on the tag.
	"fast": tagged("feelevel:fast"), "quick": tagged("feelevel:fast"),
	"urgent": tagged("feelevel:fast"), "priority": tagged("feelevel:fast"),
	"very_fast": tagged("feelevel:fast"), "rápido": tagged("feelevel:fast"),
	"rapido": tagged("feelevel:fast"), "سريع": tagged("feelevel:fast"),
	"slow": tagged("feelevel:slow"), "economy": tagged("feelevel:slow"),
	"very_slow": tagged("feelevel:slow"), "lento": tagged("feelevel:slow"),
	"بطيء":   tagged("feelevel:slow"),
	"medium": tagged("feelevel:medium"), "normal": tagged("feelevel:medium"),
	"standard": tagged("feelevel:medium"), "average": tagged("feelevel:medium"),
	"medio": tagged("feelevel:medium"), "متوسط": tagged("feelevel:medium"),
	"change_amount": tagged("modify:amount"), "change_address": tagged("modify:address"),
	"change_fee": tagged("modify:fee"), "change_speed": tagged("modify:fee"),

	// Fiat currency words.
	"dollar": tagged("currency:usd"), "dollars": tagged("currency:usd"),
	"usd": tagged("currency:usd"), "dólares": tagged("currency:usd"),
	"dolares": tagged("currency:usd"), "دولار": tagged("currency:usd"),
	"euro": tagged("currency:eur"), "euros": tagged("currency:eur"),
	"eur": tagged("currency:eur"), "يورو": tagged("currency:eur"),
	"pound": tagged("currency:gbp"), "pounds": tagged("currency:gbp"),
	"gbp":  tagged("currency:gbp"),
	"peso": tagged("currency:mxn"), "pesos": tagged("currency:mxn"),
	"riyal": tagged("currency:sar"), "ريال": tagged("currency:sar"),
}
