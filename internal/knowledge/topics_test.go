package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purser-dev/purser/internal/model"
)

func TestExplain_AllTopicsInAllLanguages(t *testing.T) {
	for _, lang := range []Language{LangEnglish, LangSpanish, LangArabic} {
		b := NewBase(lang)
		for _, topic := range b.Topics() {
			text, ok := b.Explain(topic)
			assert.True(t, ok, "lang %s topic %s", lang, topic)
			assert.NotEmpty(t, text, "lang %s topic %s", lang, topic)
		}
	}
}

func TestExplain_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	b := NewBase(Language("fr"))
	text, ok := b.Explain(model.ConceptFee)
	require.True(t, ok)

	en, _ := NewBase(LangEnglish).Explain(model.ConceptFee)
	assert.Equal(t, en, text)
}

func TestExplain_UnknownTopic(t *testing.T) {
	b := NewBase(LangEnglish)
	_, ok := b.Explain(model.ConceptKind("quantum"))
	assert.False(t, ok)
}

func TestExplain_LanguagesDiffer(t *testing.T) {
	en, _ := NewBase(LangEnglish).Explain(model.ConceptBalance)
	es, _ := NewBase(LangSpanish).Explain(model.ConceptBalance)
	assert.NotEqual(t, en, es)
}
