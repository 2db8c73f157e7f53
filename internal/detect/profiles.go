package detect

import "unicode"

// Candidate languages per script family. The first Latin entry must be "en";
// it receives the ASCII fallback.
var (
	latinFamily    = []string{"en", "fr", "de", "es", "it"}
	cyrillicFamily = []string{"uk", "ru"}
)

// letterMarkers maps lower-case letters that occur in exactly one candidate
// language of their family.
var letterMarkers = map[rune]string{
	// Ukrainian
	'і': "uk", 'ї': "uk", 'є': "uk", 'ґ': "uk",
	// Russian
	'ы': "ru", 'э': "ru", 'ъ': "ru", 'ё': "ru",
	// French
	'è': "fr", 'ê': "fr", 'à': "fr", 'ç': "fr", 'œ': "fr", 'ù': "fr", 'û': "fr", 'â': "fr", 'ë': "fr", 'î': "fr",
	// German
	'ä': "de", 'ö': "de", 'ü': "de", 'ß': "de",
	// Spanish
	'ñ': "es", 'á': "es", 'í': "es", 'ó': "es", 'ú': "es", '¿': "es", '¡': "es",
	// Italian
	'ò': "it", 'ì': "it",
}

// functionWords maps a lower-case function word to every candidate language
// that uses it. Words shared across a family add to each of its languages and
// therefore never separate them.
var functionWords = buildFunctionWords(map[string][]string{
	"en": {
		"the", "and", "of", "to", "is", "are", "in", "that", "it", "was",
		"for", "with", "as", "on", "be", "this", "not", "by", "at", "from",
		"have", "has", "too", "they", "you", "we", "or", "but", "an", "which",
		"were", "been", "their", "there", "what", "will", "would", "can",
	},
	"fr": {
		"le", "la", "les", "des", "et", "est", "une", "un", "du", "que",
		"qui", "dans", "pour", "pas", "sur", "au", "aux", "ce", "cette",
		"avec", "sont", "il", "elle", "nous", "vous", "ne", "se", "mais",
	},
	"de": {
		"der", "die", "das", "und", "ist", "nicht", "ein", "eine", "mit",
		"sich", "auf", "für", "den", "dem", "von", "zu", "auch", "es",
		"sind", "wir", "ich", "sie", "wird", "oder", "aber",
	},
	"es": {
		"el", "los", "las", "del", "y", "por", "una", "con", "para", "como",
		"pero", "muy", "esta", "este", "son", "al", "lo", "su", "más",
	},
	"it": {
		"il", "gli", "della", "di", "e", "è", "non", "per", "una", "sono",
		"con", "del", "questo", "nel", "alla", "anche", "che", "ma",
	},
	"uk": {
		"і", "й", "та", "що", "це", "не", "на", "як", "від", "до", "для",
		"його", "її", "був", "була", "було", "є", "або", "але", "ще", "вже",
		"також", "який", "яка", "які", "між", "через", "тому", "він",
		"вона", "вони", "у", "в", "з",
	},
	"ru": {
		"и", "что", "это", "не", "на", "как", "от", "до", "для", "его",
		"ее", "её", "был", "была", "было", "есть", "или", "но", "еще",
		"уже", "также", "который", "которая", "которые", "между", "через",
		"поэтому", "он", "она", "они", "у", "в", "с",
	},
})

func buildFunctionWords(byLang map[string][]string) map[string][]string {
	index := make(map[string][]string)
	for lang, words := range byLang {
		for _, w := range words {
			index[w] = append(index[w], lang)
		}
	}
	return index
}

// scriptLanguage maps a letter of a single-language script to that language.
// It returns "" for scripts the detector does not track.
func scriptLanguage(r rune) string {
	switch {
	case unicode.Is(unicode.Greek, r):
		return "el"
	case unicode.Is(unicode.Arabic, r):
		return "ar"
	case unicode.Is(unicode.Hebrew, r):
		return "he"
	case unicode.Is(unicode.Hiragana, r), unicode.Is(unicode.Katakana, r):
		return "ja"
	case unicode.Is(unicode.Hangul, r):
		return "ko"
	case unicode.Is(unicode.Han, r):
		return "zh"
	case unicode.Is(unicode.Devanagari, r):
		return "hi"
	case unicode.Is(unicode.Georgian, r):
		return "ka"
	case unicode.Is(unicode.Armenian, r):
		return "hy"
	case unicode.Is(unicode.Thai, r):
		return "th"
	}
	return ""
}
