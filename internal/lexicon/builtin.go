package lexicon

// englishStopWords is the English list of the stop-words package used by the
// original service.
var englishStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "aren't", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can't",
	"cannot", "could", "couldn't", "did", "didn't", "do", "does", "doesn't",
	"doing", "don't", "down", "during", "each", "few", "for", "from",
	"further", "had", "hadn't", "has", "hasn't", "have", "haven't", "having",
	"he", "he'd", "he'll", "he's", "her", "here", "here's", "hers", "herself",
	"him", "himself", "his", "how", "how's", "i", "i'd", "i'll", "i'm",
	"i've", "if", "in", "into", "is", "isn't", "it", "it's", "its", "itself",
	"let's", "me", "more", "most", "mustn't", "my", "myself", "no", "nor",
	"not", "of", "off", "on", "once", "only", "or", "other", "ought", "our",
	"ours", "ourselves", "out", "over", "own", "same", "shan't", "she",
	"she'd", "she'll", "she's", "should", "shouldn't", "so", "some", "such",
	"than", "that", "that's", "the", "their", "theirs", "them", "themselves",
	"then", "there", "there's", "these", "they", "they'd", "they'll",
	"they're", "they've", "this", "those", "through", "to", "too", "under",
	"until", "up", "very", "was", "wasn't", "we", "we'd", "we'll", "we're",
	"we've", "were", "weren't", "what", "what's", "when", "when's", "where",
	"where's", "which", "while", "who", "who's", "whom", "why", "why's",
	"with", "won't", "would", "wouldn't", "you", "you'd", "you'll", "you're",
	"you've", "your", "yours", "yourself", "yourselves",
}

var ukrainianStopWords = []string{
	"а", "або", "авжеж", "адже", "але", "аж", "б", "без", "би", "біля",
	"більш", "бо", "був", "була", "були", "було", "бути", "в", "вам", "вас",
	"ваш", "ваша", "ваше", "ваші", "вже", "вздовж", "ви", "від", "він",
	"вниз", "внизу", "вона", "вони", "воно", "все", "всередині", "всі",
	"всіх", "вся", "да", "давай", "давати", "де", "дещо", "для", "до", "є",
	"ж", "же", "з", "за", "завжди", "замість", "зі", "і", "із", "інших", "й",
	"його", "її", "їй", "їм", "їх", "к", "коли", "ледве", "майже", "мене",
	"мені", "ми", "мій", "мною", "мов", "моя", "на", "навіть", "навколо",
	"нам", "нас", "наш", "не", "него", "неї", "нею", "ні", "ним", "них",
	"ну", "о", "об", "от", "отже", "отож", "по", "поза", "при", "про", "під",
	"сам", "сама", "свій", "себе", "собі", "та", "так", "такий", "також",
	"там", "те", "теж", "ти", "тим", "то", "тобто", "тож", "той", "тому",
	"тощо", "ту", "тут", "у", "хоча", "це", "цей", "ці", "цього", "цю", "ця",
	"чи", "чого", "щ", "що", "щоб", "я", "як", "який", "яка", "яке", "які",
	"якої", "якщо",
}

// punctuationMarks holds ASCII punctuation plus common typographic marks.
var punctuationMarks = []string{
	"!", "\"", "#", "$", "%", "&", "'", "(", ")", "*", "+", ",", "-", ".",
	"/", ":", ";", "<", "=", ">", "?", "@", "[", "\\", "]", "^", "_", "`",
	"{", "|", "}", "~",
	"«", "»", "„", "“", "”", "‘", "’", "—", "–", "…",
}
