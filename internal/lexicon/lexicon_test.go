package lexicon

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/localrivet/textsummary/internal/language"
)

var errLoad = errors.New("load failed")

// MockSource implements WordSource for testing
type MockSource struct {
	Words       map[language.Code][]string
	ReturnError bool
}

func (m *MockSource) Load(lang language.Code) ([]string, error) {
	if m.ReturnError {
		return nil, errLoad
	}
	return m.Words[lang], nil
}

func TestBuiltinStopWords(t *testing.T) {
	lex := Builtin()

	tests := []struct {
		name string
		lang language.Code
		word string
		want bool
	}{
		{name: "english are", lang: language.En, word: "are", want: true},
		{name: "english and", lang: language.En, word: "and", want: true},
		{name: "english too", lang: language.En, word: "too", want: true},
		{name: "english contraction", lang: language.En, word: "don't", want: true},
		{name: "english content word", lang: language.En, word: "cats", want: false},
		{name: "ukrainian i", lang: language.Uk, word: "і", want: true},
		{name: "ukrainian shcho", lang: language.Uk, word: "що", want: true},
		{name: "ukrainian content word", lang: language.Uk, word: "місто", want: false},
		{name: "unknown language", lang: language.Unknown, word: "the", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, got := lex.StopWords(tc.lang)[tc.word]
			if got != tc.want {
				t.Errorf("StopWords(%v)[%q] = %v, want %v", tc.lang, tc.word, got, tc.want)
			}
		})
	}
}

func TestBuiltinPunctuation(t *testing.T) {
	punct := Builtin().Punctuation()
	for _, mark := range []string{".", ",", "!", "?", "«", "»", "—", "…"} {
		if _, ok := punct[mark]; !ok {
			t.Errorf("Punctuation() is missing %q", mark)
		}
	}
	if _, ok := punct["a"]; ok {
		t.Errorf("Punctuation() contains a letter")
	}
}

func TestMerge(t *testing.T) {
	base := Builtin()
	src := &MockSource{Words: map[language.Code][]string{
		language.En: {"Lorem", "  ipsum ", ""},
		language.Uk: {"Тощо", "Київ"},
	}}

	merged, err := Merge(base, src)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	for _, w := range []string{"lorem", "ipsum", "the"} {
		if _, ok := merged.StopWords(language.En)[w]; !ok {
			t.Errorf("merged English set is missing %q", w)
		}
	}
	if _, ok := merged.StopWords(language.En)[""]; ok {
		t.Errorf("merged English set contains a blank word")
	}
	if _, ok := merged.StopWords(language.Uk)["київ"]; !ok {
		t.Errorf("merged Ukrainian set is missing normalized word")
	}

	// The base lexicon must be left untouched.
	if _, ok := base.StopWords(language.En)["lorem"]; ok {
		t.Errorf("Merge() modified the base lexicon")
	}
}

func TestMergeError(t *testing.T) {
	_, err := Merge(Builtin(), &MockSource{ReturnError: true})
	if !errors.Is(err, errLoad) {
		t.Errorf("Merge() error = %v, want %v", err, errLoad)
	}
}

func TestWordsSorted(t *testing.T) {
	words := Words(Builtin(), language.En)
	if !slices.IsSorted(words) {
		t.Errorf("Words() is not sorted")
	}
	if len(words) != len(Builtin().StopWords(language.En)) {
		t.Errorf("Words() returned %d words, want %d", len(words), len(Builtin().StopWords(language.En)))
	}
}

func TestSQLiteStore(t *testing.T) {
	store := NewSQLiteStore()
	if err := store.Initialize(filepath.Join(t.TempDir(), "lexicon.db")); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer store.Close()

	if err := store.Store(language.En, []string{"Lorem", "ipsum", "lorem", " "}); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if err := store.Store(language.Uk, []string{"Тощо"}); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	got, err := store.Load(language.En)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if want := []string{"ipsum", "lorem"}; !slices.Equal(got, want) {
		t.Errorf("Load(en) = %v, want %v", got, want)
	}

	if err := store.Clear(language.En); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	got, err = store.Load(language.En)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load(en) after Clear = %v, want empty", got)
	}

	got, err = store.Load(language.Uk)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if want := []string{"тощо"}; !slices.Equal(got, want) {
		t.Errorf("Load(uk) = %v, want %v", got, want)
	}
}

func TestSQLiteStoreNotInitialized(t *testing.T) {
	store := NewSQLiteStore()
	if _, err := store.Load(language.En); err == nil {
		t.Errorf("Load() on an uninitialized store succeeded")
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() on an uninitialized store error = %v", err)
	}
}
