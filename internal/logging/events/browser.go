package events

import "github.com/atomicstack/weapon-stats/internal/logging"

type BrowserTracer struct{}

type SearchTracer struct{}

type LocaleTracer struct{}

type DataTracer struct{}

var (
	Browser = BrowserTracer{}
	Search  = SearchTracer{}
	Locale  = LocaleTracer{}
	Data    = DataTracer{}
)

func (BrowserTracer) SelectCategory(category string, results int) {
	logging.Trace("browser.category", map[string]interface{}{"category": category, "results": results})
}

func (BrowserTracer) Navigate(category string, direction, index, total int) {
	logging.Trace("browser.navigate", map[string]interface{}{
		"category":  category,
		"direction": direction,
		"index":     index,
		"total":     total,
	})
}

func (BrowserTracer) ImageFallback(weapon, ref string) {
	logging.Trace("browser.image.fallback", map[string]interface{}{"weapon": weapon, "ref": ref})
}

func (SearchTracer) Cleared(category string) {
	logging.Trace("search.clear", map[string]interface{}{"category": category})
}

func (SearchTracer) Append(category, term string, results int) {
	logging.Trace("search.append", map[string]interface{}{"category": category, "term": term, "results": results})
}

func (SearchTracer) Backspace(category, term string, results int) {
	logging.Trace("search.backspace", map[string]interface{}{"category": category, "term": term, "results": results})
}

func (SearchTracer) WordBackspace(category, term string, results int) {
	logging.Trace("search.word-backspace", map[string]interface{}{"category": category, "term": term, "results": results})
}

func (SearchTracer) Cursor(pos int) {
	logging.Trace("search.cursor", map[string]interface{}{"cursor": pos})
}

func (SearchTracer) CursorWord(pos int) {
	logging.Trace("search.cursor-word", map[string]interface{}{"cursor": pos})
}

func (LocaleTracer) Toggle(from, to string) {
	logging.Trace("locale.toggle", map[string]interface{}{"from": from, "to": to})
}

func (LocaleTracer) Resolved(requested, resolved string) {
	logging.Trace("locale.resolve", map[string]interface{}{"requested": requested, "resolved": resolved})
}

func (DataTracer) Loaded(source string, categories, weapons int) {
	logging.Trace("data.load", map[string]interface{}{"source": source, "categories": categories, "weapons": weapons})
}

func (DataTracer) DictionaryLoaded(source string, entries int) {
	logging.Trace("data.dictionary", map[string]interface{}{"source": source, "entries": entries})
}
