package grammar

// articleKey indexes one cell of the article table.
type articleKey struct {
	c  Case
	g  Gender
	at ArticleType
}

// articles is the full article paradigm. Hand-authored; an absent
// combination is a legitimate gap (negative articles have no genitive row
// in the beginner material, for instance).
var articles = map[articleKey]string{
	// Definite.
	{Nominative, Masculine, Definite}: "der",
	{Nominative, Feminine, Definite}:  "die",
	{Nominative, Neuter, Definite}:    "das",
	{Nominative, Plural, Definite}:    "die",
	{Accusative, Masculine, Definite}: "den",
	{Accusative, Feminine, Definite}:  "die",
	{Accusative, Neuter, Definite}:    "das",
	{Accusative, Plural, Definite}:    "die",
	{Dative, Masculine, Definite}:     "dem",
	{Dative, Feminine, Definite}:      "der",
	{Dative, Neuter, Definite}:        "dem",
	{Dative, Plural, Definite}:        "den",
	{Genitive, Masculine, Definite}:   "des",
	{Genitive, Feminine, Definite}:    "der",
	{Genitive, Neuter, Definite}:      "des",
	{Genitive, Plural, Definite}:      "der",

	// Indefinite. No plural forms exist.
	{Nominative, Masculine, Indefinite}: "ein",
	{Nominative, Feminine, Indefinite}:  "eine",
	{Nominative, Neuter, Indefinite}:    "ein",
	{Accusative, Masculine, Indefinite}: "einen",
	{Accusative, Feminine, Indefinite}:  "eine",
	{Accusative, Neuter, Indefinite}:    "ein",
	{Dative, Masculine, Indefinite}:     "einem",
	{Dative, Feminine, Indefinite}:      "einer",
	{Dative, Neuter, Indefinite}:        "einem",
	{Genitive, Masculine, Indefinite}:   "eines",
	{Genitive, Feminine, Indefinite}:    "einer",
	{Genitive, Neuter, Indefinite}:      "eines",

	// Negative.
	{Nominative, Masculine, Negative}: "kein",
	{Nominative, Feminine, Negative}:  "keine",
	{Nominative, Neuter, Negative}:    "kein",
	{Nominative, Plural, Negative}:    "keine",
	{Accusative, Masculine, Negative}: "keinen",
	{Accusative, Feminine, Negative}:  "keine",
	{Accusative, Neuter, Negative}:    "kein",
	{Accusative, Plural, Negative}:    "keine",
	{Dative, Masculine, Negative}:     "keinem",
	{Dative, Feminine, Negative}:      "keiner",
	{Dative, Neuter, Negative}:        "keinem",
	{Dative, Plural, Negative}:        "keinen",
}

// LookupArticle returns the article for a (case, gender, type) cell. The
// second return reports whether the combination exists in the data.
func LookupArticle(c Case, g Gender, at ArticleType) (string, bool) {
	v, ok := articles[articleKey{c, g, at}]
	return v, ok
}

// adjectiveEndings maps (case, gender, articleType) to the adjective
// ending used after that article. Negative follows the indefinite
// pattern and is not stored separately.
var adjectiveEndings = map[articleKey]string{
	{Nominative, Masculine, Definite}: "-e",
	{Nominative, Feminine, Definite}:  "-e",
	{Nominative, Neuter, Definite}:    "-e",
	{Nominative, Plural, Definite}:    "-en",
	{Accusative, Masculine, Definite}: "-en",
	{Accusative, Feminine, Definite}:  "-e",
	{Accusative, Neuter, Definite}:    "-e",
	{Accusative, Plural, Definite}:    "-en",
	{Dative, Masculine, Definite}:     "-en",
	{Dative, Feminine, Definite}:      "-en",
	{Dative, Neuter, Definite}:        "-en",
	{Dative, Plural, Definite}:        "-en",
	{Genitive, Masculine, Definite}:   "-en",
	{Genitive, Feminine, Definite}:    "-en",
	{Genitive, Neuter, Definite}:      "-en",
	{Genitive, Plural, Definite}:      "-en",

	{Nominative, Masculine, Indefinite}: "-er",
	{Nominative, Feminine, Indefinite}:  "-e",
	{Nominative, Neuter, Indefinite}:    "-es",
	{Accusative, Masculine, Indefinite}: "-en",
	{Accusative, Feminine, Indefinite}:  "-e",
	{Accusative, Neuter, Indefinite}:    "-es",
	{Dative, Masculine, Indefinite}:     "-en",
	{Dative, Feminine, Indefinite}:      "-en",
	{Dative, Neuter, Indefinite}:        "-en",
	{Genitive, Masculine, Indefinite}:   "-en",
	{Genitive, Feminine, Indefinite}:    "-en",
	{Genitive, Neuter, Indefinite}:      "-en",
}

// LookupEnding returns the adjective ending for a (case, gender, type)
// cell, with the same absent-combination semantics as LookupArticle.
func LookupEnding(c Case, g Gender, at ArticleType) (string, bool) {
	v, ok := adjectiveEndings[articleKey{c, g, at}]
	return v, ok
}

// CaseInfos describes the four cases for the case browser, in teaching
// order.
var CaseInfos = []CaseInfo{
	{
		Case:        Nominative,
		Title:       "Nominative",
		Description: "The subject of the sentence — whoever is doing the verb.",
		Question:    "wer? was?",
		Example:     "Der Hund schläft.",
	},
	{
		Case:        Accusative,
		Title:       "Accusative",
		Description: "The direct object — whatever the verb acts on. Only masculine articles change.",
		Question:    "wen? was?",
		Example:     "Ich sehe den Hund.",
	},
	{
		Case:        Dative,
		Title:       "Dative",
		Description: "The indirect object — the receiver or beneficiary. Also forced by prepositions like mit and bei.",
		Question:    "wem?",
		Example:     "Ich gebe dem Hund einen Ball.",
	},
	{
		Case:        Genitive,
		Title:       "Genitive",
		Description: "Possession and certain prepositions. Increasingly replaced by von + dative in speech.",
		Question:    "wessen?",
		Example:     "Das Spielzeug des Hundes.",
	},
}

// CaseInfoFor returns the description for one case. Absent cases (a
// selection that survived in a bookmark after data changed) report false.
func CaseInfoFor(c Case) (CaseInfo, bool) {
	for _, ci := range CaseInfos {
		if ci.Case == c {
			return ci, true
		}
	}
	return CaseInfo{}, false
}

// ParseCase maps a query-parameter value to a Case, falling back to the
// first case for anything unknown. Selection state arrives from URLs and
// must never crash a page.
func ParseCase(s string) Case {
	for _, c := range Cases {
		if string(c) == s {
			return c
		}
	}
	return Cases[0]
}

// ParseArticleType maps a query-parameter value to an ArticleType with
// the same fallback semantics as ParseCase.
func ParseArticleType(s string) ArticleType {
	for _, at := range ArticleTypes {
		if string(at) == s {
			return at
		}
	}
	return ArticleTypes[0]
}
