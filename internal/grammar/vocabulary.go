package grammar

// VocabThemes is the bundled vocabulary, one theme per tab on the
// bilingual drill page.
var VocabThemes = []VocabTheme{
	{
		Key:     "workplace",
		TitleEN: "At Work",
		TitleFR: "Au travail",
		Entries: []VocabEntry{
			{French: "une réunion", English: "a meeting", Example: "La réunion commence à dix heures."},
			{French: "un délai", English: "a deadline", Example: "Le délai est vendredi."},
			{French: "un dossier", English: "a file, a case", Example: "J'ai relu le dossier hier soir."},
			{French: "embaucher", English: "to hire", Example: "L'équipe veut embaucher un développeur."},
			{French: "une ébauche", English: "a draft", Example: "Ce n'est qu'une ébauche du rapport."},
		},
	},
	{
		Key:     "travel",
		TitleEN: "Travel",
		TitleFR: "En voyage",
		Entries: []VocabEntry{
			{French: "un billet", English: "a ticket", Example: "J'ai acheté un billet aller-retour."},
			{French: "une correspondance", English: "a connection", Example: "La correspondance est à Lyon."},
			{French: "un quai", English: "a platform", Example: "Le train part du quai numéro trois."},
			{French: "louer", English: "to rent", Example: "Nous allons louer une voiture."},
			{French: "une valise", English: "a suitcase", Example: "Ma valise est trop lourde."},
		},
	},
	{
		Key:     "food",
		TitleEN: "Food & Dining",
		TitleFR: "À table",
		Entries: []VocabEntry{
			{French: "une addition", English: "a bill (restaurant)", Example: "L'addition, s'il vous plaît."},
			{French: "un plat", English: "a dish", Example: "Le plat du jour est excellent."},
			{French: "goûter", English: "to taste", Example: "Tu veux goûter ma soupe ?"},
			{French: "une entrée", English: "a starter", Example: "Comme entrée, la salade de chèvre."},
			{French: "commander", English: "to order", Example: "On peut commander maintenant ?"},
		},
	},
}

// ThemeByKey returns the theme for a tab key, falling back to the first
// theme for unknown keys.
func ThemeByKey(key string) VocabTheme {
	for _, th := range VocabThemes {
		if th.Key == key {
			return th
		}
	}
	return VocabThemes[0]
}
