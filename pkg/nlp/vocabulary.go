package nlp

// tags is the canonical vocabulary. Fuzzy matching walks this slice before the
// synonym keys, so the earliest entry wins when two candidates sit at the same
// edit distance.
var tags = []string{
	"ai", "machine learning", "deep learning", "coding", "development",
	"design", "ui", "ux", "graphic design", "marketing",
	"business", "data science", "analytics", "blockchain",
	"healthcare", "education", "engineering", "arts",
}

// synonymKeys fixes the iteration order over the synonym table.
var synonymKeys = []string{
	"artificial intelligence", "ai/ml", "aiml", "ml", "dl",
	"programming", "programmer", "dev", "frontend", "backend",
	"analysis", "stats", "ux", "ui", "ds", "crypto", "web3",
}

var synonyms = map[string]string{
	"artificial intelligence": "ai",
	"ai/ml":                   "machine learning",
	"aiml":                    "machine learning",
	"ml":                      "machine learning",
	"dl":                      "deep learning",
	"programming":             "coding",
	"programmer":              "coding",
	"dev":                     "development",
	"frontend":                "development",
	"backend":                 "development",
	"analysis":                "data science",
	"stats":                   "data science",
	"ux":                      "design",
	"ui":                      "design",
	"ds":                      "data science",
	"crypto":                  "blockchain",
	"web3":                    "blockchain",
}

// relatedTags drives the single-level expansion in ExtractTags.
var relatedTags = map[string][]string{
	"ai":               {"machine learning", "deep learning"},
	"machine learning": {"ai", "deep learning", "data science"},
	"deep learning":    {"ai", "machine learning"},
	"coding":           {"development", "programming"},
	"development":      {"coding", "engineering"},
	"design":           {"ui", "ux", "graphic design"},
	"business":         {"marketing"},
	"data science":     {"analytics", "ai"},
	"blockchain":       {"crypto", "web3"},
}
