package extract

// NFL vocabulary backing keyword weighting and entity recognition.

var teamNames = []string{
	"Cardinals", "Falcons", "Ravens", "Bills", "Panthers", "Bears",
	"Bengals", "Browns", "Cowboys", "Broncos", "Lions", "Packers",
	"Texans", "Colts", "Jaguars", "Chiefs", "Raiders", "Chargers",
	"Rams", "Dolphins", "Vikings", "Patriots", "Saints", "Giants",
	"Jets", "Eagles", "Steelers", "49ers", "Seahawks", "Buccaneers",
	"Titans", "Commanders",
}

var positionAbbrevs = []string{
	"QB", "RB", "WR", "TE", "FB", "OT", "OG", "C",
	"DE", "DT", "LB", "CB", "FS", "SS", "K", "P",
}

var statTerms = []string{
	"touchdown", "interception", "fumble", "sack", "yards",
	"passing", "rushing", "receiving", "completion", "turnover",
	"tackle", "penalty", "field goal", "punt", "kickoff",
}

// keywordStopList holds frequent words that carry no topical signal even
// though they pass the length filter.
var keywordStopList = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "from": {}, "have": {},
	"will": {}, "they": {}, "them": {}, "their": {}, "what": {},
	"when": {}, "just": {}, "about": {}, "into": {}, "over": {},
	"after": {}, "before": {}, "been": {}, "were": {}, "would": {},
}

// reportingVerbs mark a preceding capitalized name sequence as a likely
// player or reporter mention.
var reportingVerbs = []string{
	"reports", "reported", "says", "said", "announces", "announced",
	"confirms", "confirmed", "tweets", "tweeted", "adds", "notes",
}
