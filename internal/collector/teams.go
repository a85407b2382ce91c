package collector

import "strings"

type teamKeyword struct {
	keyword string
	team    string
}

// teamKeywords maps nickname fragments found in headline text to full team
// names, covering all 30 teams plus common short forms. Ordered so that
// extraction is deterministic when a headline mentions several teams.
var teamKeywords = []teamKeyword{
	{"hawks", "Atlanta Hawks"},
	{"celtics", "Boston Celtics"},
	{"nets", "Brooklyn Nets"},
	{"hornets", "Charlotte Hornets"},
	{"bulls", "Chicago Bulls"},
	{"cavaliers", "Cleveland Cavaliers"},
	{"cavs", "Cleveland Cavaliers"},
	{"mavericks", "Dallas Mavericks"},
	{"mavs", "Dallas Mavericks"},
	{"nuggets", "Denver Nuggets"},
	{"pistons", "Detroit Pistons"},
	{"warriors", "Golden State Warriors"},
	{"rockets", "Houston Rockets"},
	{"pacers", "Indiana Pacers"},
	{"clippers", "LA Clippers"},
	{"lakers", "Los Angeles Lakers"},
	{"grizzlies", "Memphis Grizzlies"},
	{"heat", "Miami Heat"},
	{"bucks", "Milwaukee Bucks"},
	{"timberwolves", "Minnesota Timberwolves"},
	{"wolves", "Minnesota Timberwolves"},
	{"pelicans", "New Orleans Pelicans"},
	{"knicks", "New York Knicks"},
	{"thunder", "Oklahoma City Thunder"},
	{"magic", "Orlando Magic"},
	{"76ers", "Philadelphia 76ers"},
	{"sixers", "Philadelphia 76ers"},
	{"suns", "Phoenix Suns"},
	{"trail blazers", "Portland Trail Blazers"},
	{"blazers", "Portland Trail Blazers"},
	{"kings", "Sacramento Kings"},
	{"spurs", "San Antonio Spurs"},
	{"raptors", "Toronto Raptors"},
	{"jazz", "Utah Jazz"},
	{"wizards", "Washington Wizards"},
}

// extractTeam returns the full team name for the first nickname found in
// text, or "" when nothing matches.
func extractTeam(text string) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	for _, tk := range teamKeywords {
		if strings.Contains(lower, tk.keyword) {
			return tk.team
		}
	}
	return ""
}
