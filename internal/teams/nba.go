package teams

// NBA maps scoreboard-feed team ids to canonical teams.
var NBA = Registry{
	"1": team("1", "Atlanta", "Hawks", "Hawks", "ATL", "002b5c", "ffffff"),
	"2": team("2", "Boston", "Celtics", "Celtics", "BOS", "006532", "f1f2f3"),
	"17": team("17", "Brooklyn", "Nets", "Nets", "BKN", "000000", "ffffff"),
	"30": team("30", "Charlotte", "Hornets", "Hornets", "CHA", "1d1060", "008ca8"),
	"4": team("4", "Chicago", "Bulls", "Bulls", "CHI", "000000", "ffffff"),
	"5": team("5", "Cleveland", "Cavaliers", "Cavaliers", "CLE", "061642", "fdbb30"),
	"6": team("6", "Dallas", "Mavericks", "Mavericks", "DAL", "0c479d", "c4ced3"),
	"7": team("7", "Denver", "Nuggets", "Nuggets", "DEN", "0860a8", "fdb927"),
	"8": team("8", "Detroit", "Pistons", "Pistons", "DET", "fa002c", "000000"),
	"9": team("9", "Golden State", "Warriors", "Warriors", "GS", "003da5", "fdb927"),
	"10": team("10", "Houston", "Rockets", "Rockets", "HOU", "d40026", "ffffff"),
	"11": team("11", "Indiana", "Pacers", "Pacers", "IND", "061642", "ffffff"),
	"12": team("12", "LA", "Clippers", "Clippers", "LAC", "fa0028", "f1f2f3"),
	"13": team("13", "Los Angeles", "Lakers", "Lakers", "LAL", "542582", "ffffff"),
	"29": team("29", "Memphis", "Grizzlies", "Grizzlies", "MEM", "5d76a8", "000000"),
	"14": team("14", "Miami", "Heat", "Heat", "MIA", "000000", "ffffff"),
	"15": team("15", "Milwaukee", "Bucks", "Bucks", "MIL", "003813", "f0ebd2"),
	"16": team("16", "Minnesota", "Timberwolves", "T Wolves", "MIN", "0e3764", "c4ced3"),
	"3": team("3", "New Orleans", "Pelicans", "Pelicans", "NO", "002a5c", "b4975a"),
	"18": team("18", "New York", "Knicks", "Knicks", "NY", "225ea8", "ffffff"),
	"25": team("25", "Oklahoma City", "Thunder", "Thunder", "OKC", "c67c03", "000000"),
	"19": team("19", "Orlando", "Magic", "Magic", "ORL", "0860a8", "c4ced3"),
	"20": team("20", "Philadelphia", "76ers", "76ers", "PHI", "000000", "f1f2f3"),
	"21": team("21", "Phoenix", "Suns", "Suns", "PHX", "23006a", "f1f2f3"),
	"22": team("22", "Portland", "Trail Blazers", "T Blazers", "POR", "000000", "bac3c9"),
	"23": team("23", "Sacramento", "Kings", "Kings", "SAC", "393996", "ffffff"),
	"24": team("24", "San Antonio", "Spurs", "Spurs", "SA", "000000", "ffffff"),
	"28": team("28", "Toronto", "Raptors", "Raptors", "TOR", "ce0f41", "ffffff"),
	"26": team("26", "Utah", "Jazz", "Jazz", "UTAH", "06143f", "f9a01b"),
	"27": team("27", "Washington", "Wizards", "Wizards", "WSH", "0e3764", "ffffff"),
}
