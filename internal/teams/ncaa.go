package teams

// NCAA covers the Division I programs seen most often; unknown
// ids fall back to synthesis.
var NCAA = Registry{
	"2000": team("2000", "Abilene Christian", "Wildcats", "Abil Christ", "ACU", "4e2683", "ebebeb"),
	"2005": team("2005", "Air Force", "Falcons", "Air Force", "AFA", "004a7b", "ffffff"),
	"2006": team("2006", "Akron", "Zips", "Akron", "AKR", "00285e", "ffffff"),
	"2010": team("2010", "Alabama A&M", "Bulldogs", "Alabama A&M", "AAMU", "790000", "ffffff"),
	"333": team("333", "Alabama", "Crimson Tide", "Alabama", "ALA", "690014", "f1f2f3"),
	"2011": team("2011", "Alabama State", "Hornets", "Alabama St", "ALST", "e9a900", "0a0a0a"),
	"399": team("399", "Albany", "Great Danes", "Albany", "ALB", "3d2777", "ffffff"),
	"2016": team("2016", "Alcorn State", "Braves", "Alcorn St", "ALCN", "4b0058", "ffffff"),
	"44": team("44", "American", "Eagles", "American", "AMER", "c41130", "ffffff"),
	"2026": team("2026", "Appalachian State", "Mountaineers", "App St", "APP", "000000", "ffcd00"),
	"9": team("9", "Arizona State", "Sun Devils", "Arizona St", "ASU", "942139", "f1f2f3"),
	"12": team("12", "Arizona", "Wildcats", "Arizona", "ARIZ", "002449", "ffffff"),
	"8": team("8", "Arkansas", "Razorbacks", "Arkansas", "ARK", "9c1831", "ffffff"),
	"2032": team("2032", "Arkansas State", "Red Wolves", "Arkansas St", "ARST", "e81018", "000000"),
	"2029": team("2029", "Arkansas-Pine Bluff", "Golden Lions", "Ark-Pine", "UAPB", "e0aa0f", "000000"),
	"349": team("349", "Army", "Black Knights", "Army", "ARMY", "ce9c00", "231f20"),
	"2": team("2", "Auburn", "Tigers", "Auburn", "AUB", "03244d", "f1f2f3"),
	"2046": team("2046", "Austin Peay", "Governors", "Austin Peay", "APSU", "8e0b0b", "ffffff"),
	"252": team("252", "BYU", "Cougars", "BYU", "BYU", "001e4c", "ffffff"),
	"2050": team("2050", "Ball State", "Cardinals", "Ball State", "BALL", "da0000", "ffffff"),
	"239": team("239", "Baylor", "Bears", "Baylor", "BAY", "004834", "ffb81c"),
	"91": team("91", "Bellarmine", "Knights", "Bellarmine", "BELL", "000000", "ffffff"),
	"2057": team("2057", "Belmont", "Bruins", "Belmont", "BEL", "182142", "ffffff"),
	"2066": team("2066", "Binghamton", "Bearcats", "Binghamton", "BING", "00614a", "f0f0f0"),
	"68": team("68", "Boise State", "Broncos", "Boise State", "BSU", "09347a", "d8d9da"),
	"103": team("103", "Boston College", "Eagles", "Boston C", "BC", "88001a", "ffffff"),
	"104": team("104", "Boston Univ.", "Terriers", "Boston U", "BU", "cc0000", "ffffff"),
	"189": team("189", "Bowling Green", "Falcons", "Bowling G", "BGSU", "2b1000", "ffffff"),
	"71": team("71", "Bradley", "Braves", "Bradley", "BRAD", "b70002", "c0c0c0"),
	"225": team("225", "Brown", "Bears", "Brown", "BRWN", "411e09", "949300"),
	"2083": team("2083", "Bucknell", "Bison", "Bucknell", "BUCK", "000060", "ffffff"),
	"2084": team("2084", "Buffalo", "Bulls", "Buffalo", "BUFF", "041a9b", "ebebeb"),
	"2086": team("2086", "Butler", "Bulldogs", "Butler", "BUT", "0d1361", "00a3e0"),
	"2239": team("2239", "CSU Fullerton", "Titans", "Fullerton", "CSUF", "10219c", "ffffff"),
	"13": team("13", "Cal Poly", "Mustangs", "Cal Poly", "CP", "1e4d2b", "eed897"),
	"25": team("25", "California", "Golden Bears", "California", "CAL", "031522", "ffc423"),
	"2097": team("2097", "Campbell", "Fighting Camels", "Campbell", "CAM", "000000", "ffffff"),
	"2099": team("2099", "Canisius", "Golden Griffins", "Canisius", "CAN", "004a81", "dda50f"),
	"2110": team("2110", "Central Arkansas", "Bears", "Cent Ark", "UCA", "a7a9ac", "000000"),
	"2115": team("2115", "Central Connecticut", "Blue Devils", "Cent Conn", "CCSU", "1b49a2", "d1d5d8"),
	"2117": team("2117", "Central Michigan", "Chippewas", "Cent Mich", "CMU", "6a0032", "ffffff"),
	"232": team("232", "Charleston", "Cougars", "Charleston", "COFC", "9c8456", "000000"),
	"2127": team("2127", "Charleston Southern", "Buccaneers", "Charleston S", "CHSO", "2e3192", "ded090"),
	"236": team("236", "Chattanooga", "Mocs", "Chattanooga", "UTC", "00386b", "dca71d"),
	"2130": team("2130", "Chicago State", "Cougars", "Chicago St", "CHIC", "006700", "ffffff"),
	"2132": team("2132", "Cincinnati", "Bearcats", "Cincinnati", "CIN", "000000", "717073"),
	"228": team("228", "Clemson", "Tigers", "Clemson", "CLEM", "f66733", "000000"),
	"325": team("325", "Cleveland State", "Vikings", "C St", "CLEV", "006633", "ffffff"),
	"324": team("324", "Coastal Carolina", "Chanticleers", "C. Carolina", "CCAR", "007073", "ffffff"),
	"2142": team("2142", "Colgate", "Raiders", "Colgate", "COLG", "8b011d", "ffffff"),
	"38": team("38", "Colorado", "Buffaloes", "Colorado", "COLO", "d1c57e", "000000"),
	"36": team("36", "Colorado State", "Rams", "Colorado St", "CSU", "004537", "ffc425"),
	"171": team("171", "Columbia", "Lions", "Columbia", "CLMB", "174785", "ffffff"),
	"2154": team("2154", "Coppin St", "Eagles", "Coppin St", "COPP", "2e3192", "ffd204"),
	"172": team("172", "Cornell", "Big Red", "Cornell", "COR", "d60027", "101010"),
	"156": team("156", "Creighton", "Bluejays", "Creighton", "CREI", "13299e", "ffffff"),
	"159": team("159", "Dartmouth", "Big Green", "Dartmouth", "DART", "005730", "ffffff"),
	"2166": team("2166", "Davidson", "Wildcats", "Davidson", "DAV", "000000", "e51837"),
	"2168": team("2168", "Dayton", "Flyers", "Dayton", "DAY", "004b8d", "ffffff"),
	"305": team("305", "DePaul", "Blue Demons", "DePaul", "DEP", "2d649c", "ffffff"),
}
