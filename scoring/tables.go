package scoring

// Static lookup tables backing the heuristic tiers of the scoring engine.
// Tables are immutable after init and deliberately kept apart from the
// scoring algorithms so they can grow without touching scoring logic.

// cityAliases maps a normalized region criterion to city/region names that
// imply a match: searching "india" should surface a Mumbai supplier.
var cityAliases = map[string][]string{
	"india": {
		"mumbai", "delhi", "new delhi", "bangalore", "bengaluru", "chennai",
		"kolkata", "hyderabad", "pune", "ahmedabad", "surat", "jaipur",
		"ludhiana", "tirupur", "coimbatore", "bharat",
	},
	"mumbai":     {"bombay", "navi mumbai", "thane"},
	"delhi":      {"new delhi", "ncr", "gurgaon", "gurugram", "noida"},
	"bangalore":  {"bengaluru"},
	"chennai":    {"madras"},
	"kolkata":    {"calcutta"},
	"usa":        {"united states", "america", "new york", "los angeles", "chicago", "houston"},
	"uae":        {"dubai", "abu dhabi", "sharjah", "united arab emirates"},
	"uk":         {"united kingdom", "london", "manchester", "birmingham", "britain", "england"},
	"china":      {"shanghai", "beijing", "shenzhen", "guangzhou", "yiwu"},
	"germany":    {"berlin", "hamburg", "munich", "frankfurt", "deutschland"},
	"bangladesh": {"dhaka", "chittagong"},
	"vietnam":    {"ho chi minh", "hanoi", "da nang"},
	"turkey":     {"istanbul", "ankara", "izmir"},
}

// dialingCodes maps a region criterion to phone-number prefixes that hint
// at it when nothing else does.
var dialingCodes = map[string][]string{
	"india":      {"+91", "0091", "91-"},
	"usa":        {"+1", "001"},
	"uae":        {"+971"},
	"uk":         {"+44"},
	"china":      {"+86"},
	"germany":    {"+49"},
	"bangladesh": {"+880"},
	"pakistan":   {"+92"},
	"vietnam":    {"+84"},
	"turkey":     {"+90"},
}

// stateAliases maps a region criterion to broader state / province names.
// A state match is weaker evidence than a city match.
var stateAliases = map[string][]string{
	"india": {
		"maharashtra", "gujarat", "tamil nadu", "karnataka", "west bengal",
		"rajasthan", "punjab", "uttar pradesh", "kerala", "telangana", "haryana",
	},
	"usa":     {"california", "texas", "new york", "florida", "illinois", "new jersey"},
	"china":   {"guangdong", "zhejiang", "jiangsu", "shandong", "fujian"},
	"germany": {"bavaria", "hesse", "saxony", "baden-wurttemberg"},
}

// industryRelatedTerms maps a normalized industry criterion to a curated
// vocabulary of closely related terms.
var industryRelatedTerms = map[string][]string{
	"textiles": {
		"garments", "apparel", "fabric", "clothing", "yarn", "weaving",
		"knitwear", "hosiery", "embroidery", "handloom",
	},
	"machinery": {
		"equipment", "industrial", "engineering", "tools", "spare parts",
		"automation", "cnc",
	},
	"electronics": {
		"electrical", "components", "semiconductors", "appliances", "led",
		"circuit", "pcb",
	},
	"chemicals": {
		"chemical", "dyes", "pigments", "solvents", "polymers", "adhesives",
		"fertilizers",
	},
	"food": {
		"foods", "beverages", "spices", "grains", "snacks", "dairy",
		"processed food", "organic",
	},
	"pharmaceuticals": {
		"pharma", "medicines", "drugs", "healthcare", "api", "formulations",
	},
	"automotive": {
		"auto parts", "automobile", "vehicles", "components", "tyres", "castings",
	},
	"agriculture": {
		"agro", "farming", "seeds", "produce", "horticulture", "crops",
	},
	"leather": {
		"footwear", "shoes", "bags", "hides", "tannery", "accessories",
	},
	"plastics": {
		"polymer", "packaging", "moulding", "pet", "hdpe", "films",
	},
	"jewelry": {
		"jewellery", "gems", "diamonds", "gold", "silver", "ornaments",
	},
	"furniture": {
		"furnishings", "wood", "home decor", "interior", "cabinets",
	},
}

// industryFuzzySynonyms maps an industry criterion to looser, fuzzier
// synonyms that still carry some signal.
var industryFuzzySynonyms = map[string][]string{
	"textiles":        {"textile", "cloth", "cotton", "silk", "wool", "fashion"},
	"machinery":       {"machines", "mechanical", "fabrication"},
	"electronics":     {"electronic", "gadgets", "devices", "tech"},
	"chemicals":       {"chem", "specialty", "industrial chemicals"},
	"food":            {"edibles", "fmcg", "agri food", "culinary"},
	"pharmaceuticals": {"pharmacy", "medical", "life sciences"},
	"automotive":      {"automotives", "motors", "transport"},
	"agriculture":     {"agricultural", "agri", "plantation"},
	"leather":         {"leathers", "leatherette"},
	"plastics":        {"plastic", "polymers"},
	"jewelry":         {"jewels", "gemstones"},
	"furniture":       {"furnishing", "woodwork"},
}

// exportTerms suggest the record describes an export-oriented business.
var exportTerms = []string{
	"export", "exports", "exporter", "import", "importer", "international",
	"overseas", "global", "shipping", "freight", "fob", "cif", "customs",
	"trade", "trading",
}

// businessTypeTerms suggest an established supply-side business.
var businessTypeTerms = []string{
	"manufacturer", "manufacturing", "wholesale", "wholesaler", "distributor",
	"supplier", "trader", "dealer", "factory", "mill", "producer",
}

// qualityMarkers in a record's text raise its freshness / data-quality score.
var qualityMarkers = []string{
	"verified", "certified", "iso", "premium", "trusted", "member",
	"featured", "gold supplier",
}

// Company-size vocabulary for the activity sub-score.
var (
	activityLargeTerms   = []string{"large", "enterprise", "500+", "1000+"}
	activityMediumTerms  = []string{"medium", "mid", "100", "50+"}
	activityPremiumTerms = []string{"premium", "gold", "tier1", "tier 1", "verified"}
)

// Engagement-level vocabulary for the engagement sub-score.
var (
	engagementHighTerms = []string{"active", "high", "premium", "verified"}
	engagementMidTerms  = []string{"medium", "regular"}
	engagementLowTerms  = []string{"low", "inactive", "dormant"}
)
