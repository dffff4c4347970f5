package extract

// Ordered alias lists for canonical attributes. Uploads are schema-less, so
// each canonical attribute is resolved by trying its aliases in order
// against the record's raw column names. Order matters: the most specific
// alias comes first so "contact email" is not swallowed by "email".
var (
	// CompanyAliases resolve the company / organization name.
	CompanyAliases = []string{
		"company name", "company", "business name", "organization",
		"organisation", "firm", "exporter", "supplier", "name",
	}

	// EmailAliases resolve the primary email address.
	EmailAliases = []string{
		"email address", "email", "e-mail", "contact email", "mail",
	}

	// PhoneAliases resolve the primary phone number.
	PhoneAliases = []string{
		"phone number", "phone", "mobile", "contact number", "telephone",
		"tel", "whatsapp",
	}

	// WebsiteAliases resolve the company website.
	WebsiteAliases = []string{
		"website", "web site", "url", "homepage", "web", "domain",
	}

	// IndustryAliases resolve the industry / sector classification.
	IndustryAliases = []string{
		"industry", "sector", "business type", "category", "vertical",
		"products", "product category",
	}

	// RegionAliases resolve the city or region.
	RegionAliases = []string{
		"region", "city", "location", "area", "district", "town",
	}

	// ContactAliases resolve the contact person.
	ContactAliases = []string{
		"contact person", "contact name", "contact", "person", "owner",
		"director", "manager", "representative",
	}

	// AddressAliases resolve free-form address text.
	AddressAliases = []string{
		"address", "full address", "office address", "street", "street address",
	}

	// CountryAliases resolve structured country / state fields.
	CountryAliases = []string{
		"country", "state", "province", "nation",
	}

	// SizeAliases resolve company-size style fields used for activity scoring.
	SizeAliases = []string{
		"company size", "size", "employees", "employee count", "scale",
		"tier", "membership", "plan",
	}

	// EngagementAliases resolve engagement / activity-level fields.
	EngagementAliases = []string{
		"engagement", "activity", "status", "last active", "response rate",
	}
)
