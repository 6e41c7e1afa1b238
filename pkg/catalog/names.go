package catalog

// Names of the generators shipped in the embedded catalogs.
// Not every locale provides every name; see Catalog.Names.
const (
	ASCIIDigit     = "util.ascii_digit"
	ASCIILowercase = "util.ascii_lowercase"

	LoremWord       = "lorem.word"
	LoremSentence   = "lorem.sentence"
	LoremParagraph  = "lorem.paragraph"
	LoremParagraphs = "lorem.paragraphs"

	FirstName  = "names.first_name"
	LastName   = "names.last_name"
	NamePrefix = "names.name_prefix"
	NameSuffix = "names.name_suffix" // en_us only
	FullName   = "names.full_name"

	CityName             = "addresses.city_name"
	StreetName           = "addresses.street_name"
	StreetAddress        = "addresses.street_address"
	SecondaryAddress     = "addresses.secondary_address"
	Division             = "addresses.division"
	DivisionAbbreviation = "addresses.division_abbreviation" // en_us only
	PostalCode           = "addresses.postal_code"
	Address              = "addresses.address"

	CompanyName = "company.company_name"
	Slogan      = "company.slogan" // en_us only

	Domain   = "internet.domain"
	Username = "internet.username"
	Email    = "internet.email"

	PhoneNumber = "phones.phone_number"
)
