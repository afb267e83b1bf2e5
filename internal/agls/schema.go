package agls

// LinkSchema emits <link rel="Name" href="Href" />.
type LinkSchema struct {
	Name string `yaml:"name" json:"name"`
	Href string `yaml:"href" json:"href"`
}

// MetaSchema emits <meta name="Name" scheme="Scheme" content="..." />, where the
// content is read from the page property named by Property.
type MetaSchema struct {
	Name     string `yaml:"name" json:"name"`
	Property string `yaml:"property,omitempty" json:"property,omitempty"`
	Scheme   string `yaml:"scheme,omitempty" json:"scheme,omitempty"`
}

// DateFormats are the per page type layouts for the created and modified tags.
type DateFormats struct {
	Created  string `yaml:"created_format" json:"created_format,omitempty"`
	Modified string `yaml:"modified_format" json:"modified_format,omitempty"`
}

// DefaultSchemas is the standard AGLS namespace declaration.
func DefaultSchemas() []LinkSchema {
	return []LinkSchema{
		{Name: "schema.AGLSTERMS", Href: "http://www.agls.gov.au/agls/terms/"},
		{Name: "schema.DCTERMS", Href: "http://purl.org/dc/terms/"},
	}
}

// DefaultMetadata is the standard set of mandatory and recommended AGLS properties.
func DefaultMetadata() []MetaSchema {
	return []MetaSchema{
		{Name: "DCTERMS.creator", Property: PropCreator, Scheme: "AGLSTERMS.GOLD"},
		{Name: "DCTERMS.publisher", Property: PropPublisher, Scheme: "AGLSTERMS.AglsAgent"},
		{Name: "DCTERMS.title", Property: PropTitle},
		{Name: "DCTERMS.subject", Property: PropSubject},
		{Name: "DCTERMS.created", Property: PropCreated, Scheme: "DCTERMS.ISO8601"},
		{Name: "DCTERMS.modified", Property: PropModified, Scheme: "DCTERMS.ISO8601"},
		{Name: "DCTERMS.identifier", Property: PropIdentifier, Scheme: "DCTERMS.URI"},
		{Name: "DCTERMS.description", Property: PropDescription},
		{Name: "DCTERMS.language", Property: PropLanguage, Scheme: "DCTERMS.RFC4646"},
		{Name: "AGLSTERMS.aggregationLevel", Property: PropAggregationLevel},
	}
}
