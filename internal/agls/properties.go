package agls

import "sort"

// Property keys accepted by MetaSchema.Property.
const (
	PropCreator          = "creator"
	PropPublisher        = "publisher"
	PropTitle            = "title"
	PropSubject          = "subject"
	PropCreated          = "created"
	PropCreatedFormat    = "createdFormat"
	PropModified         = "modified"
	PropModifiedFormat   = "modifiedFormat"
	PropIdentifier       = "identifier"
	PropDescription      = "description"
	PropLanguage         = "language"
	PropAggregationLevel = "aggregationLevel"
)

var properties = map[string]func(*Page) string{
	PropCreator:          (*Page).Creator,
	PropPublisher:        (*Page).Publisher,
	PropTitle:            (*Page).Title,
	PropSubject:          (*Page).Subject,
	PropCreated:          func(p *Page) string { return p.CreatedFormatted("") },
	PropCreatedFormat:    (*Page).CreatedFormat,
	PropModified:         func(p *Page) string { return p.ModifiedFormatted("") },
	PropModifiedFormat:   (*Page).ModifiedFormat,
	PropIdentifier:       (*Page).Identifier,
	PropDescription:      (*Page).Description,
	PropLanguage:         (*Page).Language,
	PropAggregationLevel: (*Page).AggregationLevel,
}

// Property answers the value of the named property and whether the name is known.
func (p *Page) Property(name string) (string, bool) {
	fn, ok := properties[name]
	if !ok {
		return "", false
	}
	return fn(p), true
}

// Properties answers every known property value keyed by name.
func (p *Page) Properties() map[string]string {
	out := make(map[string]string, len(properties))
	for name, fn := range properties {
		out[name] = fn(p)
	}
	return out
}

// PropertyNames lists the known property keys in sorted order.
func PropertyNames() []string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsProperty reports whether name is a known property key.
func IsProperty(name string) bool {
	_, ok := properties[name]
	return ok
}
