package ai

// EntityTypes defines the entity categories relevant to resume matching:
// employers and institutions, locations, and facilities. Extractors must
// restrict their output to spans of these types.
var EntityTypes = []string{
	"organization",
	"geo_political_entity",
	"facility",
}
