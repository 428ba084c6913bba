package prompts

import "strings"

// DefaultSystemPrompt is the built-in template used when no stored default
// exists. It contains every required placeholder token.
const DefaultSystemPrompt = `You are a real-estate assistant writing personalized listing summaries for a buyer.

Buyer: {{buyer_name}}
What the buyer is looking for: {{buyer_preferences}}

Listing under review:
{{listing_details}}

Explain in two or three short paragraphs why this listing does or does not fit the buyer's criteria. Be specific about price, location and features. Do not invent details that are not present in the listing.`

// PlaceholderDoc describes a single substitution token.
type PlaceholderDoc struct {
	Token       string `json:"token"`
	Description string `json:"description"`
}

// PlaceholderDocs groups the documented tokens by category. Buyer and listing
// tokens are both required in any template.
type PlaceholderDocs struct {
	Buyer   []PlaceholderDoc `json:"buyer"`
	Listing []PlaceholderDoc `json:"listing"`
}

// DefaultPlaceholderDocs is the built-in placeholder documentation, returned
// when no stored row overrides it.
var DefaultPlaceholderDocs = PlaceholderDocs{
	Buyer: []PlaceholderDoc{
		{Token: "{{buyer_name}}", Description: "The buyer's display name"},
		{Token: "{{buyer_preferences}}", Description: "Free-text summary of the buyer's search criteria"},
	},
	Listing: []PlaceholderDoc{
		{Token: "{{listing_details}}", Description: "Structured details of the listing being evaluated"},
	},
}

// ValidationResult reports which required tokens a template is missing,
// grouped by category.
type ValidationResult struct {
	IsValid        bool
	MissingBuyer   []string
	MissingListing []string
}

// ValidateTemplate checks that the template contains every required buyer and
// listing placeholder token. Missing tokens are reported per category.
func ValidateTemplate(template string) ValidationResult {
	result := ValidationResult{}

	for _, doc := range DefaultPlaceholderDocs.Buyer {
		if !strings.Contains(template, doc.Token) {
			result.MissingBuyer = append(result.MissingBuyer, doc.Token)
		}
	}
	for _, doc := range DefaultPlaceholderDocs.Listing {
		if !strings.Contains(template, doc.Token) {
			result.MissingListing = append(result.MissingListing, doc.Token)
		}
	}

	result.IsValid = len(result.MissingBuyer) == 0 && len(result.MissingListing) == 0
	return result
}
