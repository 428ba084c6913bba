package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		name           string
		template       string
		wantValid      bool
		missingBuyer   []string
		missingListing []string
	}{
		{
			name:      "Default prompt is valid",
			template:  DefaultSystemPrompt,
			wantValid: true,
		},
		{
			name:      "All tokens present",
			template:  "Hi {{buyer_name}}, given {{buyer_preferences}} consider {{listing_details}}",
			wantValid: true,
		},
		{
			name:           "Missing all buyer tokens",
			template:       "Listing: {{listing_details}}",
			wantValid:      false,
			missingBuyer:   []string{"{{buyer_name}}", "{{buyer_preferences}}"},
			missingListing: nil,
		},
		{
			name:           "Missing listing tokens",
			template:       "Hi {{buyer_name}}, you want {{buyer_preferences}}",
			wantValid:      false,
			missingListing: []string{"{{listing_details}}"},
		},
		{
			name:           "Empty template missing everything",
			template:       "",
			wantValid:      false,
			missingBuyer:   []string{"{{buyer_name}}", "{{buyer_preferences}}"},
			missingListing: []string{"{{listing_details}}"},
		},
		{
			name:         "Partial buyer tokens",
			template:     "Hi {{buyer_name}}, here is {{listing_details}}",
			wantValid:    false,
			missingBuyer: []string{"{{buyer_preferences}}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateTemplate(tt.template)
			assert.Equal(t, tt.wantValid, result.IsValid)
			assert.Equal(t, tt.missingBuyer, result.MissingBuyer)
			assert.Equal(t, tt.missingListing, result.MissingListing)
		})
	}
}
