package model

// ProposalProfile defines the letterhead and footer used when rendering a
// client-facing proposal.
type ProposalProfile struct {
	Name        string `json:"name"`        // Profile name
	CompanyName string `json:"company_name"`
	Tagline     string `json:"tagline"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	License     string `json:"license"`

	FooterText   string `json:"footer_text"`
	TermsText    string `json:"terms_text"`
	ShowQRCode   bool   `json:"show_qr_code"`   // Embed a share QR on the proposal
	AccentColorR int    `json:"accent_color_r"` // Header accent color
	AccentColorG int    `json:"accent_color_g"`
	AccentColorB int    `json:"accent_color_b"`
	IsBuiltIn    bool   `json:"is_built_in"`
}

// Built-in proposal profiles.
var ProposalProfiles = []ProposalProfile{
	{
		Name:         "Classic",
		CompanyName:  "Your Painting Company",
		Tagline:      "Interior Painting Specialists",
		FooterText:   "Thank you for the opportunity to quote your project.",
		TermsText:    "Quote valid for 30 days. 50% deposit due at scheduling.",
		ShowQRCode:   true,
		AccentColorR: 41, AccentColorG: 98, AccentColorB: 255,
		IsBuiltIn:    true,
	},
	{
		Name:         "Minimal",
		CompanyName:  "Your Painting Company",
		FooterText:   "",
		TermsText:    "Quote valid for 30 days.",
		ShowQRCode:   false,
		AccentColorR: 60, AccentColorG: 60, AccentColorB: 60,
		IsBuiltIn:    true,
	},
}

// GetProposalProfile returns a built-in profile by name, or the first
// (Classic) profile if not found.
func GetProposalProfile(name string) ProposalProfile {
	for _, p := range ProposalProfiles {
		if p.Name == name {
			return p
		}
	}
	return ProposalProfiles[0]
}

// ProposalProfileNames returns a list of all built-in profile names.
func ProposalProfileNames() []string {
	var names []string
	for _, p := range ProposalProfiles {
		names = append(names, p.Name)
	}
	return names
}
