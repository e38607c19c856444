package models

// HeroID is the fixed id of the single hero_settings row.
const HeroID = 1

type SocialPlatform string

const (
	PlatformInstagram SocialPlatform = "instagram"
	PlatformLinkedin  SocialPlatform = "linkedin"
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformWhatsapp  SocialPlatform = "whatsapp"
	PlatformX         SocialPlatform = "x"
)

// HeroSettings configures the landing banner. DimIntensity is the overlay
// opacity in [0,1]; the frontend renders the background at 1-DimIntensity.
// SocialLinks and SocialURLs share the same key set; an enabled platform with
// an empty URL is legal and renders a dead link.
type HeroSettings struct {
	ID           int                       `json:"id"`
	BgImageURL   *string                   `json:"bgImageUrl"`
	Title        *string                   `json:"title"`
	DimIntensity float64                   `json:"dimIntensity"`
	SocialLinks  map[SocialPlatform]bool   `json:"socialLinks"`
	SocialURLs   map[SocialPlatform]string `json:"socialUrls"`
}

type HeroPatch struct {
	ID           int                       `json:"id,omitempty"`
	BgImageURL   Field[string]             `json:"bgImageUrl"`
	Title        Field[string]             `json:"title"`
	DimIntensity Field[float64]            `json:"dimIntensity"`
	SocialLinks  map[SocialPlatform]bool   `json:"socialLinks,omitempty"`
	SocialURLs   map[SocialPlatform]string `json:"socialUrls,omitempty"`
}

const defaultHeroBgImageURL = "https://images.unsplash.com/photo-1547891654-e66ed7ebb968?q=80&w=2070&auto=format&fit=crop"

// DefaultHeroSettings is the banner served when the settings row is missing
// or unreadable; the landing page must never be blocked by a storage failure.
func DefaultHeroSettings() HeroSettings {
	bg := defaultHeroBgImageURL
	title := "Art Portfolio"

	return HeroSettings{
		ID:           HeroID,
		BgImageURL:   &bg,
		Title:        &title,
		DimIntensity: 0.4,
		SocialLinks: map[SocialPlatform]bool{
			PlatformInstagram: true,
			PlatformLinkedin:  true,
			PlatformFacebook:  false,
			PlatformWhatsapp:  false,
			PlatformX:         false,
		},
		SocialURLs: map[SocialPlatform]string{
			PlatformInstagram: "",
			PlatformLinkedin:  "",
			PlatformFacebook:  "",
			PlatformWhatsapp:  "",
			PlatformX:         "",
		},
	}
}
