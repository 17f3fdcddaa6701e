package models

// NavigationLink is a single navigation or social entry.
type NavigationLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Contact holds the phone/email pair shown in the site header.
type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Header is the site header section: logo, contact info and navigation.
type Header struct {
	LogoURL         string           `json:"logoUrl"`
	Contact         Contact          `json:"contact"`
	NavigationLinks []NavigationLink `json:"navigationLinks"`
}

// Banner is the main landing banner.
type Banner struct {
	ImageURL string `json:"imageUrl"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// HeroText is the hero section copy.
type HeroText struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	ButtonText string `json:"buttonText"`
}

// Footer is the site footer section.
type Footer struct {
	AboutText   string           `json:"aboutText"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Address     string           `json:"address"`
	SocialLinks []NavigationLink `json:"socialLinks"`
}

// Initiative is a single initiative card shown on the site.
type Initiative struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	CreatedAt   string `json:"createdAt"`
}
