package domain

// Wrapper redirects the player to another VAST document at VASTAdTagURI.
// The boolean-looking attributes are kept as written in the document.
type Wrapper struct {
	FollowAdditionalWrappers string       `json:"followAdditionalWrappers"`
	AllowMultipleAds         string       `json:"allowMultipleAds"`
	FallbackOnNoAd           string       `json:"fallbackOnNoAd"`
	AdSystem                 string       `json:"adSystem"`
	VASTAdTagURI             string       `json:"vastAdTagURI"`
	Impressions              []Impression `json:"impressions"`
	Error                    string       `json:"error"`
	Creatives                RawXML       `json:"creatives"`
	Extensions               RawXML       `json:"extensions"`
}

func (*Wrapper) Kind() AdKind { return AdKindWrapper }
func (*Wrapper) adDetail()    {}

// InLine carries the complete creative and tracking data of an ad.
type InLine struct {
	AdSystem    AdSystem     `json:"adSystem"`
	AdTitle     string       `json:"adTitle"`
	Impressions []Impression `json:"impressions"`
	Creatives   Creatives    `json:"creatives"`
	Description string       `json:"description"`
	Advertiser  string       `json:"advertiser"`
	Surveys     []Survey     `json:"surveys"`
	Error       string       `json:"error"`
	Pricing     Pricing      `json:"pricing"`
	Extensions  Extensions   `json:"extensions"`
}

func (*InLine) Kind() AdKind { return AdKindInLine }
func (*InLine) adDetail()    {}

// AdSystem names the ad server that returned the ad.
type AdSystem struct {
	Version string `json:"version"`
	Name    string `json:"name"`
}

// Impression is a tracking URI requested when the ad is displayed.
type Impression struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Survey is a URI to a survey vendor. Type is the MIME type being served.
type Survey struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Pricing is the price the ad was bought at, as sent by the ad server.
type Pricing struct {
	Model    string `json:"model"`
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

// Extensions holds vendor specific extensions of an InLine ad.
type Extensions struct {
	Extension []Extension `json:"extension"`
}

// Extension is a single vendor extension. Its children are not interpreted;
// Value holds any text found directly inside it.
type Extension struct {
	Type     string   `json:"type"`
	Value    string   `json:"value"`
	Elements []RawXML `json:"elements"`
}
