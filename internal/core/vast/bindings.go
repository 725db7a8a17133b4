package vast

import "vast-core/internal/core/domain"

// Binding tables for every modeled VAST element. They are built once at
// package initialisation and only ever read afterwards.

const rootTag = "VAST"

var vastTable = table[domain.VAST]{rules: []rule[domain.VAST]{
	attr("version", func(v *domain.VAST) *string { return &v.Version }),
	attr("sequence", func(v *domain.VAST) *string { return &v.Sequence }),
	nestedList("Ad", "id", &adTable, func(v *domain.VAST) *[]domain.Ad { return &v.Ads }),
	childText("Error", optional, func(v *domain.VAST) *string { return &v.Error }),
}}

var adTable = table[domain.Ad]{rules: []rule[domain.Ad]{
	attr("id", func(a *domain.Ad) *string { return &a.ID }),
	attr("sequence", func(a *domain.Ad) *string { return &a.Sequence }),
	adDetailRule{},
	childText("Error", optional, func(a *domain.Ad) *string { return &a.Error }),
}}

var wrapperTable = table[domain.Wrapper]{rules: []rule[domain.Wrapper]{
	attr("followAdditionalWrappers", func(w *domain.Wrapper) *string { return &w.FollowAdditionalWrappers }),
	attr("allowMultipleAds", func(w *domain.Wrapper) *string { return &w.AllowMultipleAds }),
	attr("fallbackOnNoAd", func(w *domain.Wrapper) *string { return &w.FallbackOnNoAd }),
	childText("AdSystem", requiredText, func(w *domain.Wrapper) *string { return &w.AdSystem }),
	childText("VASTAdTagURI", requiredText, func(w *domain.Wrapper) *string { return &w.VASTAdTagURI }),
	nestedList("Impression", "", &impressionTable, func(w *domain.Wrapper) *[]domain.Impression { return &w.Impressions }),
	childText("Error", optional, func(w *domain.Wrapper) *string { return &w.Error }),
	raw("Creatives", func(w *domain.Wrapper) *domain.RawXML { return &w.Creatives }),
	raw("Extensions", func(w *domain.Wrapper) *domain.RawXML { return &w.Extensions }),
}}

var inLineTable = table[domain.InLine]{rules: []rule[domain.InLine]{
	nested("AdSystem", required, &adSystemTable, func(l *domain.InLine) *domain.AdSystem { return &l.AdSystem }),
	childText("AdTitle", required, func(l *domain.InLine) *string { return &l.AdTitle }),
	nestedList("Impression", "", &impressionTable, func(l *domain.InLine) *[]domain.Impression { return &l.Impressions }),
	nested("Creatives", optional, &creativesTable, func(l *domain.InLine) *domain.Creatives { return &l.Creatives }),
	childText("Description", optional, func(l *domain.InLine) *string { return &l.Description }),
	childText("Advertiser", optional, func(l *domain.InLine) *string { return &l.Advertiser }),
	nestedList("Survey", "", &surveyTable, func(l *domain.InLine) *[]domain.Survey { return &l.Surveys }),
	childText("Error", optional, func(l *domain.InLine) *string { return &l.Error }),
	nested("Pricing", optional, &pricingTable, func(l *domain.InLine) *domain.Pricing { return &l.Pricing }),
	nested("Extensions", optional, &extensionsTable, func(l *domain.InLine) *domain.Extensions { return &l.Extensions }),
}}

var adSystemTable = table[domain.AdSystem]{rules: []rule[domain.AdSystem]{
	attr("version", func(s *domain.AdSystem) *string { return &s.Version }),
	text(func(s *domain.AdSystem) *string { return &s.Name }),
}}

var impressionTable = table[domain.Impression]{rules: []rule[domain.Impression]{
	attr("id", func(i *domain.Impression) *string { return &i.ID }),
	text(func(i *domain.Impression) *string { return &i.URL }),
}}

var surveyTable = table[domain.Survey]{rules: []rule[domain.Survey]{
	attr("type", func(s *domain.Survey) *string { return &s.Type }),
	text(func(s *domain.Survey) *string { return &s.Value }),
}}

var pricingTable = table[domain.Pricing]{rules: []rule[domain.Pricing]{
	attr("model", func(p *domain.Pricing) *string { return &p.Model }),
	attr("currency", func(p *domain.Pricing) *string { return &p.Currency }),
	text(func(p *domain.Pricing) *string { return &p.Value }),
}}

var extensionsTable = table[domain.Extensions]{rules: []rule[domain.Extensions]{
	nestedList("Extension", "", &extensionTable, func(e *domain.Extensions) *[]domain.Extension { return &e.Extension }),
}}

var extensionTable = table[domain.Extension]{rules: []rule[domain.Extension]{
	attr("type", func(e *domain.Extension) *string { return &e.Type }),
	text(func(e *domain.Extension) *string { return &e.Value }),
	rawList("", func(e *domain.Extension) *[]domain.RawXML { return &e.Elements }),
}}

var creativesTable = table[domain.Creatives]{rules: []rule[domain.Creatives]{
	nestedList("Creative", "id", &creativeTable, func(c *domain.Creatives) *[]domain.Creative { return &c.Creative }),
}}

var creativeTable = table[domain.Creative]{rules: []rule[domain.Creative]{
	attr("id", func(c *domain.Creative) *string { return &c.ID }),
	attr("sequence", func(c *domain.Creative) *string { return &c.Sequence }),
	attr("AdID", func(c *domain.Creative) *string { return &c.AdID }),
	attr("apiFramework", func(c *domain.Creative) *string { return &c.APIFramework }),
	nested("Linear", optional, &linearTable, func(c *domain.Creative) *domain.Linear { return &c.Linear }),
	raw("NonLinear", func(c *domain.Creative) *domain.RawXML { return &c.NonLinear }),
	raw("CompanionAds", func(c *domain.Creative) *domain.RawXML { return &c.CompanionAds }),
	nested("CreativeExtensions", optional, &creativeExtensionsTable,
		func(c *domain.Creative) *[]domain.CreativeExtension { return &c.CreativeExtensions }),
}}

// The <CreativeExtensions> container is flattened into the Creative.
var creativeExtensionsTable = table[[]domain.CreativeExtension]{rules: []rule[[]domain.CreativeExtension]{
	nestedList("CreativeExtension", "", &creativeExtensionTable,
		func(l *[]domain.CreativeExtension) *[]domain.CreativeExtension { return l }),
}}

var creativeExtensionTable = table[domain.CreativeExtension]{rules: []rule[domain.CreativeExtension]{
	attr("type", func(e *domain.CreativeExtension) *string { return &e.Type }),
	text(func(e *domain.CreativeExtension) *string { return &e.Value }),
	rawList("", func(e *domain.CreativeExtension) *[]domain.RawXML { return &e.Elements }),
}}

var linearTable = table[domain.Linear]{rules: []rule[domain.Linear]{
	attr("skipoffset", func(l *domain.Linear) *string { return &l.SkipOffset }),
	childText("Duration", required, func(l *domain.Linear) *string { return &l.Duration }),
	nested("MediaFiles", required, &mediaFilesTable, func(l *domain.Linear) *domain.MediaFiles { return &l.MediaFiles }),
	nested("TrackingEvents", optional, &trackingEventsTable, func(l *domain.Linear) *domain.TrackingEvents { return &l.TrackingEvents }),
	nested("VideoClicks", optional, &videoClicksTable, func(l *domain.Linear) *domain.VideoClicks { return &l.VideoClicks }),
	nested("AdParameters", optional, &adParametersTable, func(l *domain.Linear) *domain.AdParameters { return &l.AdParameters }),
	raw("Icons", func(l *domain.Linear) *domain.RawXML { return &l.Icons }),
}}

var mediaFilesTable = table[domain.MediaFiles]{rules: []rule[domain.MediaFiles]{
	nestedList("MediaFile", "", &mediaFileTable, func(m *domain.MediaFiles) *[]domain.MediaFile { return &m.MediaFile }),
}}

var mediaFileTable = table[domain.MediaFile]{rules: []rule[domain.MediaFile]{
	attr("delivery", func(m *domain.MediaFile) *string { return &m.Delivery }),
	attr("type", func(m *domain.MediaFile) *string { return &m.Type }),
	attr("width", func(m *domain.MediaFile) *string { return &m.Width }),
	attr("height", func(m *domain.MediaFile) *string { return &m.Height }),
	attr("codec", func(m *domain.MediaFile) *string { return &m.Codec }),
	attr("bitrate", func(m *domain.MediaFile) *string { return &m.Bitrate }),
	attr("minBitrate", func(m *domain.MediaFile) *string { return &m.MinBitrate }),
	attr("maxBitrate", func(m *domain.MediaFile) *string { return &m.MaxBitrate }),
	attr("scalable", func(m *domain.MediaFile) *string { return &m.Scalable }),
	attr("maintainAspectRatio", func(m *domain.MediaFile) *string { return &m.MaintainAspectRatio }),
	attr("apiFramework", func(m *domain.MediaFile) *string { return &m.APIFramework }),
	text(func(m *domain.MediaFile) *string { return &m.URL }),
}}

var trackingEventsTable = table[domain.TrackingEvents]{rules: []rule[domain.TrackingEvents]{
	nestedList("Tracking", "", &trackingTable, func(t *domain.TrackingEvents) *[]domain.Tracking { return &t.Tracking }),
}}

var trackingTable = table[domain.Tracking]{rules: []rule[domain.Tracking]{
	attr("event", func(t *domain.Tracking) *string { return &t.Event }),
	text(func(t *domain.Tracking) *string { return &t.URL }),
}}

var videoClicksTable = table[domain.VideoClicks]{rules: []rule[domain.VideoClicks]{
	childText("ClickThrough", optional, func(v *domain.VideoClicks) *string { return &v.ClickThrough }),
	rawList("ClickTracking", func(v *domain.VideoClicks) *[]domain.RawXML { return &v.ClickTracking }),
	rawList("CustomClick", func(v *domain.VideoClicks) *[]domain.RawXML { return &v.CustomClick }),
}}

var adParametersTable = table[domain.AdParameters]{rules: []rule[domain.AdParameters]{
	attr("xmlEncoded", func(a *domain.AdParameters) *string { return &a.XMLEncoded }),
	text(func(a *domain.AdParameters) *string { return &a.Data }),
}}
