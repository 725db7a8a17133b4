package domain

import (
	"strconv"
	"strings"
)

// Creatives is the container of an InLine ad's creatives.
type Creatives struct {
	Creative []Creative `json:"creative"`
}

// Creative is a playable asset definition. Only the Linear creative type is
// modeled; NonLinear and CompanionAds are carried as raw markup.
type Creative struct {
	ID                 string              `json:"id"`
	Sequence           string              `json:"sequence"`
	AdID               string              `json:"adId"`
	APIFramework       string              `json:"apiFramework"`
	Linear             Linear              `json:"linear"`
	NonLinear          RawXML              `json:"nonLinear"`
	CompanionAds       RawXML              `json:"companionAds"`
	CreativeExtensions []CreativeExtension `json:"creativeExtensions"`
}

// CreativeExtension is a vendor extension attached to a creative.
type CreativeExtension struct {
	Type     string   `json:"type"`
	Value    string   `json:"value"`
	Elements []RawXML `json:"elements"`
}

// Linear is a linear (in-stream) video creative.
type Linear struct {
	SkipOffset     string         `json:"skipOffset"`
	Duration       string         `json:"duration"` // HH:MM:SS or HH:MM:SS.mmm
	MediaFiles     MediaFiles     `json:"mediaFiles"`
	TrackingEvents TrackingEvents `json:"trackingEvents"`
	VideoClicks    VideoClicks    `json:"videoClicks"`
	AdParameters   AdParameters   `json:"adParameters"`
	Icons          RawXML         `json:"icons"`
}

// DurationSeconds converts Duration to whole seconds, dropping milliseconds.
// It returns false when Duration is not in HH:MM:SS form.
func (l Linear) DurationSeconds() (int, bool) {
	d := strings.TrimSpace(l.Duration)
	if i := strings.IndexByte(d, '.'); i != -1 {
		d = d[:i]
	}
	parts := strings.Split(d, ":")
	if len(parts) != 3 {
		return 0, false
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}

// MediaFiles is the container of a Linear creative's media files.
type MediaFiles struct {
	MediaFile []MediaFile `json:"mediaFile"`
}

// MediaFile references one encoding of the creative asset. URL is the
// element's text content. Numeric and boolean attributes are kept verbatim.
type MediaFile struct {
	Delivery            string `json:"delivery"`
	Type                string `json:"type"`
	Width               string `json:"width"`
	Height              string `json:"height"`
	Codec               string `json:"codec"`
	Bitrate             string `json:"bitrate"`
	MinBitrate          string `json:"minBitrate"`
	MaxBitrate          string `json:"maxBitrate"`
	Scalable            string `json:"scalable"`
	MaintainAspectRatio string `json:"maintainAspectRatio"`
	APIFramework        string `json:"apiFramework"`
	URL                 string `json:"url"`
}

type TrackingEvents struct {
	Tracking []Tracking `json:"tracking"`
}

// Tracking is a URI requested when the named event occurs.
type Tracking struct {
	Event string `json:"event"`
	URL   string `json:"url"`
}

type VideoClicks struct {
	ClickThrough  string   `json:"clickThrough"`
	ClickTracking []RawXML `json:"clickTracking"`
	CustomClick   []RawXML `json:"customClick"`
}

// AdParameters is opaque data passed to an interactive creative.
type AdParameters struct {
	XMLEncoded string `json:"xmlEncoded"`
	Data       string `json:"data"`
}
