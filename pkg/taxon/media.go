package taxon

import (
	"regexp"
	"strings"
)

// Media describes an image, a range map or a sound recording attached
// to a taxobox.
type Media struct {
	URL         string `json:"url"`
	Caption     string `json:"caption,omitempty"`
	Alt         string `json:"alt,omitempty"`
	Author      string `json:"author,omitempty"`
	License     string `json:"license,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	Source      string `json:"source,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// MediaPart enumerates the fields of Media that dialects can write.
type MediaPart int

const (
	MediaURL MediaPart = iota
	MediaCaption
	MediaAlt
	MediaAuthor
	MediaDescription
)

// Set writes val into the field designated by p.
func (m *Media) Set(p MediaPart, val string) {
	switch p {
	case MediaURL:
		m.URL = val
	case MediaCaption:
		m.Caption = val
	case MediaAlt:
		m.Alt = val
	case MediaAuthor:
		m.Author = val
	case MediaDescription:
		m.Description = val
	}
}

// MediaList is an auto-extending list of media items. Unlike Slots,
// repeated access to the same index keeps earlier writes.
type MediaList struct {
	items []*Media
}

// At returns the item at idx, creating it and any missing items below.
func (l *MediaList) At(idx int) *Media {
	for len(l.items) <= idx {
		l.items = append(l.items, nil)
	}
	if l.items[idx] == nil {
		l.items[idx] = &Media{}
	}
	return l.items[idx]
}

// Append adds a copy of m to the end of the list.
func (l *MediaList) Append(m Media) {
	l.items = append(l.items, &m)
}

// Len returns the number of items including empty ones.
func (l *MediaList) Len() int {
	return len(l.items)
}

// Items returns media that have a non-blank URL.
func (l *MediaList) Items() []Media {
	var res []Media
	for _, v := range l.items {
		if v != nil && strings.TrimSpace(v.URL) != "" {
			res = append(res, *v)
		}
	}
	return res
}

var imagemapRe = regexp.MustCompile(`^ *imagemap *File: *`)

func (l *MediaList) stripImagemap() {
	for _, v := range l.items {
		if v != nil && v.URL != "" {
			v.URL = imagemapRe.ReplaceAllString(v.URL, "")
		}
	}
}
