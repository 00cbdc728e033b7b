package view

import "github.com/acmchapter/chapterdesk/internal/client/services"

// SearchResults prints both halves; a failed half is reported in place.
func (p *Printer) SearchResults(res services.SearchResults) {
	p.Section("Blogs")
	if res.BlogsErr != nil {
		p.Error("Blogs unavailable: " + res.BlogsErr.Error())
	} else {
		p.Blogs(res.Blogs)
	}

	p.Section("Events")
	if res.EventsErr != nil {
		p.Error("Events unavailable: " + res.EventsErr.Error())
	} else {
		p.Events(res.Events)
	}
}
