// Package catalog is the static content of the portal: subjects with their
// topics, chapters and quizzes, plus the campus records shown by the
// read-only views.
package catalog

import (
	"slices"
	"time"
)

// Catalog is a read-only data provider. Accessors return copies of slices so
// callers cannot mutate the seed.
type Catalog struct {
	chapterTopic map[string]*Topic
	chapters     map[string]*Chapter
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c := &Catalog{
		chapterTopic: make(map[string]*Topic),
		chapters:     make(map[string]*Chapter),
	}
	for si := range subjects {
		for ti := range subjects[si].Topics {
			t := &subjects[si].Topics[ti]
			for ci := range t.Chapters {
				ch := &t.Chapters[ci]
				c.chapters[ch.ID] = ch
				c.chapterTopic[ch.ID] = t
			}
		}
	}
	return c
}

// Subjects returns all subjects in display order.
func (c *Catalog) Subjects() []Subject {
	return slices.Clone(subjects)
}

// Subject looks up a subject by id.
func (c *Catalog) Subject(id string) (Subject, bool) {
	for _, s := range subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// Chapter looks up a chapter by id.
func (c *Catalog) Chapter(id string) (Chapter, bool) {
	ch, ok := c.chapters[id]
	if !ok {
		return Chapter{}, false
	}
	return *ch, true
}

// TopicOf returns the topic that owns a chapter.
func (c *Catalog) TopicOf(chapterID string) (Topic, bool) {
	t, ok := c.chapterTopic[chapterID]
	if !ok {
		return Topic{}, false
	}
	return *t, true
}

// Books lists every book across subjects.
func (c *Catalog) Books() []Book {
	var out []Book
	for _, s := range subjects {
		out = append(out, s.Books...)
	}
	return out
}

// Videos lists every lecture video across subjects.
func (c *Catalog) Videos() []Video {
	var out []Video
	for _, s := range subjects {
		out = append(out, s.Videos...)
	}
	return out
}

// CalendarEvents returns events ordered by date.
func (c *Catalog) CalendarEvents() []CalendarEvent {
	out := slices.Clone(calendarEvents)
	slices.SortStableFunc(out, func(a, b CalendarEvent) int { return a.Date.Compare(b.Date) })
	return out
}

// Notices returns notice-board posts, newest first.
func (c *Catalog) Notices() []Notice {
	out := slices.Clone(notices)
	slices.SortStableFunc(out, func(a, b Notice) int { return b.Date.Compare(a.Date) })
	return out
}

// Hostel returns the accommodation record.
func (c *Catalog) Hostel() HostelInfo {
	h := hostel
	h.Roommates = slices.Clone(hostel.Roommates)
	return h
}

// MessMenu returns the meals for a weekday.
func (c *Catalog) MessMenu(day time.Weekday) []string {
	return slices.Clone(hostel.MessMenu[day])
}

// ClinicalDuties returns ward postings.
func (c *Catalog) ClinicalDuties() []ClinicalDuty {
	return slices.Clone(clinicalDuties)
}

// Fees returns the fee history.
func (c *Catalog) Fees() []FeeRecord {
	return slices.Clone(fees)
}

// Tasks returns the simulation exercises.
func (c *Catalog) Tasks() []AnatomyTask {
	return slices.Clone(tasks)
}

// Performance returns simulation task statistics.
func (c *Catalog) Performance() []TaskPerformance {
	return slices.Clone(performance)
}

// TopicCount is the number of topics across all subjects.
func (c *Catalog) TopicCount() int {
	n := 0
	for _, s := range subjects {
		n += len(s.Topics)
	}
	return n
}
