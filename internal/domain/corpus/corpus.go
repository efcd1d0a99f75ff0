// Package corpus holds the ordered text corpus submitted to the vectorizer.
package corpus

import (
	"github.com/LBuyana/talentflow-app/internal/domain/job"
	"github.com/LBuyana/talentflow-app/internal/domain/seeker"
)

// Type is the kind of entity behind a corpus document.
type Type string

const (
	// TypeJob marks a job posting document.
	TypeJob Type = "job"
	// TypeSeeker marks a seeker profile document.
	TypeSeeker Type = "seeker"
)

// Opposite returns the type recommendations are drawn from for a query of type t.
func (t Type) Opposite() Type {
	if t == TypeJob {
		return TypeSeeker
	}
	return TypeJob
}

// Document identifies one corpus entry and keeps the record it was built from.
type Document struct {
	id     string
	typ    Type
	job    *job.Posting
	seeker *seeker.Profile
}

// NewJobDocument wraps a job posting.
func NewJobDocument(p job.Posting) Document {
	return Document{id: p.ID, typ: TypeJob, job: &p}
}

// NewSeekerDocument wraps a seeker profile.
func NewSeekerDocument(p seeker.Profile) Document {
	return Document{id: p.ProfileID, typ: TypeSeeker, seeker: &p}
}

// ID returns the entity id.
func (d *Document) ID() string { return d.id }

// Type returns the entity type.
func (d *Document) Type() Type { return d.typ }

// Job returns the job record, or nil for seeker documents.
func (d *Document) Job() *job.Posting { return d.job }

// Seeker returns the seeker record, or nil for job documents.
func (d *Document) Seeker() *seeker.Profile { return d.seeker }

// Corpus is a pair of parallel slices: Texts[i] is the blob of Documents[i].
type Corpus struct {
	Texts     []string
	Documents []Document
}

// New allocates a corpus with room for n documents.
func New(n int) Corpus {
	return Corpus{
		Texts:     make([]string, 0, n),
		Documents: make([]Document, 0, n),
	}
}

// Add appends a document and its text, keeping both slices aligned.
func (c *Corpus) Add(text string, doc Document) {
	c.Texts = append(c.Texts, text)
	c.Documents = append(c.Documents, doc)
}

// Len returns the number of documents.
func (c *Corpus) Len() int { return len(c.Documents) }

// IndexOf returns the position of the document with the given id and type.
func (c *Corpus) IndexOf(id string, t Type) (int, bool) {
	for i := range c.Documents {
		if c.Documents[i].id == id && c.Documents[i].typ == t {
			return i, true
		}
	}
	return -1, false
}

// Count returns the number of documents of type t.
func (c *Corpus) Count(t Type) int {
	n := 0
	for i := range c.Documents {
		if c.Documents[i].typ == t {
			n++
		}
	}
	return n
}
