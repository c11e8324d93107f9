// Package collection holds the testimonial collection store: the ordered
// list of records of one block plus the single editing session that marks
// which record is open in the editor overlay.
package collection

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pluqqy/testimonials/pkg/models"
)

var (
	ErrIndexOutOfRange = errors.New("testimonial index out of range")
	ErrNoSession       = errors.New("no testimonial is open for editing")
)

// Session describes the editing session. Open is false in the Closed
// state; Index is only meaningful while Open.
type Session struct {
	Index int
	Open  bool
}

// Snapshot is a consistent view of the block for rendering
type Snapshot struct {
	Attributes models.Attributes
	Session    Session
}

// Open returns the record being edited, if any
func (s Snapshot) Open() (models.Testimonial, bool) {
	if !s.Session.Open || !s.Attributes.Testimonials.Valid(s.Session.Index) {
		return models.Testimonial{}, false
	}
	return s.Attributes.Testimonials[s.Session.Index], true
}

// Store applies editing intents to the attribute bag of a Host. All
// operations run to completion synchronously; callers must not share a
// Store between goroutines.
type Store struct {
	host      Host
	openIndex int
	open      bool
	logger    *zap.Logger
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for discard and stale-callback events
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a store over host with the session Closed
func NewStore(host Host, opts ...Option) *Store {
	s := &Store{
		host:   host,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) testimonials() models.Collection {
	return s.host.Attributes().Testimonials
}

func (s *Store) setTestimonials(c models.Collection) {
	s.host.SetAttributes(models.AttributesUpdate{Testimonials: &c})
}

// revalidate clears the session if the host shrank the collection under it
func (s *Store) revalidate() {
	if s.open && !s.testimonials().Valid(s.openIndex) {
		s.logger.Debug("closing stale editing session", zap.Int("index", s.openIndex))
		s.open = false
		s.openIndex = 0
	}
}

// Snapshot returns the current attributes and session
func (s *Store) Snapshot() Snapshot {
	s.revalidate()
	return Snapshot{
		Attributes: s.host.Attributes(),
		Session:    s.Session(),
	}
}

// Session returns the editing session state
func (s *Store) Session() Session {
	s.revalidate()
	if !s.open {
		return Session{}
	}
	return Session{Index: s.openIndex, Open: true}
}

// OpenIndex returns the index of the record being edited
func (s *Store) OpenIndex() (int, bool) {
	sess := s.Session()
	return sess.Index, sess.Open
}

// Len returns the number of records
func (s *Store) Len() int {
	return len(s.testimonials())
}

// AddTestimonial appends a blank record and opens it for editing
func (s *Store) AddTestimonial() int {
	next := s.testimonials().Append(models.NewTestimonial())
	s.setTestimonials(next)
	s.openIndex = len(next) - 1
	s.open = true
	return s.openIndex
}

// OpenEditingSession opens the record at index in the editor
func (s *Store) OpenEditingSession(index int) error {
	if !s.testimonials().Valid(index) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	s.openIndex = index
	s.open = true
	return nil
}

// UpdateField replaces the record at index with a copy that has field set
// to value. Sibling records are carried over untouched.
func (s *Store) UpdateField(index int, field models.Field, value string) error {
	current := s.testimonials()
	if !current.Valid(index) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	updated, err := current[index].With(field, value)
	if err != nil {
		return err
	}
	s.setTestimonials(current.Replace(index, updated))
	return nil
}

// SetRating stores a clamped rating on the record at index
func (s *Store) SetRating(index, rating int) error {
	return s.UpdateField(index, models.FieldRating, fmt.Sprint(models.ClampRating(rating)))
}

// RemoveTestimonial deletes the record at index. The open record keeps
// pointing at the same logical entry; removing it closes the session.
func (s *Store) RemoveTestimonial(index int) error {
	current := s.testimonials()
	if !current.Valid(index) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	s.setTestimonials(current.Remove(index))

	if s.open {
		switch {
		case index == s.openIndex:
			s.open = false
			s.openIndex = 0
		case index < s.openIndex:
			s.openIndex--
		}
	}
	return nil
}

// CloseEditingSession closes the editor. A record without author or quote
// is discarded; the return value reports whether that happened.
func (s *Store) CloseEditingSession() bool {
	index, ok := s.OpenIndex()
	if !ok {
		return false
	}

	record := s.testimonials()[index]
	s.open = false
	s.openIndex = 0

	if record.Complete() {
		return false
	}

	s.setTestimonials(s.testimonials().Remove(index))
	s.logger.Debug("discarded incomplete testimonial",
		zap.Int("index", index),
		zap.Bool("has_author", record.Author != ""),
		zap.Bool("has_quote", record.Quote != ""))
	return true
}

// SetStyle switches the display variant
func (s *Store) SetStyle(style models.Style) {
	s.host.SetAttributes(models.AttributesUpdate{Style: &style})
}

// SetHeading sets the block heading. An empty heading is valid.
func (s *Store) SetHeading(text string) {
	s.host.SetAttributes(models.AttributesUpdate{HeadingBlock: &text})
}

// ApplyImage writes media.URL to the record at index. The index must be
// the one captured when the picker was opened; if the collection no longer
// has it the call is a no-op.
func (s *Store) ApplyImage(index int, media Media) error {
	if err := s.UpdateField(index, models.FieldImage, media.URL); err != nil {
		s.logger.Debug("dropping image selection",
			zap.Int("index", index),
			zap.String("url", media.URL),
			zap.Error(err))
		return err
	}
	return nil
}

// ImageCallback returns the write-back for an image request targeting
// index. The index is bound now, not looked up when the callback runs.
func (s *Store) ImageCallback(index int) func(Media) error {
	return func(media Media) error {
		return s.ApplyImage(index, media)
	}
}

// PickImage runs picker for the open record and writes the result back to
// the record that was open when the request started.
func (s *Store) PickImage(ctx context.Context, picker ImagePicker) error {
	index, ok := s.OpenIndex()
	if !ok {
		return ErrNoSession
	}
	apply := s.ImageCallback(index)

	media, err := picker.Pick(ctx)
	if err != nil {
		return fmt.Errorf("failed to pick image: %w", err)
	}
	return apply(media)
}
