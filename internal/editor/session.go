// Package editor owns the editing session: the single in-memory résumé, its
// persisted mirror, live-preview notification and enrichment write-back.
package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-editor/internal/enrichment"
	"github.com/jonathan/resume-editor/internal/observability"
	"github.com/jonathan/resume-editor/internal/sections"
	"github.com/jonathan/resume-editor/internal/store"
	"github.com/jonathan/resume-editor/internal/types"
	"github.com/sirupsen/logrus"
)

// Mutation computes the next résumé from the current one. It receives a
// private copy; returning an error rejects the mutation.
type Mutation func(types.Resume) (types.Resume, error)

// Options configures a Session.
type Options struct {
	// Enricher serves the generate and analyze operations. Nil disables them.
	Enricher *enrichment.Enricher
	Logger   logrus.FieldLogger
	// NewID generates item identifiers. Defaults to random UUIDs.
	NewID func() string
}

// Session is the editing session. All mutations go through Apply, which
// replaces the whole résumé and saves it.
type Session struct {
	mu      sync.Mutex
	current types.Resume
	store   store.Store

	enricher *enrichment.Enricher
	logger   logrus.FieldLogger
	newID    func() string
	corrupt  error

	subsMu  sync.Mutex
	subs    map[int]chan types.Resume
	nextSub int
}

// Open loads the stored résumé and starts a session on it. Unreadable stored
// state is logged and the session starts from the empty résumé; see Corrupt.
func Open(ctx context.Context, st store.Store, opts Options) (*Session, error) {
	if opts.Logger == nil {
		opts.Logger = observability.Discard()
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return uuid.New().String() }
	}

	result, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	if result.Corrupt != nil {
		opts.Logger.WithError(result.Corrupt).Warn("stored resume is unreadable, starting from an empty resume")
	}

	return &Session{
		current:  result.Resume,
		store:    st,
		enricher: opts.Enricher,
		logger:   opts.Logger,
		newID:    opts.NewID,
		corrupt:  result.Corrupt,
		subs:     make(map[int]chan types.Resume),
	}, nil
}

// Corrupt returns the decode error if stored state was unreadable at Open.
func (s *Session) Corrupt() error {
	return s.corrupt
}

// Current returns a copy of the current résumé.
func (s *Session) Current() types.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Apply runs fn against the current résumé, installs the result and saves it.
// A rejected mutation leaves the session untouched. A failed save is reported
// as *SaveError while the new value stays current.
func (s *Session) Apply(ctx context.Context, fn Mutation) (types.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.current.Clone())
	if err != nil {
		return s.current.Clone(), err
	}
	s.current = next.Normalize()
	s.publish(s.current)

	if err := s.store.Save(ctx, s.current); err != nil {
		observability.LogError(s.logger, "failed to save resume", err, nil)
		return s.current.Clone(), &SaveError{Cause: err}
	}
	return s.current.Clone(), nil
}

// AddItem appends an empty item to a list section and returns its new id.
func (s *Session) AddItem(ctx context.Context, section types.Section) (string, types.Resume, error) {
	editor, err := sections.EditorFor(section)
	if err != nil {
		return "", s.Current(), err
	}
	id := s.newID()
	r, err := s.Apply(ctx, func(r types.Resume) (types.Resume, error) {
		return editor.Add(r, id), nil
	})
	if err == nil {
		s.logger.WithFields(logrus.Fields{"section": section, "id": id}).Debug("item added")
	}
	return id, r, err
}

// UpdateItem sets one field of a list item. An unknown id changes nothing.
func (s *Session) UpdateItem(ctx context.Context, section types.Section, id, field string, value any) (types.Resume, error) {
	editor, err := sections.EditorFor(section)
	if err != nil {
		return s.Current(), err
	}
	return s.Apply(ctx, func(r types.Resume) (types.Resume, error) {
		return editor.Update(r, id, field, value)
	})
}

// RemoveItem deletes a list item. An unknown id changes nothing.
func (s *Session) RemoveItem(ctx context.Context, section types.Section, id string) (types.Resume, error) {
	editor, err := sections.EditorFor(section)
	if err != nil {
		return s.Current(), err
	}
	return s.Apply(ctx, func(r types.Resume) (types.Resume, error) {
		return editor.Remove(r, id), nil
	})
}

// UpdatePersonal sets one personal-info field.
func (s *Session) UpdatePersonal(ctx context.Context, field, value string) (types.Resume, error) {
	return s.Apply(ctx, func(r types.Resume) (types.Resume, error) {
		return sections.UpdatePersonal(r, field, value)
	})
}

// SetSummary replaces the summary text.
func (s *Session) SetSummary(ctx context.Context, text string) (types.Resume, error) {
	return s.Apply(ctx, func(r types.Resume) (types.Resume, error) {
		return sections.SetSummary(r, text), nil
	})
}

// SetList replaces a flat list (skills, certifications or languages).
func (s *Session) SetList(ctx context.Context, section types.Section, items []string) (types.Resume, error) {
	return s.Apply(ctx, func(r types.Resume) (types.Resume, error) {
		return sections.SetList(r, section, items)
	})
}

// Reset overwrites the résumé with the empty one.
func (s *Session) Reset(ctx context.Context) (types.Resume, error) {
	return s.Apply(ctx, func(types.Resume) (types.Resume, error) {
		return types.NewResume(), nil
	})
}

// Subscribe returns a channel that receives the résumé after every accepted
// mutation. Slow readers only see the latest value. cancel closes the channel.
func (s *Session) Subscribe() (<-chan types.Resume, func()) {
	ch := make(chan types.Resume, 1)

	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subsMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			close(ch)
			s.subsMu.Unlock()
		})
	}
	return ch, cancel
}

func (s *Session) publish(r types.Resume) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	for _, ch := range s.subs {
		value := r.Clone()
		select {
		case ch <- value:
			continue
		default:
		}
		// Replace the stale value nobody has read yet.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- value:
		default:
		}
	}
}

func isSaveError(err error) bool {
	var saveErr *SaveError
	return errors.As(err, &saveErr)
}

// GenerateBullets replaces an experience item's description with generated
// bullet points. The call runs without holding the session; if the item is
// removed meanwhile the result is dropped. As with Apply, a *SaveError comes
// with the applied bullets.
func (s *Session) GenerateBullets(ctx context.Context, id string) ([]string, error) {
	var target *types.WorkExperience
	current := s.Current()
	for i := range current.WorkExperience {
		if current.WorkExperience[i].ID == id {
			target = &current.WorkExperience[i]
			break
		}
	}
	if target == nil {
		return nil, &ItemNotFoundError{Section: types.SectionExperience, ID: id}
	}

	fields := logrus.Fields{"section": types.SectionExperience, "id": id}
	bullets, err := s.enricher.GenerateBulletPoints(ctx, target.Position, enrichment.ItemContext(*target))
	if err != nil {
		observability.LogError(s.logger, "bullet generation failed", err, fields)
		return nil, err
	}

	_, err = s.Apply(ctx, func(r types.Resume) (types.Resume, error) {
		return sections.Experience.Update(r, id, sections.FieldDescription, bullets)
	})
	if err != nil {
		if isSaveError(err) {
			return bullets, err
		}
		return nil, err
	}
	fields["bullets"] = len(bullets)
	observability.LogInfo(s.logger, "bullet points generated", fields)
	return bullets, nil
}

// GenerateSummary replaces the summary with generated text built from the
// work history and skills.
func (s *Session) GenerateSummary(ctx context.Context) (string, error) {
	current := s.Current()
	summary, err := s.enricher.GenerateSummary(ctx, enrichment.ExperienceContext(current), current.Skills)
	if err != nil {
		observability.LogError(s.logger, "summary generation failed", err, logrus.Fields{"section": types.SectionSummary})
		return "", err
	}

	if _, err := s.SetSummary(ctx, summary); err != nil {
		if isSaveError(err) {
			return summary, err
		}
		return "", err
	}
	observability.LogInfo(s.logger, "summary generated", logrus.Fields{"section": types.SectionSummary})
	return summary, nil
}

// Analyze returns ATS feedback for the current résumé. It does not change state.
func (s *Session) Analyze(ctx context.Context) (string, error) {
	data, err := json.Marshal(s.Current())
	if err != nil {
		return "", fmt.Errorf("failed to serialize resume: %w", err)
	}

	feedback, err := s.enricher.Analyze(ctx, string(data))
	if err != nil {
		observability.LogError(s.logger, "analysis failed", err, nil)
		return "", err
	}
	return feedback, nil
}

// Close releases the store.
func (s *Session) Close() error {
	return s.store.Close()
}
