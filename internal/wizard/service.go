package wizard

import (
	"context"
	"fmt"

	"stagedai-backend/internal/models"
)

var (
	ErrSessionNotFound = fmt.Errorf("wizard session not found")
	ErrNoImage         = fmt.Errorf("an image is required before continuing")
	ErrWrongStep       = fmt.Errorf("operation not valid for the current step")
)

// imageFetcher retrieves a remote image from a user-supplied URL.
type imageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (models.ImagePayload, error)
}

// recommender produces the two style suggestions shown on the style step.
// Implementations never fail; they degrade to a static pair instead.
type recommender interface {
	RecommendStyles(ctx context.Context, goal models.PropertyGoal, propertyType models.PropertyType, persona models.BuyerPersona) []models.StyleRecommendation
}

// Service drives the five-step intake flow. Each mutation validates the
// session's current step, so a stale client cannot skip ahead.
type Service struct {
	store       *Store
	fetcher     imageFetcher
	recommender recommender
}

func NewService(store *Store, fetcher imageFetcher, rec recommender) *Service {
	return &Service{store: store, fetcher: fetcher, recommender: rec}
}

func (s *Service) Start() Session {
	return *s.store.Create()
}

func (s *Service) Get(id string) (Session, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return session, nil
}

// SetImageFromURL downloads the image and attaches it to the session. The
// fetch happens outside the store lock; only the result is written back.
func (s *Service) SetImageFromURL(ctx context.Context, id, rawURL string) (Session, error) {
	if _, ok := s.store.Get(id); !ok {
		return Session{}, ErrSessionNotFound
	}

	payload, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return Session{}, err
	}
	return s.setImage(id, payload)
}

// SetImageFromData attaches an image the client uploaded directly, encoded
// as a data: URI or bare base64.
func (s *Service) SetImageFromData(id, encoded string) (Session, error) {
	payload, err := models.ImagePayloadFromDataURI(encoded)
	if err != nil {
		return Session{}, err
	}
	return s.setImage(id, payload)
}

func (s *Service) setImage(id string, payload models.ImagePayload) (Session, error) {
	session, ok := s.store.Update(id, func(sess *Session) {
		sess.Image = payload
	})
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return session, nil
}

// SetGoalPersona records step 2 and advances to the property-type step.
func (s *Service) SetGoalPersona(id string, goal models.PropertyGoal, persona models.BuyerPersona) (Session, error) {
	if !goal.Valid() {
		return Session{}, fmt.Errorf("unknown property goal %q", goal)
	}
	if !persona.Valid() {
		return Session{}, fmt.Errorf("unknown buyer persona %q", persona)
	}

	var stepErr error
	session, ok := s.store.Update(id, func(sess *Session) {
		if sess.Step != StepGoalPersona {
			stepErr = ErrWrongStep
			return
		}
		sess.Goal = goal
		sess.Persona = persona
		sess.Step = StepPropertyType
	})
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if stepErr != nil {
		return Session{}, stepErr
	}
	return session, nil
}

// SetPropertyType records step 3 and advances to the style step. Entering
// the style step always fetches fresh recommendations, including when the
// user revisits it after walking back.
func (s *Service) SetPropertyType(ctx context.Context, id string, propertyType models.PropertyType) (Session, error) {
	if !propertyType.Valid() {
		return Session{}, fmt.Errorf("unknown property type %q", propertyType)
	}

	var stepErr error
	session, ok := s.store.Update(id, func(sess *Session) {
		if sess.Step != StepPropertyType {
			stepErr = ErrWrongStep
			return
		}
		sess.PropertyType = propertyType
		sess.Step = StepStyle
	})
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if stepErr != nil {
		return Session{}, stepErr
	}

	return s.refreshRecommendations(ctx, id, session)
}

// refreshRecommendations fetches fresh suggestions and pre-selects the
// first one; the user can still pick any catalog style afterwards.
func (s *Service) refreshRecommendations(ctx context.Context, id string, snapshot Session) (Session, error) {
	recs := s.recommender.RecommendStyles(ctx, snapshot.Goal, snapshot.PropertyType, snapshot.Persona)
	session, ok := s.store.Update(id, func(sess *Session) {
		sess.Recommendations = recs
		if len(recs) > 0 {
			sess.Style = recs[0].Style
		}
	})
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return session, nil
}

// SelectStyle records the chosen style and advances to the refine step.
func (s *Service) SelectStyle(id string, style models.StagingStyle) (Session, error) {
	if !style.Valid() {
		return Session{}, fmt.Errorf("unknown staging style %q", style)
	}

	var stepErr error
	session, ok := s.store.Update(id, func(sess *Session) {
		if sess.Step != StepStyle {
			stepErr = ErrWrongStep
			return
		}
		sess.Style = style
		sess.Step = StepRefine
	})
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if stepErr != nil {
		return Session{}, stepErr
	}
	return session, nil
}

// Refine stores the optional step-5 details without advancing.
func (s *Service) Refine(id string, req models.RefineRequest) (Session, error) {
	if req.MarketPositioning != "" && !req.MarketPositioning.Valid() {
		return Session{}, fmt.Errorf("unknown market positioning %q", req.MarketPositioning)
	}
	if req.EmotionalTone != "" && !models.ValidEmotionalTone(req.EmotionalTone) {
		return Session{}, fmt.Errorf("unknown emotional tone %q", req.EmotionalTone)
	}
	for _, platform := range req.UsagePlatform {
		if !models.ValidUsagePlatform(platform) {
			return Session{}, fmt.Errorf("unknown usage platform %q", platform)
		}
	}

	var stepErr error
	session, ok := s.store.Update(id, func(sess *Session) {
		if sess.Step != StepRefine {
			stepErr = ErrWrongStep
			return
		}
		sess.MarketPositioning = req.MarketPositioning
		sess.UsagePlatform = req.UsagePlatform
		sess.EmotionalTone = req.EmotionalTone
		sess.Notes = req.Notes
		sess.DeepCleanRequired = req.DeepCleanRequired
	})
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if stepErr != nil {
		return Session{}, stepErr
	}
	return session, nil
}

// Next advances from the upload step once an image is present. The later
// steps advance through their own setters; this exists so the client can
// move off step 1 without re-sending the image.
func (s *Service) Next(id string) (Session, error) {
	var stepErr error
	session, ok := s.store.Update(id, func(sess *Session) {
		if sess.Step != StepUpload {
			stepErr = ErrWrongStep
			return
		}
		if sess.Image.IsZero() {
			stepErr = ErrNoImage
			return
		}
		sess.Step = StepGoalPersona
	})
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if stepErr != nil {
		return Session{}, stepErr
	}
	return session, nil
}

// Back moves one step toward the upload step. All entered data, including
// the image, is preserved. Landing back on the style step re-fetches the
// recommendations so they reflect any inputs changed along the way.
func (s *Service) Back(ctx context.Context, id string) (Session, error) {
	session, ok := s.store.Update(id, func(sess *Session) {
		if sess.Step > StepUpload {
			sess.Step--
		}
	})
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	if session.Step == StepStyle {
		return s.refreshRecommendations(ctx, id, session)
	}
	return session, nil
}

// Cancel discards the session entirely.
func (s *Service) Cancel(id string) {
	s.store.Delete(id)
}

// Submit validates the completed intake and hands back the collected
// inputs. A missing image fails here, before any generation work starts.
// On success the session is discarded.
func (s *Service) Submit(id string) (Session, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if session.Image.IsZero() {
		return Session{}, ErrNoImage
	}
	if session.Step != StepRefine {
		return Session{}, ErrWrongStep
	}
	if session.Goal == "" || session.Persona == "" || session.PropertyType == "" || session.Style == "" {
		return Session{}, fmt.Errorf("intake is incomplete")
	}

	s.store.Delete(id)
	return session, nil
}
