package staging

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"stagedai-backend/internal/gemini"
	"stagedai-backend/internal/models"
)

var ErrProjectNotFound = fmt.Errorf("staging project not found")

// generationTimeout bounds a single staging call. Image generation is slow
// but a run past this point is considered stuck.
const generationTimeout = 3 * time.Minute

// generator performs the actual image-to-image staging call.
type generator interface {
	StageRoom(ctx context.Context, image models.ImagePayload, params gemini.StageParams) (models.ImagePayload, error)
}

// Repository persists projects. Persistence is best-effort: a write failure
// is logged and the in-memory record remains authoritative for reads.
type Repository interface {
	SaveProject(ctx context.Context, project *models.StagingProject) error
	UpdateProject(ctx context.Context, project *models.StagingProject) error
	MarkAsPaid(ctx context.Context, projectID uuid.UUID) error
}

// Intake is the validated output of the wizard, everything needed to run
// one staging job.
type Intake struct {
	Image             models.ImagePayload
	Goal              models.PropertyGoal
	PropertyType      models.PropertyType
	Persona           models.BuyerPersona
	Style             models.StagingStyle
	MarketPositioning models.MarketPositioning
	UsagePlatform     []string
	EmotionalTone     string
	Notes             string
	DeepCleanRequired bool
}

// Service owns project lifecycle: create, generate asynchronously, expose
// status and results, flip the paid flag. At most one generation runs per
// project; the status field is the guard.
type Service struct {
	mu        sync.RWMutex
	projects  map[uuid.UUID]*models.StagingProject
	generator generator
	repo      Repository
}

func NewService(gen generator, repo Repository) *Service {
	return &Service{
		projects:  make(map[uuid.UUID]*models.StagingProject),
		generator: gen,
		repo:      repo,
	}
}

// Submit creates a project in the processing state and kicks off generation
// in the background. The caller gets the project id immediately and polls
// for completion.
func (s *Service) Submit(ctx context.Context, intake Intake) (models.StagingProject, error) {
	if intake.Image.IsZero() {
		return models.StagingProject{}, gemini.ErrMissingSourceImage
	}

	now := time.Now()
	project := &models.StagingProject{
		ID:                uuid.New(),
		OriginalImage:     intake.Image,
		Goal:              intake.Goal,
		PropertyType:      intake.PropertyType,
		Persona:           intake.Persona,
		Style:             intake.Style,
		MarketPositioning: intake.MarketPositioning,
		UsagePlatform:     intake.UsagePlatform,
		EmotionalTone:     intake.EmotionalTone,
		Notes:             intake.Notes,
		DeepCleanRequired: intake.DeepCleanRequired,
		Status:            models.StatusProcessing,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	s.mu.Lock()
	s.projects[project.ID] = project
	s.mu.Unlock()

	s.persist(ctx, project, true)

	go s.generate(project.ID)

	return *project, nil
}

func (s *Service) generate(id uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
	defer cancel()

	s.mu.RLock()
	project, ok := s.projects[id]
	if !ok {
		s.mu.RUnlock()
		return
	}
	image := project.OriginalImage
	params := gemini.StageParams{
		Goal:              project.Goal,
		PropertyType:      project.PropertyType,
		Persona:           project.Persona,
		Style:             project.Style,
		Notes:             project.Notes,
		MarketPositioning: project.MarketPositioning,
		EmotionalTone:     project.EmotionalTone,
		UsagePlatform:     project.UsagePlatform,
		DeepCleanRequired: project.DeepCleanRequired,
	}
	s.mu.RUnlock()

	staged, err := s.generator.StageRoom(ctx, image, params)

	s.mu.Lock()
	project, ok = s.projects[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	if err != nil {
		log.Printf("staging generation failed for project %s: %v", id, err)
		project.Fail(err.Error())
	} else if err := project.Complete(staged); err != nil {
		project.Fail(err.Error())
	}
	snapshot := *project
	s.mu.Unlock()

	s.persist(context.Background(), &snapshot, false)
}

// persist writes the project out, logging rather than propagating failures.
func (s *Service) persist(ctx context.Context, project *models.StagingProject, create bool) {
	if s.repo == nil {
		return
	}
	var err error
	if create {
		err = s.repo.SaveProject(ctx, project)
	} else {
		err = s.repo.UpdateProject(ctx, project)
	}
	if err != nil {
		log.Printf("failed to persist project %s: %v", project.ID, err)
	}
}

// Get returns a snapshot of the project.
func (s *Service) Get(id uuid.UUID) (models.StagingProject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	project, ok := s.projects[id]
	if !ok {
		return models.StagingProject{}, ErrProjectNotFound
	}
	return *project, nil
}

// Status reports where the project is in its lifecycle.
func (s *Service) Status(id uuid.UUID) (models.ProjectStatusResponse, error) {
	project, err := s.Get(id)
	if err != nil {
		return models.ProjectStatusResponse{}, err
	}
	return models.ProjectStatusResponse{
		ProjectID:    project.ID.String(),
		Status:       project.Status,
		ErrorMessage: project.ErrorMessage,
		UpdatedAt:    project.UpdatedAt,
	}, nil
}

// Result returns the project rendered for the client. The staged image is
// only included once generation completed.
func (s *Service) Result(id uuid.UUID) (models.ProjectResultResponse, error) {
	project, err := s.Get(id)
	if err != nil {
		return models.ProjectResultResponse{}, err
	}

	resp := models.ProjectResultResponse{
		ProjectID:     project.ID.String(),
		Status:        project.Status,
		Goal:          project.Goal,
		PropertyType:  project.PropertyType,
		Persona:       project.Persona,
		Style:         project.Style,
		OriginalImage: project.OriginalImage.DataURI(),
		IsPaid:        project.IsPaid,
	}
	if project.StagedImage != nil {
		resp.StagedImage = project.StagedImage.DataURI()
	}
	return resp, nil
}

// SetPaid marks the project unlocked. Repeat calls are harmless.
func (s *Service) SetPaid(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	project, ok := s.projects[id]
	if !ok {
		s.mu.Unlock()
		return ErrProjectNotFound
	}
	project.IsPaid = true
	project.UpdatedAt = time.Now()
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.MarkAsPaid(ctx, id); err != nil {
			log.Printf("failed to persist paid flag for project %s: %v", id, err)
		}
	}
	return nil
}
