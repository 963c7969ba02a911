package staging_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"stagedai-backend/internal/gemini"
	"stagedai-backend/internal/models"
	"stagedai-backend/internal/staging"
)

type stubGenerator struct {
	result models.ImagePayload
	err    error

	mu    sync.Mutex
	calls int
}

func (s *stubGenerator) StageRoom(ctx context.Context, image models.ImagePayload, params gemini.StageParams) (models.ImagePayload, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.result, s.err
}

type stubRepo struct {
	mu      sync.Mutex
	saves   int
	updates int
	paid    []uuid.UUID
}

func (r *stubRepo) SaveProject(ctx context.Context, project *models.StagingProject) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	return nil
}

func (r *stubRepo) UpdateProject(ctx context.Context, project *models.StagingProject) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	return nil
}

func (r *stubRepo) MarkAsPaid(ctx context.Context, projectID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paid = append(r.paid, projectID)
	return nil
}

func testIntake() staging.Intake {
	return staging.Intake{
		Image:        models.ImagePayload{MimeType: "image/jpeg", Data: []byte("room")},
		Goal:         models.GoalSell,
		PropertyType: models.PropertyApartment,
		Persona:      models.PersonaProfessional,
		Style:        models.StyleScandinavian,
	}
}

// waitForTerminal polls until the project leaves the processing state.
func waitForTerminal(t *testing.T, svc *staging.Service, id uuid.UUID) models.StagingProject {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		project, err := svc.Get(id)
		assert.NoError(t, err)
		if project.Status != models.StatusProcessing {
			return project
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("project never left processing state")
	return models.StagingProject{}
}

func TestSubmit_Completes(t *testing.T) {
	gen := &stubGenerator{result: models.ImagePayload{MimeType: "image/png", Data: []byte("staged")}}
	repo := &stubRepo{}
	svc := staging.NewService(gen, repo)

	project, err := svc.Submit(context.Background(), testIntake())
	assert.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, project.Status)

	final := waitForTerminal(t, svc, project.ID)
	assert.Equal(t, models.StatusCompleted, final.Status)
	assert.NotNil(t, final.StagedImage)
	assert.Equal(t, []byte("staged"), final.StagedImage.Data)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, 1, repo.updates)
}

func TestSubmit_GenerationFails(t *testing.T) {
	gen := &stubGenerator{err: gemini.ErrNoImageData}
	svc := staging.NewService(gen, &stubRepo{})

	project, err := svc.Submit(context.Background(), testIntake())
	assert.NoError(t, err)

	final := waitForTerminal(t, svc, project.ID)
	assert.Equal(t, models.StatusFailed, final.Status)
	assert.Contains(t, final.ErrorMessage, "no image data returned")
	assert.Nil(t, final.StagedImage)
}

func TestSubmit_RejectsMissingImage(t *testing.T) {
	gen := &stubGenerator{}
	svc := staging.NewService(gen, &stubRepo{})

	intake := testIntake()
	intake.Image = models.ImagePayload{}
	_, err := svc.Submit(context.Background(), intake)

	assert.ErrorIs(t, err, gemini.ErrMissingSourceImage)
	assert.Equal(t, 0, gen.calls)
}

func TestStatusAndResult(t *testing.T) {
	gen := &stubGenerator{result: models.ImagePayload{MimeType: "image/png", Data: []byte("staged")}}
	svc := staging.NewService(gen, nil)

	project, err := svc.Submit(context.Background(), testIntake())
	assert.NoError(t, err)
	waitForTerminal(t, svc, project.ID)

	status, err := svc.Status(project.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, status.Status)

	result, err := svc.Result(project.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StyleScandinavian, result.Style)
	assert.Contains(t, result.OriginalImage, "data:image/jpeg;base64,")
	assert.Contains(t, result.StagedImage, "data:image/png;base64,")
	assert.False(t, result.IsPaid)
}

func TestStatus_UnknownProject(t *testing.T) {
	svc := staging.NewService(&stubGenerator{}, nil)

	_, err := svc.Status(uuid.New())
	assert.ErrorIs(t, err, staging.ErrProjectNotFound)
}

func TestSetPaid(t *testing.T) {
	gen := &stubGenerator{result: models.ImagePayload{MimeType: "image/png", Data: []byte("staged")}}
	repo := &stubRepo{}
	svc := staging.NewService(gen, repo)

	project, err := svc.Submit(context.Background(), testIntake())
	assert.NoError(t, err)
	waitForTerminal(t, svc, project.ID)

	err = svc.SetPaid(context.Background(), project.ID)
	assert.NoError(t, err)

	got, err := svc.Get(project.ID)
	assert.NoError(t, err)
	assert.True(t, got.IsPaid)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, []uuid.UUID{project.ID}, repo.paid)
}

func TestSetPaid_UnknownProject(t *testing.T) {
	svc := staging.NewService(&stubGenerator{}, nil)

	err := svc.SetPaid(context.Background(), uuid.New())
	assert.ErrorIs(t, err, staging.ErrProjectNotFound)
}
