package store

import (
	"sync"

	"interior-studio-backend/internal/models"
)

// MemoryStore holds every entity in process memory. A single mutex guards all
// collections; each exported method runs under it, so a record is never seen
// half-updated. Collections keep insertion order for listing.
type MemoryStore struct {
	mu sync.RWMutex

	layouts     map[string]models.LayoutResponse
	layoutOrder []string

	renderJobs  map[string]models.RenderJob
	renderOrder []string

	materialEdits map[string]models.MaterialEdit
	materialOrder []string

	settings models.APISettings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		layouts:       make(map[string]models.LayoutResponse),
		renderJobs:    make(map[string]models.RenderJob),
		materialEdits: make(map[string]models.MaterialEdit),
	}
}

func (s *MemoryStore) InsertLayout(layout models.LayoutResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.layouts[layout.LayoutID]; !exists {
		s.layoutOrder = append(s.layoutOrder, layout.LayoutID)
	}
	s.layouts[layout.LayoutID] = layout
}

func (s *MemoryStore) GetLayout(layoutID string) (models.LayoutResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	layout, ok := s.layouts[layoutID]
	return layout, ok
}

func (s *MemoryStore) ListLayouts() []models.LayoutResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	layouts := make([]models.LayoutResponse, 0, len(s.layoutOrder))
	for _, id := range s.layoutOrder {
		layouts = append(layouts, s.layouts[id])
	}
	return layouts
}

func (s *MemoryStore) InsertRenderJob(job models.RenderJob) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.renderJobs[job.JobID]; !exists {
		s.renderOrder = append(s.renderOrder, job.JobID)
	}
	s.renderJobs[job.JobID] = job
}

func (s *MemoryStore) GetRenderJob(jobID string) (models.RenderJob, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.renderJobs[jobID]
	return job, ok
}

func (s *MemoryStore) ListRenderJobs() []models.RenderJob {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]models.RenderJob, 0, len(s.renderOrder))
	for _, id := range s.renderOrder {
		jobs = append(jobs, s.renderJobs[id])
	}
	return jobs
}

// UpdateRenderJob applies fn to the stored job under the write lock and
// returns the result. It reports false, without calling fn, if the job is unknown.
func (s *MemoryStore) UpdateRenderJob(jobID string, fn func(job *models.RenderJob)) (models.RenderJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.renderJobs[jobID]
	if !ok {
		return models.RenderJob{}, false
	}
	fn(&job)
	s.renderJobs[jobID] = job
	return job, true
}

func (s *MemoryStore) InsertMaterialEdit(edit models.MaterialEdit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.materialEdits[edit.EditID]; !exists {
		s.materialOrder = append(s.materialOrder, edit.EditID)
	}
	s.materialEdits[edit.EditID] = edit
}

func (s *MemoryStore) GetMaterialEdit(editID string) (models.MaterialEdit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edit, ok := s.materialEdits[editID]
	return edit, ok
}

func (s *MemoryStore) ListMaterialEdits() []models.MaterialEdit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edits := make([]models.MaterialEdit, 0, len(s.materialOrder))
	for _, id := range s.materialOrder {
		edits = append(edits, s.materialEdits[id])
	}
	return edits
}

// UpdateMaterialEdit is the material-edit counterpart of UpdateRenderJob.
func (s *MemoryStore) UpdateMaterialEdit(editID string, fn func(edit *models.MaterialEdit)) (models.MaterialEdit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	edit, ok := s.materialEdits[editID]
	if !ok {
		return models.MaterialEdit{}, false
	}
	fn(&edit)
	s.materialEdits[editID] = edit
	return edit, true
}

func (s *MemoryStore) Settings() models.APISettings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

// UpdateSettings replaces the settings record with fn's result under the write lock.
func (s *MemoryStore) UpdateSettings(fn func(current models.APISettings) models.APISettings) models.APISettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = fn(s.settings)
	return s.settings
}
