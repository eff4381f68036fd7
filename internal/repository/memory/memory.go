// Package memory holds in-memory implementations of the repository
// interfaces. They back service tests and mirror the semantics of the
// ent-backed implementations, including ordering and error sentinels.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/labelworks/annoqueue/constants"
	"github.com/labelworks/annoqueue/internal/common"
	"github.com/labelworks/annoqueue/internal/entity"
	"github.com/labelworks/annoqueue/internal/repository"
)

type membership struct {
	id      int
	dataID  int
	queueID int
}

// Store is the shared state behind the per-repository facades. One mutex
// guards everything, which stands in for the durable store's transactions.
type Store struct {
	mu sync.Mutex

	projectSeq    int
	labelSeq      int
	dataSeq       int
	queueSeq      int
	memberSeq     int
	assignmentSeq int
	decisionSeq   int
	modelSeq      int

	projects    map[int]*entity.Project
	labels      map[int]*entity.Label
	profiles    map[uuid.UUID]*entity.Profile
	data        map[int]*entity.Data
	queues      map[int]*entity.Queue
	memberships []membership
	assignments map[int]*entity.Assignment
	decisions   []*entity.Decision
	models      map[int]*entity.ModelRef
	scores      map[int][]entity.UncertaintyScore
	predictions map[int][]entity.Prediction
}

func NewStore() *Store {
	return &Store{
		projects:    make(map[int]*entity.Project),
		labels:      make(map[int]*entity.Label),
		profiles:    make(map[uuid.UUID]*entity.Profile),
		data:        make(map[int]*entity.Data),
		queues:      make(map[int]*entity.Queue),
		assignments: make(map[int]*entity.Assignment),
		models:      make(map[int]*entity.ModelRef),
		scores:      make(map[int][]entity.UncertaintyScore),
		predictions: make(map[int][]entity.Prediction),
	}
}

// Facade accessors, one per repository interface.

func (s *Store) Projects() repository.ProjectRepository       { return &projectStore{s} }
func (s *Store) Profiles() repository.ProfileRepository       { return &profileStore{s} }
func (s *Store) Data() repository.DataRepository              { return &dataStore{s} }
func (s *Store) Queues() repository.QueueRepository           { return &queueStore{s} }
func (s *Store) Assignments() repository.AssignmentRepository { return &assignmentStore{s} }
func (s *Store) Decisions() repository.DecisionRepository     { return &decisionStore{s} }
func (s *Store) Models() repository.ModelRepository           { return &modelStore{s} }

// projectStore

type projectStore struct{ s *Store }

func (r *projectStore) Create(_ context.Context, name string, classifier string) (*entity.Project, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if classifier == "" {
		classifier = string(constants.ClassifierLogisticRegression)
	}
	s.projectSeq++
	p := &entity.Project{
		ID:         s.projectSeq,
		Name:       name,
		Classifier: classifier,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	s.projects[p.ID] = p
	out := *p
	return &out, nil
}

func (r *projectStore) Get(_ context.Context, id int) (*entity.Project, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %d: %w", id, common.ErrNotFound)
	}
	out := *p
	return &out, nil
}

func (r *projectStore) IncrementTrainingSet(_ context.Context, id int) (int, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return 0, fmt.Errorf("project %d: %w", id, common.ErrNotFound)
	}
	p.CurrentTrainingSet++
	p.UpdatedAt = time.Now()
	return p.CurrentTrainingSet, nil
}

func (r *projectStore) AddLabel(_ context.Context, projectID int, name string) (*entity.Label, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labelSeq++
	l := &entity.Label{ID: s.labelSeq, ProjectID: projectID, Name: name}
	s.labels[l.ID] = l
	out := *l
	return &out, nil
}

func (r *projectStore) ListLabels(_ context.Context, projectID int) ([]*entity.Label, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*entity.Label
	for _, l := range s.labels {
		if l.ProjectID == projectID {
			out := *l
			result = append(result, &out)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *projectStore) CountLabels(_ context.Context, projectID int) (int, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, l := range s.labels {
		if l.ProjectID == projectID {
			count++
		}
	}
	return count, nil
}

// profileStore

type profileStore struct{ s *Store }

func (r *profileStore) Create(_ context.Context, username, email string) (*entity.Profile, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &entity.Profile{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.profiles[p.ID] = p
	out := *p
	return &out, nil
}

func (r *profileStore) Get(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, fmt.Errorf("profile %s: %w", id, common.ErrNotFound)
	}
	out := *p
	return &out, nil
}

// dataStore

type dataStore struct{ s *Store }

func (r *dataStore) AddData(_ context.Context, projectID int, texts []string) (int, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range texts {
		s.dataSeq++
		s.data[s.dataSeq] = &entity.Data{ID: s.dataSeq, ProjectID: projectID, Text: t}
	}
	return len(texts), nil
}

func (r *dataStore) Get(_ context.Context, id int) (*entity.Data, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.data[id]
	if !ok {
		return nil, fmt.Errorf("data %d: %w", id, common.ErrNotFound)
	}
	out := *d
	return &out, nil
}

func (r *dataStore) MinID(_ context.Context, projectID int) (int, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	min, found := 0, false
	for _, d := range s.data {
		if d.ProjectID != projectID {
			continue
		}
		if !found || d.ID < min {
			min, found = d.ID, true
		}
	}
	if !found {
		return 0, fmt.Errorf("project %d has no data: %w", projectID, common.ErrNotFound)
	}
	return min, nil
}

func (r *dataStore) UnlabeledIDs(_ context.Context, projectID int) ([]int, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []int
	for _, d := range s.data {
		if d.ProjectID == projectID && !s.labeledLocked(d.ID) {
			ids = append(ids, d.ID)
		}
	}
	sort.Ints(ids)
	return ids, nil
}

// queueStore

type queueStore struct{ s *Store }

func (r *queueStore) Create(_ context.Context, req repository.CreateQueueRequest) (*entity.Queue, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queueSeq++
	q := &entity.Queue{
		ID:        s.queueSeq,
		ProjectID: req.ProjectID,
		Length:    req.Length,
		ProfileID: req.ProfileID,
	}
	s.queues[q.ID] = q
	out := *q
	return &out, nil
}

func (r *queueStore) Get(_ context.Context, id int) (*entity.Queue, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.queues[id]
	if !ok {
		return nil, fmt.Errorf("queue %d: %w", id, common.ErrNotFound)
	}
	out := *q
	return &out, nil
}

func (r *queueStore) List(_ context.Context) ([]*entity.Queue, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*entity.Queue
	for _, q := range s.queues {
		out := *q
		result = append(result, &out)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *queueStore) ProjectQueue(_ context.Context, projectID int) (*entity.Queue, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var best *entity.Queue
	for _, q := range s.queues {
		if q.ProjectID != projectID || q.ProfileID != nil {
			continue
		}
		if best == nil || q.ID < best.ID {
			best = q
		}
	}
	if best == nil {
		return nil, fmt.Errorf("project %d has no shared queue: %w", projectID, common.ErrNotFound)
	}
	out := *best
	return &out, nil
}

func (r *queueStore) CandidatesForDispatch(_ context.Context, projectID int, profileID *uuid.UUID) ([]int, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var personal, shared []int
	for _, q := range s.queues {
		if q.ProjectID != projectID {
			continue
		}
		switch {
		case q.ProfileID == nil:
			shared = append(shared, q.ID)
		case profileID != nil && *q.ProfileID == *profileID:
			personal = append(personal, q.ID)
		}
	}
	sort.Ints(personal)
	sort.Ints(shared)
	return append(personal, shared...), nil
}

func (r *queueStore) MemberCount(_ context.Context, queueID int) (int, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, m := range s.memberships {
		if m.queueID == queueID {
			count++
		}
	}
	return count, nil
}

func (r *queueStore) EligibleIDs(_ context.Context, projectID int) ([]int, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eligibleLocked(projectID), nil
}

func (r *queueStore) RankedEligibleIDs(_ context.Context, projectID int, policy constants.OrderPolicy, limit int) ([]int, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	latest, ok := s.latestModelLocked(projectID)
	if !ok {
		return nil, nil
	}

	byData := make(map[int]entity.UncertaintyScore)
	for _, sc := range s.scores[latest] {
		byData[sc.DataID] = sc
	}

	var scored []entity.UncertaintyScore
	for _, id := range s.eligibleLocked(projectID) {
		if sc, ok := byData[id]; ok {
			scored = append(scored, sc)
		}
	}

	switch policy {
	case constants.OrderLeastConfident:
		sort.Slice(scored, func(i, j int) bool { return scored[i].LeastConfident > scored[j].LeastConfident })
	case constants.OrderMargin:
		sort.Slice(scored, func(i, j int) bool { return scored[i].Margin < scored[j].Margin })
	case constants.OrderEntropy:
		sort.Slice(scored, func(i, j int) bool { return scored[i].Entropy > scored[j].Entropy })
	default:
		return nil, fmt.Errorf("%q: %w", policy, common.ErrInvalidPolicy)
	}

	if limit < len(scored) {
		scored = scored[:limit]
	}
	ids := make([]int, len(scored))
	for i, sc := range scored {
		ids[i] = sc.DataID
	}
	return ids, nil
}

func (r *queueStore) AddMembers(_ context.Context, queueID int, dataIDs []int) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range dataIDs {
		s.memberSeq++
		s.memberships = append(s.memberships, membership{id: s.memberSeq, dataID: id, queueID: queueID})
	}
	return nil
}

func (r *queueStore) UnassignedMemberIDs(_ context.Context, queueID int) ([]int, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []int
	for _, m := range s.memberships {
		if m.queueID == queueID && !s.assignedLocked(m.dataID) {
			ids = append(ids, m.dataID)
		}
	}
	return ids, nil
}

// assignmentStore

type assignmentStore struct{ s *Store }

func (r *assignmentStore) Create(_ context.Context, dataID int, profileID uuid.UUID, queueID int) (*entity.Assignment, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.findAssignmentLocked(dataID, profileID); exists {
		return nil, fmt.Errorf("assignment for data %d and profile %s already exists: %w", dataID, profileID, common.ErrDatabase)
	}
	s.assignmentSeq++
	a := &entity.Assignment{
		ID:         s.assignmentSeq,
		DataID:     dataID,
		ProfileID:  profileID,
		QueueID:    queueID,
		AssignedAt: time.Now(),
	}
	s.assignments[a.ID] = a
	out := *a
	return &out, nil
}

func (r *assignmentStore) ListForProfile(_ context.Context, profileID uuid.UUID, projectID int, limit int) ([]*entity.Assignment, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*entity.Assignment
	for _, a := range s.assignments {
		if a.ProfileID != profileID {
			continue
		}
		q, ok := s.queues[a.QueueID]
		if !ok || q.ProjectID != projectID {
			continue
		}
		out := *a
		result = append(result, &out)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *assignmentStore) AssignedDataIDs(_ context.Context) ([]int, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []int
	for _, a := range s.assignments {
		ids = append(ids, a.DataID)
	}
	sort.Ints(ids)
	return ids, nil
}

func (r *assignmentStore) LabelAndRelease(_ context.Context, dataID int, labelID int, profileID uuid.UUID, trainingSet int) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.findAssignmentLocked(dataID, profileID)
	if !ok {
		return fmt.Errorf("data %d, profile %s: %w", dataID, profileID, common.ErrAssignmentNotFound)
	}

	s.decisionSeq++
	s.decisions = append(s.decisions, &entity.Decision{
		ID:          s.decisionSeq,
		DataID:      dataID,
		LabelID:     labelID,
		ProfileID:   profileID,
		TrainingSet: trainingSet,
		LabeledAt:   time.Now(),
	})

	delete(s.assignments, a.ID)
	s.removeMembershipLocked(dataID, a.QueueID)
	return nil
}

func (r *assignmentStore) Release(_ context.Context, dataID int, profileID uuid.UUID) (int, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.findAssignmentLocked(dataID, profileID)
	if !ok {
		return 0, fmt.Errorf("data %d, profile %s: %w", dataID, profileID, common.ErrAssignmentNotFound)
	}
	delete(s.assignments, a.ID)
	return a.QueueID, nil
}

// decisionStore

type decisionStore struct{ s *Store }

func (r *decisionStore) CountForTrainingSet(_ context.Context, projectID, trainingSet int) (int, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, dl := range s.decisions {
		if dl.TrainingSet == trainingSet && s.dataProjectLocked(dl.DataID) == projectID {
			count++
		}
	}
	return count, nil
}

func (r *decisionStore) DistinctLabelIDs(_ context.Context, projectID, trainingSet int) ([]int, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[int]struct{})
	for _, dl := range s.decisions {
		if dl.TrainingSet == trainingSet && s.dataProjectLocked(dl.DataID) == projectID {
			seen[dl.LabelID] = struct{}{}
		}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

func (r *decisionStore) ListForProject(_ context.Context, projectID int) ([]*entity.LabeledItem, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*entity.LabeledItem
	for _, dl := range s.decisions {
		if s.dataProjectLocked(dl.DataID) != projectID {
			continue
		}
		item := &entity.LabeledItem{
			DataID:      dl.DataID,
			TrainingSet: dl.TrainingSet,
			LabeledAt:   dl.LabeledAt,
		}
		if d, ok := s.data[dl.DataID]; ok {
			item.Text = d.Text
		}
		if l, ok := s.labels[dl.LabelID]; ok {
			item.LabelName = l.Name
		}
		if p, ok := s.profiles[dl.ProfileID]; ok {
			item.Labeler = p.Username
		}
		result = append(result, item)
	}
	return result, nil
}

// modelStore

type modelStore struct{ s *Store }

func (r *modelStore) Create(_ context.Context, projectID int, path string, trainingSet int) (*entity.ModelRef, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modelSeq++
	m := &entity.ModelRef{
		ID:          s.modelSeq,
		ProjectID:   projectID,
		Path:        path,
		TrainingSet: trainingSet,
		CreatedAt:   time.Now(),
	}
	s.models[m.ID] = m
	out := *m
	return &out, nil
}

func (r *modelStore) LatestID(_ context.Context, projectID int) (int, bool, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.latestModelLocked(projectID)
	return id, ok, nil
}

func (r *modelStore) SaveScores(_ context.Context, modelID int, scores []entity.UncertaintyScore, predictions []entity.Prediction) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[modelID] = append(s.scores[modelID], scores...)
	s.predictions[modelID] = append(s.predictions[modelID], predictions...)
	return nil
}

// internal helpers; callers hold the mutex

func (s *Store) labeledLocked(dataID int) bool {
	for _, dl := range s.decisions {
		if dl.DataID == dataID {
			return true
		}
	}
	return false
}

func (s *Store) queuedLocked(dataID int) bool {
	for _, m := range s.memberships {
		if m.dataID == dataID {
			return true
		}
	}
	return false
}

func (s *Store) assignedLocked(dataID int) bool {
	for _, a := range s.assignments {
		if a.DataID == dataID {
			return true
		}
	}
	return false
}

func (s *Store) eligibleLocked(projectID int) []int {
	var ids []int
	for _, d := range s.data {
		if d.ProjectID == projectID && !s.labeledLocked(d.ID) && !s.queuedLocked(d.ID) {
			ids = append(ids, d.ID)
		}
	}
	sort.Ints(ids)
	return ids
}

func (s *Store) latestModelLocked(projectID int) (int, bool) {
	latest, found := 0, false
	for _, m := range s.models {
		if m.ProjectID == projectID && m.ID > latest {
			latest, found = m.ID, true
		}
	}
	return latest, found
}

func (s *Store) findAssignmentLocked(dataID int, profileID uuid.UUID) (*entity.Assignment, bool) {
	for _, a := range s.assignments {
		if a.DataID == dataID && a.ProfileID == profileID {
			return a, true
		}
	}
	return nil, false
}

func (s *Store) removeMembershipLocked(dataID, queueID int) {
	for i, m := range s.memberships {
		if m.dataID == dataID && m.queueID == queueID {
			s.memberships = append(s.memberships[:i], s.memberships[i+1:]...)
			return
		}
	}
}

func (s *Store) dataProjectLocked(dataID int) int {
	if d, ok := s.data[dataID]; ok {
		return d.ProjectID
	}
	return 0
}
