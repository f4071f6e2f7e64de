package usecase

import (
	"context"
	"time"

	"skill-swap/internal/domain/rating"
	"skill-swap/internal/domain/skill"
	"skill-swap/internal/domain/swap"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	users map[uuid.UUID]user.User
	err   error
}

func (m *mockUserRepo) Create(context.Context, user.User) error { return m.err }

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, u user.User) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.users, id)
	return m.err
}

type mockSkillRepo struct {
	byName map[string]skill.Skill
	err    error
}

func (m *mockSkillRepo) GetAllSkills(context.Context) ([]skill.Skill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]skill.Skill, 0, len(m.byName))
	for _, s := range m.byName {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockSkillRepo) GetByName(_ context.Context, name string) (skill.Skill, error) {
	if m.err != nil {
		return skill.Skill{}, m.err
	}
	s, ok := m.byName[name]
	if !ok {
		return skill.Skill{}, repository.ErrSkillNotFound
	}
	return s, nil
}

func (m *mockSkillRepo) Upsert(_ context.Context, name string) (skill.Skill, bool, error) {
	if m.err != nil {
		return skill.Skill{}, false, m.err
	}
	if s, ok := m.byName[name]; ok {
		return s, false, nil
	}
	s := skill.Skill{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	if m.byName == nil {
		m.byName = map[string]skill.Skill{}
	}
	m.byName[name] = s
	return s, true, nil
}

type mockUserSkillRepo struct {
	links   []skill.UserSkill
	results map[string]repository.TagResult
	calls   []string
	err     error
}

func (m *mockUserSkillRepo) FindByUserID(context.Context, uuid.UUID) ([]skill.UserSkill, error) {
	return m.links, m.err
}

func (m *mockUserSkillRepo) FindByUserAndType(_ context.Context, _ uuid.UUID, typ skill.Type) ([]skill.UserSkill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]skill.UserSkill, 0)
	for _, l := range m.links {
		if l.Type == typ {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockUserSkillRepo) UpsertSkillAndLink(_ context.Context, userID uuid.UUID, name string, typ skill.Type) (repository.TagResult, error) {
	m.calls = append(m.calls, name)
	if m.err != nil {
		return repository.TagResult{}, m.err
	}
	if res, ok := m.results[name]; ok {
		return res, nil
	}
	s := skill.Skill{ID: uuid.New(), Name: name}
	return repository.TagResult{
		Skill:        s,
		SkillCreated: true,
		Link:         skill.UserSkill{ID: uuid.New(), UserID: userID, SkillID: s.ID, SkillName: name, Type: typ},
		LinkCreated:  true,
	}, nil
}

type mockSwapRepo struct {
	requests map[uuid.UUID]swap.SkillRequest
	rows     map[uuid.UUID]repository.SwapRequestRow
	created  []swap.SkillRequest
	updates  []swap.Status
	err      error
}

func (m *mockSwapRepo) Create(_ context.Context, req swap.SkillRequest) (swap.SkillRequest, error) {
	if m.err != nil {
		return swap.SkillRequest{}, m.err
	}
	m.created = append(m.created, req)
	return req, nil
}

func (m *mockSwapRepo) GetByID(_ context.Context, id uuid.UUID) (swap.SkillRequest, error) {
	if m.err != nil {
		return swap.SkillRequest{}, m.err
	}
	req, ok := m.requests[id]
	if !ok {
		return swap.SkillRequest{}, repository.ErrSwapRequestNotFound
	}
	return req, nil
}

func (m *mockSwapRepo) GetRowByID(_ context.Context, id uuid.UUID) (repository.SwapRequestRow, error) {
	row, ok := m.rows[id]
	if !ok {
		return repository.SwapRequestRow{}, repository.ErrSwapRequestNotFound
	}
	return row, nil
}

func (m *mockSwapRepo) ListIncoming(context.Context, uuid.UUID) ([]repository.SwapRequestRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.SwapRequestRow, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, row)
	}
	return out, nil
}

func (m *mockSwapRepo) ListOutgoing(ctx context.Context, senderID uuid.UUID) ([]repository.SwapRequestRow, error) {
	return m.ListIncoming(ctx, senderID)
}

func (m *mockSwapRepo) UpdateStatus(_ context.Context, id uuid.UUID, status swap.Status) (swap.SkillRequest, error) {
	req, ok := m.requests[id]
	if !ok || req.Status != swap.StatusPending {
		return swap.SkillRequest{}, repository.ErrSwapRequestNotFound
	}
	req.Status = status
	m.requests[id] = req
	m.updates = append(m.updates, status)
	if row, ok := m.rows[id]; ok {
		row.Request.Status = status
		m.rows[id] = row
	}
	return req, nil
}

type mockRatingRepo struct {
	ratings   map[uuid.UUID]rating.Rating
	rows      []repository.RatingRow
	stats     rating.Stats
	createErr error
	err       error
}

func (m *mockRatingRepo) Create(_ context.Context, rt rating.Rating) (rating.Rating, error) {
	if m.createErr != nil {
		return rating.Rating{}, m.createErr
	}
	if m.ratings == nil {
		m.ratings = map[uuid.UUID]rating.Rating{}
	}
	m.ratings[rt.ID] = rt
	return rt, nil
}

func (m *mockRatingRepo) GetBySender(_ context.Context, id, senderID uuid.UUID) (rating.Rating, error) {
	if m.err != nil {
		return rating.Rating{}, m.err
	}
	rt, ok := m.ratings[id]
	if !ok || rt.SenderID != senderID {
		return rating.Rating{}, repository.ErrRatingNotFound
	}
	return rt, nil
}

func (m *mockRatingRepo) Update(_ context.Context, id, senderID uuid.UUID, score int, feedback *string) (rating.Rating, error) {
	rt, ok := m.ratings[id]
	if !ok || rt.SenderID != senderID {
		return rating.Rating{}, repository.ErrRatingNotFound
	}
	rt.Score = score
	rt.Feedback = feedback
	m.ratings[id] = rt
	return rt, nil
}

func (m *mockRatingRepo) Delete(_ context.Context, id, senderID uuid.UUID) error {
	rt, ok := m.ratings[id]
	if !ok || rt.SenderID != senderID {
		return repository.ErrRatingNotFound
	}
	delete(m.ratings, id)
	return nil
}

func (m *mockRatingRepo) ListReceived(context.Context, uuid.UUID) ([]repository.RatingRow, error) {
	return m.rows, m.err
}

func (m *mockRatingRepo) Stats(context.Context, uuid.UUID) (rating.Stats, error) {
	return m.stats, m.err
}

type mockUserQueryRepo struct {
	total int
	users []user.User
	err   error
}

func (m *mockUserQueryRepo) CountVisible(context.Context, repository.DirectoryFilter) (int, error) {
	return m.total, m.err
}

func (m *mockUserQueryRepo) ListVisible(context.Context, repository.DirectoryFilter) ([]user.User, error) {
	return m.users, m.err
}

type mockCache struct {
	sets    []string
	deleted []string
}

func (m *mockCache) GetJSON(context.Context, string, any) (bool, error) {
	return false, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, _ any, _ time.Duration) error {
	m.sets = append(m.sets, key)
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.deleted = append(m.deleted, pattern)
	return nil
}

type recordingNotifier struct {
	created  []SwapRequestItem
	resolved []SwapRequestItem
}

func (n *recordingNotifier) RequestCreated(item SwapRequestItem)  { n.created = append(n.created, item) }
func (n *recordingNotifier) RequestResolved(item SwapRequestItem) { n.resolved = append(n.resolved, item) }
