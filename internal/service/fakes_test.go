package service

import (
	"fmt"
	"time"

	"github.com/lequan2902/codeprep/internal/apperr"
	"github.com/lequan2902/codeprep/internal/model"
)

// In-memory repository stand-ins so service tests run without postgres.

type fakeSessionRepo struct {
	sessions map[string]*model.Session
	saveErr  error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*model.Session)}
}

func (f *fakeSessionRepo) Create(session *model.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	stored := *session
	f.sessions[session.ID] = &stored
	return nil
}

func (f *fakeSessionRepo) Update(session *model.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if _, ok := f.sessions[session.ID]; !ok {
		return apperr.NotFound("session", session.ID)
	}
	stored := *session
	f.sessions[session.ID] = &stored
	return nil
}

func (f *fakeSessionRepo) SaveWithResults(session *model.Session) error {
	return f.Update(session)
}

func (f *fakeSessionRepo) FindByID(id string) (*model.Session, error) {
	stored, ok := f.sessions[id]
	if !ok {
		return nil, apperr.NotFound("session", id)
	}
	session := *stored
	session.Results = nil
	return &session, nil
}

func (f *fakeSessionRepo) FindByIDWithResults(id string) (*model.Session, error) {
	stored, ok := f.sessions[id]
	if !ok {
		return nil, apperr.NotFound("session", id)
	}
	session := *stored
	return &session, nil
}

func (f *fakeSessionRepo) FindAllByUser(userID string) ([]model.Session, error) {
	var out []model.Session
	for _, s := range f.sessions {
		if s.UserID == userID {
			session := *s
			session.Results = nil
			out = append(out, session)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) FindAllByUserWithResults(userID string) ([]model.Session, error) {
	var out []model.Session
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) FindStaleActive(cutoff time.Time) ([]model.Session, error) {
	var out []model.Session
	for _, s := range f.sessions {
		if s.Status == model.SessionStatusActive && s.StartTime.Before(cutoff) {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeProgressRepo struct {
	records map[string]*model.Progress
	nextID  uint
	saveErr error
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[string]*model.Progress)}
}

func progressKey(userID, topic, difficulty string) string {
	return fmt.Sprintf("%s/%s/%s", userID, topic, difficulty)
}

func (f *fakeProgressRepo) FindByKey(userID, topic, difficulty string) (*model.Progress, error) {
	stored, ok := f.records[progressKey(userID, topic, difficulty)]
	if !ok {
		return nil, apperr.NotFound("progress", progressKey(userID, topic, difficulty))
	}
	record := *stored
	return &record, nil
}

func (f *fakeProgressRepo) Save(progress *model.Progress) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if progress.ID == 0 {
		f.nextID++
		progress.ID = f.nextID
	}
	stored := *progress
	f.records[progressKey(progress.UserID, progress.Topic, progress.Difficulty)] = &stored
	return nil
}

func (f *fakeProgressRepo) FindAllByUser(userID string) ([]model.Progress, error) {
	var out []model.Progress
	for _, p := range f.records {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}
