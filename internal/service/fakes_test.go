package service

import (
	"context"
	"fmt"

	"deepdive/internal/model"
)

// fakeGateway returns canned replies in order and records every call.
type fakeGateway struct {
	replies []string
	calls   int
	err     error
}

func (g *fakeGateway) Run(ctx context.Context, messages []model.Message, seed int64, withModeration bool) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	reply := "ok"
	if g.calls < len(g.replies) {
		reply = g.replies[g.calls]
	}
	g.calls++
	return reply, nil
}

type fakeAdminRepo struct {
	admins map[string]*model.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*model.Admin{}}
}

func (r *fakeAdminRepo) Create(ctx context.Context, admin *model.Admin) error {
	r.admins[admin.Username] = admin
	return nil
}

func (r *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	return r.admins[username], nil
}

type fakeSurveyRepo struct {
	surveys map[string]*model.Survey
	nextID  int
}

func newFakeSurveyRepo() *fakeSurveyRepo {
	return &fakeSurveyRepo{surveys: map[string]*model.Survey{}}
}

func (r *fakeSurveyRepo) Create(ctx context.Context, survey *model.Survey) (string, error) {
	r.nextID++
	id := fmt.Sprintf("survey-%d", r.nextID)
	survey.ID = id
	r.surveys[id] = survey
	return id, nil
}

func (r *fakeSurveyRepo) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	return r.surveys[id], nil
}

func (r *fakeSurveyRepo) GetByAdmin(ctx context.Context, username string) ([]*model.Survey, error) {
	var out []*model.Survey
	for _, s := range r.surveys {
		if s.AdminUsername == username {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSurveyRepo) Delete(ctx context.Context, id string) error {
	delete(r.surveys, id)
	return nil
}

type fakeResponseRepo struct {
	responses map[string]*model.Response
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{responses: map[string]*model.Response{}}
}

func respKey(surveyID, responseID string) string {
	return surveyID + "/" + responseID
}

func (r *fakeResponseRepo) Create(ctx context.Context, response *model.Response) error {
	r.responses[respKey(response.Metadata.SurveyID, response.Metadata.ResponseID)] = response
	return nil
}

func (r *fakeResponseRepo) GetByID(ctx context.Context, surveyID, responseID string) (*model.Response, error) {
	return r.responses[respKey(surveyID, responseID)], nil
}

func (r *fakeResponseRepo) GetBySurvey(ctx context.Context, surveyID string) ([]*model.Response, error) {
	var out []*model.Response
	for _, resp := range r.responses {
		if resp.Metadata.SurveyID == surveyID {
			out = append(out, resp)
		}
	}
	return out, nil
}

type fakeChatLogRepo struct {
	records map[string]*model.ChatRecord
	upserts int
}

func newFakeChatLogRepo() *fakeChatLogRepo {
	return &fakeChatLogRepo{records: map[string]*model.ChatRecord{}}
}

func (r *fakeChatLogRepo) Get(ctx context.Context, surveyID, responseID string) (*model.ChatRecord, error) {
	return r.records[respKey(surveyID, responseID)], nil
}

func (r *fakeChatLogRepo) Upsert(ctx context.Context, record *model.ChatRecord) error {
	r.upserts++
	r.records[respKey(record.SurveyID, record.ResponseID)] = record
	return nil
}

type fakeChatLogCache struct {
	records map[string]*model.ChatRecord
	getErr  error
	setErr  error
}

func newFakeChatLogCache() *fakeChatLogCache {
	return &fakeChatLogCache{records: map[string]*model.ChatRecord{}}
}

func (c *fakeChatLogCache) Get(ctx context.Context, surveyID, responseID string) (*model.ChatRecord, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.records[respKey(surveyID, responseID)], nil
}

func (c *fakeChatLogCache) Set(ctx context.Context, record *model.ChatRecord) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.records[respKey(record.SurveyID, record.ResponseID)] = record
	return nil
}

func (c *fakeChatLogCache) Delete(ctx context.Context, surveyID, responseID string) error {
	delete(c.records, respKey(surveyID, responseID))
	return nil
}

type recordedTurn struct {
	surveyID   string
	responseID string
	turn       *model.ChatTurn
}

type fakeBroadcaster struct {
	turns []recordedTurn
}

func (b *fakeBroadcaster) BroadcastTurn(surveyID, responseID string, turn *model.ChatTurn) {
	b.turns = append(b.turns, recordedTurn{surveyID, responseID, turn})
}
