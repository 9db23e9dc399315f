package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"deepdive/internal/cache"
	"deepdive/internal/chatlog"
	"deepdive/internal/gateway"
	"deepdive/internal/model"
	"deepdive/internal/repository"
)

var ErrChatLogNotFound = errors.New("chat log not found")

// InterviewService steps one AI follow-up interview per call. Each turn
// rebuilds the conversation from storage, mutates it in memory, and
// writes it back; the conversation object itself is request-scoped.
type InterviewService struct {
	gw          gateway.Gateway
	surveys     repository.SurveyRepo
	responses   repository.ResponseRepo
	chatRepo    repository.ChatLogRepo
	chatCache   cache.ChatLogCache
	broadcaster Broadcaster
	logger      *zap.Logger
}

// NewInterviewService creates a new interview service
func NewInterviewService(
	gw gateway.Gateway,
	surveys repository.SurveyRepo,
	responses repository.ResponseRepo,
	chatRepo repository.ChatLogRepo,
	chatCache cache.ChatLogCache,
	logger *zap.Logger,
) *InterviewService {
	return &InterviewService{
		gw:        gw,
		surveys:   surveys,
		responses: responses,
		chatRepo:  chatRepo,
		chatCache: chatCache,
		logger:    logger,
	}
}

// SetBroadcaster injects the live-observer hub.
func (s *InterviewService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SendMessage runs one interview turn. An empty content on a fresh
// interview bootstraps it and returns the model's opening question.
// Otherwise the user input is appended (at editIndex when the
// respondent rewrites an earlier reply, which discards everything after
// it), the next assistant turn is generated, and the exit oracle
// decides whether this turn is the last. Gateway failures abort the
// turn and surface to the transport layer.
func (s *InterviewService) SendMessage(ctx context.Context, surveyID, responseID, content string, editIndex *int) (*model.ChatTurn, error) {
	record, err := s.loadRecord(ctx, surveyID, responseID)
	if err != nil {
		return nil, err
	}

	seed := gateway.RandomSeed()

	var log *chatlog.ChatLog
	var turnContent string
	if len(record.Messages) == 0 {
		log, err = s.bootstrap(ctx, surveyID, responseID, seed)
		if err != nil {
			return nil, err
		}
		// The opening question was cached as message 2 during bootstrap.
		turnContent = log.Messages()[1].Content
	} else {
		log, err = chatlog.New(ctx, record.Messages, s.gw, false, seed)
		if err != nil {
			return nil, err
		}

		index := log.Cursor()
		if editIndex != nil {
			index = *editIndex
		}
		if _, err := log.InsertAndUpdate(content, index, model.RoleUser); err != nil {
			return nil, err
		}

		reply, err := s.gw.Run(ctx, log.Messages(), seed, true)
		if err != nil {
			return nil, err
		}
		if _, err := log.InsertAndUpdate(reply, log.Cursor(), model.RoleAssistant); err != nil {
			return nil, err
		}
		turnContent = reply
	}

	isLast, err := chatlog.CheckExit(ctx, log.Messages(), s.gw, seed, chatlog.DefaultDelim, s.logger)
	if err != nil {
		return nil, err
	}

	record.Messages = log.Messages()
	if err := s.chatRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}
	if err := s.chatCache.Set(ctx, record); err != nil {
		// The repo write already succeeded; a cache miss on the next
		// turn just costs a MongoDB read.
		s.logger.Warn("chat log cache write failed", zap.Error(err))
	}

	turn := &model.ChatTurn{
		Content:  turnContent,
		IsLast:   isLast,
		Messages: record.Messages,
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastTurn(surveyID, responseID, turn)
	}
	return turn, nil
}

// GetChatLog returns the persisted conversation for admin review.
func (s *InterviewService) GetChatLog(ctx context.Context, surveyID, responseID string) (*model.ChatRecord, error) {
	record, err := s.loadRecord(ctx, surveyID, responseID)
	if err != nil {
		return nil, err
	}
	if len(record.Messages) == 0 {
		return nil, ErrChatLogNotFound
	}
	return record, nil
}

func (s *InterviewService) loadRecord(ctx context.Context, surveyID, responseID string) (*model.ChatRecord, error) {
	record, err := s.chatCache.Get(ctx, surveyID, responseID)
	if err != nil {
		s.logger.Warn("chat log cache read failed", zap.Error(err))
	}
	if record != nil {
		return record, nil
	}

	record, err = s.chatRepo.Get(ctx, surveyID, responseID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		record = &model.ChatRecord{SurveyID: surveyID, ResponseID: responseID}
	}
	return record, nil
}

func (s *InterviewService) bootstrap(ctx context.Context, surveyID, responseID string, seed int64) (*chatlog.ChatLog, error) {
	survey, err := s.surveys.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	response, err := s.responses.GetByID(ctx, surveyID, responseID)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, ErrResponseNotFound
	}

	return chatlog.Construct(ctx, ChatContextFor(survey, response), s.gw, seed)
}
