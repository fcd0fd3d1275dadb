package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/careercompass/backend/internal/gemini"
	"github.com/careercompass/backend/internal/httpx"
	"github.com/careercompass/backend/internal/models"
)

type memoryStore struct {
	mu      sync.Mutex
	records []models.ChatRecord
	clock   time.Time
	err     error
}

func (m *memoryStore) Insert(_ context.Context, rec *models.ChatRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.clock = m.clock.Add(time.Millisecond)
	rec.ID = primitive.NewObjectID()
	rec.CreatedAt = m.clock
	m.records = append(m.records, *rec)
	return nil
}

func (m *memoryStore) ListByUser(_ context.Context, userID string) ([]models.ChatRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ChatRecord
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

type mockResponder struct {
	mock.Mock
}

func (m *mockResponder) Respond(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func TestSendUsesAIReply(t *testing.T) {
	st := &memoryStore{clock: time.Now()}
	ai := new(mockResponder)
	ai.On("Respond", mock.Anything, "How do I grow as a data analyst?").Return("Learn SQL.", nil).Once()

	svc := NewService(st, ai, zap.NewNop())
	rec, err := svc.Send(context.Background(), "u1", "How do I grow as a data analyst?")
	require.NoError(t, err)

	assert.Equal(t, "Learn SQL.", rec.Response)
	assert.Equal(t, "u1", rec.UserID)
	assert.False(t, rec.ID.IsZero())
	assert.Equal(t, 1, st.count())
	ai.AssertExpectations(t)
}

func TestSendFallsBackOnAIFailure(t *testing.T) {
	failures := []error{
		&gemini.Failure{Kind: gemini.MissingKey},
		&gemini.Failure{Kind: gemini.BadStatus, Status: 503},
		errors.New("boom"),
	}
	for _, ferr := range failures {
		t.Run(ferr.Error(), func(t *testing.T) {
			st := &memoryStore{clock: time.Now()}
			ai := new(mockResponder)
			ai.On("Respond", mock.Anything, mock.Anything).Return("", ferr)

			svc := NewService(st, ai, zap.NewNop())
			rec, err := svc.Send(context.Background(), "u1", "any interview tips?")
			require.NoError(t, err)

			assert.Equal(t, keywordGroups[5].reply, rec.Response)
			assert.Equal(t, 1, st.count())
		})
	}
}

func TestSendRejectsBlankMessage(t *testing.T) {
	for _, msg := range []string{"", "   ", "\n\t"} {
		st := &memoryStore{}
		ai := new(mockResponder)

		svc := NewService(st, ai, zap.NewNop())
		_, err := svc.Send(context.Background(), "u1", msg)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, httpx.StatusCode(err))
		assert.Equal(t, "Message field is required.", err.Error())
		assert.Zero(t, st.count())
		ai.AssertNotCalled(t, "Respond", mock.Anything, mock.Anything)
	}
}

func TestSendStoreFailure(t *testing.T) {
	st := &memoryStore{err: errors.New("mongo down")}
	ai := new(mockResponder)
	ai.On("Respond", mock.Anything, mock.Anything).Return("ok", nil)

	svc := NewService(st, ai, zap.NewNop())
	_, err := svc.Send(context.Background(), "u1", "hi")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, httpx.StatusCode(err))
}

func TestHistory(t *testing.T) {
	st := &memoryStore{clock: time.Now()}
	ai := new(mockResponder)
	ai.On("Respond", mock.Anything, mock.Anything).Return("reply", nil)
	svc := NewService(st, ai, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Send(ctx, "u1", fmt.Sprintf("message %d", i))
		require.NoError(t, err)
	}
	_, err := svc.Send(ctx, "u2", "someone else")
	require.NoError(t, err)

	recs, err := svc.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "message 2", recs[0].Message)
	assert.Equal(t, "message 0", recs[2].Message)
	for _, r := range recs {
		assert.Equal(t, "u1", r.UserID)
	}

	recs, err = svc.History(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}
