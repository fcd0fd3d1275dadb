package colleges

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/careercompass/backend/internal/gemini"
	"github.com/careercompass/backend/internal/httpx"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type mockArchive struct {
	mock.Mock
}

func (m *mockArchive) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func names(t *testing.T, data []json.RawMessage) []string {
	t.Helper()
	out := make([]string, 0, len(data))
	for _, d := range data {
		var c struct {
			Name string `json:"name"`
		}
		require.NoError(t, json.Unmarshal(d, &c))
		out = append(out, c.Name)
	}
	return out
}

func TestSearchUsesAIOutput(t *testing.T) {
	gen := new(mockGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, `"Data Science"`) && strings.Contains(p, `"Bengaluru"`)
	})).Return("```json\n[{\"name\":\"IISc\",\"rating\":4.9},{\"name\":\"IIIT Bangalore\"}]\n```", nil)

	res, err := NewService(gen, nil, zap.NewNop()).Search(context.Background(), " Data Science ", "Bengaluru")
	require.NoError(t, err)

	assert.Equal(t, "success", res.Status)
	assert.Equal(t, 2, res.Count)
	assert.Empty(t, res.Note)
	assert.JSONEq(t, `{"name":"IISc","rating":4.9}`, string(res.Data[0]))
	gen.AssertExpectations(t)
}

func TestSearchDefaultsLocation(t *testing.T) {
	gen := new(mockGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, `"India"`)
	})).Return(`[{"name":"X"}]`, nil)

	_, err := NewService(gen, nil, zap.NewNop()).Search(context.Background(), "law", "")
	require.NoError(t, err)
	gen.AssertExpectations(t)
}

func TestSearchParseFailureFallsBack(t *testing.T) {
	gen := new(mockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("I recommend IIT Bombay.", nil)
	archive := new(mockArchive)
	archive.On("Upload", mock.Anything, mock.MatchedBy(func(k string) bool {
		return strings.HasPrefix(k, "colleges/rejected/") && strings.HasSuffix(k, ".txt")
	}), []byte("I recommend IIT Bombay."), mock.Anything).Return(nil).Once()

	res, err := NewService(gen, archive, zap.NewNop()).Search(context.Background(), "Computer Science", "")
	require.NoError(t, err)

	assert.Equal(t, fallbackNote, res.Note)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, []string{
		"Indian Institute of Technology Bombay",
		"Indian Institute of Technology Delhi",
		"Birla Institute of Technology and Science, Pilani",
	}, names(t, res.Data))
	archive.AssertExpectations(t)
}

func TestSearchArchiveErrorIgnored(t *testing.T) {
	gen := new(mockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("[]", nil)
	archive := new(mockArchive)
	archive.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("minio down"))

	res, err := NewService(gen, archive, zap.NewNop()).Search(context.Background(), "MBA", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Indian Institute of Management Ahmedabad"}, names(t, res.Data))
	assert.Equal(t, fallbackNote, res.Note)
}

func TestSearchAIFailureFallsBack(t *testing.T) {
	tests := []struct {
		field string
		want  []string
	}{
		{"Medicine", []string{"All India Institute of Medical Sciences"}},
		{"Business Management", []string{"Indian Institute of Management Ahmedabad"}},
		{"Software Engineering", []string{
			"Indian Institute of Technology Bombay",
			"Indian Institute of Technology Delhi",
			"Birla Institute of Technology and Science, Pilani",
		}},
		{"History", []string{
			"Indian Institute of Technology Bombay",
			"Indian Institute of Technology Delhi",
			"Indian Institute of Management Ahmedabad",
			"All India Institute of Medical Sciences",
		}},
	}
	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			gen := new(mockGenerator)
			gen.On("Generate", mock.Anything, mock.Anything).Return("", &gemini.Failure{Kind: gemini.Unavailable})
			archive := new(mockArchive)

			res, err := NewService(gen, archive, zap.NewNop()).Search(context.Background(), tc.field, "")
			require.NoError(t, err)
			assert.Equal(t, tc.want, names(t, res.Data))
			assert.Equal(t, len(tc.want), res.Count)
			assert.Equal(t, fallbackNote, res.Note)
			archive.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSearchRequiresField(t *testing.T) {
	gen := new(mockGenerator)
	_, err := NewService(gen, nil, zap.NewNop()).Search(context.Background(), "   ", "Delhi")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpx.StatusCode(err))
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}
