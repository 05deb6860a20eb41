package moderation

import (
	"context"
	"errors"
	"testing"

	domain "github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newClassifier(t *testing.T, family domain.Family) (Classifier, *mocks.Client) {
	t.Helper()
	client := mocks.NewClient(t)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	cfg := ClassifierConfig{
		Family:       family,
		ProviderName: "huggingface",
		Provider:     providers.Config{Model: "Qwen/Qwen1.5-1.8B", MaxTokens: 4},
	}
	return NewClassifier(logger, client, NewPromptBuilder("policy"), cfg), client
}

func reply(text string) *providers.CompletionResponse {
	return &providers.CompletionResponse{Response: text}
}

func TestClassify_StatelessFlagged(t *testing.T) {
	c, client := newClassifier(t, domain.FamilyStateless)
	comment := "Deport all immigrants now."
	client.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(cfg *providers.Config) bool { return cfg.MaxTokens == 4 }),
			"System: policy\nUser: Deport all immigrants now.\nAssistant:").
		Return(reply("Flagged"), nil)

	res, err := c.Classify(context.Background(), comment, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.LabelFlagged, res.Label)
	assert.Equal(t, domain.History{domain.NewTurn(comment, "flagged")}, res.History)
}

func TestClassify_StatelessOkay(t *testing.T) {
	c, client := newClassifier(t, domain.FamilyStateless)
	client.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).Return(reply("okay."), nil)

	res, err := c.Classify(context.Background(), "We need to invest more in housing policy.", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.LabelOkay, res.Label)
}

func TestClassify_StatelessEmptyOutputDefaultsToOkay(t *testing.T) {
	c, client := newClassifier(t, domain.FamilyStateless)
	client.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).Return(reply(""), nil)

	res, err := c.Classify(context.Background(), "xyz", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.LabelOkay, res.Label)
}

func TestClassify_StatelessAppendsExactlyOneTurn(t *testing.T) {
	c, client := newClassifier(t, domain.FamilyStateless)
	prior := domain.History{domain.NewTurn("a", "okay"), domain.NewTurn("b", "flagged")}
	// Prior turns never reach the model in this family.
	client.EXPECT().
		Generate(mock.Anything, mock.Anything, "System: policy\nUser: c\nAssistant:").
		Return(reply("okay"), nil)

	res, err := c.Classify(context.Background(), "c", prior)
	require.NoError(t, err)

	require.Len(t, res.History, len(prior)+1)
	assert.Equal(t, prior, res.History[:len(prior)])
	assert.Equal(t, domain.NewTurn("c", "okay"), res.History[len(prior)])
	assert.Len(t, prior, 2)
}

func TestClassify_HistoryAwareInjectsPolicy(t *testing.T) {
	c, client := newClassifier(t, domain.FamilyHistoryAware)
	prior := domain.History{domain.NewTurn("a", "okay")}
	expected := domain.History{domain.NewTurn("policy", ""), domain.NewTurn("a", "okay")}
	client.EXPECT().Chat(mock.Anything, mock.Anything, expected, "b").Return(reply("FLAGGED"), nil)

	res, err := c.Classify(context.Background(), "b", prior)
	require.NoError(t, err)

	assert.Equal(t, domain.LabelFlagged, res.Label)
	assert.Equal(t, expected.Append(domain.NewTurn("b", "flagged")), res.History)
}

func TestClassify_HistoryAwarePolicyAlreadyPresent(t *testing.T) {
	c, client := newClassifier(t, domain.FamilyHistoryAware)
	prior := domain.History{domain.NewTurn("policy", ""), domain.NewTurn("a", "okay")}
	client.EXPECT().Chat(mock.Anything, mock.Anything, prior, "b").Return(reply("sure, okay"), nil)

	res, err := c.Classify(context.Background(), "b", prior)
	require.NoError(t, err)

	assert.Equal(t, domain.LabelOkay, res.Label)
	assert.Len(t, res.History, 3)
}

func TestClassify_GenerationErrorPropagates(t *testing.T) {
	for _, family := range []domain.Family{domain.FamilyStateless, domain.FamilyHistoryAware} {
		t.Run(family.String(), func(t *testing.T) {
			c, client := newClassifier(t, family)
			boom := errors.New("CUDA out of memory")
			if family == domain.FamilyStateless {
				client.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)
			} else {
				client.EXPECT().Chat(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)
			}

			res, err := c.Classify(context.Background(), "x", nil)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrGeneration)
			assert.ErrorIs(t, err, boom)
		})
	}
}

func TestClassify_UnknownFamily(t *testing.T) {
	c, _ := newClassifier(t, domain.Family("streaming"))

	_, err := c.Classify(context.Background(), "x", nil)
	assert.ErrorIs(t, err, domain.ErrUnknownFamily)
}

func TestPromptBuilder_DefaultPolicy(t *testing.T) {
	b := NewPromptBuilder("")
	assert.Equal(t, domain.PolicyPrompt, b.Policy())
}
