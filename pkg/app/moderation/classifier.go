package moderation

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers"
	"github.com/sirupsen/logrus"
)

var ErrGeneration = errors.New("generation failed")

type Result struct {
	Label   domain.Label
	History domain.History
}

//go:generate mockery --name=Classifier --dir=. --output=./mocks --filename=classifier_mock.go --case=underscore --with-expecter
type Classifier interface {
	Classify(ctx context.Context, comment string, history domain.History) (*Result, error)
}

type ClassifierConfig struct {
	Family       domain.Family
	ProviderName string
	Provider     providers.Config
}

type classifier struct {
	logger   *logrus.Logger
	client   providers.Client
	builder  *PromptBuilder
	family   domain.Family
	provider string
	config   providers.Config
}

func NewClassifier(
	logger *logrus.Logger,
	client providers.Client,
	builder *PromptBuilder,
	cfg ClassifierConfig,
) Classifier {
	return &classifier{
		logger:   logger,
		client:   client,
		builder:  builder,
		family:   cfg.Family,
		provider: cfg.ProviderName,
		config:   cfg.Provider,
	}
}

// Classify runs exactly one generation. Failures are returned as-is, wrapped
// in ErrGeneration; no label is ever substituted.
func (c *classifier) Classify(ctx context.Context, comment string, history domain.History) (*Result, error) {
	var (
		result *Result
		err    error
	)
	switch c.family {
	case domain.FamilyHistoryAware:
		result, err = c.classifyConversation(ctx, comment, history)
	case domain.FamilyStateless:
		result, err = c.classifyFlat(ctx, comment, history)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFamily, c.family)
	}
	if err != nil {
		prometheus.GenerationFailures.WithLabelValues(c.provider).Inc()
		c.logger.WithError(err).WithFields(logrus.Fields{
			"model":    c.config.Model,
			"provider": c.provider,
			"family":   c.family.String(),
		}).Error("model generation failed")
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	if prometheus.Config.EnableLabels {
		prometheus.LabelsTotal.WithLabelValues(result.Label.String(), c.family.String()).Inc()
	}
	c.logger.WithFields(logrus.Fields{
		"label":  result.Label,
		"family": c.family.String(),
	}).Debug("comment classified")
	return result, nil
}

// classifyConversation returns the policy-led history with the new turn
// appended, so callers can resubmit it unchanged.
func (c *classifier) classifyConversation(ctx context.Context, comment string, prior domain.History) (*Result, error) {
	conversation := c.builder.Conversation(prior)
	cfg := c.config
	resp, err := c.client.Chat(ctx, &cfg, conversation, comment)
	if err != nil {
		return nil, err
	}
	label := domain.Normalize(resp.Response)
	return &Result{
		Label:   label,
		History: conversation.Append(domain.NewTurn(comment, label.String())),
	}, nil
}

// classifyFlat sends only the current comment to the model while still
// extending the caller's history.
func (c *classifier) classifyFlat(ctx context.Context, comment string, prior domain.History) (*Result, error) {
	cfg := c.config
	resp, err := c.client.Generate(ctx, &cfg, c.builder.Flat(comment))
	if err != nil {
		return nil, err
	}
	label := domain.Normalize(resp.Response)
	return &Result{
		Label:   label,
		History: prior.Append(domain.NewTurn(comment, label.String())),
	}, nil
}
