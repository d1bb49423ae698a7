package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/loomworks/quarry/internal/corpus"
)

// SubjectBuildCompleted announces a finished corpus build so a trainer can
// pick the files up.
const SubjectBuildCompleted = "corpus.build.completed"

// BuildCompleted is the payload published after a successful build.
type BuildCompleted struct {
	RunID      string    `json:"run_id"`
	FinishedAt time.Time `json:"finished_at"`
	TotalLines int       `json:"total_lines"`
	Outputs    []string  `json:"outputs"`
	Warnings   int       `json:"warnings"`
}

// Publisher announces build results over NATS. It performs one-shot
// publishes only; there are no subscriptions.
type Publisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewPublisher(url, token string, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: nc, logger: logger}, nil
}

// buildCompletedEvent flattens a manifest into the published payload.
func buildCompletedEvent(m *corpus.Manifest) BuildCompleted {
	outputs := make([]string, 0, len(m.Outputs))
	for _, o := range m.Outputs {
		outputs = append(outputs, o.Path)
	}
	return BuildCompleted{
		RunID:      m.RunID.String(),
		FinishedAt: m.FinishedAt,
		TotalLines: m.TotalLines(),
		Outputs:    outputs,
		Warnings:   len(m.Warnings),
	}
}

// PublishBuildCompleted emits the manifest summary on the build-completed
// subject and flushes before returning, since the process exits right after.
func (p *Publisher) PublishBuildCompleted(m *corpus.Manifest) error {
	evt := buildCompletedEvent(m)

	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.conn.Publish(SubjectBuildCompleted, payload); err != nil {
		return fmt.Errorf("publish %s: %w", SubjectBuildCompleted, err)
	}
	if err := p.conn.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	p.logger.Info("build event published", "subject", SubjectBuildCompleted, "run_id", evt.RunID)
	return nil
}

func (p *Publisher) Close() {
	p.conn.Close()
}
