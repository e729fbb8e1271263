package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/event"
	"github.com/osse101/NexTracker_Go/internal/logger"
	"github.com/osse101/NexTracker_Go/internal/metrics"
	"github.com/osse101/NexTracker_Go/internal/worker"
)

// MessageSender is the subset of *discordgo.Session the notifier uses
type MessageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Enqueuer schedules background jobs
type Enqueuer interface {
	Enqueue(job worker.Job) error
}

// NewSession creates a bot session for posting messages; no gateway connection is opened
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return s, nil
}

// Notifier posts fight results to a Discord channel
type Notifier struct {
	sender     MessageSender
	channelID  string
	pool       Enqueuer
	newBackOff func() backoff.BackOff
}

// NewNotifier creates a notifier. A nil sender or empty channel disables it.
func NewNotifier(sender MessageSender, channelID string, pool Enqueuer) *Notifier {
	return &Notifier{
		sender:    sender,
		channelID: channelID,
		pool:      pool,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = InitialSendInterval
			b.MaxInterval = MaxSendInterval
			return b
		},
	}
}

// Enabled reports whether notifications will be sent
func (n *Notifier) Enabled() bool {
	return n.sender != nil && n.channelID != "" && n.pool != nil
}

// Register subscribes to fight results when enabled
func (n *Notifier) Register(bus event.Bus) {
	if !n.Enabled() {
		logger.Info(LogMsgNotifierDisabled)
		return
	}
	bus.Subscribe(event.FightResults, n.handleResults)
	logger.Info(LogMsgNotifierRegistered, "channel_id", n.channelID)
}

// handleResults runs on the session goroutine, so the send itself is queued
func (n *Notifier) handleResults(ctx context.Context, evt event.Event) error {
	summary, err := event.DecodePayload[domain.FightSummary](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "error", err)
		return nil
	}

	job := &sendJob{notifier: n, fightID: summary.FightID, embed: BuildResultsEmbed(summary)}
	if err := n.pool.Enqueue(job); err != nil {
		metrics.Notifications.WithLabelValues(metrics.OutcomeFailed).Inc()
		logger.FromContext(ctx).Warn(LogMsgEnqueueFailed, "fight_id", summary.FightID, "error", err)
	}
	return nil
}

// sendJob delivers one embed with bounded exponential backoff
type sendJob struct {
	notifier *Notifier
	fightID  string
	embed    *discordgo.MessageEmbed
}

func (j *sendJob) Process(ctx context.Context) error {
	n := j.notifier
	log := logger.FromContext(logger.WithFightID(ctx, j.fightID))

	op := func() error {
		_, err := n.sender.ChannelMessageSendEmbed(n.channelID, j.embed)
		return err
	}
	notify := func(err error, wait time.Duration) {
		log.Warn(LogMsgSendRetry, "error", err, "retry_in", wait)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(n.newBackOff(), MaxSendRetries), ctx)
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		metrics.Notifications.WithLabelValues(metrics.OutcomeFailed).Inc()
		return fmt.Errorf("failed to send fight %s results to Discord: %w", j.fightID, err)
	}

	metrics.Notifications.WithLabelValues(metrics.OutcomeSent).Inc()
	log.Info(LogMsgNotificationSent)
	return nil
}

// BuildResultsEmbed renders a fight summary as a Discord embed
func BuildResultsEmbed(s domain.FightSummary) *discordgo.MessageEmbed {
	color := ColorNone
	switch {
	case s.IsMVP:
		color = ColorMVP
	case s.IsEligible:
		color = ColorEligible
	}

	embed := &discordgo.MessageEmbed{
		Title: embedTitle,
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: fieldOwnDamage, Value: fmt.Sprintf("%d", s.OwnDamage), Inline: true},
			{Name: fieldTotalDamage, Value: fmt.Sprintf("%d", s.TotalDamage), Inline: true},
			{Name: fieldShare, Value: fmt.Sprintf("%.2f%%", s.Share()*100), Inline: true},
			{Name: fieldDuration, Value: formatTicks(s.Ticks), Inline: true},
			{Name: fieldPlayers, Value: fmt.Sprintf("%d", s.PeakPlayers), Inline: true},
			{Name: fieldMVP, Value: yesNo(s.IsMVP), Inline: true},
			{Name: fieldEligible, Value: yesNo(s.IsEligible), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf(embedFooterFormat, s.FightID),
		},
	}
	if name := DisplayName(s.PlayerName); name != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: name}
	}
	if !s.EndedAt.IsZero() {
		embed.Timestamp = s.EndedAt.Format(time.RFC3339)
	}
	return embed
}

// DisplayName capitalizes each word of a player name as the game shows it.
// Clients may report names lower-cased or separated by non-breaking spaces;
// the rest of each word keeps its case.
func DisplayName(name string) string {
	return cases.Title(language.English, cases.NoLower).String(strings.Join(strings.Fields(name), " "))
}

// formatTicks renders a tick count as game time (0.6s per tick)
func formatTicks(ticks int) string {
	d := time.Duration(ticks) * 600 * time.Millisecond
	return fmt.Sprintf("%s (%d ticks)", d.Round(time.Second), ticks)
}

func yesNo(b bool) string {
	if b {
		return valueYes
	}
	return valueNo
}
