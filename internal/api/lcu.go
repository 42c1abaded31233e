package api

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"lcu-scout/internal/config"
	"lcu-scout/internal/constants"
	"lcu-scout/internal/discovery"
	"lcu-scout/internal/domain"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

type LCUClient struct {
	baseURL string
	auth    string
	timeout time.Duration
	client  *fasthttp.Client
	logger  zerolog.Logger
}

func NewLCUClient(creds *discovery.Credentials, cfg *config.Config, logger zerolog.Logger) *LCUClient {
	baseURL := fmt.Sprintf("https://%s:%s", constants.LCUHost, creds.Port)
	return newLCUClient(baseURL, creds.Token, cfg.RequestTimeout, &fasthttp.Client{
		// the LCU serves a self-signed certificate on loopback only
		TLSConfig:           &tls.Config{InsecureSkipVerify: true},
		MaxConnsPerHost:     4,
		ReadTimeout:         cfg.RequestTimeout,
		WriteTimeout:        cfg.RequestTimeout,
		MaxIdleConnDuration: 1 * time.Minute,
	}, logger)
}

func newLCUClient(baseURL, token string, timeout time.Duration, hc *fasthttp.Client, logger zerolog.Logger) *LCUClient {
	return &LCUClient{
		baseURL: baseURL,
		auth:    BasicAuth(token),
		timeout: timeout,
		client:  hc,
		logger:  logger.With().Str("component", "lcu").Logger(),
	}
}

// BasicAuth builds the Authorization header value the LCU expects.
func BasicAuth(token string) string {
	creds := constants.LCUAuthUser + ":" + token
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
}

// FindActiveConversationID returns the id of the champion select chat.
func (c *LCUClient) FindActiveConversationID(ctx context.Context) (string, error) {
	conversations, err := doRequest[[]conversationResponse](ctx, c, constants.ConversationsPath)
	if err != nil {
		return "", err
	}

	for _, conv := range *conversations {
		if d := conv.toDomain(); d.Type == constants.ChampSelect {
			c.logger.Debug().Str("conversation_id", d.ID).Msg("found champion select conversation")
			return d.ID, nil
		}
	}

	c.logger.Warn().Int("conversations", len(*conversations)).Msg("no champion select conversation")
	return "", ErrNoConversation
}

// ListParticipantIDs returns the distinct sender ids of the conversation's
// messages in the order they were first seen.
func (c *LCUClient) ListParticipantIDs(ctx context.Context, conversationID string) ([]string, error) {
	path := fmt.Sprintf(constants.MessagesPath, url.PathEscape(conversationID))
	messages, err := doRequest[[]messageResponse](ctx, c, path)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(*messages))
	ids := make([]string, 0, len(*messages))
	for _, m := range *messages {
		msg := m.toDomain()
		if msg.FromID == "" {
			continue
		}
		if _, ok := seen[msg.FromID]; ok {
			continue
		}
		seen[msg.FromID] = struct{}{}
		ids = append(ids, msg.FromID)
	}

	c.logger.Debug().Strs("participant_ids", ids).Msg("participants queried")
	return ids, nil
}

func (c *LCUClient) FetchMatchHistory(ctx context.Context, participantID string) (*domain.MatchHistory, error) {
	path := fmt.Sprintf(constants.MatchHistoryPath, url.PathEscape(participantID))
	history, err := doRequest[matchHistoryResponse](ctx, c, path)
	if err != nil {
		return nil, err
	}

	h := history.toDomain()
	c.logger.Debug().
		Str("participant_id", participantID).
		Int("games", len(h.Games.Games)).
		Msg("match history fetched")
	return h, nil
}

func doRequest[T any](ctx context.Context, client *LCUClient, path string) (*T, error) {
	if client.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, client.timeout)
		defer cancel()
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(client.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", client.auth)
	req.Header.Set("Accept", "application/json")

	var err error
	deadline, ok := ctx.Deadline()
	if ok {
		err = client.client.DoDeadline(req, resp, deadline)
	} else {
		err = client.client.Do(req, resp)
	}
	if err != nil {
		client.logger.Error().Err(err).Str("path", path).Msg("lcu unreachable")
		return nil, &TransportError{Path: path, Err: err}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		client.logger.Warn().Int("status", resp.StatusCode()).Str("path", path).Msg("unexpected lcu response")
		return nil, fmt.Errorf("%s: %w: %d", path, ErrUnexpectedStatus, resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		client.logger.Warn().Err(err).Str("path", path).Msg("failed to decode lcu response")
		return nil, fmt.Errorf("%s: %w: %v", path, ErrMalformedBody, err)
	}
	return &result, nil
}
