package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/ports"
)

const (
	maxAgentResponseBytes = 1 << 16
	appIDHeader           = "X-ROFL-App-ID"
)

var (
	errUnsignedMood     = errors.New("agent response is not signed")
	errSignatureInvalid = errors.New("agent signature does not match agent address")
)

// Agent queries a remote mood agent over HTTP. Every failure is reported as
// domain.ErrOracleUnavailable so callers can fall back.
type Agent struct {
	BaseURL        string
	AppID          string
	Token          string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	// VerifySignature recovers the signer of message and requires it to be agentAddress.
	VerifySignature bool
}

var _ ports.MoodOracle = Agent{}

type moodResponse struct {
	PetID        string `json:"petId"`
	Mood         string `json:"mood"`
	Message      string `json:"message"`
	Timestamp    int64  `json:"timestamp"`
	Signature    string `json:"signature"`
	AgentAddress string `json:"agentAddress"`
}

func (a Agent) QueryAttribute(ctx context.Context, key domain.PersonalityKey) (string, error) {
	mood, err := a.fetch(ctx, key.ID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrOracleUnavailable, err)
	}
	return mood, nil
}

func (a Agent) fetch(ctx context.Context, id domain.EntityID) (string, error) {
	endpoint, err := a.moodURL(id)
	if err != nil {
		return "", err
	}

	requestCtx, cancel := a.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create mood request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if a.AppID != "" {
		req.Header.Set(appIDHeader, a.AppID)
	}
	if a.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.Token)
	}

	resp, err := a.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("request mood: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("mood agent returned status %d", resp.StatusCode)
	}

	var payload moodResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxAgentResponseBytes)).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode mood response: %w", err)
	}
	if payload.Signature == "" || payload.AgentAddress == "" {
		return "", errUnsignedMood
	}
	if payload.PetID != "" && payload.PetID != string(id) {
		return "", fmt.Errorf("mood response for %q, asked for %q", payload.PetID, id)
	}
	if a.VerifySignature {
		if err := verifyAgentSignature(payload); err != nil {
			return "", err
		}
	}

	mood := strings.TrimSpace(payload.Message)
	if mood == "" {
		mood = strings.TrimSpace(payload.Mood)
	}
	if mood == "" {
		return "", errors.New("mood response missing mood")
	}
	return mood, nil
}

// verifyAgentSignature checks an EIP-191 personal signature over message.
func verifyAgentSignature(payload moodResponse) error {
	if !common.IsHexAddress(payload.AgentAddress) {
		return fmt.Errorf("invalid agent address %q", payload.AgentAddress)
	}
	sig, err := hexutil.Decode(payload.Signature)
	if err != nil {
		return fmt.Errorf("decode agent signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return fmt.Errorf("agent signature has %d bytes", len(sig))
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(payload.Message)), sig)
	if err != nil {
		return fmt.Errorf("recover agent signer: %w", err)
	}
	if crypto.PubkeyToAddress(*pub) != common.HexToAddress(payload.AgentAddress) {
		return errSignatureInvalid
	}
	return nil
}

func (a Agent) moodURL(id domain.EntityID) (string, error) {
	if a.BaseURL == "" {
		return "", errors.New("mood agent url is required")
	}

	parsed, err := url.Parse(a.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse mood agent url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("mood agent url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("mood agent url host is required")
	}

	parsed.Path = strings.TrimRight(parsed.Path, "/") + "/mood"
	q := parsed.Query()
	q.Set("petId", string(id))
	parsed.RawQuery = q.Encode()

	return parsed.String(), nil
}

func (a Agent) httpClient() *http.Client {
	if a.HTTPClient != nil {
		return a.HTTPClient
	}
	return http.DefaultClient
}

func (a Agent) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := a.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 10 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

