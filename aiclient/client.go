package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/linskybing/gpu-reserve-go/config"
	"github.com/linskybing/gpu-reserve-go/models"
)

// ErrInterpretationFailed wraps every failure of the language model boundary:
// transport errors, timeouts and unparseable replies. Callers may retry.
var ErrInterpretationFailed = errors.New("interpretation failed")

// Candidate is the structured reservation proposal extracted from a
// natural-language request. It is untrusted input: the reservation service
// re-validates every field before committing anything.
type Candidate struct {
	Purpose          string    `json:"purpose"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	ServerPreference string    `json:"server_preference,omitempty"`
	PriorityScore    int       `json:"priority_score"`
	Justification    string    `json:"justification,omitempty"`
	Raw              []byte    `json:"-"`
}

// Interpreter is the boundary the reservation service depends on.
type Interpreter interface {
	Interpret(ctx context.Context, rawText string, user models.User) (Candidate, error)
}

type Client struct {
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration
	HTTP     *http.Client
}

func New() *Client {
	return &Client{
		Endpoint: config.AIEndpoint,
		APIKey:   config.AIAPIKey,
		Model:    config.AIModel,
		Timeout:  config.AITimeout,
		HTTP:     &http.Client{},
	}
}

const promptTemplate = `You are the scheduler of a shared GPU server pool.
Current time: %s
User: %s

Reservation request: %s

Extract the reservation and score its priority from 0 to 100 based on
urgency, deadlines and efficient use of the pool. Reply with a single JSON
object, times in RFC 3339:
{"purpose": "...", "start_time": "...", "end_time": "...", "server_preference": "", "priority_score": 0, "justification": "..."}
If no date is given assume today or tomorrow; if no duration is given assume
two hours.`

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// rawCandidate is the wire shape the model replies with. Times arrive as
// strings so that a malformed timestamp is reported, not silently zeroed.
type rawCandidate struct {
	Purpose          string `json:"purpose"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	ServerPreference string `json:"server_preference"`
	PriorityScore    *int   `json:"priority_score"`
	Justification    string `json:"justification"`
}

func (c *Client) Interpret(ctx context.Context, rawText string, user models.User) (Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	prompt := fmt.Sprintf(promptTemplate, time.Now().Format(time.RFC3339), user.Username, rawText)
	body, err := json.Marshal(chatRequest{
		Model:    c.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: %v", ErrInterpretationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: %v", ErrInterpretationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Candidate{}, fmt.Errorf("%w: timeout", ErrInterpretationFailed)
		}
		return Candidate{}, fmt.Errorf("%w: %v", ErrInterpretationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Candidate{}, fmt.Errorf("%w: upstream status %d", ErrInterpretationFailed, resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: %v", ErrInterpretationFailed, err)
	}

	var chat chatResponse
	if err := json.Unmarshal(payload, &chat); err != nil || len(chat.Choices) == 0 {
		return Candidate{}, fmt.Errorf("%w: malformed completion", ErrInterpretationFailed)
	}

	return parseCandidate(chat.Choices[0].Message.Content)
}

func parseCandidate(reply string) (Candidate, error) {
	match := jsonObjectPattern.FindString(reply)
	if match == "" {
		return Candidate{}, fmt.Errorf("%w: no JSON object in reply", ErrInterpretationFailed)
	}

	var raw rawCandidate
	if err := json.Unmarshal([]byte(match), &raw); err != nil {
		return Candidate{}, fmt.Errorf("%w: %v", ErrInterpretationFailed, err)
	}

	start, err := parseTime(raw.StartTime)
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: bad start_time %q", ErrInterpretationFailed, raw.StartTime)
	}
	end, err := parseTime(raw.EndTime)
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: bad end_time %q", ErrInterpretationFailed, raw.EndTime)
	}

	score := config.DefaultPriority
	if raw.PriorityScore != nil {
		score = clampScore(*raw.PriorityScore)
	}

	return Candidate{
		Purpose:          raw.Purpose,
		StartTime:        start,
		EndTime:          end,
		ServerPreference: raw.ServerPreference,
		PriorityScore:    score,
		Justification:    raw.Justification,
		Raw:              []byte(match),
	}, nil
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func parseTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
