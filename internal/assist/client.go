package assist

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"

	"github.com/vidget/media-downloader/internal/model"
)

const systemInstruction = `Você é um assistente prestativo de busca de vídeos do YouTube. O usuário fornecerá uma consulta e você encontrará um vídeo adequado. Você também pode refinar a busca com base em solicitações de acompanhamento. Sempre responda APENAS com o objeto JSON solicitado, com os campos title, channel, duration (MM:SS ou HH:MM:SS), uploadDate (YYYY-MM-DD), views, likes e description (máximo 200 caracteres).`

const (
	initiateMessageFormat = `Encontre um vídeo do YouTube para esta consulta: "%s"`
	refineMessageFormat   = `Ok, agora refine a busca anterior com esta instrução: "%s"`
)

const completionModel = openai.GPT4o

// ErrNoSession is returned when a refinement is requested without an
// initiated session. No network call is made in that case.
var ErrNoSession = errors.New("no active assisted search session")

// Session is the opaque handle of one multi-turn assisted search
// conversation. It accumulates turn history so refinements see the
// preceding query and answers.
type Session struct {
	messages []openai.ChatCompletionMessage
}

// Client wraps the chat completion API for assisted search
type Client struct {
	api *openai.Client
}

// NewClient creates an assisted search client for the given API key
func NewClient(apiKey string) *Client {
	return &Client{api: openai.NewClient(apiKey)}
}

// NewClientWithConfig creates a client from an explicit configuration.
// Tests use it to point the transport at a local server.
func NewClientWithConfig(cfg openai.ClientConfig) *Client {
	return &Client{api: openai.NewClientWithConfig(cfg)}
}

// Initiate opens a new session and asks for a video matching the free-text
// query. On any failure the session is not returned; no partial state is
// kept.
func (c *Client) Initiate(ctx context.Context, query string) (*Session, *model.VideoInfo, error) {
	sess := &Session{
		messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemInstruction,
		}},
	}

	info, err := c.send(ctx, sess, fmt.Sprintf(initiateMessageFormat, query))
	if err != nil {
		return nil, nil, err
	}

	return sess, info, nil
}

// Refine sends a follow-up instruction on an existing session. The session
// survives a failed refinement; only the failed turn is dropped.
func (c *Client) Refine(ctx context.Context, sess *Session, prompt string) (*model.VideoInfo, error) {
	if sess == nil {
		return nil, ErrNoSession
	}

	return c.send(ctx, sess, fmt.Sprintf(refineMessageFormat, prompt))
}

// send performs exactly one completion round trip. The user turn and the
// assistant reply are committed to the session history only on success.
func (c *Client) send(ctx context.Context, sess *Session, message string) (*model.VideoInfo, error) {
	turns := append(append([]openai.ChatCompletionMessage{}, sess.messages...), openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    completionModel,
		Messages: turns,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("completion response has no choices")
	}
	answer := resp.Choices[len(resp.Choices)-1].Message.Content

	info, err := parseVideoJSON(answer)
	if err != nil {
		return nil, fmt.Errorf("invalid completion payload: %w", err)
	}

	sess.messages = append(turns, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: answer,
	})

	return info, nil
}

// newVideoID synthesizes an identifier for AI-generated metadata
func newVideoID() string {
	return "ai-" + uuid.NewString()
}
