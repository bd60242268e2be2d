package llm

import (
	"context"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultSpeechModel = string(openai.TTSModel1)
	defaultSpeechVoice = string(openai.VoiceNova)
)

// Speech converts text to spoken audio (MP3) via the provider's TTS API and
// returns the audio stream. The caller owns closing the reader.
func (c *Client) Speech(ctx context.Context, text string) (io.ReadCloser, error) {
	resp, err := c.api.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(c.speechModel),
		Input: text,
		Voice: openai.SpeechVoice(c.speechVoice),
		Speed: 1.0,
	})
	if err != nil {
		return nil, classify(err)
	}
	return resp, nil
}
