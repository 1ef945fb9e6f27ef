/**
* Name:         tts.go
* Description:  Text-to-speech narration of assessment text
* Workflow:     create the TTS client, synthesize MP3 audio, close
 */

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const (
	DefaultVoice = "en-US-Wavenet-F"
	// MaxNarrationBytes is the synthesis input limit of the TTS API.
	MaxNarrationBytes = 5000
)

var (
	ErrEmptyNarration    = errors.New("narration text is empty")
	ErrNarrationTooLarge = fmt.Errorf("narration text exceeds %d bytes", MaxNarrationBytes)
)

type TTSClient struct {
	client *texttospeech.Client
	voice  string
}

// NewTTSClient connects to Google Cloud Text-to-Speech. An empty credentials
// file falls back to application default credentials.
func NewTTSClient(ctx context.Context, credentialsFile, voice string) (*TTSClient, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewTTSClient(): failed to create TTS client: %w", err)
	}
	if voice == "" {
		voice = DefaultVoice
	}
	return &TTSClient{client: client, voice: voice}, nil
}

// Narrate converts assessment text to MP3 audio.
func (t *TTSClient) Narrate(ctx context.Context, text string) ([]byte, error) {
	if err := CheckNarrationText(text); err != nil {
		return nil, err
	}
	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageCode(t.voice),
			Name:         t.voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := t.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("Narrate(): SynthesizeSpeech failed: %w", err)
	}
	log.Debug().Int("audio_bytes", len(resp.AudioContent)).Msg("Narrate(): synthesized narration")
	return resp.AudioContent, nil
}

func (t *TTSClient) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}

// CheckNarrationText validates text before it is sent for synthesis.
func CheckNarrationText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyNarration
	}
	if len(text) > MaxNarrationBytes {
		return ErrNarrationTooLarge
	}
	return nil
}

// languageCode takes the locale prefix of a voice name, e.g. "en-US" from "en-US-Wavenet-F".
func languageCode(voice string) string {
	dash := 0
	for i, r := range voice {
		if r == '-' {
			dash++
			if dash == 2 {
				return voice[:i]
			}
		}
	}
	return "en-US"
}
