package aigen

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gdugdh24/godate-backend/internal/infrastructure/chadgpt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCaller struct {
	model   string
	message string
	reply   *chadgpt.Completion
	err     error
}

func (s *stubCaller) Ask(_ context.Context, model, message string) (*chadgpt.Completion, error) {
	s.model = model
	s.message = message
	return s.reply, s.err
}

func sampleRequest() *GenerateRequest {
	return &GenerateRequest{
		City:      "Москва",
		Budget:    3000,
		People:    2,
		Time:      4,
		Places:    3,
		Transport: "onfoot",
		WhatAI:    "gpt",
	}
}

func TestBuildPromptMapsTransport(t *testing.T) {
	prompt := BuildPrompt(sampleRequest())

	assert.Contains(t, prompt, "в городе Москва")
	assert.Contains(t, prompt, "бюджетом 3000 рублей")
	assert.Contains(t, prompt, "на 4 часов")
	assert.Contains(t, prompt, "для 2 человек")
	assert.Contains(t, prompt, "по транспорту: пешком")
	assert.Contains(t, prompt, "КООРДИНАТЫ:")
}

func TestBuildPromptUnknownTransportVerbatim(t *testing.T) {
	req := sampleRequest()
	req.Transport = "вертолёт"
	assert.Contains(t, BuildPrompt(req), "по транспорту: вертолёт")
}

func TestParseReply(t *testing.T) {
	text := "1. **Кафе** (кафе) - уютное место\n" +
		"Общая стоимость: 500 рублей\n" +
		"КООРДИНАТЫ:\n" +
		"Кафе: 55.751244,37.618423\n" +
		"Парк Горького: 55.731234,37.601234\n"

	route, coords := ParseReply(text)
	assert.Equal(t,
		"1. **Кафе** (кафе) - уютное место\nОбщая стоимость: 500 рублей",
		route,
	)
	require.Len(t, coords, 2)
	assert.Equal(t, "Кафе", coords[0].Place)
	assert.Equal(t, "55.751244,37.618423", coords[0].Coords)
	assert.Equal(t, "Парк Горького", coords[1].Place)
}

func TestParseReplyNoMarker(t *testing.T) {
	route, coords := ParseReply("  просто текст без координат  ")
	assert.Equal(t, "просто текст без координат", route)
	assert.Empty(t, coords)
}

func TestParseReplySkipsLinesWithoutColon(t *testing.T) {
	text := "маршрут\nКООРДИНАТЫ:\nмусорная строка\nКафе: 55.75,37.62"
	route, coords := ParseReply(text)
	assert.Equal(t, "маршрут", route)
	require.Len(t, coords, 1)
	assert.Equal(t, "Кафе", coords[0].Place)
}

func TestParseReplySplitsOnFirstColonOnly(t *testing.T) {
	text := "маршрут\nКООРДИНАТЫ:\nКафе: 55.75,37.62: примечание"
	_, coords := ParseReply(text)
	require.Len(t, coords, 1)
	assert.Equal(t, "55.75,37.62: примечание", coords[0].Coords)
}

func TestCoordinatesMarshalPreservesOrder(t *testing.T) {
	coords := Coordinates{
		{Place: "Я первый", Coords: "1,1"},
		{Place: "А второй", Coords: "2,2"},
	}
	raw, err := json.Marshal(coords)
	require.NoError(t, err)
	assert.Equal(t, `{"Я первый":"1,1","А второй":"2,2"}`, string(raw))
}

func TestCoordinatesMarshalEmpty(t *testing.T) {
	raw, err := json.Marshal(Coordinates{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(raw))
}

func TestGenerateMapsModelAlias(t *testing.T) {
	caller := &stubCaller{reply: &chadgpt.Completion{Text: "маршрут", UsedWords: 42}}
	uc := NewUseCase(caller)

	resp, err := uc.Generate(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", caller.model)
	assert.Equal(t, "маршрут", resp.Route)
	assert.Equal(t, 42, resp.UsedWords)
	assert.Empty(t, resp.Coordinates)
}

func TestGenerateUnknownModelVerbatim(t *testing.T) {
	caller := &stubCaller{reply: &chadgpt.Completion{Text: "x"}}
	uc := NewUseCase(caller)

	req := sampleRequest()
	req.WhatAI = "mistral-large"
	_, err := uc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "mistral-large", caller.model)
}

func TestGeneratePassesThroughError(t *testing.T) {
	wantErr := &chadgpt.ProviderError{Message: "лимит исчерпан"}
	caller := &stubCaller{err: wantErr}
	uc := NewUseCase(caller)

	_, err := uc.Generate(context.Background(), sampleRequest())
	assert.ErrorAs(t, err, &wantErr)
}
