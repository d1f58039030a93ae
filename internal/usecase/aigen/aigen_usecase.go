package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gdugdh24/godate-backend/internal/infrastructure/chadgpt"
)

// coordsMarker separates the narrative part of a model reply from the
// machine-readable place list.
const coordsMarker = "КООРДИНАТЫ:"

// Caller sends one message to a named model and returns its reply.
type Caller interface {
	Ask(ctx context.Context, model, message string) (*chadgpt.Completion, error)
}

// UseCase turns date parameters into a model prompt and parses the reply
// back into narrative text plus coordinates.
type UseCase struct {
	ai Caller
}

func NewUseCase(ai Caller) *UseCase {
	return &UseCase{ai: ai}
}

// GenerateRequest represents itinerary generation payload
type GenerateRequest struct {
	City      string `json:"city" binding:"required"`
	Budget    int    `json:"budget" binding:"required"`
	People    int    `json:"people" binding:"required"`
	Time      int    `json:"time" binding:"required"`
	Places    int    `json:"places" binding:"required"`
	Transport string `json:"transport" binding:"required"`
	WhatAI    string `json:"whatai" binding:"required"`
}

// GenerateResponse is the parsed model reply.
type GenerateResponse struct {
	Route       string      `json:"route"`
	Coordinates Coordinates `json:"coordinates"`
	UsedWords   int         `json:"used_words"`
}

// Coordinates maps place names to raw coordinate strings, preserving the
// order the model listed them in.
type Coordinates []CoordinateEntry

type CoordinateEntry struct {
	Place  string
	Coords string
}

// MarshalJSON renders the entries as a JSON object in insertion order.
func (c Coordinates) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Place)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(entry.Coords)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// set updates an existing place in position or appends a new one, so a
// repeated place name never produces a duplicate JSON key.
func (c Coordinates) set(place, coords string) Coordinates {
	for i, entry := range c {
		if entry.Place == place {
			c[i].Coords = coords
			return c
		}
	}
	return append(c, CoordinateEntry{Place: place, Coords: coords})
}

// Get returns the coordinate string for a place, if present.
func (c Coordinates) Get(place string) (string, bool) {
	for _, entry := range c {
		if entry.Place == place {
			return entry.Coords, true
		}
	}
	return "", false
}

// transportNames maps form values to the Russian wording the prompt uses.
// Unknown values pass through verbatim.
var transportNames = map[string]string{
	"onfoot": "пешком",
	"trans":  "общественный транспорт",
	"car":    "машина",
	"rental": "аренда самоката/велика",
	"own":    "свой велик/самокат",
	"taxi":   "такси",
	"boat":   "лодка",
}

// modelNames maps short model aliases to provider model identifiers.
// Unknown values pass through verbatim.
var modelNames = map[string]string{
	"gemini":   "gemini-2.0-flash",
	"deepseek": "deepseek-v3",
	"gpt":      "gpt-4o-mini",
	"claude":   "claude-3-haiku",
}

func mapOrVerbatim(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return key
}

// BuildPrompt assembles the Russian-language model prompt, including the
// coordinate block instructions the parser relies on.
func BuildPrompt(req *GenerateRequest) string {
	return fmt.Sprintf(
		"Составь ОДИН оптимальный маршрут для свидания в городе %s с бюджетом %d рублей на %d часов "+
			"для %d человек. Включи %d  точек с примерными ценами на момент 2025 года (примерные!). "+
			"Учитывай предпочтения по транспорту: %s и в зависимости от выбора меняй расстояние от места до места. "+
			"Оформи ответ в формате: \n"+
			"1. **Название места** (тип: кафе/парк/кино и т.д.) (адрес) - описание\n"+
			"2. **Название места** (тип) (адрес) - описание\n"+
			"3. **Название места** (тип) (адрес) - описание\n"+
			"Общая стоимость: X рублей\n\n"+
			"После списка добавь координаты всех мест в формате:\n"+
			"КООРДИНАТЫ:\n"+
			"Название места 1: 00.000000,00.000000\n"+
			"Название места 2: 00.000000,00.000000\n"+
			"Название места 3: 00.000000,00.000000",
		req.City, req.Budget, req.Time, req.People, req.Places,
		mapOrVerbatim(transportNames, req.Transport),
	)
}

// ParseReply splits a reply on the coordinate marker. Everything before it
// is the narrative, everything after is parsed line by line as
// "place: coords" pairs. A reply without the marker has no coordinates.
func ParseReply(text string) (string, Coordinates) {
	route, coordsPart, found := strings.Cut(text, coordsMarker)
	if !found {
		return strings.TrimSpace(text), Coordinates{}
	}

	coordinates := Coordinates{}
	for _, line := range strings.Split(coordsPart, "\n") {
		place, coords, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		coordinates = coordinates.set(strings.TrimSpace(place), strings.TrimSpace(coords))
	}
	return strings.TrimSpace(route), coordinates
}

// Generate sends the prompt to the requested model and parses the reply.
func (uc *UseCase) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	model := mapOrVerbatim(modelNames, req.WhatAI)

	completion, err := uc.ai.Ask(ctx, model, BuildPrompt(req))
	if err != nil {
		return nil, err
	}

	route, coordinates := ParseReply(completion.Text)
	return &GenerateResponse{
		Route:       route,
		Coordinates: coordinates,
		UsedWords:   completion.UsedWords,
	}, nil
}
