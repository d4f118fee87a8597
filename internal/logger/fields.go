package logger

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/hh-evaluator/internal/utils"
)

// Keys shared by every component so entries of one request can be joined.
const (
	FieldProvider  = "ai_provider"
	FieldModel     = "ai_model"
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldStage     = "stage"
)

// Pair is a string field that is dropped when its key or value is blank.
type Pair struct {
	Key   string
	Value string
}

// Fields turns pairs into zap fields, trimming both sides and skipping blanks.
func Fields(pairs ...Pair) []zap.Field {
	fields := make([]zap.Field, 0, len(pairs))
	for _, p := range pairs {
		key, value := strings.TrimSpace(p.Key), strings.TrimSpace(p.Value)
		if key == "" || value == "" {
			continue
		}
		fields = append(fields, zap.String(key, value))
	}
	return fields
}

// With attaches fields to l. A nil l becomes a no-op logger.
func With(l *zap.Logger, fields ...zap.Field) *zap.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}

// ForModel tags entries with the provider and model serving the calls.
func ForModel(l *zap.Logger, provider, model string) *zap.Logger {
	return With(l, Fields(
		Pair{Key: FieldProvider, Value: provider},
		Pair{Key: FieldModel, Value: model},
	)...)
}

// ForRequest scopes l to one pipeline invocation.
func ForRequest(l *zap.Logger, component, requestID string) *zap.Logger {
	return With(l, Fields(
		Pair{Key: FieldComponent, Value: component},
		Pair{Key: FieldRequestID, Value: requestID},
	)...)
}

// Preview describes model text by its rune length and a bounded prefix.
func Preview(key, text string, limit int) []zap.Field {
	return []zap.Field{
		zap.Int(key+"_length", utf8.RuneCountInString(text)),
		zap.String(key+"_preview", utils.TruncateForLog(text, limit)),
	}
}
