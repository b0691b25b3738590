package observability

import (
	"testing"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

func TestBuildOTelLogAttributes(t *testing.T) {
	attrs := buildOTelLogAttributes([]any{"team", "Blues", "players", 2, "payload"})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "team" || attrs[0].Value.AsString() != "Blues" {
		t.Fatalf("unexpected team attribute")
	}
	if attrs[1].Key != "players" || attrs[1].Value.AsInt64() != 2 {
		t.Fatalf("unexpected players attribute")
	}
	if attrs[2].Key != "payload" || attrs[2].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected payload attribute")
	}
}

func TestToOTelSeverity(t *testing.T) {
	if toOTelSeverity(zapcore.DebugLevel) != otellog.SeverityDebug {
		t.Fatalf("unexpected severity for debug")
	}
	if toOTelSeverity(zapcore.InfoLevel) != otellog.SeverityInfo {
		t.Fatalf("unexpected severity for info")
	}
	if toOTelSeverity(zapcore.WarnLevel) != otellog.SeverityWarn {
		t.Fatalf("unexpected severity for warn")
	}
	if toOTelSeverity(zapcore.ErrorLevel) != otellog.SeverityError {
		t.Fatalf("unexpected severity for error")
	}
}

func TestToOTelLogValue_Map(t *testing.T) {
	v := toOTelLogValue(map[string]any{
		"goals":   11,
		"starter": true,
	}, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("expected map value, got %s", v.Kind())
	}
	items := v.AsMap()
	if len(items) != 2 {
		t.Fatalf("expected 2 map items, got %d", len(items))
	}
}
