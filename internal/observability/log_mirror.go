package observability

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	otelglobal "go.opentelemetry.io/otel/log/global"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/riskibarqy/cricket-analytics/internal/platform/logging"
)

const (
	logInstrumentation = "cricket-analytics/internal/platform/logging"
	requestLogMessage  = "http request"
	maxNestedDepth     = 3
)

var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
	"/livez":   {},
}

// Log keys that identify cricket entities are renamed to the span attribute
// names so logs and traces can be joined on the same key.
var entityKeys = map[string]string{
	"series_id":  "cricket.series_id",
	"match_id":   "cricket.match_id",
	"player_id":  "cricket.player_id",
	"admin_id":   "cricket.admin_id",
	"session_id": "cricket.session_id",
}

var levelSeverity = map[zapcore.Level]otellog.Severity{
	zapcore.DebugLevel:  otellog.SeverityDebug,
	zapcore.InfoLevel:   otellog.SeverityInfo,
	zapcore.WarnLevel:   otellog.SeverityWarn,
	zapcore.ErrorLevel:  otellog.SeverityError,
	zapcore.DPanicLevel: otellog.SeverityFatal,
	zapcore.PanicLevel:  otellog.SeverityFatal,
	zapcore.FatalLevel:  otellog.SeverityFatal,
}

// logMirror re-emits zap records as OpenTelemetry log records. Fields go
// through zap's own encoder so both sinks agree on how a value renders.
type logMirror struct {
	logger otellog.Logger
}

func newLogMirror(serviceVersion string) *logMirror {
	return &logMirror{
		logger: otelglobal.Logger(logInstrumentation, otellog.WithInstrumentationVersion(serviceVersion)),
	}
}

func (m *logMirror) emit(ctx context.Context, level logging.Level, msg string, args ...any) {
	if msg == requestLogMessage && isQuietRequest(args) {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	severity := severityOf(level, msg, args)
	if !m.logger.Enabled(ctx, otellog.EnabledParameters{Severity: severity, EventName: msg}) {
		return
	}

	var record otellog.Record
	now := time.Now().UTC()
	record.SetTimestamp(now)
	record.SetObservedTimestamp(now)
	record.SetSeverity(severity)
	record.SetSeverityText(severity.String())
	record.SetEventName(msg)
	record.SetBody(otellog.StringValue(msg))
	record.AddAttributes(logAttributes(args)...)

	m.logger.Emit(ctx, record)
}

// isQuietRequest reports request logs that would only add noise: probes and
// session streams, which log once when the socket closes.
func isQuietRequest(args []any) bool {
	path, ok := argValue(args, "path").(string)
	if !ok {
		return false
	}
	if _, probe := probePaths[path]; probe {
		return true
	}
	return strings.HasPrefix(path, "/v1/sessions/") && strings.HasSuffix(path, "/stream")
}

func argValue(args []any, key string) any {
	for i := 0; i+1 < len(args); i += 2 {
		if k, _ := args[i].(string); k == key {
			return args[i+1]
		}
	}
	return nil
}

// logAttributes encodes key/value pairs with zap and converts the encoded map.
// Attributes are sorted by key; verbose error stacks stay in the zap output.
func logAttributes(args []any) []otellog.KeyValue {
	if len(args) == 0 {
		return nil
	}

	enc := zapcore.NewMapObjectEncoder()
	var dangling []string
	for i := 0; i < len(args); i += 2 {
		key, _ := args[i].(string)
		if strings.TrimSpace(key) == "" {
			key = fmt.Sprintf("arg_%d", i/2)
		}
		if i+1 == len(args) {
			dangling = append(dangling, key)
			break
		}
		zap.Any(key, args[i+1]).AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields)+len(dangling))
	for key := range enc.Fields {
		if strings.HasSuffix(key, "Verbose") {
			continue
		}
		keys = append(keys, key)
	}
	keys = append(keys, dangling...)
	sort.Strings(keys)

	attrs := make([]otellog.KeyValue, 0, len(keys))
	for _, key := range keys {
		name := key
		if mapped, ok := entityKeys[key]; ok {
			name = mapped
		}
		attrs = append(attrs, otellog.KeyValue{Key: name, Value: encodedValue(enc.Fields[key], 0)})
	}
	return attrs
}

// severityOf follows the zap level, except that request logs for 5xx
// responses are raised to error so they surface with upstream failures.
func severityOf(level zapcore.Level, msg string, args []any) otellog.Severity {
	if msg == requestLogMessage && level < zapcore.ErrorLevel {
		if status, ok := argValue(args, "status").(int); ok && status >= 500 {
			return otellog.SeverityError
		}
	}
	if severity, ok := levelSeverity[level]; ok {
		return severity
	}
	if level < zapcore.DebugLevel {
		return otellog.SeverityDebug
	}
	return otellog.SeverityFatal
}

// encodedValue converts what zapcore.MapObjectEncoder stores. Reflected values
// arrive untouched, so plain maps and slices are walked here too.
func encodedValue(v any, depth int) otellog.Value {
	switch v := v.(type) {
	case nil:
		return otellog.Value{}
	case string:
		return otellog.StringValue(v)
	case bool:
		return otellog.BoolValue(v)
	case int, int8, int16, int32, int64:
		return otellog.Int64Value(reflect.ValueOf(v).Int())
	case uint, uint8, uint16, uint32, uint64, uintptr:
		if u := reflect.ValueOf(v).Uint(); u <= math.MaxInt64 {
			return otellog.Int64Value(int64(u))
		}
		return otellog.StringValue(fmt.Sprint(v))
	case float32, float64:
		return otellog.Float64Value(reflect.ValueOf(v).Float())
	case []byte:
		return otellog.BytesValue(bytes.Clone(v))
	case time.Time:
		return otellog.StringValue(v.UTC().Format(time.RFC3339Nano))
	case time.Duration:
		return otellog.StringValue(v.String())
	}

	if depth >= maxNestedDepth {
		return otellog.StringValue(fmt.Sprintf("%+v", v))
	}
	switch v := v.(type) {
	case []any:
		items := make([]otellog.Value, len(v))
		for i, item := range v {
			items[i] = encodedValue(item, depth+1)
		}
		return otellog.SliceValue(items...)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		kvs := make([]otellog.KeyValue, len(keys))
		for i, key := range keys {
			kvs[i] = otellog.KeyValue{Key: key, Value: encodedValue(v[key], depth+1)}
		}
		return otellog.MapValue(kvs...)
	default:
		return otellog.StringValue(fmt.Sprintf("%+v", v))
	}
}
