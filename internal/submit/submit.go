// Package submit runs one translate request/response cycle for a trigger
// click: it reads the form fields, posts the JSON request and renders the
// response or an error message into the result area.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/valpere/transgate/internal/payload"
	"github.com/valpere/transgate/internal/widget"
)

const (
	// DefaultEndpoint must match the mount prefix of the server-side router.
	DefaultEndpoint  = "/api/translate"
	DefaultIdleLabel = "Translate"
	DefaultBusyLabel = "Translating…"

	MissingTargetsMessage = "Error: specify at least one target language (e.g. ru,uk)."
	unknownError          = "Unknown error"
)

// Elements are the page elements a Handler works with. SourceText and
// Trigger are required; the rest may be nil.
type Elements struct {
	SourceText    widget.Field
	SourceLang    widget.Field
	TargetLangs   widget.Field
	Trigger       widget.Control
	ResultArea    widget.Region
	ResultContent widget.TextSink
}

// FromDocument resolves the elements by their page IDs.
func FromDocument(doc *widget.Document) Elements {
	return Elements{
		SourceText:    doc.Field(widget.IDSourceText),
		SourceLang:    doc.Field(widget.IDSourceLang),
		TargetLangs:   doc.Field(widget.IDTargetLangs),
		Trigger:       doc.Control(widget.IDTranslateBtn),
		ResultArea:    doc.Region(widget.IDResultArea),
		ResultContent: doc.TextSink(widget.IDResultContent),
	}
}

type Config struct {
	BaseURL   string
	Endpoint  string
	Timeout   time.Duration // zero means no timeout
	IdleLabel string
	BusyLabel string
}

type Handler struct {
	el     Elements
	cfg    Config
	client *resty.Client
	logger *slog.Logger
}

func New(el Elements, cfg Config, logger *slog.Logger) *Handler {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.IdleLabel == "" {
		cfg.IdleLabel = DefaultIdleLabel
	}
	if cfg.BusyLabel == "" {
		cfg.BusyLabel = DefaultBusyLabel
	}
	if logger == nil {
		logger = slog.Default()
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetLogger(restyLogger{logger})
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Handler{
		el:     el,
		cfg:    cfg,
		client: client,
		logger: logger,
	}
}

// Bind runs Submit on every click of the trigger. It reports false when the
// trigger is missing or cannot dispatch clicks. Submit errors are passed to
// onErr when it is non-nil.
func (h *Handler) Bind(ctx context.Context, onErr func(error)) bool {
	c, ok := h.el.Trigger.(widget.Clickable)
	if !ok {
		return false
	}
	c.OnClick(func() {
		if err := h.Submit(ctx); err != nil && onErr != nil {
			onErr(err)
		}
	})
	return true
}

// Submit performs one request/response cycle.
//
// Missing required elements and blank source text are silent no-ops. An empty
// target list shows MissingTargetsMessage without touching the network. HTTP
// failures are rendered into the result area and are not returned as errors;
// only transport failures are returned. The trigger is re-enabled with its
// idle label on every path once the request has started.
func (h *Handler) Submit(ctx context.Context) error {
	el := h.el
	if el.Trigger == nil || el.SourceText == nil {
		return nil
	}

	text := strings.TrimSpace(el.SourceText.Value())
	if text == "" {
		return nil
	}

	req := payload.Request{
		SourceLang:  payload.SourceLangOrDefault(fieldValue(el.SourceLang)),
		TargetLangs: payload.ParseTargetLangs(fieldValue(el.TargetLangs)),
		Text:        text,
	}
	if len(req.TargetLangs) == 0 {
		h.show(MissingTargetsMessage)
		return nil
	}

	el.Trigger.SetDisabled(true)
	el.Trigger.SetLabel(h.cfg.BusyLabel)
	defer func() {
		el.Trigger.SetDisabled(false)
		el.Trigger.SetLabel(h.cfg.IdleLabel)
	}()

	log := h.logger.With(slog.String("request_id", uuid.NewString()))
	log.Debug("sending translate request",
		slog.String("endpoint", h.cfg.Endpoint),
		slog.String("source_lang", req.SourceLang),
		slog.Any("target_langs", req.TargetLangs))

	start := time.Now()
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(h.cfg.Endpoint)
	if err != nil {
		log.Error("translate request failed", slog.Any("err", err))
		return fmt.Errorf("translate request failed: %w", err)
	}

	body := parseBody(resp.Body())

	if !resp.IsSuccess() {
		msg := ErrorText(resp.StatusCode(), statusText(resp.StatusCode(), resp.Status()), body)
		log.Warn("translate request rejected",
			slog.Int("status", resp.StatusCode()),
			slog.Duration("latency", time.Since(start)))
		h.show(msg)
		return nil
	}

	log.Debug("translate request done",
		slog.Int("status", resp.StatusCode()),
		slog.Duration("latency", time.Since(start)))
	h.show(Render(body))
	return nil
}

func (h *Handler) show(text string) {
	if h.el.ResultArea != nil {
		h.el.ResultArea.SetHidden(false)
	}
	if h.el.ResultContent != nil {
		h.el.ResultContent.SetText(text)
	}
}

func fieldValue(f widget.Field) string {
	if f == nil {
		return ""
	}
	return f.Value()
}

// parseBody returns the trimmed body when it is valid JSON and an empty
// object otherwise.
func parseBody(raw []byte) []byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return []byte("{}")
	}
	return raw
}

// Render pretty-prints a JSON document with two-space indentation. Keys keep
// the order they were received in and values are copied verbatim.
func Render(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, parseBody(body), "", "  "); err != nil {
		return "{}"
	}
	return buf.String()
}

// ErrorText formats a failed response as "Error <status>: <message>". The
// message is the body's detail field if it is set, then the status text,
// then a generic fallback.
func ErrorText(status int, statusText string, body []byte) string {
	msg := detail(body)
	if msg == "" {
		msg = statusText
	}
	if msg == "" {
		msg = unknownError
	}
	return fmt.Sprintf("Error %d: %s", status, msg)
}

// detail extracts a displayable "detail" value. Falsy values (empty string,
// zero, false, null) count as missing.
func detail(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	r := gjson.GetBytes(body, "detail")
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		if r.Num != 0 {
			return r.Raw
		}
	case gjson.True:
		return "true"
	case gjson.JSON:
		return r.Raw
	}
	return ""
}

// statusText strips the numeric code from an HTTP status line such as
// "404 Not Found".
func statusText(code int, status string) string {
	return strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
}

type restyLogger struct {
	l *slog.Logger
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Error(fmt.Sprintf(format, v...), slog.String("component", "http"))
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Warn(fmt.Sprintf(format, v...), slog.String("component", "http"))
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug(fmt.Sprintf(format, v...), slog.String("component", "http"))
}
