package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/valyala/fasthttp"

	"explorerCache/internal/domain"
	"explorerCache/internal/ports"
)

var _ ports.IUpstream = (*Fetcher)(nil)

// Fetcher забирает один агрегат GET-запросом и проверяет, что тело — JSON.
type Fetcher struct {
	cli     *fasthttp.Client
	slot    domain.Slot
	url     string
	timeout time.Duration
	log     *slog.Logger
}

// NewFetcher возвращает апстрим слота. timeout == 0 — без собственного дедлайна.
func NewFetcher(cli *fasthttp.Client, slot domain.Slot, url string, timeout time.Duration, log *slog.Logger) *Fetcher {
	return &Fetcher{cli: cli, slot: slot, url: url, timeout: timeout, log: log}
}

// Fetch делает запрос. fasthttp не умеет отмену, поэтому ctx даёт только дедлайн.
func (f *Fetcher) Fetch(ctx context.Context) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(f.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	start := time.Now()
	if err := f.do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", f.slot, err)
	}
	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", domain.ErrUpstreamStatus, f.slot, code)
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstreamPayload, f.slot)
	}
	f.log.Debug("upstream fetched", "slot", f.slot, "bytes", len(body), "latency_ms", time.Since(start).Milliseconds())

	// тело принадлежит resp и уйдёт в пул после Release
	return append(json.RawMessage(nil), body...), nil
}

func (f *Fetcher) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	deadline, ok := ctx.Deadline()
	if f.timeout > 0 {
		if own := time.Now().Add(f.timeout); !ok || own.Before(deadline) {
			deadline, ok = own, true
		}
	}
	if ok {
		return f.cli.DoDeadline(req, resp, deadline)
	}
	return f.cli.Do(req, resp)
}
