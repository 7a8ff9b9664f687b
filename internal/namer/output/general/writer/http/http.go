package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/frenchnum/frenchnum/internal/namer/common"
	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/frenchnum/frenchnum/internal/namer/output/general/writer"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

const (
	maxBodySize  = 1 << 20 // 1 Mb
	retryWaitMin = 1 * time.Second
	retryWaitMax = 10 * time.Minute
)

type bodyPayload struct {
	Dialect string
	Rows    []*models.NamedNumber
}

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Writer type is implementation of Writer that posts batches of rows to an HTTP endpoint.
type Writer struct {
	ctx context.Context //nolint:containedctx

	dialect string
	config  *models.HTTPParams

	retryableClient *retryablehttp.Client
	lastErr         error
	lastErrMutex    *sync.Mutex

	buffer       []*models.NamedNumber
	bodyTemplate *template.Template

	writtenRowsChan chan<- uint64

	writerChan chan []*models.NamedNumber
	errorsChan chan error
	writerWg   *sync.WaitGroup
	started    bool
}

// NewWriter function creates Writer object.
func NewWriter(
	ctx context.Context,
	dialect string,
	config *models.HTTPParams,
	writtenRowsChan chan<- uint64,
) *Writer {
	httpWriter := &Writer{
		ctx:             ctx,
		dialect:         dialect,
		config:          config,
		lastErrMutex:    &sync.Mutex{},
		writtenRowsChan: writtenRowsChan,
		buffer:          make([]*models.NamedNumber, 0, config.BatchSize),
		writerChan:      make(chan []*models.NamedNumber),
		errorsChan:      make(chan error, 1),
		writerWg:        &sync.WaitGroup{},
		started:         false,
	}

	httpWriter.initRetryableClient()

	return httpWriter
}

func (w *Writer) initRetryableClient() {
	retryableClient := retryablehttp.NewClient()
	retryableClient.Logger = nil
	retryableClient.RetryWaitMin = retryWaitMin
	retryableClient.RetryWaitMax = retryWaitMax
	retryableClient.RetryMax = calculateRetryMax(
		w.config.Timeout,
		retryableClient.RetryWaitMin,
		retryableClient.RetryWaitMax,
	)
	retryableClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			w.lastErrMutex.Lock()
			w.lastErr = err
			w.lastErrMutex.Unlock()
		}

		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	w.retryableClient = retryableClient
}

// calculateRetryMax returns how many exponentially growing waits fit into timeout.
func calculateRetryMax(timeout, waitMin, waitMax time.Duration) int {
	if timeout <= 0 || waitMin <= 0 {
		return 0
	}

	retries := 1
	remaining := timeout
	wait := waitMin

	for {
		if wait > waitMax {
			wait = waitMax
		}

		if remaining < wait {
			break
		}

		remaining -= wait
		retries++

		wait *= 2
	}

	return retries
}

// Init function parses body template and starts sending batches in background.
func (w *Writer) Init() error {
	if w.started {
		return errors.New("the writer has already been initialized")
	}

	tmpl := template.New("format_template").Funcs(templateFuncs())

	tmpl, err := tmpl.Parse(w.config.FormatTemplate)
	if err != nil {
		return errors.New(err.Error())
	}

	w.writerWg.Add(1)
	w.bodyTemplate = tmpl
	w.started = true

	go w.writer()

	return nil
}

func (w *Writer) writer() {
	defer w.writerWg.Done()

	pool := common.NewWorkerPool(w.handleBatch, w.config.WorkersCount)
	pool.Start()
	defer pool.Stop()

	pool.Add(1)

	done := make(chan struct{})
	defer close(done)

	go func() {
		defer pool.Done()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-done:
				return
			case batch, ok := <-w.writerChan:
				if !ok {
					return
				}

				pool.Submit(batch)
			}
		}
	}()

	if err := pool.WaitOrError(); err != nil {
		w.errorsChan <- err
	}
}

func (w *Writer) handleBatch(batch []*models.NamedNumber) error {
	req, err := w.buildRequest(batch)
	if err != nil {
		return errors.WithMessage(err, "failed to build request")
	}

	err = w.sendRequest(req)
	if err != nil {
		return errors.WithMessage(err, "failed to send request")
	}

	if w.writtenRowsChan != nil {
		w.writtenRowsChan <- uint64(len(batch))
	}

	return nil
}

func (w *Writer) buildRequest(rows []*models.NamedNumber) (*retryablehttp.Request, error) {
	payload := bodyPayload{
		Dialect: w.dialect,
		Rows:    rows,
	}

	buffer := new(bytes.Buffer)

	if err := w.bodyTemplate.Execute(buffer, payload); err != nil {
		return nil, errors.New(err.Error())
	}

	req, err := retryablehttp.NewRequest(
		http.MethodPost,
		w.config.Endpoint,
		buffer,
	)
	if err != nil {
		return nil, errors.New(err.Error())
	}

	req.Header.Set("Content-Type", "application/json")

	for key, value := range w.config.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

func (w *Writer) sendRequest(req *retryablehttp.Request) error {
	ctx, cancel := context.WithTimeout(w.ctx, w.config.Timeout)
	defer cancel()

	resp, err := w.retryableClient.Do(req.WithContext(ctx))
	if err != nil {
		w.lastErrMutex.Lock()
		lastErr := w.lastErr
		w.lastErrMutex.Unlock()

		if errors.Is(err, context.DeadlineExceeded) && lastErr != nil {
			return errors.Errorf("%s, last error: %s", err.Error(), lastErr.Error())
		}

		return errors.New(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return errors.New(err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("received non-OK status code %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	return nil
}

// WriteRow function collects rows and hands a full batch to the senders.
func (w *Writer) WriteRow(row *models.NamedNumber) error {
	w.buffer = append(w.buffer, row)

	if len(w.buffer) >= w.config.BatchSize {
		return w.sendBuffer()
	}

	return nil
}

func (w *Writer) sendBuffer() error {
	if len(w.buffer) == 0 {
		return nil
	}

	select {
	case <-w.ctx.Done():
		return errors.Errorf("failed to write batch: %s", w.ctx.Err().Error())
	case err := <-w.errorsChan:
		return errors.WithMessage(err, "failed to write batch")
	case w.writerChan <- w.buffer:
		w.buffer = make([]*models.NamedNumber, 0, w.config.BatchSize)
	}

	return nil
}

// Teardown function sends the last incomplete batch and waits for all requests.
func (w *Writer) Teardown() error {
	if !w.started {
		return nil
	}

	sendErr := w.sendBuffer()

	close(w.writerChan)

	w.writerWg.Wait()
	w.retryableClient.HTTPClient.CloseIdleConnections()

	if sendErr != nil {
		return sendErr
	}

	select {
	case err := <-w.errorsChan:
		return errors.WithMessage(err, "failed to write batch")
	default:
		return nil
	}
}
