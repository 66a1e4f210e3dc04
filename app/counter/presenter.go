package counter

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/reactive/core/dispatch"
	"github.com/dmitrymomot/reactive/core/logger"
	"github.com/dmitrymomot/reactive/core/subject"
)

// Label is a render target. Every SetText prints "name: text" on the screen.
type Label struct {
	name   string
	screen *screen

	mu   sync.Mutex
	text string
}

// SetText stores and renders s.
func (l *Label) SetText(s string) {
	l.mu.Lock()
	l.text = s
	l.mu.Unlock()

	l.screen.render(l.name, s)
}

// Text returns the last rendered text.
func (l *Label) Text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.text
}

type screen struct {
	mu  sync.Mutex
	out io.Writer
}

func (s *screen) render(name, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "%s: %s\n", name, text)
}

// Presenter renders a Model. It holds labels and the subscription tokens,
// the model holds neither.
type Presenter struct {
	Title  *Label
	Count  *Label
	Status *Label

	printer *message.Printer
	logger  *slog.Logger
	tokens  subject.Bag
}

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithLanguage selects the locale used to format numbers.
func WithLanguage(tag language.Tag) PresenterOption {
	return func(p *Presenter) {
		p.printer = message.NewPrinter(tag)
	}
}

// WithPresenterLogger configures structured logging for the presenter.
func WithPresenterLogger(l *slog.Logger) PresenterOption {
	return func(p *Presenter) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPresenter creates a presenter writing to out.
func NewPresenter(out io.Writer, opts ...PresenterOption) *Presenter {
	s := &screen{out: out}
	p := &Presenter{
		Title:   &Label{name: "title", screen: s},
		Count:   &Label{name: "count", screen: s},
		Status:  &Label{name: "status", screen: s},
		printer: message.NewPrinter(language.English),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Attach subscribes the labels to m. Deliveries are redirected to ctx;
// pass dispatch.Immediate to render on the producer's goroutine.
func (p *Presenter) Attach(m *Model, ctx dispatch.Context) {
	title := subject.ObserveOn[string, subject.Never](m.Title, ctx)
	count := subject.ObserveOn(subject.Map[int, string, subject.Never](m.Count.Subject(), p.formatCount), ctx)
	status := subject.ObserveOn[string, error](m.Status, ctx)

	p.tokens.Add(
		// Title has no error channel: its completion is dropped on purpose.
		subject.Assign(title, p.Title, (*Label).SetText),
		subject.Sink(count, p.Count.SetText, nil),
		subject.Sink(status, p.Status.SetText, p.statusEnded),
	)

	p.logger.Debug("presenter attached", logger.Component("presenter"), logger.Subscribers(p.tokens.Len()))
}

// Detach cancels every subscription held by the presenter.
func (p *Presenter) Detach() {
	p.tokens.Cancel()
	p.logger.Debug("presenter detached", logger.Component("presenter"))
}

func (p *Presenter) formatCount(n int) string {
	return p.printer.Sprintf("%d", n)
}

func (p *Presenter) statusEnded(c subject.Completion[error]) {
	if err, failed := c.Failure(); failed {
		p.Status.SetText("error: " + err.Error())
		p.logger.Info("status stream failed", logger.Component("presenter"), logger.Failure(err))
		return
	}
	p.Status.SetText("done")
}
