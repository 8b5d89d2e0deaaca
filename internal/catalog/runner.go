package catalog

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/deosjr/kanren"
	"github.com/deosjr/kanren/internal/metrics"
)

// Mode selects how many answers a run pulls.
type Mode int

const (
	// Lazy pulls answers one at a time while they are consumed.
	Lazy Mode = iota
	// Bounded pulls at most Count.N answers.
	Bounded
	// Unbounded pulls every answer.
	Unbounded
)

func (m Mode) String() string {
	switch m {
	case Bounded:
		return "bounded"
	case Unbounded:
		return "unbounded"
	default:
		return "lazy"
	}
}

// Count is the answer-count selector of a run.
type Count struct {
	Mode Mode
	N    int
}

// ParseCount reads a count selector: a non-negative number, "*" for
// every answer, or the empty string for lazy pulling.
func ParseCount(s string) (Count, error) {
	switch s {
	case "":
		return Count{Mode: Lazy}, nil
	case "*":
		return Count{Mode: Unbounded}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Count{}, errors.Wrapf(err, "invalid count %q", s)
	}
	if n < 0 {
		return Count{}, errors.Errorf("invalid count %q: must not be negative", s)
	}
	return Count{Mode: Bounded, N: n}, nil
}

func (c Count) String() string {
	switch c.Mode {
	case Bounded:
		return strconv.Itoa(c.N)
	case Unbounded:
		return "*"
	}
	return ""
}

// ErrInfinite is returned when an unbounded run is asked of a query with
// infinitely many answers.
var ErrInfinite = errors.New("query has infinitely many answers; pass a count")

// IDGenerator produces run ids.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator produces time-sortable UUIDv7 run ids.
type UUIDv7Generator struct{}

func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator always returns the same id, for tests.
type FixedGenerator string

func (g FixedGenerator) Generate() string {
	return string(g)
}

// Result is the outcome of running a catalog query.
type Result struct {
	RunID   string
	Query   string
	Count   Count
	Answers []kanren.Value
	// Forced counts the suspensions the run forced.
	Forced int
}

// Runner executes catalog queries.
type Runner struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	IDs     IDGenerator
	// Limit caps the answers of a lazy run; zero means no cap.
	Limit int
}

func NewRunner() *Runner {
	return &Runner{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		IDs:    UUIDv7Generator{},
	}
}

// Run executes q under count. emit, when non-nil, is called with every
// answer as soon as it is available. Every mode pulls answers one at a
// time and checks ctx before each suspension it forces, so cancelling ctx
// stops the run even between answers. A lazy run also stops when Limit
// answers have been produced.
func (r *Runner) Run(ctx context.Context, q *Query, count Count, emit func(kanren.Value) error) (*Result, error) {
	if count.Mode == Unbounded && q.Infinite {
		return nil, errors.Wrap(ErrInfinite, q.Name)
	}
	res := &Result{
		RunID: r.IDs.Generate(),
		Query: q.Name,
		Count: count,
	}
	log := r.Logger.With("run", res.RunID, "query", q.Name)
	log.Info("running query", "mode", count.Mode, "count", count.String())
	start := time.Now()

	err := r.pull(ctx, q, res, r.maxAnswers(count), emit, log)
	elapsed := time.Since(start)

	if r.Metrics != nil {
		r.Metrics.Queries.WithLabelValues(count.Mode.String()).Inc()
		r.Metrics.Solutions.WithLabelValues(q.Name).Add(float64(len(res.Answers)))
		r.Metrics.Suspension.Add(float64(res.Forced))
		r.Metrics.QueryLatency.WithLabelValues(q.Name).Observe(float64(elapsed.Nanoseconds()))
	}
	if err != nil {
		return res, err
	}
	log.Info("query finished", "answers", len(res.Answers), "elapsed", elapsed)
	return res, nil
}

// maxAnswers is the most answers a run under count may pull; -1 means
// no cap.
func (r *Runner) maxAnswers(count Count) int {
	switch count.Mode {
	case Bounded:
		return count.N
	case Lazy:
		if r.Limit > 0 {
			return r.Limit
		}
	}
	return -1
}

func (r *Runner) pull(ctx context.Context, q *Query, res *Result, maxAnswers int, emit func(kanren.Value) error, log *slog.Logger) error {
	res.Answers = []kanren.Value{}
	if maxAnswers == 0 {
		return nil
	}
	sol := kanren.RunSeqVars(q.Vars, q.Body)
	defer func() { res.Forced = sol.Forced() }()
	for {
		v, ok, err := sol.NextContext(ctx)
		if err != nil {
			log.Info("query cancelled", "answers", len(res.Answers))
			return errors.Wrap(err, "query cancelled")
		}
		if !ok {
			return nil
		}
		log.Debug("answer", "n", len(res.Answers), "value", v.String())
		res.Answers = append(res.Answers, v)
		if emit != nil {
			if err := emit(v); err != nil {
				return errors.Wrap(err, "emitting answer")
			}
		}
		if maxAnswers > 0 && len(res.Answers) >= maxAnswers {
			return nil
		}
	}
}
