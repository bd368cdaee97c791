package ranges

import (
	"cmp"
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nikmy/rangepicker/pkg/errors"
	"github.com/nikmy/rangepicker/pkg/logger"
)

const defaultFlushInterval = 30 * time.Second

// newFileRepo keeps ranges in memory and writes them to cfg.Path as JSON
// every flush interval and on Close.
func newFileRepo(ctx context.Context, log logger.Logger, cfg FileConfig) (*fileRepo, error) {
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}

	r := &fileRepo{
		fileName: cfg.Path,
		interval: cfg.FlushInterval,
		log:      log,
		data:     make(map[string]Range),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}

	if err := r.load(); err != nil {
		return nil, err
	}

	go r.run(ctx)
	return r, nil
}

type fileRepo struct {
	fileName string
	interval time.Duration
	log      logger.Logger

	mu    sync.Mutex
	data  map[string]Range
	dirty bool

	stopOnce sync.Once
	stop     chan struct{}
	stopped  chan struct{}
}

func (r *fileRepo) Save(_ context.Context, rng Range) (string, error) {
	if err := rng.Validate(); err != nil {
		return "", err
	}

	rng.ID = primitive.NewObjectID().Hex()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[rng.ID] = rng
	r.dirty = true
	return rng.ID, nil
}

func (r *fileRepo) ListByUser(_ context.Context, user int64) ([]Range, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := make([]Range, 0)
	for _, rng := range r.data {
		if rng.UserID == user {
			found = append(found, rng)
		}
	}

	slices.SortFunc(found, func(a, b Range) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.ID, b.ID))
	})
	return found, nil
}

func (r *fileRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return false, nil
	}

	delete(r.data, id)
	r.dirty = true
	return true, nil
}

func (r *fileRepo) Close(context.Context) error {
	r.stopOnce.Do(func() { close(r.stop) })
	<-r.stopped
	return r.flush()
}

func (r *fileRepo) run(ctx context.Context) {
	defer close(r.stopped)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := r.flush(); err != nil {
				r.log.Warn(err)
			}
		case <-ctx.Done():
			return
		case <-r.stop:
			return
		}
	}
}

func (r *fileRepo) flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.dirty {
		return nil
	}

	bytes, err := json.Marshal(r.data)
	if err != nil {
		return errors.WrapFail(err, "marshal ranges")
	}

	err = os.WriteFile(r.fileName, bytes, fs.FileMode(0o600))
	if err != nil {
		return errors.WrapFailf(err, "write %s", r.fileName)
	}

	r.log.Debugf("saved %d ranges to %s", len(r.data), r.fileName)
	r.dirty = false
	return nil
}

func (r *fileRepo) load() error {
	bytes, err := os.ReadFile(r.fileName)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.WrapFailf(err, "read %s", r.fileName)
	}

	var data map[string]Range
	err = json.Unmarshal(bytes, &data)
	if err != nil {
		return errors.WrapFailf(err, "parse %s", r.fileName)
	}

	if data != nil {
		r.data = data
	}
	r.log.Infof("loaded %d ranges from %s", len(r.data), r.fileName)
	return nil
}
