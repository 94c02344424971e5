package engine

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// RunnerJobs is one unit of queued work: a parent buffer plus the pending
// entries still to explore from it, and the split weight needed for
// progress accounting (spec.md §4.7).
type RunnerJobs struct {
	Buffer  Buffer
	Entries []Entry
	Total   int
	Size    int
}

// Distributor is the bounded worker pool described in spec.md §4.7,
// grounded directly on the original's threading.rs Runner/thread_run:
// a mutex-guarded job queue, a mutex-guarded output collection, one
// atomic "active" flag per worker, one progress slot per worker, and a
// global progress accumulator.
type Distributor struct {
	mu      sync.Mutex
	queue   []RunnerJobs
	outMu   sync.Mutex
	output  []Output

	active  []atomic.Bool
	progMu  sync.Mutex
	progress []float64
	global   float64

	workers int
}

// defaultWorkers mirrors the original's hardcoded 8 OS threads, bounded by
// available parallelism; overridable via Config.Workers (SPEC_FULL.md §C.1).
func defaultWorkers(cfg *Config) int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	n := runtime.NumCPU()
	if n > 8 {
		n = 8
	}
	if n < 1 {
		n = 1
	}
	return n
}

// NewDistributorFromJobs seeds the queue directly from a SolveJobs
// continuation, used when the top-level Solve call itself splits before
// any worker has been spawned (spec.md §4.5, "Split: ... hand
// (parent_buffer, children) to the work distributor").
func NewDistributorFromJobs(jobs *SolveJobs, cfg *Config) *Distributor {
	w := defaultWorkers(cfg)
	d := &Distributor{
		workers:  w,
		active:   make([]atomic.Bool, w),
		progress: make([]float64, w),
	}
	for i := range d.active {
		d.active[i].Store(true)
	}
	size := len(jobs.Entries)
	d.queue = append(d.queue, RunnerJobs{
		Buffer:  jobs.Buffer,
		Entries: jobs.Entries,
		Total:   size,
		Size:    size,
	})
	return d
}

// Run dispatches the worker pool and blocks until every job drains,
// reporting progress through progressCB (optional) and returning every
// terminal Output collected (spec.md §4.7, §5).
func (d *Distributor) Run(config *Config, progressCB func(float64)) []Output {
	var wg sync.WaitGroup
	wg.Add(d.workers)
	for i := 0; i < d.workers; i++ {
		go func(id int) {
			defer wg.Done()
			d.workerRun(id, config)
		}(i)
	}

	reported := 0.0
	for {
		done := true
		for i := range d.active {
			if d.active[i].Load() {
				done = false
				break
			}
		}
		if done {
			break
		}
		progress := d.snapshotProgress()
		if progressCB != nil && progress > reported+0.0005 {
			progressCB(progress)
			reported = progress
		}
		time.Sleep(time.Millisecond)
	}
	wg.Wait()

	d.outMu.Lock()
	defer d.outMu.Unlock()
	return append([]Output(nil), d.output...)
}

func (d *Distributor) snapshotProgress() float64 {
	d.progMu.Lock()
	defer d.progMu.Unlock()
	total := d.global
	for _, p := range d.progress {
		total += p
	}
	return total
}

func (d *Distributor) workerRun(id int, config *Config) {
	active := true
	total := 1
	for {
		job, entry, ok := d.popJob()
		if !ok {
			if active {
				d.progMu.Lock()
				d.progress[id] = 0
				d.progMu.Unlock()
			}
			active = false
			d.active[id].Store(false)

			allDone := true
			for i := range d.active {
				if d.active[i].Load() {
					allDone = false
					break
				}
			}
			if allDone {
				return
			}
			runtime.Gosched()
			continue
		}
		if !active {
			active = true
			d.active[id].Store(true)
		}
		total = job.Total

		buf := job.Buffer.Clone()
		buf.Push(entry)

		reporter := NewReporter(func(p float64) {
			d.progMu.Lock()
			d.progress[id] = p
			d.progMu.Unlock()
		})

		result := buf.Solve(config, reporter, nil)
		switch result.Kind {
		case OutputJobs:
			d.mu.Lock()
			size := len(result.Jobs.Entries)
			d.queue = append(d.queue, RunnerJobs{
				Buffer:  result.Jobs.Buffer,
				Entries: result.Jobs.Entries,
				Total:   size * total,
				Size:    size,
			})
			d.mu.Unlock()
		default:
			d.outMu.Lock()
			d.output = append(d.output, result)
			d.outMu.Unlock()
			d.progMu.Lock()
			d.global += 1.0 / float64(total)
			d.progMu.Unlock()
		}
	}
}

// popJob purges empty jobs, then pops one entry off the first non-empty
// job (spec.md §4.7, step 1).
func (d *Distributor) popJob() (RunnerJobs, Entry, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	filtered := d.queue[:0]
	for _, j := range d.queue {
		if len(j.Entries) > 0 {
			filtered = append(filtered, j)
		}
	}
	d.queue = filtered

	if len(d.queue) == 0 {
		return RunnerJobs{}, Entry{}, false
	}
	job := &d.queue[0]
	entry := job.Entries[len(job.Entries)-1]
	job.Entries = job.Entries[:len(job.Entries)-1]
	return RunnerJobs{Buffer: job.Buffer, Total: job.Total, Size: job.Size}, entry, true
}
