package game

import (
	"runtime"
	"sync"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/vehicles/components"
	"github.com/pthm-cable/vehicles/systems"
)

// vehicleSnapshot is a working copy of one vehicle for the update phase.
// Workers only touch their own snapshots, so no locking is needed.
type vehicleSnapshot struct {
	Entity   ecs.Entity
	Identity components.Identity
	Vehicle  components.Vehicle
}

// workChunk represents a range of snapshots for a worker to process.
type workChunk struct {
	start, end int
}

// parallelState holds resources for parallel vehicle updates.
type parallelState struct {
	snapshots  []vehicleSnapshot
	motions    []components.Motion
	numWorkers int

	// Worker pool channels
	workChan chan workChunk // sends work to workers
	doneChan chan struct{}  // workers signal completion
	stopChan chan struct{}  // signals workers to exit
	wg       sync.WaitGroup // tracks active workers
	running  bool           // true if workers are running
}

func newParallelState() *parallelState {
	return &parallelState{
		numWorkers: runtime.GOMAXPROCS(0),
		snapshots:  make([]vehicleSnapshot, 0, 64),
		motions:    make([]components.Motion, 0, 64),
	}
}

// startWorkers launches persistent worker goroutines.
func (p *parallelState) startWorkers(g *Game) {
	if p.running {
		return
	}

	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(g)
	}
}

// stopWorkers signals all workers to exit and waits for them.
func (p *parallelState) stopWorkers() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

// worker runs in a goroutine, processing chunks until stopped.
func (p *parallelState) worker(g *Game) {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			g.computeChunk(chunk.start, chunk.end)
			p.doneChan <- struct{}{}
		}
	}
}

// updateVehicles advances every vehicle one tick. Vehicles never read each
// other, so the update is split into snapshot, compute and apply phases and
// the compute phase may run on the worker pool.
func (g *Game) updateVehicles() {
	p := g.parallel

	// Phase A: Build snapshots (single-threaded)
	p.snapshots = p.snapshots[:0]
	query := g.vehicleFilter.Query()
	for query.Next() {
		id, v := query.Get()
		p.snapshots = append(p.snapshots, vehicleSnapshot{
			Entity:   query.Entity(),
			Identity: *id,
			Vehicle:  *v,
		})
	}

	n := len(p.snapshots)
	if n == 0 {
		return
	}
	if cap(p.motions) < n {
		p.motions = make([]components.Motion, n)
	}
	p.motions = p.motions[:n]

	// Phase B: Compute - choose single or parallel based on vehicle count
	if g.parallelThreshold <= 0 || n < g.parallelThreshold {
		g.computeChunk(0, n)
	} else {
		g.computeParallel(n)
	}

	// Phase C: Apply results (single-threaded, preserves determinism)
	g.applySnapshots()
}

// computeParallel dispatches work to the worker pool.
func (g *Game) computeParallel(n int) {
	p := g.parallel
	if !p.running {
		p.startWorkers(g)
	}

	chunkSize := (n + p.numWorkers - 1) / p.numWorkers

	chunksDispatched := 0
	for w := 0; w < p.numWorkers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, n)
		if start >= end {
			continue
		}
		p.workChan <- workChunk{start: start, end: end}
		chunksDispatched++
	}

	for i := 0; i < chunksDispatched; i++ {
		<-p.doneChan
	}
}

// computeChunk ticks a range of snapshots.
func (g *Game) computeChunk(i0, i1 int) {
	p := g.parallel
	for i := i0; i < i1; i++ {
		p.motions[i] = systems.SimulateTick(&p.snapshots[i].Vehicle, g.lightScratch, g.bounds, g.params)
	}
}

// applySnapshots writes computed vehicles back to the ECS components.
func (g *Game) applySnapshots() {
	for i := range g.parallel.snapshots {
		snap := &g.parallel.snapshots[i]
		if !g.world.Alive(snap.Entity) {
			continue
		}
		_, v := g.vehicleMap.Get(snap.Entity)
		*v = snap.Vehicle
	}
	g.gridDirty = true
}

// stopParallelWorkers should be called when shutting down the game.
func (g *Game) stopParallelWorkers() {
	if g.parallel != nil {
		g.parallel.stopWorkers()
	}
}
