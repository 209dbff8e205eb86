package engine

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/wirenet/pkg"
	"github.com/lintang-b-s/wirenet/pkg/costfunction"
	da "github.com/lintang-b-s/wirenet/pkg/datastructure"
	"github.com/lintang-b-s/wirenet/pkg/engine/analysis"
	"github.com/lintang-b-s/wirenet/pkg/networkparser"
	"github.com/lintang-b-s/wirenet/pkg/util"
	"go.uber.org/zap"
)

type spCacheKey struct {
	source     da.Index
	copperOnly bool
}

// Engine answers the network analysis queries over one graph. Queries are serialized: the resilience check
// mutates the graph while it runs.
type Engine struct {
	mu sync.Mutex

	graph        *da.NetworkGraph
	costFunction costfunction.CostFunction
	log          *zap.Logger
	heapArity    int

	// shortest path trees by (source, medium filter)
	spCache *lru.Cache[spCacheKey, *analysis.ShortestPath]
}

func NewEngine(graph *da.NetworkGraph, log *zap.Logger, heapArity, cacheSize int) (*Engine, error) {
	if heapArity < 2 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "heap arity must be at least 2, got %d", heapArity)
	}
	spCache, err := lru.New[spCacheKey, *analysis.ShortestPath](cacheSize)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid shortest path cache size %d", cacheSize)
	}

	return &Engine{
		graph:        graph,
		costFunction: costfunction.NewLatencyCostFunction(),
		log:          log,
		heapArity:    heapArity,
		spCache:      spCache,
	}, nil
}

func NewEngineFromFile(graphFilePath string, log *zap.Logger, heapArity, cacheSize int) (*Engine, error) {
	log.Info("Starting network analysis engine...")

	graph, err := networkparser.NewNetworkParser(log).ParseFile(graphFilePath)
	if err != nil {
		return nil, err
	}
	return NewEngine(graph, log, heapArity, cacheSize)
}

func (e *Engine) GetGraph() *da.NetworkGraph {
	return e.graph
}

// PathResult is the lowest latency path between two vertices. Found is false when no path exists, the other
// fields are then zero.
type PathResult struct {
	Source, Target da.Index
	Found          bool
	Path           []da.Index
	Latency        float64
	// Bandwidth is the bottleneck bandwidth of the path, pkg.UNBOUNDED_BANDWIDTH when Source == Target.
	Bandwidth int
}

func (e *Engine) checkVertex(name string, v int) error {
	if v < 0 || v >= e.graph.NumberOfVertices() {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "%s vertex %d out of range [0, %d)",
			name, v, e.graph.NumberOfVertices())
	}
	return nil
}

// shortestPath returns the cached search from source, running it on a miss. Caller holds e.mu.
func (e *Engine) shortestPath(source da.Index, copperOnly bool) *analysis.ShortestPath {
	key := spCacheKey{source: source, copperOnly: copperOnly}
	if sp, ok := e.spCache.Get(key); ok {
		return sp
	}

	filter := analysis.WireFilter(analysis.AllWires)
	if copperOnly {
		filter = analysis.CopperOnly
	}
	sp := analysis.NewShortestPath(e.graph, source, filter, e.costFunction, e.heapArity)
	e.spCache.Add(key, sp)
	return sp
}

// LowestLatencyPath finds the lowest latency path from source to target, over copper wires only if copperOnly.
func (e *Engine) LowestLatencyPath(source, target int, copperOnly bool) (PathResult, error) {
	if err := e.checkVertex("source", source); err != nil {
		return PathResult{}, err
	}
	if err := e.checkVertex("target", target); err != nil {
		return PathResult{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	sp := e.shortestPath(da.Index(source), copperOnly)

	result := PathResult{
		Source: da.Index(source),
		Target: da.Index(target),
	}
	path, ok := sp.PathTo(da.Index(target))
	if ok {
		result.Found = true
		result.Path = path
		result.Latency = sp.Distance(da.Index(target))
		result.Bandwidth = sp.Bandwidth(da.Index(target))
	}

	e.log.Info("lowest latency path", zap.Int("source", source), zap.Int("target", target),
		zap.Bool("copperOnly", copperOnly), zap.Bool("found", ok), zap.Duration("elapsed", time.Since(start)))
	return result, nil
}

// CopperOnlyConnected reports whether every vertex is reachable from every other over copper wires alone.
func (e *Engine) CopperOnlyConnected() analysis.Verdict {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	verdict := analysis.IsConnected(e.graph, analysis.CopperOnly, e.costFunction, e.heapArity)

	e.log.Info("copper only connectivity", zap.Stringer("verdict", verdict),
		zap.Duration("elapsed", time.Since(start)))
	return verdict
}

// LowestAverageLatencySpanningForest builds the minimum latency spanning forest of the graph.
func (e *Engine) LowestAverageLatencySpanningForest() *analysis.SpanningForest {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	sf := analysis.NewSpanningForest(e.graph, e.costFunction, e.heapArity)

	minBandwidth, _ := sf.MinBandwidth()
	e.log.Info("lowest average latency spanning forest", zap.Int("components", sf.NumberOfComponents()),
		zap.Int("treeWires", len(sf.TreeWires())), zap.Int("minBandwidth", minBandwidth),
		zap.Duration("elapsed", time.Since(start)))
	return sf
}

// TwoVertexResilience reports the first pair of vertices whose removal disconnects the rest of the graph.
func (e *Engine) TwoVertexResilience() analysis.ResilienceReport {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	report := analysis.CheckTwoVertexResilience(e.graph, e.costFunction, e.heapArity)

	fields := []zap.Field{zap.Stringer("verdict", report.Verdict), zap.Duration("elapsed", time.Since(start))}
	if report.Verdict == analysis.VerdictViolated {
		fields = append(fields, zap.Uint32("v", uint32(report.V)), zap.Uint32("w", uint32(report.W)))
	}
	e.log.Info("two vertex resilience", fields...)
	return report
}

// IsUnboundedBandwidth reports whether bandwidth is the bottleneck of a path without wires.
func IsUnboundedBandwidth(bandwidth int) bool {
	return bandwidth == pkg.UNBOUNDED_BANDWIDTH
}
