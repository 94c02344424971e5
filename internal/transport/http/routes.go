package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"sudoku-api/internal/core"
	"sudoku-api/internal/sudoku/engine"
	"sudoku-api/pkg/config"
	"sudoku-api/pkg/constants"
)

var cfg *config.Config

// RegisterRoutes wires the solve API onto r, following the teacher's
// grouped-under-/api convention.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler)
		api.POST("/solve/steps", solveStepsHandler)
		api.POST("/solve/list", solveListHandler)
		api.GET("/solve/stream", solveStreamHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

func buildConfig(req core.SolveRequest, target engine.Target) (engine.Config, error) {
	solveCfg := engine.DefaultConfig()
	solveCfg.Target = target
	solveCfg.Workers = req.Workers
	if req.MaxSplits != nil {
		solveCfg.MaxSplits = req.MaxSplits
	}

	if len(req.Cages) > 0 || len(req.CageOf) > 0 {
		var cageOf [constants.TotalCells]int
		for i, v := range req.CageOf {
			if i >= constants.TotalCells {
				break
			}
			cageOf[i] = v
		}
		rules, err := engine.NewRules(req.Cages, cageOf)
		if err != nil {
			return engine.Config{}, err
		}
		solveCfg = solveCfg.WithRules(rules)
	}
	return solveCfg, nil
}

func solveHandler(c *gin.Context) {
	var req core.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid, err := engine.ParsePuzzle(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solveCfg, err := buildConfig(req, engine.TargetSudoku)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out := engine.Solve(grid, solveCfg, nil)
	resp := core.SolveResponse{Status: outputStatus(out.Kind)}
	if out.Kind == engine.OutputSolution {
		resp.Grid = engine.FormatGrid(out.Grid)
	}
	c.JSON(http.StatusOK, resp)
}

func solveStepsHandler(c *gin.Context) {
	var req core.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid, err := engine.ParsePuzzle(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solveCfg, err := buildConfig(req, engine.TargetSteps)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out := engine.Solve(grid, solveCfg, nil)
	resp := core.StepsResponse{Status: outputStatus(out.Kind)}
	if out.Kind == engine.OutputSteps {
		resp.Moves = renderMoves(out.Solve.Steps)
		resp.Grid = engine.FormatGrid(out.Solve.Final)
	}
	c.JSON(http.StatusOK, resp)
}

func solveListHandler(c *gin.Context) {
	var req core.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid, err := engine.ParsePuzzle(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solveCfg, err := buildConfig(req, engine.TargetList)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out := engine.Solve(grid, solveCfg, nil)
	resp := core.ListResponse{Status: outputStatus(out.Kind)}
	if out.Kind == engine.OutputList {
		resp.Solutions = make([]string, len(out.Grids))
		for i, g := range out.Grids {
			resp.Solutions[i] = engine.FormatGrid(g)
		}
		resp.Truncated = len(out.Grids) >= engine.ListCap
	}
	c.JSON(http.StatusOK, resp)
}

// solveStreamHandler streams solve progress as Server-Sent Events while a
// default-config solve runs in the background: one "progress" event per
// progress callback and a final "done" event. It stops early when the
// client disconnects or no event arrives for 5 seconds (SPEC_FULL.md §B,
// progress reporting).
func solveStreamHandler(c *gin.Context) {
	puzzle := c.Query("puzzle")
	grid, err := engine.ParsePuzzle(puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solveCfg := engine.DefaultConfig()
	solveCfg.Target = engine.TargetSudoku

	progressCh := make(chan float64, 16)
	resultCh := make(chan engine.Output, 1)
	go func() {
		out := engine.Solve(grid, solveCfg, func(p float64) {
			progressCh <- p
		})
		close(progressCh)
		resultCh <- out
	}()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	for {
		select {
		case p, open := <-progressCh:
			if !open {
				progressCh = nil
				continue
			}
			sse.Encode(c.Writer, sse.Event{Event: "progress", Data: p})
			flusher.Flush()
		case out := <-resultCh:
			status := outputStatus(out.Kind)
			done := gin.H{"status": status}
			if out.Kind == engine.OutputSolution {
				done["grid"] = engine.FormatGrid(out.Grid)
			}
			sse.Encode(c.Writer, sse.Event{Event: "done", Data: done})
			flusher.Flush()
			return
		case <-c.Request.Context().Done():
			return
		case <-time.After(5 * time.Second):
			return
		}
	}
}

func outputStatus(kind engine.OutputKind) string {
	switch kind {
	case engine.OutputSolution, engine.OutputSteps, engine.OutputList:
		return constants.StatusSolved
	case engine.OutputIncomplete:
		return constants.StatusIncomplete
	default:
		return constants.StatusInvalid
	}
}

func renderMoves(steps []engine.SolveStep) []core.Move {
	moves := make([]core.Move, len(steps))
	for i, step := range steps {
		action := constants.ActionEliminate
		digit := 0
		var targets []core.CellRef
		for _, t := range step.Mod.Targets {
			if t.Kind == engine.TargetSetDigit {
				action = constants.ActionAssign
				digit = t.Digit
			}
			targets = append(targets, core.CellRef{Row: t.Cell / constants.GridSize, Col: t.Cell % constants.GridSize})
		}
		moves[i] = core.Move{
			StepIndex: i,
			Technique: step.Mod.Tech.String(),
			Action:    action,
			Digit:     digit,
			Targets:   targets,
		}
	}
	return moves
}
