package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"sudoku-api/pkg/config"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &config.Config{Port: "8080"})
	return r
}

const seedS1 = "9.4.728.....8.36..8..9.....6.9....1..83..7.....7.....22...385.....729..6...6....."

func TestHealthHandler(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", resp["status"])
	}
}

func TestSolveHandler(t *testing.T) {
	router := setupRouter()

	body, _ := json.Marshal(map[string]interface{}{"puzzle": seedS1})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/solve", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["status"] != "solved" {
		t.Errorf("expected status 'solved', got %v", resp["status"])
	}
	if grid, _ := resp["grid"].(string); len(grid) != 81 {
		t.Errorf("expected an 81-char grid, got %q", grid)
	}
}

func TestSolveHandlerRejectsMalformedPuzzle(t *testing.T) {
	router := setupRouter()

	body, _ := json.Marshal(map[string]interface{}{"puzzle": "too-short"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/solve", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestSolveStepsHandler(t *testing.T) {
	router := setupRouter()

	body, _ := json.Marshal(map[string]interface{}{"puzzle": seedS1})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/solve/steps", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	moves, ok := resp["moves"].([]interface{})
	if !ok || len(moves) == 0 {
		t.Fatalf("expected a non-empty moves array, got %v", resp["moves"])
	}
}

func TestSolveListHandler(t *testing.T) {
	router := setupRouter()

	puzzle := "....27....1...4.....9..57...8....3..5..9..1......32...6.1....4...8....9.....4.6.5"
	body, _ := json.Marshal(map[string]interface{}{"puzzle": puzzle})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/solve/list", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	solutions, ok := resp["solutions"].([]interface{})
	if !ok || len(solutions) != 235 {
		t.Fatalf("expected 235 solutions, got %d", len(solutions))
	}
}

func TestSolveHandlerWithCages(t *testing.T) {
	router := setupRouter()

	cageOf := make([]int, 81)
	for i := range cageOf {
		cageOf[i] = (i % 10) + 1
	}
	body, _ := json.Marshal(map[string]interface{}{
		"puzzle":  "." + seedS1[1:],
		"cages":   []int{20, 27, 26, 24, 28, 17, 18, 30, 16, 24},
		"cage_of": cageOf,
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/solve", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}
